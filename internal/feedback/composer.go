// Package feedback turns a turn's metrics and analysis into a short
// encouragement message for the child. It is presentation logic: the band
// boundaries and gating rules are fixed, the phrasing is warm and simple.
package feedback

import (
	"strings"

	"github.com/perchlabs/chirp/internal/engine"
)

// strength pairs a metric test with its praise phrase.
type strength struct {
	applies func(m engine.ConversationMetrics, a engine.ResponseAnalysis) bool
	phrase  string
}

var strengths = []strength{
	{
		applies: func(m engine.ConversationMetrics, a engine.ResponseAnalysis) bool {
			return m.Engagement > 80
		},
		phrase: "your wonderful energy",
	},
	{
		applies: func(m engine.ConversationMetrics, a engine.ResponseAnalysis) bool {
			return len(a.Emotions) > 0
		},
		phrase: "sharing your feelings",
	},
	{
		applies: func(m engine.ConversationMetrics, a engine.ResponseAnalysis) bool {
			return a.QuestionAsked
		},
		phrase: "asking great questions",
	},
	{
		applies: func(m engine.ConversationMetrics, a engine.ResponseAnalysis) bool {
			return a.SpecialInterest
		},
		phrase: "telling me about what you love",
	},
	{
		applies: func(m engine.ConversationMetrics, a engine.ResponseAnalysis) bool {
			return m.TurnTaking > 80
		},
		phrase: "excellent turn-taking",
	},
}

// Compose builds the feedback string for one turn. The opening line is
// picked by the unweighted mean of the six metrics, deliberately not the
// weighted overall score, so praise tracks the raw dimensions.
func Compose(m engine.ConversationMetrics, a engine.ResponseAnalysis, ctx *engine.ConversationContext) string {
	avg := engine.AverageScore(m)

	var b strings.Builder
	switch {
	case avg >= 85:
		b.WriteString("Wow, you're doing amazing!")
	case avg >= 75:
		b.WriteString("You're doing really well!")
	case avg >= 65:
		b.WriteString("Nice work, you're getting it!")
	default:
		b.WriteString("Thanks for chatting with me!")
	}

	if picked := pickStrengths(m, a); len(picked) > 0 {
		b.WriteString(" I loved ")
		b.WriteString(joinList(picked))
		b.WriteString(".")
	}

	if avg >= 65 {
		if improvements := pickImprovements(a); len(improvements) > 0 {
			b.WriteString(" Next time, let's practice ")
			b.WriteString(joinList(improvements))
			b.WriteString(".")
		}
	}

	switch ctx.Style {
	case engine.StyleMinimal:
		b.WriteString(" Every word you share is a gift!")
	case engine.StyleEcholalic:
		b.WriteString(" I love how you play with words!")
	}

	b.WriteString(" Keep being you!")
	return b.String()
}

func pickStrengths(m engine.ConversationMetrics, a engine.ResponseAnalysis) []string {
	var picked []string
	for _, s := range strengths {
		if s.applies(m, a) {
			picked = append(picked, s.phrase)
		}
	}
	return picked
}

func pickImprovements(a engine.ResponseAnalysis) []string {
	if a.Relevance < 60 && !a.SpecialInterest {
		return []string{"staying on our topic"}
	}
	return nil
}

// joinList renders "a", "a and b", or "a, b, and c".
func joinList(items []string) string {
	switch len(items) {
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}
