package conversation

import (
	"math"

	"github.com/perchlabs/chirp/internal/engine"
)

// Outcome is the aggregate result of a finished conversation, derived by
// folding over the retained per-turn analyses.
type Outcome struct {
	Metrics      engine.ConversationMetrics
	OverallScore int
	SkillDeltas  map[string]int
	Achievements []string
}

// DeriveOutcome aggregates per-turn analyses into conversation-level
// metrics, skill deltas, and achievement tags. Skill threshold tests are
// independent: several deltas may apply at once.
func DeriveOutcome(analyses []engine.ResponseAnalysis) Outcome {
	metrics := aggregateMetrics(analyses)

	deltas := make(map[string]int)
	if metrics.EmotionalAwareness > 70 {
		deltas["emotion_recognition"] = 10
	}
	if metrics.TurnTaking > 75 {
		deltas["turn_taking"] = 10
	}
	if metrics.Engagement > 80 {
		deltas["active_listening"] = 10
	}
	if metrics.Clarity > 75 {
		deltas["self_expression"] = 10
	}

	return Outcome{
		Metrics:      metrics,
		OverallScore: engine.OverallScore(metrics),
		SkillDeltas:  deltas,
		Achievements: deriveAchievements(analyses, metrics),
	}
}

// aggregateMetrics averages each metric dimension over all turns.
func aggregateMetrics(analyses []engine.ResponseAnalysis) engine.ConversationMetrics {
	if len(analyses) == 0 {
		return engine.ConversationMetrics{}
	}

	var sum engine.ConversationMetrics
	for _, a := range analyses {
		m := engine.CalculateMetrics(a)
		sum.Relevance += m.Relevance
		sum.TurnTaking += m.TurnTaking
		sum.EmotionalAwareness += m.EmotionalAwareness
		sum.Clarity += m.Clarity
		sum.Engagement += m.Engagement
		sum.SkillDemonstration += m.SkillDemonstration
	}

	n := float64(len(analyses))
	return engine.ConversationMetrics{
		Relevance:          mean(sum.Relevance, n),
		TurnTaking:         mean(sum.TurnTaking, n),
		EmotionalAwareness: mean(sum.EmotionalAwareness, n),
		Clarity:            mean(sum.Clarity, n),
		Engagement:         mean(sum.Engagement, n),
		SkillDemonstration: mean(sum.SkillDemonstration, n),
	}
}

func mean(sum int, n float64) int {
	return int(math.Round(float64(sum) / n))
}

func deriveAchievements(analyses []engine.ResponseAnalysis, metrics engine.ConversationMetrics) []string {
	if len(analyses) == 0 {
		return nil
	}

	var achievements []string

	for _, a := range analyses {
		if a.SpecialInterest {
			achievements = append(achievements, "shared_interest")
			break
		}
	}

	if metrics.Engagement > 90 {
		achievements = append(achievements, "super_engaged")
	}

	perfectTurns := true
	for _, a := range analyses {
		if !a.TurnAppropriate {
			perfectTurns = false
			break
		}
	}
	if perfectTurns {
		achievements = append(achievements, "perfect_turns")
	}

	return achievements
}
