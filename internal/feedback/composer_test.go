package feedback

import (
	"strings"
	"testing"

	"github.com/perchlabs/chirp/internal/engine"
)

func TestCompose_OpeningBands(t *testing.T) {
	ctx := &engine.ConversationContext{Style: engine.StyleVerbal}

	tests := []struct {
		name string
		m    engine.ConversationMetrics
		want string
	}{
		{
			name: "top band",
			m: engine.ConversationMetrics{
				Relevance: 90, TurnTaking: 90, EmotionalAwareness: 90,
				Clarity: 90, Engagement: 90, SkillDemonstration: 90,
			},
			want: "Wow, you're doing amazing!",
		},
		{
			name: "second band",
			m: engine.ConversationMetrics{
				Relevance: 80, TurnTaking: 80, EmotionalAwareness: 80,
				Clarity: 80, Engagement: 80, SkillDemonstration: 80,
			},
			want: "You're doing really well!",
		},
		{
			name: "third band",
			m: engine.ConversationMetrics{
				Relevance: 70, TurnTaking: 70, EmotionalAwareness: 70,
				Clarity: 70, Engagement: 70, SkillDemonstration: 70,
			},
			want: "Nice work, you're getting it!",
		},
		{
			name: "bottom band",
			m:    engine.ConversationMetrics{},
			want: "Thanks for chatting with me!",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compose(tt.m, engine.ResponseAnalysis{}, ctx)
			if !strings.HasPrefix(got, tt.want) {
				t.Errorf("Compose() = %q, want prefix %q", got, tt.want)
			}
		})
	}
}

func TestCompose_Strengths(t *testing.T) {
	ctx := &engine.ConversationContext{Style: engine.StyleVerbal}
	m := engine.ConversationMetrics{Engagement: 95, TurnTaking: 85}
	a := engine.ResponseAnalysis{
		Emotions:        []string{"happy"},
		QuestionAsked:   true,
		SpecialInterest: true,
	}

	got := Compose(m, a, ctx)
	for _, want := range []string{
		"your wonderful energy",
		"sharing your feelings",
		"asking great questions",
		"telling me about what you love",
		"excellent turn-taking",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("feedback missing %q:\n%s", want, got)
		}
	}
}

func TestCompose_ImprovementGating(t *testing.T) {
	ctx := &engine.ConversationContext{Style: engine.StyleVerbal}
	offTopic := engine.ResponseAnalysis{Relevance: 40}

	// Above the band threshold the improvement shows.
	high := engine.ConversationMetrics{
		Relevance: 70, TurnTaking: 70, EmotionalAwareness: 70,
		Clarity: 70, Engagement: 70, SkillDemonstration: 70,
	}
	if got := Compose(high, offTopic, ctx); !strings.Contains(got, "staying on our topic") {
		t.Errorf("expected improvement clause, got %q", got)
	}

	// Below avgScore 65 the improvement clause is suppressed.
	if got := Compose(engine.ConversationMetrics{}, offTopic, ctx); strings.Contains(got, "staying on our topic") {
		t.Errorf("improvement clause should be gated on avgScore, got %q", got)
	}

	// A special interest excuses low relevance.
	si := engine.ResponseAnalysis{Relevance: 40, SpecialInterest: true}
	if got := Compose(high, si, ctx); strings.Contains(got, "staying on our topic") {
		t.Errorf("special interest should suppress improvement, got %q", got)
	}
}

func TestCompose_StyleLines(t *testing.T) {
	m := engine.ConversationMetrics{}
	a := engine.ResponseAnalysis{}

	minimal := Compose(m, a, &engine.ConversationContext{Style: engine.StyleMinimal})
	if !strings.Contains(minimal, "Every word you share is a gift!") {
		t.Errorf("minimal style line missing: %q", minimal)
	}

	echolalic := Compose(m, a, &engine.ConversationContext{Style: engine.StyleEcholalic})
	if !strings.Contains(echolalic, "I love how you play with words!") {
		t.Errorf("echolalic style line missing: %q", echolalic)
	}

	verbal := Compose(m, a, &engine.ConversationContext{Style: engine.StyleVerbal})
	if strings.Contains(verbal, "gift") || strings.Contains(verbal, "play with words") {
		t.Errorf("verbal style should add no extra line: %q", verbal)
	}
}

func TestCompose_AlwaysCloses(t *testing.T) {
	got := Compose(engine.ConversationMetrics{}, engine.ResponseAnalysis{}, &engine.ConversationContext{})
	if !strings.HasSuffix(got, "Keep being you!") {
		t.Errorf("missing closing phrase: %q", got)
	}
}
