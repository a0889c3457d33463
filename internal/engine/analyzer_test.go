package engine

import (
	"strings"
	"testing"
)

func testContext() *ConversationContext {
	return &ConversationContext{
		ConversationID: "conv-1",
		UserID:         "user-1",
		LevelID:        "level-greetings",
		Objectives:     []string{"Say hello appropriately"},
	}
}

func TestAnalyze_SingleWordNeedsSupport(t *testing.T) {
	ctx := testContext()
	for _, utterance := range []string{"ok", "yes", "banana", "no"} {
		a := Analyze(utterance, ctx)
		if !a.NeedsSupport {
			t.Errorf("Analyze(%q): expected needs-support", utterance)
		}
		if a.Engagement != EngagementLow {
			t.Errorf("Analyze(%q): engagement = %s, want low", utterance, a.Engagement)
		}
	}
}

func TestAnalyze_SpecialInterestForcesEngagement(t *testing.T) {
	ctx := testContext()
	ctx.SpecialInterests = []string{"dinosaurs", "trains"}

	tests := []string{
		"I saw dinosaurs at the museum",
		"TRAINS are the best",
		"trains",
	}
	for _, utterance := range tests {
		a := Analyze(utterance, ctx)
		if !a.SpecialInterest {
			t.Errorf("Analyze(%q): expected special-interest mention", utterance)
		}
		if a.Engagement != EngagementHigh {
			t.Errorf("Analyze(%q): engagement = %s, want high", utterance, a.Engagement)
		}
		if a.Relevance < 70 {
			t.Errorf("Analyze(%q): relevance = %d, want >= 70", utterance, a.Relevance)
		}
	}
}

func TestAnalyze_GreetingScenario(t *testing.T) {
	// "hi" counts toward the "Say hello appropriately" objective via the
	// synonym canonicalization, not the plain word count path.
	ctx := testContext()
	a := Analyze("hi", ctx)

	if a.Relevance != 80 {
		t.Errorf("relevance = %d, want 80", a.Relevance)
	}
	if a.Engagement != EngagementMedium {
		t.Errorf("engagement = %s, want medium", a.Engagement)
	}
	if a.NeedsSupport {
		t.Error("a single word that meets the objective should not flag support")
	}
	if a.NextAction != ActionContinue {
		t.Errorf("next action = %s, want continue", a.NextAction)
	}
}

func TestAnalyze_MultiWordGreetingContinues(t *testing.T) {
	ctx := testContext()
	a := Analyze("hello there my friend", ctx)

	if a.Relevance != 80 {
		t.Errorf("relevance = %d, want 80", a.Relevance)
	}
	if a.Engagement != EngagementMedium {
		t.Errorf("engagement = %s, want medium", a.Engagement)
	}
	if a.NextAction != ActionContinue {
		t.Errorf("next action = %s, want continue", a.NextAction)
	}
}

func TestAnalyze_EmptyUtteranceHint(t *testing.T) {
	ctx := testContext()
	ctx.ExchangeCount = 3
	a := Analyze("", ctx)

	if !a.ProcessingTime {
		t.Error("expected processing-time flag")
	}
	if a.Relevance != 0 {
		t.Errorf("relevance = %d, want 0", a.Relevance)
	}
	// Exchange counter is below the wrap-up threshold, so the tentative
	// hint directive stands.
	if a.NextAction != ActionProvideHint {
		t.Errorf("next action = %s, want provide_hint", a.NextAction)
	}
}

func TestAnalyze_ProcessingTimeMarkers(t *testing.T) {
	ctx := testContext()
	for _, utterance := range []string{"...", "um", "Uh"} {
		a := Analyze(utterance, ctx)
		if !a.ProcessingTime {
			t.Errorf("Analyze(%q): expected processing-time flag", utterance)
		}
	}
}

func TestAnalyze_WrapUpOverridesEverything(t *testing.T) {
	ctx := testContext()
	ctx.ExchangeCount = 4

	// Twelve words, no keyword match: would otherwise celebrate.
	a := Analyze("one two three four five six seven eight nine ten eleven twelve", ctx)
	if a.Engagement != EngagementHigh {
		t.Errorf("engagement = %s, want high", a.Engagement)
	}
	if a.NextAction != ActionWrapUp {
		t.Errorf("next action = %s, want wrap_up", a.NextAction)
	}

	// Even a support case wraps up at this point.
	a = Analyze("ok", ctx)
	if a.NextAction != ActionWrapUp {
		t.Errorf("next action = %s, want wrap_up", a.NextAction)
	}
}

func TestAnalyze_HighEngagementCelebrates(t *testing.T) {
	ctx := testContext()
	a := Analyze("today I played outside with my brother and we built a huge fort", ctx)

	if a.Engagement != EngagementHigh {
		t.Errorf("engagement = %s, want high", a.Engagement)
	}
	if a.NextAction != ActionCelebrate {
		t.Errorf("next action = %s, want celebrate", a.NextAction)
	}
}

func TestAnalyze_EmotionDetection(t *testing.T) {
	ctx := testContext()
	a := Analyze("I am happy but a little worried", ctx)

	want := []string{"happy", "worried"}
	if len(a.Emotions) != len(want) {
		t.Fatalf("emotions = %v, want %v", a.Emotions, want)
	}
	for i, e := range want {
		if a.Emotions[i] != e {
			t.Errorf("emotions[%d] = %q, want %q", i, a.Emotions[i], e)
		}
	}
	if !containsStrategy(a, "emotion_expression") {
		t.Error("expected emotion_expression strategy")
	}
}

func TestAnalyze_QuestionDetection(t *testing.T) {
	ctx := testContext()
	tests := []struct {
		utterance string
		want      bool
	}{
		{"do you like birds?", true},
		{"What is your favorite color", true},
		{"why do birds sing", true},
		{"How are you", true},
		{"birds are nice", false},
	}
	for _, tt := range tests {
		a := Analyze(tt.utterance, ctx)
		if a.QuestionAsked != tt.want {
			t.Errorf("Analyze(%q): question = %v, want %v", tt.utterance, a.QuestionAsked, tt.want)
		}
		if tt.want && !containsStrategy(a, "question_asking") {
			t.Errorf("Analyze(%q): expected question_asking strategy", tt.utterance)
		}
	}
}

func TestAnalyze_ElaborationStrategy(t *testing.T) {
	ctx := testContext()
	a := Analyze("I really like playing outside in the park", ctx)
	if !containsStrategy(a, "elaboration") {
		t.Error("expected elaboration strategy for an 8-word utterance")
	}

	a = Analyze("I like parks", ctx)
	if containsStrategy(a, "elaboration") {
		t.Error("did not expect elaboration strategy for a 3-word utterance")
	}
}

func TestAnalyze_TurnAppropriateAlwaysTrue(t *testing.T) {
	ctx := testContext()
	for _, utterance := range []string{"", "hi", "...", strings.Repeat("word ", 20)} {
		a := Analyze(utterance, ctx)
		if !a.TurnAppropriate {
			t.Errorf("Analyze(%q): turn-appropriate = false", utterance)
		}
	}
}

func containsStrategy(a ResponseAnalysis, s string) bool {
	for _, got := range a.Strategies {
		if got == s {
			return true
		}
	}
	return false
}
