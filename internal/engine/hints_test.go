package engine

import "testing"

func TestGenerateHints_KeywordMatch(t *testing.T) {
	tests := []struct {
		objective string
		wantFirst string
	}{
		{"Practice a friendly greeting", "Try saying 'hello' or 'hi'!"},
		{"Share your name with a friend", "You can say 'My name is...' and your name!"},
		{"Talk about a feeling", "You can say 'I feel happy' or 'I feel tired'!"},
		{"Take your turn in the conversation", "It's your turn to talk! Say anything you like!"},
	}

	for _, tt := range tests {
		ctx := &ConversationContext{Objectives: []string{tt.objective}}
		hints := GenerateHints(ctx)
		if len(hints) != 2 {
			t.Fatalf("GenerateHints(%q): got %d hints, want 2", tt.objective, len(hints))
		}
		if hints[0] != tt.wantFirst {
			t.Errorf("GenerateHints(%q)[0] = %q, want %q", tt.objective, hints[0], tt.wantFirst)
		}
	}
}

func TestGenerateHints_NoKeyword(t *testing.T) {
	ctx := &ConversationContext{Objectives: []string{"Count to ten"}}
	if hints := GenerateHints(ctx); len(hints) != 0 {
		t.Errorf("expected no hints, got %v", hints)
	}
}

func TestGenerateHints_ObjectiveIndexClamped(t *testing.T) {
	ctx := &ConversationContext{
		Objectives:    []string{"Say a greeting", "Share a feeling"},
		ExchangeCount: 7,
	}
	hints := GenerateHints(ctx)
	if len(hints) != 2 || hints[0] != hintTable["feeling"][0] {
		t.Errorf("expected feeling hints for clamped objective, got %v", hints)
	}
}
