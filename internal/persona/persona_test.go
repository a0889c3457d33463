package persona

import (
	"testing"

	"github.com/perchlabs/chirp/internal/engine"
)

func TestLoad_AllBuiltinsValid(t *testing.T) {
	reg, err := Load()
	if err != nil {
		t.Fatalf("load personas: %v", err)
	}
	if len(reg) != 5 {
		t.Fatalf("expected 5 personas, got %d", len(reg))
	}
	for _, id := range []string{"robin", "owl", "parrot", "penguin", "dove"} {
		if _, ok := reg[id]; !ok {
			t.Errorf("missing persona %q", id)
		}
	}
}

func TestLoad_AdaptationsCoverAllStyles(t *testing.T) {
	reg, err := Load()
	if err != nil {
		t.Fatalf("load personas: %v", err)
	}
	styles := []engine.CommunicationStyle{
		engine.StyleVerbal, engine.StyleMinimal, engine.StyleEcholalic,
	}
	for id, p := range reg {
		for _, s := range styles {
			if p.Adaptations[s] == "" {
				t.Errorf("persona %q: missing adaptation for style %q", id, s)
			}
		}
	}
}

func TestGet_Unknown(t *testing.T) {
	if _, err := Get("ostrich"); err == nil {
		t.Error("expected error for unknown persona")
	}
}

func TestValidatePersona_RejectsIncomplete(t *testing.T) {
	compiled, err := compileSchema()
	if err != nil {
		t.Fatalf("compile schema: %v", err)
	}

	bad := Persona{
		ID:    "bare",
		Name:  "Bare Bird",
		Emoji: "🐤",
		// No base prompt, style, or adaptations.
	}
	if err := validatePersona(compiled, bad); err == nil {
		t.Error("expected validation failure for incomplete persona")
	}
}
