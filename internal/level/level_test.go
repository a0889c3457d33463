package level

import (
	"testing"

	"github.com/perchlabs/chirp/internal/persona"
)

func TestAll_OrderedAndComplete(t *testing.T) {
	levels := All()
	if len(levels) != 5 {
		t.Fatalf("expected 5 levels, got %d", len(levels))
	}
	for i, l := range levels {
		if l.Order != i+1 {
			t.Errorf("level %q: order = %d, want %d", l.ID, l.Order, i+1)
		}
		if len(l.Objectives) == 0 {
			t.Errorf("level %q: no objectives", l.ID)
		}
		if len(l.Topics) == 0 {
			t.Errorf("level %q: no topics", l.ID)
		}
	}
}

func TestAll_PersonasExist(t *testing.T) {
	for _, l := range All() {
		if _, err := persona.Get(l.PersonaID); err != nil {
			t.Errorf("level %q: %v", l.ID, err)
		}
	}
}

func TestGet(t *testing.T) {
	l, err := Get("feelings")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if l.PersonaID != "dove" {
		t.Errorf("feelings persona = %q, want dove", l.PersonaID)
	}

	if _, err := Get("algebra"); err == nil {
		t.Error("expected error for unknown level")
	}
}
