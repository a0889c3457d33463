package persona

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/perchlabs/chirp/internal/engine"
)

// Persona is a named bird character with a fixed teaching style and voice.
// Personas drive prompt construction and reply tone.
type Persona struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Emoji      string `json:"emoji"`
	BasePrompt string `json:"base_prompt"`

	// Style is the persona's teaching-style bullet list.
	Style []string `json:"style"`

	// Adaptations maps each communication style to guidance for adapting
	// delivery to that learner.
	Adaptations map[engine.CommunicationStyle]string `json:"adaptations"`
}

// personaSchema declares the required shape of a persona template. Every
// template must carry a base prompt, style bullets, and an adaptation for
// each communication style.
var personaSchema = map[string]any{
	"type":     "object",
	"required": []any{"id", "name", "emoji", "base_prompt", "style", "adaptations"},
	"properties": map[string]any{
		"id":          map[string]any{"type": "string", "minLength": 1},
		"name":        map[string]any{"type": "string", "minLength": 1},
		"emoji":       map[string]any{"type": "string", "minLength": 1},
		"base_prompt": map[string]any{"type": "string", "minLength": 1},
		"style": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items":    map[string]any{"type": "string"},
		},
		"adaptations": map[string]any{
			"type":     "object",
			"required": []any{"verbal", "minimal", "echolalic"},
		},
	},
}

var (
	loadOnce sync.Once
	registry map[string]Persona
	loadErr  error
)

// Load validates the built-in persona templates and returns the registry
// keyed by persona ID. Validation runs once; subsequent calls return the
// cached result.
func Load() (map[string]Persona, error) {
	loadOnce.Do(func() {
		compiled, err := compileSchema()
		if err != nil {
			loadErr = fmt.Errorf("compile persona schema: %w", err)
			return
		}

		reg := make(map[string]Persona, len(builtins))
		for _, p := range builtins {
			if err := validatePersona(compiled, p); err != nil {
				loadErr = fmt.Errorf("persona %q: %w", p.ID, err)
				return
			}
			reg[p.ID] = p
		}
		registry = reg
	})
	return registry, loadErr
}

// Get returns a persona by ID.
func Get(id string) (Persona, error) {
	reg, err := Load()
	if err != nil {
		return Persona{}, err
	}
	p, ok := reg[id]
	if !ok {
		return Persona{}, fmt.Errorf("unknown persona: %q", id)
	}
	return p, nil
}

// All returns every built-in persona in definition order.
func All() ([]Persona, error) {
	if _, err := Load(); err != nil {
		return nil, err
	}
	return builtins, nil
}

func compileSchema() (*jsonschema.Schema, error) {
	// The jsonschema library expects a parsed JSON value, not raw bytes.
	b, err := json.Marshal(personaSchema)
	if err != nil {
		return nil, err
	}
	var parsed any
	if err := json.Unmarshal(b, &parsed); err != nil {
		return nil, err
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema://persona.json", parsed); err != nil {
		return nil, err
	}
	return c.Compile("schema://persona.json")
}

func validatePersona(schema *jsonschema.Schema, p Persona) error {
	b, err := json.Marshal(p)
	if err != nil {
		return err
	}
	var parsed any
	if err := json.Unmarshal(b, &parsed); err != nil {
		return err
	}
	return schema.Validate(parsed)
}
