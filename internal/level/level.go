// Package level defines the conversation-practice curriculum: an ordered
// set of levels, each with its objectives, suggested topics, and the bird
// persona that hosts it.
package level

import "fmt"

// Level is one unit of the curriculum. Objectives are ordered: the
// objective in focus for a turn is indexed by the exchange counter.
type Level struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Order      int      `json:"order"`
	PersonaID  string   `json:"persona_id"`
	Objectives []string `json:"objectives"`
	Topics     []string `json:"topics"`
}

// builtins is the seed curriculum, in play order.
var builtins = []Level{
	{
		ID:        "greetings",
		Name:      "Saying Hello",
		Order:     1,
		PersonaID: "robin",
		Objectives: []string{
			"Say hello appropriately",
			"Respond to a greeting",
			"Say goodbye warmly",
		},
		Topics: []string{"greetings", "waving", "morning routines"},
	},
	{
		ID:        "names",
		Name:      "Sharing Names",
		Order:     2,
		PersonaID: "owl",
		Objectives: []string{
			"Share your name when asked",
			"Ask a friend for their name",
			"Remember and use a friend's name",
		},
		Topics: []string{"names", "introductions", "new friends"},
	},
	{
		ID:        "feelings",
		Name:      "Talking About Feelings",
		Order:     3,
		PersonaID: "dove",
		Objectives: []string{
			"Name a feeling you are having",
			"Notice how a friend is feeling",
			"Say what helps when feelings are big",
		},
		Topics: []string{"feelings", "happy days", "comfort"},
	},
	{
		ID:        "turns",
		Name:      "Taking Turns",
		Order:     4,
		PersonaID: "penguin",
		Objectives: []string{
			"Wait for your turn to talk",
			"Ask a question and listen to the answer",
			"Keep a back-and-forth going",
		},
		Topics: []string{"games", "sharing", "listening"},
	},
	{
		ID:        "interests",
		Name:      "Sharing What You Love",
		Order:     5,
		PersonaID: "parrot",
		Objectives: []string{
			"Tell a friend about something you love",
			"Ask a friend what they love",
			"Find something you both enjoy",
		},
		Topics: []string{"hobbies", "favorite things", "collections"},
	},
}

// All returns the built-in levels in play order.
func All() []Level {
	out := make([]Level, len(builtins))
	copy(out, builtins)
	return out
}

// Get returns a built-in level by ID.
func Get(id string) (Level, error) {
	for _, l := range builtins {
		if l.ID == id {
			return l, nil
		}
	}
	return Level{}, fmt.Errorf("unknown level: %q", id)
}
