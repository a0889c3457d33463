package engine

import "strings"

// hintTable maps objective keywords to canned hint pairs. Hints are fixed
// strings, not generated.
var hintTable = map[string][]string{
	"greeting": {
		"Try saying 'hello' or 'hi'!",
		"You can wave and say your favorite hello!",
	},
	"name": {
		"You can say 'My name is...' and your name!",
		"Try asking 'What's your name?'",
	},
	"feeling": {
		"You can say 'I feel happy' or 'I feel tired'!",
		"Try naming one feeling you have right now!",
	},
	"turn": {
		"It's your turn to talk! Say anything you like!",
		"Try answering, then ask me something back!",
	},
}

// hintKeywords is the match order for objective keywords. First match wins.
var hintKeywords = []string{"greeting", "name", "feeling", "turn"}

// GenerateHints returns remedial hints for the current objective. Only
// meaningful when the analysis flagged needs-support; returns nil when the
// objective matches no known keyword.
func GenerateHints(ctx *ConversationContext) []string {
	objective := strings.ToLower(ctx.CurrentObjective())
	for _, kw := range hintKeywords {
		if strings.Contains(objective, kw) {
			return hintTable[kw]
		}
	}
	return nil
}
