// Package prompt assembles the steering instructions handed to the
// generation provider. The returned text tells the model who it is, where
// the conversation stands, and how the next reply should behave; the
// model's reply is treated as opaque downstream.
package prompt

import (
	"fmt"
	"strings"

	"github.com/perchlabs/chirp/internal/engine"
	"github.com/perchlabs/chirp/internal/persona"
)

// TotalExchanges is the nominal conversation length shown to the model.
const TotalExchanges = 5

// directives maps each next-action to its response-style line. Exactly one
// directive is active per turn; continue adds none.
var directives = map[engine.NextAction]string{
	engine.ActionProvideHint: "Offer a gentle hint or choice.",
	engine.ActionSimplify:    "Simplify and offer binary choices.",
	engine.ActionCelebrate:   "Celebrate enthusiastically.",
	engine.ActionWrapUp:      "Wrap up and summarize positives.",
}

// Build assembles the full steering text for one turn: persona identity,
// teaching style, communication-style adaptation, contextual state lines,
// and the next-action directive.
func Build(p persona.Persona, ctx *engine.ConversationContext, a engine.ResponseAnalysis) string {
	var b strings.Builder

	b.WriteString(p.BasePrompt)
	b.WriteString("\n\nTeaching style:\n")
	for _, s := range p.Style {
		b.WriteString(fmt.Sprintf("- %s\n", s))
	}

	if adaptation := p.Adaptations[ctx.Style]; adaptation != "" {
		b.WriteString(fmt.Sprintf("\nThis child communicates in a %s style. %s\n", ctx.Style, adaptation))
	}

	b.WriteString("\nConversation state:\n")
	if objective := ctx.CurrentObjective(); objective != "" {
		b.WriteString(fmt.Sprintf("- Current objective: %s\n", objective))
	}
	b.WriteString(fmt.Sprintf("- This is exchange %d of %d\n", ctx.ExchangeCount+1, TotalExchanges))
	b.WriteString(fmt.Sprintf("- The child's engagement is %s\n", a.Engagement))
	if ctx.Age > 0 {
		b.WriteString(fmt.Sprintf("- The child is %d years old\n", ctx.Age))
	}
	if a.SpecialInterest {
		b.WriteString("- The child mentioned a special interest: weave it into your reply\n")
	}
	if a.ProcessingTime {
		b.WriteString("- The child needs extra time: keep your reply very short and wait patiently\n")
	}
	if a.NeedsSupport {
		b.WriteString("- The child needs support: make the next step as easy as possible\n")
	}

	if d, ok := directives[a.NextAction]; ok {
		b.WriteString("\nResponse style: ")
		b.WriteString(d)
		b.WriteString("\n")
	}

	return b.String()
}
