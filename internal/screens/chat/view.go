package chat

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/perchlabs/chirp/internal/ui/theme"
)

var spinnerFrames = []string{"∙∙∙", "●∙∙", "∙●∙", "∙∙●"}

func (c *ChatScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(c.renderTranscript(width, height))
	b.WriteString("\n")

	switch {
	case c.ended:
		b.WriteString(c.renderSummary(width))
	case c.waiting:
		thinking := fmt.Sprintf("%s %s is thinking %s",
			c.manager.Persona().Emoji,
			c.manager.Persona().Name,
			spinnerFrames[c.spinner%len(spinnerFrames)])
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("  " + thinking))
	default:
		if len(c.hints) > 0 {
			for _, h := range c.hints {
				b.WriteString(theme.Hint.Render("  💡 " + h))
				b.WriteString("\n")
			}
		}
		b.WriteString("  " + c.input.View())
	}

	return b.String()
}

// renderTranscript shows as many trailing messages as fit the height,
// leaving room for the input or summary block below.
func (c *ChatScreen) renderTranscript(width, height int) string {
	bubbleWidth := width - 12
	if bubbleWidth < 20 {
		bubbleWidth = 20
	}

	var lines []string
	for _, entry := range c.transcript {
		var bubble string
		if entry.who == speakerBird {
			label := c.manager.Persona().Emoji + " "
			bubble = label + theme.BirdBubble.MaxWidth(bubbleWidth).Render(entry.text)
		} else {
			text := entry.text
			if text == "" {
				text = "…"
			}
			kid := theme.KidBubble.MaxWidth(bubbleWidth).Render(text)
			bubble = lipgloss.NewStyle().
				Width(width - 4).
				Align(lipgloss.Right).
				Render(kid)
		}
		lines = append(lines, "  "+bubble)
	}

	available := height - 8
	if available < 3 {
		available = 3
	}
	rendered := strings.Join(lines, "\n")
	renderedLines := strings.Split(rendered, "\n")
	if len(renderedLines) > available {
		renderedLines = renderedLines[len(renderedLines)-available:]
	}
	return strings.Join(renderedLines, "\n")
}

// renderSummary shows the end-of-conversation wrap-up.
func (c *ChatScreen) renderSummary(width int) string {
	outcome := c.manager.Outcome()

	var b strings.Builder
	b.WriteString(theme.Celebrate.Render("  🎉 Great chatting with you!"))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("  Score: %d", outcome.OverallScore)))
	b.WriteString("\n")

	if len(outcome.Achievements) > 0 {
		b.WriteString(theme.Body.Render("  Badges: "))
		badges := make([]string, 0, len(outcome.Achievements))
		for _, a := range outcome.Achievements {
			badges = append(badges, badgeLabel(a))
		}
		b.WriteString(theme.Celebrate.Render(strings.Join(badges, "  ")))
		b.WriteString("\n")
	}

	if c.feedback != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Width(width - 4).
			Render("  " + c.feedback))
		b.WriteString("\n")
	}

	return b.String()
}

func badgeLabel(achievement string) string {
	switch achievement {
	case "shared_interest":
		return "⭐ Shared what you love"
	case "super_engaged":
		return "🚀 Super engaged"
	case "perfect_turns":
		return "🤝 Perfect turns"
	default:
		return achievement
	}
}
