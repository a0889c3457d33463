// Package home is the main menu: start a chat, pick a level, or check
// skill progress.
package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/perchlabs/chirp/internal/conversation"
	"github.com/perchlabs/chirp/internal/llm"
	"github.com/perchlabs/chirp/internal/router"
	"github.com/perchlabs/chirp/internal/screen"
	"github.com/perchlabs/chirp/internal/screens/chat"
	"github.com/perchlabs/chirp/internal/screens/levels"
	"github.com/perchlabs/chirp/internal/screens/skills"
	"github.com/perchlabs/chirp/internal/store"
	"github.com/perchlabs/chirp/internal/ui/components"
	"github.com/perchlabs/chirp/internal/ui/theme"
)

const banner = `
  ╭───────────────────────────╮
  │   🐦  C H I R P  🐦       │
  │  chat with bird friends   │
  ╰───────────────────────────╯`

// defaultLevelID is where "Start Chatting" begins when the learner hasn't
// picked a level.
const defaultLevelID = "greetings"

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen wired to the store and provider.
func New(curriculum store.CurriculumRepo, results store.ResultRepo, provider llm.Provider, params conversation.Params) *HomeScreen {
	items := []components.MenuItem{
		{Label: "START CHATTING", Action: func() tea.Cmd {
			p := params
			p.LevelID = defaultLevelID
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: chat.New(curriculum, results, provider, p),
				}
			}
		}},
		{Label: "CHOOSE A LEVEL", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: levels.New(curriculum, results, provider, params),
				}
			}
		}},
		{Label: "MY SKILLS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: skills.New(results, params.UserID),
				}
			}
		}},
		{Label: "FLY AWAY", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{menu: components.NewMenu(items)}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Width(width).
		Align(lipgloss.Center).
		Render(banner))
	b.WriteString("\n\n")

	menu := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(h.menu.View())
	b.WriteString(menu)

	return b.String()
}

func (h *HomeScreen) Title() string {
	return "Nest"
}
