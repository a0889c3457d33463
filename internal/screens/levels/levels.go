// Package levels is the level picker: the curriculum in play order, each
// hosted by its bird persona.
package levels

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/perchlabs/chirp/internal/conversation"
	"github.com/perchlabs/chirp/internal/level"
	"github.com/perchlabs/chirp/internal/llm"
	"github.com/perchlabs/chirp/internal/persona"
	"github.com/perchlabs/chirp/internal/router"
	"github.com/perchlabs/chirp/internal/screen"
	"github.com/perchlabs/chirp/internal/screens/chat"
	"github.com/perchlabs/chirp/internal/store"
	"github.com/perchlabs/chirp/internal/ui/components"
	"github.com/perchlabs/chirp/internal/ui/theme"
)

// levelsLoadedMsg carries the curriculum once fetched.
type levelsLoadedMsg struct {
	Levels []level.Level
}

// LevelsScreen lists the curriculum and starts a chat on selection.
type LevelsScreen struct {
	curriculum store.CurriculumRepo
	results    store.ResultRepo
	provider   llm.Provider
	params     conversation.Params

	levels []level.Level
	menu   components.Menu
	loaded bool
}

var _ screen.Screen = (*LevelsScreen)(nil)

// New creates a LevelsScreen. The params' LevelID is ignored; selection
// fills it in.
func New(curriculum store.CurriculumRepo, results store.ResultRepo, provider llm.Provider, params conversation.Params) *LevelsScreen {
	return &LevelsScreen{
		curriculum: curriculum,
		results:    results,
		provider:   provider,
		params:     params,
	}
}

func (l *LevelsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		levels, err := l.curriculum.ListLevels(context.Background())
		if err != nil || len(levels) == 0 {
			// The built-in curriculum always works, seeded or not.
			levels = level.All()
		}
		return levelsLoadedMsg{Levels: levels}
	}
}

func (l *LevelsScreen) Title() string {
	return "Choose a Level"
}

func (l *LevelsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case levelsLoadedMsg:
		l.levels = msg.Levels
		l.menu = components.NewMenu(l.menuItems())
		l.loaded = true
		return l, nil
	}

	if l.loaded {
		var cmd tea.Cmd
		l.menu, cmd = l.menu.Update(msg)
		return l, cmd
	}
	return l, nil
}

func (l *LevelsScreen) menuItems() []components.MenuItem {
	items := make([]components.MenuItem, 0, len(l.levels))
	for _, lv := range l.levels {
		emoji := "🐦"
		if p, err := persona.Get(lv.PersonaID); err == nil {
			emoji = p.Emoji
		}
		label := fmt.Sprintf("%s  %s", emoji, lv.Name)
		params := l.params
		params.LevelID = lv.ID
		items = append(items, components.MenuItem{
			Label: label,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: chat.New(l.curriculum, l.results, l.provider, params),
					}
				}
			},
		})
	}
	return items
}

func (l *LevelsScreen) View(width, height int) string {
	if !l.loaded {
		return theme.Hint.Render("\n  Finding your bird friends...")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Who do you want to chat with today?"))
	b.WriteString("\n\n")
	b.WriteString(l.menu.View())

	if l.menu.Selected >= 0 && l.menu.Selected < len(l.levels) {
		lv := l.levels[l.menu.Selected]
		desc := fmt.Sprintf("Practice: %s", strings.Join(lv.Topics, ", "))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(width).
			Align(lipgloss.Center).
			Render(desc))
	}

	return b.String()
}
