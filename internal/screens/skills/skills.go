// Package skills shows the learner's accumulated skill progress.
package skills

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/perchlabs/chirp/internal/screen"
	"github.com/perchlabs/chirp/internal/store"
	"github.com/perchlabs/chirp/internal/ui/components"
	"github.com/perchlabs/chirp/internal/ui/theme"
)

// skillTarget is the value at which a skill bar reads full.
const skillTarget = 100

// skillsLoadedMsg carries the skill rows once fetched.
type skillsLoadedMsg struct {
	Skills []store.UserSkill
	Err    error
}

// skillLabels maps skill IDs to friendly display names.
var skillLabels = map[string]string{
	"emotion_recognition": "Feelings Finder",
	"turn_taking":         "Turn Taker",
	"active_listening":    "Super Listener",
	"self_expression":     "Clear Speaker",
}

// SkillsScreen lists the learner's skills as progress bars.
type SkillsScreen struct {
	results store.ResultRepo
	userID  string

	skills []store.UserSkill
	loaded bool
	errMsg string
}

var _ screen.Screen = (*SkillsScreen)(nil)

// New creates a SkillsScreen for the given learner.
func New(results store.ResultRepo, userID string) *SkillsScreen {
	return &SkillsScreen{results: results, userID: userID}
}

func (s *SkillsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		skills, err := s.results.Skills(context.Background(), s.userID)
		return skillsLoadedMsg{Skills: skills, Err: err}
	}
}

func (s *SkillsScreen) Title() string {
	return "My Skills"
}

func (s *SkillsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(skillsLoadedMsg); ok {
		s.loaded = true
		s.skills = m.Skills
		if m.Err != nil {
			s.errMsg = m.Err.Error()
		}
	}
	return s, nil
}

func (s *SkillsScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Your Growing Skills"))
	b.WriteString("\n\n")

	switch {
	case !s.loaded:
		b.WriteString(theme.Hint.Render("  Counting your feathers..."))
	case s.errMsg != "":
		b.WriteString(theme.Hint.Render("  Couldn't load skills: " + s.errMsg))
	case len(s.skills) == 0:
		b.WriteString(theme.Hint.Render("  No skills yet. Go chat with a bird friend!"))
	default:
		barWidth := width - 8
		if barWidth > 50 {
			barWidth = 50
		}
		for _, sk := range s.skills {
			label := skillLabels[sk.SkillID]
			if label == "" {
				label = sk.SkillID
			}
			percent := float64(sk.Value) / float64(skillTarget)
			if percent > 1 {
				percent = 1
			}
			bar := components.NewProgressBar(padLabel(label, 16), percent, true, barWidth)
			b.WriteString("  " + bar.View() + "\n\n")
		}
	}

	return b.String()
}

func padLabel(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
