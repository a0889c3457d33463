// Package chat is the conversation screen: a message transcript with the
// bird persona, a text input for the child, and an end-of-chat summary.
package chat

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/perchlabs/chirp/internal/conversation"
	"github.com/perchlabs/chirp/internal/llm"
	"github.com/perchlabs/chirp/internal/screen"
	"github.com/perchlabs/chirp/internal/store"
	"github.com/perchlabs/chirp/internal/ui/components"
	"github.com/perchlabs/chirp/internal/ui/layout"
)

// speaker tags who said a transcript line.
type speaker int

const (
	speakerBird speaker = iota
	speakerKid
)

// transcriptEntry is one rendered line of the conversation.
type transcriptEntry struct {
	who  speaker
	text string
}

// ChatScreen implements screen.Screen for a running conversation.
type ChatScreen struct {
	manager *conversation.Manager
	params  conversation.Params

	input      components.TextInput
	transcript []transcriptEntry
	feedback   string
	hints      []string
	score      int
	exchange   int

	waiting bool
	ended   bool
	spinner int
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)

// New creates a ChatScreen for the given level and learner.
func New(curriculum store.CurriculumRepo, results store.ResultRepo, provider llm.Provider, params conversation.Params) *ChatScreen {
	return &ChatScreen{
		manager: conversation.NewManager(curriculum, results, provider),
		params:  params,
		input:   components.NewTextInput("Say something to your bird friend...", 200),
	}
}

func (c *ChatScreen) Init() tea.Cmd {
	return tea.Batch(
		c.startConversation(),
		c.input.Init(),
		c.spinnerTick(),
	)
}

func (c *ChatScreen) Title() string {
	if p := c.manager.Persona(); p.Name != "" {
		return "Chatting with " + p.Name
	}
	return "Chat"
}

func (c *ChatScreen) KeyHints() []layout.KeyHint {
	if c.ended {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back to nest"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Esc", Description: "Leave chat"},
	}
}

func (c *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case greetingReadyMsg:
		c.transcript = append(c.transcript, transcriptEntry{speakerBird, msg.Resp.ReplyText})
		return c, nil

	case replyReadyMsg:
		return c.handleReply(msg)

	case spinnerTickMsg:
		if c.waiting {
			c.spinner++
		}
		return c, c.spinnerTick()

	case tea.KeyMsg:
		if msg.String() == "enter" && !c.waiting && !c.ended {
			utterance := strings.TrimSpace(c.input.Value())
			c.input.Reset()
			c.transcript = append(c.transcript, transcriptEntry{speakerKid, utterance})
			c.waiting = true
			c.feedback = ""
			c.hints = nil
			return c, c.processTurn(utterance)
		}
	}

	if !c.waiting && !c.ended {
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		return c, cmd
	}
	return c, nil
}

func (c *ChatScreen) handleReply(msg replyReadyMsg) (screen.Screen, tea.Cmd) {
	c.waiting = false
	if msg.Err != nil {
		// The manager substitutes fallbacks for provider errors, so an
		// error here means the conversation itself refused the turn.
		c.ended = true
		return c, nil
	}

	c.transcript = append(c.transcript, transcriptEntry{speakerBird, msg.Resp.ReplyText})
	c.feedback = msg.Resp.Feedback
	c.hints = msg.Resp.Hints
	c.score = msg.Resp.OverallScore
	c.exchange++

	if msg.Resp.ShouldEnd {
		c.ended = true
	}
	return c, nil
}

// Score returns the latest turn score for the header.
func (c *ChatScreen) Score() int { return c.score }

// Exchange returns the number of completed exchanges for the header.
func (c *ChatScreen) Exchange() int { return c.exchange }

func (c *ChatScreen) startConversation() tea.Cmd {
	return func() tea.Msg {
		resp := c.manager.Start(context.Background(), c.params)
		return greetingReadyMsg{Resp: resp}
	}
}

func (c *ChatScreen) processTurn(utterance string) tea.Cmd {
	return func() tea.Msg {
		resp, err := c.manager.ProcessTurn(context.Background(), utterance)
		return replyReadyMsg{Resp: resp, Err: err}
	}
}

func (c *ChatScreen) spinnerTick() tea.Cmd {
	return tea.Tick(150*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
