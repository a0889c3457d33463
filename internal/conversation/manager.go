// Package conversation runs the turn loop for one practice conversation:
// analyze the child's utterance, steer the persona's generated reply, score
// the exchange, and decide when to wind down.
package conversation

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/perchlabs/chirp/internal/engine"
	"github.com/perchlabs/chirp/internal/feedback"
	"github.com/perchlabs/chirp/internal/level"
	"github.com/perchlabs/chirp/internal/llm"
	"github.com/perchlabs/chirp/internal/persona"
	"github.com/perchlabs/chirp/internal/prompt"
	"github.com/perchlabs/chirp/internal/store"
)

// State is the lifecycle state of a conversation.
type State string

const (
	StateInitializing State = "initializing"
	StateActive       State = "active"
	StateEnding       State = "ending"
	StateCompleted    State = "completed"
)

// MaxExchanges is the exchange count at which a conversation winds down.
const MaxExchanges = 5

// AIResponse is the engine's structured output for one turn.
type AIResponse struct {
	ReplyText     string
	PersonaID     string
	Tone          engine.Tone
	ShouldEnd     bool
	OverallScore  int
	Feedback      string
	Hints         []string
	VisualSupport bool
	NextObjective string
}

// fallbackReplies is the deterministic reply table used when the generation
// call fails or returns empty text, keyed by next-action.
var fallbackReplies = map[engine.NextAction]string{
	engine.ActionContinue:    "That's interesting! Tell me more, friend!",
	engine.ActionProvideHint: "Let's try together! Would you like a little hint?",
	engine.ActionSimplify:    "Let's make it easy! Yes or no: are you having fun?",
	engine.ActionCelebrate:   "Wow, that was wonderful! You're doing so great!",
	engine.ActionWrapUp:      "We had such a lovely chat today! You did amazing!",
}

// Params configures a new conversation.
type Params struct {
	ConversationID   string // generated when empty
	UserID           string
	LevelID          string
	Age              int
	SpecialInterests []string
	Style            engine.CommunicationStyle
}

// Manager drives a single conversation through its lifecycle. A Manager is
// not safe for concurrent use: turns for one conversation are ordering
// dependent, so callers must submit them sequentially. Distinct
// conversations get distinct Managers and are fully independent.
type Manager struct {
	curriculum store.CurriculumRepo
	results    store.ResultRepo
	provider   llm.Provider

	generateTimeout time.Duration
	persistTimeout  time.Duration

	state    State
	convCtx  *engine.ConversationContext
	persona  persona.Persona
	level    level.Level
	analyses []engine.ResponseAnalysis
	history  []llm.Message
}

// Option configures a Manager.
type Option func(*Manager)

// WithGenerateTimeout bounds the external generation call.
func WithGenerateTimeout(d time.Duration) Option {
	return func(m *Manager) { m.generateTimeout = d }
}

// WithPersistTimeout bounds end-of-conversation persistence writes.
func WithPersistTimeout(d time.Duration) Option {
	return func(m *Manager) { m.persistTimeout = d }
}

// NewManager creates a Manager in the Initializing state.
func NewManager(curriculum store.CurriculumRepo, results store.ResultRepo, provider llm.Provider, opts ...Option) *Manager {
	m := &Manager{
		curriculum:      curriculum,
		results:         results,
		provider:        provider,
		generateTimeout: 30 * time.Second,
		persistTimeout:  5 * time.Second,
		state:           StateInitializing,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// State returns the current lifecycle state.
func (m *Manager) State() State { return m.state }

// Persona returns the persona hosting this conversation. Valid after Start.
func (m *Manager) Persona() persona.Persona { return m.persona }

// Level returns the level being practiced. Valid after Start.
func (m *Manager) Level() level.Level { return m.level }

// Start fetches the level and its persona, composes a personalized opening
// greeting, and transitions to Active. A missing level or persona never
// breaks conversation start: the Manager falls back to a generic greeting
// and a minimal default curriculum, logging the lookup failure.
func (m *Manager) Start(ctx context.Context, p Params) *AIResponse {
	if p.ConversationID == "" {
		p.ConversationID = uuid.NewString()
	}
	m.convCtx = &engine.ConversationContext{
		ConversationID:   p.ConversationID,
		UserID:           p.UserID,
		LevelID:          p.LevelID,
		Age:              p.Age,
		SpecialInterests: p.SpecialInterests,
		Style:            p.Style,
	}

	greeting, err := m.initialize(ctx, p.LevelID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: conversation init: %v\n", err)
		greeting = m.genericStart()
	}
	m.state = StateActive

	m.history = append(m.history, llm.Message{Role: llm.RoleAssistant, Content: greeting})
	return &AIResponse{
		ReplyText:     greeting,
		PersonaID:     m.persona.ID,
		Tone:          engine.ToneEncouraging,
		NextObjective: m.convCtx.CurrentObjective(),
	}
}

func (m *Manager) initialize(ctx context.Context, levelID string) (string, error) {
	l, err := m.curriculum.GetLevel(ctx, levelID)
	if err != nil {
		return "", err
	}
	p, err := m.curriculum.GetPersona(ctx, l.PersonaID)
	if err != nil {
		return "", err
	}
	m.level = l
	m.persona = p
	m.convCtx.Objectives = l.Objectives
	m.convCtx.PersonaID = p.ID

	var b strings.Builder
	fmt.Fprintf(&b, "%s Hi there! I'm %s!", p.Emoji, p.Name)
	if len(m.convCtx.SpecialInterests) > 0 {
		fmt.Fprintf(&b, " I heard you love %s, that's so cool!", m.convCtx.SpecialInterests[0])
	}
	if len(l.Topics) > 0 {
		fmt.Fprintf(&b, " Today let's chat about %s. Ready?", l.Topics[0])
	}
	return b.String(), nil
}

// genericStart installs a minimal default curriculum so the conversation
// can proceed even though the store lookup failed.
func (m *Manager) genericStart() string {
	m.persona = persona.Persona{ID: "robin", Name: "your bird buddy", Emoji: "🐦"}
	m.level = level.Level{ID: m.convCtx.LevelID, Objectives: []string{"Have a friendly chat"}}
	m.convCtx.Objectives = m.level.Objectives
	m.convCtx.PersonaID = m.persona.ID
	return "🐦 Hi there, friend! I'm so happy to chat with you today! Ready?"
}

// ProcessTurn runs one utterance through the full pipeline and always
// returns a well-formed response. Only valid while Active.
func (m *Manager) ProcessTurn(ctx context.Context, utterance string) (*AIResponse, error) {
	if m.state != StateActive {
		return nil, fmt.Errorf("conversation is %s, not active", m.state)
	}

	analysis := engine.Analyze(utterance, m.convCtx)
	metrics := engine.CalculateMetrics(analysis)
	score := engine.OverallScore(metrics)
	tone := engine.SelectTone(analysis)

	var hints []string
	if analysis.NeedsSupport {
		hints = engine.GenerateHints(m.convCtx)
	}

	reply := m.generateReply(ctx, utterance, analysis)

	resp := &AIResponse{
		ReplyText:     reply,
		PersonaID:     m.persona.ID,
		Tone:          tone,
		OverallScore:  score,
		Feedback:      feedback.Compose(metrics, analysis, m.convCtx),
		Hints:         hints,
		VisualSupport: analysis.NeedsSupport || analysis.ProcessingTime,
	}

	m.analyses = append(m.analyses, analysis)
	m.history = append(m.history,
		llm.Message{Role: llm.RoleUser, Content: utterance},
		llm.Message{Role: llm.RoleAssistant, Content: reply},
	)
	m.convCtx.UserResponses = append(m.convCtx.UserResponses, utterance)
	m.convCtx.ExchangeCount++

	resp.ShouldEnd = analysis.NextAction == engine.ActionWrapUp || m.convCtx.ExchangeCount >= MaxExchanges
	if resp.ShouldEnd {
		m.state = StateEnding
		m.finish(ctx)
	} else {
		resp.NextObjective = m.convCtx.CurrentObjective()
	}

	return resp, nil
}

// generateReply calls the generation provider with a bounded timeout and
// substitutes the canned next-action reply on any failure or empty text.
func (m *Manager) generateReply(ctx context.Context, utterance string, a engine.ResponseAnalysis) string {
	genCtx, cancel := context.WithTimeout(llm.WithPurpose(ctx, "chat_reply"), m.generateTimeout)
	defer cancel()

	messages := append([]llm.Message{}, m.history...)
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: utterance})

	resp, err := m.provider.Generate(genCtx, llm.Request{
		System:    prompt.Build(m.persona, m.convCtx, a),
		Messages:  messages,
		MaxTokens: 300,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: generate reply: %v\n", err)
		return m.fallbackReply(a.NextAction)
	}

	var text string
	if jsonErr := json.Unmarshal(resp.Content, &text); jsonErr != nil {
		text = string(resp.Content)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return m.fallbackReply(a.NextAction)
	}
	return text
}

func (m *Manager) fallbackReply(action engine.NextAction) string {
	if r, ok := fallbackReplies[action]; ok {
		return r
	}
	return fallbackReplies[engine.ActionContinue]
}

// finish folds the retained per-turn analyses into a results record and
// persists it best-effort. Persistence failures are logged and swallowed:
// the conversation already completed from the child's perspective.
func (m *Manager) finish(ctx context.Context) {
	outcome := DeriveOutcome(m.analyses)

	persistCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), m.persistTimeout)
	defer cancel()

	err := m.results.SaveConversationResult(persistCtx, store.ConversationResult{
		ConversationID: m.convCtx.ConversationID,
		UserID:         m.convCtx.UserID,
		LevelID:        m.level.ID,
		OverallScore:   outcome.OverallScore,
		ExchangeCount:  m.convCtx.ExchangeCount,
		Achievements:   outcome.Achievements,
		CreatedAt:      time.Now().UTC(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: save conversation result: %v\n", err)
	}

	for skillID, delta := range outcome.SkillDeltas {
		if err := m.results.UpdateUserSkill(persistCtx, m.convCtx.UserID, skillID, delta); err != nil {
			fmt.Fprintf(os.Stderr, "warning: update skill %s: %v\n", skillID, err)
		}
	}

	m.state = StateCompleted
}

// Outcome returns the aggregate outcome of a finished conversation.
func (m *Manager) Outcome() Outcome {
	return DeriveOutcome(m.analyses)
}
