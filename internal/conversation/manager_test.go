package conversation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perchlabs/chirp/internal/engine"
	"github.com/perchlabs/chirp/internal/level"
	"github.com/perchlabs/chirp/internal/llm"
	"github.com/perchlabs/chirp/internal/persona"
	"github.com/perchlabs/chirp/internal/store"
)

// fakeCurriculum serves the built-in curriculum from memory.
type fakeCurriculum struct{}

func (fakeCurriculum) GetLevel(_ context.Context, id string) (level.Level, error) {
	l, err := level.Get(id)
	if err != nil {
		return level.Level{}, fmt.Errorf("level %q: %w", id, store.ErrNotFound)
	}
	return l, nil
}

func (fakeCurriculum) ListLevels(context.Context) ([]level.Level, error) {
	return level.All(), nil
}

func (fakeCurriculum) GetPersona(_ context.Context, id string) (persona.Persona, error) {
	p, err := persona.Get(id)
	if err != nil {
		return persona.Persona{}, fmt.Errorf("persona %q: %w", id, store.ErrNotFound)
	}
	return p, nil
}

func (fakeCurriculum) Seed(context.Context, []level.Level, []persona.Persona) error {
	return nil
}

// fakeResults records writes in memory, optionally failing them.
type fakeResults struct {
	saved   []store.ConversationResult
	skills  map[string]int
	failAll bool
}

func newFakeResults() *fakeResults {
	return &fakeResults{skills: make(map[string]int)}
}

func (f *fakeResults) SaveConversationResult(_ context.Context, r store.ConversationResult) error {
	if f.failAll {
		return errors.New("disk full")
	}
	f.saved = append(f.saved, r)
	return nil
}

func (f *fakeResults) UpdateUserSkill(_ context.Context, userID, skillID string, delta int) error {
	if f.failAll {
		return errors.New("disk full")
	}
	f.skills[userID+"/"+skillID] += delta
	return nil
}

func (f *fakeResults) Skills(context.Context, string) ([]store.UserSkill, error) {
	return nil, nil
}

func textResponse(text string) llm.MockResponse {
	b, _ := json.Marshal(text)
	return llm.MockResponse{Content: b}
}

func startTestConversation(t *testing.T, results *fakeResults, provider llm.Provider, p Params) *Manager {
	t.Helper()
	m := NewManager(fakeCurriculum{}, results, provider)
	if p.LevelID == "" {
		p.LevelID = "greetings"
	}
	if p.UserID == "" {
		p.UserID = "kid-1"
	}
	greeting := m.Start(context.Background(), p)
	require.NotEmpty(t, greeting.ReplyText)
	require.Equal(t, StateActive, m.State())
	return m
}

func TestStart_PersonalizedGreeting(t *testing.T) {
	m := NewManager(fakeCurriculum{}, newFakeResults(), llm.NewMockProvider())

	greeting := m.Start(context.Background(), Params{
		LevelID:          "greetings",
		UserID:           "kid-1",
		SpecialInterests: []string{"trains"},
	})
	assert.Contains(t, greeting.ReplyText, "Ruby the Robin")
	assert.Contains(t, greeting.ReplyText, "trains")
	assert.Equal(t, "robin", greeting.PersonaID)
	assert.Equal(t, "Say hello appropriately", greeting.NextObjective)
	assert.Equal(t, StateActive, m.State())
}

func TestStart_MissingLevelFallsBackToGenericGreeting(t *testing.T) {
	m := NewManager(fakeCurriculum{}, newFakeResults(), llm.NewMockProvider(textResponse("Hello!")))

	greeting := m.Start(context.Background(), Params{LevelID: "astrophysics", UserID: "kid-1"})
	require.NotEmpty(t, greeting.ReplyText)
	assert.Contains(t, greeting.ReplyText, "Hi there, friend!")
	assert.Equal(t, StateActive, m.State())

	// The conversation still works after the degraded start.
	resp, err := m.ProcessTurn(context.Background(), "hello there my friend")
	require.NoError(t, err)
	assert.Equal(t, "Hello!", resp.ReplyText)
}

func TestProcessTurn_UsesGeneratedReply(t *testing.T) {
	provider := llm.NewMockProvider(textResponse("Tweet tweet! Hello to you too!"))
	m := startTestConversation(t, newFakeResults(), provider, Params{})

	resp, err := m.ProcessTurn(context.Background(), "hello birdie")
	require.NoError(t, err)

	assert.Equal(t, "Tweet tweet! Hello to you too!", resp.ReplyText)
	assert.False(t, resp.ShouldEnd)
	assert.GreaterOrEqual(t, resp.OverallScore, 60)
	assert.LessOrEqual(t, resp.OverallScore, 100)
	assert.NotEmpty(t, resp.Feedback)

	// The steering text carried persona and objective state.
	require.Equal(t, 1, provider.CallCount())
	assert.Contains(t, provider.Calls[0].System, "Ruby the Robin")
	assert.Contains(t, provider.Calls[0].System, "Say hello appropriately")
}

func TestProcessTurn_ProviderFailureUsesFallback(t *testing.T) {
	// Empty mock queue: every Generate call fails.
	m := startTestConversation(t, newFakeResults(), llm.NewMockProvider(), Params{})

	resp, err := m.ProcessTurn(context.Background(), "hello birdie")
	require.NoError(t, err)
	assert.Equal(t, fallbackReplies[engine.ActionContinue], resp.ReplyText)
}

func TestProcessTurn_EmptyReplyUsesFallback(t *testing.T) {
	m := startTestConversation(t, newFakeResults(), llm.NewMockProvider(textResponse("   ")), Params{})

	resp, err := m.ProcessTurn(context.Background(), "hello birdie")
	require.NoError(t, err)
	assert.Equal(t, fallbackReplies[engine.ActionContinue], resp.ReplyText)
}

func TestFallbackTableCoversEveryNextAction(t *testing.T) {
	for _, action := range engine.AllNextActions() {
		if fallbackReplies[action] == "" {
			t.Errorf("no fallback reply for next-action %q", action)
		}
	}
}

func TestProcessTurn_HintsWhenSupportNeeded(t *testing.T) {
	provider := llm.NewMockProvider(textResponse("Great job!"), textResponse("Let me help!"))
	m := startTestConversation(t, newFakeResults(), provider, Params{})

	// First turn advances to the "Respond to a greeting" objective.
	_, err := m.ProcessTurn(context.Background(), "hello my bird friend")
	require.NoError(t, err)

	// A single off-objective word triggers needs-support, and the active
	// objective mentions a greeting, so canned greeting hints apply.
	resp, err := m.ProcessTurn(context.Background(), "banana")
	require.NoError(t, err)
	require.NotEmpty(t, resp.Hints)
	assert.Contains(t, resp.Hints[0], "hello")
	assert.True(t, resp.VisualSupport)
}

func TestConversation_EndsAfterMaxExchanges(t *testing.T) {
	results := newFakeResults()
	provider := llm.NewMockProvider()
	for i := 0; i < MaxExchanges; i++ {
		provider.AddResponse(textResponse("Nice!"))
	}
	m := startTestConversation(t, results, provider, Params{UserID: "kid-1"})

	var last *AIResponse
	for i := 0; i < MaxExchanges; i++ {
		var err error
		last, err = m.ProcessTurn(context.Background(), "hello my wonderful bird friend")
		require.NoError(t, err)
	}

	assert.True(t, last.ShouldEnd)
	assert.Equal(t, StateCompleted, m.State())

	require.Len(t, results.saved, 1)
	saved := results.saved[0]
	assert.Equal(t, "kid-1", saved.UserID)
	assert.Equal(t, "greetings", saved.LevelID)
	assert.Equal(t, MaxExchanges, saved.ExchangeCount)
	assert.GreaterOrEqual(t, saved.OverallScore, 60)

	// Turn-appropriate is always satisfied, so perfect_turns applies.
	assert.Contains(t, saved.Achievements, "perfect_turns")

	// Further turns are rejected once completed.
	_, err := m.ProcessTurn(context.Background(), "more?")
	assert.Error(t, err)
}

func TestConversation_WrapUpEndsEarly(t *testing.T) {
	results := newFakeResults()
	provider := llm.NewMockProvider()
	for i := 0; i < 5; i++ {
		provider.AddResponse(textResponse("Nice!"))
	}
	m := startTestConversation(t, results, provider, Params{})

	// Exchange counter reaches 4 after four turns; the fifth analysis
	// resolves to wrap-up regardless of content.
	for i := 0; i < 4; i++ {
		resp, err := m.ProcessTurn(context.Background(), "hello friend how are you")
		require.NoError(t, err)
		require.False(t, resp.ShouldEnd, "turn %d should not end", i)
	}

	resp, err := m.ProcessTurn(context.Background(), "hello friend how are you")
	require.NoError(t, err)
	assert.True(t, resp.ShouldEnd)
	assert.Equal(t, StateCompleted, m.State())
}

func TestFinish_PersistenceFailureIsSwallowed(t *testing.T) {
	results := newFakeResults()
	results.failAll = true
	provider := llm.NewMockProvider()
	for i := 0; i < MaxExchanges; i++ {
		provider.AddResponse(textResponse("Nice!"))
	}
	m := startTestConversation(t, results, provider, Params{})

	var last *AIResponse
	for i := 0; i < MaxExchanges; i++ {
		var err error
		last, err = m.ProcessTurn(context.Background(), "hello my friend")
		require.NoError(t, err)
	}

	// The conversation completed cleanly despite every write failing.
	assert.True(t, last.ShouldEnd)
	assert.Equal(t, StateCompleted, m.State())
}

func TestFinish_AppliesSkillDeltas(t *testing.T) {
	results := newFakeResults()
	provider := llm.NewMockProvider()
	for i := 0; i < MaxExchanges; i++ {
		provider.AddResponse(textResponse("Nice!"))
	}
	m := startTestConversation(t, results, provider, Params{UserID: "kid-1"})

	// Long, happy, on-topic turns: high engagement and emotion awareness.
	for i := 0; i < MaxExchanges; i++ {
		_, err := m.ProcessTurn(context.Background(),
			"hello my friend I am so happy to see you here today yay")
		require.NoError(t, err)
	}

	assert.Equal(t, 10, results.skills["kid-1/emotion_recognition"])
	assert.Equal(t, 10, results.skills["kid-1/turn_taking"])
	assert.Equal(t, 10, results.skills["kid-1/active_listening"])
	assert.Equal(t, 10, results.skills["kid-1/self_expression"])
}
