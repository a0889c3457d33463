package store

import (
	"context"
	"errors"
	"time"

	"github.com/perchlabs/chirp/internal/level"
	"github.com/perchlabs/chirp/internal/persona"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// CurriculumRepo provides read access to seeded levels and personas.
type CurriculumRepo interface {
	// GetLevel returns a level by ID, or ErrNotFound.
	GetLevel(ctx context.Context, id string) (level.Level, error)

	// ListLevels returns all levels in play order.
	ListLevels(ctx context.Context) ([]level.Level, error)

	// GetPersona returns a persona by ID, or ErrNotFound.
	GetPersona(ctx context.Context, id string) (persona.Persona, error)

	// Seed upserts the given levels and personas.
	Seed(ctx context.Context, levels []level.Level, personas []persona.Persona) error
}

// ConversationResult is the persisted outcome of one finished conversation.
type ConversationResult struct {
	ConversationID string
	UserID         string
	LevelID        string
	OverallScore   int
	ExchangeCount  int
	Achievements   []string
	CreatedAt      time.Time
}

// UserSkill is one accumulated skill value for a user.
type UserSkill struct {
	UserID    string
	SkillID   string
	Value     int
	UpdatedAt time.Time
}

// ResultRepo persists conversation outcomes and skill progress.
type ResultRepo interface {
	// SaveConversationResult stores the outcome of a finished conversation.
	SaveConversationResult(ctx context.Context, r ConversationResult) error

	// UpdateUserSkill adds delta to the user's accumulated skill value,
	// creating the row if absent.
	UpdateUserSkill(ctx context.Context, userID, skillID string, delta int) error

	// Skills returns all skill rows for a user, highest value first.
	Skills(ctx context.Context, userID string) ([]UserSkill, error)
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int   // max results (0 = unlimited)
	After  int64 // sequence > After
	Before int64 // sequence < Before
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a persisted LLM request event.
type LLMRequestEvent struct {
	ID        int64
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMStats aggregates LLM usage for one provider/model pair.
type LLMStats struct {
	Provider     string
	Model        string
	Requests     int
	Failures     int
	InputTokens  int64
	OutputTokens int64
	AvgLatencyMs int64
}

// LLMPurposeStats aggregates LLM usage for one purpose label.
type LLMPurposeStats struct {
	Purpose      string
	Requests     int
	InputTokens  int64
	OutputTokens int64
	AvgLatencyMs int64
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// ListLLMRequests returns events in descending sequence order.
	ListLLMRequests(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// GetLLMRequest returns one event by sequence number, or ErrNotFound.
	GetLLMRequest(ctx context.Context, sequence int64) (*LLMRequestEvent, error)

	// LLMRequestStats aggregates usage per provider/model pair.
	LLMRequestStats(ctx context.Context) ([]LLMStats, error)

	// LLMUsageByPurpose aggregates usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeStats, error)
}
