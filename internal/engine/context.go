package engine

// CommunicationStyle describes how a learner typically communicates.
// It drives prompt adaptation and feedback phrasing.
type CommunicationStyle string

const (
	StyleVerbal    CommunicationStyle = "verbal"
	StyleMinimal   CommunicationStyle = "minimal"
	StyleEcholalic CommunicationStyle = "echolalic"
)

// EngagementLevel grades how engaged a single utterance was.
type EngagementLevel string

const (
	EngagementLow    EngagementLevel = "low"
	EngagementMedium EngagementLevel = "medium"
	EngagementHigh   EngagementLevel = "high"
)

// NextAction is the engine's directive for how the next generated reply
// should behave.
type NextAction string

const (
	ActionContinue    NextAction = "continue"
	ActionProvideHint NextAction = "provide_hint"
	ActionSimplify    NextAction = "simplify"
	ActionCelebrate   NextAction = "celebrate"
	ActionWrapUp      NextAction = "wrap_up"
)

// AllNextActions returns every next-action value. Used to verify that
// tables keyed by next-action (fallback replies, prompt directives) are
// complete.
func AllNextActions() []NextAction {
	return []NextAction{
		ActionContinue,
		ActionProvideHint,
		ActionSimplify,
		ActionCelebrate,
		ActionWrapUp,
	}
}

// Tone is the emotional delivery tag attached to a generated reply.
type Tone string

const (
	ToneCelebratory Tone = "celebratory"
	ToneGentle      Tone = "gentle"
	TonePlayful     Tone = "playful"
	ToneCalming     Tone = "calming"
	ToneEncouraging Tone = "encouraging"
)

// ConversationContext tracks the mutable state of one conversation.
// It is owned exclusively by the lifecycle manager for the duration of the
// conversation; engine functions only read it.
type ConversationContext struct {
	// ConversationID uniquely identifies this conversation.
	ConversationID string

	// UserID identifies the learner.
	UserID string

	// LevelID identifies the level being practiced.
	LevelID string

	// ExchangeCount is the number of completed turns. It is 0-based,
	// incremented once per processed turn, and monotonically non-decreasing.
	ExchangeCount int

	// UserResponses is the ordered sequence of prior user utterances.
	UserResponses []string

	// Objectives is the ordered list of level objectives. The active
	// objective for a turn is Objectives[min(ExchangeCount, len-1)].
	Objectives []string

	// PersonaID names the character speaking in this conversation.
	PersonaID string

	// Age is the learner's age, when known (0 = unknown).
	Age int

	// SpecialInterests holds learner-specific topic keywords that count as
	// high-value engagement when mentioned.
	SpecialInterests []string

	// Style is the learner's communication style tag.
	Style CommunicationStyle
}

// CurrentObjective returns the objective for the current exchange, clamped
// to the last objective when the exchange counter runs past the list.
func (c *ConversationContext) CurrentObjective() string {
	if len(c.Objectives) == 0 {
		return ""
	}
	i := c.ExchangeCount
	if i > len(c.Objectives)-1 {
		i = len(c.Objectives) - 1
	}
	return c.Objectives[i]
}
