package engine

import "math"

// ConversationMetrics holds the six per-turn dimension scores (0-100,
// except skill demonstration — see CalculateMetrics).
type ConversationMetrics struct {
	Relevance          int
	TurnTaking         int
	EmotionalAwareness int
	Clarity            int
	Engagement         int
	SkillDemonstration int
}

// Score weights. They sum to 1.0; engagement carries the most weight.
const (
	weightRelevance          = 0.15
	weightTurnTaking         = 0.20
	weightEmotionalAwareness = 0.15
	weightClarity            = 0.10
	weightEngagement         = 0.25
	weightSkillDemonstration = 0.15
)

// MinOverallScore is the floor for the aggregated score. A turn never
// scores below this: the app must never hand a child a discouraging number.
const MinOverallScore = 60

// CalculateMetrics maps an analysis onto the six scoring dimensions.
//
// Clarity is a constant placeholder until the external pronunciation score
// is wired in. Skill demonstration is intentionally NOT capped at 100 here;
// the aggregator's final clamp is the only limiter, and normalizing earlier
// would silently change historical score semantics.
func CalculateMetrics(a ResponseAnalysis) ConversationMetrics {
	m := ConversationMetrics{
		Relevance:          a.Relevance,
		TurnTaking:         60,
		EmotionalAwareness: 70,
		Clarity:            80,
		SkillDemonstration: 25 * len(a.Strategies),
	}

	if a.TurnAppropriate {
		m.TurnTaking = 85
	}
	if len(a.Emotions) > 0 {
		m.EmotionalAwareness = 90
	}

	switch a.Engagement {
	case EngagementHigh:
		m.Engagement = 95
	case EngagementLow:
		m.Engagement = 65
	default:
		m.Engagement = 80
	}

	return m
}

// OverallScore combines the six dimensions into one weighted score,
// rounded, then clamped to [MinOverallScore, 100].
func OverallScore(m ConversationMetrics) int {
	sum := weightRelevance*float64(m.Relevance) +
		weightTurnTaking*float64(m.TurnTaking) +
		weightEmotionalAwareness*float64(m.EmotionalAwareness) +
		weightClarity*float64(m.Clarity) +
		weightEngagement*float64(m.Engagement) +
		weightSkillDemonstration*float64(m.SkillDemonstration)

	score := int(math.Round(sum))
	if score < MinOverallScore {
		return MinOverallScore
	}
	if score > 100 {
		return 100
	}
	return score
}

// AverageScore is the unweighted arithmetic mean of the six dimensions.
// The feedback composer deliberately uses this instead of OverallScore.
func AverageScore(m ConversationMetrics) float64 {
	total := m.Relevance + m.TurnTaking + m.EmotionalAwareness +
		m.Clarity + m.Engagement + m.SkillDemonstration
	return float64(total) / 6.0
}
