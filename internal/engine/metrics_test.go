package engine

import "testing"

func TestCalculateMetrics_Mapping(t *testing.T) {
	a := ResponseAnalysis{
		Relevance:       80,
		TurnAppropriate: true,
		Emotions:        []string{"happy"},
		Engagement:      EngagementHigh,
		Strategies:      []string{"emotion_expression", "elaboration"},
	}
	m := CalculateMetrics(a)

	if m.Relevance != 80 {
		t.Errorf("relevance = %d, want 80", m.Relevance)
	}
	if m.TurnTaking != 85 {
		t.Errorf("turn-taking = %d, want 85", m.TurnTaking)
	}
	if m.EmotionalAwareness != 90 {
		t.Errorf("emotional awareness = %d, want 90", m.EmotionalAwareness)
	}
	if m.Clarity != 80 {
		t.Errorf("clarity = %d, want 80", m.Clarity)
	}
	if m.Engagement != 95 {
		t.Errorf("engagement = %d, want 95", m.Engagement)
	}
	if m.SkillDemonstration != 50 {
		t.Errorf("skill demonstration = %d, want 50", m.SkillDemonstration)
	}
}

func TestCalculateMetrics_EngagementBands(t *testing.T) {
	tests := []struct {
		level EngagementLevel
		want  int
	}{
		{EngagementHigh, 95},
		{EngagementMedium, 80},
		{EngagementLow, 65},
	}
	for _, tt := range tests {
		m := CalculateMetrics(ResponseAnalysis{Engagement: tt.level})
		if m.Engagement != tt.want {
			t.Errorf("engagement(%s) = %d, want %d", tt.level, m.Engagement, tt.want)
		}
	}
}

func TestCalculateMetrics_SkillDemonstrationUncapped(t *testing.T) {
	// Five strategies would be 125. The dimension is deliberately not
	// clamped; only the aggregator's final clamp limits it.
	a := ResponseAnalysis{Strategies: []string{"a", "b", "c", "d", "e"}}
	m := CalculateMetrics(a)
	if m.SkillDemonstration != 125 {
		t.Errorf("skill demonstration = %d, want 125", m.SkillDemonstration)
	}
}

func TestOverallScore_Floor(t *testing.T) {
	// All-zero metrics still score the floor.
	if got := OverallScore(ConversationMetrics{}); got != 60 {
		t.Errorf("score = %d, want 60", got)
	}
}

func TestOverallScore_Ceiling(t *testing.T) {
	m := ConversationMetrics{
		Relevance:          100,
		TurnTaking:         100,
		EmotionalAwareness: 100,
		Clarity:            100,
		Engagement:         100,
		SkillDemonstration: 200,
	}
	if got := OverallScore(m); got != 100 {
		t.Errorf("score = %d, want 100", got)
	}
}

func TestOverallScore_WeightedSum(t *testing.T) {
	m := ConversationMetrics{
		Relevance:          80, // 12.0
		TurnTaking:         85, // 17.0
		EmotionalAwareness: 90, // 13.5
		Clarity:            80, // 8.0
		Engagement:         95, // 23.75
		SkillDemonstration: 50, // 7.5
	}
	// 81.75 rounds to 82.
	if got := OverallScore(m); got != 82 {
		t.Errorf("score = %d, want 82", got)
	}
}

func TestOverallScore_AlwaysInRange(t *testing.T) {
	values := []int{0, 25, 60, 100, 150, 300}
	for _, r := range values {
		for _, s := range values {
			m := ConversationMetrics{Relevance: r, SkillDemonstration: s}
			got := OverallScore(m)
			if got < 60 || got > 100 {
				t.Errorf("score(%d, %d) = %d, out of [60,100]", r, s, got)
			}
		}
	}
}

func TestAverageScore_Unweighted(t *testing.T) {
	m := ConversationMetrics{
		Relevance:          60,
		TurnTaking:         60,
		EmotionalAwareness: 60,
		Clarity:            90,
		Engagement:         90,
		SkillDemonstration: 0,
	}
	if got := AverageScore(m); got != 60 {
		t.Errorf("average = %v, want 60", got)
	}
}
