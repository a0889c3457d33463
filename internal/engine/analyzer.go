package engine

import "strings"

// emotionVocabulary is the fixed set of emotion words the analyzer detects.
// Scanned once per turn, so the detected set never contains duplicates.
var emotionVocabulary = []string{
	"happy", "sad", "angry", "scared", "excited", "worried", "calm",
}

// wordSynonyms canonicalizes common kid phrasings before objective
// matching, so "hi" still counts toward an objective written as
// "Say hello appropriately".
var wordSynonyms = map[string]string{
	"hi":    "hello",
	"hey":   "hello",
	"hiya":  "hello",
	"howdy": "hello",
	"yeah":  "yes",
	"yep":   "yes",
	"nope":  "no",
	"bye":   "goodbye",
}

// ResponseAnalysis is the structured classification of one user utterance.
// It is produced fresh per turn and never mutated afterwards.
type ResponseAnalysis struct {
	// Relevance scores how on-topic the utterance was (0-100).
	Relevance int

	// Emotions lists the emotion words detected in the utterance.
	Emotions []string

	// QuestionAsked is true when the utterance asks a question.
	QuestionAsked bool

	// TurnAppropriate reports whether the learner respected turn-taking.
	// No rule currently sets it false; violation detection was never wired
	// in, so it stays true pending product follow-up.
	TurnAppropriate bool

	// Strategies lists the communication strategies demonstrated.
	Strategies []string

	// NeedsSupport is true when the learner appears to need help.
	NeedsSupport bool

	// Engagement grades the utterance's engagement level.
	Engagement EngagementLevel

	// SpecialInterest is true when a registered special-interest keyword
	// was mentioned.
	SpecialInterest bool

	// ProcessingTime is true when the learner seems to need more time
	// (empty utterance, "...", or a filler word).
	ProcessingTime bool

	// NextAction is the directive for the next generated reply.
	NextAction NextAction
}

// Analyze classifies a single user utterance against the conversation
// context. It is a pure function of its inputs; rules run in a fixed order
// and later rules may overwrite fields set by earlier ones.
func Analyze(utterance string, ctx *ConversationContext) ResponseAnalysis {
	lower := strings.ToLower(utterance)
	words := strings.Fields(lower)

	a := ResponseAnalysis{
		TurnAppropriate: true,
		Engagement:      EngagementMedium,
		NextAction:      ActionContinue,
	}

	// Rule 1: topical relevance from objective keywords.
	switch {
	case matchesObjective(lower, words, ctx.Objectives):
		a.Relevance = 80
	case len(words) > 0:
		a.Relevance = 60
	default:
		a.Relevance = 0
	}

	// Rule 2: a special-interest mention is high-value engagement, never an
	// off-topic deduction.
	for _, interest := range ctx.SpecialInterests {
		if interest != "" && strings.Contains(lower, strings.ToLower(interest)) {
			a.SpecialInterest = true
			a.Engagement = EngagementHigh
			if a.Relevance < 70 {
				a.Relevance = 70
			}
			break
		}
	}

	// Rule 3: emotion vocabulary scan.
	for _, emotion := range emotionVocabulary {
		if strings.Contains(lower, emotion) {
			a.Emotions = append(a.Emotions, emotion)
		}
	}

	// Rule 4: question detection.
	a.QuestionAsked = strings.Contains(utterance, "?") ||
		strings.HasPrefix(lower, "what") ||
		strings.HasPrefix(lower, "why") ||
		strings.HasPrefix(lower, "how")

	// Rule 5: engagement from length. A special-interest turn stays high,
	// and a single word that nails the objective ("hi" for a greeting
	// level) is a success, not a cry for help.
	switch {
	case len(words) == 1 && a.Relevance < 80:
		a.NeedsSupport = true
		if !a.SpecialInterest {
			a.Engagement = EngagementLow
		}
	case len(words) > 10:
		a.Engagement = EngagementHigh
	}

	// Rule 6: processing-time markers tentatively ask for a hint.
	trimmed := strings.TrimSpace(lower)
	if trimmed == "" || trimmed == "..." || trimmed == "um" || trimmed == "uh" {
		a.ProcessingTime = true
		a.NextAction = ActionProvideHint
	}

	// Rule 7: next-action resolution, highest priority first.
	switch {
	case ctx.ExchangeCount >= 4:
		a.NextAction = ActionWrapUp
	case a.NeedsSupport:
		a.NextAction = ActionSimplify
	case a.Engagement == EngagementHigh:
		a.NextAction = ActionCelebrate
	}

	// Rule 8: strategy tags.
	if len(a.Emotions) > 0 {
		a.Strategies = append(a.Strategies, "emotion_expression")
	}
	if a.QuestionAsked {
		a.Strategies = append(a.Strategies, "question_asking")
	}
	if len(words) > 5 {
		a.Strategies = append(a.Strategies, "elaboration")
	}

	return a
}

// matchesObjective reports whether the utterance hits any objective: either
// the utterance contains the objective's first word, or a (synonym-
// canonicalized) utterance word appears in the objective text.
func matchesObjective(lower string, words []string, objectives []string) bool {
	for _, obj := range objectives {
		objLower := strings.ToLower(obj)
		objWords := strings.Fields(objLower)
		if len(objWords) > 0 && strings.Contains(lower, objWords[0]) {
			return true
		}
		for _, w := range words {
			w = strings.Trim(w, ".,!?'\"")
			if canon, ok := wordSynonyms[w]; ok {
				w = canon
			}
			// Short filler words ("a", "to") would match almost any
			// objective text, so only content-sized words count.
			if len(w) >= 3 && strings.Contains(objLower, w) {
				return true
			}
		}
	}
	return false
}
