package engine

// SelectTone picks the emotional delivery tone for the next reply.
// Priority is strict: first match wins, so a celebration stays celebratory
// even when the learner mentioned feeling sad.
func SelectTone(a ResponseAnalysis) Tone {
	switch {
	case a.NextAction == ActionCelebrate:
		return ToneCelebratory
	case a.ProcessingTime || a.NeedsSupport:
		return ToneGentle
	case a.Engagement == EngagementHigh:
		return TonePlayful
	case hasEmotion(a, "sad") || hasEmotion(a, "worried"):
		return ToneCalming
	default:
		return ToneEncouraging
	}
}

func hasEmotion(a ResponseAnalysis, emotion string) bool {
	for _, e := range a.Emotions {
		if e == emotion {
			return true
		}
	}
	return false
}
