package evaluate

import "github.com/abhisek/learnbot/internal/profile"

// Summary is a point-in-time performance rollup for a profile.
type Summary struct {
	Accuracy       float64
	Level          string
	Emoji          string
	TotalQuestions int
	CorrectAnswers int
	CurrentStreak  int
	LongestStreak  int
}

// Summarize derives the performance tier from overall accuracy.
// Thresholds are evaluated top-down, first match wins.
func Summarize(p *profile.Profile) Summary {
	accuracy := p.Accuracy()

	var level, emoji string
	switch {
	case accuracy >= 0.9:
		level, emoji = "Excellent", "🏆"
	case accuracy >= 0.8:
		level, emoji = "Great", "🌟"
	case accuracy >= 0.7:
		level, emoji = "Good", "👍"
	case accuracy >= 0.6:
		level, emoji = "Fair", "📚"
	default:
		level, emoji = "Learning", "🌱"
	}

	return Summary{
		Accuracy:       accuracy,
		Level:          level,
		Emoji:          emoji,
		TotalQuestions: p.TotalQuestions,
		CorrectAnswers: p.CorrectAnswers,
		CurrentStreak:  p.CurrentStreak,
		LongestStreak:  p.LongestStreak,
	}
}
