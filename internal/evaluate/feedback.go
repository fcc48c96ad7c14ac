package evaluate

import (
	"fmt"

	"github.com/abhisek/learnbot/internal/profile"
	"github.com/abhisek/learnbot/internal/quiz"
)

// Feedback is the personalized response to one evaluated answer.
type Feedback struct {
	Immediate     string
	Explanation   string
	Encouragement string
	NextSteps     string
}

// buildFeedback selects feedback text from a fixed rule table. The
// inputs are exactly the four profile-derived values: correctness,
// current streak, accuracy, and total questions. p must already reflect
// the evaluated answer.
func buildFeedback(p *profile.Profile, question *quiz.Question, result quiz.Result) Feedback {
	fb := Feedback{Explanation: question.Explanation}

	if result.IsCorrect {
		switch {
		case p.CurrentStreak >= 5:
			fb.Immediate = fmt.Sprintf("🔥 Excellent! You're on a %d-question streak!", p.CurrentStreak)
		case p.CurrentStreak >= 3:
			fb.Immediate = fmt.Sprintf("🌟 Great job! %d correct answers in a row!", p.CurrentStreak)
		default:
			fb.Immediate = "✅ Correct! Well done!"
		}

		fb.Encouragement = "Keep up the great work! You're making excellent progress."

		if p.Accuracy() >= 0.8 && p.TotalQuestions >= 5 {
			fb.NextSteps = "You're ready for more challenging questions!"
		} else {
			fb.NextSteps = "Try another question to build your confidence."
		}
		return fb
	}

	fb.Immediate = "❌ Not quite right, but that's okay! Learning happens through mistakes."
	fb.Encouragement = "Don't give up! Every expert was once a beginner."

	switch {
	case p.TotalQuestions < 3:
		fb.NextSteps = "Take your time and read questions carefully. You're just getting started!"
	case p.CurrentStreak == 0 && p.TotalQuestions >= 5:
		fb.NextSteps = "Consider reviewing the basics for this topic before continuing."
	default:
		fb.NextSteps = "Try breaking down the problem step by step."
	}
	return fb
}
