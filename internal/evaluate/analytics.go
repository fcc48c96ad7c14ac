package evaluate

import (
	"context"
	"errors"

	"github.com/abhisek/learnbot/internal/profile"
)

// Analytics is a per-user learning report for /status and /admin views.
type Analytics struct {
	UserID              string
	Performance         Summary
	LearningDays        int
	SessionCount        int
	PreferredDifficulty string
	Recommendations     []string
}

// Analytics builds a learning report for userID. Session counts come
// from the history store when one is configured; everything else derives
// from the profile alone.
func (e *Evaluator) Analytics(ctx context.Context, userID string) (*Analytics, error) {
	p, err := e.profiles.Get(userID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, &PersistenceError{Op: "get", Err: err}
	}

	a := &Analytics{
		UserID:              userID,
		Performance:         Summarize(p),
		PreferredDifficulty: preferredDifficulty(p),
		Recommendations:     recommendations(p),
	}

	if p.StartDate != nil {
		a.LearningDays = int(e.now().Sub(*p.StartDate).Hours() / 24)
		if a.LearningDays < 0 {
			a.LearningDays = 0
		}
	}

	if e.events != nil {
		n, err := e.events.ResultCount(ctx, userID)
		if err != nil {
			if e.logger != nil {
				e.logger.Warnw("failed to count quiz sessions", "user_id", userID, "error", err)
			}
		} else {
			a.SessionCount = n
		}
	}

	return a, nil
}

// preferredDifficulty labels the difficulty band the user has earned.
// Thresholds are stricter than question selection: this is a report of
// demonstrated ability, not the next question's difficulty.
func preferredDifficulty(p *profile.Profile) string {
	accuracy := p.Accuracy()
	switch {
	case accuracy >= 0.8 && p.TotalQuestions >= 10:
		return "Advanced"
	case accuracy >= 0.7 && p.TotalQuestions >= 5:
		return "Intermediate"
	default:
		return "Beginner"
	}
}

func recommendations(p *profile.Profile) []string {
	var recs []string
	accuracy := p.Accuracy()

	switch {
	case p.TotalQuestions == 0:
		recs = append(recs, "Take your first quiz to start tracking progress!")
	case accuracy >= 0.9 && p.TotalQuestions >= 10:
		recs = append(recs, "Outstanding work! Consider exploring a new course.")
	case accuracy < 0.6 && p.TotalQuestions >= 5:
		recs = append(recs, "Review the basics before taking more quizzes.")
	default:
		recs = append(recs, "Keep practicing daily to build your streak.")
	}

	if p.CurrentStreak == 0 && p.TotalQuestions >= 3 {
		recs = append(recs, "A fresh quiz is the fastest way to restart your streak.")
	}
	return recs
}
