package evaluate

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/learnbot/internal/history"
	"github.com/abhisek/learnbot/internal/profile"
	"github.com/abhisek/learnbot/internal/quiz"
)

// Outcome is the typed result of scoring one submitted answer.
type Outcome struct {
	Result      quiz.Result
	Feedback    Feedback
	Insights    []Insight
	Performance Summary

	// Profile is a snapshot of the updated profile. When Evaluate
	// returns a PersistenceError alongside the outcome, this snapshot is
	// still authoritative for the immediate response.
	Profile *profile.Profile
}

// Evaluator orchestrates answer scoring: normalize, update the profile,
// persist, and derive feedback.
type Evaluator struct {
	profiles *profile.Store
	events   *history.Store // optional
	logger   *zap.SugaredLogger
	now      func() time.Time
}

// New creates an Evaluator. events may be nil to skip history recording.
func New(profiles *profile.Store, events *history.Store, logger *zap.SugaredLogger) *Evaluator {
	return &Evaluator{
		profiles: profiles,
		events:   events,
		logger:   logger,
		now:      time.Now,
	}
}

// WithClock overrides the evaluator's clock. Test hook.
func (e *Evaluator) WithClock(now func() time.Time) *Evaluator {
	e.now = now
	return e
}

// Evaluate scores rawAnswer against question for the given user.
//
// Returns ErrProfileNotFound when the user has never enrolled. On a
// profile write failure it returns BOTH a populated outcome and a
// *PersistenceError: the in-memory counters are authoritative for the
// immediate response, but the failure is never silent.
func (e *Evaluator) Evaluate(ctx context.Context, userID string, question *quiz.Question, rawAnswer string) (*Outcome, error) {
	p, err := e.profiles.Get(userID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, &PersistenceError{Op: "get", Err: err}
	}

	now := e.now()
	result := quiz.CheckAnswer(question, rawAnswer, now)

	p.TotalQuestions++
	if result.IsCorrect {
		p.CorrectAnswers++
		p.CurrentStreak++
		if p.CurrentStreak > p.LongestStreak {
			p.LongestStreak = p.CurrentStreak
		}
	} else {
		p.CurrentStreak = 0
	}
	p.LastQuizDate = &now

	outcome := &Outcome{
		Result:      result,
		Feedback:    buildFeedback(p, question, result),
		Insights:    buildInsights(p, question, result, now),
		Performance: Summarize(p),
		Profile:     p.Clone(),
	}

	// The write must land before the outcome is returned.
	if err := e.profiles.Put(p); err != nil {
		if e.logger != nil {
			e.logger.Errorw("failed to persist profile after evaluation",
				"user_id", userID, "error", err)
		}
		return outcome, &PersistenceError{Op: "put", Err: err}
	}

	e.record(ctx, userID, question, result)

	if e.logger != nil {
		e.logger.Infow("evaluated answer",
			"user_id", userID,
			"question_id", question.ID,
			"correct", result.IsCorrect,
			"streak", p.CurrentStreak)
	}

	return outcome, nil
}

// record appends the result to the history store. Best-effort: history
// failures are logged, never surfaced.
func (e *Evaluator) record(ctx context.Context, userID string, q *quiz.Question, r quiz.Result) {
	if e.events == nil {
		return
	}
	err := e.events.RecordResult(ctx, history.ResultRecord{
		UserID:        userID,
		QuestionID:    q.ID,
		Course:        q.Course,
		Topic:         q.Topic,
		Difficulty:    string(q.Difficulty),
		UserAnswer:    r.UserAnswer,
		CorrectAnswer: string(r.CorrectAnswer),
		IsCorrect:     r.IsCorrect,
		TimeTakenSec:  r.TimeTaken,
		CreatedAt:     r.Timestamp,
	})
	if err != nil && e.logger != nil {
		e.logger.Warnw("failed to record quiz result", "user_id", userID, "error", err)
	}
}
