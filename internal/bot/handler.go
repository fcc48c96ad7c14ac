package bot

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/abhisek/learnbot/internal/course"
	"github.com/abhisek/learnbot/internal/evaluate"
	"github.com/abhisek/learnbot/internal/history"
	"github.com/abhisek/learnbot/internal/profile"
	"github.com/abhisek/learnbot/internal/quiz"
)

// Handler routes one chat turn to the right command or answer flow and
// returns the reply text. It owns no transport concerns: the HTTP layer
// decodes activities and calls HandleMessage / WelcomeMessage.
type Handler struct {
	profiles  *profile.Store
	provider  *quiz.Provider
	evaluator *evaluate.Evaluator
	sessions  *SessionStore
	events    *history.Store // optional, backs /status and /admin totals
	logger    *zap.SugaredLogger
}

func NewHandler(
	profiles *profile.Store,
	provider *quiz.Provider,
	evaluator *evaluate.Evaluator,
	sessions *SessionStore,
	events *history.Store,
	logger *zap.SugaredLogger,
) *Handler {
	return &Handler{
		profiles:  profiles,
		provider:  provider,
		evaluator: evaluator,
		sessions:  sessions,
		events:    events,
		logger:    logger,
	}
}

// HandleMessage processes one user message and returns the reply.
// Raw (non-command) text is treated as a quiz answer when a question is
// pending; otherwise the user gets an echo with a command hint.
func (h *Handler) HandleMessage(ctx context.Context, userID, userName, text string) string {
	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)

	if h.logger != nil {
		h.logger.Infow("message received", "user_id", userID, "user_name", userName, "text", trimmed)
	}

	switch {
	case strings.HasPrefix(lower, "/help"):
		return helpMessage()
	case strings.HasPrefix(lower, "/enroll"):
		return h.handleEnroll(userID, userName, lower)
	case strings.HasPrefix(lower, "/profile"):
		return h.handleProfile(userID)
	case strings.HasPrefix(lower, "/quiz"):
		return h.handleQuiz(ctx, userID)
	case strings.HasPrefix(lower, "/cancel"):
		return h.handleCancel(userID)
	case strings.HasPrefix(lower, "/status"):
		return h.handleStatus(ctx)
	case strings.HasPrefix(lower, "/admin"):
		return h.handleAdmin(ctx)
	}

	if q := h.sessions.Pending(userID); q != nil {
		return h.handleAnswer(ctx, userID, q, trimmed)
	}

	return echoMessage(trimmed)
}

// WelcomeMessage is sent when a new member joins the conversation.
func (h *Handler) WelcomeMessage() string {
	return welcomeMessage()
}

func (h *Handler) handleEnroll(userID, userName, lower string) string {
	parts := strings.Fields(lower)
	if len(parts) < 2 {
		return enrollUsageMessage()
	}

	courseID := parts[1]
	c, err := course.Get(courseID)
	if err != nil {
		return unknownCourseMessage(courseID)
	}

	p, err := h.profiles.Enroll(userID, courseID)
	if err != nil {
		if h.logger != nil {
			h.logger.Errorw("enrollment failed", "user_id", userID, "course", courseID, "error", err)
		}
		return "❌ Enrollment failed. Please try again or contact support."
	}

	if h.logger != nil {
		h.logger.Infow("user enrolled", "user_id", userID, "course", courseID)
	}
	return enrollSuccessMessage(userName, c, p)
}

func (h *Handler) handleProfile(userID string) string {
	p, err := h.profiles.Get(userID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return noProfileMessage()
		}
		if h.logger != nil {
			h.logger.Errorw("profile lookup failed", "user_id", userID, "error", err)
		}
		return errorMessage()
	}
	return profileMessage(p)
}

func (h *Handler) handleQuiz(ctx context.Context, userID string) string {
	p, err := h.profiles.Get(userID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return noProfileMessage()
		}
		if h.logger != nil {
			h.logger.Errorw("profile lookup failed", "user_id", userID, "error", err)
		}
		return errorMessage()
	}
	if p.EnrolledCourse == "" {
		return noProfileMessage()
	}

	if q := h.sessions.Pending(userID); q != nil {
		return questionMessage(q, "You already have a question waiting:")
	}

	difficulty := quiz.SelectDifficulty(p.TotalQuestions, p.CorrectAnswers)
	q, err := h.provider.Provide(ctx, p.EnrolledCourse, "", difficulty)
	if err != nil {
		// Only reachable when the stored course ID is no longer in
		// the catalog.
		if h.logger != nil {
			h.logger.Errorw("question unavailable", "user_id", userID, "course", p.EnrolledCourse, "error", err)
		}
		return unknownCourseMessage(p.EnrolledCourse)
	}

	h.sessions.Set(userID, q)
	return questionMessage(q, "🧠 **Quiz Time!**")
}

func (h *Handler) handleAnswer(ctx context.Context, userID string, q *quiz.Question, answer string) string {
	outcome, err := h.evaluator.Evaluate(ctx, userID, q, answer)
	if err != nil {
		var perr *evaluate.PersistenceError
		switch {
		case errors.Is(err, evaluate.ErrProfileNotFound):
			h.sessions.Clear(userID)
			return noProfileMessage()
		case errors.As(err, &perr) && outcome != nil:
			// Counters were updated in memory but the write failed; the
			// user still gets their result, with a warning.
			h.sessions.Clear(userID)
			if h.logger != nil {
				h.logger.Errorw("profile write failed after evaluation", "user_id", userID, "error", err)
			}
			return outcomeMessage(outcome) + "\n\n⚠️ Your progress could not be saved this time."
		default:
			if h.logger != nil {
				h.logger.Errorw("evaluation failed", "user_id", userID, "error", err)
			}
			return errorMessage()
		}
	}

	h.sessions.Clear(userID)
	return outcomeMessage(outcome)
}

func (h *Handler) handleCancel(userID string) string {
	if h.sessions.Clear(userID) {
		return "🚫 Quiz cancelled. Type `/quiz` whenever you're ready for another question."
	}
	return "There's no quiz in progress. Type `/quiz` to start one!"
}

func (h *Handler) handleStatus(ctx context.Context) string {
	stats, err := h.profiles.Stats()
	if err != nil {
		if h.logger != nil {
			h.logger.Errorw("storage stats failed", "error", err)
		}
		return errorMessage()
	}
	return statusMessage(stats, h.totals(ctx))
}

func (h *Handler) handleAdmin(ctx context.Context) string {
	stats, err := h.profiles.Stats()
	if err != nil {
		if h.logger != nil {
			h.logger.Errorw("storage stats failed", "error", err)
		}
		return errorMessage()
	}
	return adminMessage(stats, h.totals(ctx))
}

// totals reads history aggregates, degrading to zeros when the history
// store is absent or failing.
func (h *Handler) totals(ctx context.Context) history.Totals {
	if h.events == nil {
		return history.Totals{}
	}
	t, err := h.events.Totals(ctx)
	if err != nil {
		if h.logger != nil {
			h.logger.Warnw("history totals failed", "error", err)
		}
		return history.Totals{}
	}
	return t
}
