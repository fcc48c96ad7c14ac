package quiz

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/learnbot/internal/course"
)

// Provider produces a question for a (course, topic, difficulty) triple.
// It tries remote generation first and degrades to the static fallback
// bank on any failure: transport errors, timeouts, quota errors, and
// malformed or schema-invalid responses all get the same treatment.
// Once the course ID is validated, Provide cannot fail.
type Provider struct {
	generator Generator // nil when no LLM is configured
	fallback  *Fallback
	timeout   time.Duration
	logger    *zap.SugaredLogger
}

// NewProvider creates a Provider. generator may be nil, in which case
// every question comes from the fallback bank.
func NewProvider(generator Generator, fallback *Fallback, timeout time.Duration, logger *zap.SugaredLogger) *Provider {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Provider{
		generator: generator,
		fallback:  fallback,
		timeout:   timeout,
		logger:    logger,
	}
}

// Provide returns a question for the given course, topic, and difficulty.
// An empty topic selects one at random from the curriculum. The only
// possible error is *course.ErrUnknownCourse.
func (p *Provider) Provide(ctx context.Context, courseID, topic string, difficulty course.Difficulty) (*Question, error) {
	c, err := course.Get(courseID)
	if err != nil {
		return nil, err
	}

	if topic == "" {
		topic = SelectTopic(c)
	}

	input := GenerateInput{Course: c, Topic: topic, Difficulty: difficulty}

	if p.generator != nil {
		genCtx, cancel := context.WithTimeout(ctx, p.timeout)
		q, err := p.generator.Generate(genCtx, input)
		cancel()
		if err == nil {
			return q, nil
		}
		if p.logger != nil {
			p.logger.Warnw("question generation unavailable, using fallback",
				"course", courseID, "topic", topic, "difficulty", difficulty, "error", err)
		}
	}

	return p.fallback.Question(c, topic, difficulty), nil
}
