package llm

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/learnbot/internal/history"
)

// LoggingProvider is a decorator that records every LLM request in the
// history store and emits a structured log line.
type LoggingProvider struct {
	inner  Provider
	events history.EventRepo
	logger *zap.SugaredLogger
}

// WithLogging wraps a Provider with request logging. Both events and
// logger may be nil; logging is best-effort and never fails a request.
func WithLogging(p Provider, events history.EventRepo, logger *zap.SugaredLogger) Provider {
	return &LoggingProvider{inner: p, events: events, logger: logger}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	latencyMs := time.Since(start).Milliseconds()

	data := history.LLMRequestData{
		Provider:  l.inner.ModelID(),
		Model:     l.inner.ModelID(),
		Purpose:   purpose,
		LatencyMs: latencyMs,
		Success:   err == nil,
	}

	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
	}

	if err != nil {
		data.ErrorMessage = err.Error()
	}

	if l.logger != nil {
		if err != nil {
			l.logger.Warnw("llm request failed",
				"model", data.Model, "purpose", purpose, "latency_ms", latencyMs, "error", err)
		} else {
			l.logger.Debugw("llm request",
				"model", data.Model, "purpose", purpose, "latency_ms", latencyMs,
				"input_tokens", data.InputTokens, "output_tokens", data.OutputTokens)
		}
	}

	if l.events != nil {
		if logErr := l.events.AppendLLMRequest(ctx, data); logErr != nil && l.logger != nil {
			l.logger.Warnw("failed to log llm request event", "error", logErr)
		}
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
