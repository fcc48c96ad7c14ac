package history

import (
	"context"
	"fmt"
	"time"
)

// LLMRequestData captures one LLM API call for the request log.
type LLMRequestData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// EventRepo is the append interface the LLM logging middleware writes to.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestData) error
}

// AppendLLMRequest records an LLM API call event.
func (s *Store) AppendLLMRequest(ctx context.Context, data LLMRequestData) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO llm_requests
			(provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		data.Provider, data.Model, data.Purpose,
		data.InputTokens, data.OutputTokens, data.LatencyMs,
		boolToInt(data.Success), data.ErrorMessage, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("insert llm request: %w", err)
	}
	return nil
}

// LLMRequestCount returns the total number of logged LLM requests.
func (s *Store) LLMRequestCount(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM llm_requests`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count llm requests: %w", err)
	}
	return n, nil
}
