package history

import (
	"context"
	"fmt"
	"time"
)

// ResultRecord is one evaluated answer as stored in quiz_results.
type ResultRecord struct {
	ID            int64
	UserID        string
	QuestionID    string
	Course        string
	Topic         string
	Difficulty    string
	UserAnswer    string
	CorrectAnswer string
	IsCorrect     bool
	TimeTakenSec  int
	CreatedAt     time.Time
}

// Totals summarizes the whole quiz_results table.
type Totals struct {
	TotalResults  int
	TotalCorrect  int
	DistinctUsers int
}

// RecordResult appends one evaluated answer to the history.
func (s *Store) RecordResult(ctx context.Context, rec ResultRecord) error {
	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO quiz_results
			(user_id, question_id, course, topic, difficulty, user_answer, correct_answer, is_correct, time_taken_sec, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.UserID, rec.QuestionID, rec.Course, rec.Topic, rec.Difficulty,
		rec.UserAnswer, rec.CorrectAnswer, boolToInt(rec.IsCorrect), rec.TimeTakenSec, createdAt,
	)
	if err != nil {
		return fmt.Errorf("insert quiz result: %w", err)
	}
	return nil
}

// ResultsByUser returns the most recent results for a user, newest first.
// limit <= 0 means no limit.
func (s *Store) ResultsByUser(ctx context.Context, userID string, limit int) ([]ResultRecord, error) {
	q := `SELECT id, user_id, question_id, course, topic, difficulty, user_answer, correct_answer, is_correct, time_taken_sec, created_at
		FROM quiz_results WHERE user_id = ? ORDER BY created_at DESC, id DESC`
	args := []any{userID}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query quiz results: %w", err)
	}
	defer rows.Close()

	var out []ResultRecord
	for rows.Next() {
		var rec ResultRecord
		var isCorrect int
		if err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.QuestionID, &rec.Course, &rec.Topic, &rec.Difficulty,
			&rec.UserAnswer, &rec.CorrectAnswer, &isCorrect, &rec.TimeTakenSec, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan quiz result: %w", err)
		}
		rec.IsCorrect = isCorrect != 0
		out = append(out, rec)
	}
	return out, rows.Err()
}

// ResultCount returns the number of results recorded for a user.
func (s *Store) ResultCount(ctx context.Context, userID string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM quiz_results WHERE user_id = ?`, userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count quiz results: %w", err)
	}
	return n, nil
}

// Totals returns aggregate counters across all users.
func (s *Store) Totals(ctx context.Context) (Totals, error) {
	var t Totals
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*),
			COALESCE(SUM(is_correct), 0),
			COUNT(DISTINCT user_id)
		 FROM quiz_results`).Scan(&t.TotalResults, &t.TotalCorrect, &t.DistinctUsers)
	if err != nil {
		return Totals{}, fmt.Errorf("query totals: %w", err)
	}
	return t, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
