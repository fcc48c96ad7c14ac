package evaluate

import (
	"fmt"
	"time"

	"github.com/abhisek/learnbot/internal/profile"
	"github.com/abhisek/learnbot/internal/quiz"
)

// InsightType classifies a learning insight.
type InsightType string

const (
	InsightStrength       InsightType = "strength"
	InsightWeakness       InsightType = "weakness"
	InsightRecommendation InsightType = "recommendation"
)

// Insight is one piece of learning analytics derived from an evaluation.
type Insight struct {
	UserID      string
	Type        InsightType
	Topic       string
	Message     string
	Confidence  float64
	GeneratedAt time.Time
}

// buildInsights derives insights from the updated profile and the result.
func buildInsights(p *profile.Profile, question *quiz.Question, result quiz.Result, now time.Time) []Insight {
	var insights []Insight
	accuracy := p.Accuracy()

	// Performance trend, once there is enough signal.
	if p.TotalQuestions >= 5 {
		if accuracy >= 0.8 {
			insights = append(insights, Insight{
				UserID:      p.UserID,
				Type:        InsightStrength,
				Topic:       question.Topic,
				Message:     fmt.Sprintf("You're performing excellently with %.1f%% accuracy!", accuracy*100),
				Confidence:  0.9,
				GeneratedAt: now,
			})
		} else if accuracy < 0.5 {
			insights = append(insights, Insight{
				UserID:      p.UserID,
				Type:        InsightWeakness,
				Topic:       question.Topic,
				Message:     fmt.Sprintf("Consider reviewing fundamental concepts. Current accuracy: %.1f%%", accuracy*100),
				Confidence:  0.8,
				GeneratedAt: now,
			})
		}
	}

	if p.CurrentStreak >= 5 {
		insights = append(insights, Insight{
			UserID:      p.UserID,
			Type:        InsightStrength,
			Topic:       "General",
			Message:     fmt.Sprintf("Amazing streak of %d correct answers!", p.CurrentStreak),
			Confidence:  0.95,
			GeneratedAt: now,
		})
	}

	if !result.IsCorrect {
		insights = append(insights, Insight{
			UserID:      p.UserID,
			Type:        InsightRecommendation,
			Topic:       question.Topic,
			Message:     fmt.Sprintf("Focus on '%s' - practice makes perfect!", question.Topic),
			Confidence:  0.7,
			GeneratedAt: now,
		})
	}

	return insights
}
