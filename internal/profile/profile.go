package profile

import "time"

// Profile is the persisted per-user learning record. It is stored as one
// human-readable JSON file per user and always written whole.
type Profile struct {
	UserID          string         `json:"user_id"`
	EnrolledCourse  string         `json:"enrolled_course,omitempty"`
	StartDate       *time.Time     `json:"start_date,omitempty"`
	TotalQuestions  int            `json:"total_questions"`
	CorrectAnswers  int            `json:"correct_answers"`
	CurrentStreak   int            `json:"current_streak"`
	LongestStreak   int            `json:"longest_streak"`
	LastQuizDate    *time.Time     `json:"last_quiz_date,omitempty"`
	CompletedCourse bool           `json:"completed_course"`
	Preferences     map[string]any `json:"preferences"`
}

// New creates a Profile with default preferences. Preferences are set
// once here and never auto-overwritten afterwards.
func New(userID string) *Profile {
	return &Profile{
		UserID: userID,
		Preferences: map[string]any{
			"difficulty":    "medium",
			"notifications": true,
			"quiz_time":     "09:00",
		},
	}
}

// Accuracy returns correct/total, or 0 when no questions were answered.
func (p *Profile) Accuracy() float64 {
	if p.TotalQuestions == 0 {
		return 0
	}
	return float64(p.CorrectAnswers) / float64(p.TotalQuestions)
}

// Clone returns a deep copy of the profile. Evaluation outcomes carry a
// snapshot so later store writes can't mutate a returned profile.
func (p *Profile) Clone() *Profile {
	cp := *p
	if p.StartDate != nil {
		d := *p.StartDate
		cp.StartDate = &d
	}
	if p.LastQuizDate != nil {
		d := *p.LastQuizDate
		cp.LastQuizDate = &d
	}
	if p.Preferences != nil {
		cp.Preferences = make(map[string]any, len(p.Preferences))
		for k, v := range p.Preferences {
			cp.Preferences[k] = v
		}
	}
	return &cp
}
