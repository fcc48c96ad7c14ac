package quiz

import (
	"time"

	"github.com/abhisek/learnbot/internal/course"
)

// Letter is a canonical multiple-choice answer key.
type Letter string

const (
	LetterA Letter = "A"
	LetterB Letter = "B"
	LetterC Letter = "C"
	LetterD Letter = "D"

	// LetterNone means the answer could not be mapped to any option.
	// It is always scored as incorrect.
	LetterNone Letter = ""
)

// letters indexes option positions: options[0] is A, options[3] is D.
var letters = []Letter{LetterA, LetterB, LetterC, LetterD}

// Question is a single multiple-choice question. Questions are ephemeral:
// generated per quiz interaction and discarded after evaluation.
type Question struct {
	// ID is unique per generation: course, timestamp, and a random suffix.
	ID string

	Course     string
	Topic      string
	Difficulty course.Difficulty

	// Text is the question prompt shown to the learner.
	Text string

	// Options holds exactly 4 labeled choices, prefixed "A) " through "D) ".
	Options []string

	// CorrectAnswer is the canonical answer key, one of A-D.
	CorrectAnswer Letter

	// Explanation is shown after the answer is evaluated.
	Explanation string

	// EstimatedTime is the advisory time budget in seconds.
	EstimatedTime int

	CreatedAt time.Time
}

// Result is the scored outcome of one submitted answer.
type Result struct {
	QuestionID    string
	UserAnswer    string
	CorrectAnswer Letter
	IsCorrect     bool
	TimeTaken     int
	Timestamp     time.Time
}

// GenerateInput holds the context needed to generate one question.
type GenerateInput struct {
	Course     course.Course
	Topic      string
	Difficulty course.Difficulty
}
