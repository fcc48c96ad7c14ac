package quiz

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/abhisek/learnbot/internal/course"
)

//go:embed fallback_questions.json
var fallbackAsset []byte

// fallbackEntry is one hand-authored question in the embedded bank.
type fallbackEntry struct {
	QuestionText  string   `json:"question_text"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
	EstimatedTime int      `json:"estimated_time"`
}

// Fallback serves hand-authored questions when remote generation is
// unavailable. The bank is keyed course → topic, loaded once from the
// embedded asset, and read-only afterwards. Fallback never fails: topics
// without entries get a generic templated question.
type Fallback struct {
	bank  map[string]map[string][]fallbackEntry
	now   nowFunc
	newID idFunc
}

// NewFallback loads the embedded question bank.
func NewFallback() *Fallback {
	var bank map[string]map[string][]fallbackEntry
	if err := json.Unmarshal(fallbackAsset, &bank); err != nil {
		// The asset is compiled into the binary; a parse failure is a
		// build defect, not a runtime condition.
		panic(fmt.Sprintf("quiz: corrupt fallback question asset: %v", err))
	}
	return &Fallback{bank: bank, now: defaultNow, newID: newQuestionID}
}

// Question returns a fallback question for the course/topic/difficulty,
// picking uniformly at random among the topic's entries.
func (f *Fallback) Question(c course.Course, topic string, difficulty course.Difficulty) *Question {
	created := f.now()

	entries := f.bank[c.ID][topic]
	if len(entries) == 0 {
		return f.generic(c, topic, difficulty, created)
	}

	e := entries[rand.IntN(len(entries))]
	estimated := e.EstimatedTime
	if estimated <= 0 {
		estimated = defaultEstimatedTime
	}

	return &Question{
		ID:            f.newID(c.ID, created),
		Course:        c.ID,
		Topic:         topic,
		Difficulty:    difficulty,
		Text:          e.QuestionText,
		Options:       append([]string(nil), e.Options...),
		CorrectAnswer: Letter(e.CorrectAnswer),
		Explanation:   e.Explanation,
		EstimatedTime: estimated,
		CreatedAt:     created,
	}
}

// difficultyIndicators flavor the generic question text per tier.
var difficultyIndicators = map[course.Difficulty]string{
	course.DifficultyBeginner:     "fundamental",
	course.DifficultyIntermediate: "practical",
	course.DifficultyAdvanced:     "complex",
}

// generic synthesizes a templated question when the topic has no
// hand-authored entries.
func (f *Fallback) generic(c course.Course, topic string, difficulty course.Difficulty, created time.Time) *Question {
	indicator := difficultyIndicators[difficulty]
	if indicator == "" {
		indicator = "sample"
	}
	courseName := strings.ReplaceAll(c.ID, "-", " ")

	return &Question{
		ID:         f.newID(c.ID, created),
		Course:     c.ID,
		Topic:      topic,
		Difficulty: difficulty,
		Text: fmt.Sprintf(
			"This is a %s %s-level question about %s in %s. What is the best practice for implementing this concept?",
			indicator, difficulty, topic, courseName),
		Options: []string{
			"A) Use the most common approach with basic syntax",
			"B) Follow industry best practices and conventions",
			"C) Optimize for performance over readability",
			"D) Use the newest available features",
		},
		CorrectAnswer: LetterB,
		Explanation: fmt.Sprintf(
			"Following industry best practices ensures your %s code is maintainable, readable, and follows established conventions in %s.",
			strings.ToLower(topic), courseName),
		EstimatedTime: defaultEstimatedTime,
		CreatedAt:     created,
	}
}
