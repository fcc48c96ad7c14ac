package quiz

import (
	"math/rand/v2"

	"github.com/abhisek/learnbot/internal/course"
)

// SelectDifficulty picks the next question's difficulty tier from a
// learner's running totals. Rules are evaluated top-down, first match
// wins:
//
//	total == 0                    → beginner
//	accuracy >= 0.9 && total >= 10 → advanced
//	accuracy >= 0.8 && total >= 5  → intermediate
//	otherwise                     → beginner
//
// The advanced check runs before intermediate on purpose: its accuracy
// bound is a subset of intermediate's, so checking intermediate first
// would make advanced unreachable. The 10-vs-5 volume asymmetry is
// intended product behavior, not an oversight.
func SelectDifficulty(totalQuestions, correctAnswers int) course.Difficulty {
	if totalQuestions == 0 {
		return course.DifficultyBeginner
	}

	accuracy := float64(correctAnswers) / float64(totalQuestions)

	switch {
	case accuracy >= 0.9 && totalQuestions >= 10:
		return course.DifficultyAdvanced
	case accuracy >= 0.8 && totalQuestions >= 5:
		return course.DifficultyIntermediate
	default:
		return course.DifficultyBeginner
	}
}

// SelectTopic picks a topic uniformly at random from the course
// curriculum. Topic sequencing by per-topic performance is a possible
// future refinement; random selection matches current product behavior.
func SelectTopic(c course.Course) string {
	if len(c.Topics) == 0 {
		return ""
	}
	return c.Topics[rand.IntN(len(c.Topics))]
}
