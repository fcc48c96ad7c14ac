package course

import "fmt"

// Difficulty is a question difficulty tier.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Course describes one enrollable course and its curriculum.
type Course struct {
	// ID is the stable course identifier used in /enroll commands and
	// stored on profiles, e.g. "python-basics".
	ID string

	// Name is the display name shown to learners.
	Name string

	// Description is a one-line summary used in prompts and listings.
	Description string

	// Topics is the ordered curriculum for this course. Question topics
	// are always drawn from this list.
	Topics []string

	// Difficulties lists the tiers this course offers content for.
	Difficulties []Difficulty
}

// ErrUnknownCourse indicates a course ID outside the catalog.
type ErrUnknownCourse struct {
	ID string
}

func (e *ErrUnknownCourse) Error() string {
	return fmt.Sprintf("unknown course: %q", e.ID)
}
