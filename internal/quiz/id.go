package quiz

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// defaultEstimatedTime is the advisory answering budget, in seconds,
// used when a source doesn't supply one.
const defaultEstimatedTime = 60

type nowFunc func() time.Time

type idFunc func(courseID string, created time.Time) string

func defaultNow() time.Time { return time.Now() }

// newQuestionID builds a collision-resistant question ID from the course,
// the creation timestamp, and a random suffix.
func newQuestionID(courseID string, created time.Time) string {
	return fmt.Sprintf("%s_%s_%s", courseID, created.Format("20060102_150405"), uuid.NewString()[:8])
}
