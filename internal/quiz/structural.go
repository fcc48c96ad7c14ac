package quiz

import "fmt"

// StructuralValidator checks that a generated question has all required
// fields, exactly 4 options, and a correct answer within range.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question, _ GenerateInput) *ValidationError {
	if q.Text == "" {
		return v.fail("question_text is empty")
	}
	if len(q.Text) > 500 {
		return v.fail("question_text exceeds 500 characters")
	}
	if len(q.Options) != 4 {
		return v.fail(fmt.Sprintf("expected 4 options, got %d", len(q.Options)))
	}
	for i, opt := range q.Options {
		// Labels are 3 chars ("A) "); an option needs content past them.
		if len(opt) <= 3 {
			return v.fail(fmt.Sprintf("option %s is empty", letters[i]))
		}
	}
	switch q.CorrectAnswer {
	case LetterA, LetterB, LetterC, LetterD:
	default:
		return v.fail(fmt.Sprintf("correct_answer %q is not one of A-D", q.CorrectAnswer))
	}
	if q.Explanation == "" {
		return v.fail("explanation is empty")
	}
	if len(q.Explanation) > 1000 {
		return v.fail("explanation exceeds 1000 characters")
	}
	if q.EstimatedTime <= 0 {
		return v.fail("estimated_time must be positive")
	}
	return nil
}

func (v *StructuralValidator) fail(msg string) *ValidationError {
	return &ValidationError{Validator: v.Name(), Message: msg}
}
