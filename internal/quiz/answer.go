package quiz

import (
	"strings"
	"time"
)

// NormalizeAnswer maps a raw learner answer to a canonical choice letter.
//
// Matching runs in priority order so that explicit letter or number entry
// always wins over fuzzy text matching:
//  1. "a".."d" (any case) map directly to A-D.
//  2. "1".."4" map positionally to A-D.
//  3. The raw text, case-insensitively, as a substring of an option's
//     text; the first matching option wins and the scan stops.
//
// Anything else returns LetterNone, which is scored as incorrect. This
// function never fails.
func NormalizeAnswer(raw string, options []string) Letter {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return LetterNone
	}

	switch upper := strings.ToUpper(trimmed); upper {
	case "A", "B", "C", "D":
		return Letter(upper)
	case "1", "2", "3", "4":
		return letters[upper[0]-'1']
	}

	lowered := strings.ToLower(trimmed)
	for i, opt := range options {
		if i >= len(letters) {
			break
		}
		if strings.Contains(strings.ToLower(opt), lowered) {
			return letters[i]
		}
	}

	return LetterNone
}

// CheckAnswer scores a raw answer against a question. A LetterNone
// normalization is treated as incorrect, never as an error.
func CheckAnswer(q *Question, rawAnswer string, now time.Time) Result {
	normalized := NormalizeAnswer(rawAnswer, q.Options)
	return Result{
		QuestionID:    q.ID,
		UserAnswer:    rawAnswer,
		CorrectAnswer: q.CorrectAnswer,
		IsCorrect:     normalized != LetterNone && normalized == q.CorrectAnswer,
		Timestamp:     now,
	}
}
