package quiz

import (
	"testing"
	"time"
)

var testOptions = []string{
	"A) A variable",
	"B) A function",
	"C) A loop",
	"D) A dictionary",
}

func TestNormalizeAnswer_Letters(t *testing.T) {
	cases := []struct {
		raw  string
		want Letter
	}{
		{"A", LetterA},
		{"b", LetterB},
		{" C ", LetterC},
		{"d", LetterD},
	}
	for _, c := range cases {
		if got := NormalizeAnswer(c.raw, testOptions); got != c.want {
			t.Errorf("NormalizeAnswer(%q) = %q, want %q", c.raw, got, c.want)
		}
	}
}

func TestNormalizeAnswer_Digits(t *testing.T) {
	cases := []struct {
		raw  string
		want Letter
	}{
		{"1", LetterA},
		{"2", LetterB},
		{"3", LetterC},
		{"4", LetterD},
	}
	for _, c := range cases {
		if got := NormalizeAnswer(c.raw, testOptions); got != c.want {
			t.Errorf("NormalizeAnswer(%q) = %q, want %q", c.raw, got, c.want)
		}
	}
}

func TestNormalizeAnswer_SubstringMatch(t *testing.T) {
	if got := NormalizeAnswer("function", testOptions); got != LetterB {
		t.Errorf("expected B for 'function', got %q", got)
	}
	if got := NormalizeAnswer("DICTIONARY", testOptions); got != LetterD {
		t.Errorf("expected case-insensitive match to D, got %q", got)
	}
}

func TestNormalizeAnswer_FirstMatchWins(t *testing.T) {
	options := []string{
		"A) A list of values",
		"B) Another list of values",
		"C) Something else",
		"D) None of the above",
	}
	if got := NormalizeAnswer("list of values", options); got != LetterA {
		t.Errorf("expected first matching option A, got %q", got)
	}
}

func TestNormalizeAnswer_LetterBeatsSubstring(t *testing.T) {
	// "a" appears in every option text; the letter rule must win.
	if got := NormalizeAnswer("a", testOptions); got != LetterA {
		t.Errorf("expected letter rule to win, got %q", got)
	}
}

func TestNormalizeAnswer_NoMatch(t *testing.T) {
	for _, raw := range []string{"", "   ", "E", "5", "xyzzy"} {
		if got := NormalizeAnswer(raw, testOptions); got != LetterNone {
			t.Errorf("NormalizeAnswer(%q) = %q, want LetterNone", raw, got)
		}
	}
}

func TestNormalizeAnswer_OnlyFirstFourOptions(t *testing.T) {
	options := append(append([]string(nil), testOptions...), "E) A fifth thing")
	if got := NormalizeAnswer("fifth thing", options); got != LetterNone {
		t.Errorf("expected no match past option D, got %q", got)
	}
}

func TestCheckAnswer(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	q := &Question{
		ID:            "python-basics_20260301_090000_abcd1234",
		Options:       testOptions,
		CorrectAnswer: LetterB,
	}

	r := CheckAnswer(q, "2", now)
	if !r.IsCorrect {
		t.Error("expected '2' to be correct")
	}
	if r.QuestionID != q.ID {
		t.Errorf("unexpected question id %q", r.QuestionID)
	}
	if r.UserAnswer != "2" {
		t.Errorf("expected raw answer preserved, got %q", r.UserAnswer)
	}
	if !r.Timestamp.Equal(now) {
		t.Errorf("unexpected timestamp %v", r.Timestamp)
	}

	r = CheckAnswer(q, "garbage", now)
	if r.IsCorrect {
		t.Error("expected unmatched answer to score incorrect")
	}
	if r.CorrectAnswer != LetterB {
		t.Errorf("expected correct answer B, got %q", r.CorrectAnswer)
	}
}
