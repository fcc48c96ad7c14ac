package quiz

import (
	"strings"
	"testing"

	"github.com/abhisek/learnbot/internal/course"
)

func TestFallback_KnownTopic(t *testing.T) {
	f := NewFallback()
	c, err := course.Get("python-basics")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	q := f.Question(c, "Variables and Data Types", course.DifficultyBeginner)
	if q == nil {
		t.Fatal("expected a question")
	}
	if q.Course != "python-basics" {
		t.Errorf("unexpected course %q", q.Course)
	}
	if q.Topic != "Variables and Data Types" {
		t.Errorf("unexpected topic %q", q.Topic)
	}
	if len(q.Options) != 4 {
		t.Fatalf("expected 4 options, got %d", len(q.Options))
	}
	switch q.CorrectAnswer {
	case LetterA, LetterB, LetterC, LetterD:
	default:
		t.Errorf("correct answer %q not in A-D", q.CorrectAnswer)
	}
	if q.Explanation == "" {
		t.Error("expected an explanation")
	}
	if q.EstimatedTime <= 0 {
		t.Errorf("expected positive estimated time, got %d", q.EstimatedTime)
	}
	if q.ID == "" {
		t.Error("expected a question id")
	}
}

func TestFallback_UnknownTopicGetsGeneric(t *testing.T) {
	f := NewFallback()
	c, err := course.Get("web-dev")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	q := f.Question(c, "Some Topic Without Entries", course.DifficultyIntermediate)
	if q == nil {
		t.Fatal("expected a generic question")
	}
	if !strings.Contains(q.Text, "Some Topic Without Entries") {
		t.Errorf("expected topic in generic text, got %q", q.Text)
	}
	if !strings.Contains(q.Text, "practical") {
		t.Errorf("expected intermediate difficulty indicator, got %q", q.Text)
	}
	if len(q.Options) != 4 {
		t.Fatalf("expected 4 options, got %d", len(q.Options))
	}
	if q.CorrectAnswer != LetterB {
		t.Errorf("expected generic correct answer B, got %q", q.CorrectAnswer)
	}
}

func TestFallback_EveryBankEntryIsStructurallyValid(t *testing.T) {
	f := NewFallback()
	v := &StructuralValidator{}

	for courseID, topics := range f.bank {
		c, err := course.Get(courseID)
		if err != nil {
			t.Fatalf("bank references unknown course %q", courseID)
		}
		for topic, entries := range topics {
			for range entries {
				q := f.Question(c, topic, course.DifficultyBeginner)
				if verr := v.Validate(q, GenerateInput{}); verr != nil {
					t.Errorf("%s/%s: %v", courseID, topic, verr)
				}
			}
		}
	}
}
