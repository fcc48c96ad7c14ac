package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/learnbot/internal/course"
	"github.com/abhisek/learnbot/internal/llm"
)

func testInput(t *testing.T) GenerateInput {
	t.Helper()
	c, err := course.Get("python-basics")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return GenerateInput{
		Course:     c,
		Topic:      "Functions and Parameters",
		Difficulty: course.DifficultyBeginner,
	}
}

func validQuestionJSON() json.RawMessage {
	return json.RawMessage(`{
		"question_text": "What keyword defines a function in Python?",
		"options": ["A) func", "B) def", "C) function", "D) lambda"],
		"correct_answer": "B",
		"explanation": "Python functions are defined with the def keyword.",
		"estimated_time": 45
	}`)
}

func TestGenerate_Valid(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionJSON()})
	gen := NewGenerator(mock, DefaultConfig())

	q, err := gen.Generate(context.Background(), testInput(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Text != "What keyword defines a function in Python?" {
		t.Errorf("unexpected text: %q", q.Text)
	}
	if q.CorrectAnswer != LetterB {
		t.Errorf("expected B, got %q", q.CorrectAnswer)
	}
	if q.Course != "python-basics" {
		t.Errorf("unexpected course %q", q.Course)
	}
	if q.Topic != "Functions and Parameters" {
		t.Errorf("unexpected topic %q", q.Topic)
	}
	if q.EstimatedTime != 45 {
		t.Errorf("expected estimated time 45, got %d", q.EstimatedTime)
	}
	if q.ID == "" {
		t.Error("expected a question id")
	}
}

func TestGenerate_LabelsUnlabeledOptions(t *testing.T) {
	raw := json.RawMessage(`{
		"question_text": "What keyword defines a function in Python?",
		"options": ["func", "def", "function", "lambda"],
		"correct_answer": "B",
		"explanation": "Python functions are defined with the def keyword.",
		"estimated_time": 45
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	gen := NewGenerator(mock, DefaultConfig())

	q, err := gen.Generate(context.Background(), testInput(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"A) func", "B) def", "C) function", "D) lambda"}
	for i, opt := range q.Options {
		if opt != want[i] {
			t.Errorf("option %d = %q, want %q", i, opt, want[i])
		}
	}
}

func TestGenerate_DefaultEstimatedTime(t *testing.T) {
	raw := json.RawMessage(`{
		"question_text": "What keyword defines a function in Python?",
		"options": ["A) func", "B) def", "C) function", "D) lambda"],
		"correct_answer": "B",
		"explanation": "Python functions are defined with the def keyword.",
		"estimated_time": 0
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	gen := NewGenerator(mock, DefaultConfig())

	q, err := gen.Generate(context.Background(), testInput(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.EstimatedTime != defaultEstimatedTime {
		t.Errorf("expected default estimated time, got %d", q.EstimatedTime)
	}
}

func TestGenerate_StructuralRejection(t *testing.T) {
	raw := json.RawMessage(`{
		"question_text": "What keyword defines a function in Python?",
		"options": ["A) func", "B) def"],
		"correct_answer": "B",
		"explanation": "Python functions are defined with the def keyword.",
		"estimated_time": 45
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	gen := NewGenerator(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), testInput(t))
	if err == nil {
		t.Fatal("expected validation error")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if verr.Validator != "structural" {
		t.Errorf("expected structural validator, got %q", verr.Validator)
	}
}

func TestGenerate_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("API error")})
	gen := NewGenerator(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), testInput(t))
	if err == nil {
		t.Fatal("expected error from provider")
	}
	if !strings.Contains(err.Error(), "LLM generation failed") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestGenerate_MalformedJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`not json`)})
	gen := NewGenerator(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), testInput(t))
	if err == nil {
		t.Fatal("expected parse error")
	}
}

func TestGenerate_PromptMentionsContext(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionJSON()})
	gen := NewGenerator(mock, DefaultConfig())

	input := testInput(t)
	if _, err := gen.Generate(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	userMsg := mock.Calls[0].Messages[0].Content
	for _, want := range []string{input.Topic, string(input.Difficulty), input.Course.Description} {
		if !strings.Contains(userMsg, want) {
			t.Errorf("expected user message to contain %q", want)
		}
	}
}
