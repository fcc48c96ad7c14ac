package quiz

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/learnbot/internal/llm"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
	now      nowFunc
	newID    idFunc
}

// NewGenerator creates an LLMGenerator with the given provider and config.
func NewGenerator(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{
		provider: provider,
		config:   cfg,
		now:      defaultNow,
		newID:    newQuestionID,
	}
}

// questionOutput is the raw LLM response before validation.
type questionOutput struct {
	QuestionText  string   `json:"question_text"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
	EstimatedTime int      `json:"estimated_time"`
}

// Generate produces a single question for the given input context.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*Question, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input)},
		},
		Schema:      QuestionSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw questionOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	created := g.now()
	q := &Question{
		ID:            g.newID(input.Course.ID, created),
		Course:        input.Course.ID,
		Topic:         input.Topic,
		Difficulty:    input.Difficulty,
		Text:          raw.QuestionText,
		Options:       labelOptions(raw.Options),
		CorrectAnswer: Letter(raw.CorrectAnswer),
		Explanation:   raw.Explanation,
		EstimatedTime: raw.EstimatedTime,
		CreatedAt:     created,
	}
	if q.EstimatedTime <= 0 {
		q.EstimatedTime = defaultEstimatedTime
	}

	// Run validators in order.
	for _, v := range g.config.Validators {
		if verr := v.Validate(q, input); verr != nil {
			return nil, verr
		}
	}

	return q, nil
}

// labelOptions ensures each option carries its positional letter prefix.
// Models occasionally drop the labels despite the prompt.
func labelOptions(options []string) []string {
	out := make([]string, len(options))
	for i, opt := range options {
		if i < len(letters) && !hasLabel(opt, letters[i]) {
			out[i] = fmt.Sprintf("%s) %s", letters[i], opt)
		} else {
			out[i] = opt
		}
	}
	return out
}

func hasLabel(opt string, letter Letter) bool {
	return len(opt) >= 2 && Letter(opt[:1]) == letter && opt[1] == ')'
}
