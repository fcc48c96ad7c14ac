package quiz

import "github.com/abhisek/learnbot/internal/llm"

// QuestionSchema defines the JSON schema for LLM question generation
// responses.
var QuestionSchema = &llm.Schema{
	Name:        "quiz-question",
	Description: "A single multiple-choice learning question with answer and explanation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question_text": map[string]any{
				"type":        "string",
				"description": "The question prompt shown to the learner. Clear, concise, self-contained.",
			},
			"options": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"minItems":    4,
				"maxItems":    4,
				"description": "Exactly 4 answer options, prefixed \"A) \" through \"D) \". One correct, three plausible distractors.",
			},
			"correct_answer": map[string]any{
				"type":        "string",
				"enum":        []any{"A", "B", "C", "D"},
				"description": "The letter of the correct option",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "A brief explanation of why the correct answer is right",
			},
			"estimated_time": map[string]any{
				"type":        "integer",
				"minimum":     10,
				"maximum":     600,
				"description": "Advisory answering time in seconds",
			},
		},
		"required":             []any{"question_text", "options", "correct_answer", "explanation", "estimated_time"},
		"additionalProperties": false,
	},
}
