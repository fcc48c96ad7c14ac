package quiz

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an expert educational content creator generating quiz questions for a micro-learning chat bot.

Rules:
- Generate a single multiple-choice question for the given course, topic, and difficulty.
- The question text must be clear, concise, self-contained, and practical.
- Provide exactly 4 options labeled "A) " through "D) ": one correct answer and three plausible distractors drawn from common mistakes.
- The correct_answer field is the letter of the correct option.
- Include a brief explanation of why the correct answer is right.
- estimated_time is the number of seconds a learner at this level should need.
- Match the requested difficulty: beginner questions test recall of fundamentals, intermediate questions test application, advanced questions test edge cases and trade-offs.`

// buildUserMessage constructs the generation prompt from the input.
func buildUserMessage(input GenerateInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Course: %s\n", input.Course.Description)
	fmt.Fprintf(&b, "Topic: %s\n", input.Topic)
	fmt.Fprintf(&b, "Difficulty: %s\n", input.Difficulty)

	return b.String()
}
