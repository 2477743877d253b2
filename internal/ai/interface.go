package ai

import (
	"context"
)

// QuestionGenerator produces multiple-choice study questions.
// This interface allows for swapping different AI providers (Gemini, OpenAI, etc.) in the future.
type QuestionGenerator interface {
	// GenerateQuestions returns up to n questions about category.
	// Every returned question has its answer among its options.
	GenerateQuestions(ctx context.Context, category string, n int) ([]GeneratedQuestion, error)
}
