package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const maxQuestions = 10

// GeminiProvider implements QuestionGenerator using Google's Gemini models.
type GeminiProvider struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("gemini: missing api key")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel("gemini-2.0-flash")

	// Force JSON response for structured parsing.
	model.ResponseMIMEType = "application/json"
	model.SetTemperature(0.4)

	return &GeminiProvider{
		client: client,
		model:  model,
	}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

// GenerateQuestions asks the model for n questions about category and keeps
// only the ones that pass Validate.
func (p *GeminiProvider) GenerateQuestions(ctx context.Context, category string, n int) ([]GeneratedQuestion, error) {
	if n <= 0 || n > maxQuestions {
		n = maxQuestions
	}

	resp, err := p.model.GenerateContent(ctx, genai.Text(buildQuizPrompt(category, n)))
	if err != nil {
		return nil, fmt.Errorf("gemini generation error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no response candidates from Gemini")
	}

	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			responseText.WriteString(string(txt))
		}
	}
	return parseQuestions(responseText.String(), category, n)
}

// parseQuestions decodes the model output and drops invalid entries.
func parseQuestions(raw, category string, n int) ([]GeneratedQuestion, error) {
	cleanJSON := cleanJSONString(raw)

	var payload struct {
		Questions []GeneratedQuestion `json:"questions"`
	}
	if err := json.Unmarshal([]byte(cleanJSON), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w. Raw: %s", err, cleanJSON)
	}

	out := make([]GeneratedQuestion, 0, len(payload.Questions))
	for _, q := range payload.Questions {
		q.Category = category
		q.Question = strings.TrimSpace(q.Question)
		if q.Validate() != nil {
			continue
		}
		out = append(out, q)
		if len(out) == n {
			break
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: model returned no usable questions", ErrInvalidQuestion)
	}
	return out, nil
}

func buildQuizPrompt(category string, n int) string {
	if strings.TrimSpace(category) == "" {
		category = "General Islamic knowledge"
	}
	return fmt.Sprintf(`Role: You write short multiple-choice questions for a Muslim learning app.
Topic: %s
Count: %d

RULES:
1. Each question has exactly 4 distinct options.
2. "answer" MUST be copied verbatim from "options".
3. Prefer well-established facts. Avoid questions on matters of scholarly disagreement.
4. Keep each question under 120 characters.

OUTPUT FORMAT (JSON ONLY):
{
  "questions": [
    {"question": "string", "options": ["string", "string", "string", "string"], "answer": "string"}
  ]
}
`, category, n)
}

// cleanJSONString removes markdown code blocks if present (e.g. ```json ... ```)
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
