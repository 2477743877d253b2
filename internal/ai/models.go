package ai

import (
	"errors"
	"strings"
)

// ErrInvalidQuestion marks a generated question that cannot be used as-is.
var ErrInvalidQuestion = errors.New("invalid generated question")

// GeneratedQuestion captures one question from the model's structured output.
type GeneratedQuestion struct {
	// Category echoes the requested topic (e.g. "Quran", "Hadith", "Dua").
	Category string `json:"category"`

	Question string `json:"question"`

	// Options are the choices shown to the user, 2 to 6 of them.
	Options []string `json:"options"`

	// Answer must equal one of Options exactly.
	Answer string `json:"answer"`
}

// Validate rejects questions with a missing text, too few options, duplicate
// options or an answer that is not one of the options.
func (q GeneratedQuestion) Validate() error {
	if strings.TrimSpace(q.Question) == "" {
		return errors.Join(ErrInvalidQuestion, errors.New("empty question"))
	}
	if len(q.Options) < 2 || len(q.Options) > 6 {
		return errors.Join(ErrInvalidQuestion, errors.New("need 2 to 6 options"))
	}
	seen := make(map[string]bool, len(q.Options))
	for _, o := range q.Options {
		if strings.TrimSpace(o) == "" || seen[o] {
			return errors.Join(ErrInvalidQuestion, errors.New("blank or duplicate option"))
		}
		seen[o] = true
	}
	if !seen[q.Answer] {
		return errors.Join(ErrInvalidQuestion, errors.New("answer is not an option"))
	}
	return nil
}
