// README: Quiz service checks answers, keeps scores and adds generated questions.
package quiz

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"ibadah/internal/ai"
	"ibadah/internal/infra"
	"ibadah/internal/observability"
	"ibadah/internal/types"
)

type Service struct {
	docs      infra.DocumentStore
	generator ai.QuestionGenerator
	metrics   *observability.Collector
	log       zerolog.Logger

	mu        sync.RWMutex
	questions map[string]Question
	order     []string
	nextGen   int
}

// NewService seeds the service with Bank. generator and metrics may be nil.
func NewService(docs infra.DocumentStore, generator ai.QuestionGenerator, metrics *observability.Collector, log zerolog.Logger) *Service {
	s := &Service{
		docs:      docs,
		generator: generator,
		metrics:   metrics,
		log:       log.With().Str("module", "quiz").Logger(),
		questions: make(map[string]Question, len(Bank)),
	}
	for _, q := range Bank {
		s.add(q)
	}
	return s
}

// Questions lists known questions, optionally limited to one category
// (case-insensitive).
func (s *Service) Questions(category string) []Question {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Question, 0, len(s.order))
	for _, id := range s.order {
		q := s.questions[id]
		if category != "" && !strings.EqualFold(q.Category, category) {
			continue
		}
		out = append(out, q)
	}
	return out
}

// Check reports whether answer is correct for question id.
func (s *Service) Check(id, answer string) (bool, error) {
	q, err := s.question(id)
	if err != nil {
		return false, err
	}
	return answer == q.Answer, nil
}

// SubmitAnswer checks the answer and, when correct, adds one point to the
// user's score. The current score is returned either way.
func (s *Service) SubmitAnswer(ctx context.Context, uid types.ID, id, answer string) (Result, error) {
	if uid == "" || strings.TrimSpace(answer) == "" {
		return Result{}, ErrBadRequest
	}
	q, err := s.question(id)
	if err != nil {
		return Result{}, err
	}

	res := Result{Correct: answer == q.Answer, Answer: q.Answer}
	if res.Correct {
		res.Score, err = s.docs.Increment(ctx, scoreKey(uid), "score", 1)
		if err != nil {
			return Result{}, err
		}
		return res, nil
	}

	res.Score, err = s.Score(ctx, uid)
	return res, err
}

// Score returns the user's total, zero when nothing was saved yet.
func (s *Service) Score(ctx context.Context, uid types.ID) (int64, error) {
	if uid == "" {
		return 0, ErrBadRequest
	}
	var sc Score
	err := s.docs.Read(ctx, scoreKey(uid), &sc)
	if errors.Is(err, infra.ErrDocumentNotFound) {
		return 0, nil
	}
	return sc.Score, err
}

// CanGenerate reports whether a question generator is configured.
func (s *Service) CanGenerate() bool {
	return s.generator != nil
}

// Generate asks the generator for n more questions about category and adds
// them to the bank.
func (s *Service) Generate(ctx context.Context, category string, n int) ([]Question, error) {
	if s.generator == nil {
		return nil, ErrGeneratorDisabled
	}
	if strings.TrimSpace(category) == "" {
		return nil, ErrBadRequest
	}

	start := time.Now()
	gen, err := s.generator.GenerateQuestions(ctx, category, n)
	s.metrics.ObserveProvider("gemini", start, err)
	if err != nil {
		s.log.Warn().Err(err).Str("category", category).Msg("question generation failed")
		return nil, fmt.Errorf("%w: %v", ErrGeneratorFailed, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Question, 0, len(gen))
	for _, g := range gen {
		if g.Validate() != nil {
			continue
		}
		s.nextGen++
		q := Question{
			ID:       fmt.Sprintf("g%d", s.nextGen),
			Category: category,
			Question: g.Question,
			Options:  append([]string(nil), g.Options...),
			Answer:   g.Answer,
		}
		s.addLocked(q)
		out = append(out, q)
	}
	s.log.Info().Str("category", category).Int("count", len(out)).Msg("questions generated")
	return out, nil
}

func (s *Service) question(id string) (Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q, ok := s.questions[id]
	if !ok {
		return Question{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return q, nil
}

func (s *Service) add(q Question) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addLocked(q)
}

func (s *Service) addLocked(q Question) {
	if _, ok := s.questions[q.ID]; !ok {
		s.order = append(s.order, q.ID)
	}
	s.questions[q.ID] = q
}

func scoreKey(uid types.ID) string {
	return "quiz_scores/" + string(uid)
}
