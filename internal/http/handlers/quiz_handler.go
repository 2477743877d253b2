// README: Quiz handlers (questions, answers, score, generation).
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"ibadah/internal/modules/aiusage"
	"ibadah/internal/modules/quiz"
)

type QuizHandler struct {
	quiz  *quiz.Service
	quota *aiusage.Service
}

// NewQuizHandler builds the quiz handlers. A nil quota leaves generation
// unmetered.
func NewQuizHandler(svc *quiz.Service, quota *aiusage.Service) *QuizHandler {
	return &QuizHandler{quiz: svc, quota: quota}
}

// Questions handles GET /api/quiz/questions[?category=].
func (h *QuizHandler) Questions(c *gin.Context) {
	writeJSON(c, http.StatusOK, h.quiz.Questions(strings.TrimSpace(c.Query("category"))))
}

type answerReq struct {
	QuestionID string `json:"question_id"`
	Answer     string `json:"answer"`
}

// Answer handles POST /api/me/quiz/answers.
func (h *QuizHandler) Answer(c *gin.Context) {
	var req answerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(req.QuestionID) == "" {
		writeError(c, http.StatusBadRequest, "missing question_id")
		return
	}
	res, err := h.quiz.SubmitAnswer(c.Request.Context(), callerID(c), req.QuestionID, req.Answer)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, res)
}

// Score handles GET /api/me/quiz/score.
func (h *QuizHandler) Score(c *gin.Context) {
	score, err := h.quiz.Score(c.Request.Context(), callerID(c))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, quiz.Score{Score: score})
}

type generateReq struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type quotaResp struct {
	Remaining int `json:"remaining"`
	Monthly   int `json:"monthly"`
}

// Quota handles GET /api/me/quiz/quota.
func (h *QuizHandler) Quota(c *gin.Context) {
	if h.quota == nil {
		writeError(c, http.StatusNotFound, "quota not enabled")
		return
	}
	n, err := h.quota.Remaining(c.Request.Context(), callerID(c))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, quotaResp{Remaining: n, Monthly: aiusage.DefaultTokens})
}

// Generate handles POST /api/me/quiz/generate. Each call spends one token of
// the caller's monthly allowance.
func (h *QuizHandler) Generate(c *gin.Context) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(req.Category) == "" {
		writeError(c, http.StatusBadRequest, "missing category")
		return
	}
	if !h.quiz.CanGenerate() {
		writeDomainError(c, quiz.ErrGeneratorDisabled)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 20*time.Second)
	defer cancel()

	if h.quota != nil {
		if err := h.quota.UseToken(ctx, callerID(c)); err != nil {
			writeDomainError(c, err)
			return
		}
	}

	qs, err := h.quiz.Generate(ctx, req.Category, req.Count)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, qs)
}
