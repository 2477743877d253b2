// README: Tasbeeh counter handlers for the authenticated user.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ibadah/internal/modules/tasbeeh"
)

type TasbeehHandler struct {
	tasbeeh *tasbeeh.Service
}

func NewTasbeehHandler(svc *tasbeeh.Service) *TasbeehHandler {
	return &TasbeehHandler{tasbeeh: svc}
}

// Get handles GET /api/me/tasbeeh.
func (h *TasbeehHandler) Get(c *gin.Context) {
	cnt, err := h.tasbeeh.Get(c.Request.Context(), callerID(c))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, cnt)
}

type incrementReq struct {
	By *int64 `json:"by"`
}

// Increment handles POST /api/me/tasbeeh/increment. An empty body counts one.
func (h *TasbeehHandler) Increment(c *gin.Context) {
	var req incrementReq
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, http.StatusBadRequest, "invalid json")
			return
		}
	}
	by := int64(1)
	if req.By != nil {
		by = *req.By
	}
	cnt, err := h.tasbeeh.Increment(c.Request.Context(), callerID(c), by)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, cnt)
}

// Reset handles POST /api/me/tasbeeh/reset.
func (h *TasbeehHandler) Reset(c *gin.Context) {
	cnt, err := h.tasbeeh.Reset(c.Request.Context(), callerID(c))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, cnt)
}
