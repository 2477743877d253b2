// README: Missed-prayer (qadha) handlers for the authenticated user.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ibadah/internal/modules/qadha"
)

type QadhaHandler struct {
	qadha *qadha.Service
}

func NewQadhaHandler(svc *qadha.Service) *QadhaHandler {
	return &QadhaHandler{qadha: svc}
}

type ledgerResp struct {
	qadha.Ledger
	Total int64 `json:"total"`
}

func (h *QadhaHandler) write(c *gin.Context, l qadha.Ledger, err error) {
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, ledgerResp{Ledger: l, Total: l.Total()})
}

// Get handles GET /api/me/qadha.
func (h *QadhaHandler) Get(c *gin.Context) {
	l, err := h.qadha.Get(c.Request.Context(), callerID(c))
	h.write(c, l, err)
}

type adjustReq struct {
	Delta *int64 `json:"delta"`
}

// Adjust handles POST /api/me/qadha/prayers/:prayer with {"delta": n}.
func (h *QadhaHandler) Adjust(c *gin.Context) {
	var req adjustReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Delta == nil {
		writeError(c, http.StatusBadRequest, "delta is required")
		return
	}
	l, err := h.qadha.Adjust(c.Request.Context(), callerID(c), c.Param("prayer"), *req.Delta)
	h.write(c, l, err)
}

// Reset handles POST /api/me/qadha/reset.
func (h *QadhaHandler) Reset(c *gin.Context) {
	l, err := h.qadha.Reset(c.Request.Context(), callerID(c))
	h.write(c, l, err)
}
