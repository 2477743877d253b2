// README: Rewards progress handlers for the authenticated user.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ibadah/internal/modules/progress"
)

type ProgressHandler struct {
	progress *progress.Service
}

func NewProgressHandler(svc *progress.Service) *ProgressHandler {
	return &ProgressHandler{progress: svc}
}

// Get handles GET /api/me/progress.
func (h *ProgressHandler) Get(c *gin.Context) {
	sum, err := h.progress.Get(c.Request.Context(), callerID(c))
	h.write(c, sum, err)
}

// LogPrayer handles POST /api/me/progress/prayer.
func (h *ProgressHandler) LogPrayer(c *gin.Context) {
	sum, err := h.progress.LogPrayer(c.Request.Context(), callerID(c))
	h.write(c, sum, err)
}

// LogZikr handles POST /api/me/progress/zikr.
func (h *ProgressHandler) LogZikr(c *gin.Context) {
	sum, err := h.progress.LogZikr(c.Request.Context(), callerID(c))
	h.write(c, sum, err)
}

func (h *ProgressHandler) write(c *gin.Context, sum progress.Summary, err error) {
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, sum)
}
