// README: Daily ibadah log handlers for the authenticated user.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ibadah/internal/modules/ibadah"
)

type IbadahHandler struct {
	ibadah *ibadah.Service
}

func NewIbadahHandler(svc *ibadah.Service) *IbadahHandler {
	return &IbadahHandler{ibadah: svc}
}

// Add handles POST /api/me/ibadah with a body of counters to add.
func (h *IbadahHandler) Add(c *gin.Context) {
	var d ibadah.Delta
	if err := c.ShouldBindJSON(&d); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	l, err := h.ibadah.AddToToday(c.Request.Context(), callerID(c), d)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, l)
}

// Today handles GET /api/me/ibadah/today.
func (h *IbadahHandler) Today(c *gin.Context) {
	l, err := h.ibadah.Today(c.Request.Context(), callerID(c))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, l)
}

// History handles GET /api/me/ibadah/history[?days=7].
func (h *IbadahHandler) History(c *gin.Context) {
	days := 7
	if v := c.Query("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(c, http.StatusBadRequest, "days must be an integer")
			return
		}
		days = n
	}
	hist, err := h.ibadah.History(c.Request.Context(), callerID(c), days)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, hist)
}

// Day handles GET /api/me/ibadah/days/:day where day is YYYY-MM-DD.
func (h *IbadahHandler) Day(c *gin.Context) {
	l, err := h.ibadah.Get(c.Request.Context(), callerID(c), c.Param("day"))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, l)
}
