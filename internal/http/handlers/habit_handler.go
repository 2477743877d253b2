// README: Habit tracker handlers for the authenticated user.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ibadah/internal/modules/habit"
)

type HabitHandler struct {
	habit *habit.Service
	now   func() time.Time
}

func NewHabitHandler(svc *habit.Service) *HabitHandler {
	return &HabitHandler{habit: svc, now: time.Now}
}

// day resolves the optional ?date=YYYY-MM-DD (the client's local date).
func (h *HabitHandler) day(c *gin.Context) (time.Time, bool) {
	d, err := habit.ParseDay(c.Query("date"), h.now())
	if err != nil {
		writeDomainError(c, err)
		return time.Time{}, false
	}
	return d, true
}

// List handles GET /api/me/habits[?date=].
func (h *HabitHandler) List(c *gin.Context) {
	day, ok := h.day(c)
	if !ok {
		return
	}
	list, err := h.habit.List(c.Request.Context(), callerID(c), day)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, list)
}

// Toggle handles POST /api/me/habits/:habit/toggle[?date=] for the client's
// current day.
func (h *HabitHandler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()
	uid, key := callerID(c), c.Param("habit")
	now, ok := h.day(c)
	if !ok {
		return
	}

	if _, err := h.habit.Toggle(ctx, uid, key, now); err != nil {
		writeDomainError(c, err)
		return
	}
	st, err := h.habit.Status(ctx, uid, key, now)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, st)
}

// Status handles GET /api/me/habits/:habit/streak[?date=].
func (h *HabitHandler) Status(c *gin.Context) {
	day, ok := h.day(c)
	if !ok {
		return
	}
	st, err := h.habit.Status(c.Request.Context(), callerID(c), c.Param("habit"), day)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, st)
}
