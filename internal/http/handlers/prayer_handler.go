// README: Prayer-time handlers (today's timetable and next prayer).
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ibadah/internal/modules/prayer"
)

type PrayerHandler struct {
	prayer *prayer.Service
	now    func() time.Time
}

func NewPrayerHandler(svc *prayer.Service) *PrayerHandler {
	return &PrayerHandler{prayer: svc, now: time.Now}
}

type nextPrayerResp struct {
	Name             string    `json:"name"`
	Time             string    `json:"time"`
	At               time.Time `json:"at"`
	RemainingSeconds int64     `json:"remaining_seconds"`
}

// Today handles GET /api/prayers/today?lat=&lng=.
func (h *PrayerHandler) Today(c *gin.Context) {
	p, ok := queryPoint(c)
	if !ok {
		writeError(c, http.StatusBadRequest, "lat and lng must be numbers")
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	t, err := h.prayer.Today(ctx, p, h.now())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, t)
}

// Next handles GET /api/prayers/next?lat=&lng=.
func (h *PrayerHandler) Next(c *gin.Context) {
	p, ok := queryPoint(c)
	if !ok {
		writeError(c, http.StatusBadRequest, "lat and lng must be numbers")
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	next, err := h.prayer.Next(ctx, p, h.now())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, nextPrayerResp{
		Name:             next.Name,
		Time:             next.Time,
		At:               next.At,
		RemainingSeconds: int64(next.Remaining / time.Second),
	})
}
