// README: Base handler utilities (JSON helpers, query parsing, error mapping).
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ibadah/internal/http/middleware"
	"ibadah/internal/modules/aiusage"
	"ibadah/internal/modules/alignment"
	"ibadah/internal/modules/habit"
	"ibadah/internal/modules/ibadah"
	"ibadah/internal/modules/prayer"
	"ibadah/internal/modules/progress"
	"ibadah/internal/modules/qadha"
	"ibadah/internal/modules/qibla"
	"ibadah/internal/modules/quiz"
	"ibadah/internal/modules/tasbeeh"
	"ibadah/internal/modules/zakat"
	"ibadah/internal/types"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// queryPoint reads the lat and lng query parameters.
func queryPoint(c *gin.Context) (types.Point, bool) {
	lat, err1 := strconv.ParseFloat(c.Query("lat"), 64)
	lng, err2 := strconv.ParseFloat(c.Query("lng"), 64)
	if err1 != nil || err2 != nil {
		return types.Point{}, false
	}
	return types.Point{Lat: lat, Lng: lng}, true
}

// callerID returns the authenticated uid. Routes using it sit behind middleware.Auth.
func callerID(c *gin.Context) types.ID {
	return types.ID(middleware.CallerUID(c))
}

// writeDomainError maps module sentinels to HTTP status codes.
func writeDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, qibla.ErrInvalidCoordinate),
		errors.Is(err, alignment.ErrInvalidHeading),
		errors.Is(err, habit.ErrBadRequest),
		errors.Is(err, ibadah.ErrBadRequest),
		errors.Is(err, quiz.ErrBadRequest),
		errors.Is(err, tasbeeh.ErrBadRequest),
		errors.Is(err, qadha.ErrBadRequest),
		errors.Is(err, progress.ErrBadRequest),
		errors.Is(err, zakat.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, habit.ErrUnknownHabit),
		errors.Is(err, ibadah.ErrNotFound),
		errors.Is(err, quiz.ErrNotFound),
		errors.Is(err, qadha.ErrUnknownPrayer):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, prayer.ErrProviderUnavailable),
		errors.Is(err, prayer.ErrNoTimings),
		errors.Is(err, quiz.ErrGeneratorFailed):
		writeError(c, http.StatusBadGateway, err.Error())
	case errors.Is(err, aiusage.ErrInsufficientTokens):
		writeError(c, http.StatusTooManyRequests, err.Error())
	case errors.Is(err, quiz.ErrGeneratorDisabled):
		writeError(c, http.StatusServiceUnavailable, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
