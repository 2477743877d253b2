// README: Qibla direction, alignment and compass heading handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ibadah/internal/modules/alignment"
	"ibadah/internal/modules/qibla"
	"ibadah/internal/types"
)

type QiblaHandler struct {
	qibla   *qibla.Service
	tracker *alignment.Tracker
}

func NewQiblaHandler(svc *qibla.Service, tracker *alignment.Tracker) *QiblaHandler {
	return &QiblaHandler{qibla: svc, tracker: tracker}
}

// Direction handles GET /api/qibla?lat=&lng=.
func (h *QiblaHandler) Direction(c *gin.Context) {
	p, ok := queryPoint(c)
	if !ok {
		writeError(c, http.StatusBadRequest, "lat and lng must be numbers")
		return
	}
	dir, err := h.qibla.Locate(c.Request.Context(), p)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, dir)
}

type alignmentReq struct {
	Heading *float64 `json:"heading"`
	Bearing *float64 `json:"bearing"`
	Lat     *float64 `json:"lat"`
	Lng     *float64 `json:"lng"`

	// WasAligned is the is_aligned flag of the client's previous sample.
	WasAligned bool `json:"was_aligned"`
}

type alignmentResp struct {
	alignment.State
	BecameAligned    bool    `json:"became_aligned"`
	Bearing          float64 `json:"bearing_degrees"`
	ThresholdDegrees float64 `json:"threshold_degrees"`
	VibrationMillis  []int64 `json:"vibration_pattern_ms,omitempty"`
}

// Alignment handles POST /api/qibla/alignment. The bearing is taken from the
// body or computed from lat/lng when absent. The vibration pattern is only
// returned on the sample that flips was_aligned from false to true.
func (h *QiblaHandler) Alignment(c *gin.Context) {
	var req alignmentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Heading == nil {
		writeError(c, http.StatusBadRequest, "missing heading")
		return
	}

	var bearing qibla.BearingResult
	switch {
	case req.Bearing != nil:
		bearing = qibla.BearingResult{BearingDegrees: *req.Bearing}
	case req.Lat != nil && req.Lng != nil:
		b, err := qibla.ComputeBearing(types.Point{Lat: *req.Lat, Lng: *req.Lng}, qibla.Kaaba)
		if err != nil {
			writeDomainError(c, err)
			return
		}
		bearing = b
	default:
		writeError(c, http.StatusBadRequest, "provide bearing or lat and lng")
		return
	}

	state, err := h.tracker.Evaluate(alignment.HeadingSample{Degrees: *req.Heading}, bearing)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	resp := alignmentResp{
		State:            state,
		BecameAligned:    alignment.BecameAligned(req.WasAligned, state),
		Bearing:          bearing.BearingDegrees,
		ThresholdDegrees: h.tracker.Threshold(),
	}
	if resp.BecameAligned {
		for _, d := range h.tracker.VibrationPattern() {
			resp.VibrationMillis = append(resp.VibrationMillis, d.Milliseconds())
		}
	}
	writeJSON(c, http.StatusOK, resp)
}

type headingReq struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

// Heading handles POST /api/qibla/heading, converting a raw magnetometer
// reading into a compass heading.
func (h *QiblaHandler) Heading(c *gin.Context) {
	var req headingReq
	if err := c.ShouldBindJSON(&req); err != nil || req.X == nil || req.Y == nil {
		writeError(c, http.StatusBadRequest, "x and y are required")
		return
	}
	writeJSON(c, http.StatusOK, alignment.HeadingFromMagnetometer(*req.X, *req.Y))
}
