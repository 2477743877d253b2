package alignment

import (
	"math"

	"ibadah/internal/modules/qibla"
)

// HeadingFromMagnetometer converts a flat-held magnetometer reading into a
// compass heading, clockwise from magnetic north. No tilt compensation or
// declination correction is applied.
func HeadingFromMagnetometer(x, y float64) HeadingSample {
	angle := math.Atan2(y, x) * 180 / math.Pi
	if angle < 0 {
		angle += 360
	}
	return HeadingSample{Degrees: qibla.NormalizeDegrees(360 - angle)}
}
