// README: Alignment value types, defaults and errors.
package alignment

import (
	"errors"
	"time"
)

// DefaultThresholdDegrees is the exclusive bound under which a heading counts
// as facing the target.
const DefaultThresholdDegrees = 10.0

var (
	ErrInvalidHeading   = errors.New("invalid heading")
	ErrInvalidThreshold = errors.New("invalid alignment threshold")
)

// HeadingSample is the device's compass heading in [0, 360).
type HeadingSample struct {
	Degrees float64 `json:"degrees"`
}

// State is derived from one heading sample and one bearing; it carries no
// history.
type State struct {
	AngularDifference float64 `json:"angular_difference"`
	IsAligned         bool    `json:"is_aligned"`
	Proximity         float64 `json:"proximity"`
}

// Config holds the tunable parts of the compass UX.
type Config struct {
	ThresholdDegrees float64
	// VibrationPattern alternates wait/vibrate durations, starting with a wait.
	VibrationPattern []time.Duration
}

func DefaultConfig() Config {
	return Config{
		ThresholdDegrees: DefaultThresholdDegrees,
		VibrationPattern: []time.Duration{0, 200 * time.Millisecond, 100 * time.Millisecond, 200 * time.Millisecond},
	}
}
