// README: Alignment tracker decides whether a heading faces a bearing.
package alignment

import (
	"fmt"
	"math"
	"time"

	"ibadah/internal/modules/qibla"
	"ibadah/internal/observability"
)

// Tracker is immutable after construction and safe for concurrent use.
type Tracker struct {
	cfg     Config
	metrics *observability.Collector
}

func NewTracker(cfg Config, metrics *observability.Collector) (*Tracker, error) {
	if math.IsNaN(cfg.ThresholdDegrees) || cfg.ThresholdDegrees <= 0 || cfg.ThresholdDegrees > 180 {
		return nil, fmt.Errorf("%w: %v not in (0, 180]", ErrInvalidThreshold, cfg.ThresholdDegrees)
	}
	pattern := make([]time.Duration, len(cfg.VibrationPattern))
	copy(pattern, cfg.VibrationPattern)
	cfg.VibrationPattern = pattern
	return &Tracker{cfg: cfg, metrics: metrics}, nil
}

// Evaluate compares heading against bearing. The angular difference is the
// shorter way round the circle, so 350° vs 10° is 20°.
func (t *Tracker) Evaluate(heading HeadingSample, bearing qibla.BearingResult) (State, error) {
	if err := validateDegrees("heading", heading.Degrees); err != nil {
		return State{}, err
	}
	if err := validateDegrees("bearing", bearing.BearingDegrees); err != nil {
		return State{}, err
	}

	diff := AngularDifference(heading.Degrees, bearing.BearingDegrees)
	st := State{
		AngularDifference: diff,
		IsAligned:         diff < t.cfg.ThresholdDegrees,
		Proximity:         math.Max(0, 1-diff/180),
	}
	t.metrics.ObserveAlignment(st.IsAligned)
	return st, nil
}

// Threshold returns the configured alignment threshold in degrees.
func (t *Tracker) Threshold() float64 {
	return t.cfg.ThresholdDegrees
}

// VibrationPattern returns a copy of the haptic pattern the caller should play
// when the device becomes aligned.
func (t *Tracker) VibrationPattern() []time.Duration {
	out := make([]time.Duration, len(t.cfg.VibrationPattern))
	copy(out, t.cfg.VibrationPattern)
	return out
}

// AngularDifference returns the unsigned difference of two angles in [0, 360)
// folded into [0, 180].
func AngularDifference(a, b float64) float64 {
	raw := math.Abs(a - b)
	if raw > 180 {
		return 360 - raw
	}
	return raw
}

func validateDegrees(name string, v float64) error {
	if math.IsNaN(v) || v < 0 || v >= 360 {
		return fmt.Errorf("%w: %s %v outside [0, 360)", ErrInvalidHeading, name, v)
	}
	return nil
}
