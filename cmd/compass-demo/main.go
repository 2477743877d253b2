// README: Compass demo; streams headings from stdin through the alignment watcher and reports when the device faces the Qibla.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"ibadah/internal/infra"
	"ibadah/internal/modules/alignment"
	"ibadah/internal/modules/qibla"
	"ibadah/internal/types"
)

func main() {
	lat := flag.Float64("lat", 0, "observer latitude")
	lng := flag.Float64("lng", 0, "observer longitude")
	threshold := flag.Float64("threshold", alignment.DefaultThresholdDegrees, "alignment threshold in degrees")
	flag.Parse()

	log := infra.NewLogger("info", "console")

	bearing, err := qibla.ComputeBearing(types.Point{Lat: *lat, Lng: *lng}, qibla.Kaaba)
	if err != nil {
		log.Fatal().Err(err).Msg("bad position")
	}
	cfg := alignment.DefaultConfig()
	cfg.ThresholdDegrees = *threshold
	tracker, err := alignment.NewTracker(cfg, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("bad threshold")
	}

	log.Info().Float64("bearing", bearing.BearingDegrees).Msg("qibla bearing; enter headings in degrees or magnetometer \"x y\" pairs")
	if err := run(os.Stdin, os.Stdout, alignment.NewWatcher(tracker), tracker, bearing, log); err != nil {
		log.Fatal().Err(err).Msg("read input")
	}
}

// run feeds every input line to w and writes one result line per sample.
func run(in io.Reader, out io.Writer, w *alignment.Watcher, tracker *alignment.Tracker, bearing qibla.BearingResult, log zerolog.Logger) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		sample, err := parseSample(line)
		if err != nil {
			log.Warn().Err(err).Str("line", line).Msg("skipping sample")
			continue
		}
		obs, err := w.Observe(sample, bearing)
		if err != nil {
			log.Warn().Err(err).Msg("skipping sample")
			continue
		}
		fmt.Fprintf(out, "heading=%.1f diff=%.1f proximity=%.2f aligned=%t\n",
			sample.Degrees, obs.AngularDifference, obs.Proximity, obs.IsAligned)
		if obs.BecameAligned {
			fmt.Fprintf(out, "vibrate %v\n", tracker.VibrationPattern())
		}
	}
	return sc.Err()
}

// parseSample accepts either one number (a heading in degrees) or two numbers
// (a magnetometer x y reading).
func parseSample(line string) (alignment.HeadingSample, error) {
	fields := strings.Fields(line)
	nums := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return alignment.HeadingSample{}, fmt.Errorf("not a number: %q", f)
		}
		nums[i] = v
	}
	switch len(nums) {
	case 1:
		return alignment.HeadingSample{Degrees: qibla.NormalizeDegrees(nums[0])}, nil
	case 2:
		return alignment.HeadingFromMagnetometer(nums[0], nums[1]), nil
	default:
		return alignment.HeadingSample{}, fmt.Errorf("expected 1 or 2 numbers, got %d", len(nums))
	}
}
