// README: Prayer service resolves today's timetable and the next prayer for a position.
package prayer

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"ibadah/internal/modules/qibla"
	"ibadah/internal/observability"
	"ibadah/internal/types"
)

// Provider fetches a timetable for the local day containing at.
type Provider interface {
	Timings(ctx context.Context, p types.Point, at time.Time) (Timings, error)
}

type Service struct {
	store    *Store
	provider Provider
	metrics  *observability.Collector
	log      zerolog.Logger
}

func NewService(store *Store, provider Provider, metrics *observability.Collector, log zerolog.Logger) *Service {
	return &Service{
		store:    store,
		provider: provider,
		metrics:  metrics,
		log:      log.With().Str("module", "prayer").Logger(),
	}
}

// Today returns the timetable for the day containing now.
func (s *Service) Today(ctx context.Context, p types.Point, now time.Time) (Timings, error) {
	if err := qibla.ValidateCoordinate(p); err != nil {
		return Timings{}, err
	}
	return s.timings(ctx, p, now)
}

// Next returns the next prayer after now. After the last prayer of the day it
// rolls over to the first prayer of the following day.
func (s *Service) Next(ctx context.Context, p types.Point, now time.Time) (Upcoming, error) {
	today, err := s.Today(ctx, p, now)
	if err != nil {
		return Upcoming{}, err
	}
	if next, ok := NextPrayer(today, now); ok {
		return next, nil
	}

	tomorrowAt := now.Add(24 * time.Hour)
	tomorrow, err := s.timings(ctx, p, tomorrowAt)
	if err != nil {
		return Upcoming{}, err
	}
	next, ok := FirstPrayer(tomorrow, tomorrowAt)
	if !ok {
		return Upcoming{}, ErrNoTimings
	}
	next.Remaining = next.At.Sub(now)
	return next, nil
}

// timings serves the timetable of the local day containing at. The area's zone
// is remembered from the first provider answer so later lookups key the cache
// by the local date rather than the UTC one.
func (s *Service) timings(ctx context.Context, p types.Point, at time.Time) (Timings, error) {
	zone, known, err := s.store.GetZone(ctx, p)
	if err != nil {
		s.log.Warn().Err(err).Msg("zone cache read failed")
	}
	if known {
		cached, ok, err := s.store.GetTimings(ctx, p, localDay(at, zone))
		if err != nil {
			s.log.Warn().Err(err).Msg("timings cache read failed")
		}
		s.metrics.ObserveCache("prayer", ok)
		if ok {
			return cached, nil
		}
	} else {
		s.metrics.ObserveCache("prayer", false)
	}

	start := time.Now()
	t, err := s.provider.Timings(ctx, p, at)
	s.metrics.ObserveProvider("aladhan", start, err)
	if err != nil {
		return Timings{}, err
	}

	if err := s.store.SetZone(ctx, p, t.TimeZone); err != nil {
		s.log.Warn().Err(err).Msg("zone cache write failed")
	}
	if err := s.store.SetTimings(ctx, p, localDay(at, t.TimeZone), t); err != nil {
		s.log.Warn().Err(err).Msg("timings cache write failed")
	}
	return t, nil
}
