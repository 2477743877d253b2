// README: Qibla service resolves bearing, distance and city name for a user position.
package qibla

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"ibadah/internal/observability"
)

// ReverseGeocoder resolves a human-readable city for a coordinate.
type ReverseGeocoder interface {
	City(ctx context.Context, c GeoCoordinate) (string, error)
}

type Service struct {
	store    *Store
	geocoder ReverseGeocoder
	metrics  *observability.Collector
	log      zerolog.Logger
}

// NewService wires the optional cache and geocoder; either may be nil.
func NewService(store *Store, geocoder ReverseGeocoder, metrics *observability.Collector, log zerolog.Logger) *Service {
	return &Service{
		store:    store,
		geocoder: geocoder,
		metrics:  metrics,
		log:      log.With().Str("module", "qibla").Logger(),
	}
}

// Locate computes the Qibla bearing and distance for source. Bearing and
// distance are computed on every call; only the city name is cached. Cache
// and geocoder failures are logged and never fail the lookup.
func (s *Service) Locate(ctx context.Context, source GeoCoordinate) (Direction, error) {
	bearing, err := ComputeBearing(source, Kaaba)
	if err != nil {
		return Direction{}, err
	}
	distance, err := ComputeDistance(source, Kaaba)
	if err != nil {
		return Direction{}, err
	}
	s.metrics.IncQiblaLookup()

	return Direction{
		Source:   source,
		Bearing:  bearing,
		Distance: distance,
		City:     s.city(ctx, source),
	}, nil
}

func (s *Service) city(ctx context.Context, c GeoCoordinate) string {
	if s.geocoder == nil {
		return ""
	}

	city, ok, err := s.store.GetCity(ctx, c)
	if err != nil {
		s.log.Warn().Err(err).Msg("city cache read failed")
	}
	s.metrics.ObserveCache("city", ok)
	if ok {
		return city
	}

	start := time.Now()
	city, err = s.geocoder.City(ctx, c)
	s.metrics.ObserveProvider("geocoder", start, err)
	if err != nil {
		s.log.Warn().Err(err).Float64("lat", c.Lat).Float64("lng", c.Lng).Msg("reverse geocoding failed")
		return ""
	}

	if err := s.store.SetCity(ctx, c, city); err != nil {
		s.log.Warn().Err(err).Msg("city cache write failed")
	}
	return city
}
