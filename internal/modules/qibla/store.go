// README: City-name cache backed by Redis so reverse geocoding runs once per area.
package qibla

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// Two decimals is roughly 1 km, well inside a city boundary.
	cityKeyPrefix = "qibla:city:%.2f:%.2f"
	cityTTL       = 7 * 24 * time.Hour
)

type Store struct {
	redis *redis.Client
}

func NewStore(redis *redis.Client) *Store {
	return &Store{redis: redis}
}

// GetCity returns the cached city for the area around c. A nil Store or
// client always misses.
func (s *Store) GetCity(ctx context.Context, c GeoCoordinate) (string, bool, error) {
	if s == nil || s.redis == nil {
		return "", false, nil
	}
	val, err := s.redis.Get(ctx, cityKey(c)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (s *Store) SetCity(ctx context.Context, c GeoCoordinate, city string) error {
	if s == nil || s.redis == nil {
		return nil
	}
	return s.redis.Set(ctx, cityKey(c), city, cityTTL).Err()
}

func cityKey(c GeoCoordinate) string {
	return fmt.Sprintf(cityKeyPrefix, c.Lat, c.Lng)
}
