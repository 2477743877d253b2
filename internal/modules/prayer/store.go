// README: Prayer timetable cache backed by Redis, one key per area per local day.
package prayer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"ibadah/internal/types"
)

const (
	timingsKeyPrefix = "prayer:timings:%s:%.2f:%.2f"
	timingsTTL       = 36 * time.Hour

	zoneKeyPrefix = "prayer:zone:%.2f:%.2f"
	zoneTTL       = 30 * 24 * time.Hour
)

type Store struct {
	redis *redis.Client
}

func NewStore(redis *redis.Client) *Store {
	return &Store{redis: redis}
}

// GetTimings returns the cached timetable for the area's local day
// (YYYY-MM-DD); a nil Store or client always misses.
func (s *Store) GetTimings(ctx context.Context, p types.Point, day string) (Timings, bool, error) {
	if s == nil || s.redis == nil {
		return Timings{}, false, nil
	}
	val, err := s.redis.Get(ctx, timingsKey(p, day)).Result()
	if err == redis.Nil {
		return Timings{}, false, nil
	}
	if err != nil {
		return Timings{}, false, err
	}
	var t Timings
	if err := json.Unmarshal([]byte(val), &t); err != nil {
		return Timings{}, false, fmt.Errorf("decoding cached timings: %w", err)
	}
	return t, true, nil
}

func (s *Store) SetTimings(ctx context.Context, p types.Point, day string, t Timings) error {
	if s == nil || s.redis == nil {
		return nil
	}
	data, err := json.Marshal(t)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, timingsKey(p, day), data, timingsTTL).Err()
}

// GetZone returns the IANA zone last reported for the area.
func (s *Store) GetZone(ctx context.Context, p types.Point) (string, bool, error) {
	if s == nil || s.redis == nil {
		return "", false, nil
	}
	val, err := s.redis.Get(ctx, zoneKey(p)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, val != "", nil
}

func (s *Store) SetZone(ctx context.Context, p types.Point, zone string) error {
	if s == nil || s.redis == nil || zone == "" {
		return nil
	}
	return s.redis.Set(ctx, zoneKey(p), zone, zoneTTL).Err()
}

func timingsKey(p types.Point, day string) string {
	return fmt.Sprintf(timingsKeyPrefix, day, p.Lat, p.Lng)
}

func zoneKey(p types.Point) string {
	return fmt.Sprintf(zoneKeyPrefix, p.Lat, p.Lng)
}
