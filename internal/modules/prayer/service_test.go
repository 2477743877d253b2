package prayer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"ibadah/internal/modules/qibla"
	"ibadah/internal/types"
)

type fakeProvider struct {
	timings Timings
	err     error
	calls   []time.Time
}

func (f *fakeProvider) Timings(_ context.Context, _ types.Point, at time.Time) (Timings, error) {
	f.calls = append(f.calls, at)
	return f.timings, f.err
}

func TestServiceNext_SameDay(t *testing.T) {
	p := &fakeProvider{timings: sampleTimings()}
	svc := NewService(nil, p, nil, zerolog.Nop())

	now := time.Date(2026, 10, 18, 13, 0, 0, 0, time.UTC)
	got, err := svc.Next(context.Background(), types.Point{Lat: 21.4, Lng: 39.8}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Asr" {
		t.Errorf("expected Asr, got %s", got.Name)
	}
	if len(p.calls) != 1 {
		t.Errorf("expected one provider call, got %d", len(p.calls))
	}
}

func TestServiceNext_RollsOverToTomorrow(t *testing.T) {
	p := &fakeProvider{timings: sampleTimings()}
	svc := NewService(nil, p, nil, zerolog.Nop())

	now := time.Date(2026, 10, 18, 22, 0, 0, 0, time.UTC)
	got, err := svc.Next(context.Background(), types.Point{Lat: 21.4, Lng: 39.8}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Fajr" {
		t.Errorf("expected tomorrow's Fajr, got %s", got.Name)
	}
	want := time.Date(2026, 10, 19, 5, 12, 0, 0, time.UTC)
	if !got.At.Equal(want) {
		t.Errorf("at = %v, want %v", got.At, want)
	}
	if got.Remaining != 7*time.Hour+12*time.Minute {
		t.Errorf("remaining = %v", got.Remaining)
	}
	if len(p.calls) != 2 {
		t.Errorf("expected two provider calls, got %d", len(p.calls))
	}
}

func TestServiceNext_ProviderError(t *testing.T) {
	p := &fakeProvider{err: ErrProviderUnavailable}
	svc := NewService(nil, p, nil, zerolog.Nop())

	_, err := svc.Next(context.Background(), types.Point{Lat: 1, Lng: 1}, time.Now())
	if !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestServiceToday_InvalidCoordinate(t *testing.T) {
	p := &fakeProvider{timings: sampleTimings()}
	svc := NewService(nil, p, nil, zerolog.Nop())

	_, err := svc.Today(context.Background(), types.Point{Lat: 95, Lng: 0}, time.Now())
	if !errors.Is(err, qibla.ErrInvalidCoordinate) {
		t.Fatalf("expected ErrInvalidCoordinate, got %v", err)
	}
	if len(p.calls) != 0 {
		t.Errorf("provider should not be called for invalid input")
	}
}

// zonedProvider answers with the timetable of at's local date in zone, the way
// Aladhan resolves a timestamp.
type zonedProvider struct {
	zone  string
	calls int
}

func (z *zonedProvider) Timings(_ context.Context, _ types.Point, at time.Time) (Timings, error) {
	z.calls++
	loc, err := time.LoadLocation(z.zone)
	if err != nil {
		return Timings{}, err
	}
	t := sampleTimings()
	t.TimeZone = z.zone
	t.Date = at.In(loc).Format("02-01-2006")
	return t, nil
}

func newMiniredisStore(t *testing.T) *Store {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewStore(client)
}

func TestServiceToday_CacheFollowsLocalDay(t *testing.T) {
	p := &zonedProvider{zone: "Australia/Sydney"}
	svc := NewService(newMiniredisStore(t), p, nil, zerolog.Nop())
	sydney := types.Point{Lat: -33.87, Lng: 151.21}
	ctx := context.Background()

	tests := []struct {
		name      string
		now       time.Time
		wantDate  string
		wantCalls int
	}{
		{name: "midday oct 17 local", now: time.Date(2026, 10, 17, 1, 0, 0, 0, time.UTC), wantDate: "17-10-2026", wantCalls: 1},
		{name: "same local day is cached", now: time.Date(2026, 10, 17, 10, 0, 0, 0, time.UTC), wantDate: "17-10-2026", wantCalls: 1},
		{name: "local midnight passed before utc", now: time.Date(2026, 10, 17, 14, 0, 0, 0, time.UTC), wantDate: "18-10-2026", wantCalls: 2},
		{name: "still oct 18 local", now: time.Date(2026, 10, 17, 20, 0, 0, 0, time.UTC), wantDate: "18-10-2026", wantCalls: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Today(ctx, sydney, tt.now)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Date != tt.wantDate {
				t.Errorf("date = %s, want %s", got.Date, tt.wantDate)
			}
			if p.calls != tt.wantCalls {
				t.Errorf("provider calls = %d, want %d", p.calls, tt.wantCalls)
			}
		})
	}
}

func TestServiceNext_LocalDateAcrossUTCMidnight(t *testing.T) {
	p := &zonedProvider{zone: "Australia/Sydney"}
	svc := NewService(newMiniredisStore(t), p, nil, zerolog.Nop())
	sydney := types.Point{Lat: -33.87, Lng: 151.21}
	ctx := context.Background()

	// Warm the cache on Oct 17 local.
	if _, err := svc.Today(ctx, sydney, time.Date(2026, 10, 17, 1, 0, 0, 0, time.UTC)); err != nil {
		t.Fatal(err)
	}

	// 01:00 on Oct 18 in Sydney (UTC+11): next is Oct 18 Fajr at 05:12 local.
	now := time.Date(2026, 10, 17, 14, 0, 0, 0, time.UTC)
	got, err := svc.Next(ctx, sydney, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	loc, _ := time.LoadLocation("Australia/Sydney")
	want := time.Date(2026, 10, 18, 5, 12, 0, 0, loc)
	if got.Name != "Fajr" || !got.At.Equal(want) {
		t.Errorf("next = %s at %v, want Fajr at %v", got.Name, got.At, want)
	}
	if got.Remaining != 4*time.Hour+12*time.Minute {
		t.Errorf("remaining = %v", got.Remaining)
	}
}
