package prayer

import (
	"testing"
	"time"
)

func sampleTimings() Timings {
	return Timings{
		Date:     "18-10-2026",
		TimeZone: "UTC",
		Prayers: []Prayer{
			{Name: "Fajr", Time: "05:12"},
			{Name: "Dhuhr", Time: "12:01"},
			{Name: "Asr", Time: "15:20 (UTC)"},
			{Name: "Maghrib", Time: "17:55"},
			{Name: "Isha", Time: "19:10"},
		},
	}
}

func TestNextPrayer(t *testing.T) {
	day := func(h, m int) time.Time { return time.Date(2026, 10, 18, h, m, 0, 0, time.UTC) }

	tests := []struct {
		name      string
		now       time.Time
		wantName  string
		wantFound bool
		wantLeft  time.Duration
	}{
		{name: "before fajr", now: day(3, 0), wantName: "Fajr", wantFound: true, wantLeft: 2*time.Hour + 12*time.Minute},
		{name: "exactly at dhuhr picks asr", now: day(12, 1), wantName: "Asr", wantFound: true, wantLeft: 3*time.Hour + 19*time.Minute},
		{name: "zone suffix parsed", now: day(15, 0), wantName: "Asr", wantFound: true, wantLeft: 20 * time.Minute},
		{name: "after isha", now: day(22, 0), wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NextPrayer(sampleTimings(), tt.now)
			if ok != tt.wantFound {
				t.Fatalf("found = %v, want %v", ok, tt.wantFound)
			}
			if !ok {
				return
			}
			if got.Name != tt.wantName {
				t.Errorf("name = %s, want %s", got.Name, tt.wantName)
			}
			if got.Remaining != tt.wantLeft {
				t.Errorf("remaining = %v, want %v", got.Remaining, tt.wantLeft)
			}
		})
	}
}

func TestNextPrayer_UnorderedAndInvalidEntries(t *testing.T) {
	timings := Timings{Prayers: []Prayer{
		{Name: "Isha", Time: "19:10"},
		{Name: "Broken", Time: "not-a-time"},
		{Name: "Late", Time: "25:00"},
		{Name: "Maghrib", Time: "17:55"},
	}}
	now := time.Date(2026, 10, 18, 16, 0, 0, 0, time.UTC)
	got, ok := NextPrayer(timings, now)
	if !ok || got.Name != "Maghrib" {
		t.Fatalf("expected Maghrib, got %+v (found=%v)", got, ok)
	}
}

func TestNextPrayer_UsesTimetableZone(t *testing.T) {
	timings := sampleTimings()
	timings.TimeZone = "Asia/Riyadh" // UTC+3, no DST
	// 10:00 UTC is 13:00 in Riyadh: Dhuhr has passed, Asr is next.
	now := time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC)
	got, ok := NextPrayer(timings, now)
	if !ok || got.Name != "Asr" {
		t.Fatalf("expected Asr, got %+v (found=%v)", got, ok)
	}
	if got.Remaining != 2*time.Hour+20*time.Minute {
		t.Errorf("remaining = %v", got.Remaining)
	}
}

func TestFirstPrayer(t *testing.T) {
	got, ok := FirstPrayer(sampleTimings(), time.Date(2026, 10, 19, 23, 0, 0, 0, time.UTC))
	if !ok {
		t.Fatal("expected a prayer")
	}
	want := time.Date(2026, 10, 19, 5, 12, 0, 0, time.UTC)
	if got.Name != "Fajr" || !got.At.Equal(want) {
		t.Errorf("got %s at %v, want Fajr at %v", got.Name, got.At, want)
	}
}
