package prayer

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ibadah/internal/types"
)

const aladhanOK = `{
  "code": 200,
  "status": "OK",
  "data": {
    "timings": {"Fajr": "05:12", "Sunrise": "06:30", "Dhuhr": "12:01", "Asr": "15:20", "Sunset": "17:50", "Maghrib": "17:55", "Isha": "19:10", "Imsak": "05:02", "Midnight": "00:01"},
    "date": {"gregorian": {"date": "18-10-2026"}},
    "meta": {"timezone": "Asia/Riyadh"}
  }
}`

func TestAladhanClient_Timings(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(aladhanOK))
	}))
	defer srv.Close()

	c := NewAladhanClient(srv.URL, MethodISNA, srv.Client())
	at := time.Unix(1792310400, 0)
	got, err := c.Timings(context.Background(), types.Point{Lat: 21.4225, Lng: 39.8262}, at)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/v1/timings/1792310400" {
		t.Errorf("path = %s", gotPath)
	}
	for _, want := range []string{"latitude=21.422500", "longitude=39.826200", "method=2"} {
		if !strings.Contains(gotQuery, want) {
			t.Errorf("query %q missing %q", gotQuery, want)
		}
	}
	if got.TimeZone != "Asia/Riyadh" || got.Date != "18-10-2026" {
		t.Errorf("unexpected metadata: %+v", got)
	}
	if len(got.Prayers) != len(DailyPrayers) {
		t.Fatalf("expected %d daily prayers, got %d: %+v", len(DailyPrayers), len(got.Prayers), got.Prayers)
	}
	for i, name := range DailyPrayers {
		if got.Prayers[i].Name != name {
			t.Errorf("prayer %d = %s, want %s", i, got.Prayers[i].Name, name)
		}
	}
}

func TestAladhanClient_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "http error", status: http.StatusBadGateway, body: "", wantErr: ErrProviderUnavailable},
		{name: "api code not 200", status: http.StatusOK, body: `{"code": 400, "status": "Bad Request"}`, wantErr: ErrProviderUnavailable},
		{name: "malformed json", status: http.StatusOK, body: `{"code":`, wantErr: ErrProviderUnavailable},
		{name: "no daily prayers", status: http.StatusOK, body: `{"code": 200, "data": {"timings": {"Sunrise": "06:30"}}}`, wantErr: ErrNoTimings},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewAladhanClient(srv.URL, MethodISNA, srv.Client())
			_, err := c.Timings(context.Background(), types.Point{Lat: 1, Lng: 1}, time.Now())
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
