// README: Aladhan HTTP client for daily prayer timetables.
package prayer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"ibadah/internal/types"
)

const (
	DefaultAladhanURL = "https://api.aladhan.com"
	// MethodISNA is the Islamic Society of North America calculation method.
	MethodISNA = 2
)

// AladhanClient fetches timetables from the Aladhan public API.
type AladhanClient struct {
	baseURL string
	method  int
	http    *http.Client
}

// NewAladhanClient returns a client for baseURL. A nil httpClient gets a
// 10 second timeout.
func NewAladhanClient(baseURL string, method int, httpClient *http.Client) *AladhanClient {
	if baseURL == "" {
		baseURL = DefaultAladhanURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &AladhanClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		method:  method,
		http:    httpClient,
	}
}

type aladhanResponse struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
	Data   struct {
		Timings map[string]string `json:"timings"`
		Date    struct {
			Gregorian struct {
				Date string `json:"date"`
			} `json:"gregorian"`
		} `json:"date"`
		Meta struct {
			Timezone string `json:"timezone"`
		} `json:"meta"`
	} `json:"data"`
}

// Timings fetches the timetable of the local day containing at for position p.
func (c *AladhanClient) Timings(ctx context.Context, p types.Point, at time.Time) (Timings, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(p.Lat, 'f', 6, 64))
	q.Set("longitude", strconv.FormatFloat(p.Lng, 'f', 6, 64))
	q.Set("method", strconv.Itoa(c.method))
	endpoint := fmt.Sprintf("%s/v1/timings/%d?%s", c.baseURL, at.Unix(), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Timings{}, fmt.Errorf("building aladhan request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Timings{}, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Timings{}, fmt.Errorf("%w: aladhan status %d", ErrProviderUnavailable, resp.StatusCode)
	}

	var body aladhanResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Timings{}, fmt.Errorf("%w: decoding aladhan response: %v", ErrProviderUnavailable, err)
	}
	if body.Code != http.StatusOK {
		return Timings{}, fmt.Errorf("%w: aladhan code %d (%s)", ErrProviderUnavailable, body.Code, body.Status)
	}

	t := Timings{
		Date:     body.Data.Date.Gregorian.Date,
		TimeZone: body.Data.Meta.Timezone,
	}
	for _, name := range DailyPrayers {
		if v, ok := body.Data.Timings[name]; ok {
			t.Prayers = append(t.Prayers, Prayer{Name: name, Time: v})
		}
	}
	if len(t.Prayers) == 0 {
		return Timings{}, fmt.Errorf("%w: response carried none of the daily prayers", ErrNoTimings)
	}
	return t, nil
}
