package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"ibadah/internal/types"
)

// GeocodeService resolves coordinates to place names via the Google Geocoding API.
type GeocodeService struct {
	client *maps.Client
}

// NewGeocodeService creates a new GeocodeService with the given API Key.
func NewGeocodeService(apiKey string) (*GeocodeService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GeocodeService{client: client}, nil
}

// City returns the locality name for p, falling back to the first
// administrative area when the point has no locality (open sea, rural areas).
func (s *GeocodeService) City(ctx context.Context, p types.Point) (string, error) {
	r := &maps.GeocodingRequest{
		LatLng:   &maps.LatLng{Lat: p.Lat, Lng: p.Lng},
		Language: "en",
	}

	results, err := s.client.ReverseGeocode(ctx, r)
	if err != nil {
		return "", fmt.Errorf("geocoding api error: %w", err)
	}
	return cityFromResults(results)
}

func cityFromResults(results []maps.GeocodingResult) (string, error) {
	var fallback string
	for _, res := range results {
		for _, comp := range res.AddressComponents {
			if hasType(comp.Types, "locality") {
				return comp.LongName, nil
			}
			if fallback == "" && hasType(comp.Types, "administrative_area_level_1") {
				fallback = comp.LongName
			}
		}
	}
	if fallback != "" {
		return fallback, nil
	}
	return "", fmt.Errorf("no locality found")
}

func hasType(types []string, want string) bool {
	for _, t := range types {
		if t == want {
			return true
		}
	}
	return false
}
