package qibla

import (
	"errors"
	"math"
	"testing"
)

func TestComputeBearing_KnownValues(t *testing.T) {
	tests := []struct {
		name   string
		source GeoCoordinate
		lo, hi float64
	}{
		{name: "near Mecca, northwest", source: GeoCoordinate{Lat: 21.3891, Lng: 39.8579}, lo: 315, hi: 330},
		{name: "New York", source: GeoCoordinate{Lat: 40.7128, Lng: -74.0060}, lo: 58, hi: 60},
		{name: "Sydney", source: GeoCoordinate{Lat: -33.8688, Lng: 151.2093}, lo: 277, hi: 278},
		{name: "Kuala Lumpur", source: GeoCoordinate{Lat: 3.139, Lng: 101.6869}, lo: 292, hi: 293},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeBearing(tt.source, Kaaba)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.BearingDegrees < tt.lo || got.BearingDegrees > tt.hi {
				t.Errorf("bearing = %f, want in [%f, %f]", got.BearingDegrees, tt.lo, tt.hi)
			}
		})
	}
}

func TestComputeDistance_KnownValues(t *testing.T) {
	tests := []struct {
		name      string
		source    GeoCoordinate
		wantKm    float64
		tolerance float64
	}{
		{name: "near Mecca", source: GeoCoordinate{Lat: 21.3891, Lng: 39.8579}, wantKm: 4.6, tolerance: 0.5},
		{name: "New York", source: GeoCoordinate{Lat: 40.7128, Lng: -74.0060}, wantKm: 10300, tolerance: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeDistance(tt.source, Kaaba)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got.Kilometers-tt.wantKm) > tt.tolerance {
				t.Errorf("distance = %f, want %f (±%f)", got.Kilometers, tt.wantKm, tt.tolerance)
			}
		})
	}
}

func TestComputeBearing_AlwaysInRange(t *testing.T) {
	for lat := -90.0; lat <= 90; lat += 7.5 {
		for lng := -180.0; lng <= 180; lng += 11.25 {
			got, err := ComputeBearing(GeoCoordinate{Lat: lat, Lng: lng}, Kaaba)
			if err != nil {
				t.Fatalf("(%v, %v): unexpected error: %v", lat, lng, err)
			}
			b := got.BearingDegrees
			if math.IsNaN(b) || b < 0 || b >= 360 {
				t.Fatalf("(%v, %v): bearing %v outside [0, 360)", lat, lng, b)
			}
		}
	}
}

func TestComputeBearing_SourceEqualsTargetReturnsZero(t *testing.T) {
	got, err := ComputeBearing(Kaaba, Kaaba)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.BearingDegrees != 0 {
		t.Errorf("expected documented default 0, got %v", got.BearingDegrees)
	}
}

func TestComputeDistance_SamePointIsZero(t *testing.T) {
	p := GeoCoordinate{Lat: -12.5, Lng: 130.8}
	got, err := ComputeDistance(p, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Kilometers > 1e-6 {
		t.Errorf("expected 0 km, got %v", got.Kilometers)
	}
}

func TestComputeDistance_Symmetric(t *testing.T) {
	a := GeoCoordinate{Lat: 40.7128, Lng: -74.0060}
	b := GeoCoordinate{Lat: 3.139, Lng: 101.6869}
	ab, err := ComputeDistance(a, b)
	if err != nil {
		t.Fatal(err)
	}
	ba, err := ComputeDistance(b, a)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(ab.Kilometers-ba.Kilometers) > 1e-9 {
		t.Errorf("distance is not symmetric: %f vs %f", ab.Kilometers, ba.Kilometers)
	}
}

func TestCompute_Idempotent(t *testing.T) {
	src := GeoCoordinate{Lat: 33.6844, Lng: 73.0479}
	b1, _ := ComputeBearing(src, Kaaba)
	b2, _ := ComputeBearing(src, Kaaba)
	d1, _ := ComputeDistance(src, Kaaba)
	d2, _ := ComputeDistance(src, Kaaba)
	if math.Float64bits(b1.BearingDegrees) != math.Float64bits(b2.BearingDegrees) {
		t.Errorf("bearing differs between calls: %v vs %v", b1, b2)
	}
	if math.Float64bits(d1.Kilometers) != math.Float64bits(d2.Kilometers) {
		t.Errorf("distance differs between calls: %v vs %v", d1, d2)
	}
}

func TestCompute_InvalidCoordinate(t *testing.T) {
	tests := []struct {
		name   string
		source GeoCoordinate
		target GeoCoordinate
	}{
		{name: "latitude above 90", source: GeoCoordinate{Lat: 90.1, Lng: 0}, target: Kaaba},
		{name: "latitude below -90", source: GeoCoordinate{Lat: -91, Lng: 0}, target: Kaaba},
		{name: "longitude above 180", source: GeoCoordinate{Lat: 0, Lng: 180.5}, target: Kaaba},
		{name: "longitude below -180", source: GeoCoordinate{Lat: 0, Lng: -181}, target: Kaaba},
		{name: "NaN latitude", source: GeoCoordinate{Lat: math.NaN(), Lng: 0}, target: Kaaba},
		{name: "invalid target", source: Kaaba, target: GeoCoordinate{Lat: 0, Lng: 200}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ComputeBearing(tt.source, tt.target); !errors.Is(err, ErrInvalidCoordinate) {
				t.Errorf("ComputeBearing error = %v, want ErrInvalidCoordinate", err)
			}
			if _, err := ComputeDistance(tt.source, tt.target); !errors.Is(err, ErrInvalidCoordinate) {
				t.Errorf("ComputeDistance error = %v, want ErrInvalidCoordinate", err)
			}
		})
	}
}

func TestValidateCoordinate_BoundsInclusive(t *testing.T) {
	for _, c := range []GeoCoordinate{
		{Lat: 90, Lng: 180},
		{Lat: -90, Lng: -180},
	} {
		if err := ValidateCoordinate(c); err != nil {
			t.Errorf("ValidateCoordinate(%v) = %v, want nil", c, err)
		}
	}
}
