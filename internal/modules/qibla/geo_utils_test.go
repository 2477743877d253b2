package qibla

import (
	"math"
	"testing"
)

func TestHaversineKm_KnownDistances(t *testing.T) {
	tests := []struct {
		name      string
		lat1      float64
		lng1      float64
		lat2      float64
		lng2      float64
		wantKm    float64
		tolerance float64
	}{
		{
			name:      "same point",
			lat1:      21.4225, lng1: 39.8262,
			lat2:      21.4225, lng2: 39.8262,
			wantKm:    0,
			tolerance: 1e-9,
		},
		{
			name:      "London to the Kaaba (~4794km)",
			lat1:      51.5074, lng1: -0.1278,
			lat2:      21.4225, lng2: 39.8262,
			wantKm:    4794,
			tolerance: 10,
		},
		{
			name:      "New York to Los Angeles (~3944km)",
			lat1:      40.7128, lng1: -74.0060,
			lat2:      34.0522, lng2: -118.2437,
			wantKm:    3944,
			tolerance: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := haversineKm(tt.lat1, tt.lng1, tt.lat2, tt.lng2)
			if math.Abs(got-tt.wantKm) > tt.tolerance {
				t.Errorf("haversineKm() = %f, want %f (±%f)", got, tt.wantKm, tt.tolerance)
			}
		})
	}
}

func TestInitialBearingDeg_CardinalDirections(t *testing.T) {
	tests := []struct {
		name string
		lat2 float64
		lng2 float64
		want float64
	}{
		{name: "due north", lat2: 10, lng2: 0, want: 0},
		{name: "due east", lat2: 0, lng2: 10, want: 90},
		{name: "due south", lat2: -10, lng2: 0, want: 180},
		{name: "due west", lat2: 0, lng2: -10, want: 270},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := initialBearingDeg(0, 0, tt.lat2, tt.lng2)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("initialBearingDeg() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestInitialBearingDeg_IdenticalPointsIsZero(t *testing.T) {
	got := initialBearingDeg(48.8566, 2.3522, 48.8566, 2.3522)
	if got != 0 || math.IsNaN(got) {
		t.Errorf("expected 0 for identical points, got %f", got)
	}
}

func TestNormalizeDegrees(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{359.5, 359.5},
		{360, 0},
		{725, 5},
		{-10, 350},
		{-360, 0},
		{-1e-15, 0},
	}
	for _, tt := range tests {
		got := NormalizeDegrees(tt.in)
		if got < 0 || got >= 360 {
			t.Errorf("NormalizeDegrees(%v) = %v, outside [0, 360)", tt.in, got)
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("NormalizeDegrees(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
