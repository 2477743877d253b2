// README: Spherical-earth helpers behind the calculator (haversine, initial bearing, angle wrap).
package qibla

import "math"

const earthRadiusKm = 6371.0

// haversineKm returns the great-circle distance in kilometres between two
// points specified in decimal degrees.
func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := degreesToRadians(lat2 - lat1)
	dLng := degreesToRadians(lng2 - lng1)

	rLat1 := degreesToRadians(lat1)
	rLat2 := degreesToRadians(lat2)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// initialBearingDeg returns the forward azimuth from point 1 to point 2 in
// [0, 360). Identical points have no defined bearing; 0 is returned.
func initialBearingDeg(lat1, lng1, lat2, lng2 float64) float64 {
	if lat1 == lat2 && lng1 == lng2 {
		return 0
	}

	dLng := degreesToRadians(lng2 - lng1)
	rLat1 := degreesToRadians(lat1)
	rLat2 := degreesToRadians(lat2)

	y := math.Sin(dLng) * math.Cos(rLat2)
	x := math.Cos(rLat1)*math.Sin(rLat2) -
		math.Sin(rLat1)*math.Cos(rLat2)*math.Cos(dLng)

	return NormalizeDegrees(radiansToDegrees(math.Atan2(y, x)))
}

// NormalizeDegrees wraps any finite angle into [0, 360).
func NormalizeDegrees(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	// d+360 can round up to exactly 360 for tiny negative inputs.
	if d >= 360 {
		d = 0
	}
	return d
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

func radiansToDegrees(rad float64) float64 {
	return rad * 180.0 / math.Pi
}
