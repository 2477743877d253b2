// README: Bearing and distance calculator. Pure functions, safe from any goroutine.
package qibla

// ComputeBearing returns the initial great-circle bearing from source to
// target. When source equals target the bearing is indeterminate and 0 is
// returned.
func ComputeBearing(source, target GeoCoordinate) (BearingResult, error) {
	if err := ValidateCoordinate(source); err != nil {
		return BearingResult{}, err
	}
	if err := ValidateCoordinate(target); err != nil {
		return BearingResult{}, err
	}
	return BearingResult{
		BearingDegrees: initialBearingDeg(source.Lat, source.Lng, target.Lat, target.Lng),
	}, nil
}

// ComputeDistance returns the haversine distance between source and target.
func ComputeDistance(source, target GeoCoordinate) (DistanceResult, error) {
	if err := ValidateCoordinate(source); err != nil {
		return DistanceResult{}, err
	}
	if err := ValidateCoordinate(target); err != nil {
		return DistanceResult{}, err
	}
	return DistanceResult{
		Kilometers: haversineKm(source.Lat, source.Lng, target.Lat, target.Lng),
	}, nil
}
