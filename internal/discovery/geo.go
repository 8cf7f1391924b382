package discovery

import "math"

// earthRadiusKm is the mean radius of Earth used for haversine distance.
const earthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance in kilometers between two
// points given as latitude/longitude in degrees. Inputs are assumed to be
// range-validated by the caller.
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	lat1r := lat1 * math.Pi / 180
	lat2r := lat2 * math.Pi / 180
	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1r)*math.Cos(lat2r)*math.Sin(dLng/2)*math.Sin(dLng/2)
	// rounding can push a just past 1 for near-antipodal points
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(math.Max(0, 1-a)))

	return earthRadiusKm * c
}

// roundKm rounds a distance to two decimal places for presentation.
func roundKm(d float64) float64 { return math.Round(d*100) / 100 }
