package utils

import "math"

const earthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance in kilometers between two
// lat/lon points.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// WithinRadius reports whether (lat, lon) falls inside a circular region.
// A point exactly on the boundary counts as inside.
func WithinRadius(lat, lon, centerLat, centerLon, radiusKm float64) bool {
	return HaversineKm(lat, lon, centerLat, centerLon) <= radiusKm
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
