package utils

import (
	"math"
	"testing"
)

func TestHaversineZeroDistance(t *testing.T) {
	if d := HaversineKm(45.5051, -122.6750, 45.5051, -122.6750); d != 0 {
		t.Errorf("distance from a point to itself = %v, want 0", d)
	}
}

func TestHaversineSymmetry(t *testing.T) {
	a := HaversineKm(45.5051, -122.6750, 47.6062, -122.3321)
	b := HaversineKm(47.6062, -122.3321, 45.5051, -122.6750)
	if math.Abs(a-b) > 1e-9 {
		t.Errorf("distance not symmetric: %v vs %v", a, b)
	}
}

func TestHaversineKnownDistance(t *testing.T) {
	// Portland → Seattle, roughly 233 km.
	d := HaversineKm(45.5051, -122.6750, 47.6062, -122.3321)
	if d < 225 || d > 245 {
		t.Errorf("Portland→Seattle = %v km, want ~233", d)
	}
}

func TestWithinRadiusBoundaryInclusive(t *testing.T) {
	const lat, lon = 45.5051, -122.6750

	// Walk ~10 km due north, then use the measured distance as the radius:
	// a point exactly on the boundary must match.
	otherLat := lat + 10.0/111.0
	radius := HaversineKm(lat, lon, otherLat, lon)

	if !WithinRadius(otherLat, lon, lat, lon, radius) {
		t.Error("point exactly at the radius should match")
	}
	if WithinRadius(otherLat, lon, lat, lon, radius*0.99) {
		t.Error("point beyond the radius should not match")
	}
}

func TestWithinRadiusFarPoint(t *testing.T) {
	// 50 km east of Portland is outside a 15 km fence.
	if WithinRadius(45.5051, -122.0, 45.5051, -122.6750, 15) {
		t.Error("point ~50 km away matched a 15 km fence")
	}
}
