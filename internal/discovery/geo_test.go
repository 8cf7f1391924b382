package discovery_test

import (
	"math"
	"testing"

	"stayfinder/internal/discovery"
)

func TestDistanceKm_Identity(t *testing.T) {
	if d := discovery.DistanceKm(18.52, 73.85, 18.52, 73.85); d != 0 {
		t.Fatalf("expected zero distance for identical points, got %v", d)
	}
}

func TestDistanceKm_Symmetry(t *testing.T) {
	pairs := [][4]float64{
		{18.52, 73.85, 19.07, 72.87},
		{0, 0, 0, 1},
		{-33.86, 151.20, 51.50, -0.12},
		{89.9, 179.9, -89.9, -179.9},
	}
	for _, p := range pairs {
		ab := discovery.DistanceKm(p[0], p[1], p[2], p[3])
		ba := discovery.DistanceKm(p[2], p[3], p[0], p[1])
		if math.Abs(ab-ba) > 1e-9 {
			t.Fatalf("distance not symmetric for %v: %v vs %v", p, ab, ba)
		}
		if ab < 0 || math.IsNaN(ab) || math.IsInf(ab, 0) {
			t.Fatalf("distance not a finite non-negative number for %v: %v", p, ab)
		}
	}
}

func TestDistanceKm_KnownValue(t *testing.T) {
	// One degree of longitude at the equator is about 111.19 km.
	d := discovery.DistanceKm(0, 0, 0, 1)
	if math.Abs(d-111.19) > 0.1 {
		t.Fatalf("expected ~111.19 km, got %v", d)
	}
}

func TestDistanceKm_AntipodalIsFinite(t *testing.T) {
	// Near-antipodal pairs can push the haversine intermediate just past 1;
	// the result must stay finite and close to half the Earth's circumference.
	halfCircumference := math.Pi * 6371.0
	pairs := [][4]float64{
		{0, 0, 0, 180},
		{90, 0, -90, 0},
		{45.123456, 30, -45.123456, -150},
		{10.5, 20.25, -10.5, -159.75},
		{-33.0000001, 151.0, 33.0000001, -29.0},
		{0.000001, 0, -0.000001, 180},
	}
	for _, p := range pairs {
		d := discovery.DistanceKm(p[0], p[1], p[2], p[3])
		if d < 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			t.Fatalf("distance not a finite non-negative number for %v: %v", p, d)
		}
		if math.Abs(d-halfCircumference) > 1 {
			t.Fatalf("antipodal distance for %v should be ~%v km, got %v", p, halfCircumference, d)
		}
	}
}

func TestDistanceKm_MonotonicWithSeparation(t *testing.T) {
	near := discovery.DistanceKm(18.52, 73.85, 18.53, 73.85)
	far := discovery.DistanceKm(18.52, 73.85, 18.60, 73.85)
	if near >= far {
		t.Fatalf("expected distance to grow with separation: near=%v far=%v", near, far)
	}
}
