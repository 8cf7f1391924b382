package redisad_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"

	redisad "stayfinder/internal/adapters/redis"
	"stayfinder/internal/domain"
)

func newTestCache(t *testing.T) *redisad.Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	return redisad.New(mr.Addr(), "", 0)
}

func TestCache_RoundTrip(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	lat, lng := 18.52, 73.85
	in := []domain.Property{{
		ID:            1,
		Name:          "Sunrise PG",
		City:          "Pune",
		Lat:           &lat,
		Lng:           &lng,
		GenderType:    domain.GenderUnisex,
		StartingPrice: 9000,
		Amenities:     []string{"WiFi", "AC"},
		IsAvailable:   true,
	}}

	if err := c.Set(ctx, "snapshot:properties", in, 60); err != nil {
		t.Fatalf("Set: %v", err)
	}

	var out []domain.Property
	ok, err := c.Get(ctx, "snapshot:properties", &out)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatalf("expected a hit")
	}
	if len(out) != 1 || out[0].ID != 1 || out[0].Lat == nil || *out[0].Lat != 18.52 {
		t.Fatalf("unexpected value: %+v", out)
	}
}

func TestCache_MissAndDel(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	var out []domain.Property
	ok, err := c.Get(ctx, "snapshot:properties", &out)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Fatalf("expected a miss on empty cache")
	}

	if err := c.Set(ctx, "k", "v", 60); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := c.Del(ctx, "k"); err != nil {
		t.Fatalf("Del: %v", err)
	}
	var s string
	if ok, _ := c.Get(ctx, "k", &s); ok {
		t.Fatalf("expected key deleted")
	}
}
