package discovery

import (
	"context"
	"fmt"
	"time"

	"stayfinder/internal/domain"
)

const (
	propertiesKey = "snapshot:properties"
	roomTypesKey  = "snapshot:roomtypes"
)

// Service runs the discovery pipeline over a per-request snapshot of the
// property store: filter, distance-annotate (geo mode), sort, paginate.
// Snapshots are cached as read-only values with a TTL.
type Service struct {
	repo     domain.PropertyRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewService(r domain.PropertyRepository, c domain.Cache, ttl time.Duration) *Service {
	return &Service{repo: r, cache: c, cacheTTL: ttl}
}

func (s *Service) Discover(ctx context.Context, req Request) ([]Item, error) {
	props, err := s.properties(ctx)
	if err != nil {
		return nil, fmt.Errorf("load property snapshot: %w", err)
	}

	var idx RoomTypeIndex
	if req.RoomType != "" {
		rts, err := s.roomTypes(ctx)
		if err != nil {
			return nil, fmt.Errorf("load room type snapshot: %w", err)
		}
		idx = NewRoomTypeIndex(rts)
	}

	candidates := applyFilters(props, req, idx)

	if req.Geo != nil {
		return s.rankByDistance(candidates, req), nil
	}
	return rankCatalog(candidates, req), nil
}

// rankByDistance annotates each survivor with its distance from the request
// anchor and applies the radius cutoff. Properties without coordinates are
// excluded outright; missing location data never passes by default.
func (s *Service) rankByDistance(candidates []domain.Property, req Request) []Item {
	g := req.Geo
	within := make([]ranked, 0, len(candidates))
	for _, p := range candidates {
		if !p.HasCoordinates() {
			continue
		}
		d := DistanceKm(g.Lat, g.Lng, *p.Lat, *p.Lng)
		if d <= g.RadiusKm {
			within = append(within, ranked{prop: p, distanceKm: d})
		}
	}
	sortByDistance(within)

	page := paginate(within, req.Limit, req.Offset)
	items := make([]Item, 0, len(page))
	for _, r := range page {
		d := roundKm(r.distanceKm)
		items = append(items, toItem(r.prop, &d))
	}
	return items
}

func rankCatalog(candidates []domain.Property, req Request) []Item {
	// applyFilters always returns a fresh slice, so sorting in place is safe.
	sortCatalog(candidates, req.Sort)

	page := paginate(candidates, req.Limit, req.Offset)
	items := make([]Item, 0, len(page))
	for _, p := range page {
		items = append(items, toItem(p, nil))
	}
	return items
}

func (s *Service) properties(ctx context.Context) ([]domain.Property, error) {
	var props []domain.Property
	if ok, _ := s.cache.Get(ctx, propertiesKey, &props); ok {
		return props, nil
	}
	props, err := s.repo.ListProperties(ctx)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, propertiesKey, props, int(s.cacheTTL.Seconds()))
	return props, nil
}

func (s *Service) roomTypes(ctx context.Context) ([]domain.RoomType, error) {
	var rts []domain.RoomType
	if ok, _ := s.cache.Get(ctx, roomTypesKey, &rts); ok {
		return rts, nil
	}
	rts, err := s.repo.ListRoomTypes(ctx)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, roomTypesKey, rts, int(s.cacheTTL.Seconds()))
	return rts, nil
}
