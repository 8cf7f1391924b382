package discovery

import (
	"strings"

	"stayfinder/internal/domain"
)

type predicate func(domain.Property) bool

// applyFilters reduces candidates to those matching every optional predicate
// in req, preserving input order. It always returns a fresh slice so callers
// may sort the result without touching the snapshot. The geographic radius is
// not applied here; geo mode handles it in the distance-annotation step (see
// service.go).
func applyFilters(props []domain.Property, req Request, idx RoomTypeIndex) []domain.Property {
	preds := buildPredicates(req, idx)

	out := make([]domain.Property, 0, len(props))
	for _, p := range props {
		if matchesAll(p, preds) {
			out = append(out, p)
		}
	}
	return out
}

func matchesAll(p domain.Property, preds []predicate) bool {
	for _, pred := range preds {
		if !pred(p) {
			return false
		}
	}
	return true
}

func buildPredicates(req Request, idx RoomTypeIndex) []predicate {
	var preds []predicate

	if q := strings.ToLower(req.Search); q != "" {
		// OR across the text fields; everything else ANDs.
		preds = append(preds, func(p domain.Property) bool {
			return strings.Contains(strings.ToLower(p.Name), q) ||
				strings.Contains(strings.ToLower(p.Locality), q) ||
				strings.Contains(strings.ToLower(p.City), q)
		})
	}
	if req.City != "" {
		preds = append(preds, func(p domain.Property) bool { return p.City == req.City })
	}
	if req.Locality != "" {
		preds = append(preds, func(p domain.Property) bool { return p.Locality == req.Locality })
	}
	if req.Gender != "" {
		preds = append(preds, func(p domain.Property) bool { return string(p.GenderType) == req.Gender })
	}
	if req.MinPrice != nil {
		preds = append(preds, func(p domain.Property) bool { return p.StartingPrice >= *req.MinPrice })
	}
	if req.MaxPrice != nil {
		preds = append(preds, func(p domain.Property) bool { return p.StartingPrice <= *req.MaxPrice })
	}
	if req.Available != nil {
		preds = append(preds, func(p domain.Property) bool { return p.IsAvailable == *req.Available })
	}
	if len(req.Amenities) > 0 {
		want := req.Amenities
		// The property must carry every requested amenity, not any.
		preds = append(preds, func(p domain.Property) bool {
			for _, w := range want {
				if !containsString(p.Amenities, w) {
					return false
				}
			}
			return true
		})
	}
	if req.RoomType != "" {
		cat := domain.RoomCategory(req.RoomType)
		preds = append(preds, func(p domain.Property) bool { return idx.Offers(p.ID, cat) })
	}

	return preds
}

func containsString(hay []string, needle string) bool {
	for _, s := range hay {
		if s == needle {
			return true
		}
	}
	return false
}
