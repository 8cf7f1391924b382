package app

import (
	"strconv"
	"strings"

	"stayfinder/internal/domain"
)

/********** tiny helpers **********/

// lookupAny: safe nested lookup with dot paths on maps.
func lookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		v, ok := obj[part]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

// lookupStr returns string at path or "".
func lookupStr(m map[string]any, path string) string {
	if v := lookupAny(m, path); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// firstStr: first non-empty string among paths.
func firstStr(m map[string]any, paths ...string) string {
	for _, p := range paths {
		if s := strings.TrimSpace(lookupStr(m, p)); s != "" {
			return s
		}
	}
	return ""
}

// firstFloat: number from several paths (float64/int/string like "18,52").
func firstFloat(m map[string]any, paths ...string) *float64 {
	for _, k := range paths {
		switch v := lookupAny(m, k).(type) {
		case float64:
			f := v
			return &f
		case int:
			f := float64(v)
			return &f
		case string:
			s := strings.TrimSpace(strings.ReplaceAll(v, ",", "."))
			if s == "" {
				continue
			}
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return &f
			}
		}
	}
	return nil
}

func firstInt(m map[string]any, paths ...string) int {
	if f := firstFloat(m, paths...); f != nil {
		return int(*f)
	}
	return 0
}

func firstBool(m map[string]any, paths ...string) bool {
	for _, k := range paths {
		switch v := lookupAny(m, k).(type) {
		case bool:
			return v
		case string:
			if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
				return b
			}
		}
	}
	return false
}

/********** property mapper **********/

// normalizeAmenities folds whatever the feed sends (native array, or a
// JSON-ish list of free-cased strings) into the fixed vocabulary. Everything
// downstream of the store sees only the canonical spellings.
func normalizeAmenities(raw []any) []string {
	var out []string
	seen := make(map[string]struct{}, len(domain.Amenities))
	for _, it := range raw {
		s, ok := it.(string)
		if !ok {
			continue
		}
		for _, canon := range domain.Amenities {
			if strings.EqualFold(strings.TrimSpace(s), canon) {
				if _, dup := seen[canon]; !dup {
					seen[canon] = struct{}{}
					out = append(out, canon)
				}
				break
			}
		}
	}
	return out
}

func normalizeGender(s string) domain.GenderType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "boys":
		return domain.GenderMale
	case "female", "girls":
		return domain.GenderFemale
	default:
		return domain.GenderUnisex
	}
}

func mapProperty(id int64, p map[string]any) domain.Property {
	prop := domain.Property{
		ID:            id,
		Name:          firstStr(p, "name", "property_name", "title"),
		City:          firstStr(p, "city", "address.city"),
		Locality:      firstStr(p, "locality", "address.locality", "neighbourhood"),
		Address:       firstStr(p, "address_raw", "address.full", "full_address", "address"),
		GenderType:    normalizeGender(firstStr(p, "gender_type", "gender")),
		StartingPrice: firstInt(p, "starting_price", "price", "min_price"),
		Rating:        0,
		TotalReviews:  firstInt(p, "total_reviews", "review_count", "reviews"),
		IsAvailable:   firstBool(p, "is_available", "available"),
	}

	if f := firstFloat(p, "rating", "avg_rating", "rating.value"); f != nil {
		prop.Rating = *f
	}

	// Coordinates stay nil unless both are present; a half location is no
	// location as far as geo discovery is concerned.
	lat := firstFloat(p, "latitude", "lat", "location.lat")
	lng := firstFloat(p, "longitude", "lng", "lon", "location.lng", "location.lon")
	if lat != nil && lng != nil {
		prop.Lat, prop.Lng = lat, lng
	}

	if raw, ok := lookupAny(p, "amenities").([]any); ok {
		prop.Amenities = normalizeAmenities(raw)
	} else if raw, ok := lookupAny(p, "facilities").([]any); ok {
		prop.Amenities = normalizeAmenities(raw)
	}

	return prop
}

/********** room type mapper **********/

func mapRoomTypes(propertyID int64, in []map[string]any) []domain.RoomType {
	out := make([]domain.RoomType, 0, len(in))
	for _, m := range in {
		cat := normalizeRoomCategory(firstStr(m, "type", "category", "room_type"))
		if cat == "" {
			continue // unknown category, skip rather than invent one
		}
		rt := domain.RoomType{
			PropertyID:     propertyID,
			Category:       cat,
			PricePerMonth:  firstInt(m, "price_per_month", "price", "monthly_price"),
			AvailableRooms: firstInt(m, "available_rooms", "available"),
			TotalRooms:     firstInt(m, "total_rooms", "total"),
		}
		if f := firstFloat(m, "id", "room_type_id"); f != nil {
			rt.ID = int64(*f)
		}
		if rt.AvailableRooms > rt.TotalRooms {
			rt.AvailableRooms = rt.TotalRooms
		}
		out = append(out, rt)
	}
	return out
}

func normalizeRoomCategory(s string) domain.RoomCategory {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single":
		return domain.RoomSingle
	case "double", "twin":
		return domain.RoomDouble
	case "triple":
		return domain.RoomTriple
	default:
		return ""
	}
}
