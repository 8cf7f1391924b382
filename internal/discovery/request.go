package discovery

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

// Machine-readable codes for client-input failures. Surfaced as 400s; none of
// them is retryable.
const (
	CodeMissingCoordinates    = "MISSING_COORDINATES"
	CodeInvalidCoordinates    = "INVALID_COORDINATES"
	CodeCoordinatesOutOfRange = "COORDINATES_OUT_OF_RANGE"
	CodeInvalidRadius         = "INVALID_RADIUS"
	CodeInvalidPagination     = "INVALID_PAGINATION"
)

type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string { return e.Code + ": " + e.Message }

const (
	MaxLimit            = 100
	DefaultCatalogLimit = 50
	DefaultGeoLimit     = 20
	DefaultRadiusKm     = 10
)

type Sort string

const (
	SortPopularity Sort = "popularity"
	SortPriceLow   Sort = "price-low"
	SortPriceHigh  Sort = "price-high"
	SortRating     Sort = "rating"
)

// GeoQuery anchors a request at a coordinate with a radius cutoff.
type GeoQuery struct {
	Lat, Lng float64
	RadiusKm float64
}

// Request is the validated, normalized set of filter/sort/paging parameters.
// String filters use "" for "absent"; numeric and boolean filters use nil.
// Geo is nil in catalog mode.
type Request struct {
	Search    string
	City      string
	Locality  string
	Gender    string
	MinPrice  *int
	MaxPrice  *int
	Amenities []string
	RoomType  string
	Available *bool
	Geo       *GeoQuery
	Sort      Sort
	Limit     int
	Offset    int
}

// ParseCatalog validates catalog-mode query parameters. Malformed optional
// numeric filters are dropped, not rejected; only pagination is a hard error.
func ParseCatalog(q url.Values) (Request, error) {
	req := Request{
		Search:    strings.TrimSpace(q.Get("search")),
		City:      q.Get("city"),
		Locality:  q.Get("locality"),
		Gender:    q.Get("gender_type"),
		MinPrice:  optionalInt(q.Get("min_price")),
		MaxPrice:  optionalInt(q.Get("max_price")),
		Amenities: splitCSV(q.Get("amenities")),
		RoomType:  q.Get("room_type"),
		Available: optionalBool(q.Get("is_available")),
		Sort:      parseSort(q.Get("sort")),
	}

	var err error
	if req.Limit, req.Offset, err = parsePagination(q, DefaultCatalogLimit); err != nil {
		return Request{}, err
	}
	return req, nil
}

// ParseNearby validates geo-mode query parameters. lat and lng are required;
// everything else has a default.
func ParseNearby(q url.Values) (Request, error) {
	latStr, lngStr := q.Get("lat"), q.Get("lng")
	if latStr == "" || lngStr == "" {
		return Request{}, &ValidationError{CodeMissingCoordinates, "lat and lng are required"}
	}
	lat, err1 := strconv.ParseFloat(latStr, 64)
	lng, err2 := strconv.ParseFloat(lngStr, 64)
	if err1 != nil || err2 != nil || math.IsNaN(lat) || math.IsNaN(lng) {
		return Request{}, &ValidationError{CodeInvalidCoordinates, "lat and lng must be numbers"}
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return Request{}, &ValidationError{CodeCoordinatesOutOfRange, "lat must be in [-90,90] and lng in [-180,180]"}
	}

	radius := float64(DefaultRadiusKm)
	if rs := q.Get("radius"); rs != "" {
		r, err := strconv.ParseFloat(rs, 64)
		if err != nil || math.IsNaN(r) || math.IsInf(r, 0) || r <= 0 {
			return Request{}, &ValidationError{CodeInvalidRadius, "radius must be a positive number of kilometers"}
		}
		radius = r
	}

	req := Request{
		Geo:       &GeoQuery{Lat: lat, Lng: lng, RadiusKm: radius},
		Available: optionalBool(q.Get("is_available")),
	}
	var err error
	if req.Limit, req.Offset, err = parsePagination(q, DefaultGeoLimit); err != nil {
		return Request{}, err
	}
	return req, nil
}

// parsePagination applies the mode default when limit is absent, rejects
// malformed limit/offset, and caps limit at MaxLimit.
func parsePagination(q url.Values, defLimit int) (limit, offset int, err error) {
	limit = defLimit
	if ls := q.Get("limit"); ls != "" {
		l, perr := strconv.Atoi(ls)
		if perr != nil || l <= 0 {
			return 0, 0, &ValidationError{CodeInvalidPagination, "limit must be a positive integer"}
		}
		if l > MaxLimit {
			l = MaxLimit
		}
		limit = l
	}
	if os := q.Get("offset"); os != "" {
		o, perr := strconv.Atoi(os)
		if perr != nil || o < 0 {
			return 0, 0, &ValidationError{CodeInvalidPagination, "offset must be a non-negative integer"}
		}
		offset = o
	}
	return limit, offset, nil
}

func parseSort(s string) Sort {
	switch Sort(s) {
	case SortPriceLow, SortPriceHigh, SortRating:
		return Sort(s)
	default:
		return SortPopularity
	}
}

// optionalInt parses an optional numeric filter; malformed values are treated
// as absent, not as errors.
func optionalInt(s string) *int {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

func optionalBool(s string) *bool {
	switch s {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	default:
		return nil
	}
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
