package domain

type GenderType string

const (
	GenderMale   GenderType = "Male"
	GenderFemale GenderType = "Female"
	GenderUnisex GenderType = "Unisex"
)

// Amenity vocabulary. The store normalizes whatever the upstream feed sends
// into this fixed set; the discovery core never sees anything else.
var Amenities = []string{"AC", "WiFi", "Food", "Balcony", "Laundry", "Gym", "Parking"}

func IsKnownAmenity(s string) bool {
	for _, a := range Amenities {
		if a == s {
			return true
		}
	}
	return false
}

type Property struct {
	ID            int64
	Name          string
	City          string
	Locality      string
	Address       string
	Lat, Lng      *float64 // nil when the property has no geocoded location
	GenderType    GenderType
	StartingPrice int // minor currency unit per month
	Amenities     []string
	Rating        float64 // [0,5]
	TotalReviews  int
	IsAvailable   bool
}

// HasCoordinates reports whether the property carries a complete geocoded
// location. Properties without one are excluded from geo-mode results.
func (p Property) HasCoordinates() bool { return p.Lat != nil && p.Lng != nil }
