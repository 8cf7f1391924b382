package discovery

import "stayfinder/internal/domain"

// Item is one entry of a discovery response. Distance is present only in geo
// mode, rounded to two decimal places.
type Item struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	City          string   `json:"city"`
	Locality      string   `json:"locality"`
	Address       string   `json:"address"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	GenderType    string   `json:"gender_type"`
	StartingPrice int      `json:"starting_price"`
	Amenities     []string `json:"amenities"`
	Rating        float64  `json:"rating"`
	TotalReviews  int      `json:"total_reviews"`
	IsAvailable   bool     `json:"is_available"`
	Distance      *float64 `json:"distance,omitempty"`
}

func toItem(p domain.Property, distanceKm *float64) Item {
	amenities := p.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	return Item{
		ID:            p.ID,
		Name:          p.Name,
		City:          p.City,
		Locality:      p.Locality,
		Address:       p.Address,
		Latitude:      p.Lat,
		Longitude:     p.Lng,
		GenderType:    string(p.GenderType),
		StartingPrice: p.StartingPrice,
		Amenities:     amenities,
		Rating:        p.Rating,
		TotalReviews:  p.TotalReviews,
		IsAvailable:   p.IsAvailable,
		Distance:      distanceKm,
	}
}
