package discovery

import "stayfinder/internal/domain"

// RoomTypeIndex is a read-only lookup from property id to the set of room
// categories it offers. Built once from a room-type snapshot and never
// mutated afterwards, so it is safe to share across concurrent readers.
type RoomTypeIndex map[int64]map[domain.RoomCategory]struct{}

func NewRoomTypeIndex(rts []domain.RoomType) RoomTypeIndex {
	ix := make(RoomTypeIndex, len(rts))
	for _, rt := range rts {
		set, ok := ix[rt.PropertyID]
		if !ok {
			set = make(map[domain.RoomCategory]struct{}, 3)
			ix[rt.PropertyID] = set
		}
		set[rt.Category] = struct{}{}
	}
	return ix
}

// Offers reports whether the property has at least one room of the category.
func (ix RoomTypeIndex) Offers(propertyID int64, c domain.RoomCategory) bool {
	_, ok := ix[propertyID][c]
	return ok
}
