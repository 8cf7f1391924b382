package domain

type RoomCategory string

const (
	RoomSingle RoomCategory = "Single"
	RoomDouble RoomCategory = "Double"
	RoomTriple RoomCategory = "Triple"
)

type RoomType struct {
	ID             int64
	PropertyID     int64
	Category       RoomCategory
	PricePerMonth  int
	AvailableRooms int // <= TotalRooms
	TotalRooms     int
}
