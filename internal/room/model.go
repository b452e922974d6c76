package room

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("room not found")

// Room is a bookable unit type at a hotel. TotalUnits is the number of
// physical rooms of this type; the booking module never mutates a room.
type Room struct {
	ID            string
	HotelID       string
	RoomType      string
	PricePerNight float64
	TotalUnits    int
	Capacity      int
	ImageURL      *string
	CreatedAt     time.Time
}
