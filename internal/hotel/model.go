package hotel

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("hotel not found")

// Hotel is a listing-level entity; rooms hang off it. The booking core only
// ever reads hotels through joins.
type Hotel struct {
	ID          string
	Name        string
	Location    string
	Description string
	ImageURL    *string
	Rating      float64
	CreatedAt   time.Time

	// Aggregates computed for list views.
	MinRoomPrice float64
	MaxRoomPrice float64
}

// Filter defines search parameters for hotel listings.
type Filter struct {
	Location  string // substring match on location
	Keyword   string // substring match on name, location or description
	MinPrice  *float64
	MaxPrice  *float64
	MinRating *float64
	Page      int
	PageSize  int
}
