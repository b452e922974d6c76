package booking

import (
	"net/http"
	"time"

	"github.com/Ranvijay-3589/hotel-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "booking not found")
	ErrRoomNotFound     = apperror.New(http.StatusNotFound, "room not found")
	ErrInvalidUnits     = apperror.New(http.StatusBadRequest, "units_booked must be at least 1")
	ErrUnitsExceedStock = apperror.New(http.StatusBadRequest, "requested units exceed the room's inventory")
	ErrCheckInPast      = apperror.New(http.StatusBadRequest, "check-in cannot be in the past")
	ErrInvalidDateRange = apperror.New(http.StatusBadRequest, "check-out must be after check-in")
	ErrPermissionDenied = apperror.New(http.StatusForbidden, "permission denied")
	ErrBookingCancelled = apperror.New(http.StatusBadRequest, "booking is cancelled")
	ErrStoreBusy        = apperror.New(http.StatusServiceUnavailable, "booking system is busy, please retry")
)

// NoAvailabilityError reports an inventory conflict along with how many units
// remain free for the requested dates, so the caller can show it to the user.
type NoAvailabilityError struct {
	Available int
}

func (e *NoAvailabilityError) Error() string {
	return "no rooms available for the selected dates"
}

type Status string

const (
	StatusRequested Status = "requested"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Booking reserves UnitsBooked units of a room for the half-open date range
// [CheckIn, CheckOut). Hotel and room display fields are denormalized from
// joins for confirmation views.
type Booking struct {
	ID            string
	RoomID        string
	RoomType      string
	HotelID       string
	HotelName     string
	HotelLocation string
	UserID        string
	CheckIn       time.Time
	CheckOut      time.Time
	UnitsBooked   int
	PricePerNight float64
	TotalPrice    float64
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Active reports whether the booking counts toward room inventory.
func (b *Booking) Active() bool {
	return b.Status == StatusRequested || b.Status == StatusConfirmed
}

// Availability is the result of a read-only inventory probe for a room and
// date range. Booked may be stale the instant after it is computed; the
// authoritative check happens inside the booking transaction.
type Availability struct {
	RoomID     string
	CheckIn    time.Time
	CheckOut   time.Time
	TotalUnits int
	Booked     int
	Available  int
}

// Overlaps reports whether the half-open date ranges [aStart, aEnd) and
// [bStart, bEnd) intersect. Ranges that merely touch at a boundary do not
// overlap: the room turns over the same day.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// Nights returns the number of nights between two calendar dates.
// Both dates are expected to be midnight-truncated.
func Nights(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn) / (24 * time.Hour))
}
