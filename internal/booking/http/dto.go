package http

import (
	"time"

	"github.com/Ranvijay-3589/hotel-booking-backend/internal/booking"
)

const dateLayout = "2006-01-02"

// CreateBookingBody is the canonical request shape; dates are calendar days
// (check-out exclusive), units_booked defaults to one.
type CreateBookingBody struct {
	RoomID   string `json:"room_id" binding:"required,uuid"`
	CheckIn  string `json:"check_in" binding:"required,datetime=2006-01-02"`
	CheckOut string `json:"check_out" binding:"required,datetime=2006-01-02"`
	Units    int    `json:"units_booked" binding:"omitempty,min=1"`
}

type UpdateBookingBody struct {
	CheckIn  *string `json:"check_in" binding:"omitempty,datetime=2006-01-02"`
	CheckOut *string `json:"check_out" binding:"omitempty,datetime=2006-01-02"`
	Units    *int    `json:"units_booked" binding:"omitempty,min=1"`
}

type AvailabilityQuery struct {
	CheckIn  string `form:"check_in" binding:"required,datetime=2006-01-02"`
	CheckOut string `form:"check_out" binding:"required,datetime=2006-01-02"`
}

func parseDate(s string) time.Time {
	t, _ := time.ParseInLocation(dateLayout, s, time.UTC)
	return t
}

type BookingResponse struct {
	ID            string    `json:"id"`
	RoomID        string    `json:"room_id"`
	RoomType      string    `json:"room_type"`
	HotelID       string    `json:"hotel_id"`
	HotelName     string    `json:"hotel_name"`
	HotelLocation string    `json:"hotel_location"`
	CheckIn       string    `json:"check_in"`
	CheckOut      string    `json:"check_out"`
	UnitsBooked   int       `json:"units_booked"`
	PricePerNight float64   `json:"price_per_night"`
	TotalPrice    float64   `json:"total_price"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		RoomID:        b.RoomID,
		RoomType:      b.RoomType,
		HotelID:       b.HotelID,
		HotelName:     b.HotelName,
		HotelLocation: b.HotelLocation,
		CheckIn:       b.CheckIn.Format(dateLayout),
		CheckOut:      b.CheckOut.Format(dateLayout),
		UnitsBooked:   b.UnitsBooked,
		PricePerNight: b.PricePerNight,
		TotalPrice:    b.TotalPrice,
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt,
	}
}

type AvailabilityResponse struct {
	RoomID     string `json:"room_id"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	TotalUnits int    `json:"total_units"`
	Booked     int    `json:"booked"`
	Available  int    `json:"available"`
}

func NewAvailabilityResponse(a *booking.Availability) AvailabilityResponse {
	return AvailabilityResponse{
		RoomID:     a.RoomID,
		CheckIn:    a.CheckIn.Format(dateLayout),
		CheckOut:   a.CheckOut.Format(dateLayout),
		TotalUnits: a.TotalUnits,
		Booked:     a.Booked,
		Available:  a.Available,
	}
}
