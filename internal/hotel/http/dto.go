package http

import (
	"time"

	"github.com/Ranvijay-3589/hotel-booking-backend/internal/hotel"
	"github.com/Ranvijay-3589/hotel-booking-backend/internal/pkg/request"
	"github.com/Ranvijay-3589/hotel-booking-backend/internal/room"
)

type ListHotelsQuery struct {
	request.ListParams
	Location string   `form:"location"`
	Search   string   `form:"search"`
	MinPrice *float64 `form:"min_price" binding:"omitempty,gte=0"`
	MaxPrice *float64 `form:"max_price" binding:"omitempty,gte=0"`
	Rating   *float64 `form:"rating" binding:"omitempty,gte=0,lte=5"`
}

type HotelResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Location     string    `json:"location"`
	Description  string    `json:"description"`
	ImageURL     *string   `json:"image_url"`
	Rating       float64   `json:"rating"`
	MinRoomPrice float64   `json:"min_room_price"`
	MaxRoomPrice float64   `json:"max_room_price"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewHotelResponse(h *hotel.Hotel) HotelResponse {
	return HotelResponse{
		ID:           h.ID,
		Name:         h.Name,
		Location:     h.Location,
		Description:  h.Description,
		ImageURL:     h.ImageURL,
		Rating:       h.Rating,
		MinRoomPrice: h.MinRoomPrice,
		MaxRoomPrice: h.MaxRoomPrice,
		CreatedAt:    h.CreatedAt,
	}
}

type RoomResponse struct {
	ID            string  `json:"id"`
	HotelID       string  `json:"hotel_id"`
	RoomType      string  `json:"room_type"`
	PricePerNight float64 `json:"price_per_night"`
	TotalUnits    int     `json:"total_units"`
	Capacity      int     `json:"capacity"`
	ImageURL      *string `json:"image_url"`
}

func NewRoomResponse(rm *room.Room) RoomResponse {
	return RoomResponse{
		ID:            rm.ID,
		HotelID:       rm.HotelID,
		RoomType:      rm.RoomType,
		PricePerNight: rm.PricePerNight,
		TotalUnits:    rm.TotalUnits,
		Capacity:      rm.Capacity,
		ImageURL:      rm.ImageURL,
	}
}

type HotelDetailResponse struct {
	Hotel HotelResponse  `json:"hotel"`
	Rooms []RoomResponse `json:"rooms"`
}
