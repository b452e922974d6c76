package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Ranvijay-3589/hotel-booking-backend/internal/hotel"
	"github.com/Ranvijay-3589/hotel-booking-backend/internal/pkg/response"
	"github.com/Ranvijay-3589/hotel-booking-backend/internal/room"
)

type Handler struct {
	hotelService hotel.Service
	roomService  room.Service
}

func NewHandler(hotelService hotel.Service, roomService room.Service) *Handler {
	return &Handler{
		hotelService: hotelService,
		roomService:  roomService,
	}
}

func (h *Handler) List(c *gin.Context) {
	var q ListHotelsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	filter := hotel.Filter{
		Location:  q.Location,
		Keyword:   q.Search,
		MinPrice:  q.MinPrice,
		MaxPrice:  q.MaxPrice,
		MinRating: q.Rating,
		Page:      q.Page,
		PageSize:  q.PageSize,
	}

	hotels, total, err := h.hotelService.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list hotels"})
		return
	}

	items := make([]HotelResponse, len(hotels))
	for i, ht := range hotels {
		items[i] = NewHotelResponse(ht)
	}
	c.JSON(http.StatusOK, response.NewPageResponse(items, q.Page, q.PageSize, total))
}

// Get returns the hotel together with its rooms, for the detail page.
func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	ctx := c.Request.Context()

	ht, err := h.hotelService.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, hotel.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "hotel not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get hotel"})
		return
	}

	rooms, err := h.roomService.ListByHotel(ctx, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list rooms"})
		return
	}

	resp := HotelDetailResponse{
		Hotel: NewHotelResponse(ht),
		Rooms: make([]RoomResponse, len(rooms)),
	}
	for i, rm := range rooms {
		resp.Rooms[i] = NewRoomResponse(rm)
	}
	c.JSON(http.StatusOK, resp)
}
