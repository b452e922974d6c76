package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Ranvijay-3589/hotel-booking-backend/internal/auth"
	"github.com/Ranvijay-3589/hotel-booking-backend/internal/booking"
	"github.com/Ranvijay-3589/hotel-booking-backend/internal/pkg/request"
	"github.com/Ranvijay-3589/hotel-booking-backend/internal/pkg/response"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

// writeError maps core failures to transport responses. Inventory conflicts
// carry the remaining available count for the client UI.
func writeError(c *gin.Context, err error) {
	var noAvail *booking.NoAvailabilityError
	if errors.As(err, &noAvail) {
		c.JSON(http.StatusConflict, gin.H{
			"error":     noAvail.Error(),
			"available": noAvail.Available,
		})
		return
	}
	response.Error(c, err)
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	units := body.Units
	if units == 0 {
		units = 1
	}

	req := booking.CreateRequest{
		UserID:   auth.GetUserID(c),
		RoomID:   body.RoomID,
		CheckIn:  parseDate(body.CheckIn),
		CheckOut: parseDate(body.CheckOut),
		Units:    units,
	}

	b, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewBookingResponse(b))
}

func (h *Handler) List(c *gin.Context) {
	var params request.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}

	bookings, total, err := h.service.ListByUser(c.Request.Context(), auth.GetUserID(c), params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings"})
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}
	c.JSON(http.StatusOK, response.NewPageResponse(items, params.Page, params.PageSize, total))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id, auth.GetUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body UpdateBookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	req := booking.UpdateRequest{Units: body.Units}
	if body.CheckIn != nil {
		t := parseDate(*body.CheckIn)
		req.CheckIn = &t
	}
	if body.CheckOut != nil {
		t := parseDate(*body.CheckOut)
		req.CheckOut = &t
	}

	b, err := h.service.Update(c.Request.Context(), id, req, auth.GetUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Cancel(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if err := h.service.Cancel(c.Request.Context(), id, auth.GetUserID(c)); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) Confirm(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	b, err := h.service.Confirm(c.Request.Context(), id, auth.GetUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewBookingResponse(b))
}

// Availability is a public read-only probe for the date picker; the result is
// advisory and may be stale under concurrent writers.
func (h *Handler) Availability(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var q AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	a, err := h.service.Availability(c.Request.Context(), id, parseDate(q.CheckIn), parseDate(q.CheckOut))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewAvailabilityResponse(a))
}
