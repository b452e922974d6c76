package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ranvijay-3589/hotel-booking-backend/internal/stats"
)

type Handler struct {
	statsService stats.Service
}

func NewHandler(statsService stats.Service) *Handler {
	return &Handler{statsService: statsService}
}

func (h *Handler) Get(c *gin.Context) {
	snapshot, err := h.statsService.Snapshot(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to collect statistics"})
		return
	}
	c.JSON(http.StatusOK, NewSnapshotResponse(snapshot))
}
