package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Ranvijay-3589/hotel-booking-backend/internal/auth"
	"github.com/Ranvijay-3589/hotel-booking-backend/internal/booking"
	bookingHttp "github.com/Ranvijay-3589/hotel-booking-backend/internal/booking/http"
	"github.com/Ranvijay-3589/hotel-booking-backend/internal/hotel"
	hotelHttp "github.com/Ranvijay-3589/hotel-booking-backend/internal/hotel/http"
	"github.com/Ranvijay-3589/hotel-booking-backend/internal/room"
	"github.com/Ranvijay-3589/hotel-booking-backend/internal/stats"
	statsHttp "github.com/Ranvijay-3589/hotel-booking-backend/internal/stats/http"
	"github.com/Ranvijay-3589/hotel-booking-backend/internal/user"
	userHttp "github.com/Ranvijay-3589/hotel-booking-backend/internal/user/http"
)

// Config holds everything the router needs to assemble middleware and routes.
type Config struct {
	IsProduction   bool
	ProdOrigins    string
	UserService    user.Service
	HotelService   hotel.Service
	RoomService    room.Service
	BookingService booking.Service
	StatsService   stats.Service
	JWTManager     *auth.JWTManager
}

// NewRouter assembles the gin engine: CORS, logging, recovery, and the
// per-module route registrations under /v1.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	authMiddleware := auth.AuthRequired(cfg.JWTManager)

	userHandler := userHttp.NewHandler(cfg.UserService, cfg.JWTManager)
	hotelHandler := hotelHttp.NewHandler(cfg.HotelService, cfg.RoomService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	statsHandler := statsHttp.NewHandler(cfg.StatsService)

	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware)
		hotelHttp.RegisterRoutes(v1, hotelHandler)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware)
		statsHttp.RegisterRoutes(v1, statsHandler)
	}

	return r
}
