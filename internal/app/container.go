package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ranvijay-3589/hotel-booking-backend/internal/api"
	"github.com/Ranvijay-3589/hotel-booking-backend/internal/auth"
	"github.com/Ranvijay-3589/hotel-booking-backend/internal/booking"
	"github.com/Ranvijay-3589/hotel-booking-backend/internal/hotel"
	"github.com/Ranvijay-3589/hotel-booking-backend/internal/room"
	"github.com/Ranvijay-3589/hotel-booking-backend/internal/stats"
	"github.com/Ranvijay-3589/hotel-booking-backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction     bool
	ProdOrigins      string
	DBPool           *pgxpool.Pool
	JWTSecret        string
	JWTTTL           time.Duration
	BcryptCost       int
	BookingTxTimeout time.Duration
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	passwordHasher := auth.NewBcryptPasswordHasher(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	// User module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher)

	// Hotel module
	hotelRepo := hotel.NewPgxRepository(cfg.DBPool)
	hotelService := hotel.NewService(hotelRepo)

	// Room module
	roomRepo := room.NewPgxRepository(cfg.DBPool)
	roomService := room.NewService(roomRepo)

	// Booking module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, roomService, cfg.BookingTxTimeout)

	// Stats module
	statsRepo := stats.NewPgxRepository(cfg.DBPool)
	statsService := stats.NewService(statsRepo)

	router := api.NewRouter(api.Config{
		IsProduction:   cfg.IsProduction,
		ProdOrigins:    cfg.ProdOrigins,
		UserService:    userService,
		HotelService:   hotelService,
		RoomService:    roomService,
		BookingService: bookingService,
		StatsService:   statsService,
		JWTManager:     jwtManager,
	})

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}
}
