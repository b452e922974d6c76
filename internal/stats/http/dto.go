package http

import (
	"github.com/Ranvijay-3589/hotel-booking-backend/internal/stats"
)

type OverviewResponse struct {
	TotalHotels      int     `json:"total_hotels"`
	TotalRooms       int     `json:"total_rooms"`
	TotalBookings    int     `json:"total_bookings"`
	TotalUsers       int     `json:"total_users"`
	TotalRevenue     float64 `json:"total_revenue"`
	ConfirmedRevenue float64 `json:"confirmed_revenue"`
	AvgBookingValue  float64 `json:"avg_booking_value"`
	TotalUnitsBooked int     `json:"total_units_booked"`
}

type StatusCountResponse struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type TopHotelResponse struct {
	Name         string  `json:"name"`
	BookingCount int     `json:"booking_count"`
	TotalRevenue float64 `json:"total_revenue"`
}

type RoomTypeCountResponse struct {
	RoomType     string `json:"room_type"`
	BookingCount int    `json:"booking_count"`
}

type MonthlyPointResponse struct {
	Month   string  `json:"month"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

type SnapshotResponse struct {
	Overview             OverviewResponse        `json:"overview"`
	BookingsByStatus     []StatusCountResponse   `json:"bookings_by_status"`
	TopHotels            []TopHotelResponse      `json:"top_hotels"`
	RoomTypeDistribution []RoomTypeCountResponse `json:"room_type_distribution"`
	MonthlyBookings      []MonthlyPointResponse  `json:"monthly_bookings"`
}

func NewSnapshotResponse(s *stats.Snapshot) SnapshotResponse {
	resp := SnapshotResponse{
		Overview: OverviewResponse{
			TotalHotels:      s.Overview.TotalHotels,
			TotalRooms:       s.Overview.TotalRooms,
			TotalBookings:    s.Overview.TotalBookings,
			TotalUsers:       s.Overview.TotalUsers,
			TotalRevenue:     s.Overview.TotalRevenue,
			ConfirmedRevenue: s.Overview.ConfirmedRevenue,
			AvgBookingValue:  s.Overview.AvgBookingValue,
			TotalUnitsBooked: s.Overview.TotalUnitsBooked,
		},
		BookingsByStatus:     make([]StatusCountResponse, len(s.BookingsByStatus)),
		TopHotels:            make([]TopHotelResponse, len(s.TopHotels)),
		RoomTypeDistribution: make([]RoomTypeCountResponse, len(s.RoomTypeDistribution)),
		MonthlyBookings:      make([]MonthlyPointResponse, len(s.MonthlyBookings)),
	}
	for i, sc := range s.BookingsByStatus {
		resp.BookingsByStatus[i] = StatusCountResponse{Status: sc.Status, Count: sc.Count}
	}
	for i, th := range s.TopHotels {
		resp.TopHotels[i] = TopHotelResponse{Name: th.Name, BookingCount: th.BookingCount, TotalRevenue: th.TotalRevenue}
	}
	for i, rc := range s.RoomTypeDistribution {
		resp.RoomTypeDistribution[i] = RoomTypeCountResponse{RoomType: rc.RoomType, BookingCount: rc.BookingCount}
	}
	for i, mp := range s.MonthlyBookings {
		resp.MonthlyBookings[i] = MonthlyPointResponse{Month: mp.Month, Count: mp.Count, Revenue: mp.Revenue}
	}
	return resp
}
