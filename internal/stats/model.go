package stats

// Overview aggregates the headline numbers for the whole platform. Revenue
// figures count active bookings only; cancelled rows are excluded.
type Overview struct {
	TotalHotels      int
	TotalRooms       int
	TotalBookings    int
	TotalUsers       int
	TotalRevenue     float64
	ConfirmedRevenue float64
	AvgBookingValue  float64
	TotalUnitsBooked int
}

type StatusCount struct {
	Status string
	Count  int
}

type TopHotel struct {
	Name         string
	BookingCount int
	TotalRevenue float64
}

type RoomTypeCount struct {
	RoomType     string
	BookingCount int
}

// MonthlyPoint is one month of the booking trend, keyed as "2006-01".
type MonthlyPoint struct {
	Month   string
	Count   int
	Revenue float64
}

type Snapshot struct {
	Overview             Overview
	BookingsByStatus     []StatusCount
	TopHotels            []TopHotel
	RoomTypeDistribution []RoomTypeCount
	MonthlyBookings      []MonthlyPoint
}
