package stats

import (
	"context"
	"math"
)

const (
	topHotelsLimit = 10
	trendMonths    = 12
)

type Service interface {
	Snapshot(ctx context.Context) (*Snapshot, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Snapshot(ctx context.Context) (*Snapshot, error) {
	overview, err := s.repo.Overview(ctx)
	if err != nil {
		return nil, err
	}
	overview.AvgBookingValue = math.Round(overview.AvgBookingValue*100) / 100

	byStatus, err := s.repo.BookingsByStatus(ctx)
	if err != nil {
		return nil, err
	}

	topHotels, err := s.repo.TopHotels(ctx, topHotelsLimit)
	if err != nil {
		return nil, err
	}

	roomTypes, err := s.repo.RoomTypeDistribution(ctx)
	if err != nil {
		return nil, err
	}

	monthly, err := s.repo.MonthlyBookings(ctx, trendMonths)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		Overview:             *overview,
		BookingsByStatus:     byStatus,
		TopHotels:            topHotels,
		RoomTypeDistribution: roomTypes,
		MonthlyBookings:      monthly,
	}, nil
}
