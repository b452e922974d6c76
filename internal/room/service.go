package room

import "context"

type Service interface {
	GetByID(ctx context.Context, id string) (*Room, error)
	ListByHotel(ctx context.Context, hotelID string) ([]*Room, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetByID(ctx context.Context, id string) (*Room, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListByHotel(ctx context.Context, hotelID string) ([]*Room, error) {
	return s.repo.ListByHotel(ctx, hotelID)
}
