package booking

import (
	"context"
	"errors"
	"time"

	"github.com/Ranvijay-3589/hotel-booking-backend/internal/pkg/request"
	"github.com/Ranvijay-3589/hotel-booking-backend/internal/room"
)

type CreateRequest struct {
	UserID   string
	RoomID   string
	CheckIn  time.Time
	CheckOut time.Time
	Units    int
}

type UpdateRequest struct {
	CheckIn  *time.Time
	CheckOut *time.Time
	Units    *int
}

// Service is the single authority for creating, updating, cancelling and
// confirming bookings. Create and Update run their availability check and
// write inside one storage transaction so concurrent requests cannot
// oversell a room. Failures are returned as typed errors; the service never
// logs or retries on its own.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	Update(ctx context.Context, id string, req UpdateRequest, userID string) (*Booking, error)
	Cancel(ctx context.Context, id string, userID string) error
	Confirm(ctx context.Context, id string, userID string) (*Booking, error)
	GetByID(ctx context.Context, id string, userID string) (*Booking, error)
	ListByUser(ctx context.Context, userID string, params request.ListParams) ([]*Booking, int, error)
	Availability(ctx context.Context, roomID string, checkIn, checkOut time.Time) (*Availability, error)
}

type service struct {
	repo        Repository
	roomService room.Service
	txTimeout   time.Duration
	now         func() time.Time
}

func NewService(repo Repository, roomService room.Service, txTimeout time.Duration) Service {
	if txTimeout <= 0 {
		txTimeout = 5 * time.Second
	}
	return &service{
		repo:        repo,
		roomService: roomService,
		txTimeout:   txTimeout,
		now:         time.Now,
	}
}

// dateOnly truncates a timestamp to its UTC calendar date.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *service) today() time.Time {
	return dateOnly(s.now())
}

func (s *service) validateDates(checkIn, checkOut time.Time) error {
	if checkIn.Before(s.today()) {
		return ErrCheckInPast
	}
	if !checkOut.After(checkIn) {
		return ErrInvalidDateRange
	}
	return nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	checkIn := dateOnly(req.CheckIn)
	checkOut := dateOnly(req.CheckOut)

	ctx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	var created Booking
	err := s.repo.Transact(ctx, func(tx Tx) error {
		rm, err := tx.RoomForUpdate(ctx, req.RoomID)
		if err != nil {
			if errors.Is(err, room.ErrNotFound) {
				return ErrRoomNotFound
			}
			return err
		}

		if req.Units < 1 {
			return ErrInvalidUnits
		}
		if req.Units > rm.TotalUnits {
			return ErrUnitsExceedStock
		}
		if err := s.validateDates(checkIn, checkOut); err != nil {
			return err
		}

		committed, err := tx.SumOverlappingUnits(ctx, rm.ID, checkIn, checkOut, "")
		if err != nil {
			return err
		}
		if committed+req.Units > rm.TotalUnits {
			return &NoAvailabilityError{Available: max(0, rm.TotalUnits-committed)}
		}

		created = Booking{
			RoomID:      rm.ID,
			HotelID:     rm.HotelID,
			UserID:      req.UserID,
			CheckIn:     checkIn,
			CheckOut:    checkOut,
			UnitsBooked: req.Units,
			TotalPrice:  float64(Nights(checkIn, checkOut)) * rm.PricePerNight * float64(req.Units),
			Status:      StatusRequested,
		}
		return tx.Insert(ctx, &created)
	})
	if err != nil {
		return nil, err
	}

	// Re-read through the joined view for the confirmation display fields.
	return s.repo.GetByID(ctx, created.ID)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest, userID string) (*Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	err := s.repo.Transact(ctx, func(tx Tx) error {
		b, err := tx.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if b.UserID != userID {
			return ErrPermissionDenied
		}
		if b.Status == StatusCancelled {
			return ErrBookingCancelled
		}

		checkIn := b.CheckIn
		checkOut := b.CheckOut
		units := b.UnitsBooked
		if req.CheckIn != nil {
			checkIn = dateOnly(*req.CheckIn)
		}
		if req.CheckOut != nil {
			checkOut = dateOnly(*req.CheckOut)
		}
		if req.Units != nil {
			units = *req.Units
		}

		rm, err := tx.RoomForUpdate(ctx, b.RoomID)
		if err != nil {
			if errors.Is(err, room.ErrNotFound) {
				return ErrRoomNotFound
			}
			return err
		}

		if units < 1 {
			return ErrInvalidUnits
		}
		if units > rm.TotalUnits {
			return ErrUnitsExceedStock
		}
		if err := s.validateDates(checkIn, checkOut); err != nil {
			return err
		}

		// The booking must not conflict with its own prior reservation.
		committed, err := tx.SumOverlappingUnits(ctx, rm.ID, checkIn, checkOut, b.ID)
		if err != nil {
			return err
		}
		if committed+units > rm.TotalUnits {
			return &NoAvailabilityError{Available: max(0, rm.TotalUnits-committed)}
		}

		b.CheckIn = checkIn
		b.CheckOut = checkOut
		b.UnitsBooked = units
		b.TotalPrice = float64(Nights(checkIn, checkOut)) * rm.PricePerNight * float64(units)
		return tx.Update(ctx, b)
	})
	if err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

// Cancel releases the booking's units back into inventory by flipping its
// status; overlap sums filter by status, so no separate counter is touched.
// Cancelling an already-cancelled booking is a no-op success.
func (s *service) Cancel(ctx context.Context, id string, userID string) error {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if b.UserID != userID {
		return ErrPermissionDenied
	}
	if b.Status == StatusCancelled {
		return nil
	}
	// A lost race means another cancel landed first; same terminal outcome.
	_, err = s.repo.TransitionStatus(ctx, id, []Status{StatusRequested, StatusConfirmed}, StatusCancelled)
	return err
}

// Confirm transitions a requested booking to confirmed. The units were
// already counted while requested, so no inventory recheck happens here.
// The transition is conditional on the row still being requested; a cancel
// committing after the read cannot be overwritten back to confirmed.
func (s *service) Confirm(ctx context.Context, id string, userID string) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.UserID != userID {
		return nil, ErrPermissionDenied
	}
	switch b.Status {
	case StatusCancelled:
		return nil, ErrBookingCancelled
	case StatusConfirmed:
		return b, nil
	}

	ok, err := s.repo.TransitionStatus(ctx, id, []Status{StatusRequested}, StatusConfirmed)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Lost a race; report whatever state won.
		b, err = s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if b.Status == StatusConfirmed {
			return b, nil
		}
		return nil, ErrBookingCancelled
	}
	b.Status = StatusConfirmed
	return b, nil
}

func (s *service) GetByID(ctx context.Context, id string, userID string) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.UserID != userID {
		return nil, ErrPermissionDenied
	}
	return b, nil
}

func (s *service) ListByUser(ctx context.Context, userID string, params request.ListParams) ([]*Booking, int, error) {
	return s.repo.ListByUser(ctx, userID, params)
}

func (s *service) Availability(ctx context.Context, roomID string, checkIn, checkOut time.Time) (*Availability, error) {
	in := dateOnly(checkIn)
	out := dateOnly(checkOut)
	if !out.After(in) {
		return nil, ErrInvalidDateRange
	}

	rm, err := s.roomService.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, room.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	booked, err := s.repo.SumOverlappingUnits(ctx, roomID, in, out, "")
	if err != nil {
		return nil, err
	}

	return &Availability{
		RoomID:     roomID,
		CheckIn:    in,
		CheckOut:   out,
		TotalUnits: rm.TotalUnits,
		Booked:     booked,
		Available:  max(0, rm.TotalUnits-booked),
	}, nil
}
