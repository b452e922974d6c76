package booking_test

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ranvijay-3589/hotel-booking-backend/internal/booking"
	"github.com/Ranvijay-3589/hotel-booking-backend/internal/pkg/request"
	"github.com/Ranvijay-3589/hotel-booking-backend/internal/room"
)

// memStore is an in-memory implementation of booking.Repository. Transact
// holds a single mutex for the whole callback, which models the row-lock
// serialization the pgx repository gets from SELECT ... FOR UPDATE.
type memStore struct {
	mu       sync.Mutex
	rooms    map[string]room.Room
	hotels   map[string]memHotel
	bookings map[string]booking.Booking
	seq      int
}

type memHotel struct {
	name     string
	location string
}

func newMemStore() *memStore {
	return &memStore{
		rooms:    make(map[string]room.Room),
		hotels:   make(map[string]memHotel),
		bookings: make(map[string]booking.Booking),
	}
}

func (s *memStore) addRoom(id, hotelID string, price float64, totalUnits int) {
	s.hotels[hotelID] = memHotel{name: "Hotel " + hotelID, location: "Testville"}
	s.rooms[id] = room.Room{
		ID:            id,
		HotelID:       hotelID,
		RoomType:      "double",
		PricePerNight: price,
		TotalUnits:    totalUnits,
		Capacity:      2,
	}
}

type memTx struct {
	s *memStore
}

func (s *memStore) Transact(ctx context.Context, fn func(tx booking.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&memTx{s: s})
}

func (t *memTx) RoomForUpdate(ctx context.Context, roomID string) (*room.Room, error) {
	rm, ok := t.s.rooms[roomID]
	if !ok {
		return nil, room.ErrNotFound
	}
	return &rm, nil
}

func (t *memTx) SumOverlappingUnits(ctx context.Context, roomID string, checkIn, checkOut time.Time, excludeBookingID string) (int, error) {
	return t.s.sumOverlapping(roomID, checkIn, checkOut, excludeBookingID), nil
}

func (t *memTx) GetByID(ctx context.Context, id string) (*booking.Booking, error) {
	b, ok := t.s.bookings[id]
	if !ok {
		return nil, booking.ErrNotFound
	}
	return &b, nil
}

func (t *memTx) Insert(ctx context.Context, b *booking.Booking) error {
	t.s.seq++
	b.ID = fmt.Sprintf("bk-%04d", t.s.seq)
	b.CreatedAt = time.Now().UTC()
	b.UpdatedAt = b.CreatedAt
	t.s.bookings[b.ID] = *b
	return nil
}

func (t *memTx) Update(ctx context.Context, b *booking.Booking) error {
	cur, ok := t.s.bookings[b.ID]
	if !ok {
		return booking.ErrNotFound
	}
	if cur.Status == booking.StatusCancelled {
		return booking.ErrBookingCancelled
	}
	b.Status = cur.Status
	b.UpdatedAt = time.Now().UTC()
	t.s.bookings[b.ID] = *b
	return nil
}

func (s *memStore) sumOverlapping(roomID string, checkIn, checkOut time.Time, excludeBookingID string) int {
	total := 0
	for _, b := range s.bookings {
		if b.RoomID != roomID || !b.Active() || b.ID == excludeBookingID {
			continue
		}
		if booking.Overlaps(b.CheckIn, b.CheckOut, checkIn, checkOut) {
			total += b.UnitsBooked
		}
	}
	return total
}

func (s *memStore) SumOverlappingUnits(ctx context.Context, roomID string, checkIn, checkOut time.Time, excludeBookingID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sumOverlapping(roomID, checkIn, checkOut, excludeBookingID), nil
}

func (s *memStore) GetByID(ctx context.Context, id string) (*booking.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, booking.ErrNotFound
	}
	if rm, ok := s.rooms[b.RoomID]; ok {
		b.RoomType = rm.RoomType
		b.PricePerNight = rm.PricePerNight
	}
	if h, ok := s.hotels[b.HotelID]; ok {
		b.HotelName = h.name
		b.HotelLocation = h.location
	}
	return &b, nil
}

func (s *memStore) ListByUser(ctx context.Context, userID string, params request.ListParams) ([]*booking.Booking, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*booking.Booking
	for id := range s.bookings {
		b := s.bookings[id]
		if b.UserID == userID {
			out = append(out, &b)
		}
	}
	return out, len(out), nil
}

func (s *memStore) TransitionStatus(ctx context.Context, id string, from []booking.Status, to booking.Status) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return false, nil
	}
	for _, f := range from {
		if b.Status == f {
			b.Status = to
			b.UpdatedAt = time.Now().UTC()
			s.bookings[id] = b
			return true, nil
		}
	}
	return false, nil
}

// fakeRoomService serves the availability probe from the same store.
type fakeRoomService struct {
	s *memStore
}

func (f *fakeRoomService) GetByID(ctx context.Context, id string) (*room.Room, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	rm, ok := f.s.rooms[id]
	if !ok {
		return nil, room.ErrNotFound
	}
	return &rm, nil
}

func (f *fakeRoomService) ListByHotel(ctx context.Context, hotelID string) ([]*room.Room, error) {
	return nil, nil
}

func newTestService(store *memStore) booking.Service {
	return booking.NewService(store, &fakeRoomService{s: store}, time.Second)
}

// date returns midnight UTC, offset days from a fixed point safely in the
// future so check-in validation never trips.
func date(offset int) time.Time {
	now := time.Now().UTC()
	base := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, 30+offset)
}

func TestOverlaps(t *testing.T) {
	d := func(day int) time.Time {
		return time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{"back-to-back checkout/checkin", d(10), d(12), d(12), d(15), false},
		{"overlapping ranges", d(10), d(13), d(12), d(14), true},
		{"identical ranges", d(10), d(12), d(10), d(12), true},
		{"contained range", d(10), d(20), d(12), d(14), true},
		{"disjoint ranges", d(10), d(12), d(20), d(22), false},
		{"touching the other way", d(12), d(15), d(10), d(12), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, booking.Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// Overlap is symmetric
			assert.Equal(t, tt.want, booking.Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestNights(t *testing.T) {
	in := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	out := time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 3, booking.Nights(in, out))
	assert.Equal(t, 1, booking.Nights(in, in.AddDate(0, 0, 1)))
}

func TestCreateBooking(t *testing.T) {
	store := newMemStore()
	store.addRoom("room-1", "hotel-1", 100.0, 2)
	svc := newTestService(store)
	ctx := context.Background()

	b, err := svc.Create(ctx, booking.CreateRequest{
		UserID:   "user-1",
		RoomID:   "room-1",
		CheckIn:  date(0),
		CheckOut: date(3),
		Units:    2,
	})
	require.NoError(t, err)

	assert.Equal(t, booking.StatusRequested, b.Status)
	assert.Equal(t, 2, b.UnitsBooked)
	// 3 nights x 100.00 x 2 units
	assert.Equal(t, 600.0, b.TotalPrice)
	assert.Equal(t, "Hotel hotel-1", b.HotelName)
	assert.Equal(t, "Testville", b.HotelLocation)
	assert.Equal(t, "double", b.RoomType)
}

func TestCreateBooking_Validation(t *testing.T) {
	store := newMemStore()
	store.addRoom("room-1", "hotel-1", 50.0, 2)
	svc := newTestService(store)
	ctx := context.Background()

	req := func(mod func(*booking.CreateRequest)) booking.CreateRequest {
		r := booking.CreateRequest{
			UserID:   "user-1",
			RoomID:   "room-1",
			CheckIn:  date(0),
			CheckOut: date(2),
			Units:    1,
		}
		mod(&r)
		return r
	}

	_, err := svc.Create(ctx, req(func(r *booking.CreateRequest) { r.RoomID = "nope" }))
	assert.ErrorIs(t, err, booking.ErrRoomNotFound)

	_, err = svc.Create(ctx, req(func(r *booking.CreateRequest) { r.Units = 0 }))
	assert.ErrorIs(t, err, booking.ErrInvalidUnits)

	_, err = svc.Create(ctx, req(func(r *booking.CreateRequest) { r.Units = 3 }))
	assert.ErrorIs(t, err, booking.ErrUnitsExceedStock)

	yesterday := time.Now().UTC().AddDate(0, 0, -1)
	_, err = svc.Create(ctx, req(func(r *booking.CreateRequest) {
		r.CheckIn = yesterday
		r.CheckOut = yesterday.AddDate(0, 0, 2)
	}))
	assert.ErrorIs(t, err, booking.ErrCheckInPast)

	_, err = svc.Create(ctx, req(func(r *booking.CreateRequest) { r.CheckOut = r.CheckIn }))
	assert.ErrorIs(t, err, booking.ErrInvalidDateRange)

	// One night is the minimum valid stay
	_, err = svc.Create(ctx, req(func(r *booking.CreateRequest) { r.CheckOut = r.CheckIn.AddDate(0, 0, 1) }))
	assert.NoError(t, err)
}

func TestCreateBooking_Conflict(t *testing.T) {
	store := newMemStore()
	store.addRoom("room-1", "hotel-1", 80.0, 2)
	svc := newTestService(store)
	ctx := context.Background()

	_, err := svc.Create(ctx, booking.CreateRequest{
		UserID: "user-1", RoomID: "room-1", CheckIn: date(0), CheckOut: date(4), Units: 2,
	})
	require.NoError(t, err)

	// Overlapping range, all units taken
	_, err = svc.Create(ctx, booking.CreateRequest{
		UserID: "user-2", RoomID: "room-1", CheckIn: date(2), CheckOut: date(6), Units: 1,
	})
	var noAvail *booking.NoAvailabilityError
	require.ErrorAs(t, err, &noAvail)
	assert.Equal(t, 0, noAvail.Available)

	// Back-to-back: new check-in on the existing check-out day is fine
	_, err = svc.Create(ctx, booking.CreateRequest{
		UserID: "user-2", RoomID: "room-1", CheckIn: date(4), CheckOut: date(6), Units: 2,
	})
	assert.NoError(t, err)
}

func TestCreateBooking_MultiUnitCounting(t *testing.T) {
	store := newMemStore()
	store.addRoom("room-1", "hotel-1", 80.0, 3)
	svc := newTestService(store)
	ctx := context.Background()

	// A 2-unit booking contributes its full quantity to the overlap sum
	_, err := svc.Create(ctx, booking.CreateRequest{
		UserID: "user-1", RoomID: "room-1", CheckIn: date(0), CheckOut: date(3), Units: 2,
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, booking.CreateRequest{
		UserID: "user-2", RoomID: "room-1", CheckIn: date(1), CheckOut: date(4), Units: 2,
	})
	var noAvail *booking.NoAvailabilityError
	require.ErrorAs(t, err, &noAvail)
	assert.Equal(t, 1, noAvail.Available)

	_, err = svc.Create(ctx, booking.CreateRequest{
		UserID: "user-2", RoomID: "room-1", CheckIn: date(1), CheckOut: date(4), Units: 1,
	})
	assert.NoError(t, err)
}

func TestCancelReleasesInventory(t *testing.T) {
	store := newMemStore()
	store.addRoom("room-1", "hotel-1", 120.0, 1)
	svc := newTestService(store)
	ctx := context.Background()

	b, err := svc.Create(ctx, booking.CreateRequest{
		UserID: "user-1", RoomID: "room-1", CheckIn: date(0), CheckOut: date(2), Units: 1,
	})
	require.NoError(t, err)

	// Inventory exhausted while the booking is active
	_, err = svc.Create(ctx, booking.CreateRequest{
		UserID: "user-2", RoomID: "room-1", CheckIn: date(0), CheckOut: date(2), Units: 1,
	})
	var noAvail *booking.NoAvailabilityError
	require.ErrorAs(t, err, &noAvail)

	require.NoError(t, svc.Cancel(ctx, b.ID, "user-1"))

	// Cancelled units are released immediately
	_, err = svc.Create(ctx, booking.CreateRequest{
		UserID: "user-2", RoomID: "room-1", CheckIn: date(0), CheckOut: date(2), Units: 1,
	})
	assert.NoError(t, err)
}

func TestCancel(t *testing.T) {
	store := newMemStore()
	store.addRoom("room-1", "hotel-1", 120.0, 1)
	svc := newTestService(store)
	ctx := context.Background()

	b, err := svc.Create(ctx, booking.CreateRequest{
		UserID: "user-1", RoomID: "room-1", CheckIn: date(0), CheckOut: date(2), Units: 1,
	})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Cancel(ctx, b.ID, "user-2"), booking.ErrPermissionDenied)
	assert.ErrorIs(t, svc.Cancel(ctx, "bk-9999", "user-1"), booking.ErrNotFound)

	require.NoError(t, svc.Cancel(ctx, b.ID, "user-1"))
	// Cancelling again is a no-op success
	assert.NoError(t, svc.Cancel(ctx, b.ID, "user-1"))

	got, err := store.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, booking.StatusCancelled, got.Status)
}

func TestConfirm(t *testing.T) {
	store := newMemStore()
	store.addRoom("room-1", "hotel-1", 120.0, 1)
	svc := newTestService(store)
	ctx := context.Background()

	b, err := svc.Create(ctx, booking.CreateRequest{
		UserID: "user-1", RoomID: "room-1", CheckIn: date(0), CheckOut: date(2), Units: 1,
	})
	require.NoError(t, err)

	_, err = svc.Confirm(ctx, b.ID, "user-2")
	assert.ErrorIs(t, err, booking.ErrPermissionDenied)

	got, err := svc.Confirm(ctx, b.ID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, booking.StatusConfirmed, got.Status)

	// Confirming a confirmed booking is a no-op
	got, err = svc.Confirm(ctx, b.ID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, booking.StatusConfirmed, got.Status)

	require.NoError(t, svc.Cancel(ctx, b.ID, "user-1"))
	_, err = svc.Confirm(ctx, b.ID, "user-1")
	assert.ErrorIs(t, err, booking.ErrBookingCancelled)
}

// cancelBehindStore models a cancel committing right behind a status read:
// every GetByID returns the state as read, then flips the row to cancelled.
type cancelBehindStore struct {
	*memStore
}

func (s *cancelBehindStore) GetByID(ctx context.Context, id string) (*booking.Booking, error) {
	b, err := s.memStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	_, _ = s.memStore.TransitionStatus(ctx, id,
		[]booking.Status{booking.StatusRequested, booking.StatusConfirmed}, booking.StatusCancelled)
	return b, nil
}

func TestConfirm_CancelWinsRace(t *testing.T) {
	store := newMemStore()
	store.addRoom("room-1", "hotel-1", 120.0, 1)
	svc := newTestService(store)
	ctx := context.Background()

	b, err := svc.Create(ctx, booking.CreateRequest{
		UserID: "user-1", RoomID: "room-1", CheckIn: date(0), CheckOut: date(2), Units: 1,
	})
	require.NoError(t, err)

	racing := booking.NewService(&cancelBehindStore{memStore: store}, &fakeRoomService{s: store}, time.Second)
	_, err = racing.Confirm(ctx, b.ID, "user-1")
	assert.ErrorIs(t, err, booking.ErrBookingCancelled)

	// Cancelled stays terminal; the confirm must not revive the row
	got, err := store.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, booking.StatusCancelled, got.Status)

	// The cancel released the units, so the room stays bookable
	_, err = svc.Create(ctx, booking.CreateRequest{
		UserID: "user-2", RoomID: "room-1", CheckIn: date(0), CheckOut: date(2), Units: 1,
	})
	assert.NoError(t, err)
}

func TestCancel_CancelWinsRace(t *testing.T) {
	store := newMemStore()
	store.addRoom("room-1", "hotel-1", 120.0, 1)
	svc := newTestService(store)
	ctx := context.Background()

	b, err := svc.Create(ctx, booking.CreateRequest{
		UserID: "user-1", RoomID: "room-1", CheckIn: date(0), CheckOut: date(2), Units: 1,
	})
	require.NoError(t, err)

	// Losing the race to another cancel is still a success
	racing := booking.NewService(&cancelBehindStore{memStore: store}, &fakeRoomService{s: store}, time.Second)
	assert.NoError(t, racing.Cancel(ctx, b.ID, "user-1"))

	got, err := store.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, booking.StatusCancelled, got.Status)
}

func TestUpdate_ExcludesSelf(t *testing.T) {
	store := newMemStore()
	store.addRoom("room-1", "hotel-1", 100.0, 1)
	svc := newTestService(store)
	ctx := context.Background()

	b, err := svc.Create(ctx, booking.CreateRequest{
		UserID: "user-1", RoomID: "room-1", CheckIn: date(0), CheckOut: date(2), Units: 1,
	})
	require.NoError(t, err)

	// Shift by one day on a fully-booked room: must not conflict with itself
	newIn := date(1)
	newOut := date(3)
	updated, err := svc.Update(ctx, b.ID, booking.UpdateRequest{CheckIn: &newIn, CheckOut: &newOut}, "user-1")
	require.NoError(t, err)
	assert.Equal(t, newIn, updated.CheckIn)
	assert.Equal(t, newOut, updated.CheckOut)
	// Price recomputed: 2 nights x 100.00 x 1 unit
	assert.Equal(t, 200.0, updated.TotalPrice)
}

func TestUpdate_Validation(t *testing.T) {
	store := newMemStore()
	store.addRoom("room-1", "hotel-1", 100.0, 2)
	svc := newTestService(store)
	ctx := context.Background()

	b, err := svc.Create(ctx, booking.CreateRequest{
		UserID: "user-1", RoomID: "room-1", CheckIn: date(0), CheckOut: date(2), Units: 1,
	})
	require.NoError(t, err)

	_, err = svc.Update(ctx, b.ID, booking.UpdateRequest{}, "user-2")
	assert.ErrorIs(t, err, booking.ErrPermissionDenied)

	badUnits := 0
	_, err = svc.Update(ctx, b.ID, booking.UpdateRequest{Units: &badUnits}, "user-1")
	assert.ErrorIs(t, err, booking.ErrInvalidUnits)

	tooMany := 3
	_, err = svc.Update(ctx, b.ID, booking.UpdateRequest{Units: &tooMany}, "user-1")
	assert.ErrorIs(t, err, booking.ErrUnitsExceedStock)

	sameDay := date(0)
	_, err = svc.Update(ctx, b.ID, booking.UpdateRequest{CheckOut: &sameDay}, "user-1")
	assert.ErrorIs(t, err, booking.ErrInvalidDateRange)

	require.NoError(t, svc.Cancel(ctx, b.ID, "user-1"))
	_, err = svc.Update(ctx, b.ID, booking.UpdateRequest{}, "user-1")
	assert.ErrorIs(t, err, booking.ErrBookingCancelled)
}

func TestUpdate_Conflict(t *testing.T) {
	store := newMemStore()
	store.addRoom("room-1", "hotel-1", 100.0, 1)
	svc := newTestService(store)
	ctx := context.Background()

	b1, err := svc.Create(ctx, booking.CreateRequest{
		UserID: "user-1", RoomID: "room-1", CheckIn: date(0), CheckOut: date(2), Units: 1,
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, booking.CreateRequest{
		UserID: "user-2", RoomID: "room-1", CheckIn: date(4), CheckOut: date(6), Units: 1,
	})
	require.NoError(t, err)

	// Moving b1 onto the other user's range must conflict
	newIn := date(4)
	newOut := date(6)
	_, err = svc.Update(ctx, b1.ID, booking.UpdateRequest{CheckIn: &newIn, CheckOut: &newOut}, "user-1")
	var noAvail *booking.NoAvailabilityError
	require.ErrorAs(t, err, &noAvail)
	assert.Equal(t, 0, noAvail.Available)
}

func TestAvailability(t *testing.T) {
	store := newMemStore()
	store.addRoom("room-1", "hotel-1", 100.0, 3)
	svc := newTestService(store)
	ctx := context.Background()

	_, err := svc.Create(ctx, booking.CreateRequest{
		UserID: "user-1", RoomID: "room-1", CheckIn: date(0), CheckOut: date(3), Units: 2,
	})
	require.NoError(t, err)

	a, err := svc.Availability(ctx, "room-1", date(1), date(2))
	require.NoError(t, err)
	assert.Equal(t, 3, a.TotalUnits)
	assert.Equal(t, 2, a.Booked)
	assert.Equal(t, 1, a.Available)

	// Non-overlapping probe sees full inventory
	a, err = svc.Availability(ctx, "room-1", date(3), date(5))
	require.NoError(t, err)
	assert.Equal(t, 0, a.Booked)
	assert.Equal(t, 3, a.Available)

	_, err = svc.Availability(ctx, "nope", date(0), date(1))
	assert.ErrorIs(t, err, booking.ErrRoomNotFound)

	_, err = svc.Availability(ctx, "room-1", date(1), date(1))
	assert.ErrorIs(t, err, booking.ErrInvalidDateRange)
}

func TestConcurrentExhaustion(t *testing.T) {
	store := newMemStore()
	store.addRoom("room-1", "hotel-1", 100.0, 1)
	svc := newTestService(store)

	req := booking.CreateRequest{
		RoomID: "room-1", CheckIn: date(0), CheckOut: date(2), Units: 1,
	}

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r := req
			r.UserID = fmt.Sprintf("user-%d", i)
			_, errs[i] = svc.Create(context.Background(), r)
		}(i)
	}
	wg.Wait()

	var successes, conflicts int
	for _, err := range errs {
		if err == nil {
			successes++
			continue
		}
		var noAvail *booking.NoAvailabilityError
		require.ErrorAs(t, err, &noAvail)
		assert.Equal(t, 0, noAvail.Available)
		conflicts++
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, conflicts)
}

// TestNoOversell drives random create/cancel sequences and asserts after
// every operation that no day ever has more active units than the room holds.
func TestNoOversell(t *testing.T) {
	const totalUnits = 3

	store := newMemStore()
	store.addRoom("room-1", "hotel-1", 100.0, totalUnits)
	svc := newTestService(store)
	ctx := context.Background()
	rng := rand.New(rand.NewSource(42))

	checkInvariant := func() {
		store.mu.Lock()
		defer store.mu.Unlock()
		for day := 0; day < 40; day++ {
			dayStart := date(day)
			units := 0
			for _, b := range store.bookings {
				if b.Active() && booking.Overlaps(b.CheckIn, b.CheckOut, dayStart, dayStart.AddDate(0, 0, 1)) {
					units += b.UnitsBooked
				}
			}
			require.LessOrEqual(t, units, totalUnits, "oversold on day %d", day)
		}
	}

	var created []string
	for i := 0; i < 200; i++ {
		if rng.Intn(4) == 0 && len(created) > 0 {
			id := created[rng.Intn(len(created))]
			err := svc.Cancel(ctx, id, "user-1")
			require.NoError(t, err)
		} else {
			start := rng.Intn(30)
			length := 1 + rng.Intn(5)
			b, err := svc.Create(ctx, booking.CreateRequest{
				UserID:   "user-1",
				RoomID:   "room-1",
				CheckIn:  date(start),
				CheckOut: date(start + length),
				Units:    1 + rng.Intn(totalUnits),
			})
			if err == nil {
				created = append(created, b.ID)
			} else {
				var noAvail *booking.NoAvailabilityError
				require.ErrorAs(t, err, &noAvail, "unexpected error: %v", err)
			}
		}
		checkInvariant()
	}
}
