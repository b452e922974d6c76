package user_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ranvijay-3589/hotel-booking-backend/internal/auth"
	"github.com/Ranvijay-3589/hotel-booking-backend/internal/user"
)

type memRepo struct {
	byEmail map[string]*user.User
	byID    map[string]*user.User
	seq     int
}

func newMemRepo() *memRepo {
	return &memRepo{
		byEmail: make(map[string]*user.User),
		byID:    make(map[string]*user.User),
	}
}

func (r *memRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if u, ok := r.byEmail[email]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, user.ErrNotFound
}

func (r *memRepo) GetByID(ctx context.Context, id string) (*user.User, error) {
	if u, ok := r.byID[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, user.ErrNotFound
}

func (r *memRepo) Create(ctx context.Context, u *user.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return user.ErrEmailAlreadyUsed
	}
	r.seq++
	u.ID = string(rune('a' + r.seq))
	u.CreatedAt = time.Now().UTC()
	cp := *u
	r.byEmail[u.Email] = &cp
	r.byID[u.ID] = &cp
	return nil
}

func (r *memRepo) UpdateLastLogin(ctx context.Context, id string, t time.Time) error {
	u, ok := r.byID[id]
	if !ok {
		return user.ErrNotFound
	}
	u.LastLoginAt = &t
	return nil
}

func newTestService(repo user.Repository) user.Service {
	// Minimum bcrypt cost keeps the tests fast
	return user.NewService(repo, auth.NewBcryptPasswordHasher(4))
}

func TestRegister(t *testing.T) {
	svc := newTestService(newMemRepo())
	ctx := context.Background()

	u, err := svc.Register(ctx, "  Alice@Example.COM ", "supersecret", " Alice ")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", u.Email)
	require.NotNil(t, u.DisplayName)
	assert.Equal(t, "Alice", *u.DisplayName)
	assert.NotEqual(t, "supersecret", u.PasswordHash)

	_, err = svc.Register(ctx, "alice@example.com", "supersecret", "")
	assert.ErrorIs(t, err, user.ErrEmailAlreadyUsed)

	_, err = svc.Register(ctx, "   ", "supersecret", "")
	assert.ErrorIs(t, err, user.ErrEmailRequired)

	_, err = svc.Register(ctx, "bob@example.com", "short", "")
	assert.ErrorIs(t, err, user.ErrPasswordTooShort)
}

func TestLogin(t *testing.T) {
	svc := newTestService(newMemRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice@example.com", "supersecret", "Alice")
	require.NoError(t, err)

	u, err := svc.Login(ctx, "alice@example.com", "supersecret")
	require.NoError(t, err)
	assert.NotNil(t, u.LastLoginAt)

	_, err = svc.Login(ctx, "alice@example.com", "wrongpassword")
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@example.com", "supersecret")
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}
