package seats

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"cinely/internal/shared/constants"
)

type fakeSeatRepo struct {
	seats          map[uuid.UUID]Seat
	auditoriumHits int
}

func newFakeSeatRepo() *fakeSeatRepo {
	return &fakeSeatRepo{seats: make(map[uuid.UUID]Seat)}
}

func (f *fakeSeatRepo) addSeat(auditoriumID uuid.UUID, row, number int) Seat {
	seat := Seat{
		ID:           uuid.New(),
		AuditoriumID: auditoriumID,
		Row:          row,
		Number:       number,
	}
	f.seats[seat.ID] = seat
	return seat
}

func (f *fakeSeatRepo) GetByID(ctx context.Context, id uuid.UUID) (*Seat, error) {
	seat, ok := f.seats[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &seat, nil
}

func (f *fakeSeatRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]Seat, error) {
	var out []Seat
	for _, id := range ids {
		if seat, ok := f.seats[id]; ok {
			out = append(out, seat)
		}
	}
	return out, nil
}

func (f *fakeSeatRepo) GetByAuditoriumID(ctx context.Context, auditoriumID uuid.UUID) ([]Seat, error) {
	f.auditoriumHits++
	var out []Seat
	for _, seat := range f.seats {
		if seat.AuditoriumID == auditoriumID {
			out = append(out, seat)
		}
	}
	return out, nil
}

func (f *fakeSeatRepo) CreateBulk(ctx context.Context, seats []Seat) error {
	for i := range seats {
		f.seats[seats[i].ID] = seats[i]
	}
	return nil
}

func (f *fakeSeatRepo) DeleteByAuditoriumID(ctx context.Context, auditoriumID uuid.UUID) error {
	for id, seat := range f.seats {
		if seat.AuditoriumID == auditoriumID {
			delete(f.seats, id)
		}
	}
	return nil
}

func (f *fakeSeatRepo) DeleteOutsideGrid(ctx context.Context, auditoriumID uuid.UUID, rows, seatsPerRow int) error {
	for id, seat := range f.seats {
		if seat.AuditoriumID == auditoriumID && (seat.Row > rows || seat.Number > seatsPerRow) {
			delete(f.seats, id)
		}
	}
	return nil
}

// memoryCache is a map-backed stand-in for the Redis cache service.
type memoryCache struct {
	entries map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (m *memoryCache) Get(ctx context.Context, key string, dest interface{}) error {
	data, ok := m.entries[key]
	if !ok {
		return assert.AnError
	}
	return json.Unmarshal(data, dest)
}

func (m *memoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[key] = data
	return nil
}

func (m *memoryCache) Delete(ctx context.Context, key string) error {
	delete(m.entries, key)
	return nil
}

func (m *memoryCache) DeletePattern(ctx context.Context, pattern string) error {
	m.entries = make(map[string][]byte)
	return nil
}

func (m *memoryCache) Exists(ctx context.Context, key string) bool {
	_, ok := m.entries[key]
	return ok
}

func (m *memoryCache) Ping(ctx context.Context) error { return nil }

func TestGetSeat_NotFound(t *testing.T) {
	svc := NewService(newFakeSeatRepo(), nil)

	_, err := svc.GetSeat(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrSeatNotFound)
}

func TestGetSeatsByIDs_MissingSeatIsAnError(t *testing.T) {
	repo := newFakeSeatRepo()
	known := repo.addSeat(uuid.New(), 1, 1)
	svc := NewService(repo, nil)

	_, err := svc.GetSeatsByIDs(context.Background(), []uuid.UUID{known.ID, uuid.New()})

	assert.ErrorIs(t, err, ErrSeatNotFound)
}

func TestGetSeatsByIDs_EmptyInput(t *testing.T) {
	svc := NewService(newFakeSeatRepo(), nil)

	seats, err := svc.GetSeatsByIDs(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, seats)
}

func TestGetSeatsByAuditorium_ServedFromCache(t *testing.T) {
	repo := newFakeSeatRepo()
	auditoriumID := uuid.New()
	repo.addSeat(auditoriumID, 1, 1)
	repo.addSeat(auditoriumID, 1, 2)
	cacheSvc := newMemoryCache()
	svc := NewService(repo, cacheSvc)

	first, err := svc.GetSeatsByAuditorium(context.Background(), auditoriumID)
	require.NoError(t, err)
	second, err := svc.GetSeatsByAuditorium(context.Background(), auditoriumID)
	require.NoError(t, err)

	// Second call hits the cache, not the repository.
	assert.Equal(t, 1, repo.auditoriumHits)
	assert.Len(t, first, 2)
	assert.Len(t, second, 2)
	assert.True(t, cacheSvc.Exists(context.Background(), constants.CacheKeySeatLayout+auditoriumID.String()))
}
