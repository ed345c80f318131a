package auditoriums

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"cinely/internal/cinemas"
	"cinely/internal/seats"
)

type fakeAuditoriumRepo struct {
	auditoriums map[uuid.UUID]Auditorium
}

func newFakeAuditoriumRepo() *fakeAuditoriumRepo {
	return &fakeAuditoriumRepo{auditoriums: make(map[uuid.UUID]Auditorium)}
}

func (f *fakeAuditoriumRepo) Create(ctx context.Context, a *Auditorium) error {
	f.auditoriums[a.ID] = *a
	return nil
}

func (f *fakeAuditoriumRepo) GetByID(ctx context.Context, id uuid.UUID) (*Auditorium, error) {
	a, ok := f.auditoriums[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &a, nil
}

func (f *fakeAuditoriumRepo) GetByCinemaID(ctx context.Context, cinemaID uuid.UUID) ([]Auditorium, error) {
	var out []Auditorium
	for _, a := range f.auditoriums {
		if a.CinemaID == cinemaID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAuditoriumRepo) Update(ctx context.Context, a *Auditorium) error {
	f.auditoriums[a.ID] = *a
	return nil
}

func (f *fakeAuditoriumRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.auditoriums, id)
	return nil
}

type fakeSeatRepo struct {
	seats map[uuid.UUID]seats.Seat
}

func newFakeSeatRepo() *fakeSeatRepo {
	return &fakeSeatRepo{seats: make(map[uuid.UUID]seats.Seat)}
}

func (f *fakeSeatRepo) GetByID(ctx context.Context, id uuid.UUID) (*seats.Seat, error) {
	s, ok := f.seats[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &s, nil
}

func (f *fakeSeatRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]seats.Seat, error) {
	var out []seats.Seat
	for _, id := range ids {
		if s, ok := f.seats[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSeatRepo) GetByAuditoriumID(ctx context.Context, auditoriumID uuid.UUID) ([]seats.Seat, error) {
	var out []seats.Seat
	for _, s := range f.seats {
		if s.AuditoriumID == auditoriumID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSeatRepo) CreateBulk(ctx context.Context, newSeats []seats.Seat) error {
	for _, s := range newSeats {
		f.seats[s.ID] = s
	}
	return nil
}

func (f *fakeSeatRepo) DeleteByAuditoriumID(ctx context.Context, auditoriumID uuid.UUID) error {
	for id, s := range f.seats {
		if s.AuditoriumID == auditoriumID {
			delete(f.seats, id)
		}
	}
	return nil
}

func (f *fakeSeatRepo) DeleteOutsideGrid(ctx context.Context, auditoriumID uuid.UUID, rows, seatsPerRow int) error {
	for id, s := range f.seats {
		if s.AuditoriumID == auditoriumID && (s.Row > rows || s.Number > seatsPerRow) {
			delete(f.seats, id)
		}
	}
	return nil
}

type fakeCinemaRepo struct {
	cinemas map[uuid.UUID]cinemas.Cinema
}

func newFakeCinemaRepo() *fakeCinemaRepo {
	return &fakeCinemaRepo{cinemas: make(map[uuid.UUID]cinemas.Cinema)}
}

func (f *fakeCinemaRepo) addCinema() uuid.UUID {
	id := uuid.New()
	f.cinemas[id] = cinemas.Cinema{ID: id, Name: "Test Cinema", City: "Skopje", Address: "Main St 1"}
	return id
}

func (f *fakeCinemaRepo) Create(ctx context.Context, c *cinemas.Cinema) error {
	f.cinemas[c.ID] = *c
	return nil
}

func (f *fakeCinemaRepo) GetByID(ctx context.Context, id uuid.UUID) (*cinemas.Cinema, error) {
	c, ok := f.cinemas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (f *fakeCinemaRepo) GetAll(ctx context.Context, query cinemas.CinemaListQuery) ([]cinemas.Cinema, int64, error) {
	return nil, 0, nil
}

func (f *fakeCinemaRepo) Update(ctx context.Context, c *cinemas.Cinema) error {
	f.cinemas[c.ID] = *c
	return nil
}

func (f *fakeCinemaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.cinemas, id)
	return nil
}

func newTestService() (Service, *fakeAuditoriumRepo, *fakeSeatRepo, *fakeCinemaRepo) {
	repo := newFakeAuditoriumRepo()
	seatRepo := newFakeSeatRepo()
	cinemaRepo := newFakeCinemaRepo()
	return NewService(repo, seatRepo, cinemaRepo, nil), repo, seatRepo, cinemaRepo
}

func TestCreateAuditorium_GeneratesFullSeatGrid(t *testing.T) {
	svc, _, seatRepo, cinemaRepo := newTestService()
	cinemaID := cinemaRepo.addCinema()

	auditorium, err := svc.CreateAuditorium(context.Background(), CreateAuditoriumRequest{
		CinemaID:    cinemaID.String(),
		Name:        "Hall 1",
		Rows:        3,
		SeatsPerRow: 4,
	})

	require.NoError(t, err)
	grid, err := seatRepo.GetByAuditoriumID(context.Background(), auditorium.ID)
	require.NoError(t, err)
	assert.Len(t, grid, 12)

	positions := make(map[[2]int]bool)
	for _, s := range grid {
		positions[[2]int{s.Row, s.Number}] = true
	}
	for row := 1; row <= 3; row++ {
		for number := 1; number <= 4; number++ {
			assert.True(t, positions[[2]int{row, number}], "missing seat %d/%d", row, number)
		}
	}
}

func TestCreateAuditorium_UnknownCinema(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.CreateAuditorium(context.Background(), CreateAuditoriumRequest{
		CinemaID:    uuid.New().String(),
		Name:        "Hall 1",
		Rows:        2,
		SeatsPerRow: 2,
	})

	assert.ErrorIs(t, err, cinemas.ErrCinemaNotFound)
}

func TestResizeAuditorium_GrowKeepsExistingSeatIDs(t *testing.T) {
	svc, _, seatRepo, cinemaRepo := newTestService()
	cinemaID := cinemaRepo.addCinema()

	auditorium, err := svc.CreateAuditorium(context.Background(), CreateAuditoriumRequest{
		CinemaID:    cinemaID.String(),
		Name:        "Hall 1",
		Rows:        2,
		SeatsPerRow: 2,
	})
	require.NoError(t, err)

	before, err := seatRepo.GetByAuditoriumID(context.Background(), auditorium.ID)
	require.NoError(t, err)
	beforeIDs := make(map[uuid.UUID]bool)
	for _, s := range before {
		beforeIDs[s.ID] = true
	}

	resized, err := svc.ResizeAuditorium(context.Background(), auditorium.ID, ResizeAuditoriumRequest{
		Rows:        3,
		SeatsPerRow: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, resized.Rows)
	assert.Equal(t, 3, resized.SeatsPerRow)

	after, err := seatRepo.GetByAuditoriumID(context.Background(), auditorium.ID)
	require.NoError(t, err)
	assert.Len(t, after, 9)

	// Seats inside the old grid keep their identity, so reservations on
	// them stay valid.
	kept := 0
	for _, s := range after {
		if beforeIDs[s.ID] {
			kept++
		}
	}
	assert.Equal(t, 4, kept)
}

func TestResizeAuditorium_ShrinkDropsSeatsOutsideGrid(t *testing.T) {
	svc, _, seatRepo, cinemaRepo := newTestService()
	cinemaID := cinemaRepo.addCinema()

	auditorium, err := svc.CreateAuditorium(context.Background(), CreateAuditoriumRequest{
		CinemaID:    cinemaID.String(),
		Name:        "Hall 1",
		Rows:        4,
		SeatsPerRow: 5,
	})
	require.NoError(t, err)

	_, err = svc.ResizeAuditorium(context.Background(), auditorium.ID, ResizeAuditoriumRequest{
		Rows:        2,
		SeatsPerRow: 3,
	})
	require.NoError(t, err)

	after, err := seatRepo.GetByAuditoriumID(context.Background(), auditorium.ID)
	require.NoError(t, err)
	assert.Len(t, after, 6)
	for _, s := range after {
		assert.LessOrEqual(t, s.Row, 2)
		assert.LessOrEqual(t, s.Number, 3)
	}
}

func TestDeleteAuditorium_RemovesSeats(t *testing.T) {
	svc, _, seatRepo, cinemaRepo := newTestService()
	cinemaID := cinemaRepo.addCinema()

	auditorium, err := svc.CreateAuditorium(context.Background(), CreateAuditoriumRequest{
		CinemaID:    cinemaID.String(),
		Name:        "Hall 1",
		Rows:        2,
		SeatsPerRow: 2,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAuditorium(context.Background(), auditorium.ID))

	remaining, err := seatRepo.GetByAuditoriumID(context.Background(), auditorium.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	_, err = svc.GetAuditoriumByID(context.Background(), auditorium.ID)
	assert.ErrorIs(t, err, ErrAuditoriumNotFound)
}
