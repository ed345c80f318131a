package projections

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"cinely/internal/auditoriums"
	"cinely/internal/movies"
)

type fakeProjectionRepo struct {
	projections map[uuid.UUID]Projection
}

func newFakeProjectionRepo() *fakeProjectionRepo {
	return &fakeProjectionRepo{projections: make(map[uuid.UUID]Projection)}
}

func (f *fakeProjectionRepo) Create(ctx context.Context, p *Projection) error {
	f.projections[p.ID] = *p
	return nil
}

func (f *fakeProjectionRepo) GetByID(ctx context.Context, id uuid.UUID) (*Projection, error) {
	p, ok := f.projections[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (f *fakeProjectionRepo) GetAll(ctx context.Context, query ProjectionListQuery) ([]Projection, error) {
	var out []Projection
	for _, p := range f.projections {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProjectionRepo) Update(ctx context.Context, p *Projection) error {
	f.projections[p.ID] = *p
	return nil
}

func (f *fakeProjectionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.projections, id)
	return nil
}

type fakeMovieRepo struct {
	movies map[uuid.UUID]movies.Movie
}

func (f *fakeMovieRepo) Create(ctx context.Context, m *movies.Movie) error { return nil }

func (f *fakeMovieRepo) GetByID(ctx context.Context, id uuid.UUID) (*movies.Movie, error) {
	m, ok := f.movies[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &m, nil
}

func (f *fakeMovieRepo) GetAll(ctx context.Context, query movies.MovieListQuery) ([]movies.Movie, int64, error) {
	return nil, 0, nil
}

func (f *fakeMovieRepo) GetTopRated(ctx context.Context, limit int) ([]movies.Movie, error) {
	return nil, nil
}

func (f *fakeMovieRepo) Update(ctx context.Context, m *movies.Movie) error { return nil }
func (f *fakeMovieRepo) Delete(ctx context.Context, id uuid.UUID) error    { return nil }

type fakeAuditoriumRepo struct {
	auditoriums map[uuid.UUID]auditoriums.Auditorium
}

func (f *fakeAuditoriumRepo) Create(ctx context.Context, a *auditoriums.Auditorium) error { return nil }

func (f *fakeAuditoriumRepo) GetByID(ctx context.Context, id uuid.UUID) (*auditoriums.Auditorium, error) {
	a, ok := f.auditoriums[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &a, nil
}

func (f *fakeAuditoriumRepo) GetByCinemaID(ctx context.Context, cinemaID uuid.UUID) ([]auditoriums.Auditorium, error) {
	return nil, nil
}

func (f *fakeAuditoriumRepo) Update(ctx context.Context, a *auditoriums.Auditorium) error { return nil }
func (f *fakeAuditoriumRepo) Delete(ctx context.Context, id uuid.UUID) error              { return nil }

type fakePurger struct {
	purged map[uuid.UUID]int64
	count  int64
}

func (f *fakePurger) DeleteByProjectionID(ctx context.Context, projectionID uuid.UUID) (int64, error) {
	if f.purged == nil {
		f.purged = make(map[uuid.UUID]int64)
	}
	f.purged[projectionID] = f.count
	return f.count, nil
}

func newTestFixture() (Service, *fakeProjectionRepo, *fakeMovieRepo, *fakeAuditoriumRepo, *fakePurger) {
	repo := newFakeProjectionRepo()
	movieRepo := &fakeMovieRepo{movies: make(map[uuid.UUID]movies.Movie)}
	auditoriumRepo := &fakeAuditoriumRepo{auditoriums: make(map[uuid.UUID]auditoriums.Auditorium)}
	purger := &fakePurger{}
	svc := NewService(repo, movieRepo, auditoriumRepo, purger)
	return svc, repo, movieRepo, auditoriumRepo, purger
}

func TestCreateProjection_UnknownMovie(t *testing.T) {
	svc, _, _, auditoriumRepo, _ := newTestFixture()
	auditoriumID := uuid.New()
	auditoriumRepo.auditoriums[auditoriumID] = auditoriums.Auditorium{ID: auditoriumID}

	_, err := svc.CreateProjection(context.Background(), CreateProjectionRequest{
		MovieID:      uuid.New().String(),
		AuditoriumID: auditoriumID.String(),
		StartsAt:     time.Now().Add(24 * time.Hour),
		TicketPrice:  8.50,
	})

	assert.ErrorIs(t, err, movies.ErrMovieNotFound)
}

func TestCreateProjection_UnknownAuditorium(t *testing.T) {
	svc, _, movieRepo, _, _ := newTestFixture()
	movieID := uuid.New()
	movieRepo.movies[movieID] = movies.Movie{ID: movieID}

	_, err := svc.CreateProjection(context.Background(), CreateProjectionRequest{
		MovieID:      movieID.String(),
		AuditoriumID: uuid.New().String(),
		StartsAt:     time.Now().Add(24 * time.Hour),
		TicketPrice:  8.50,
	})

	assert.ErrorIs(t, err, auditoriums.ErrAuditoriumNotFound)
}

func TestDeleteProjection_PurgesReservationsFirst(t *testing.T) {
	svc, repo, movieRepo, auditoriumRepo, purger := newTestFixture()
	movieID := uuid.New()
	auditoriumID := uuid.New()
	movieRepo.movies[movieID] = movies.Movie{ID: movieID}
	auditoriumRepo.auditoriums[auditoriumID] = auditoriums.Auditorium{ID: auditoriumID}
	purger.count = 7

	projection, err := svc.CreateProjection(context.Background(), CreateProjectionRequest{
		MovieID:      movieID.String(),
		AuditoriumID: auditoriumID.String(),
		StartsAt:     time.Now().Add(24 * time.Hour),
		TicketPrice:  8.50,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProjection(context.Background(), projection.ID))

	assert.Contains(t, purger.purged, projection.ID)
	_, err = repo.GetByID(context.Background(), projection.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteProjection_NotFound(t *testing.T) {
	svc, _, _, _, _ := newTestFixture()

	err := svc.DeleteProjection(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrProjectionNotFound)
}
