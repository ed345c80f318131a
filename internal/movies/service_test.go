package movies

import (
	"context"
	"encoding/json"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeMovieRepo struct {
	movies       map[uuid.UUID]Movie
	topRatedHits int
}

func newFakeMovieRepo() *fakeMovieRepo {
	return &fakeMovieRepo{movies: make(map[uuid.UUID]Movie)}
}

func (f *fakeMovieRepo) addMovie(title string, rating float64) Movie {
	movie := Movie{
		ID:          uuid.New(),
		Title:       title,
		Genre:       "Drama",
		DurationMin: 120,
		Rating:      rating,
		ReleaseYear: 2020,
	}
	f.movies[movie.ID] = movie
	return movie
}

func (f *fakeMovieRepo) Create(ctx context.Context, movie *Movie) error {
	f.movies[movie.ID] = *movie
	return nil
}

func (f *fakeMovieRepo) GetByID(ctx context.Context, id uuid.UUID) (*Movie, error) {
	movie, ok := f.movies[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &movie, nil
}

func (f *fakeMovieRepo) GetAll(ctx context.Context, query MovieListQuery) ([]Movie, int64, error) {
	var out []Movie
	for _, m := range f.movies {
		out = append(out, m)
	}
	return out, int64(len(out)), nil
}

func (f *fakeMovieRepo) GetTopRated(ctx context.Context, limit int) ([]Movie, error) {
	f.topRatedHits++
	var out []Movie
	for _, m := range f.movies {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeMovieRepo) Update(ctx context.Context, movie *Movie) error {
	if _, ok := f.movies[movie.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	f.movies[movie.ID] = *movie
	return nil
}

func (f *fakeMovieRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.movies, id)
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

func TestGetTopRatedMovies_OrderAndLimit(t *testing.T) {
	repo := newFakeMovieRepo()
	repo.addMovie("Mediocre", 5.1)
	best := repo.addMovie("Best", 9.7)
	second := repo.addMovie("Second", 8.9)
	repo.addMovie("Worst", 2.3)

	svc := NewService(repo, nil)

	top, err := svc.GetTopRatedMovies(context.Background(), 2)

	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, best.ID, top[0].ID)
	assert.Equal(t, second.ID, top[1].ID)
}

func TestGetTopRatedMovies_ClampsLimit(t *testing.T) {
	repo := newFakeMovieRepo()
	repo.addMovie("Only", 7.0)
	svc := NewService(repo, nil)

	top, err := svc.GetTopRatedMovies(context.Background(), -5)

	require.NoError(t, err)
	assert.Len(t, top, 1)
}

func TestGetTopRatedMovies_ServedFromCache(t *testing.T) {
	repo := newFakeMovieRepo()
	repo.addMovie("Cached", 8.0)
	cacheSvc := newMemoryCache()
	svc := NewService(repo, cacheSvc)

	_, err := svc.GetTopRatedMovies(context.Background(), 5)
	require.NoError(t, err)
	_, err = svc.GetTopRatedMovies(context.Background(), 5)
	require.NoError(t, err)

	// Second call hits the cache, not the repository.
	assert.Equal(t, 1, repo.topRatedHits)
}

func TestCreateMovie_InvalidatesTopRatedCache(t *testing.T) {
	repo := newFakeMovieRepo()
	repo.addMovie("Old", 6.0)
	cacheSvc := newMemoryCache()
	svc := NewService(repo, cacheSvc)

	_, err := svc.GetTopRatedMovies(context.Background(), 5)
	require.NoError(t, err)

	_, err = svc.CreateMovie(context.Background(), CreateMovieRequest{
		Title:       "New",
		Genre:       "Action",
		DurationMin: 100,
		Rating:      9.9,
		ReleaseYear: 2024,
	})
	require.NoError(t, err)

	top, err := svc.GetTopRatedMovies(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "New", top[0].Title)
	assert.Equal(t, 2, repo.topRatedHits)
}

func TestGetMovieByID_NotFound(t *testing.T) {
	svc := NewService(newFakeMovieRepo(), nil)

	_, err := svc.GetMovieByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrMovieNotFound)
}
