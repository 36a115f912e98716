package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jochemical/My-Cinema/data_access"
	"github.com/jochemical/My-Cinema/models"
)

// fakeMovieStore is an in-memory MovieStore.
type fakeMovieStore struct {
	movies map[string]*models.Movie
}

func newFakeMovieStore() *fakeMovieStore {
	return &fakeMovieStore{movies: make(map[string]*models.Movie)}
}

func (f *fakeMovieStore) CreateMovie(ctx context.Context, movie *models.Movie) error {
	cp := *movie
	f.movies[movie.ID] = &cp
	return nil
}

func (f *fakeMovieStore) FindMovieByID(ctx context.Context, id string) (*models.Movie, error) {
	m, ok := f.movies[id]
	if !ok {
		return nil, data_access.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (f *fakeMovieStore) FindMoviesByIDs(ctx context.Context, ids []string) ([]models.Movie, error) {
	out := []models.Movie{}
	for _, id := range ids {
		if m, ok := f.movies[id]; ok {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *fakeMovieStore) UpdateMovie(ctx context.Context, movie *models.Movie) error {
	if _, ok := f.movies[movie.ID]; !ok {
		return data_access.ErrNotFound
	}
	cp := *movie
	f.movies[movie.ID] = &cp
	return nil
}

func (f *fakeMovieStore) SetRating(ctx context.Context, id string, rating int) error {
	m, ok := f.movies[id]
	if !ok {
		return data_access.ErrNotFound
	}
	m.Rating = rating
	return nil
}

func (f *fakeMovieStore) SetLastWatched(ctx context.Context, id string, watched time.Time) error {
	m, ok := f.movies[id]
	if !ok {
		return data_access.ErrNotFound
	}
	m.LastWatched = &watched
	return nil
}

func newTestMovieService() (*MovieService, *fakeMovieStore, *fakeUserStore) {
	movies := newFakeMovieStore()
	users := newFakeUserStore()
	users.users["u1"] = &models.User{ID: "u1", Email: "a@x.com", Movies: []string{}}
	return NewMovieService(movies, users), movies, users
}

func TestAddMovieAppearsOnListOnce(t *testing.T) {
	svc, _, _ := newTestMovieService()

	id, err := svc.AddMovie(context.Background(), "u1", &models.MovieForm{
		Title:    "Dune",
		Director: "Villeneuve",
		Year:     2021,
	})
	require.NoError(t, err)

	list, err := svc.ListForUser(context.Background(), "u1")
	require.NoError(t, err)

	count := 0
	for _, m := range list {
		if m.ID == id {
			count++
		}
	}
	assert.Equal(t, 1, count, "the added movie must be listed exactly once")
}

func TestAddMovieDefaults(t *testing.T) {
	svc, _, _ := newTestMovieService()

	id, err := svc.AddMovie(context.Background(), "u1", &models.MovieForm{
		Title:    "Dune",
		Director: "Villeneuve",
		Year:     2021,
	})
	require.NoError(t, err)

	movie, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 0, movie.Rating)
	assert.Nil(t, movie.LastWatched)
	assert.NotNil(t, movie.Cast)
	assert.Empty(t, movie.Cast)
	assert.Empty(t, movie.Series)
	assert.Empty(t, movie.Tags)
}

func TestAddMovieUnknownUser(t *testing.T) {
	svc, movies, _ := newTestMovieService()

	// The append must not claim success when the user document is gone.
	_, err := svc.AddMovie(context.Background(), "ghost", &models.MovieForm{
		Title: "Dune", Director: "Villeneuve", Year: 2021,
	})
	assert.ErrorIs(t, err, data_access.ErrNotFound)
	assert.Len(t, movies.movies, 1, "the movie write itself still happens first")
}

func TestListForUserEmpty(t *testing.T) {
	svc, _, _ := newTestMovieService()

	list, err := svc.ListForUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestListForUserUnknownUser(t *testing.T) {
	svc, _, _ := newTestMovieService()

	_, err := svc.ListForUser(context.Background(), "ghost")
	assert.ErrorIs(t, err, data_access.ErrNotFound)
}

func TestRateRejectsNonInteger(t *testing.T) {
	svc, _, _ := newTestMovieService()

	id, err := svc.AddMovie(context.Background(), "u1", &models.MovieForm{
		Title: "Dune", Director: "Villeneuve", Year: 2021,
	})
	require.NoError(t, err)

	err = svc.Rate(context.Background(), id, "abc")
	assert.ErrorIs(t, err, ErrInvalidRating)

	movie, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 0, movie.Rating, "a bad value must not silently change the rating")
}

func TestRatePersists(t *testing.T) {
	svc, _, _ := newTestMovieService()

	id, err := svc.AddMovie(context.Background(), "u1", &models.MovieForm{
		Title: "Dune", Director: "Villeneuve", Year: 2021,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Rate(context.Background(), id, "5"))

	movie, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 5, movie.Rating)

	// No range check: out-of-range integers are stored as-is.
	require.NoError(t, svc.Rate(context.Background(), id, "-50"))
	movie, err = svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, -50, movie.Rating)
}

func TestRateMissingMovie(t *testing.T) {
	svc, _, _ := newTestMovieService()

	err := svc.Rate(context.Background(), "ghost", "4")
	assert.ErrorIs(t, err, data_access.ErrNotFound)
}

func TestWatchSetsTimestamp(t *testing.T) {
	svc, _, _ := newTestMovieService()

	id, err := svc.AddMovie(context.Background(), "u1", &models.MovieForm{
		Title: "Dune", Director: "Villeneuve", Year: 2021,
	})
	require.NoError(t, err)

	before := time.Now()
	first, err := svc.Watch(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, first.Before(before))

	movie, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, movie.LastWatched)
	assert.Equal(t, first, *movie.LastWatched)

	// Watching again just moves the timestamp forward.
	second, err := svc.Watch(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, second.Before(first))
}

func TestUpdateMergesExtendedFields(t *testing.T) {
	svc, _, _ := newTestMovieService()

	id, err := svc.AddMovie(context.Background(), "u1", &models.MovieForm{
		Title: "Dune", Director: "Villeneuve", Year: 2021,
	})
	require.NoError(t, err)

	form := &models.ExtendedMovieForm{
		MovieForm: models.MovieForm{
			Title:    "Dune: Part One",
			Director: "Denis Villeneuve",
			Year:     2021,
		},
		Cast:        "Timothee Chalamet\nRebecca Ferguson",
		Series:      "Dune",
		Tags:        "sci-fi\n  epic  \n",
		Description: "Paul Atreides goes to Arrakis.",
		VideoLink:   "https://example.com/trailer",
	}

	updated, err := svc.Update(context.Background(), id, form)
	require.NoError(t, err)
	assert.Equal(t, "Dune: Part One", updated.Title)
	assert.Equal(t, []string{"Timothee Chalamet", "Rebecca Ferguson"}, updated.Cast)
	assert.Equal(t, []string{"Dune"}, updated.Series)
	assert.Equal(t, []string{"sci-fi", "epic"}, updated.Tags)

	movie, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Paul Atreides goes to Arrakis.", movie.Description)
	assert.Equal(t, "https://example.com/trailer", movie.VideoLink)
}

func TestUpdateMissingMovie(t *testing.T) {
	svc, _, _ := newTestMovieService()

	_, err := svc.Update(context.Background(), "ghost", &models.ExtendedMovieForm{})
	assert.ErrorIs(t, err, data_access.ErrNotFound)
}
