package services

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/jochemical/My-Cinema/models"
)

// ErrInvalidRating is returned when the rating value is not an integer.
var ErrInvalidRating = errors.New("rating must be a whole number")

// MovieStore is the slice of the movie repository the service needs.
type MovieStore interface {
	CreateMovie(ctx context.Context, movie *models.Movie) error
	FindMovieByID(ctx context.Context, id string) (*models.Movie, error)
	FindMoviesByIDs(ctx context.Context, ids []string) ([]models.Movie, error)
	UpdateMovie(ctx context.Context, movie *models.Movie) error
	SetRating(ctx context.Context, id string, rating int) error
	SetLastWatched(ctx context.Context, id string, watched time.Time) error
}

type MovieService struct {
	movies MovieStore
	users  UserStore
}

func NewMovieService(movies MovieStore, users UserStore) *MovieService {
	return &MovieService{
		movies: movies,
		users:  users,
	}
}

// AddMovie creates the movie and appends its id to the user's watchlist.
// The two writes are separate; a crash in between leaves a movie nobody
// owns.
func (s *MovieService) AddMovie(ctx context.Context, userID string, form *models.MovieForm) (string, error) {
	movie := models.NewMovie(NewID(), form.Title, form.Director, form.Year)

	if err := s.movies.CreateMovie(ctx, movie); err != nil {
		return "", err
	}
	if err := s.users.AddMovie(ctx, userID, movie.ID); err != nil {
		return "", err
	}
	return movie.ID, nil
}

// ListForUser returns the movies on the user's watchlist, in store order.
func (s *MovieService) ListForUser(ctx context.Context, userID string) ([]models.Movie, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(user.Movies) == 0 {
		return []models.Movie{}, nil
	}
	return s.movies.FindMoviesByIDs(ctx, user.Movies)
}

func (s *MovieService) Get(ctx context.Context, id string) (*models.Movie, error) {
	return s.movies.FindMovieByID(ctx, id)
}

// Update merges the extended form into the stored movie. Last writer wins.
func (s *MovieService) Update(ctx context.Context, id string, form *models.ExtendedMovieForm) (*models.Movie, error) {
	movie, err := s.movies.FindMovieByID(ctx, id)
	if err != nil {
		return nil, err
	}

	form.Apply(movie)

	if err := s.movies.UpdateMovie(ctx, movie); err != nil {
		return nil, err
	}
	return movie, nil
}

// Rate parses the raw query value and stores it. Any integer is accepted;
// the pages link ratings 1 to 5 but the server does not enforce a range.
func (s *MovieService) Rate(ctx context.Context, id, raw string) error {
	rating, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return ErrInvalidRating
	}
	return s.movies.SetRating(ctx, id, rating)
}

// Watch stamps the movie as watched right now. Watching again simply
// overwrites the timestamp.
func (s *MovieService) Watch(ctx context.Context, id string) (time.Time, error) {
	now := time.Now()
	if err := s.movies.SetLastWatched(ctx, id, now); err != nil {
		return time.Time{}, err
	}
	return now, nil
}
