package data_access

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jochemical/My-Cinema/models"
)

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("document not found")

// ErrDuplicateEmail is returned when an insert violates the unique index on
// user email.
var ErrDuplicateEmail = errors.New("email already registered")

type UserRepository struct {
	collection *mongo.Collection
}

type MovieRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db *MongoDB) *UserRepository {
	return &UserRepository{collection: db.Collection("user")}
}

func NewMovieRepository(db *MongoDB) *MovieRepository {
	return &MovieRepository{collection: db.Collection("movie")}
}

// UserRepository methods

func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	_, err := r.collection.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateEmail
	}
	return err
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// AddMovie appends movieID to the user's watchlist. $push is atomic per
// document, so concurrent appends to the same user are not lost.
func (r *UserRepository) AddMovie(ctx context.Context, userID, movieID string) error {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$push": bson.M{"movies": movieID}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// MovieRepository methods

func (r *MovieRepository) CreateMovie(ctx context.Context, movie *models.Movie) error {
	_, err := r.collection.InsertOne(ctx, movie)
	return err
}

func (r *MovieRepository) FindMovieByID(ctx context.Context, id string) (*models.Movie, error) {
	var movie models.Movie
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&movie)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

// FindMoviesByIDs returns every movie whose id is in ids, in whatever order
// the store yields them.
func (r *MovieRepository) FindMoviesByIDs(ctx context.Context, ids []string) ([]models.Movie, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}

	var movies []models.Movie
	if err = cursor.All(ctx, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

// UpdateMovie overwrites the stored fields with the given record. Last
// writer wins; there is no concurrency check.
func (r *MovieRepository) UpdateMovie(ctx context.Context, movie *models.Movie) error {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": movie.ID},
		bson.M{"$set": movieDocument(movie)},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MovieRepository) SetRating(ctx context.Context, id string, rating int) error {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"rating": rating}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MovieRepository) SetLastWatched(ctx context.Context, id string, watched time.Time) error {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"last_watched": watched}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// movieDocument maps a movie onto its document fields. The _id stays out of
// the update; Mongo treats it as immutable.
func movieDocument(m *models.Movie) bson.M {
	return bson.M{
		"title":        m.Title,
		"director":     m.Director,
		"year":         m.Year,
		"cast":         m.Cast,
		"series":       m.Series,
		"last_watched": m.LastWatched,
		"rating":       m.Rating,
		"tags":         m.Tags,
		"description":  m.Description,
		"video_link":   m.VideoLink,
	}
}
