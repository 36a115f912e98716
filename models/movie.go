package models

import "time"

type Movie struct {
	ID          string     `bson:"_id" json:"id"`
	Title       string     `bson:"title" json:"title"`
	Director    string     `bson:"director" json:"director"`
	Year        int        `bson:"year" json:"year"`
	Cast        []string   `bson:"cast" json:"cast"`
	Series      []string   `bson:"series" json:"series"`
	LastWatched *time.Time `bson:"last_watched" json:"last_watched"`
	Rating      int        `bson:"rating" json:"rating"`
	Tags        []string   `bson:"tags" json:"tags"`
	Description string     `bson:"description" json:"description"`
	VideoLink   string     `bson:"video_link" json:"video_link"`
}

// NewMovie builds a movie with the optional fields defaulted: empty lists,
// zero rating and no last-watched timestamp.
func NewMovie(id, title, director string, year int) *Movie {
	return &Movie{
		ID:       id,
		Title:    title,
		Director: director,
		Year:     year,
		Cast:     []string{},
		Series:   []string{},
		Tags:     []string{},
	}
}
