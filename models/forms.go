package models

import "github.com/jochemical/My-Cinema/helper"

// Form structs bound from POST bodies. The binding tags drive validation;
// controllers translate the first failure into the message shown inline on
// the form.

type RegisterForm struct {
	Email           string `form:"email" binding:"required,email"`
	Password        string `form:"password" binding:"required,min=4,max=20"`
	ConfirmPassword string `form:"confirm_password" binding:"required,eqfield=Password"`
}

type LoginForm struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

// MovieForm carries the required fields for a new movie. 1878 is the first
// year a motion picture was made.
type MovieForm struct {
	Title    string `form:"title" binding:"required"`
	Director string `form:"director" binding:"required"`
	Year     int    `form:"year" binding:"required,gte=1878"`
}

// ExtendedMovieForm carries the full editable metadata. Cast, Series and
// Tags are submitted as one entry per line.
type ExtendedMovieForm struct {
	MovieForm
	Cast        string `form:"cast"`
	Series      string `form:"series"`
	Tags        string `form:"tags"`
	Description string `form:"description"`
	VideoLink   string `form:"video_link" binding:"omitempty,url"`
}

// Apply copies the form values onto an existing movie record.
func (f *ExtendedMovieForm) Apply(m *Movie) {
	m.Title = f.Title
	m.Director = f.Director
	m.Year = f.Year
	m.Cast = helper.SplitLines(f.Cast)
	m.Series = helper.SplitLines(f.Series)
	m.Tags = helper.SplitLines(f.Tags)
	m.Description = f.Description
	m.VideoLink = f.VideoLink
}
