package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jochemical/My-Cinema/data_access"
	"github.com/jochemical/My-Cinema/helper"
	"github.com/jochemical/My-Cinema/models"
	"github.com/jochemical/My-Cinema/services"
	"github.com/jochemical/My-Cinema/session"
)

type MovieController struct {
	movieService *services.MovieService
}

func NewMovieController(movieService *services.MovieService) *MovieController {
	return &MovieController{
		movieService: movieService,
	}
}

// Index lists the movies on the logged-in user's watchlist.
func (c *MovieController) Index(ctx *gin.Context, sess *session.Session) {
	movies, err := c.movieService.ListForUser(ctx.Request.Context(), sess.UserID())
	if err != nil {
		if errors.Is(err, data_access.ErrNotFound) {
			// The session references a user that no longer exists.
			sess.Clear()
			_ = sess.Save()
			ctx.Redirect(http.StatusFound, "/login")
			return
		}
		internalError(ctx)
		return
	}

	render(ctx, sess, http.StatusOK, "index.html", gin.H{
		"title":  "Movies Watchlist",
		"movies": movies,
	})
}

func (c *MovieController) ShowAdd(ctx *gin.Context, sess *session.Session) {
	render(ctx, sess, http.StatusOK, "new_movie.html", gin.H{
		"title": "Movies Watchlist - Add Movie",
		"form":  emptyMovieForm(),
	})
}

func (c *MovieController) Add(ctx *gin.Context, sess *session.Session) {
	var form models.MovieForm
	if err := ctx.ShouldBind(&form); err != nil {
		render(ctx, sess, http.StatusBadRequest, "new_movie.html", gin.H{
			"title": "Movies Watchlist - Add Movie",
			"error": validationMessage(err),
			"form":  postedMovieForm(ctx),
		})
		return
	}

	if _, err := c.movieService.AddMovie(ctx.Request.Context(), sess.UserID(), &form); err != nil {
		internalError(ctx)
		return
	}

	ctx.Redirect(http.StatusFound, "/")
}

// Detail shows one movie. The page is public; the mutating links on it are
// only rendered for logged-in visitors.
func (c *MovieController) Detail(ctx *gin.Context, sess *session.Session) {
	movie, err := c.movieService.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		notFoundOrError(ctx, err)
		return
	}

	render(ctx, sess, http.StatusOK, "movie_details.html", gin.H{
		"title":   "Movies Watchlist - " + movie.Title,
		"movie":   movie,
		"ratings": []int{1, 2, 3, 4, 5},
	})
}

func (c *MovieController) ShowEdit(ctx *gin.Context, sess *session.Session) {
	movie, err := c.movieService.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		notFoundOrError(ctx, err)
		return
	}

	render(ctx, sess, http.StatusOK, "movie_form.html", gin.H{
		"title": "Movies Watchlist - Edit Movie",
		"movie": movie,
		"form":  editMovieForm(movie),
	})
}

func (c *MovieController) Edit(ctx *gin.Context, sess *session.Session) {
	id := ctx.Param("id")

	var form models.ExtendedMovieForm
	if err := ctx.ShouldBind(&form); err != nil {
		movie, getErr := c.movieService.Get(ctx.Request.Context(), id)
		if getErr != nil {
			notFoundOrError(ctx, getErr)
			return
		}
		render(ctx, sess, http.StatusBadRequest, "movie_form.html", gin.H{
			"title": "Movies Watchlist - Edit Movie",
			"movie": movie,
			"error": validationMessage(err),
			"form":  postedExtendedForm(ctx),
		})
		return
	}

	movie, err := c.movieService.Update(ctx.Request.Context(), id, &form)
	if err != nil {
		notFoundOrError(ctx, err)
		return
	}

	ctx.Redirect(http.StatusFound, "/movie/"+movie.ID)
}

// Rate stores the rating given in the query string, e.g. /movie/x/rate?rating=4.
func (c *MovieController) Rate(ctx *gin.Context, sess *session.Session) {
	id := ctx.Param("id")

	if err := c.movieService.Rate(ctx.Request.Context(), id, ctx.Query("rating")); err != nil {
		if errors.Is(err, services.ErrInvalidRating) {
			sess.Flash("danger", "Rating must be a whole number")
			_ = sess.Save()
			ctx.Redirect(http.StatusFound, "/movie/"+id)
			return
		}
		notFoundOrError(ctx, err)
		return
	}

	ctx.Redirect(http.StatusFound, "/movie/"+id)
}

func (c *MovieController) Watch(ctx *gin.Context, sess *session.Session) {
	id := ctx.Param("id")

	if _, err := c.movieService.Watch(ctx.Request.Context(), id); err != nil {
		notFoundOrError(ctx, err)
		return
	}

	ctx.Redirect(http.StatusFound, "/movie/"+id)
}

func notFoundOrError(ctx *gin.Context, err error) {
	if errors.Is(err, data_access.ErrNotFound) {
		ctx.String(http.StatusNotFound, "Movie not found")
		return
	}
	internalError(ctx)
}

// The form maps below keep every field key present so templates never hit a
// missing map entry.

func emptyMovieForm() gin.H {
	return gin.H{
		"title":       "",
		"director":    "",
		"year":        "",
		"cast":        "",
		"series":      "",
		"tags":        "",
		"description": "",
		"video_link":  "",
	}
}

func postedMovieForm(ctx *gin.Context) gin.H {
	form := emptyMovieForm()
	form["title"] = ctx.PostForm("title")
	form["director"] = ctx.PostForm("director")
	form["year"] = ctx.PostForm("year")
	return form
}

func postedExtendedForm(ctx *gin.Context) gin.H {
	form := postedMovieForm(ctx)
	form["cast"] = ctx.PostForm("cast")
	form["series"] = ctx.PostForm("series")
	form["tags"] = ctx.PostForm("tags")
	form["description"] = ctx.PostForm("description")
	form["video_link"] = ctx.PostForm("video_link")
	return form
}

func editMovieForm(m *models.Movie) gin.H {
	return gin.H{
		"title":       m.Title,
		"director":    m.Director,
		"year":        m.Year,
		"cast":        helper.JoinLines(m.Cast),
		"series":      helper.JoinLines(m.Series),
		"tags":        helper.JoinLines(m.Tags),
		"description": m.Description,
		"video_link":  m.VideoLink,
	}
}
