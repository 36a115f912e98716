package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/jochemical/My-Cinema/session"
)

// HandlerFunc is a route handler that receives the request's session as an
// explicit argument.
type HandlerFunc func(c *gin.Context, sess *session.Session)

// WithSession adapts a HandlerFunc for the router.
func WithSession(h HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		h(c, session.FromContext(c))
	}
}

// render draws a template with the page data every template needs on top of
// the handler's own: theme, login state, pending flashes and the current
// path for the theme toggle link.
func render(c *gin.Context, sess *session.Session, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["theme"] = sess.Theme()
	data["sessionEmail"] = sess.Email()
	data["authenticated"] = sess.Authenticated()
	data["flashes"] = sess.Flashes()
	_ = sess.Save() // flashes are consumed on read
	data["currentPage"] = c.Request.URL.RequestURI()

	c.HTML(status, name, data)
}

// validationMessage translates the first binding error into the message the
// form shows. Only one problem is surfaced at a time.
func validationMessage(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return "Invalid input data"
	}

	for _, e := range ve {
		switch e.Field() {
		case "Email":
			return "Please provide a valid email address"
		case "Password":
			if e.Tag() == "min" || e.Tag() == "max" {
				return "Your password must be between 4 and 20 characters long"
			}
			return "Password is required"
		case "ConfirmPassword":
			return "This password did not match the one in the password field"
		case "Title":
			return "Title is required"
		case "Director":
			return "Director is required"
		case "Year":
			if e.Tag() == "gte" {
				return "Please enter a year in the format YYYY, 1878 or later"
			}
			return "Please enter a year in the format YYYY"
		case "VideoLink":
			return "Please provide a valid URL"
		}
	}
	return "Invalid input data"
}

// internalError is the catch-all for store failures.
func internalError(c *gin.Context) {
	c.String(http.StatusInternalServerError, "Something went wrong")
}
