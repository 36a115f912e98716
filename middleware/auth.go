package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jochemical/My-Cinema/session"
)

// LoginRequired redirects anonymous visitors to the login page. Compose it
// before any route that needs an authenticated user.
func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !session.FromContext(c).Authenticated() {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
