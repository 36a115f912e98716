package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jochemical/My-Cinema/session"
)

// ToggleTheme flips the light/dark theme and sends the visitor back to the
// page the toggle link was on. Only local paths are followed, so the
// current_page parameter cannot redirect off-site.
func ToggleTheme(ctx *gin.Context, sess *session.Session) {
	sess.ToggleTheme()
	_ = sess.Save()

	page := ctx.Query("current_page")
	if page == "" || !strings.HasPrefix(page, "/") || strings.HasPrefix(page, "//") {
		page = "/"
	}
	ctx.Redirect(http.StatusFound, page)
}
