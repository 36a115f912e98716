package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jochemical/My-Cinema/models"
	"github.com/jochemical/My-Cinema/services"
	"github.com/jochemical/My-Cinema/session"
)

type AuthController struct {
	authService *services.AuthService
}

func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// ShowRegister renders the registration form. Logged-in visitors go straight
// back to their watchlist.
func (c *AuthController) ShowRegister(ctx *gin.Context, sess *session.Session) {
	if sess.Authenticated() {
		ctx.Redirect(http.StatusFound, "/")
		return
	}

	render(ctx, sess, http.StatusOK, "register.html", gin.H{
		"title": "Movies Watchlist - Register",
		"email": "",
	})
}

func (c *AuthController) Register(ctx *gin.Context, sess *session.Session) {
	if sess.Authenticated() {
		ctx.Redirect(http.StatusFound, "/")
		return
	}

	var form models.RegisterForm
	if err := ctx.ShouldBind(&form); err != nil {
		render(ctx, sess, http.StatusBadRequest, "register.html", gin.H{
			"title": "Movies Watchlist - Register",
			"error": validationMessage(err),
			"email": ctx.PostForm("email"),
		})
		return
	}

	if _, err := c.authService.Register(ctx.Request.Context(), form.Email, form.Password); err != nil {
		if errors.Is(err, services.ErrDuplicateEmail) {
			render(ctx, sess, http.StatusBadRequest, "register.html", gin.H{
				"title": "Movies Watchlist - Register",
				"error": "This email address is already registered",
				"email": form.Email,
			})
			return
		}
		internalError(ctx)
		return
	}

	sess.Flash("success", "User registered successfully")
	_ = sess.Save()
	ctx.Redirect(http.StatusFound, "/login")
}

func (c *AuthController) ShowLogin(ctx *gin.Context, sess *session.Session) {
	if sess.Authenticated() {
		ctx.Redirect(http.StatusFound, "/")
		return
	}

	render(ctx, sess, http.StatusOK, "login.html", gin.H{
		"title": "Movies Watchlist - Login",
		"email": "",
	})
}

func (c *AuthController) Login(ctx *gin.Context, sess *session.Session) {
	if sess.Authenticated() {
		ctx.Redirect(http.StatusFound, "/")
		return
	}

	var form models.LoginForm
	if err := ctx.ShouldBind(&form); err != nil {
		render(ctx, sess, http.StatusBadRequest, "login.html", gin.H{
			"title": "Movies Watchlist - Login",
			"error": validationMessage(err),
			"email": ctx.PostForm("email"),
		})
		return
	}

	user, err := c.authService.Authenticate(ctx.Request.Context(), form.Email, form.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			// One message for unknown email and wrong password alike.
			sess.Flash("danger", "Login credentials not correct")
			_ = sess.Save()
			ctx.Redirect(http.StatusFound, "/login")
			return
		}
		internalError(ctx)
		return
	}

	sess.SetUser(user.ID, user.Email)
	_ = sess.Save()
	ctx.Redirect(http.StatusFound, "/")
}

// Logout drops the authenticated identity. The theme choice survives.
func (c *AuthController) Logout(ctx *gin.Context, sess *session.Session) {
	sess.Clear()
	_ = sess.Save()
	ctx.Redirect(http.StatusFound, "/login")
}
