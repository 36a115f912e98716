package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/jochemical/My-Cinema/middleware"
)

// RegisterRoutes wires the full route surface onto the engine.
func RegisterRoutes(r *gin.Engine, auth *AuthController, movies *MovieController) {
	// Public routes
	r.GET("/register", WithSession(auth.ShowRegister))
	r.POST("/register", WithSession(auth.Register))
	r.GET("/login", WithSession(auth.ShowLogin))
	r.POST("/login", WithSession(auth.Login))
	r.GET("/logout", WithSession(auth.Logout))
	r.GET("/movie/:id", WithSession(movies.Detail))
	r.GET("/toggle-theme", WithSession(ToggleTheme))

	// Routes that need a logged-in user
	protected := r.Group("", middleware.LoginRequired())
	{
		protected.GET("/", WithSession(movies.Index))
		protected.GET("/add", WithSession(movies.ShowAdd))
		protected.POST("/add", WithSession(movies.Add))
		protected.GET("/edit/:id", WithSession(movies.ShowEdit))
		protected.POST("/edit/:id", WithSession(movies.Edit))
		protected.GET("/movie/:id/rate", WithSession(movies.Rate))
		protected.GET("/movie/:id/watch", WithSession(movies.Watch))
	}
}
