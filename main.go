package main

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/jochemical/My-Cinema/config"
	"github.com/jochemical/My-Cinema/controllers"
	"github.com/jochemical/My-Cinema/data_access"
	"github.com/jochemical/My-Cinema/services"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("failed to load configuration", "err", err)
	}

	log.Info("configuration loaded", "env", cfg.Env, "db", cfg.DBName)

	// Initialize MongoDB connection
	mongodb, err := data_access.NewMongoDB(cfg.MongoURI, cfg.DBName)
	if err != nil {
		log.Fatal("failed to connect to MongoDB", "err", err)
	}
	defer mongodb.Close(context.Background())

	if err := mongodb.EnsureIndexes(context.Background()); err != nil {
		log.Fatal("failed to create indexes", "err", err)
	}

	// Initialize repositories
	userRepo := data_access.NewUserRepository(mongodb)
	movieRepo := data_access.NewMovieRepository(mongodb)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	movieService := services.NewMovieService(movieRepo, userRepo)

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	movieController := controllers.NewMovieController(movieService)

	// Setup Gin router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.LoadHTMLGlob("templates/*.html")
	r.Static("/static", "./static")

	store := cookie.NewStore([]byte(cfg.SecretKey))
	r.Use(sessions.Sessions("watchlist", store))

	controllers.RegisterRoutes(r, authController, movieController)

	log.Info("server starting", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", "err", err)
	}
}
