package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"dreamjournal-be/internal/cache"
	"dreamjournal-be/internal/config"
	"dreamjournal-be/internal/controllers"
	"dreamjournal-be/internal/database"
	"dreamjournal-be/internal/jwt"
	"dreamjournal-be/internal/middleware"
	"dreamjournal-be/internal/models"
	"dreamjournal-be/internal/repository"
	"dreamjournal-be/internal/service"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Redis cache (optional - continue if Redis is unavailable)
	var cacheClient cache.Cache
	cacheClient, err = cache.NewRedisCache(cfg.RedisURL)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis (%v). Continuing without cache.", err)
		cacheClient = nil
	} else {
		log.Println("Connected to Redis cache")
	}

	// Initialize JWT service. A missing secret is a configuration error.
	jwtService, err := jwt.NewJWTService(
		cfg.JWTSecret,
		time.Duration(cfg.JWTTTLHours)*time.Hour,
	)
	if err != nil {
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	dreamRepo := repository.NewDreamRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	dreamService := service.NewDreamService(dreamRepo, cacheClient)

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	dreamController := controllers.NewDreamController(dreamService)

	// Initialize rate limiters
	generalRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	authRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitAuthRPS), cfg.RateLimitAuthBurst)

	// Create a Gin router
	router := gin.Default()

	// Health check endpoint (no rate limiting)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"message":   "Dream Journal API is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	// Auth routes with stricter rate limiting
	auth := router.Group("/auth")
	auth.Use(authRateLimiter.LimitMiddleware())
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.GET("/me", middleware.AuthMiddleware(jwtService), authController.Me)
	}

	// Dream routes - all require JWT authentication
	dreams := router.Group("/dreams")
	dreams.Use(generalRateLimiter.LimitMiddleware(), middleware.AuthMiddleware(jwtService))
	{
		dreams.GET("", dreamController.List)
		dreams.POST("", dreamController.Create)
		dreams.GET("/:id", dreamController.Get)
		dreams.PUT("/:id", dreamController.Update)
		dreams.DELETE("/:id", dreamController.Delete)
		dreams.PATCH("/:id/favorite", dreamController.ToggleFavorite)
	}

	// Unknown routes get the envelope too
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.Fail("Route not found"))
	})

	log.Printf("Dream Journal server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
