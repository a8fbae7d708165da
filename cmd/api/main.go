package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"property-catalog/internal/config"
	"property-catalog/internal/database"
	"property-catalog/internal/handlers"
	"property-catalog/internal/ratelimit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env for local development; deployments set env vars directly
	_ = godotenv.Load()

	configPath := getEnv("CONFIG_PATH", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Printf("Warning: Failed to load config from %s: %v. Using defaults.", configPath, err)
		cfg = config.DefaultConfig()
	} else {
		log.Printf("Loaded configuration from %s", configPath)
	}

	store, err := database.NewStore(
		getEnvOrConfig(cfg.Database.Host, "DB_HOST", "db"),
		getEnvOrConfig(cfg.Database.PortString(), "DB_PORT", "5432"),
		getEnvOrConfig(cfg.Database.User, "DB_USER", "catalog_user"),
		getEnvOrConfig(cfg.Database.Password, "DB_PASSWORD", "catalog_pass"),
		getEnvOrConfig(cfg.Database.Database, "DB_NAME", "catalog_db"),
		getEnvOrConfig(cfg.Database.SSLMode, "DB_SSLMODE", "disable"),
	)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer store.Close()

	if err := store.InitSchema(); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}

	rateLimiter := ratelimit.NewRateLimiter(
		cfg.RateLimit.RequestsPerMinute,
		cfg.RateLimit.RequestsPerHour,
		cfg.RateLimit.Enabled,
	)
	log.Printf("Rate limiter initialized: %d req/min, %d req/hour (enabled: %v)",
		cfg.RateLimit.RequestsPerMinute,
		cfg.RateLimit.RequestsPerHour,
		cfg.RateLimit.Enabled,
	)

	propertyHandler := handlers.NewPropertyHandler(store)
	imageHandler := handlers.NewImageHandler(store)
	favoriteHandler := handlers.NewFavoriteHandler(store)
	adminHandler := handlers.NewAdminHandler(store)

	// Setup Gin router
	r := gin.Default()

	// CORS configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	r.GET("/health", healthCheck)

	api := r.Group("/api")
	{
		// Catalog browsing
		api.GET("/properties", propertyHandler.List)
		api.GET("/properties/featured", propertyHandler.ListFeatured)
		api.GET("/properties/:id", propertyHandler.GetByID)

		// Listing administration with rate limiting
		api.POST("/properties", rateLimitMiddleware(rateLimiter), propertyHandler.Create)
		api.PUT("/properties/:id", rateLimitMiddleware(rateLimiter), propertyHandler.Update)
		api.DELETE("/properties/:id", rateLimitMiddleware(rateLimiter), propertyHandler.Delete)
		api.POST("/properties/:id/images", rateLimitMiddleware(rateLimiter), imageHandler.Create)
		api.DELETE("/images/:id", rateLimitMiddleware(rateLimiter), imageHandler.Delete)

		// Session favorites
		api.GET("/favorites", favoriteHandler.List)
		api.POST("/favorites", favoriteHandler.Add)
		api.DELETE("/favorites", favoriteHandler.Remove)

		// Rate limiter stats endpoint
		api.GET("/ratelimit/stats", func(c *gin.Context) {
			c.JSON(http.StatusOK, rateLimiter.GetStats())
		})
	}

	admin := r.Group("/api/admin")
	{
		admin.GET("/stats", adminHandler.GetStats)
		admin.GET("/city-stats", adminHandler.GetCityStats)
		admin.GET("/price-distribution", adminHandler.GetPriceDistribution)
	}

	port := getEnv("PORT", cfg.Server.Port)
	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now(),
	})
}

// rateLimitMiddleware returns a Gin middleware that enforces rate limiting
func rateLimitMiddleware(rl *ratelimit.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.AllowRequest() {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":   "Rate limit exceeded",
				"message": "Too many requests. Please try again later.",
				"stats":   rl.GetStats(),
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvOrConfig returns config value if set, otherwise falls back to
// environment variable, then default
func getEnvOrConfig(configValue, envKey, defaultValue string) string {
	if configValue != "" {
		return configValue
	}
	return getEnv(envKey, defaultValue)
}
