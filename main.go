package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/tradingpros/cms-backend/analyzer"
	"github.com/tradingpros/cms-backend/logging"
	"github.com/tradingpros/cms-backend/middleware"
)

// Hard input caps applied before the analyzer runs
const (
	maxTitleLength   = 500
	maxContentBlocks = 500
)

// Validation rate limit per client
const (
	rateLimitMaxRequests = 30
	rateLimitWindow      = 60 * time.Second
)

var (
	seoAnalyzer *analyzer.Analyzer
	rateLimiter *middleware.RateLimiter
	serviceStat *logging.Statistics
)

func loadEnv() {
	// Try to load .env.development first (for local development)
	if err := godotenv.Load(".env.development"); err != nil {
		// If .env.development doesn't exist, try regular .env
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, using environment variables")
		}
	}
}

func setupGinMode() {
	// Set Gin mode based on environment variable
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		// Default to release mode if not specified
		mode = gin.ReleaseMode
	}
	gin.SetMode(mode)
}

// newCounterStore picks the rate-limit backend: sqlite when RATE_LIMIT_DB is
// set, in-memory otherwise. A broken sqlite file falls back to memory so the
// service still starts.
func newCounterStore() middleware.CounterStore {
	path := os.Getenv("RATE_LIMIT_DB")
	if path == "" {
		return middleware.NewMemoryStore()
	}

	store, err := middleware.NewSQLiteStore(path)
	if err != nil {
		log.Printf("Could not open rate limit store at %s, using in-memory counters: %v", path, err)
		return middleware.NewMemoryStore()
	}
	return store
}

func main() {
	// Load environment configuration
	loadEnv()

	// Set up Gin mode
	setupGinMode()

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	// Initialize services
	var err error
	seoAnalyzer, err = analyzer.New(dataDir)
	if err != nil {
		log.Fatal("Failed to initialize analyzer:", err)
	}
	rateLimiter = middleware.NewRateLimiter(newCounterStore(), rateLimitMaxRequests, rateLimitWindow)

	// Initialize statistics
	serviceStat = logging.Initialize()

	// Initialize Gin router
	r := gin.Default()

	// Add middlewares
	r.Use(middleware.ErrorHandler())

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Content-Length", "Accept", "Authorization", "Cache-Control", "X-Requested-With"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	// Visitor tracking
	r.Use(func(c *gin.Context) {
		serviceStat.TrackVisitor(c.ClientIP())
		c.Next()

		// Periodically save statistics
		if serviceStat.GetStatistics()["totalRequests"].(int)%100 == 0 {
			go serviceStat.Save()
		}
	})

	// API routes
	api := r.Group("/api")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status": "ok",
			})
		})

		// SEO validation endpoint
		seo := api.Group("/cms/seo")
		seo.Use(rateLimiter.RateLimit())
		seo.POST("/validate", validateSEO)

		// Statistics endpoint
		api.GET("/statistics", func(c *gin.Context) {
			c.JSON(http.StatusOK, serviceStat.GetStatistics())
		})
	}

	// Get port from environment variable or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8082" // Default port
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		log.Printf("Server starting on http://localhost:%s\n", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server:", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	if err := seoAnalyzer.Shutdown(); err != nil {
		log.Printf("Analyzer shutdown error: %v", err)
	}
	if err := serviceStat.Save(); err != nil {
		log.Printf("Failed to save statistics: %v", err)
	}
}

func validateSEO(c *gin.Context) {
	var request analyzer.ValidationRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		serviceStat.TrackValidation("", 0, true)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	if len(request.Title) > maxTitleLength {
		serviceStat.TrackValidation("", 0, true)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Title exceeds maximum length of 500 characters",
		})
		return
	}

	if len(request.ContentBlocks) > maxContentBlocks {
		serviceStat.TrackValidation("", 0, true)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Content blocks exceed maximum of 500 blocks",
		})
		return
	}

	start := time.Now()
	response := seoAnalyzer.Validate(&request)
	elapsed := time.Since(start)

	serviceStat.TrackValidation(response.Grade, float64(elapsed.Milliseconds()), false)
	log.Printf("SEO validation completed: score=%d grade=%s words=%d in %dms",
		response.Score, response.Grade, response.WordCount, elapsed.Milliseconds())

	c.JSON(http.StatusOK, response)
}
