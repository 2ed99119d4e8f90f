package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"fleet_manager/internal/config"
	"fleet_manager/internal/handler"
	"fleet_manager/internal/middleware"
	"fleet_manager/internal/repository"
	"fleet_manager/internal/response"
	"fleet_manager/internal/service"
	"fleet_manager/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found or error loading, relying on environment variables")
	}

	// --- Configuration ---
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load DB config")
	}

	jwtSecret := os.Getenv("JWT_SECRET_KEY")
	if jwtSecret == "" {
		logrus.Fatal("JWT_SECRET_KEY not set in environment")
	}
	jwtExpHours, err := strconv.ParseInt(os.Getenv("JWT_EXPIRATION_HOURS"), 10, 64)
	if err != nil {
		jwtExpHours = 24
	}

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080" // Default port
	}

	// --- Database Connection ---
	dbPool, err := config.ConnectDB(dbCfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}
	defer dbPool.Close()

	// --- Auto Migration & Seed ---
	if err := config.AutoMigrate(dbPool); err != nil {
		logrus.WithError(err).Fatal("failed to auto-migrate database")
	}
	adminPassword := os.Getenv("SEED_ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin123"
	}
	adminHash, err := utils.HashPassword(adminPassword)
	if err != nil {
		logrus.WithError(err).Fatal("failed to hash seed admin password")
	}
	if err := config.Seed(dbPool, adminHash); err != nil {
		logrus.WithError(err).Fatal("failed to seed database")
	}

	// --- Initialize Utilities ---
	jwtUtil := utils.NewJWTUtil(jwtSecret, jwtExpHours)

	// --- Initialize Repositories ---
	userRepo := repository.NewUserRepository(dbPool)
	fleetRepo := repository.NewFleetRepository(dbPool)
	vehicleRepo := repository.NewVehicleRepository(dbPool)

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, jwtUtil)
	vehicleService := service.NewVehicleService(vehicleRepo, fleetRepo)
	fleetService := service.NewFleetService(fleetRepo)

	// --- Initialize Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	vehicleHandler := handler.NewVehicleHandler(vehicleService)
	fleetHandler := handler.NewFleetHandler(fleetService)

	// --- Setup Gin Router ---
	router := gin.Default()

	// Simple CORS middleware (allow all for development)
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// --- Initialize Middlewares ---
	jwtAuthMW := middleware.JWTAuthMiddleware(jwtUtil)

	// --- Register Routes ---
	apiGroup := router.Group("/api")
	authHandler.RegisterAuthRoutes(apiGroup, jwtAuthMW)
	vehicleHandler.RegisterVehicleRoutes(apiGroup, jwtAuthMW)
	fleetHandler.RegisterFleetRoutes(apiGroup, jwtAuthMW)

	// Liveness probe, no auth
	apiGroup.GET("/health", func(c *gin.Context) {
		if err := dbPool.Ping(c.Request.Context()); err != nil {
			response.Fail(c, http.StatusServiceUnavailable, "database unhealthy")
			return
		}
		response.OKMessage(c, "service healthy", gin.H{"timestamp": time.Now().UTC().Format(time.RFC3339)})
	})

	router.GET("/", func(c *gin.Context) {
		response.OKMessage(c, "fleet manager API", gin.H{"version": "1.0.0"})
	})

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + serverPort,
		Handler: router,
	}

	go func() {
		logrus.Infof("server starting on port %s", serverPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("listen failed")
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Fatal("server forced to shutdown")
	}

	logrus.Info("server exiting")
}
