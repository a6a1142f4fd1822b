package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	httpapi "hackathon-backend/internal/api/http"
	"hackathon-backend/internal/cache"
	"hackathon-backend/internal/config"
	"hackathon-backend/internal/logger"
	"hackathon-backend/internal/repository/postgres"
	"hackathon-backend/internal/security"
	"hackathon-backend/internal/service"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Optional .env file for local development
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Hackathon Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	logger.Info("SMTP configuration", "host", cfg.SMTP.Host, "port", cfg.SMTP.Port)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Review Reservation Cache
	var reservations cache.ReservationStore
	redisClient, err := cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		logger.Warn("Redis unavailable; falling back to in-memory reservations", "error", err)
		reservations = cache.NewMemoryReservationStore()
	} else {
		logger.Info("Redis connection established", "addr", cfg.Redis.Addr)
		reservations = cache.NewRedisReservationStore(redisClient)
	}

	// Initialize Security
	tokenManager := security.NewTokenManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Minute,
	)
	authMiddleware := httpapi.NewAuthMiddleware(tokenManager)

	// Initialize Email Service
	emailSvc := service.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.User,
		cfg.SMTP.Password,
		cfg.SMTP.From,
	)

	// Initialize Services
	maxMembers := int32(cfg.Hackathon.MaxTeamSize)
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	teamSvc := service.NewTeamService(store.TeamRepository, store.ProfileRepository, store.OrderRepository, maxMembers)
	profileSvc := service.NewProfileService(store.ProfileRepository, store.UserRepository, store.ApplicationRepository, store.ReviewRepository, teamSvc)
	inventorySvc := service.NewInventoryService(store.HardwareRepository)
	orderSvc := service.NewOrderService(store.OrderRepository, store.HardwareRepository, store.ProfileRepository, store.UserRepository, store.IncidentRepository, inventorySvc)
	appSvc := service.NewApplicationService(store.ApplicationRepository, store.TeamRepository, store.ReviewRepository, teamSvc, maxMembers)
	reviewSvc := service.NewReviewService(store.ReviewRepository, store.ApplicationRepository, store.TeamRepository, store.UserRepository, reservations)
	mailer := service.NewDecisionMailer(store.ReviewRepository, store.ApplicationRepository, store.UserRepository, emailSvc, cfg.Hackathon.EventName, cfg.Location())

	// Initialize HTTP handlers
	handlers := httpapi.Handlers{
		Auth:        httpapi.NewAuthHandler(authSvc),
		Team:        httpapi.NewTeamHandler(teamSvc, profileSvc),
		Hardware:    httpapi.NewHardwareHandler(inventorySvc),
		Order:       httpapi.NewOrderHandler(orderSvc),
		Application: httpapi.NewApplicationHandler(appSvc),
		Review:      httpapi.NewReviewHandler(reviewSvc, mailer),
	}
	router := httpapi.NewRouter(handlers, authMiddleware)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
