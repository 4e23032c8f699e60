package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/optimrental/rental-api/internal/config"
	"github.com/optimrental/rental-api/internal/domain/admin"
	"github.com/optimrental/rental-api/internal/domain/booking"
	"github.com/optimrental/rental-api/internal/domain/vehicle"
	"github.com/optimrental/rental-api/internal/middleware"
	"github.com/optimrental/rental-api/internal/pkg/database"
	"github.com/optimrental/rental-api/internal/pkg/email"
	"github.com/optimrental/rental-api/internal/pkg/imaging"
	"github.com/optimrental/rental-api/internal/pkg/jwt"
	"github.com/optimrental/rental-api/internal/pkg/response"
	"github.com/optimrental/rental-api/internal/pkg/storage"
)

func main() {
	cfg := config.Load()
	setupLogger(cfg)

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Msg("Starting Optimrental API")

	db, err := database.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer database.ClosePostgres(db)

	redis, err := database.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer database.CloseRedis(redis)

	jwtService := jwt.NewService(cfg.JWTSecret, cfg.JWTAccessTTL)

	emailService := email.NewService(email.Config{
		APIKey:      cfg.SendGridAPIKey,
		FromEmail:   cfg.EmailFrom,
		FromName:    cfg.EmailFromName,
		FrontendURL: cfg.FrontendURL,
	})

	store := newStorage(cfg)
	processor := imaging.NewProcessor(imaging.DefaultConfig())

	// ---------- Repositories ----------
	vehicleRepo := vehicle.NewRepository(db)
	bookingRepo := booking.NewRepository(db)
	adminRepo := admin.NewRepository(db)

	// ---------- WebSocket hub ----------
	hub := booking.NewHub(redis)
	go hub.Run()
	defer hub.Shutdown()

	// ---------- Services ----------
	vehicleService := vehicle.NewService(vehicleRepo, redis, store, processor)
	bookingService := booking.NewService(bookingRepo, vehicleRepo, emailService, hub)
	adminService := admin.NewService(adminRepo)

	// ---------- Handlers ----------
	vehicleHandler := vehicle.NewHandler(vehicleService)
	bookingHandler := booking.NewHandler(bookingService, hub, cfg.AllowedOrigins)
	adminHandler := admin.NewHandler(adminService, jwtService)

	authMiddleware := middleware.Auth(jwtService)

	// ---------- Router ----------
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(cfg.AllowedOrigins))

	// WebSocket endpoint for the admin dashboard (before Compress)
	r.Get("/ws", func(w http.ResponseWriter, r *http.Request) {
		authMiddleware(http.HandlerFunc(bookingHandler.WebSocket)).ServeHTTP(w, r)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		response.OK(w, map[string]string{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(chimw.Compress(5))

		r.Route("/api/v1", func(r chi.Router) {
			r.Mount("/vehicles", vehicleHandler.Routes(authMiddleware))
			r.Mount("/bookings", bookingHandler.Routes(authMiddleware))
		})

		r.Mount("/api/admin", adminHandler.Routes(authMiddleware))
	})

	// Gallery images are served straight from disk with the local backend
	if cfg.StorageBackend == "local" {
		fs := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.LocalStorePath)))
		r.Get("/uploads/*", fs.ServeHTTP)
	}

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}

func newStorage(cfg *config.Config) storage.Storage {
	if cfg.StorageBackend == "s3" {
		store, err := storage.NewS3Storage(storage.Config{
			Endpoint:  cfg.S3Endpoint,
			Region:    cfg.S3Region,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Bucket:    cfg.S3Bucket,
			PublicURL: cfg.S3PublicURL,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create S3 storage")
		}
		return store
	}

	store, err := storage.NewLocalStorage(cfg.LocalStorePath, cfg.LocalStoreURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create local storage")
	}
	return store
}

func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: "15:04:05",
		})
	}
}
