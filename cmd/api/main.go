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
	"github.com/rs/zerolog/log"

	"github.com/up4/up4-api/internal/config"
	"github.com/up4/up4-api/internal/domain/event"
	"github.com/up4/up4-api/internal/domain/match"
	"github.com/up4/up4-api/internal/domain/relationship"
	"github.com/up4/up4-api/internal/domain/user"
	"github.com/up4/up4-api/internal/middleware"
	"github.com/up4/up4-api/internal/pkg/database"
	"github.com/up4/up4-api/internal/pkg/email"
	"github.com/up4/up4-api/internal/pkg/eventful"
	"github.com/up4/up4-api/internal/pkg/jwt"
	"github.com/up4/up4-api/internal/pkg/logger"
	"github.com/up4/up4-api/internal/pkg/response"
)

func main() {
	cfg := config.Load()

	if err := logger.Init(logger.Config{Level: cfg.LogLevel, Environment: cfg.Env}); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize logger")
	}

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Msg("Starting Up4 API")

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

	// ---------- Repositories ----------
	userRepo := user.NewRepository(db)
	eventRepo := event.NewRepository(db)
	relationshipRepo := relationship.NewRepository(db)
	matchRepo := match.NewRepository(db)

	// ---------- External clients ----------
	eventfulClient := eventful.NewClient(
		cfg.EventfulBaseURL,
		cfg.EventfulAPIKey,
		time.Duration(cfg.EventfulTimeoutSeconds)*time.Second,
	)

	sendgridClient := email.NewSendGridClient(email.SendGridConfig{
		APIKey:    cfg.SendGridAPIKey,
		FromEmail: cfg.ReportFrom,
		FromName:  "Up4 Reports",
	})

	moderationRelay, err := relationship.NewEmailRelay(sendgridClient, cfg.SupportEmail)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build moderation relay")
	}

	// ---------- Services ----------
	matchCache := match.NewCache(redis, cfg.MatchCacheTTL)
	matchService := match.NewService(matchRepo, userRepo, eventRepo, matchCache)
	relationshipService := relationship.NewService(relationshipRepo, userRepo, moderationRelay, matchCache)
	eventService := event.NewService(eventRepo, eventfulClient)

	// ---------- Handlers ----------
	userHandler := user.NewHandler(userRepo)
	eventHandler := event.NewHandler(eventService)
	relationshipHandler := relationship.NewHandler(relationshipService)
	matchHandler := match.NewHandler(matchService)

	authMiddleware := middleware.Auth(jwtService)

	// ---------- Router ----------
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(cfg.AllowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		response.OK(w, map[string]string{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
			response.OK(w, map[string]string{"message": "pong"})
		})

		r.Mount("/me", userHandler.Routes(authMiddleware))
		r.Mount("/users", relationshipHandler.Routes(authMiddleware))
		r.Mount("/events", eventHandler.Routes(authMiddleware))
		r.Mount("/matches", matchHandler.Routes(authMiddleware))
	})

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
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
