package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/eventlane/eventlane-go/internal/config"
	"github.com/eventlane/eventlane-go/internal/crypto"
	"github.com/eventlane/eventlane-go/internal/handler"
	"github.com/eventlane/eventlane-go/internal/middleware"
	"github.com/eventlane/eventlane-go/internal/repository"
	"github.com/eventlane/eventlane-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	connectCtx, connectCancel := context.WithTimeout(context.Background(), 10*time.Second)
	client, err := repository.NewClient(connectCtx, cfg.MongoURI)
	connectCancel()
	if err != nil {
		slog.Error("mongodb connection failed", "error", err)
		os.Exit(1)
	}

	db := client.Database(cfg.MongoDB)

	userRepo := repository.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(context.Background()); err != nil {
		slog.Warn("creating user indexes failed", "error", err)
	}
	eventRepo := repository.NewEventRepository(db)

	authService := service.NewAuthService(userRepo, crypto.PlainScheme{}, cfg.SessionSecret, cfg.SessionTTL)
	authHandler := handler.NewAuthHandler(authService)

	eventService := service.NewEventService(eventRepo)
	eventHandler := handler.NewEventHandler(eventService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Event server is running"))
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Post("/register", authHandler.HandleRegister)
	r.Post("/login", authHandler.HandleLogin)
	r.Post("/logout", authHandler.HandleLogout)

	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionAuth(cfg.SessionSecret))
		r.Get("/user/profile", authHandler.HandleProfile)
	})

	r.Post("/addEvent", eventHandler.HandleAddEvent)
	r.Get("/events", eventHandler.HandleListEvents)
	r.Get("/event/{id}", eventHandler.HandleGetEvent)
	r.Patch("/joinEvent/{id}", eventHandler.HandleJoinEvent)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
	}

	if err := client.Disconnect(ctx); err != nil {
		slog.Error("mongodb disconnect failed", "error", err)
	}

	slog.Info("server stopped")
}
