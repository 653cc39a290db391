// Package server wires handlers, middleware and routes onto one chi router
// and runs the HTTP server with graceful shutdown.
//
// This is the composition layer: main builds the config, logger and store,
// and New assembles everything else from them.
//
// ROUTES:
//
//	GET    /healthz                          liveness
//	GET    /metrics                          Prometheus (METRICS_ENABLED)
//	GET    /api/progress/{userId}            list game results
//	POST   /api/progress                     save a game result
//	GET    /api/progress/{userId}/export     results as .xlsx (teacher)
//	GET    /api/lessons/{teacherId}          list lessons
//	POST   /api/lessons                      create a lesson
//	POST   /api/lessons/generate             generate a lesson plan
//	POST   /api/ai/chat                      tutor reply
//	GET    /api/game/question                math game question
//	GET    /api/game/round                   ten questions and the time limit
//	POST   /api/register, /api/login, /api/logout
//	GET    /api/user
//
// The auth routes and the export route exist only when JWT_SECRET is set.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/sakif/monkey-intelligence/internal/auth"
	"github.com/sakif/monkey-intelligence/internal/config"
	"github.com/sakif/monkey-intelligence/internal/game"
	"github.com/sakif/monkey-intelligence/internal/handler"
	"github.com/sakif/monkey-intelligence/internal/lesson"
	"github.com/sakif/monkey-intelligence/internal/metrics"
	"github.com/sakif/monkey-intelligence/internal/middleware"
	"github.com/sakif/monkey-intelligence/internal/model"
	"github.com/sakif/monkey-intelligence/internal/repository"
	"github.com/sakif/monkey-intelligence/internal/service"
)

const shutdownTimeout = 30 * time.Second

// Server owns the router and the store. The store is closed when Start
// returns.
type Server struct {
	router *chi.Mux
	config config.Config
	logger *slog.Logger
	store  repository.Store
}

// New builds the dependency chain (store → services → handlers) and
// registers every route.
func New(cfg config.Config, logger *slog.Logger, store repository.Store) (*Server, error) {
	s := &Server{
		router: chi.NewRouter(),
		config: cfg,
		logger: logger,
		store:  store,
	}

	if err := s.setupRoutes(); err != nil {
		return nil, fmt.Errorf("setting up routes: %w", err)
	}
	return s, nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) setupRoutes() error {
	// === Global Middleware ===
	// Order matters: the request id must exist before the logger reads it,
	// and Recoverer sits inside Logger so a recovered panic is logged as 500.
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(middleware.Logger(s.logger))
	if s.config.MetricsEnabled {
		s.router.Use(middleware.Metrics)
	}
	s.router.Use(chimiddleware.Recoverer)

	s.router.Get("/healthz", handler.HandleHealth)
	if s.config.MetricsEnabled {
		s.router.Handle("/metrics", metrics.Handler())
	}

	// === Services ===
	progressService := service.NewProgressService(s.store, s.logger)
	lessonService := service.NewLessonService(s.store, lesson.NewGenerator(), s.logger)
	chatService := service.NewChatService(s.logger)

	progressHandler := handler.NewProgressHandler(progressService, s.logger)
	lessonHandler := handler.NewLessonHandler(lessonService, s.logger)
	chatHandler := handler.NewChatHandler(chatService, s.logger)
	gameHandler := handler.NewGameHandler(game.NewGenerator(), s.logger)

	// === Auth (optional) ===
	var tokens *auth.TokenService
	var authHandler *handler.AuthHandler
	if s.config.AuthEnabled() {
		var err error
		tokens, err = auth.NewTokenService(s.config.JWTSecret, s.config.TokenTTL)
		if err != nil {
			return fmt.Errorf("creating token service: %w", err)
		}
		authService := service.NewAuthService(s.store, tokens, auth.NewPasswordService(s.config.BcryptCost), s.logger)
		authHandler = handler.NewAuthHandler(authService, s.logger)
	} else {
		s.logger.Warn("JWT_SECRET not set, authentication and progress export are disabled")
	}

	// === API Routes ===
	s.router.Route("/api", func(r chi.Router) {
		r.Get("/progress/{userId}", progressHandler.HandleList)
		r.Post("/progress", progressHandler.HandleSave)

		r.Get("/lessons/{teacherId}", lessonHandler.HandleList)
		r.Post("/lessons", lessonHandler.HandleCreate)
		r.Post("/lessons/generate", lessonHandler.HandleGenerate)

		r.Post("/ai/chat", chatHandler.HandleChat)
		r.Get("/game/question", gameHandler.HandleQuestion)
		r.Get("/game/round", gameHandler.HandleRound)

		if tokens == nil {
			return
		}

		r.Post("/register", authHandler.HandleRegister)
		r.Post("/login", authHandler.HandleLogin)
		r.Post("/logout", authHandler.HandleLogout)

		r.Group(func(r chi.Router) {
			r.Use(auth.CurrentUser(tokens))
			r.Get("/user", authHandler.HandleUser)
			r.With(auth.RequireRole(model.RoleTeacher)).
				Get("/progress/{userId}/export", progressHandler.HandleExport)
		})
	})

	return nil
}

// Start serves until SIGINT or SIGTERM, then drains in-flight requests for
// up to 30 seconds and closes the store.
func (s *Server) Start() error {
	defer func() {
		if err := s.store.Close(); err != nil {
			s.logger.Error("closing store", slog.String("error", err.Error()))
		}
	}()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.config.Port),
			slog.String("env", s.config.Env),
			slog.String("store", s.config.StoreDriver),
			slog.Bool("auth", s.config.AuthEnabled()),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
