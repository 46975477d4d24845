package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/RohitShalgar4/campus360/internal/bootstrap"
	"github.com/RohitShalgar4/campus360/internal/config"
)

// Server holds the state for the HTTP server
type Server struct {
	config *config.Config
	router *gin.Engine
	dbPool *pgxpool.Pool
	logger zerolog.Logger
	http   *http.Server
}

// NewServer creates and initializes a new server instance
func NewServer() (*Server, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to load config or setup logger: %w", err)
	}

	dbPool, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	deps, err := bootstrap.BuildDependencies(cfg, dbPool, lgr)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to setup dependencies: %w", err)
	}

	router := bootstrap.SetupRouter(cfg, deps, lgr)
	setupStaticFileServing(router, cfg, lgr)

	return &Server{
		config: cfg,
		router: router,
		dbPool: dbPool,
		logger: lgr,
	}, nil
}

// setupStaticFileServing serves the uploads directory so stored receipts
// and complaint images are reachable by URL
func setupStaticFileServing(router *gin.Engine, cfg *config.Config, lgr zerolog.Logger) {
	uploadPath := cfg.Server.StoragePath

	if _, err := os.Stat(uploadPath); os.IsNotExist(err) {
		if err := os.MkdirAll(uploadPath, os.ModePerm); err != nil {
			lgr.Error().Err(err).Str("path", uploadPath).Msg("Failed to create uploads directory")
			return
		}
	}

	router.Static("/uploads", uploadPath)
	lgr.Info().Str("path", uploadPath).Msg("Static file serving configured for uploads directory")
}

// Run starts the HTTP server and blocks until shutdown
func (s *Server) Run() error {
	s.logger.Info().Str("port", s.config.Server.Port).Msg("Starting server...")

	s.http = &http.Server{
		Addr:         ":" + s.config.Server.Port,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info().Str("addr", s.http.Addr).Msg("HTTP server listening")
		serverErrors <- s.http.ListenAndServe()
	}()

	osSignals := make(chan os.Signal, 1)
	signal.Notify(osSignals, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error starting server: %w", err)
		}
	case sig := <-osSignals:
		s.logger.Info().Str("signal", sig.String()).Msg("Received OS signal, initiating shutdown...")
	}

	return s.Shutdown(context.Background())
}

// Shutdown drains in-flight requests and closes the database pool
func (s *Server) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	var shutdownErr error
	if s.http != nil {
		if err := s.http.Shutdown(shutdownCtx); err != nil {
			s.logger.Error().Err(err).Msg("HTTP server shutdown error")
			shutdownErr = err
		}
	}

	if s.dbPool != nil {
		s.dbPool.Close()
		s.logger.Info().Msg("Database connection pool closed")
	}

	if shutdownErr != nil {
		return fmt.Errorf("shutdown completed with errors: %w", shutdownErr)
	}

	s.logger.Info().Msg("Shutdown completed gracefully")
	return nil
}
