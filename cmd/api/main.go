package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/RohitShalgar4/campus360/internal/pkg/logger"
	"github.com/RohitShalgar4/campus360/internal/server"
)

// @title Campus360 API
// @version 1.0
// @description REST API for the Campus360 college portal

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	// A .env file is a development convenience; absence is fine
	if err := godotenv.Load(); err == nil {
		logger.Debug().Msg("Loaded environment from .env file")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully")
}
