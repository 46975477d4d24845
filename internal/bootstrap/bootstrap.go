package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/RohitShalgar4/campus360/internal/app/controllers"
	appMigrations "github.com/RohitShalgar4/campus360/internal/app/migrations"
	appRepos "github.com/RohitShalgar4/campus360/internal/app/repositories"
	appRoutes "github.com/RohitShalgar4/campus360/internal/app/routes"
	appServices "github.com/RohitShalgar4/campus360/internal/app/services"
	"github.com/RohitShalgar4/campus360/internal/config"
	"github.com/RohitShalgar4/campus360/internal/db"
	pkgAuth "github.com/RohitShalgar4/campus360/internal/pkg/auth"
	"github.com/RohitShalgar4/campus360/internal/pkg/filestorage"
	"github.com/RohitShalgar4/campus360/internal/pkg/helpers"
	"github.com/RohitShalgar4/campus360/internal/pkg/logger"
	"github.com/RohitShalgar4/campus360/internal/pkg/mailer"
	"github.com/RohitShalgar4/campus360/internal/seed"
)

// Dependencies holds the wired application graph
type Dependencies struct {
	Repos       *appRepos.Repositories
	Services    *appServices.Services
	Controllers *appControllers.Controllers
	JWTService  *pkgAuth.JWTService
	FileStorage *filestorage.LocalStorage
	Mailer      mailer.Mailer
	Logger      zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the connection pool, runs migrations and seeds
// default data
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Seeding failures should not block startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies wires repositories, services and controllers
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	// The storage base URL must match the static /uploads route
	baseURL := cfg.Server.BaseURL
	if baseURL == "" {
		baseURL = "http://localhost:" + cfg.Server.Port
	}
	storage, err := filestorage.NewLocalStorage(cfg.Server.StoragePath, baseURL+"/uploads")
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}
	deps.FileStorage = storage

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    helpers.ParseDuration(cfg.JWT.TokenExpiration, 24*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.Mailer = mailer.NewMailer(mailer.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
	}, lgr)

	deps.Services = appServices.NewServices(deps.Repos, cfg, deps.JWTService, storage, deps.Mailer)
	deps.Controllers = appControllers.NewControllers(deps.Services)

	return deps, nil
}

// SetupRouter configures the gin engine with middleware and routes
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(lgr))

	appRoutes.SetupRoutes(router, deps.Controllers, deps.JWTService)

	return router
}

// requestLogger emits one structured line per request
func requestLogger(lgr zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		lgr.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Str("clientIP", c.ClientIP()).
			Msg("Request handled")
	}
}
