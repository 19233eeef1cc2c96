package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-doctor-directory/config"
	deliveryHttp "go-doctor-directory/internal/delivery/http"
	"go-doctor-directory/internal/delivery/http/handler"
	"go-doctor-directory/internal/delivery/http/middleware"
	domainRepo "go-doctor-directory/internal/domain/repository"
	"go-doctor-directory/internal/infrastructure/cache"
	"go-doctor-directory/internal/infrastructure/database"
	"go-doctor-directory/internal/repository"
	"go-doctor-directory/internal/service"
	"go-doctor-directory/internal/usecase"
	"go-doctor-directory/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
	Directory   usecase.DirectoryUsecase
	SessionLock *service.SessionLockService
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	log := setupLogger(cfg.App.LogLevel)
	log.Info("Configuration loaded successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	log.Info("Redis connected successfully")

	// Initialize record source
	source, err := app.initializeSource(cfg, log)
	if err != nil {
		app.Close()
		return nil, err
	}

	// Initialize usecases
	app.Directory = usecase.NewDirectoryUsecase(log, source, cfg.Directory.BasePath, cfg.Directory.SuggestionLimit)
	app.SessionLock = service.NewSessionLockService(log)
	sessionRepo := repository.NewSessionRepository(redisClient, cfg.Directory.SessionTTL)
	sessionUsecase := usecase.NewSessionUsecase(log, sessionRepo, app.Directory, app.SessionLock, cfg.Directory.BasePath)

	app.Server = initializeServer(cfg, log, app.Directory, sessionUsecase)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(level string) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)

	return log
}

// initializeSource builds the record source selected by SOURCE_DRIVER,
// wrapped in the redis cache when enabled.
func (app *App) initializeSource(cfg *config.Config, log *logrus.Logger) (domainRepo.DoctorSource, error) {
	apiSource := repository.NewAPIDoctorSource(cfg.Source.URL, repository.WithSourceTimeout(cfg.Source.Timeout))

	var source domainRepo.DoctorSource = apiSource
	if cfg.Source.Driver == config.SourceDriverPostgres {
		db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Env)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		app.DB = db
		log.Info("Database connected successfully")

		if err := database.Migrate(db); err != nil {
			return nil, err
		}

		doctorRepo := repository.NewDoctorRepository()
		if cfg.Source.SeedFromAPI {
			ctx, cancel := context.WithTimeout(context.Background(), cfg.Source.Timeout*2)
			defer cancel()

			seeder := service.NewSeedService(db, log, doctorRepo, apiSource)
			if _, err := seeder.SeedIfEmpty(ctx); err != nil {
				log.Warnf("Failed to seed doctors: %+v", err)
			}
		}

		source = repository.NewDatabaseDoctorSource(db, doctorRepo)
	}

	if cfg.Source.CacheEnabled {
		source = repository.NewCachedDoctorSource(source, app.RedisClient, cfg.Source.CacheTTL, log)
	}

	log.Infof("Using %s doctor source", cfg.Source.Driver)
	return source, nil
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, directoryUsecase usecase.DirectoryUsecase, sessionUsecase usecase.SessionUsecase) *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize handlers
	directoryHandler := handler.NewDirectoryHandler(directoryUsecase)
	sessionHandler := handler.NewSessionHandler(sessionUsecase, customValidator)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.AllowedOrigin)
	loggingMiddleware := middleware.NewLoggingMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(directoryHandler, sessionHandler, corsMiddleware, loggingMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server, loads the doctors and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Load doctors once; requests report "loading" until it completes
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), app.Config.Source.Timeout*2)
		defer cancel()
		if err := app.Directory.Load(ctx); err != nil {
			logrus.Errorf("Doctor directory unavailable: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close stops background services and closes all connections (database, redis)
func (app *App) Close() {
	if app.SessionLock != nil {
		app.SessionLock.Stop()
	}

	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
