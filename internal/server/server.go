// FilePath: internal/server/server.go
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	nuts "github.com/vaudience/go-nuts"

	"github.com/verdantiot/soilhub/api"
	"github.com/verdantiot/soilhub/internal/cache"
	"github.com/verdantiot/soilhub/internal/config"
	"github.com/verdantiot/soilhub/internal/database"
	"github.com/verdantiot/soilhub/internal/hubservice"
	"github.com/verdantiot/soilhub/internal/monitoring"
	"github.com/verdantiot/soilhub/internal/repository/file"
	"github.com/verdantiot/soilhub/internal/repository/postgres"
)

// Server represents our HTTP server
type Server struct {
	config     *config.Config
	srv        *http.Server
	hubservice *hubservice.HubService
	monitoring *monitoring.Service
}

// New creates a new server instance
func New(cfg *config.Config) *Server {
	return &Server{
		config: cfg,
	}
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Initialize services
	s.hubservice = initializeHubService(s.config)
	s.monitoring = monitoring.NewService()

	// Set up telemetry event handlers
	s.setupTelemetryHandlers()

	// Build the route table and middleware chain
	router := api.NewRouter(s.hubservice)
	corsMiddleware := handlers.CORS(
		handlers.AllowedOrigins([]string{s.config.CORS.AllowedOrigin}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)
	handler := handlers.RecoveryHandler(handlers.PrintRecoveryStack(false))(corsMiddleware(router))

	s.srv = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port),
		Handler:      handler,
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
	}

	// Start server
	go func() {
		nuts.L.Infof("[Server] Starting server on %s (%s backend)", s.srv.Addr, s.config.Storage.Backend)
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			nuts.L.Errorf("[Server] Error starting server: %v", err)
			os.Exit(1)
		}
	}()

	return s.waitForShutdown()
}

// waitForShutdown waits for interrupt signal and gracefully shuts down the server
func (s *Server) waitForShutdown() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	nuts.L.Infof("[Server] Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}

	nuts.L.Infof("[Server] Server shut down successfully")
	return nil
}

// setupTelemetryHandlers routes service events into monitoring
func (s *Server) setupTelemetryHandlers() {
	s.hubservice.OnTelemetry("reading.recorded", func(id string) {
		s.monitoring.RecordEvent("reading_recorded", map[string]string{
			"sensor_id": id,
		})
	})

	s.hubservice.OnTelemetry("sensor.registered", func(id string) {
		s.monitoring.RecordEvent("sensor_registered", map[string]string{
			"sensor_id": id,
		})
	})

	// Read paths degrade to empty responses on storage failure; the event
	// trail is the only place an outage remains visible.
	s.hubservice.OnTelemetry("storage.degraded", func(surface string) {
		s.monitoring.RecordEvent("storage_degraded", map[string]string{
			"surface": surface,
		})
	})
}

// initializeHubService creates and configures the hub service for the
// selected storage backend
func initializeHubService(cfg *config.Config) *hubservice.HubService {
	readingCache := initReadingCache(cfg.Redis)

	switch cfg.Storage.Backend {
	case config.BackendFile:
		store, err := file.NewRecordStore(cfg.Storage.File)
		if err != nil {
			nuts.L.Fatalf("[Server] Failed to initialize file record store: %v", err)
		}
		requestLog, err := file.NewRequestLog(cfg.Storage.File.RequestLogPath)
		if err != nil {
			nuts.L.Fatalf("[Server] Failed to initialize request log: %v", err)
		}
		return hubservice.New(nil, store, store, readingCache, requestLog)

	default:
		db := initPostgres(cfg.Database.Postgres)
		sensors, err := postgres.NewSensorRepository(db)
		if err != nil {
			nuts.L.Fatalf("[Server] Failed to initialize sensor repository: %v", err)
		}
		records, err := postgres.NewRecordRepository(db)
		if err != nil {
			nuts.L.Fatalf("[Server] Failed to initialize record repository: %v", err)
		}
		return hubservice.New(sensors, records, nil, readingCache, nil)
	}
}

func initPostgres(cfg config.PostgresConfig) database.DB {
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		nuts.L.Fatalf("[Server] Failed to connect to PostgreSQL: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.Ping(ctx); err != nil {
		nuts.L.Fatalf("[Server] Failed to ping database: %v", err)
	}
	return db
}

func initReadingCache(cfg config.RedisConfig) *cache.ReadingCache {
	if !cfg.Enabled {
		return nil
	}
	readingCache, err := cache.New(cfg)
	if err != nil {
		nuts.L.Fatalf("[Server] Failed to connect to Redis: %v", err)
	}
	return readingCache
}
