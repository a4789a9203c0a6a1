package hubservice

import (
	nuts "github.com/vaudience/go-nuts"

	"github.com/verdantiot/soilhub/internal/cache"
	"github.com/verdantiot/soilhub/internal/errors"
	"github.com/verdantiot/soilhub/internal/repository"
)

// HubService contains all repositories and service-wide dependencies.
// Sensors is nil in the single-sensor file variant; Snapshot and Diag are
// nil in the hosted postgres variant. Cache is optional in both.
type HubService struct {
	Sensors  repository.SensorRepository
	Records  repository.RecordRepository
	Snapshot repository.Snapshotter
	Cache    *cache.ReadingCache
	Diag     repository.DiagnosticLog

	events *nuts.EventEmitter
}

// New creates a new HubService instance
func New(
	sensors repository.SensorRepository,
	records repository.RecordRepository,
	snapshot repository.Snapshotter,
	readingCache *cache.ReadingCache,
	diag repository.DiagnosticLog,
) *HubService {
	return &HubService{
		Sensors:  sensors,
		Records:  records,
		Snapshot: snapshot,
		Cache:    readingCache,
		Diag:     diag,
		events:   nuts.NewEventEmitter(),
	}
}

// MultiSensor reports whether a sensor registry is wired in, which gates
// ingestion on known, active sensors.
func (s *HubService) MultiSensor() bool {
	return s.Sensors != nil
}

// Validate checks if all required dependencies are initialized
func (s *HubService) Validate() error {
	if s.Records == nil {
		return errors.NewInternalError("missing repository: records", nil)
	}
	return nil
}

// OnTelemetry registers a callback for telemetry events
func (s *HubService) OnTelemetry(event string, handler func(id string)) {
	s.events.On(event, "telemetry_handler", func(args ...interface{}) {
		if len(args) > 0 {
			if id, ok := args[0].(string); ok {
				handler(id)
			}
		}
	})
}

// Diagf writes one line to the per-request diagnostic log when the
// file-backed variant is active. A nil log makes this a no-op.
func (s *HubService) Diagf(format string, args ...any) {
	if s.Diag == nil {
		return
	}
	s.Diag.Logf(format, args...)
}
