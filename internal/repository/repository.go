// FilePath: internal/repository/repository.go
package repository

import (
	"context"

	"github.com/verdantiot/soilhub/internal/models"
)

// SensorRepository defines the interface for sensor registry operations.
// Sensors are never deleted; the registry only grows and flips flags.
type SensorRepository interface {
	Create(ctx context.Context, sensor *models.Sensor) error
	Get(ctx context.Context, sensorID int) (*models.Sensor, error)
	Update(ctx context.Context, sensor *models.Sensor) error
	List(ctx context.Context) ([]*models.Sensor, error)
}

// RecordRepository defines the interface for moisture record operations.
// Records are append-only; there is no update or delete.
//
// Latest returns (nil, nil) when the store is reachable but holds no
// matching record. The file backend returns a not-found error when the
// backing file itself is absent; callers surface that as 404.
type RecordRepository interface {
	Insert(ctx context.Context, record *models.MoistureRecord) error
	Latest(ctx context.Context, sensorID *int) (*models.MoistureRecord, error)
	ListAll(ctx context.Context, sensorID *int) ([]*models.MoistureRecord, error)
}

// Snapshotter is implemented by record stores whose full contents can be
// served as a downloadable file.
type Snapshotter interface {
	SnapshotPath(ctx context.Context) (string, error)
}

// DiagnosticLog receives one diagnostic line per ingest request in the
// file-backed variant.
type DiagnosticLog interface {
	Logf(format string, args ...any)
}
