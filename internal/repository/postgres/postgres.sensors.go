// FilePath: internal/repository/postgres/postgres.sensors.go
package postgres

import (
	"context"
	"database/sql"

	"github.com/verdantiot/soilhub/internal/database"
	"github.com/verdantiot/soilhub/internal/errors"
	"github.com/verdantiot/soilhub/internal/models"
)

type SensorRepo struct {
	PostgresBaseRepo
}

func NewSensorRepository(db database.DB) (*SensorRepo, error) {
	repo := &SensorRepo{PostgresBaseRepo: PostgresBaseRepo{db: db}}
	if err := repo.initializeSchema(); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *SensorRepo) initializeSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS sensors (
			sensor_id    BIGINT PRIMARY KEY,
			sensor_name  TEXT NOT NULL,
			location     TEXT NOT NULL DEFAULT '',
			installed_at TIMESTAMPTZ NOT NULL,
			active       BOOLEAN NOT NULL DEFAULT TRUE
		)`

	if _, err := r.db.GetDB().Exec(query); err != nil {
		return errors.NewStorageError("failed to initialize sensors schema", err)
	}
	return nil
}

func (r *SensorRepo) Create(ctx context.Context, sensor *models.Sensor) error {
	query := `
		INSERT INTO sensors (
			sensor_id, sensor_name, location, installed_at, active
		) VALUES (
			:sensor_id, :sensor_name, :location, :installed_at, :active
		)`

	_, err := r.db.GetDB().NamedExecContext(ctx, query, sensor)
	if err != nil {
		return errors.NewStorageError("failed to create sensor", err)
	}
	return nil
}

func (r *SensorRepo) Get(ctx context.Context, sensorID int) (*models.Sensor, error) {
	sensor := &models.Sensor{}
	query := `SELECT * FROM sensors WHERE sensor_id = $1`

	err := r.db.GetDB().GetContext(ctx, sensor, query, sensorID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFoundError("sensor not found", err)
		}
		return nil, errors.NewStorageError("failed to get sensor", err)
	}
	return sensor, nil
}

func (r *SensorRepo) Update(ctx context.Context, sensor *models.Sensor) error {
	query := `
		UPDATE sensors SET
			sensor_name = :sensor_name,
			location = :location,
			active = :active
		WHERE sensor_id = :sensor_id`

	result, err := r.db.GetDB().NamedExecContext(ctx, query, sensor)
	if err != nil {
		return errors.NewStorageError("failed to update sensor", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.NewStorageError("failed to get rows affected", err)
	}

	if rows == 0 {
		return errors.NewNotFoundError("sensor not found", nil)
	}

	return nil
}

func (r *SensorRepo) List(ctx context.Context) ([]*models.Sensor, error) {
	sensors := []*models.Sensor{}
	query := `SELECT * FROM sensors ORDER BY sensor_id ASC`

	err := r.db.GetDB().SelectContext(ctx, &sensors, query)
	if err != nil {
		return nil, errors.NewStorageError("failed to list sensors", err)
	}

	return sensors, nil
}
