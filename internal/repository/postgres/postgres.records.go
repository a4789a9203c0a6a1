// FilePath: internal/repository/postgres/postgres.records.go
package postgres

import (
	"context"
	"database/sql"

	"github.com/verdantiot/soilhub/internal/database"
	"github.com/verdantiot/soilhub/internal/errors"
	"github.com/verdantiot/soilhub/internal/models"
)

type RecordRepo struct {
	PostgresBaseRepo
}

func NewRecordRepository(db database.DB) (*RecordRepo, error) {
	repo := &RecordRepo{PostgresBaseRepo: PostgresBaseRepo{db: db}}
	if err := repo.initializeSchema(); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *RecordRepo) initializeSchema() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS moisture_records (
			id        BIGSERIAL PRIMARY KEY,
			sensor_id BIGINT NOT NULL,
			moisture  BIGINT NOT NULL,
			state     TEXT NOT NULL,
			timestamp TIMESTAMPTZ NOT NULL
		)`,
		// Index for latest-reading queries
		`CREATE INDEX IF NOT EXISTS idx_moisture_records_sensor_timestamp
		 ON moisture_records(sensor_id, timestamp DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_moisture_records_timestamp
		 ON moisture_records(timestamp)`,
	}

	for _, query := range queries {
		if _, err := r.db.GetDB().Exec(query); err != nil {
			return errors.NewStorageError("failed to initialize moisture_records schema", err)
		}
	}
	return nil
}

func (r *RecordRepo) Insert(ctx context.Context, record *models.MoistureRecord) error {
	query := `
		INSERT INTO moisture_records (sensor_id, moisture, state, timestamp)
		VALUES (:sensor_id, :moisture, :state, :timestamp)`

	_, err := r.db.GetDB().NamedExecContext(ctx, query, record)
	if err != nil {
		return errors.NewStorageError("failed to insert moisture record", err)
	}
	return nil
}

func (r *RecordRepo) Latest(ctx context.Context, sensorID *int) (*models.MoistureRecord, error) {
	record := &models.MoistureRecord{}
	query := `
		SELECT sensor_id, moisture, state, timestamp
		FROM moisture_records`
	args := []interface{}{}
	if sensorID != nil {
		query += ` WHERE sensor_id = $1`
		args = append(args, *sensorID)
	}
	query += `
		ORDER BY timestamp DESC
		LIMIT 1`

	err := r.db.GetDB().GetContext(ctx, record, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.NewStorageError("failed to get latest moisture record", err)
	}
	return record, nil
}

func (r *RecordRepo) ListAll(ctx context.Context, sensorID *int) ([]*models.MoistureRecord, error) {
	records := []*models.MoistureRecord{}
	query := `
		SELECT sensor_id, moisture, state, timestamp
		FROM moisture_records`
	args := []interface{}{}
	if sensorID != nil {
		query += ` WHERE sensor_id = $1`
		args = append(args, *sensorID)
	}
	query += ` ORDER BY timestamp ASC`

	err := r.db.GetDB().SelectContext(ctx, &records, query, args...)
	if err != nil {
		return nil, errors.NewStorageError("failed to list moisture records", err)
	}
	return records, nil
}
