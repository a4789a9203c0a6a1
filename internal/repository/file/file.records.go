// FilePath: internal/repository/file/file.records.go
package file

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	nuts "github.com/vaudience/go-nuts"

	"github.com/verdantiot/soilhub/internal/config"
	"github.com/verdantiot/soilhub/internal/errors"
	"github.com/verdantiot/soilhub/internal/models"
)

const defaultPermissions = 0755

var csvHeader = []string{"timestamp", "moisture", "state"}

// RecordStore is the single-sensor, file-backed record store. The whole
// file is read or appended under one mutex so concurrent requests never
// interleave partial rows.
//
// The data file is created lazily on first insert, so Latest and the
// snapshot report not-found until one record has been written.
type RecordStore struct {
	mu   sync.Mutex
	path string
}

// NewRecordStore creates a file-backed record store rooted at the
// configured data path.
func NewRecordStore(cfg config.FileStoreConfig) (*RecordStore, error) {
	if err := createDirectoryIfNotExists(filepath.Dir(cfg.DataPath)); err != nil {
		return nil, err
	}
	return &RecordStore{path: cfg.DataPath}, nil
}

func (s *RecordStore) Insert(ctx context.Context, record *models.MoistureRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	writeHeader := false
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		writeHeader = true
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.NewStorageError("failed to open data file", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write(csvHeader); err != nil {
			return errors.NewStorageError("failed to write data file header", err)
		}
	}
	row := []string{
		record.Timestamp.Format(time.RFC3339),
		strconv.Itoa(record.Moisture),
		string(record.State),
	}
	if err := w.Write(row); err != nil {
		return errors.NewStorageError("failed to append moisture record", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return errors.NewStorageError("failed to flush moisture record", err)
	}

	nuts.L.Debugf("[RecordStore] Appended record: %s, moisture %d, state %s",
		row[0], record.Moisture, record.State)
	return nil
}

// Latest returns the most recently appended record. A missing data file
// is a not-found error; callers map it to 404. The sensor filter is
// ignored, this store knows only one sensor.
func (s *RecordStore) Latest(ctx context.Context, sensorID *int) (*models.MoistureRecord, error) {
	records, err := s.readAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return records[len(records)-1], nil
}

// ListAll returns every record in insertion order. Unlike Latest, a
// missing data file yields an empty result rather than an error.
func (s *RecordStore) ListAll(ctx context.Context, sensorID *int) ([]*models.MoistureRecord, error) {
	records, err := s.readAll()
	if err != nil {
		if errors.IsNotFound(err) {
			return []*models.MoistureRecord{}, nil
		}
		return nil, err
	}
	return records, nil
}

// SnapshotPath returns the path of the backing file for download.
func (s *RecordStore) SnapshotPath(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return "", errors.NewNotFoundError("no data file found", err)
	}
	return s.path, nil
}

func (s *RecordStore) readAll() ([]*models.MoistureRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("no data file found", err)
		}
		return nil, errors.NewStorageError("failed to open data file", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, errors.NewStorageError("failed to read data file", err)
	}

	records := make([]*models.MoistureRecord, 0, len(rows))
	for i, row := range rows {
		if i == 0 {
			// header row
			continue
		}
		record, err := parseRow(row)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func parseRow(row []string) (*models.MoistureRecord, error) {
	if len(row) != len(csvHeader) {
		return nil, errors.NewStorageError("malformed data file row", nil)
	}
	ts, err := time.Parse(time.RFC3339, row[0])
	if err != nil {
		return nil, errors.NewStorageError("malformed timestamp in data file", err)
	}
	moisture, err := strconv.Atoi(row[1])
	if err != nil {
		return nil, errors.NewStorageError("malformed moisture value in data file", err)
	}
	return &models.MoistureRecord{
		Moisture:  moisture,
		State:     models.MoistureState(row[2]),
		Timestamp: ts,
	}, nil
}

func createDirectoryIfNotExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		err := os.MkdirAll(path, defaultPermissions)
		if err != nil {
			return errors.NewStorageError("failed to create directory", err)
		}
	}
	return nil
}
