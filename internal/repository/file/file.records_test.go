package file

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/verdantiot/soilhub/internal/config"
	"github.com/verdantiot/soilhub/internal/errors"
	"github.com/verdantiot/soilhub/internal/models"
)

func newTestStore(t *testing.T) *RecordStore {
	t.Helper()
	cfg := config.FileStoreConfig{
		DataPath: filepath.Join(t.TempDir(), "moisture_records.csv"),
	}
	store, err := NewRecordStore(cfg)
	if err != nil {
		t.Fatalf("NewRecordStore: %v", err)
	}
	return store
}

func record(moisture int, ts time.Time) *models.MoistureRecord {
	return &models.MoistureRecord{
		Moisture:  moisture,
		State:     models.ClassifyMoisture(moisture),
		Timestamp: ts,
	}
}

func TestLatestBeforeFirstInsert(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Latest(context.Background(), nil)
	if !errors.IsNotFound(err) {
		t.Fatalf("Latest on absent file: got %v, want not-found", err)
	}
}

func TestSnapshotBeforeFirstInsert(t *testing.T) {
	store := newTestStore(t)

	_, err := store.SnapshotPath(context.Background())
	if !errors.IsNotFound(err) {
		t.Fatalf("SnapshotPath on absent file: got %v, want not-found", err)
	}
}

func TestListAllBeforeFirstInsert(t *testing.T) {
	store := newTestStore(t)

	records, err := store.ListAll(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListAll on absent file: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("ListAll on absent file returned %d records", len(records))
	}
}

func TestInsertAndReadBack(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, moisture := range []int{120, 450, 880} {
		if err := store.Insert(ctx, record(moisture, base.Add(time.Duration(i)*time.Minute))); err != nil {
			t.Fatalf("Insert #%d: %v", i, err)
		}
	}

	records, err := store.ListAll(ctx, nil)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("ListAll returned %d records, want 3", len(records))
	}
	wantStates := []models.MoistureState{models.StateDry, models.StateModerate, models.StateWet}
	for i, rec := range records {
		if rec.State != wantStates[i] {
			t.Errorf("record %d state = %s, want %s", i, rec.State, wantStates[i])
		}
	}
	for i := 1; i < len(records); i++ {
		if records[i].Timestamp.Before(records[i-1].Timestamp) {
			t.Errorf("records out of insertion order at index %d", i)
		}
	}

	latest, err := store.Latest(ctx, nil)
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if latest.Moisture != 880 || latest.State != models.StateWet {
		t.Errorf("Latest = %+v, want moisture 880 WET", latest)
	}
}

func TestLatestIgnoresSensorFilter(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Insert(ctx, record(500, time.Now().UTC())); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	sensorID := 42
	latest, err := store.Latest(ctx, &sensorID)
	if err != nil {
		t.Fatalf("Latest with filter: %v", err)
	}
	if latest == nil || latest.Moisture != 500 {
		t.Fatalf("Latest with filter = %+v, want the single stored record", latest)
	}
}

func TestSnapshotContainsHeaderAndRows(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	if err := store.Insert(ctx, record(450, ts)); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	path, err := store.SnapshotPath(ctx)
	if err != nil {
		t.Fatalf("SnapshotPath: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	content := string(data)
	if !strings.HasPrefix(content, "timestamp,moisture,state") {
		t.Errorf("snapshot missing header: %q", content)
	}
	if !strings.Contains(content, "450,MODERATE") {
		t.Errorf("snapshot missing record row: %q", content)
	}
}
