package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/verdantiot/soilhub/internal/config"
	"github.com/verdantiot/soilhub/internal/errors"
	"github.com/verdantiot/soilhub/internal/hubservice"
	"github.com/verdantiot/soilhub/internal/models"
	"github.com/verdantiot/soilhub/internal/repository/file"
)

// In-memory repositories for the multi-sensor variant

type memSensorRepo struct {
	sensors map[int]*models.Sensor
}

func newMemSensorRepo() *memSensorRepo {
	return &memSensorRepo{sensors: make(map[int]*models.Sensor)}
}

func (r *memSensorRepo) Create(ctx context.Context, sensor *models.Sensor) error {
	cp := *sensor
	r.sensors[sensor.SensorID] = &cp
	return nil
}

func (r *memSensorRepo) Get(ctx context.Context, sensorID int) (*models.Sensor, error) {
	sensor, ok := r.sensors[sensorID]
	if !ok {
		return nil, errors.NewNotFoundError("sensor not found", nil)
	}
	cp := *sensor
	return &cp, nil
}

func (r *memSensorRepo) Update(ctx context.Context, sensor *models.Sensor) error {
	if _, ok := r.sensors[sensor.SensorID]; !ok {
		return errors.NewNotFoundError("sensor not found", nil)
	}
	cp := *sensor
	r.sensors[sensor.SensorID] = &cp
	return nil
}

func (r *memSensorRepo) List(ctx context.Context) ([]*models.Sensor, error) {
	sensors := make([]*models.Sensor, 0, len(r.sensors))
	for _, sensor := range r.sensors {
		cp := *sensor
		sensors = append(sensors, &cp)
	}
	sort.Slice(sensors, func(i, j int) bool { return sensors[i].SensorID < sensors[j].SensorID })
	return sensors, nil
}

type memRecordRepo struct {
	records []*models.MoistureRecord
}

func (r *memRecordRepo) Insert(ctx context.Context, record *models.MoistureRecord) error {
	cp := *record
	r.records = append(r.records, &cp)
	return nil
}

func (r *memRecordRepo) Latest(ctx context.Context, sensorID *int) (*models.MoistureRecord, error) {
	var latest *models.MoistureRecord
	for _, record := range r.records {
		if sensorID != nil && record.SensorID != *sensorID {
			continue
		}
		if latest == nil || record.Timestamp.After(latest.Timestamp) {
			latest = record
		}
	}
	if latest == nil {
		return nil, nil
	}
	cp := *latest
	return &cp, nil
}

func (r *memRecordRepo) ListAll(ctx context.Context, sensorID *int) ([]*models.MoistureRecord, error) {
	records := []*models.MoistureRecord{}
	for _, record := range r.records {
		if sensorID != nil && record.SensorID != *sensorID {
			continue
		}
		cp := *record
		records = append(records, &cp)
	}
	return records, nil
}

func newMultiSensorRouter(t *testing.T) (*Router, *memRecordRepo) {
	t.Helper()
	records := &memRecordRepo{}
	svc := hubservice.New(newMemSensorRepo(), records, nil, nil, nil)
	return NewRouter(svc), records
}

func newFileBackedRouter(t *testing.T) *Router {
	t.Helper()
	dir := t.TempDir()
	store, err := file.NewRecordStore(config.FileStoreConfig{
		DataPath: filepath.Join(dir, "moisture_records.csv"),
	})
	if err != nil {
		t.Fatalf("NewRecordStore: %v", err)
	}
	requestLog, err := file.NewRequestLog(filepath.Join(dir, "request_log.txt"))
	if err != nil {
		t.Fatalf("NewRequestLog: %v", err)
	}
	svc := hubservice.New(nil, store, store, nil, requestLog)
	return NewRouter(svc)
}

func doJSON(t *testing.T, router *Router, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decoding response %q: %v", rec.Body.String(), err)
	}
}

// Single-sensor (file-backed) variant

func TestFileBackedIngestAndQuery(t *testing.T) {
	router := newFileBackedRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/data", `{"moisture": 450}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("POST /data = %d, body %s", rec.Code, rec.Body.String())
	}
	var status map[string]string
	decodeBody(t, rec, &status)
	if status["status"] != "data recorded successfully" {
		t.Errorf("POST /data status = %q", status["status"])
	}

	rec = doJSON(t, router, http.MethodGet, "/latest", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /latest = %d, body %s", rec.Code, rec.Body.String())
	}
	var latest models.MoistureRecord
	decodeBody(t, rec, &latest)
	if latest.Moisture != 450 || latest.State != models.StateModerate {
		t.Errorf("GET /latest = %+v, want moisture 450 MODERATE", latest)
	}

	rec = doJSON(t, router, http.MethodGet, "/all", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /all = %d", rec.Code)
	}
	var all []models.MoistureRecord
	decodeBody(t, rec, &all)
	if len(all) != 1 {
		t.Errorf("GET /all returned %d records, want 1", len(all))
	}
}

func TestFileBackedLatestBeforeAnyData(t *testing.T) {
	router := newFileBackedRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/latest", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("GET /latest without data = %d, want 404", rec.Code)
	}
	var apiErr errors.APIError
	decodeBody(t, rec, &apiErr)
	if apiErr.Status != "no data file found" {
		t.Errorf("error status = %q", apiErr.Status)
	}
}

func TestFileBackedDownload(t *testing.T) {
	router := newFileBackedRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/download", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("GET /download without data = %d, want 404", rec.Code)
	}

	if rec := doJSON(t, router, http.MethodPost, "/data", `{"moisture": 120}`); rec.Code != http.StatusOK {
		t.Fatalf("POST /data = %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/download", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /download = %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Disposition"); !strings.Contains(got, "attachment") {
		t.Errorf("Content-Disposition = %q", got)
	}
	body := rec.Body.String()
	if !strings.HasPrefix(body, "timestamp,moisture,state") || !strings.Contains(body, "120,DRY") {
		t.Errorf("download body = %q", body)
	}
}

func TestFileBackedIngestValidation(t *testing.T) {
	router := newFileBackedRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/data", `not json`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("malformed body = %d, want 400", rec.Code)
	}

	rec = doJSON(t, router, http.MethodPost, "/data", `{"soil": 450}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing moisture = %d, want 400", rec.Code)
	}
	var apiErr errors.APIError
	decodeBody(t, rec, &apiErr)
	if apiErr.Status != "moisture required" {
		t.Errorf("error status = %q, want %q", apiErr.Status, "moisture required")
	}
}

func TestFileBackedHasNoRegistryRoutes(t *testing.T) {
	router := newFileBackedRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/sensors", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("GET /sensors in single-sensor mode = %d, want 404", rec.Code)
	}
	rec = doJSON(t, router, http.MethodPost, "/sensor/add", `{"sensor_id":1,"sensor_name":"Garden"}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("POST /sensor/add in single-sensor mode = %d, want 404", rec.Code)
	}
}

// Multi-sensor (registry-backed) variant

func TestRegistryLifecycle(t *testing.T) {
	router, _ := newMultiSensorRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/sensor/add", `{"sensor_id": 1, "sensor_name": "Garden", "location": "north bed"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("POST /sensor/add = %d, body %s", rec.Code, rec.Body.String())
	}
	var status map[string]string
	decodeBody(t, rec, &status)
	if status["status"] != "sensor added" {
		t.Errorf("add status = %q", status["status"])
	}

	rec = doJSON(t, router, http.MethodPost, "/sensor/add", `{"sensor_id": 1, "sensor_name": "Garden"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("duplicate registration = %d, want 400", rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/sensors", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /sensors = %d", rec.Code)
	}
	var sensors []models.Sensor
	decodeBody(t, rec, &sensors)
	if len(sensors) != 1 || sensors[0].SensorName != "Garden" || sensors[0].Location != "north bed" {
		t.Errorf("GET /sensors = %+v", sensors)
	}
}

func TestRegistryUpdateValidation(t *testing.T) {
	router, _ := newMultiSensorRouter(t)

	if rec := doJSON(t, router, http.MethodPost, "/sensor/add", `{"sensor_id": 1, "sensor_name": "Garden"}`); rec.Code != http.StatusOK {
		t.Fatalf("POST /sensor/add = %d", rec.Code)
	}

	rec := doJSON(t, router, http.MethodPut, "/sensor/update/1", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty update body = %d, want 400", rec.Code)
	}

	rec = doJSON(t, router, http.MethodPut, "/sensor/update/abc", `{"active": false}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("non-numeric sensor_id = %d, want 400", rec.Code)
	}

	rec = doJSON(t, router, http.MethodPut, "/sensor/update/1", `{"active": false}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("deactivation = %d, body %s", rec.Code, rec.Body.String())
	}
	var status map[string]string
	decodeBody(t, rec, &status)
	if status["status"] != "sensor updated" {
		t.Errorf("update status = %q", status["status"])
	}

	// Updates to unknown sensors succeed without creating anything
	rec = doJSON(t, router, http.MethodPut, "/sensor/update/99", `{"active": false}`)
	if rec.Code != http.StatusOK {
		t.Errorf("update of unknown sensor = %d, want 200", rec.Code)
	}
}

func TestMultiSensorIngestRequiresRegisteredSensor(t *testing.T) {
	router, _ := newMultiSensorRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/data", `{"moisture": 450}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing sensor_id = %d, want 400", rec.Code)
	}
	var apiErr errors.APIError
	decodeBody(t, rec, &apiErr)
	if apiErr.Status != "sensor_id and moisture required" {
		t.Errorf("error status = %q", apiErr.Status)
	}

	rec = doJSON(t, router, http.MethodPost, "/data", `{"sensor_id": 5, "moisture": 450}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("unregistered sensor = %d, want 400", rec.Code)
	}

	if rec := doJSON(t, router, http.MethodPost, "/sensor/add", `{"sensor_id": 5, "sensor_name": "Garden"}`); rec.Code != http.StatusOK {
		t.Fatalf("POST /sensor/add = %d", rec.Code)
	}
	rec = doJSON(t, router, http.MethodPost, "/data", `{"sensor_id": 5, "moisture": 450}`)
	if rec.Code != http.StatusOK {
		t.Errorf("registered sensor ingest = %d, body %s", rec.Code, rec.Body.String())
	}
}

func TestMultiSensorLatestFilter(t *testing.T) {
	router, records := newMultiSensorRouter(t)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	records.records = []*models.MoistureRecord{
		{SensorID: 1, Moisture: 100, State: models.StateDry, Timestamp: base},
		{SensorID: 2, Moisture: 800, State: models.StateWet, Timestamp: base.Add(time.Minute)},
	}

	rec := doJSON(t, router, http.MethodGet, "/latest?sensor_id=1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /latest?sensor_id=1 = %d", rec.Code)
	}
	var latest models.MoistureRecord
	decodeBody(t, rec, &latest)
	if latest.SensorID != 1 || latest.Moisture != 100 {
		t.Errorf("filtered latest = %+v", latest)
	}

	rec = doJSON(t, router, http.MethodGet, "/latest?sensor_id=notanumber", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("invalid filter = %d, want 400", rec.Code)
	}
}

func TestMultiSensorLatestEmptyStore(t *testing.T) {
	router, _ := newMultiSensorRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/latest", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /latest on empty store = %d, want 200", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "{}" {
		t.Errorf("GET /latest on empty store body = %q, want {}", body)
	}
}

func TestMultiSensorHasNoDownloadRoute(t *testing.T) {
	router, _ := newMultiSensorRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/download", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("GET /download in registry mode = %d, want 404", rec.Code)
	}
}

func TestHealthCheck(t *testing.T) {
	router, _ := newMultiSensorRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /health = %d", rec.Code)
	}
	var body map[string]string
	decodeBody(t, rec, &body)
	if body["status"] != "ok" {
		t.Errorf("health status = %q", body["status"])
	}
}
