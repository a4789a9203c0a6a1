// FilePath: api/resources/api.resource.readings.go
package resources

import (
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gorilla/schema"
	nuts "github.com/vaudience/go-nuts"

	"github.com/verdantiot/soilhub/internal/errors"
	"github.com/verdantiot/soilhub/internal/hubservice"
)

// ReadingHandlers encapsulates the moisture-reading HTTP handlers
type ReadingHandlers struct {
	hubservice *hubservice.HubService
}

var queryDecoder = newQueryDecoder()

func newQueryDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

type ingestRequest struct {
	SensorID *int `json:"sensor_id"`
	Moisture *int `json:"moisture"`
}

type readingQuery struct {
	SensorID *int `schema:"sensor_id"`
}

// @Summary Ingest a moisture reading
// @Description Validate, classify and persist one soil-moisture reading
// @Tags readings
// @Accept json
// @Produce json
// @Param reading body ingestRequest true "Moisture reading"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.APIError
// @Failure 500 {object} errors.APIError
// @Router /data [post]
func (h *ReadingHandlers) IngestReading(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondWithError(w, errors.NewInternalError("failed to read request body", err).WithRequestID(requestID))
		return
	}
	h.hubservice.Diagf("raw data: %s", string(body))

	var req ingestRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.hubservice.Diagf("invalid ingest payload: %v", err)
		respondWithError(w, errors.NewValidationError("invalid JSON payload", err).WithRequestID(requestID))
		return
	}
	if req.Moisture == nil {
		respondWithError(w, errors.NewValidationError(ingestFieldsError(h.hubservice), nil).WithRequestID(requestID))
		return
	}
	h.hubservice.Diagf("parsed JSON: sensor_id=%s moisture=%d", formatOptionalInt(req.SensorID), *req.Moisture)

	if _, err := h.hubservice.IngestReading(r.Context(), req.SensorID, *req.Moisture); err != nil {
		respondWithError(w, asAPIError(err, requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"status": "data recorded successfully"})
}

// @Summary Get the latest reading
// @Description Get the most recent moisture record, optionally for one sensor
// @Tags readings
// @Produce json
// @Param sensor_id query int false "Sensor ID filter"
// @Success 200 {object} models.MoistureRecord
// @Failure 404 {object} errors.APIError
// @Router /latest [get]
func (h *ReadingHandlers) LatestReading(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var q readingQuery
	if err := queryDecoder.Decode(&q, r.URL.Query()); err != nil {
		respondWithError(w, errors.NewValidationError("invalid sensor_id filter", err).WithRequestID(requestID))
		return
	}

	record, err := h.hubservice.LatestReading(r.Context(), q.SensorID)
	if err != nil {
		respondWithError(w, asAPIError(err, requestID))
		return
	}
	if record == nil {
		respondWithJSON(w, http.StatusOK, struct{}{})
		return
	}

	respondWithJSON(w, http.StatusOK, record)
}

// @Summary Get the full reading history
// @Description Get all moisture records in timestamp order, optionally for one sensor
// @Tags readings
// @Produce json
// @Param sensor_id query int false "Sensor ID filter"
// @Success 200 {array} models.MoistureRecord
// @Router /all [get]
func (h *ReadingHandlers) AllReadings(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var q readingQuery
	if err := queryDecoder.Decode(&q, r.URL.Query()); err != nil {
		respondWithError(w, errors.NewValidationError("invalid sensor_id filter", err).WithRequestID(requestID))
		return
	}

	records := h.hubservice.AllReadings(r.Context(), q.SensorID)
	respondWithJSON(w, http.StatusOK, records)
}

// @Summary Download the data file
// @Description Download the whole backing record file as an attachment
// @Tags readings
// @Produce text/csv
// @Success 200 {file} file
// @Failure 404 {object} errors.APIError
// @Router /download [get]
func (h *ReadingHandlers) DownloadSnapshot(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	path, err := h.hubservice.SnapshotFile(r.Context())
	if err != nil {
		respondWithError(w, asAPIError(err, requestID))
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="`+filepath.Base(path)+`"`)
	w.Header().Set("Content-Type", "text/csv")
	http.ServeFile(w, r, path)
}

func ingestFieldsError(svc *hubservice.HubService) string {
	if svc.MultiSensor() {
		return "sensor_id and moisture required"
	}
	return "moisture required"
}

func formatOptionalInt(v *int) string {
	if v == nil {
		return "<nil>"
	}
	return strconv.Itoa(*v)
}
