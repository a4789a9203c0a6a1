// FilePath: api/resources/api.resource.sensors.go
package resources

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	nuts "github.com/vaudience/go-nuts"

	"github.com/verdantiot/soilhub/internal/errors"
	"github.com/verdantiot/soilhub/internal/hubservice"
	"github.com/verdantiot/soilhub/internal/models"
)

// SensorHandlers encapsulates the sensor-registry HTTP handlers
type SensorHandlers struct {
	hubservice *hubservice.HubService
}

type registerSensorRequest struct {
	SensorID   *int    `json:"sensor_id"`
	SensorName *string `json:"sensor_name"`
	Location   string  `json:"location"`
}

// @Summary Register a new sensor
// @Description Register a sensor identity; readings are only accepted from known, active sensors
// @Tags sensors
// @Accept json
// @Produce json
// @Param sensor body registerSensorRequest true "Sensor details"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.APIError
// @Failure 500 {object} errors.APIError
// @Router /sensor/add [post]
func (h *SensorHandlers) RegisterSensor(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var req registerSensorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, errors.NewValidationError("invalid JSON payload", err).WithRequestID(requestID))
		return
	}

	if _, err := h.hubservice.RegisterSensor(r.Context(), req.SensorID, req.SensorName, req.Location); err != nil {
		respondWithError(w, asAPIError(err, requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"status": "sensor added"})
}

// @Summary Update a sensor
// @Description Partially update sensor_name, location or active; other fields are dropped
// @Tags sensors
// @Accept json
// @Produce json
// @Param sensor_id path int true "Sensor ID"
// @Param update body models.SensorUpdate true "Fields to update"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.APIError
// @Failure 500 {object} errors.APIError
// @Router /sensor/update/{sensor_id} [put]
func (h *SensorHandlers) UpdateSensor(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	sensorID, err := strconv.Atoi(mux.Vars(r)["sensor_id"])
	if err != nil {
		respondWithError(w, errors.NewValidationError("invalid sensor_id", err).WithRequestID(requestID))
		return
	}

	var update models.SensorUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		respondWithError(w, errors.NewValidationError("invalid JSON payload", err).WithRequestID(requestID))
		return
	}

	if err := h.hubservice.UpdateSensor(r.Context(), sensorID, update); err != nil {
		respondWithError(w, asAPIError(err, requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"status": "sensor updated"})
}

// @Summary List sensors
// @Description Get all registered sensors ordered by sensor_id
// @Tags sensors
// @Produce json
// @Success 200 {array} models.Sensor
// @Router /sensors [get]
func (h *SensorHandlers) ListSensors(w http.ResponseWriter, r *http.Request) {
	sensors := h.hubservice.ListSensors(r.Context())
	respondWithJSON(w, http.StatusOK, sensors)
}
