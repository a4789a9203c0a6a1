// FilePath: internal/hubservice/hubservice.sensors.go
package hubservice

import (
	"context"
	"strconv"
	"time"

	nuts "github.com/vaudience/go-nuts"

	"github.com/verdantiot/soilhub/internal/errors"
	"github.com/verdantiot/soilhub/internal/models"
)

// RegisterSensor creates a new sensor with proper validation. A sensor_id
// of zero counts as missing.
func (s *HubService) RegisterSensor(ctx context.Context, sensorID *int, sensorName *string, location string) (*models.Sensor, error) {
	if sensorID == nil || *sensorID == 0 || sensorName == nil || *sensorName == "" {
		return nil, errors.NewValidationError("sensor_id and sensor_name required", nil)
	}

	// Select-then-insert, the same duplicate check the store contract
	// defines. A race between two concurrent registrations falls through
	// to the primary key constraint.
	_, err := s.Sensors.Get(ctx, *sensorID)
	if err == nil {
		return nil, errors.NewConflictError("sensor already exists", nil)
	}
	if !errors.IsNotFound(err) {
		return nil, err
	}

	sensor := &models.Sensor{
		SensorID:    *sensorID,
		SensorName:  *sensorName,
		Location:    location,
		InstalledAt: time.Now().UTC(),
		Active:      true,
	}

	nuts.L.Infof("[SensorService] Registering sensor %d (%s)", sensor.SensorID, sensor.SensorName)
	if err := s.Sensors.Create(ctx, sensor); err != nil {
		return nil, err
	}

	s.events.Emit("sensor.registered", strconv.Itoa(sensor.SensorID))
	return sensor, nil
}

// UpdateSensor applies a partial update to an existing sensor. Only
// sensor_name, location and active are updatable; an update carrying none
// of them is rejected. Updating an unknown sensor is accepted as a no-op;
// existing clients rely on that tolerance.
func (s *HubService) UpdateSensor(ctx context.Context, sensorID int, update models.SensorUpdate) error {
	if update.Empty() {
		return errors.NewValidationError("no updatable fields provided", nil)
	}

	sensor, err := s.Sensors.Get(ctx, sensorID)
	if err != nil {
		if errors.IsNotFound(err) {
			nuts.L.Warnf("[SensorService] Update for unknown sensor %d accepted as no-op", sensorID)
			return nil
		}
		return err
	}

	update.Apply(sensor)

	nuts.L.Infof("[SensorService] Updating sensor %d", sensorID)
	if err := s.Sensors.Update(ctx, sensor); err != nil {
		if errors.IsNotFound(err) {
			// Sensor vanished between read and write; still a no-op success.
			return nil
		}
		return err
	}
	return nil
}

// ListSensors returns all sensors ordered by sensor_id. A storage failure
// degrades to an empty list; dashboard consumers tolerate missing data
// better than errors.
func (s *HubService) ListSensors(ctx context.Context) []*models.Sensor {
	sensors, err := s.Sensors.List(ctx)
	if err != nil {
		nuts.L.Warnf("[SensorService] Listing sensors degraded to empty: %v", err)
		s.events.Emit("storage.degraded", "sensors")
		return []*models.Sensor{}
	}
	return sensors
}

// IsActiveSensor reports whether the sensor exists and is active. An
// unknown sensor is simply inactive; a storage failure is surfaced so
// ingestion can fail loudly rather than silently dropping data.
func (s *HubService) IsActiveSensor(ctx context.Context, sensorID int) (bool, error) {
	sensor, err := s.Sensors.Get(ctx, sensorID)
	if err != nil {
		if errors.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return sensor.Active, nil
}
