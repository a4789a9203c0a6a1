// FilePath: internal/hubservice/hubservice.records.go
package hubservice

import (
	"context"
	"strconv"
	"time"

	nuts "github.com/vaudience/go-nuts"

	"github.com/verdantiot/soilhub/internal/errors"
	"github.com/verdantiot/soilhub/internal/models"
)

// IngestReading validates, classifies and persists one moisture reading.
// In the multi-sensor variant the reading is gated on a known, active
// sensor; the single-sensor variant ignores sensor identity.
func (s *HubService) IngestReading(ctx context.Context, sensorID *int, moisture int) (*models.MoistureRecord, error) {
	var sid int
	if s.MultiSensor() {
		if sensorID == nil || *sensorID == 0 {
			return nil, errors.NewValidationError("sensor_id and moisture required", nil)
		}
		sid = *sensorID

		active, err := s.IsActiveSensor(ctx, sid)
		if err != nil {
			return nil, err
		}
		if !active {
			return nil, errors.NewValidationError("invalid or inactive sensor_id", nil)
		}
	}

	record := &models.MoistureRecord{
		SensorID:  sid,
		Moisture:  moisture,
		State:     models.ClassifyMoisture(moisture),
		Timestamp: time.Now().UTC(),
	}

	if err := s.Records.Insert(ctx, record); err != nil {
		nuts.L.Errorf("[RecordService] Failed to persist reading (sensor=%d moisture=%d state=%s): %v",
			sid, moisture, record.State, err)
		s.Diagf("persist failed: sensor=%d moisture=%d state=%s error=%v", sid, moisture, record.State, err)
		return nil, err
	}

	if s.Cache != nil {
		s.Cache.SetLatest(ctx, record)
	}

	nuts.L.Infof("[RecordService] Data received: %s, moisture %d, state %s",
		record.Timestamp.Format(time.RFC3339), moisture, record.State)
	s.Diagf("data recorded successfully: %s, %d, %s",
		record.Timestamp.Format(time.RFC3339), moisture, record.State)
	s.events.Emit("reading.recorded", strconv.Itoa(sid))

	return record, nil
}

// LatestReading returns the most recent record, optionally filtered by
// sensor. A reachable but empty store yields (nil, nil); a not-found
// error from the file backend (absent data file) is passed through so the
// handler can answer 404; any other storage failure degrades to empty.
func (s *HubService) LatestReading(ctx context.Context, sensorID *int) (*models.MoistureRecord, error) {
	if s.Cache != nil {
		if record, ok := s.Cache.GetLatest(ctx, sensorID); ok {
			return record, nil
		}
	}

	record, err := s.Records.Latest(ctx, sensorID)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, err
		}
		nuts.L.Warnf("[RecordService] Latest reading degraded to empty: %v", err)
		s.events.Emit("storage.degraded", "latest")
		return nil, nil
	}
	return record, nil
}

// AllReadings returns the full history in timestamp order, optionally
// filtered by sensor. Storage failures degrade to an empty history, a
// deliberate policy: dashboard consumers see "no data" instead of an
// outage. The degradation is logged and counted.
func (s *HubService) AllReadings(ctx context.Context, sensorID *int) []*models.MoistureRecord {
	records, err := s.Records.ListAll(ctx, sensorID)
	if err != nil {
		nuts.L.Warnf("[RecordService] History read degraded to empty: %v", err)
		s.events.Emit("storage.degraded", "all")
		return []*models.MoistureRecord{}
	}
	return records
}

// SnapshotFile returns the path of the downloadable backing file.
func (s *HubService) SnapshotFile(ctx context.Context) (string, error) {
	if s.Snapshot == nil {
		return "", errors.NewNotFoundError("no data file found", nil)
	}
	return s.Snapshot.SnapshotPath(ctx)
}
