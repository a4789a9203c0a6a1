// FilePath: internal/models/models.record.go
package models

import "time"

// MoistureState is the qualitative classification of a moisture reading
type MoistureState string

const (
	StateDry      MoistureState = "DRY"
	StateModerate MoistureState = "MODERATE"
	StateWet      MoistureState = "WET"
)

// Classification thresholds for raw moisture values
const (
	DryThreshold = 300
	WetThreshold = 700
)

// ClassifyMoisture maps a raw moisture value to its qualitative state.
// Values below DryThreshold are DRY, above WetThreshold are WET, the
// inclusive range in between is MODERATE.
func ClassifyMoisture(moisture int) MoistureState {
	switch {
	case moisture < DryThreshold:
		return StateDry
	case moisture > WetThreshold:
		return StateWet
	default:
		return StateModerate
	}
}

// MoistureRecord represents a single timestamped moisture measurement.
// State is always derived from Moisture at insert time; records are
// immutable once written.
type MoistureRecord struct {
	SensorID  int           `json:"sensor_id,omitempty" db:"sensor_id"`
	Moisture  int           `json:"moisture" db:"moisture"`
	State     MoistureState `json:"state" db:"state"`
	Timestamp time.Time     `json:"timestamp" db:"timestamp"`
}
