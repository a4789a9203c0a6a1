// FilePath: internal/models/models.sensor.go
package models

import "time"

// Sensor represents a registered soil-moisture sensor. SensorID is the
// caller-supplied identity key and is immutable, as is InstalledAt.
type Sensor struct {
	SensorID    int       `json:"sensor_id" db:"sensor_id"`
	SensorName  string    `json:"sensor_name" db:"sensor_name"`
	Location    string    `json:"location" db:"location"`
	InstalledAt time.Time `json:"installed_at" db:"installed_at"`
	Active      bool      `json:"active" db:"active"`
}

// SensorUpdate carries the updatable subset of sensor fields. Nil fields
// are left untouched; any other incoming field is dropped before it gets
// this far.
type SensorUpdate struct {
	SensorName *string `json:"sensor_name"`
	Location   *string `json:"location"`
	Active     *bool   `json:"active"`
}

// Empty reports whether the update carries no recognized field.
func (u SensorUpdate) Empty() bool {
	return u.SensorName == nil && u.Location == nil && u.Active == nil
}

// Apply copies the non-nil fields onto the sensor.
func (u SensorUpdate) Apply(s *Sensor) {
	if u.SensorName != nil {
		s.SensorName = *u.SensorName
	}
	if u.Location != nil {
		s.Location = *u.Location
	}
	if u.Active != nil {
		s.Active = *u.Active
	}
}
