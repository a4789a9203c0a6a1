package models

import "testing"

func TestClassifyMoisture(t *testing.T) {
	cases := []struct {
		moisture int
		want     MoistureState
	}{
		{-50, StateDry},
		{0, StateDry},
		{299, StateDry},
		{300, StateModerate},
		{450, StateModerate},
		{700, StateModerate},
		{701, StateWet},
		{1023, StateWet},
	}

	for _, tc := range cases {
		if got := ClassifyMoisture(tc.moisture); got != tc.want {
			t.Errorf("ClassifyMoisture(%d) = %s, want %s", tc.moisture, got, tc.want)
		}
	}
}

func TestSensorUpdateEmpty(t *testing.T) {
	if !(SensorUpdate{}).Empty() {
		t.Error("zero SensorUpdate should be empty")
	}

	active := false
	if (SensorUpdate{Active: &active}).Empty() {
		t.Error("SensorUpdate with Active set should not be empty")
	}
}

func TestSensorUpdateApply(t *testing.T) {
	sensor := &Sensor{SensorID: 3, SensorName: "Garden", Location: "north bed", Active: true}

	name := "Greenhouse"
	active := false
	update := SensorUpdate{SensorName: &name, Active: &active}
	update.Apply(sensor)

	if sensor.SensorName != "Greenhouse" {
		t.Errorf("sensor_name = %q, want Greenhouse", sensor.SensorName)
	}
	if sensor.Location != "north bed" {
		t.Errorf("location changed to %q, should be untouched", sensor.Location)
	}
	if sensor.Active {
		t.Error("active should have been set to false")
	}
	if sensor.SensorID != 3 {
		t.Errorf("sensor_id changed to %d", sensor.SensorID)
	}
}
