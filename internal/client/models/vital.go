package models

import "time"

// Vital is a single vital-sign measurement as stored remotely. ID and
// CreatedAt are server-assigned; records are immutable once created
// except for deletion.
type Vital struct {
	ID                     int64     `json:"id"`
	UserID                 string    `json:"user_id"`
	HeartRate              int       `json:"heart_rate"`
	Temperature            float64   `json:"temperature"`
	SpO2                   int       `json:"spo2"`
	BloodPressureSystolic  int       `json:"blood_pressure_systolic"`
	BloodPressureDiastolic int       `json:"blood_pressure_diastolic"`
	Notes                  string    `json:"notes,omitempty"`
	CreatedAt              time.Time `json:"created_at"`
}

// VitalsCreate is the client-supplied payload for a new measurement.
// The server assigns id, user_id and created_at.
type VitalsCreate struct {
	HeartRate              int     `json:"heart_rate"`
	Temperature            float64 `json:"temperature"`
	SpO2                   int     `json:"spo2"`
	BloodPressureSystolic  int     `json:"blood_pressure_systolic"`
	BloodPressureDiastolic int     `json:"blood_pressure_diastolic"`
	Notes                  string  `json:"notes,omitempty"`
}

// VitalsSummary aggregates the collection for dashboard display. Latest
// values come from the most recent reading.
type VitalsSummary struct {
	TotalEntries          int
	LatestHeartRate       int
	LatestTemperature     float64
	LatestSpO2            int
	LatestBloodPressure   string
	LatestReadingRecorded time.Time
}
