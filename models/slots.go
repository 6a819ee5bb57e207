package models

import "time"

// CandidateSlot is a computed, not-yet-booked window offered to a
// customer. It is derived output and never persisted.
type CandidateSlot struct {
	ProviderID   string    `json:"provider_id"`
	ProviderName string    `json:"provider_name"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
}

// SlotQuery carries the parameters of an availability search.
// ProviderID and AppointmentTypeID are optional; the date range is
// half-open [StartDate, EndDate).
type SlotQuery struct {
	ProviderID        string
	AppointmentTypeID string
	StartDate         time.Time
	EndDate           time.Time
}
