package models

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates at the store boundary.
const DateLayout = "2006-01-02"

// DateKey formats a timestamp's calendar date for use as a map key or
// store filter value.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// ClockInterval is a half-open [Start, End) time-of-day range expressed
// in minutes from midnight (e.g. 540 for 9:00 AM). It carries no date.
type ClockInterval struct {
	Start int `bson:"start" json:"start"`
	End   int `bson:"end" json:"end"`
}

// Validate rejects intervals with Start >= End or bounds outside a day.
func (ci ClockInterval) Validate() error {
	if ci.Start < 0 || ci.End > 24*60 {
		return fmt.Errorf("interval %d-%d outside 0..1440", ci.Start, ci.End)
	}
	if ci.Start >= ci.End {
		return fmt.Errorf("interval start %d must precede end %d", ci.Start, ci.End)
	}
	return nil
}

// Contains reports whether inner lies fully within ci.
func (ci ClockInterval) Contains(inner ClockInterval) bool {
	return inner.Start >= ci.Start && inner.End <= ci.End
}

// Label renders the interval as "HH:MM-HH:MM" for logs and responses.
func (ci ClockInterval) Label() string {
	return fmt.Sprintf("%02d:%02d-%02d:%02d", ci.Start/60, ci.Start%60, ci.End/60, ci.End%60)
}

// WeeklySchedule maps each weekday to its working intervals. A nil or
// empty slice means the provider does not work that day.
type WeeklySchedule struct {
	Monday    []ClockInterval `bson:"monday,omitempty" json:"monday,omitempty"`
	Tuesday   []ClockInterval `bson:"tuesday,omitempty" json:"tuesday,omitempty"`
	Wednesday []ClockInterval `bson:"wednesday,omitempty" json:"wednesday,omitempty"`
	Thursday  []ClockInterval `bson:"thursday,omitempty" json:"thursday,omitempty"`
	Friday    []ClockInterval `bson:"friday,omitempty" json:"friday,omitempty"`
	Saturday  []ClockInterval `bson:"saturday,omitempty" json:"saturday,omitempty"`
	Sunday    []ClockInterval `bson:"sunday,omitempty" json:"sunday,omitempty"`
}

// ForWeekday returns the intervals configured for the given weekday.
func (ws WeeklySchedule) ForWeekday(day time.Weekday) []ClockInterval {
	switch day {
	case time.Monday:
		return ws.Monday
	case time.Tuesday:
		return ws.Tuesday
	case time.Wednesday:
		return ws.Wednesday
	case time.Thursday:
		return ws.Thursday
	case time.Friday:
		return ws.Friday
	case time.Saturday:
		return ws.Saturday
	case time.Sunday:
		return ws.Sunday
	}
	return nil
}

// AvailabilityProfile holds one provider's bookable-time configuration.
// Exceptions are keyed by date (DateLayout) and fully replace the weekly
// schedule for that date; blackout dates suppress everything.
// The profile is replaced wholesale on update, never patched.
type AvailabilityProfile struct {
	ProviderID    string                     `bson:"provider_id" json:"provider_id"`
	Weekly        WeeklySchedule             `bson:"weekly_schedule" json:"weekly_schedule"`
	Exceptions    map[string][]ClockInterval `bson:"exceptions,omitempty" json:"exceptions,omitempty"`
	BlackoutDates []string                   `bson:"blackout_dates,omitempty" json:"blackout_dates,omitempty"`
}
