package domain

import "time"

// VenueSchedule is a venue's single recurring weekly availability window.
// StartTime and EndTime are venue-local wall-clock values ("HH:MM").
type VenueSchedule struct {
	ID          int64
	VenueID     string
	DayOfWeek   string
	StartTime   string
	EndTime     string
	SlotMinutes int
	Timezone    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Weekdays maps the accepted day names to time.Weekday.
var Weekdays = map[string]time.Weekday{
	"Sunday":    time.Sunday,
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
	"Saturday":  time.Saturday,
}

// SlotIntervals is the set of allowed slot lengths in minutes.
var SlotIntervals = map[int]bool{15: true, 30: true, 60: true, 120: true}

// Location resolves the schedule's declared timezone. The field is free
// text and unvalidated at write time, so anything the tz database does
// not know falls back to UTC.
func (s *VenueSchedule) Location() *time.Location {
	if s == nil || s.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
