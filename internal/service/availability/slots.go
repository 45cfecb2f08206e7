package availability

import (
	"time"

	"github.com/artwalls/artwalls/internal/domain"
)

// GenerateSlots returns the bookable start instants, in UTC and in
// order, for the next occurrence of the schedule's weekday on or after
// ref's calendar date. Deterministic: the same inputs always produce the
// same sequence.
//
// When ref already falls on the scheduled weekday the current day is
// used even if the window's wall-clock times have passed; callers anchor
// forward with a weekStart when they want a later week.
func GenerateSlots(schedule *domain.VenueSchedule, ref time.Time) []time.Time {
	if schedule == nil {
		return nil
	}
	target, ok := domain.Weekdays[schedule.DayOfWeek]
	if !ok {
		return nil
	}
	startMin, ok := parseWallClock(schedule.StartTime)
	if !ok {
		return nil
	}
	endMin, ok := parseWallClock(schedule.EndTime)
	if !ok {
		return nil
	}
	interval := schedule.SlotMinutes
	if interval <= 0 {
		return nil
	}

	loc := schedule.Location()
	local := ref.In(loc)
	daysUntil := (int(target) - int(local.Weekday()) + 7) % 7
	day := local.AddDate(0, 0, daysUntil)

	// Wall-clock construction per slot keeps venue-local times correct
	// across DST transitions. A slot is emitted only when it fits
	// wholly inside the window.
	var slots []time.Time
	for cur := startMin; cur+interval <= endMin; cur += interval {
		slot := time.Date(day.Year(), day.Month(), day.Day(), cur/60, cur%60, 0, 0, loc)
		slots = append(slots, slot.UTC())
	}
	return slots
}

// parseWallClock converts a zero-padded 24-hour "HH:MM" string to
// minutes past midnight.
func parseWallClock(s string) (int, bool) {
	if len(s) != 5 || s[2] != ':' {
		return 0, false
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	hour := int(s[0]-'0')*10 + int(s[1]-'0')
	min := int(s[3]-'0')*10 + int(s[4]-'0')
	if hour > 23 || min > 59 {
		return 0, false
	}
	return hour*60 + min, true
}
