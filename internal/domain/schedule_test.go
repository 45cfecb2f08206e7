package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocation_EmptyTimezoneIsUTC(t *testing.T) {
	s := &VenueSchedule{VenueID: "venue-1", Timezone: ""}
	assert.Equal(t, time.UTC, s.Location())
}

func TestLocation_KnownTimezone(t *testing.T) {
	s := &VenueSchedule{VenueID: "venue-1", Timezone: "America/New_York"}
	assert.Equal(t, "America/New_York", s.Location().String())
}

func TestLocation_UnknownTimezoneIsUTC(t *testing.T) {
	s := &VenueSchedule{VenueID: "venue-1", Timezone: "Mars/Olympus_Mons"}
	assert.Equal(t, time.UTC, s.Location())
}

func TestLocation_NilScheduleIsUTC(t *testing.T) {
	var s *VenueSchedule
	assert.Equal(t, time.UTC, s.Location())
}
