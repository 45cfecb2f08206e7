package availability

import (
	"context"
	"time"

	"github.com/artwalls/artwalls/internal/domain"
	"github.com/artwalls/artwalls/internal/repository"
	"go.uber.org/zap"
)

type AvailabilityUseCase interface {
	GetAvailability(ctx context.Context, venueID, weekStart string) (*Availability, error)
}

// Schedules is the read side of the schedule store; satisfied by the
// schedule service so availability reads go through its cache.
type Schedules interface {
	GetSchedule(ctx context.Context, venueID string) (*domain.VenueSchedule, error)
}

// Availability is a point-in-time snapshot. A slot listed here may be
// taken by the time a booking for it is submitted; the booking path
// re-validates from scratch.
type Availability struct {
	Slots               []string `json:"slots"`
	SlotMinutes         int      `json:"slotMinutes"`
	SlotIntervalMinutes int      `json:"slotIntervalMinutes"`
	DayOfWeek           string   `json:"dayOfWeek,omitempty"`
	StartTime           string   `json:"startTime,omitempty"`
	EndTime             string   `json:"endTime,omitempty"`
	WindowStart         string   `json:"windowStart,omitempty"`
	WindowEnd           string   `json:"windowEnd,omitempty"`
}

type AvailabilityService struct {
	schedules Schedules
	bookings  repository.BookingRepository
	logger    *zap.Logger
	now       func() time.Time
}

func NewAvailabilityService(schedules Schedules, bookings repository.BookingRepository, logger *zap.Logger) *AvailabilityService {
	return &AvailabilityService{
		schedules: schedules,
		bookings:  bookings,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *AvailabilityService) GetAvailability(ctx context.Context, venueID, weekStart string) (*Availability, error) {
	schedule, err := s.schedules.GetSchedule(ctx, venueID)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		// Unconfigured venues legitimately have no slots.
		return &Availability{Slots: []string{}}, nil
	}

	ref := s.now().UTC()
	if weekStart != "" {
		// An unparseable anchor silently falls back to now.
		if parsed, err := time.Parse(time.RFC3339, weekStart); err == nil {
			ref = parsed
		}
	}

	candidates := GenerateSlots(schedule, ref)
	resp := &Availability{
		Slots:               []string{},
		SlotMinutes:         schedule.SlotMinutes,
		SlotIntervalMinutes: schedule.SlotMinutes,
		DayOfWeek:           schedule.DayOfWeek,
		StartTime:           schedule.StartTime,
		EndTime:             schedule.EndTime,
	}
	if len(candidates) == 0 {
		return resp, nil
	}

	first, last := candidates[0], candidates[len(candidates)-1]
	booked, err := s.bookings.StartsBetween(ctx, venueID, first, last)
	if err != nil {
		s.logger.Error("query booked slots", zap.String("venue_id", venueID), zap.Error(err))
		return nil, err
	}

	taken := make(map[int64]bool, len(booked))
	for _, t := range booked {
		taken[t.Unix()] = true
	}
	for _, slot := range candidates {
		if !taken[slot.Unix()] {
			resp.Slots = append(resp.Slots, slot.Format(time.RFC3339))
		}
	}
	resp.WindowStart = first.Format(time.RFC3339)
	resp.WindowEnd = last.Format(time.RFC3339)
	return resp, nil
}

var _ AvailabilityUseCase = (*AvailabilityService)(nil)
