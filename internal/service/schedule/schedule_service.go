package schedule

import (
	"context"

	"github.com/artwalls/artwalls/internal/domain"
	"github.com/artwalls/artwalls/internal/repository"
	"go.uber.org/zap"
)

type ScheduleUseCase interface {
	GetSchedule(ctx context.Context, venueID string) (*domain.VenueSchedule, error)
	SetSchedule(ctx context.Context, venueID string, input SetScheduleInput) (*domain.VenueSchedule, error)
}

type Cache interface {
	GetSchedule(ctx context.Context, venueID string) (*domain.VenueSchedule, error)
	SetSchedule(ctx context.Context, schedule *domain.VenueSchedule) error
	InvalidateSchedule(ctx context.Context, venueID string) error
}

type SetScheduleInput struct {
	DayOfWeek string `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	// InstallSlotIntervalMinutes wins; SlotMinutes is the legacy field
	// older clients still send.
	InstallSlotIntervalMinutes int    `json:"installSlotIntervalMinutes"`
	SlotMinutes                int    `json:"slotMinutes"`
	Timezone                   string `json:"timezone"`
}

type ScheduleService struct {
	repo   repository.ScheduleRepository
	cache  Cache
	logger *zap.Logger
}

func NewScheduleService(repo repository.ScheduleRepository, cache Cache, logger *zap.Logger) *ScheduleService {
	return &ScheduleService{repo: repo, cache: cache, logger: logger}
}

func (s *ScheduleService) GetSchedule(ctx context.Context, venueID string) (*domain.VenueSchedule, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetSchedule(ctx, venueID); err == nil && cached != nil {
			return cached, nil
		}
	}

	schedule, err := s.repo.Get(ctx, venueID)
	if err != nil {
		s.logger.Error("get schedule", zap.String("venue_id", venueID), zap.Error(err))
		return nil, err
	}
	if schedule != nil && s.cache != nil {
		_ = s.cache.SetSchedule(ctx, schedule)
	}
	return schedule, nil
}

// SetSchedule validates and upserts the venue's single weekly window.
// Ownership is enforced at the transport layer; a second call replaces
// the previous window in place.
func (s *ScheduleService) SetSchedule(ctx context.Context, venueID string, input SetScheduleInput) (*domain.VenueSchedule, error) {
	interval, err := validate(input)
	if err != nil {
		return nil, err
	}

	schedule := &domain.VenueSchedule{
		VenueID:     venueID,
		DayOfWeek:   input.DayOfWeek,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		SlotMinutes: interval,
		Timezone:    input.Timezone,
	}
	if err := s.repo.Upsert(ctx, schedule); err != nil {
		s.logger.Error("upsert schedule", zap.String("venue_id", venueID), zap.Error(err))
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.InvalidateSchedule(ctx, venueID)
	}
	return schedule, nil
}

func validate(input SetScheduleInput) (int, error) {
	if _, ok := domain.Weekdays[input.DayOfWeek]; !ok {
		return 0, domain.Invalid("dayOfWeek", "must be a full English weekday name")
	}
	if !validWallClock(input.StartTime) {
		return 0, domain.Invalid("startTime", "must be HH:MM in 24-hour format")
	}
	if !validWallClock(input.EndTime) {
		return 0, domain.Invalid("endTime", "must be HH:MM in 24-hour format")
	}
	// Same-day wall clocks, so lexicographic order is chronological.
	if input.StartTime >= input.EndTime {
		return 0, domain.Invalid("startTime", "must be before endTime")
	}
	interval := input.InstallSlotIntervalMinutes
	if interval == 0 {
		interval = input.SlotMinutes
	}
	if !domain.SlotIntervals[interval] {
		return 0, domain.Invalid("installSlotIntervalMinutes", "must be one of 15, 30, 60, 120")
	}
	return interval, nil
}

func validWallClock(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	hour := int(s[0]-'0')*10 + int(s[1]-'0')
	min := int(s[3]-'0')*10 + int(s[4]-'0')
	return hour <= 23 && min <= 59
}

var _ ScheduleUseCase = (*ScheduleService)(nil)
