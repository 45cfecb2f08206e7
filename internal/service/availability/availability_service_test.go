package availability

import (
	"context"
	"testing"
	"time"

	"github.com/artwalls/artwalls/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockSchedules struct {
	mock.Mock
}

func (m *MockSchedules) GetSchedule(ctx context.Context, venueID string) (*domain.VenueSchedule, error) {
	args := m.Called(ctx, venueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VenueSchedule), args.Error(1)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) ExistsAt(ctx context.Context, venueID string, startAt time.Time) (bool, error) {
	args := m.Called(ctx, venueID, startAt)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) StartsBetween(ctx context.Context, venueID string, from, to time.Time) ([]time.Time, error) {
	args := m.Called(ctx, venueID, from, to)
	return args.Get(0).([]time.Time), args.Error(1)
}

func (m *MockBookingRepository) ListByVenue(ctx context.Context, venueID string) ([]domain.Booking, error) {
	args := m.Called(ctx, venueID)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func newService(schedules *MockSchedules, bookings *MockBookingRepository) *AvailabilityService {
	svc := NewAvailabilityService(schedules, bookings, zap.NewNop())
	svc.now = func() time.Time { return monday }
	return svc
}

func TestGetAvailability_NoSchedule(t *testing.T) {
	schedules := &MockSchedules{}
	bookings := &MockBookingRepository{}
	svc := newService(schedules, bookings)

	ctx := context.Background()
	schedules.On("GetSchedule", ctx, "venue-1").Return(nil, nil).Once()

	result, err := svc.GetAvailability(ctx, "venue-1", "")

	assert.NoError(t, err)
	assert.Empty(t, result.Slots)
	bookings.AssertNotCalled(t, "StartsBetween")
}

func TestGetAvailability_ExcludesBookedSlots(t *testing.T) {
	schedules := &MockSchedules{}
	bookings := &MockBookingRepository{}
	svc := newService(schedules, bookings)

	ctx := context.Background()
	schedules.On("GetSchedule", ctx, "venue-1").Return(thursdaySchedule(30), nil).Once()

	first := time.Date(2025, 6, 5, 16, 0, 0, 0, time.UTC)
	last := time.Date(2025, 6, 5, 17, 30, 0, 0, time.UTC)
	bookings.On("StartsBetween", ctx, "venue-1", first, last).
		Return([]time.Time{first}, nil).Once()

	result, err := svc.GetAvailability(ctx, "venue-1", "")

	assert.NoError(t, err)
	assert.Equal(t, []string{
		"2025-06-05T16:30:00Z",
		"2025-06-05T17:00:00Z",
		"2025-06-05T17:30:00Z",
	}, result.Slots)
	assert.Equal(t, 30, result.SlotIntervalMinutes)
	assert.Equal(t, "Thursday", result.DayOfWeek)
	assert.Equal(t, "2025-06-05T16:00:00Z", result.WindowStart)
	assert.Equal(t, "2025-06-05T17:30:00Z", result.WindowEnd)

	schedules.AssertExpectations(t)
	bookings.AssertExpectations(t)
}

func TestGetAvailability_WeekStartAnchor(t *testing.T) {
	schedules := &MockSchedules{}
	bookings := &MockBookingRepository{}
	svc := newService(schedules, bookings)

	ctx := context.Background()
	schedules.On("GetSchedule", ctx, "venue-1").Return(thursdaySchedule(120), nil).Once()

	// Anchored a week later than "now".
	first := time.Date(2025, 6, 12, 16, 0, 0, 0, time.UTC)
	bookings.On("StartsBetween", ctx, "venue-1", first, first).
		Return([]time.Time{}, nil).Once()

	result, err := svc.GetAvailability(ctx, "venue-1", "2025-06-09T00:00:00Z")

	assert.NoError(t, err)
	assert.Equal(t, []string{"2025-06-12T16:00:00Z"}, result.Slots)
}

func TestGetAvailability_InvalidWeekStartFallsBackToNow(t *testing.T) {
	schedules := &MockSchedules{}
	bookings := &MockBookingRepository{}
	svc := newService(schedules, bookings)

	ctx := context.Background()
	schedules.On("GetSchedule", ctx, "venue-1").Return(thursdaySchedule(120), nil).Once()

	first := time.Date(2025, 6, 5, 16, 0, 0, 0, time.UTC)
	bookings.On("StartsBetween", ctx, "venue-1", first, first).
		Return([]time.Time{}, nil).Once()

	result, err := svc.GetAvailability(ctx, "venue-1", "not-a-date")

	assert.NoError(t, err)
	assert.Equal(t, []string{"2025-06-05T16:00:00Z"}, result.Slots)
}
