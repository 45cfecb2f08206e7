package booking

import (
	"context"
	"time"

	"github.com/artwalls/artwalls/internal/domain"
	"github.com/artwalls/artwalls/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingUseCase interface {
	CreateBooking(ctx context.Context, venueID, artistID string, input CreateBookingInput) (*domain.Booking, error)
	ListVenueBookings(ctx context.Context, venueID string) ([]domain.Booking, error)
}

type Schedules interface {
	GetSchedule(ctx context.Context, venueID string) (*domain.VenueSchedule, error)
}

type Cache interface {
	AcquireSlotHold(ctx context.Context, venueID string, startAt time.Time, ttl time.Duration) (bool, error)
	ReleaseSlotHold(ctx context.Context, venueID string, startAt time.Time) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type CreateBookingInput struct {
	Type      string  `json:"type"`
	StartAt   string  `json:"startAt"`
	ArtworkID *string `json:"artworkId"`
}

type BookingService struct {
	bookings           repository.BookingRepository
	schedules          Schedules
	cache              Cache
	producer           Producer
	bookingTopic       string
	defaultSlotMinutes int
	holdTTL            time.Duration
	logger             *zap.Logger
}

type BookingServiceOption func(*BookingService)

func WithSlotHold(cache Cache, ttl time.Duration) BookingServiceOption {
	return func(s *BookingService) {
		s.cache = cache
		s.holdTTL = ttl
	}
}

func WithEvents(producer Producer, topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = producer
		s.bookingTopic = topic
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	schedules Schedules,
	defaultSlotMinutes int,
	logger *zap.Logger,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:           bookings,
		schedules:          schedules,
		defaultSlotMinutes: defaultSlotMinutes,
		logger:             logger,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// CreateBooking reserves exactly one slot. The exists pre-check gives the
// common conflict a clean error without a failed write; the unique
// constraint on (venue_id, start_at) is what actually guarantees no
// double booking when two callers race past the pre-check.
func (s *BookingService) CreateBooking(ctx context.Context, venueID, artistID string, input CreateBookingInput) (*domain.Booking, error) {
	if artistID == "" {
		return nil, domain.ErrUnauthenticated
	}
	kind := domain.BookingType(input.Type)
	if kind != domain.BookingTypeInstall && kind != domain.BookingTypePickup {
		return nil, domain.Invalid("type", "must be install or pickup")
	}
	startAt, err := time.Parse(time.RFC3339, input.StartAt)
	if err != nil {
		return nil, domain.Invalid("startAt", "must be a valid RFC 3339 instant")
	}
	startAt = startAt.UTC()

	interval := s.defaultSlotMinutes
	schedule, err := s.schedules.GetSchedule(ctx, venueID)
	if err != nil {
		return nil, err
	}
	if schedule != nil {
		interval = schedule.SlotMinutes
	}

	held := false
	if s.cache != nil {
		ok, err := s.cache.AcquireSlotHold(ctx, venueID, startAt, s.holdTTL)
		if err != nil {
			// Redis being down must not block bookings; the DB
			// constraint still holds the invariant.
			s.logger.Warn("slot hold unavailable", zap.String("venue_id", venueID), zap.Error(err))
		} else if !ok {
			return nil, domain.ErrSlotTaken
		} else {
			held = true
		}
	}

	exists, err := s.bookings.ExistsAt(ctx, venueID, startAt)
	if err != nil {
		s.releaseHold(ctx, held, venueID, startAt)
		return nil, err
	}
	if exists {
		s.releaseHold(ctx, held, venueID, startAt)
		return nil, domain.ErrSlotTaken
	}

	booking := &domain.Booking{
		ID:        uuid.NewString(),
		VenueID:   venueID,
		ArtistID:  artistID,
		ArtworkID: input.ArtworkID,
		Type:      kind,
		StartAt:   startAt,
		EndAt:     startAt.Add(time.Duration(interval) * time.Minute),
		Status:    domain.BookingStatusConfirmed,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		s.releaseHold(ctx, held, venueID, startAt)
		return nil, err
	}

	if err := s.publish(ctx, "booking_created", booking); err != nil {
		s.logger.Warn("publish booking_created", zap.String("booking_id", booking.ID), zap.Error(err))
	}
	return booking, nil
}

func (s *BookingService) ListVenueBookings(ctx context.Context, venueID string) ([]domain.Booking, error) {
	return s.bookings.ListByVenue(ctx, venueID)
}

func (s *BookingService) releaseHold(ctx context.Context, held bool, venueID string, startAt time.Time) {
	if held && s.cache != nil {
		_ = s.cache.ReleaseSlotHold(ctx, venueID, startAt)
	}
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) error {
	if s.producer == nil || s.bookingTopic == "" {
		return nil
	}
	event := kafkaEvent(eventType, booking)
	return s.producer.Publish(ctx, s.bookingTopic, booking.ID, event)
}

var _ BookingUseCase = (*BookingService)(nil)
