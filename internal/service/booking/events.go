package booking

import (
	"github.com/artwalls/artwalls/internal/domain"
	"github.com/artwalls/artwalls/internal/kafka"
)

func kafkaEvent(eventType string, booking *domain.Booking) kafka.BookingEvent {
	return kafka.BookingEvent{
		Type:      eventType,
		BookingID: booking.ID,
		VenueID:   booking.VenueID,
		ArtistID:  booking.ArtistID,
		ArtworkID: booking.ArtworkID,
		Kind:      string(booking.Type),
		StartAt:   booking.StartAt,
		EndAt:     booking.EndAt,
	}
}
