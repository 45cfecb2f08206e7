package domain

import "time"

type BookingType string

const (
	BookingTypeInstall BookingType = "install"
	BookingTypePickup  BookingType = "pickup"
)

type BookingStatus string

// Bookings are terminal once created; confirmed is the only status the
// service produces today.
const BookingStatusConfirmed BookingStatus = "confirmed"

type Booking struct {
	ID        string
	VenueID   string
	ArtistID  string
	ArtworkID *string
	Type      BookingType
	StartAt   time.Time
	EndAt     time.Time
	Status    BookingStatus
	CreatedAt time.Time
}
