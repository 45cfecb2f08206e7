package repository

import (
	"context"
	"errors"
	"time"

	"github.com/artwalls/artwalls/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	ExistsAt(ctx context.Context, venueID string, startAt time.Time) (bool, error)
	StartsBetween(ctx context.Context, venueID string, from, to time.Time) ([]time.Time, error)
	ListByVenue(ctx context.Context, venueID string) ([]domain.Booking, error)
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

// Create inserts the booking. A unique violation on (venue_id, start_at)
// is the authoritative double-booking signal and comes back as
// domain.ErrSlotTaken.
func (r *PGBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	err := r.db.QueryRow(ctx, `INSERT INTO bookings (id, venue_id, artist_id, artwork_id, booking_type, start_at, end_at, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at`,
		booking.ID, booking.VenueID, booking.ArtistID, booking.ArtworkID, booking.Type, booking.StartAt, booking.EndAt, booking.Status).
		Scan(&booking.CreatedAt)
	if err != nil {
		return mapInsertError(err)
	}
	return nil
}

func mapInsertError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return domain.ErrSlotTaken
	}
	return err
}

func (r *PGBookingRepository) ExistsAt(ctx context.Context, venueID string, startAt time.Time) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM bookings WHERE venue_id=$1 AND start_at=$2)`, venueID, startAt).Scan(&exists)
	return exists, err
}

func (r *PGBookingRepository) StartsBetween(ctx context.Context, venueID string, from, to time.Time) ([]time.Time, error) {
	rows, err := r.db.Query(ctx, `SELECT start_at FROM bookings WHERE venue_id=$1 AND start_at BETWEEN $2 AND $3 ORDER BY start_at`, venueID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	starts := make([]time.Time, 0)
	for rows.Next() {
		var t time.Time
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		starts = append(starts, t)
	}
	return starts, rows.Err()
}

func (r *PGBookingRepository) ListByVenue(ctx context.Context, venueID string) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT id, venue_id, artist_id, artwork_id, booking_type, start_at, end_at, status, created_at FROM bookings WHERE venue_id=$1 ORDER BY start_at`, venueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.VenueID, &b.ArtistID, &b.ArtworkID, &b.Type, &b.StartAt, &b.EndAt, &b.Status, &b.CreatedAt); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

var _ BookingRepository = (*PGBookingRepository)(nil)
