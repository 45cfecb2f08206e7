package repository

import (
	"context"
	"errors"

	"github.com/artwalls/artwalls/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ScheduleRepository interface {
	Get(ctx context.Context, venueID string) (*domain.VenueSchedule, error)
	Upsert(ctx context.Context, schedule *domain.VenueSchedule) error
}

type PGScheduleRepository struct {
	db *pgxpool.Pool
}

func NewScheduleRepository(db *pgxpool.Pool) ScheduleRepository {
	return &PGScheduleRepository{db: db}
}

// Get returns nil without error when the venue has no schedule; that is
// the normal state for venues that never configured one.
func (r *PGScheduleRepository) Get(ctx context.Context, venueID string) (*domain.VenueSchedule, error) {
	row := r.db.QueryRow(ctx, `SELECT id, venue_id, day_of_week, start_time, end_time, slot_minutes, timezone, created_at, updated_at FROM venue_schedules WHERE venue_id=$1`, venueID)
	var s domain.VenueSchedule
	if err := row.Scan(&s.ID, &s.VenueID, &s.DayOfWeek, &s.StartTime, &s.EndTime, &s.SlotMinutes, &s.Timezone, &s.CreatedAt, &s.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *PGScheduleRepository) Upsert(ctx context.Context, schedule *domain.VenueSchedule) error {
	err := r.db.QueryRow(ctx, `INSERT INTO venue_schedules (venue_id, day_of_week, start_time, end_time, slot_minutes, timezone)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (venue_id) DO UPDATE
		SET day_of_week = EXCLUDED.day_of_week,
		    start_time = EXCLUDED.start_time,
		    end_time = EXCLUDED.end_time,
		    slot_minutes = EXCLUDED.slot_minutes,
		    timezone = EXCLUDED.timezone,
		    updated_at = now()
		RETURNING id, created_at, updated_at`,
		schedule.VenueID, schedule.DayOfWeek, schedule.StartTime, schedule.EndTime, schedule.SlotMinutes, schedule.Timezone).
		Scan(&schedule.ID, &schedule.CreatedAt, &schedule.UpdatedAt)
	return err
}

var _ ScheduleRepository = (*PGScheduleRepository)(nil)
