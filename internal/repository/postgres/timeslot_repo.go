package postgres

import (
	"context"
	"database/sql"

	"seminarmanager/internal/domain"
)

type timeSlotRepository struct {
	DB *sql.DB
}

func NewTimeSlotRepository(db *sql.DB) domain.TimeSlotRepository {
	return &timeSlotRepository{DB: db}
}

func (r *timeSlotRepository) Create(ctx context.Context, slot *domain.TimeSlot) error {
	query := `
		INSERT INTO time_slots (event_id, begin_at, end_at, place, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		slot.EventID, nullTime(slot.Span.Begin), nullTime(slot.Span.End),
		slot.Place, slot.CreatedAt, slot.UpdatedAt).
		Scan(&slot.ID)
}

func (r *timeSlotRepository) ListByEventID(ctx context.Context, eventID string) ([]domain.TimeSlot, error) {
	query := `
		SELECT id, event_id, begin_at, end_at, place, created_at, updated_at
		FROM time_slots
		WHERE event_id = $1
		ORDER BY begin_at ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slots []domain.TimeSlot
	for rows.Next() {
		var (
			slot       domain.TimeSlot
			begin, end sql.NullTime
		)
		if err := rows.Scan(&slot.ID, &slot.EventID, &begin, &end, &slot.Place,
			&slot.CreatedAt, &slot.UpdatedAt); err != nil {
			return nil, err
		}
		slot.Span = domain.Timespan{Begin: begin.Time, End: end.Time}
		slots = append(slots, slot)
	}
	return slots, rows.Err()
}

func (r *timeSlotRepository) DeleteByEventID(ctx context.Context, eventID string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM time_slots WHERE event_id = $1`, eventID)
	return err
}
