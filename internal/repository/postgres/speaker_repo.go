package postgres

import (
	"context"
	"database/sql"

	"seminarmanager/internal/domain"
)

type speakerRepository struct {
	DB *sql.DB
}

func NewSpeakerRepository(db *sql.DB) domain.SpeakerRepository {
	return &speakerRepository{DB: db}
}

func (r *speakerRepository) Create(ctx context.Context, speaker *domain.Speaker) error {
	query := `
		INSERT INTO speakers (name, email, cancellation_period_days, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		speaker.Name, speaker.Email, speaker.CancellationPeriodDays,
		speaker.CreatedAt, speaker.UpdatedAt).
		Scan(&speaker.ID)
}

func (r *speakerRepository) LinkToEvent(ctx context.Context, eventID, speakerID string) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO event_speakers (event_id, speaker_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, eventID, speakerID)
	return err
}

func (r *speakerRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Speaker, error) {
	query := `
		SELECT s.id, s.name, s.email, s.cancellation_period_days, s.created_at, s.updated_at
		FROM speakers s
		JOIN event_speakers es ON es.speaker_id = s.id
		WHERE es.event_id = $1
		ORDER BY s.name ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var speakers []*domain.Speaker
	for rows.Next() {
		sp := &domain.Speaker{}
		if err := rows.Scan(&sp.ID, &sp.Name, &sp.Email, &sp.CancellationPeriodDays,
			&sp.CreatedAt, &sp.UpdatedAt); err != nil {
			return nil, err
		}
		speakers = append(speakers, sp)
	}
	return speakers, rows.Err()
}
