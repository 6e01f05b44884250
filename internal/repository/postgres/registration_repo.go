package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"seminarmanager/internal/domain"
)

type registrationRepository struct {
	DB *sql.DB
}

func NewRegistrationRepository(db *sql.DB) domain.RegistrationRepository {
	return &registrationRepository{DB: db}
}

const registrationColumns = `id, event_id, user_id, seats, on_queue, paid_at, unregistered_at, created_at, updated_at`

func scanRegistration(row rowScanner) (*domain.Registration, error) {
	reg := &domain.Registration{}
	var paidAt, unregisteredAt sql.NullTime
	err := row.Scan(&reg.ID, &reg.EventID, &reg.UserID, &reg.Seats, &reg.OnQueue,
		&paidAt, &unregisteredAt, &reg.CreatedAt, &reg.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if paidAt.Valid {
		reg.PaidAt = &paidAt.Time
	}
	if unregisteredAt.Valid {
		reg.UnregisteredAt = &unregisteredAt.Time
	}
	return reg, nil
}

func (r *registrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	query := `
		INSERT INTO registrations (event_id, user_id, seats, on_queue, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		reg.EventID, reg.UserID, reg.Seats, reg.OnQueue, reg.CreatedAt, reg.UpdatedAt).
		Scan(&reg.ID)
}

func (r *registrationRepository) GetByID(ctx context.Context, id string) (*domain.Registration, error) {
	query := `SELECT ` + registrationColumns + ` FROM registrations WHERE id = $1`
	reg, err := scanRegistration(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return reg, nil
}

func (r *registrationRepository) GetActiveByEventAndUser(ctx context.Context, eventID, userID string) (*domain.Registration, error) {
	query := `
		SELECT ` + registrationColumns + `
		FROM registrations
		WHERE event_id = $1 AND user_id = $2 AND unregistered_at IS NULL
		ORDER BY created_at ASC
		LIMIT 1
	`
	reg, err := scanRegistration(r.DB.QueryRowContext(ctx, query, eventID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return reg, nil
}

func (r *registrationRepository) ListActiveByUserID(ctx context.Context, userID string) ([]*domain.Registration, error) {
	query := `
		SELECT ` + registrationColumns + `
		FROM registrations
		WHERE user_id = $1 AND unregistered_at IS NULL
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var regs []*domain.Registration
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}

func (r *registrationRepository) CountActiveByEventID(ctx context.Context, eventID string) (domain.CapacityLedger, error) {
	query := `
		SELECT
			COALESCE(SUM(seats) FILTER (WHERE NOT on_queue), 0),
			COALESCE(SUM(seats) FILTER (WHERE on_queue), 0)
		FROM registrations
		WHERE event_id = $1 AND unregistered_at IS NULL
	`
	var ledger domain.CapacityLedger
	err := r.DB.QueryRowContext(ctx, query, eventID).
		Scan(&ledger.RegularSeatsTaken, &ledger.QueueSeatsTaken)
	if err != nil {
		return domain.CapacityLedger{}, err
	}
	return ledger, nil
}

func (r *registrationRepository) MarkUnregistered(ctx context.Context, id string, at time.Time) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE registrations
		SET unregistered_at = $2, updated_at = $2
		WHERE id = $1 AND unregistered_at IS NULL
	`, id, at)
	if err != nil {
		return err
	}
	return requireOneRow(res)
}

func (r *registrationRepository) PromoteFirstQueued(ctx context.Context, eventID string, at time.Time) (*domain.Registration, error) {
	query := `
		UPDATE registrations
		SET on_queue = false, updated_at = $2
		WHERE id = (
			SELECT id FROM registrations
			WHERE event_id = $1 AND on_queue AND unregistered_at IS NULL
			ORDER BY created_at ASC
			LIMIT 1
		)
		RETURNING ` + registrationColumns + `
	`
	reg, err := scanRegistration(r.DB.QueryRowContext(ctx, query, eventID, at))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return reg, nil
}

func (r *registrationRepository) SetPaid(ctx context.Context, id string, at time.Time) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE registrations
		SET paid_at = $2, updated_at = $2
		WHERE id = $1 AND unregistered_at IS NULL
	`, id, at)
	if err != nil {
		return err
	}
	return requireOneRow(res)
}
