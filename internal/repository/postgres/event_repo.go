package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"seminarmanager/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

// NewEventRepository returns an EventRepository backed by postgres. Content
// rows (topics) live in the topics table for both variants: a date shares
// its topic's row, a single event owns a private one.
func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{DB: db}
}

func (r *eventRepository) CreateTopic(ctx context.Context, content *domain.EventContent) error {
	query := `
		INSERT INTO topics (title, description, event_type, price_on_request,
			price_regular, price_regular_early, price_regular_board,
			price_special, price_special_early, price_special_board,
			additional_terms, allows_multiple_registrations, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		content.Title, content.Description, content.EventType, content.PriceOnRequest,
		content.PriceRegular, content.PriceRegularEarly, content.PriceRegularBoard,
		content.PriceSpecial, content.PriceSpecialEarly, content.PriceSpecialBoard,
		content.AdditionalTerms, content.AllowsMultipleRegistrations,
		content.CreatedAt, content.UpdatedAt,
	).Scan(&content.ID)
}

const topicColumns = `id, title, description, event_type, price_on_request,
	price_regular, price_regular_early, price_regular_board,
	price_special, price_special_early, price_special_board,
	additional_terms, allows_multiple_registrations, deleted, created_at, updated_at`

func scanTopic(row *sql.Row) (*domain.EventContent, error) {
	c := &domain.EventContent{}
	err := row.Scan(&c.ID, &c.Title, &c.Description, &c.EventType, &c.PriceOnRequest,
		&c.PriceRegular, &c.PriceRegularEarly, &c.PriceRegularBoard,
		&c.PriceSpecial, &c.PriceSpecialEarly, &c.PriceSpecialBoard,
		&c.AdditionalTerms, &c.AllowsMultipleRegistrations, &c.Deleted,
		&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *eventRepository) GetTopicByID(ctx context.Context, id string) (*domain.EventContent, error) {
	query := `SELECT ` + topicColumns + ` FROM topics WHERE id = $1 AND deleted = false`
	return scanTopic(r.DB.QueryRowContext(ctx, query, id))
}

func (r *eventRepository) SetTopicDeleted(ctx context.Context, id string, deleted bool) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE topics SET deleted = $2, updated_at = now() WHERE id = $1`, id, deleted)
	if err != nil {
		return err
	}
	return requireOneRow(res)
}

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	contentID := event.TopicID
	if event.Kind == domain.KindSingleEvent && event.Own != nil {
		contentID = event.Own.ID
	}
	query := `
		INSERT INTO events (kind, content_id, begin_at, end_at,
			registration_begin_at, registration_deadline_at,
			early_bird_deadline_at, unregistration_deadline_at,
			needs_registration, has_waiting_list, min_attendees, max_attendees,
			attendees_on_queue, offline_registrations, status,
			skip_collision_check, hidden, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		event.Kind, nullString(contentID),
		nullTime(event.Span.Begin), nullTime(event.Span.End),
		nullTime(event.RegistrationBegin), nullTime(event.RegistrationDeadline),
		nullTime(event.EarlyBirdDeadline), nullTime(event.UnregistrationDeadline),
		event.NeedsRegistration, event.HasWaitingList,
		event.MinAttendees, event.MaxAttendees,
		event.AttendeesOnQueue, event.OfflineRegistrations, event.Status,
		event.SkipCollisionCheck, event.Hidden,
		event.CreatedAt, event.UpdatedAt,
	).Scan(&event.ID)
}

const eventSelect = `
	SELECT e.id, e.kind, e.content_id,
		e.begin_at, e.end_at,
		e.registration_begin_at, e.registration_deadline_at,
		e.early_bird_deadline_at, e.unregistration_deadline_at,
		e.needs_registration, e.has_waiting_list, e.min_attendees, e.max_attendees,
		e.attendees_on_queue, e.offline_registrations, e.status,
		e.skip_collision_check, e.hidden, e.created_at, e.updated_at,
		t.id, t.title, t.description, t.event_type, t.price_on_request,
		t.price_regular, t.price_regular_early, t.price_regular_board,
		t.price_special, t.price_special_early, t.price_special_board,
		t.additional_terms, t.allows_multiple_registrations, t.created_at, t.updated_at
	FROM events e
	LEFT JOIN topics t ON t.id = e.content_id AND t.deleted = false
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	e := &domain.Event{}
	var (
		contentID sql.NullString
		begin, end, regBegin, regDeadline, earlyBird, unregDeadline sql.NullTime

		tID, tTitle, tDescription, tEventType sql.NullString
		tOnRequest, tTerms, tMulti            sql.NullBool
		tCreatedAt, tUpdatedAt                sql.NullTime
	)
	c := &domain.EventContent{}
	err := row.Scan(&e.ID, &e.Kind, &contentID,
		&begin, &end, &regBegin, &regDeadline, &earlyBird, &unregDeadline,
		&e.NeedsRegistration, &e.HasWaitingList, &e.MinAttendees, &e.MaxAttendees,
		&e.AttendeesOnQueue, &e.OfflineRegistrations, &e.Status,
		&e.SkipCollisionCheck, &e.Hidden, &e.CreatedAt, &e.UpdatedAt,
		&tID, &tTitle, &tDescription, &tEventType, &tOnRequest,
		&c.PriceRegular, &c.PriceRegularEarly, &c.PriceRegularBoard,
		&c.PriceSpecial, &c.PriceSpecialEarly, &c.PriceSpecialBoard,
		&tTerms, &tMulti, &tCreatedAt, &tUpdatedAt)
	if err != nil {
		return nil, err
	}

	e.Span = domain.Timespan{Begin: begin.Time, End: end.Time}
	e.RegistrationBegin = regBegin.Time
	e.RegistrationDeadline = regDeadline.Time
	e.EarlyBirdDeadline = earlyBird.Time
	e.UnregistrationDeadline = unregDeadline.Time

	if tID.Valid {
		c.ID = tID.String
		c.Title = tTitle.String
		c.Description = tDescription.String
		c.EventType = tEventType.String
		c.PriceOnRequest = tOnRequest.Bool
		c.AdditionalTerms = tTerms.Bool
		c.AllowsMultipleRegistrations = tMulti.Bool
		c.CreatedAt = tCreatedAt.Time
		c.UpdatedAt = tUpdatedAt.Time
		if e.Kind == domain.KindEventDate {
			e.Topic = c
		} else {
			e.Own = c
		}
	}
	if e.Kind == domain.KindEventDate && contentID.Valid {
		e.TopicID = contentID.String
	}
	return e, nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := eventSelect + ` WHERE e.id = $1 AND e.deleted = false`
	event, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if err := r.loadTimeSlots(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (r *eventRepository) loadTimeSlots(ctx context.Context, event *domain.Event) error {
	query := `
		SELECT id, event_id, begin_at, end_at, place, created_at, updated_at
		FROM time_slots
		WHERE event_id = $1
		ORDER BY begin_at ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, event.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			slot       domain.TimeSlot
			begin, end sql.NullTime
		)
		if err := rows.Scan(&slot.ID, &slot.EventID, &begin, &end, &slot.Place,
			&slot.CreatedAt, &slot.UpdatedAt); err != nil {
			return err
		}
		slot.Span = domain.Timespan{Begin: begin.Time, End: end.Time}
		event.TimeSlots = append(event.TimeSlots, slot)
	}
	return rows.Err()
}

func (r *eventRepository) List(ctx context.Context, p domain.PaginationParams) ([]*domain.Event, int, error) {
	var total int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM events WHERE deleted = false AND hidden = false`).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	query := eventSelect + `
		WHERE e.deleted = false AND e.hidden = false
		ORDER BY e.begin_at ASC NULLS LAST, e.created_at ASC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.QueryContext(ctx, query, p.PageSize, p.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var events []*domain.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, 0, err
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

func (r *eventRepository) UpdateStatus(ctx context.Context, id string, status domain.EventStatus) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE events SET status = $2, updated_at = now() WHERE id = $1 AND deleted = false`,
		id, status)
	if err != nil {
		return err
	}
	return requireOneRow(res)
}

func (r *eventRepository) SetHidden(ctx context.Context, id string, hidden bool) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE events SET hidden = $2, updated_at = now() WHERE id = $1 AND deleted = false`,
		id, hidden)
	if err != nil {
		return err
	}
	return requireOneRow(res)
}

func (r *eventRepository) SetDeleted(ctx context.Context, id string, deleted bool) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE events SET deleted = $2, updated_at = now() WHERE id = $1`, id, deleted)
	if err != nil {
		return err
	}
	return requireOneRow(res)
}

func (r *eventRepository) UpdateQueueCount(ctx context.Context, id string, attendeesOnQueue int) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE events SET attendees_on_queue = $2, updated_at = now() WHERE id = $1 AND deleted = false`,
		id, attendeesOnQueue)
	if err != nil {
		return err
	}
	return requireOneRow(res)
}

func requireOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func nullTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
