package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"seminarmanager/internal/delivery/http/helpers"
	"seminarmanager/internal/domain"
)

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// pathID reads and validates a UUID path value. On failure it writes a 400
// and returns false.
func pathID(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	id := r.PathValue(name)
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing "+name)
		return "", false
	}
	if _, err := uuid.Parse(id); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid "+name)
		return "", false
	}
	return id, true
}

func (c *EventController) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "not found")
	case errors.Is(err, domain.ErrInvalidInput):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrPreconditionFailed):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodePrecondition, err.Error())
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
	}
}

// PriceFields carries the optional price matrix of a topic request. Prices
// are decimal strings; absent fields stay unset rather than zero.
type PriceFields struct {
	PriceOnRequest    bool    `json:"price_on_request"`
	PriceRegular      *string `json:"price_regular"`
	PriceRegularEarly *string `json:"price_regular_early"`
	PriceRegularBoard *string `json:"price_regular_board"`
	PriceSpecial      *string `json:"price_special"`
	PriceSpecialEarly *string `json:"price_special_early"`
	PriceSpecialBoard *string `json:"price_special_board"`
}

func (p *PriceFields) validate() []string {
	var errs []string
	for name, s := range map[string]*string{
		"price_regular":       p.PriceRegular,
		"price_regular_early": p.PriceRegularEarly,
		"price_regular_board": p.PriceRegularBoard,
		"price_special":       p.PriceSpecial,
		"price_special_early": p.PriceSpecialEarly,
		"price_special_board": p.PriceSpecialBoard,
	} {
		if s == nil {
			continue
		}
		d, err := decimal.NewFromString(*s)
		if err != nil {
			errs = append(errs, name+" is not a valid decimal")
			continue
		}
		if d.IsNegative() {
			errs = append(errs, name+" must not be negative")
		}
	}
	return errs
}

func (p *PriceFields) apply(content *domain.EventContent) {
	content.PriceOnRequest = p.PriceOnRequest
	content.PriceRegular = parsePrice(p.PriceRegular)
	content.PriceRegularEarly = parsePrice(p.PriceRegularEarly)
	content.PriceRegularBoard = parsePrice(p.PriceRegularBoard)
	content.PriceSpecial = parsePrice(p.PriceSpecial)
	content.PriceSpecialEarly = parsePrice(p.PriceSpecialEarly)
	content.PriceSpecialBoard = parsePrice(p.PriceSpecialBoard)
}

func parsePrice(s *string) decimal.NullDecimal {
	if s == nil {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

// CreateTopicRequest is the request body for POST /topics.
type CreateTopicRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	EventType   string `json:"event_type"`
	PriceFields
	AdditionalTerms             bool `json:"additional_terms"`
	AllowsMultipleRegistrations bool `json:"allows_multiple_registrations"`
}

// Validate implements helpers.Validator.
func (r *CreateTopicRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.Title) == "" {
		errs = append(errs, "title is required")
	}
	return append(errs, r.PriceFields.validate()...)
}

func (r *CreateTopicRequest) content() *domain.EventContent {
	content := domain.NewEventContent(r.Title, r.Description, r.EventType, time.Time{}, time.Time{})
	r.PriceFields.apply(content)
	content.AdditionalTerms = r.AdditionalTerms
	content.AllowsMultipleRegistrations = r.AllowsMultipleRegistrations
	return content
}

// CreateTopic godoc
// @Summary Create a topic
// @Description Creates a topic whose content (title, prices, terms) can be shared by several event dates.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body controllers.CreateTopicRequest true "Topic payload"
// @Success 201 {object} helpers.APIResponse{data=domain.EventContent}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /topics [post]
func (c *EventController) CreateTopic(w http.ResponseWriter, r *http.Request) {
	var req CreateTopicRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	content := req.content()
	if err := c.Service.CreateTopic(r.Context(), content); err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, content)
}

// SchedulingFields carries the shared scheduling attributes of an event
// request. Timestamps are RFC 3339; absent fields stay unset.
type SchedulingFields struct {
	BeginAt                  *time.Time `json:"begin_at"`
	EndAt                    *time.Time `json:"end_at"`
	RegistrationBeginAt      *time.Time `json:"registration_begin_at"`
	RegistrationDeadlineAt   *time.Time `json:"registration_deadline_at"`
	EarlyBirdDeadlineAt      *time.Time `json:"early_bird_deadline_at"`
	UnregistrationDeadlineAt *time.Time `json:"unregistration_deadline_at"`

	NeedsRegistration    bool `json:"needs_registration"`
	HasWaitingList       bool `json:"has_waiting_list"`
	MinAttendees         int  `json:"min_attendees"`
	MaxAttendees         int  `json:"max_attendees"`
	OfflineRegistrations int  `json:"offline_registrations"`
	SkipCollisionCheck   bool `json:"skip_collision_check"`
}

func (f *SchedulingFields) validate() []string {
	var errs []string
	if f.BeginAt != nil && f.EndAt != nil && f.EndAt.Before(*f.BeginAt) {
		errs = append(errs, "end_at must not be before begin_at")
	}
	if f.MinAttendees < 0 || f.MaxAttendees < 0 || f.OfflineRegistrations < 0 {
		errs = append(errs, "attendee counts must not be negative")
	}
	return errs
}

func deref(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

func (f *SchedulingFields) apply(event *domain.Event) {
	event.Span = domain.Timespan{Begin: deref(f.BeginAt), End: deref(f.EndAt)}
	event.RegistrationBegin = deref(f.RegistrationBeginAt)
	event.RegistrationDeadline = deref(f.RegistrationDeadlineAt)
	event.EarlyBirdDeadline = deref(f.EarlyBirdDeadlineAt)
	event.UnregistrationDeadline = deref(f.UnregistrationDeadlineAt)
	event.NeedsRegistration = f.NeedsRegistration
	event.HasWaitingList = f.HasWaitingList
	event.MinAttendees = f.MinAttendees
	event.MaxAttendees = f.MaxAttendees
	event.OfflineRegistrations = f.OfflineRegistrations
	event.SkipCollisionCheck = f.SkipCollisionCheck
}

// CreateSingleEventRequest is the request body for POST /events.
type CreateSingleEventRequest struct {
	CreateTopicRequest
	SchedulingFields
}

// Validate implements helpers.Validator.
func (r *CreateSingleEventRequest) Validate() []string {
	return append(r.CreateTopicRequest.Validate(), r.SchedulingFields.validate()...)
}

// CreateSingleEvent godoc
// @Summary Create a single event
// @Description Creates a self-contained event that owns its content.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body controllers.CreateSingleEventRequest true "Event payload"
// @Success 201 {object} helpers.APIResponse{data=domain.Event}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [post]
func (c *EventController) CreateSingleEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateSingleEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event := domain.NewSingleEvent(req.content(), domain.Timespan{}, time.Time{}, time.Time{})
	req.SchedulingFields.apply(event)
	if err := c.Service.CreateSingleEvent(r.Context(), event); err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// CreateEventDateRequest is the request body for POST /topics/{topicID}/dates.
type CreateEventDateRequest struct {
	SchedulingFields
}

// Validate implements helpers.Validator.
func (r *CreateEventDateRequest) Validate() []string {
	return r.SchedulingFields.validate()
}

// CreateEventDate godoc
// @Summary Create an event date for a topic
// @Description Creates a date bound to an existing topic; the date inherits the topic's content.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param topicID path string true "Topic ID (UUID)"
// @Param body body controllers.CreateEventDateRequest true "Date payload"
// @Success 201 {object} helpers.APIResponse{data=domain.Event}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /topics/{topicID}/dates [post]
func (c *EventController) CreateEventDate(w http.ResponseWriter, r *http.Request) {
	topicID, ok := pathID(w, r, "topicID")
	if !ok {
		return
	}
	var req CreateEventDateRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event := domain.NewEventDate(topicID, domain.Timespan{}, time.Time{}, time.Time{})
	req.SchedulingFields.apply(event)
	if err := c.Service.CreateEventDate(r.Context(), event); err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// EventDetail is the data payload for GET /events/{eventID}: the event plus
// the price tiers currently on offer.
type EventDetail struct {
	Event      *domain.Event       `json:"event"`
	PriceTiers []domain.PriceQuote `json:"price_tiers"`
}

// GetEvent godoc
// @Summary Get an event
// @Description Returns the event with its resolved content, time slots, and the price tiers currently on offer.
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} helpers.APIResponse{data=controllers.EventDetail}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	event, err := c.Service.GetByID(r.Context(), eventID)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, EventDetail{
		Event:      event,
		PriceTiers: domain.AvailableTiers(event, time.Now()),
	})
}

// EventListResponse is the data payload for GET /events.
type EventListResponse struct {
	Events     []*domain.Event        `json:"events"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// ListEvents godoc
// @Summary List events
// @Description Returns the visible events, paginated, ordered by begin date.
// @Tags events
// @Produce json
// @Param page query int false "Page (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.APIResponse{data=controllers.EventListResponse}
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	p := helpers.ParsePagination(r)
	events, total, err := c.Service.List(r.Context(), p)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, EventListResponse{
		Events:     events,
		Pagination: helpers.NewPaginationMeta(p.Page, p.PageSize, total),
	})
}

// action runs a simple id-only editor action and writes 204 on success.
func (c *EventController) action(w http.ResponseWriter, r *http.Request, run func(id string) error) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	if err := run(eventID); err != nil {
		c.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HideEvent godoc
// @Summary Hide an event
// @Tags events
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 204 "hidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID}/hide [post]
func (c *EventController) HideEvent(w http.ResponseWriter, r *http.Request) {
	c.action(w, r, func(id string) error { return c.Service.Hide(r.Context(), id) })
}

// UnhideEvent godoc
// @Summary Unhide an event
// @Tags events
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 204 "visible"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID}/unhide [post]
func (c *EventController) UnhideEvent(w http.ResponseWriter, r *http.Request) {
	c.action(w, r, func(id string) error { return c.Service.Unhide(r.Context(), id) })
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Soft-deletes the event. A single event's private content is deleted with it.
// @Tags events
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 204 "deleted"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	c.action(w, r, func(id string) error { return c.Service.Delete(r.Context(), id) })
}

// ConfirmEvent godoc
// @Summary Confirm a planned event
// @Tags events
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 204 "confirmed"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: precondition_failed"
// @Router /events/{eventID}/confirm [post]
func (c *EventController) ConfirmEvent(w http.ResponseWriter, r *http.Request) {
	c.action(w, r, func(id string) error { return c.Service.Confirm(r.Context(), id) })
}

// CancelEvent godoc
// @Summary Cancel a planned event
// @Tags events
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 204 "canceled"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: precondition_failed"
// @Router /events/{eventID}/cancel [post]
func (c *EventController) CancelEvent(w http.ResponseWriter, r *http.Request) {
	c.action(w, r, func(id string) error { return c.Service.Cancel(r.Context(), id) })
}

// DuplicateEvent godoc
// @Summary Duplicate an event
// @Description Creates a hidden planned copy of the event with fresh capacity counters. Registrations are not copied.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 201 {object} helpers.APIResponse{data=domain.Event}
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/duplicate [post]
func (c *EventController) DuplicateEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	dup, err := c.Service.Duplicate(r.Context(), eventID)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, dup)
}

// AddTimeSlotRequest is the request body for POST /events/{eventID}/time-slots.
type AddTimeSlotRequest struct {
	BeginAt *time.Time `json:"begin_at"`
	EndAt   *time.Time `json:"end_at"`
	Place   string     `json:"place"`
}

// Validate implements helpers.Validator.
func (r *AddTimeSlotRequest) Validate() []string {
	if r.BeginAt == nil {
		return []string{"begin_at is required"}
	}
	if r.EndAt != nil && r.EndAt.Before(*r.BeginAt) {
		return []string{"end_at must not be before begin_at"}
	}
	return nil
}

// AddTimeSlot godoc
// @Summary Add a time slot to an event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param body body controllers.AddTimeSlotRequest true "Time slot payload"
// @Success 201 {object} helpers.APIResponse{data=domain.TimeSlot}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID}/time-slots [post]
func (c *EventController) AddTimeSlot(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	var req AddTimeSlotRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	span, err := domain.NewTimespan(deref(req.BeginAt), deref(req.EndAt))
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	slot := domain.NewTimeSlot(eventID, span, req.Place, time.Time{}, time.Time{})
	if err := c.Service.AddTimeSlot(r.Context(), slot); err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, slot)
}

// AddSpeakerRequest is the request body for POST /speakers.
type AddSpeakerRequest struct {
	Name                   string `json:"name"`
	Email                  string `json:"email"`
	CancellationPeriodDays int    `json:"cancellation_period_days"`
}

// Validate implements helpers.Validator.
func (r *AddSpeakerRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "name is required")
	}
	if r.CancellationPeriodDays < 0 {
		errs = append(errs, "cancellation_period_days must not be negative")
	}
	return errs
}

// AddSpeaker godoc
// @Summary Create a speaker
// @Tags speakers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body controllers.AddSpeakerRequest true "Speaker payload"
// @Success 201 {object} helpers.APIResponse{data=domain.Speaker}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /speakers [post]
func (c *EventController) AddSpeaker(w http.ResponseWriter, r *http.Request) {
	var req AddSpeakerRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	speaker, err := domain.NewSpeaker(req.Name, req.Email, req.CancellationPeriodDays, time.Time{}, time.Time{})
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	if err := c.Service.AddSpeaker(r.Context(), speaker); err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, speaker)
}

// AssignSpeaker godoc
// @Summary Assign a speaker to an event
// @Tags speakers
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param speakerID path string true "Speaker ID (UUID)"
// @Success 204 "assigned"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID}/speakers/{speakerID} [post]
func (c *EventController) AssignSpeaker(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	speakerID, ok := pathID(w, r, "speakerID")
	if !ok {
		return
	}
	if err := c.Service.AssignSpeaker(r.Context(), eventID, speakerID); err != nil {
		c.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListSpeakers godoc
// @Summary List the speakers of an event
// @Tags speakers
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} helpers.APIResponse{data=[]domain.Speaker}
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/speakers [get]
func (c *EventController) ListSpeakers(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	speakers, err := c.Service.ListSpeakers(r.Context(), eventID)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, speakers)
}

// CancellationDeadlineResponse is the data payload for the cancellation
// deadline endpoint.
type CancellationDeadlineResponse struct {
	Deadline time.Time `json:"deadline"`
}

// GetCancellationDeadline godoc
// @Summary Get the cancellation deadline of an event
// @Description Returns the last instant the event can be called off without violating any speaker's notice period. Requires the event to have a begin date.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} helpers.APIResponse{data=controllers.CancellationDeadlineResponse}
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: precondition_failed"
// @Router /events/{eventID}/cancellation-deadline [get]
func (c *EventController) GetCancellationDeadline(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	deadline, err := c.Service.CancellationDeadline(r.Context(), eventID)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, CancellationDeadlineResponse{Deadline: deadline})
}
