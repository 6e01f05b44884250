package services

import (
	"context"
	"fmt"
	"time"

	"seminarmanager/internal/domain"
)

// Map-backed mocks shared by the service tests.

type mockEventRepository struct {
	topics  map[string]*domain.EventContent
	events  map[string]*domain.Event
	err     error
	created []*domain.Event

	queueCounts   map[string]int
	statusUpdates map[string]domain.EventStatus
	hiddenUpdates map[string]bool
	deleted       []string
	topicsDeleted []string
}

func (m *mockEventRepository) CreateTopic(ctx context.Context, content *domain.EventContent) error {
	if m.err != nil {
		return m.err
	}
	if content.ID == "" {
		content.ID = fmt.Sprintf("topic-%d", len(m.topics)+1)
	}
	if m.topics == nil {
		m.topics = map[string]*domain.EventContent{}
	}
	m.topics[content.ID] = content
	return nil
}

func (m *mockEventRepository) GetTopicByID(ctx context.Context, id string) (*domain.EventContent, error) {
	if m.err != nil {
		return nil, m.err
	}
	topic, ok := m.topics[id]
	if !ok || topic.Deleted {
		return nil, domain.ErrNotFound
	}
	return topic, nil
}

func (m *mockEventRepository) SetTopicDeleted(ctx context.Context, id string, deleted bool) error {
	m.topicsDeleted = append(m.topicsDeleted, id)
	return nil
}

func (m *mockEventRepository) Create(ctx context.Context, event *domain.Event) error {
	if m.err != nil {
		return m.err
	}
	if event.ID == "" {
		event.ID = fmt.Sprintf("ev-%d", len(m.events)+len(m.created)+1)
	}
	m.created = append(m.created, event)
	return nil
}

func (m *mockEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	ev, ok := m.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return ev, nil
}

func (m *mockEventRepository) List(ctx context.Context, p domain.PaginationParams) ([]*domain.Event, int, error) {
	if m.err != nil {
		return nil, 0, m.err
	}
	var events []*domain.Event
	for _, ev := range m.events {
		events = append(events, ev)
	}
	return events, len(events), nil
}

func (m *mockEventRepository) UpdateStatus(ctx context.Context, id string, status domain.EventStatus) error {
	if m.statusUpdates == nil {
		m.statusUpdates = map[string]domain.EventStatus{}
	}
	m.statusUpdates[id] = status
	return nil
}

func (m *mockEventRepository) SetHidden(ctx context.Context, id string, hidden bool) error {
	if _, ok := m.events[id]; !ok {
		return domain.ErrNotFound
	}
	if m.hiddenUpdates == nil {
		m.hiddenUpdates = map[string]bool{}
	}
	m.hiddenUpdates[id] = hidden
	return nil
}

func (m *mockEventRepository) SetDeleted(ctx context.Context, id string, deleted bool) error {
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockEventRepository) UpdateQueueCount(ctx context.Context, id string, attendeesOnQueue int) error {
	if m.queueCounts == nil {
		m.queueCounts = map[string]int{}
	}
	m.queueCounts[id] = attendeesOnQueue
	return nil
}

type mockRegistrationRepository struct {
	regs    map[string]*domain.Registration
	byUser  map[string][]*domain.Registration
	ledgers map[string]domain.CapacityLedger
	queued  map[string]*domain.Registration
	err     error

	created      []*domain.Registration
	unregistered []string
	paid         []string
}

func (m *mockRegistrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	if m.err != nil {
		return m.err
	}
	reg.ID = fmt.Sprintf("reg-%d", len(m.created)+1)
	m.created = append(m.created, reg)
	return nil
}

func (m *mockRegistrationRepository) GetByID(ctx context.Context, id string) (*domain.Registration, error) {
	reg, ok := m.regs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return reg, nil
}

func (m *mockRegistrationRepository) GetActiveByEventAndUser(ctx context.Context, eventID, userID string) (*domain.Registration, error) {
	for _, reg := range m.byUser[userID] {
		if reg.EventID == eventID && reg.IsActive() {
			return reg, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockRegistrationRepository) ListActiveByUserID(ctx context.Context, userID string) ([]*domain.Registration, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.byUser[userID], nil
}

func (m *mockRegistrationRepository) CountActiveByEventID(ctx context.Context, eventID string) (domain.CapacityLedger, error) {
	return m.ledgers[eventID], nil
}

func (m *mockRegistrationRepository) MarkUnregistered(ctx context.Context, id string, at time.Time) error {
	m.unregistered = append(m.unregistered, id)
	return nil
}

func (m *mockRegistrationRepository) PromoteFirstQueued(ctx context.Context, eventID string, at time.Time) (*domain.Registration, error) {
	reg, ok := m.queued[eventID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	reg.OnQueue = false
	return reg, nil
}

func (m *mockRegistrationRepository) SetPaid(ctx context.Context, id string, at time.Time) error {
	if m.err != nil {
		return m.err
	}
	m.paid = append(m.paid, id)
	return nil
}

type mockUserRepository struct {
	users        map[string]*domain.User
	usersByEmail map[string]*domain.User
	createErr    error
}

func (m *mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	user.ID = "user-new"
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, ok := m.usersByEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

type mockNotifier struct {
	confirmed []string
	withdrawn []string
	promoted  []string
}

func (m *mockNotifier) RegistrationConfirmed(ctx context.Context, user *domain.User, event *domain.Event, reg *domain.Registration) error {
	m.confirmed = append(m.confirmed, user.ID)
	return nil
}

func (m *mockNotifier) RegistrationWithdrawn(ctx context.Context, user *domain.User, event *domain.Event) error {
	m.withdrawn = append(m.withdrawn, user.ID)
	return nil
}

func (m *mockNotifier) PromotedFromQueue(ctx context.Context, user *domain.User, event *domain.Event) error {
	m.promoted = append(m.promoted, user.ID)
	return nil
}

type mockTimeSlotRepository struct {
	created []*domain.TimeSlot
	err     error
}

func (m *mockTimeSlotRepository) Create(ctx context.Context, slot *domain.TimeSlot) error {
	if m.err != nil {
		return m.err
	}
	slot.ID = fmt.Sprintf("slot-%d", len(m.created)+1)
	m.created = append(m.created, slot)
	return nil
}

func (m *mockTimeSlotRepository) ListByEventID(ctx context.Context, eventID string) ([]domain.TimeSlot, error) {
	return nil, nil
}

func (m *mockTimeSlotRepository) DeleteByEventID(ctx context.Context, eventID string) error {
	return nil
}

type mockSpeakerRepository struct {
	speakers map[string][]*domain.Speaker
	created  []*domain.Speaker
	links    []string
}

func (m *mockSpeakerRepository) Create(ctx context.Context, speaker *domain.Speaker) error {
	speaker.ID = fmt.Sprintf("speaker-%d", len(m.created)+1)
	m.created = append(m.created, speaker)
	return nil
}

func (m *mockSpeakerRepository) LinkToEvent(ctx context.Context, eventID, speakerID string) error {
	m.links = append(m.links, eventID+":"+speakerID)
	return nil
}

func (m *mockSpeakerRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Speaker, error) {
	return m.speakers[eventID], nil
}

type mockHasher struct {
	saltErr error
}

func (m *mockHasher) GenerateSalt() (string, error) {
	if m.saltErr != nil {
		return "", m.saltErr
	}
	return "salt", nil
}

func (m *mockHasher) Hash(salt, password string) (string, error) {
	return "hash:" + salt + ":" + password, nil
}

func (m *mockHasher) Compare(hash, salt, password string) error {
	if hash != "hash:"+salt+":"+password {
		return fmt.Errorf("password mismatch")
	}
	return nil
}

type mockTokenIssuer struct{}

func (m *mockTokenIssuer) Issue(userID, email string, expiry time.Duration) (string, error) {
	return "token-" + userID, nil
}
