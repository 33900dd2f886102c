package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"homestay/internal/pkg/clock"
	"homestay/internal/pkg/errs"

	"github.com/google/uuid"
)

// SessionView is the read model the calendar and confirmation UIs render
// from: current status, the in-progress candidate and its quote.
type SessionView struct {
	ID                uuid.UUID
	PropertyID        uuid.UUID
	NightlyPriceCents int64
	Status            string
	Reason            *string
	CheckIn           *time.Time
	CheckOut          *time.Time
	Nights            *int
	OrderTotalCents   *int64
}

type ConfirmResult struct {
	BookingID   uuid.UUID
	CheckoutURL string
}

// BookingSessions exposes the selection events to the transport layer.
// Sessions are owned: every call is scoped to the profile that opened
// the session.
type BookingSessions interface {
	Open(ctx context.Context, profileID, propertyID uuid.UUID) (*SessionView, error)
	Get(ctx context.Context, profileID, sessionID uuid.UUID) (*SessionView, error)
	SelectStart(ctx context.Context, profileID, sessionID uuid.UUID, date time.Time) (*SessionView, error)
	SelectEnd(ctx context.Context, profileID, sessionID uuid.UUID, date time.Time) (*SessionView, error)
	Clear(ctx context.Context, profileID, sessionID uuid.UUID) (*SessionView, error)
	Confirm(ctx context.Context, profileID, sessionID uuid.UUID) (*ConfirmResult, error)
}

type bookingSessionsImpl struct {
	store       *SessionStore
	reader      BookingContextReader
	writer      BookingWriter
	clk         clock.Clock
	checkoutURL string
}

func NewBookingSessions(
	store *SessionStore,
	reader BookingContextReader,
	writer BookingWriter,
	clk clock.Clock,
	checkoutURL string,
) BookingSessions {
	return &bookingSessionsImpl{
		store:       store,
		reader:      reader,
		writer:      writer,
		clk:         clk,
		checkoutURL: checkoutURL,
	}
}

func (u *bookingSessionsImpl) Open(ctx context.Context, profileID, propertyID uuid.UUID) (*SessionView, error) {
	session := newBookingSession(profileID, u.reader, u.writer, u.clk)
	if err := session.Hydrate(ctx, propertyID); err != nil {
		return nil, err
	}
	u.store.Put(session)
	return session.Snapshot(), nil
}

func (u *bookingSessionsImpl) Get(_ context.Context, profileID, sessionID uuid.UUID) (*SessionView, error) {
	session, err := u.store.Get(sessionID, profileID)
	if err != nil {
		return nil, err
	}
	return session.Snapshot(), nil
}

func (u *bookingSessionsImpl) SelectStart(_ context.Context, profileID, sessionID uuid.UUID, date time.Time) (*SessionView, error) {
	session, err := u.store.Get(sessionID, profileID)
	if err != nil {
		return nil, err
	}
	if err := session.SelectStart(date); err != nil {
		return nil, err
	}
	return session.Snapshot(), nil
}

func (u *bookingSessionsImpl) SelectEnd(_ context.Context, profileID, sessionID uuid.UUID, date time.Time) (*SessionView, error) {
	session, err := u.store.Get(sessionID, profileID)
	if err != nil {
		return nil, err
	}
	if err := session.SelectEnd(date); err != nil {
		return nil, err
	}
	return session.Snapshot(), nil
}

func (u *bookingSessionsImpl) Clear(_ context.Context, profileID, sessionID uuid.UUID) (*SessionView, error) {
	session, err := u.store.Get(sessionID, profileID)
	if err != nil {
		return nil, err
	}
	session.Clear()
	return session.Snapshot(), nil
}

func (u *bookingSessionsImpl) Confirm(ctx context.Context, profileID, sessionID uuid.UUID) (*ConfirmResult, error) {
	session, err := u.store.Get(sessionID, profileID)
	if err != nil {
		return nil, err
	}

	bookingID, err := session.Confirm(ctx)
	if err != nil {
		return nil, err
	}

	return &ConfirmResult{
		BookingID:   bookingID,
		CheckoutURL: fmt.Sprintf("%s?bookingId=%s", u.checkoutURL, bookingID),
	}, nil
}

// SessionStore keeps live booking sessions in process memory. A session
// is discarded untouched when it outlives the TTL: nothing is persisted
// before confirm succeeds, so expiry has no side effects.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*BookingSession
	ttl      time.Duration
	clk      clock.Clock
}

func NewSessionStore(clk clock.Clock, ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[uuid.UUID]*BookingSession),
		ttl:      ttl,
		clk:      clk,
	}
}

func (st *SessionStore) Put(session *BookingSession) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[session.ID()] = session
}

// Get is ownership-checked; an expired or foreign session reads the same
// as a missing one so session ids cannot be probed.
func (st *SessionStore) Get(sessionID, profileID uuid.UUID) (*BookingSession, error) {
	st.mu.RLock()
	session, ok := st.sessions[sessionID]
	st.mu.RUnlock()

	if !ok || session.ProfileID() != profileID {
		return nil, errs.ErrSessionNotFound
	}
	if session.expiredAt(st.clk.Now().Add(-st.ttl)) {
		st.Delete(sessionID)
		return nil, errs.ErrSessionNotFound
	}
	return session, nil
}

func (st *SessionStore) Delete(sessionID uuid.UUID) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, sessionID)
}

func (st *SessionStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Sweep drops every session idle past the TTL. Called periodically from
// the lifecycle hook; Get also evicts lazily so the sweeper is a floor
// on memory, not a correctness requirement.
func (st *SessionStore) Sweep() int {
	deadline := st.clk.Now().Add(-st.ttl)

	st.mu.RLock()
	var expired []uuid.UUID
	for id, session := range st.sessions {
		if session.expiredAt(deadline) {
			expired = append(expired, id)
		}
	}
	st.mu.RUnlock()

	st.mu.Lock()
	defer st.mu.Unlock()
	removed := 0
	for _, id := range expired {
		if session, ok := st.sessions[id]; ok && session.expiredAt(deadline) {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}
