package services

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Arun-Dalakoti/CardGenius/internal/models"
)

var (
	ErrSessionNotFound = errors.New("session not found")
)

// NoCardSelected marks a session whose savings view should fall back to the
// average cashback rate across the ranked set.
const NoCardSelected = -1

// Session is the single mutable record behind one user's screens. Setters
// are last-write-wins; every selection write recomputes the ranked result so
// reads never observe a stale recommendation list.
type Session struct {
	ID        uuid.UUID             `json:"id"`
	Selection models.SpendSelection `json:"selection"`
	CardIndex int                   `json:"card_index"`
	Ranked    []models.CardRecord   `json:"ranked"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}

// ActiveCard returns the card the savings view is pinned to, or false when
// the index is out of range of the current ranked set (including the empty
// set and the explicit NoCardSelected state).
func (s *Session) ActiveCard() (models.CardRecord, bool) {
	if s.CardIndex < 0 || s.CardIndex >= len(s.Ranked) {
		return models.CardRecord{}, false
	}
	return s.Ranked[s.CardIndex], true
}

type sessionService struct {
	catalog []models.CardRecord
	ranker  RecommendationServiceInterface
	savings SavingsServiceInterface
	metrics MetricsRecorderInterface

	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session

	idleTTL time.Duration
	stop    chan struct{}
}

// NewSessionService creates the in-memory session store. Sessions idle for
// longer than idleTTL are reaped by a background sweep every sweepInterval;
// call Stop to end the sweep on shutdown. There is no persistence across
// restarts.
func NewSessionService(
	catalog []models.CardRecord,
	ranker RecommendationServiceInterface,
	savings SavingsServiceInterface,
	metrics MetricsRecorderInterface,
	idleTTL time.Duration,
	sweepInterval time.Duration,
) SessionServiceInterface {
	service := &sessionService{
		catalog:  catalog,
		ranker:   ranker,
		savings:  savings,
		metrics:  metrics,
		sessions: make(map[uuid.UUID]*Session),
		idleTTL:  idleTTL,
		stop:     make(chan struct{}),
	}

	if sweepInterval > 0 {
		go service.sweepLoop(sweepInterval)
	}

	return service
}

func (s *sessionService) Create() *Session {
	now := time.Now()
	session := &Session{
		ID: uuid.New(),
		Selection: models.SpendSelection{
			SelectedCategories: []string{},
			CategorySpends:     map[string]int64{},
		},
		CardIndex: NoCardSelected,
		Ranked:    []models.CardRecord{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	count := len(s.sessions)
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.SetActiveSessions(count)
	}

	slog.Info("session created", "session_id", session.ID)

	return session
}

func (s *sessionService) Get(id uuid.UUID) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	return snapshot(session), nil
}

// UpdateSelection overwrites the session's categories and spends and
// recomputes the ranked result. The previously selected card index is kept
// when it still points inside the new result and cleared otherwise.
func (s *sessionService) UpdateSelection(id uuid.UUID, selection models.SpendSelection) (*Session, error) {
	ranked := s.ranker.Rank(s.catalog, selection)

	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	session.Selection = selection
	session.Ranked = ranked
	if session.CardIndex >= len(ranked) {
		session.CardIndex = NoCardSelected
	}
	session.UpdatedAt = time.Now()

	return snapshot(session), nil
}

// SelectCard pins the savings view to a position in the current ranked
// result. Any negative index clears the selection; an index past the end is
// stored as-is and degrades to the fallback rate at savings time rather
// than failing, matching how a carousel can briefly point past a shrunken
// list.
func (s *sessionService) SelectCard(id uuid.UUID, cardIndex int) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	if cardIndex < 0 {
		cardIndex = NoCardSelected
	}
	session.CardIndex = cardIndex
	session.UpdatedAt = time.Now()

	return snapshot(session), nil
}

// Savings resolves the cashback rate for the session's current state and
// computes the breakdown: the active card's own rate and fee when one is
// selected, the average across the ranked set when none is, and the zero
// placeholder when nothing is ranked at all.
func (s *sessionService) Savings(id uuid.UUID) (*models.SavingsBreakdown, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	if !ok {
		s.mu.RUnlock()
		return nil, ErrSessionNotFound
	}

	selection := session.Selection
	ranked := session.Ranked
	card, hasCard := session.ActiveCard()
	s.mu.RUnlock()

	rate := decimal.Zero
	var annualFee int64

	switch {
	case hasCard:
		rate = card.CashbackRate
		annualFee = card.AnnualFee
	case len(ranked) > 0:
		rate = s.ranker.AverageCashback(ranked)
	}

	return s.savings.ComputeBreakdown(selection.CategorySpends, selection.SpendOrder(), rate, annualFee), nil
}

func (s *sessionService) Delete(id uuid.UUID) error {
	s.mu.Lock()
	_, ok := s.sessions[id]
	delete(s.sessions, id)
	count := len(s.sessions)
	s.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}

	if s.metrics != nil {
		s.metrics.SetActiveSessions(count)
	}

	return nil
}

func (s *sessionService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Stop ends the background sweep. Safe to call once on shutdown.
func (s *sessionService) Stop() {
	close(s.stop)
}

func (s *sessionService) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *sessionService) sweep() {
	cutoff := time.Now().Add(-s.idleTTL)

	s.mu.Lock()
	expired := 0
	for id, session := range s.sessions {
		if session.UpdatedAt.Before(cutoff) {
			delete(s.sessions, id)
			expired++
		}
	}
	count := len(s.sessions)
	s.mu.Unlock()

	if expired > 0 {
		slog.Info("expired idle sessions", "expired", expired, "remaining", count)
		if s.metrics != nil {
			s.metrics.RecordSessionExpired(expired)
			s.metrics.SetActiveSessions(count)
		}
	}
}

// snapshot copies the session so callers outside the lock never share the
// mutable record
func snapshot(session *Session) *Session {
	out := *session
	out.Ranked = make([]models.CardRecord, len(session.Ranked))
	copy(out.Ranked, session.Ranked)
	return &out
}
