package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/catalog"
	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/domain"
	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/query"
)

// BrowseUsecase manages browsing sessions. Each session owns one view
// controller; transitions are applied in the order received per session and
// every call returns a consistent snapshot of state plus results.
type BrowseUsecase interface {
	CreateSession(ctx context.Context) (*domain.BrowseSession, error)
	GetSession(ctx context.Context, id string) (*domain.BrowseSession, error)
	SelectCode(ctx context.Context, id, code string) (*domain.BrowseSession, error)
	SetSearchTerm(ctx context.Context, id, term string) (*domain.BrowseSession, error)
	UpdateFacets(ctx context.Context, id string, update domain.FacetUpdate) (*domain.BrowseSession, error)
	ClearFacets(ctx context.Context, id string) (*domain.BrowseSession, error)
	DeleteSession(ctx context.Context, id string) error
	PurgeExpired(ctx context.Context) int
}

// session pairs a view controller with its bookkeeping. The mutex serializes
// transitions within one session; the dataset itself needs no locking.
type session struct {
	mu           sync.Mutex
	id           string
	view         *query.ViewController
	createdAt    time.Time
	lastActiveAt time.Time
}

type browseUsecase struct {
	ds     *catalog.Dataset
	ttl    time.Duration
	logger *slog.Logger

	mu       sync.RWMutex
	sessions map[string]*session
}

// NewBrowseUsecase creates a session manager. Sessions idle longer than ttl
// are removed by PurgeExpired.
func NewBrowseUsecase(ds *catalog.Dataset, ttl time.Duration, logger *slog.Logger) BrowseUsecase {
	return &browseUsecase{
		ds:       ds,
		ttl:      ttl,
		logger:   logger,
		sessions: make(map[string]*session),
	}
}

// CreateSession starts a new browsing session in the "show everything" state
func (u *browseUsecase) CreateSession(ctx context.Context) (*domain.BrowseSession, error) {
	now := time.Now()
	s := &session{
		id:           uuid.New().String(),
		view:         query.NewViewController(u.ds),
		createdAt:    now,
		lastActiveAt: now,
	}

	snap := s.snapshot()

	u.mu.Lock()
	u.sessions[s.id] = s
	u.mu.Unlock()

	u.logger.Debug("browse session created", "session_id", s.id)
	return snap, nil
}

// GetSession returns the current snapshot of a session
func (u *browseUsecase) GetSession(ctx context.Context, id string) (*domain.BrowseSession, error) {
	s, err := u.lookup(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot(), nil
}

// SelectCode replaces the session's active classification code. An empty
// code clears the selection.
func (u *browseUsecase) SelectCode(ctx context.Context, id, code string) (*domain.BrowseSession, error) {
	return u.transition(id, func(v *query.ViewController) error {
		v.SelectCode(code)
		return nil
	})
}

// SetSearchTerm replaces the session's free-text term
func (u *browseUsecase) SetSearchTerm(ctx context.Context, id, term string) (*domain.BrowseSession, error) {
	return u.transition(id, func(v *query.ViewController) error {
		v.SetSearchTerm(term)
		return nil
	})
}

// UpdateFacets merges a partial facet update into the session. Invalid enum
// values reject the transition and leave the session unchanged.
func (u *browseUsecase) UpdateFacets(ctx context.Context, id string, update domain.FacetUpdate) (*domain.BrowseSession, error) {
	return u.transition(id, func(v *query.ViewController) error {
		return v.UpdateFacets(update)
	})
}

// ClearFacets resets the session's facet set
func (u *browseUsecase) ClearFacets(ctx context.Context, id string) (*domain.BrowseSession, error) {
	return u.transition(id, func(v *query.ViewController) error {
		v.ClearFacets()
		return nil
	})
}

// DeleteSession ends a browsing session
func (u *browseUsecase) DeleteSession(ctx context.Context, id string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if _, ok := u.sessions[id]; !ok {
		return domain.NewNotFoundError("session", id)
	}
	delete(u.sessions, id)
	u.logger.Debug("browse session deleted", "session_id", id)
	return nil
}

// PurgeExpired removes sessions idle longer than the configured TTL and
// returns how many were removed
func (u *browseUsecase) PurgeExpired(ctx context.Context) int {
	deadline := time.Now().Add(-u.ttl)

	u.mu.Lock()
	defer u.mu.Unlock()

	purged := 0
	for id, s := range u.sessions {
		s.mu.Lock()
		expired := s.lastActiveAt.Before(deadline)
		s.mu.Unlock()
		if expired {
			delete(u.sessions, id)
			purged++
		}
	}

	if purged > 0 {
		u.logger.Info("purged expired browse sessions", "count", purged)
	}
	return purged
}

func (u *browseUsecase) lookup(id string) (*session, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	s, ok := u.sessions[id]
	if !ok {
		return nil, domain.NewNotFoundError("session", id)
	}
	return s, nil
}

func (u *browseUsecase) transition(id string, apply func(*query.ViewController) error) (*domain.BrowseSession, error) {
	s, err := u.lookup(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := apply(s.view); err != nil {
		return nil, err
	}
	s.lastActiveAt = time.Now()
	return s.snapshot(), nil
}

// snapshot captures the session state; callers hold the session lock
func (s *session) snapshot() *domain.BrowseSession {
	return &domain.BrowseSession{
		ID:           s.id,
		SelectedCode: s.view.SelectedCode(),
		SearchTerm:   s.view.SearchTerm(),
		Facets:       s.view.Facets(),
		Results:      s.view.Results(),
		CreatedAt:    s.createdAt,
		LastActiveAt: s.lastActiveAt,
	}
}
