package cart

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Service hands out the per-session cart stores. A session is created
// lazily on first use and lives only as long as the process; carts are
// deliberately not persisted anywhere.
type Service interface {
	// Get returns the store for the session, creating it if needed.
	Get(sessionID string) *Store
	NewSessionID() string
}

type service struct {
	mu     sync.Mutex
	stores map[string]*Store
}

var _ Service = (*service)(nil)

func NewService() Service {
	return &service{
		stores: make(map[string]*Store),
	}
}

func (s *service) Get(sessionID string) *Store {
	if sessionID == "" {
		log.Warn().Msg("empty cart session id, handing out a detached store")
		return NewStore()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	store, ok := s.stores[sessionID]
	if !ok {
		store = NewStore()
		s.stores[sessionID] = store
	}
	return store
}

func (s *service) NewSessionID() string {
	return uuid.NewString()
}
