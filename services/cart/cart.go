package cart

import (
	"sync"

	"github.com/caffeinepub/minecraft-rank-store/clients/backend"
	"github.com/caffeinepub/minecraft-rank-store/set"
)

// Store holds one session's pending rank selection plus the drawer
// visibility flag. Items are deduplicated by rank ID and kept in
// insertion order; nothing here is ever persisted.
type Store struct {
	mu     sync.Mutex
	items  []backend.Rank
	ids    *set.Set[string]
	isOpen bool
}

func NewStore() *Store {
	return &Store{
		items: make([]backend.Rank, 0),
		ids:   set.New[string](),
	}
}

// AddItem inserts the rank unless one with the same ID is already
// present. Adding a duplicate is a no-op, not an error.
func (s *Store) AddItem(rank backend.Rank) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ids.Contains(rank.ID) {
		return
	}
	s.ids.Add(rank.ID)
	s.items = append(s.items, rank)
}

// RemoveItem drops the matching entry. Removing an absent ID is a no-op.
func (s *Store) RemoveItem(rankID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ids.Contains(rankID) {
		return
	}
	s.ids.Remove(rankID)
	for i, item := range s.items {
		if item.ID == rankID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
}

func (s *Store) IsInCart(rankID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ids.Contains(rankID)
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make([]backend.Rank, 0)
	s.ids.Clear()
}

// Items returns the current selection in insertion order. The returned
// slice is a copy; mutating it does not touch the cart.
func (s *Store) Items() []backend.Rank {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]backend.Rank, len(s.items))
	copy(items, s.items)
	return items
}

func (s *Store) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ids.Size()
}

// Total is recomputed from the current items on every call.
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0.0
	for _, item := range s.items {
		total += item.Price
	}
	return total
}

func (s *Store) Open() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isOpen = true
}

func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isOpen = false
}

func (s *Store) Toggle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isOpen = !s.isOpen
}

func (s *Store) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isOpen
}
