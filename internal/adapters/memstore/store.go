// Package memstore provides the owned, identifier-indexed in-memory store
// backing every query and mutation. The Store is the exclusive write
// handle; View returns a read-only facade over the same storage.
//
//	store, err := memstore.NewFromDataset(ds)
//	view := store.View() // ports.ReadAccess
//	err = store.AddHouse(h) // ports.WriteAccess
//
// Entities are kept in maps keyed by ID alongside an insertion-order index,
// so lookups and replacements are O(1) and iteration order is stable.
package memstore

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jsamuelsen11/realm-chronicle/internal/domain"
	"github.com/jsamuelsen11/realm-chronicle/internal/domain/character"
	"github.com/jsamuelsen11/realm-chronicle/internal/domain/house"
	"github.com/jsamuelsen11/realm-chronicle/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.WriteAccess   = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// Store holds the character and house collections. Safe for concurrent use;
// individual calls are atomic but no transaction spans several calls.
type Store struct {
	mu sync.RWMutex

	characters     map[int64]character.Character
	characterOrder []int64

	houses     map[int64]house.House
	houseOrder []int64
}

// New creates an empty store.
func New() *Store {
	return &Store{
		characters: make(map[int64]character.Character),
		houses:     make(map[int64]house.House),
	}
}

// NewFromDataset creates a store populated with ds in dataset order.
// Returns domain.ErrConflict if ds repeats an identifier.
func NewFromDataset(ds *ports.Dataset) (*Store, error) {
	s := New()
	if ds == nil {
		return s, nil
	}

	var errs []error
	for _, c := range ds.Characters {
		if err := s.AddCharacter(c); err != nil {
			errs = append(errs, err)
		}
	}
	for _, h := range ds.Houses {
		if err := s.AddHouse(h); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("populating store: %w", err)
	}
	return s, nil
}

// View returns a read-only handle over the store. The view is not a copy:
// writes made through the store are visible to later reads.
func (s *Store) View() *View {
	return &View{store: s}
}

// AddCharacter appends c. Returns domain.ErrConflict if the ID is taken.
func (s *Store) AddCharacter(c character.Character) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.characters[c.ID()]; exists {
		return fmt.Errorf("character %d already exists: %w", c.ID(), domain.ErrConflict)
	}
	s.characters[c.ID()] = c
	s.characterOrder = append(s.characterOrder, c.ID())
	return nil
}

// AddHouse appends h. Returns domain.ErrConflict if the ID is taken.
func (s *Store) AddHouse(h house.House) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.houses[h.ID()]; exists {
		return fmt.Errorf("house %d already exists: %w", h.ID(), domain.ErrConflict)
	}
	s.houses[h.ID()] = h
	s.houseOrder = append(s.houseOrder, h.ID())
	return nil
}

// ReplaceHouse swaps current for next, which must share its ID. The house
// keeps its iteration position. Returns a *domain.HouseNotFoundError and
// leaves the store untouched unless the stored house equals current.
func (s *Store) ReplaceHouse(current, next house.House) error {
	if next.ID() != current.ID() {
		return fmt.Errorf("replacing house %d with house %d: %w", current.ID(), next.ID(), domain.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if stored, exists := s.houses[current.ID()]; !exists || stored != current {
		return &domain.HouseNotFoundError{HouseID: current.ID()}
	}
	s.houses[current.ID()] = next
	return nil
}

// Counts returns the number of stored characters and houses.
func (s *Store) Counts() (characters, houses int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.characterOrder), len(s.houseOrder)
}

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry].
func (s *Store) Name() string {
	return "store"
}

// HealthCheck reports the store as unhealthy while either collection is
// empty, since most queries would then return nothing.
func (s *Store) HealthCheck(_ context.Context) error {
	chars, houses := s.Counts()
	switch {
	case chars == 0 && houses == 0:
		return errors.New("store: no characters or houses loaded")
	case chars == 0:
		return errors.New("store: no characters loaded")
	case houses == 0:
		return errors.New("store: no houses loaded")
	default:
		return nil
	}
}

// snapshotCharacters copies the characters in order under a read lock.
func (s *Store) snapshotCharacters() []character.Character {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]character.Character, len(s.characterOrder))
	for i, id := range s.characterOrder {
		out[i] = s.characters[id]
	}
	return out
}

// snapshotHouses copies the houses in order under a read lock.
func (s *Store) snapshotHouses() []house.House {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]house.House, len(s.houseOrder))
	for i, id := range s.houseOrder {
		out[i] = s.houses[id]
	}
	return out
}
