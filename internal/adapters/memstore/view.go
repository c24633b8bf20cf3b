package memstore

import (
	"iter"
	"slices"

	"github.com/jsamuelsen11/realm-chronicle/internal/domain"
	"github.com/jsamuelsen11/realm-chronicle/internal/domain/character"
	"github.com/jsamuelsen11/realm-chronicle/internal/domain/house"
	"github.com/jsamuelsen11/realm-chronicle/internal/ports"
)

// Compile-time interface check.
var _ ports.ReadAccess = (*View)(nil)

// View is the read-only facade of a Store. It has no mutating methods.
//
// Sequences copy the collection under a read lock when ranging begins and
// yield without holding it, so loop bodies may call lookups freely.
type View struct {
	store *Store
}

// Characters yields every character in insertion order.
func (v *View) Characters() iter.Seq[character.Character] {
	return func(yield func(character.Character) bool) {
		for _, c := range v.store.snapshotCharacters() {
			if !yield(c) {
				return
			}
		}
	}
}

// Houses yields every house in insertion order.
func (v *View) Houses() iter.Seq[house.House] {
	return func(yield func(house.House) bool) {
		for _, h := range v.store.snapshotHouses() {
			if !yield(h) {
				return
			}
		}
	}
}

// CharacterByID returns the character with the given ID, if any.
func (v *View) CharacterByID(id int64) (character.Character, bool) {
	v.store.mu.RLock()
	defer v.store.mu.RUnlock()
	c, ok := v.store.characters[id]
	return c, ok
}

// HouseByID returns the house with the given ID, if any.
func (v *View) HouseByID(id int64) (house.House, bool) {
	v.store.mu.RLock()
	defer v.store.mu.RUnlock()
	h, ok := v.store.houses[id]
	return h, ok
}

// OverlordedBy yields every house whose overlord is houseID, in insertion
// order. The NoRelation sentinel matches nothing.
func (v *View) OverlordedBy(houseID int64) iter.Seq[house.House] {
	return func(yield func(house.House) bool) {
		if houseID == domain.NoRelation {
			return
		}
		for h := range slices.Values(v.store.snapshotHouses()) {
			if h.Overlord() == houseID && !yield(h) {
				return
			}
		}
	}
}
