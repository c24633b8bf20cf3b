package ports

import (
	"iter"

	"github.com/jsamuelsen11/realm-chronicle/internal/domain/character"
	"github.com/jsamuelsen11/realm-chronicle/internal/domain/house"
)

// ReadAccess is the read-only view of the character and house collections.
// Implemented by the store adapter; consumed by the query layer.
// Lookups that miss report false and never return an error.
type ReadAccess interface {
	// Characters yields every character in insertion order.
	Characters() iter.Seq[character.Character]

	// Houses yields every house in insertion order.
	Houses() iter.Seq[house.House]

	// CharacterByID returns the character with the given ID, if any.
	CharacterByID(id int64) (character.Character, bool)

	// HouseByID returns the house with the given ID, if any.
	HouseByID(id int64) (house.House, bool)

	// OverlordedBy yields every house whose overlord is houseID.
	OverlordedBy(houseID int64) iter.Seq[house.House]
}

// WriteAccess is the exclusive write handle over the same collections.
// Implemented by the store adapter; consumed by the mutation layer.
type WriteAccess interface {
	// AddHouse appends a house.
	// Returns domain.ErrConflict if a house with the same ID exists.
	AddHouse(h house.House) error

	// AddCharacter appends a character.
	// Returns domain.ErrConflict if a character with the same ID exists.
	AddCharacter(c character.Character) error

	// ReplaceHouse swaps the stored house current for next, keeping its
	// position in iteration order. Returns a *domain.HouseNotFoundError if
	// the stored house with current's ID is absent or differs from current.
	ReplaceHouse(current, next house.House) error
}
