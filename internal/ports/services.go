package ports

import (
	"context"

	"github.com/jsamuelsen11/realm-chronicle/internal/domain/character"
	"github.com/jsamuelsen11/realm-chronicle/internal/domain/house"
)

// QueryService defines the service port for read-only queries over houses
// and characters. Implemented by the application layer; called by inbound
// adapters (CLI commands).
type QueryService interface {
	// CharacterNames returns every character name in store order.
	CharacterNames(ctx context.Context) ([]string, error)

	// CharacterNamesByLength returns every character name, stable-sorted by
	// ascending length.
	CharacterNamesByLength(ctx context.Context) ([]string, error)

	// TitledCharacters returns characters whose first title is non-empty.
	TitledCharacters(ctx context.Context) ([]character.Character, error)

	// CharacterWithMostTitles returns the character holding the most
	// titles; on a tie the later character wins.
	// Returns domain.ErrEmptyInput if there are no characters.
	CharacterWithMostTitles(ctx context.Context) (character.Character, error)

	// MottoLengths maps each house name to the length of its words.
	MottoLengths(ctx context.Context) (map[string]int, error)

	// DornishLords returns the resolved lords of every house in Dorne.
	// Lords that do not resolve to a character are skipped.
	DornishLords(ctx context.Context) ([]character.Character, error)

	// OverlordedsOverlorded returns every house sworn to the overlord of
	// h's overlord. Returns an empty slice if either step does not resolve.
	OverlordedsOverlorded(ctx context.Context, h house.House) ([]house.House, error)

	// VassalsOfVassals returns every house whose overlord is sworn to h.
	VassalsOfVassals(ctx context.Context, h house.House) ([]house.House, error)

	// DornishLordsTitleShare maps each Dornish lord's name to the
	// percentage of all Dornish lords' titles that lord holds.
	// Returns domain.ErrEmptyInput if there are no Dornish lords.
	DornishLordsTitleShare(ctx context.Context) (map[string]float64, error)
}

// WriteService defines the service port for mutations. Implemented by the
// application layer; called by inbound adapters (CLI commands).
type WriteService interface {
	// AddHouse validates and stores a new house.
	// Returns domain.ErrValidation or domain.ErrConflict.
	AddHouse(ctx context.Context, h house.House) error

	// AddCharacter validates and stores a new character.
	// Returns domain.ErrValidation or domain.ErrConflict.
	AddCharacter(ctx context.Context, c character.Character) error

	// ChangeHouseRuler makes ruler the current lord of h and returns the
	// updated house. Returns domain.ErrNotFound if h is not stored.
	ChangeHouseRuler(ctx context.Context, h house.House, ruler character.Character) (house.House, error)

	// AddHouseAndListOverlorded stores h and then returns every house sworn
	// to the overlord of its overlord.
	AddHouseAndListOverlorded(ctx context.Context, h house.House) ([]house.House, error)

	// AddHouseWithRuler stores h and ruler, makes ruler the lord of h, and
	// returns the lord read back from the store.
	AddHouseWithRuler(ctx context.Context, h house.House, ruler character.Character) (character.Character, error)
}
