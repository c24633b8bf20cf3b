package ports

import (
	"context"

	"github.com/jsamuelsen11/realm-chronicle/internal/domain/character"
	"github.com/jsamuelsen11/realm-chronicle/internal/domain/house"
)

// Dataset is the initial snapshot produced by a loader.
type Dataset struct {
	Characters []character.Character
	Houses     []house.House
}

// DatasetLoader produces the initial dataset from an external source.
// Implemented by the dataset adapter; called once at startup.
type DatasetLoader interface {
	// Load reads and validates the dataset.
	// Returns domain.ErrValidation for malformed records and
	// domain.ErrNotFound for missing sources.
	Load(ctx context.Context) (*Dataset, error)
}
