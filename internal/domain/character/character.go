// Package character defines the Character entity: a named person holding
// an ordered list of titles and portrayed by an ordered list of actors.
package character

import (
	"slices"
	"strings"

	"github.com/jsamuelsen11/realm-chronicle/internal/domain"
)

const (
	msgRequired    = "is required"
	msgNonNegative = "must not be negative"
)

// Character is an immutable character record. Construct it with New; the
// zero value is a character with ID 0 and no name.
type Character struct {
	id         int64
	name       string
	titles     []string
	portrayals []string
}

// New creates a Character. The titles and portrayals slices are copied, so
// later changes by the caller do not leak into the value.
func New(id int64, name string, titles, portrayals []string) Character {
	return Character{
		id:         id,
		name:       name,
		titles:     slices.Clone(titles),
		portrayals: slices.Clone(portrayals),
	}
}

// ID returns the character's unique identifier.
func (c Character) ID() int64 { return c.id }

// Name returns the character's name.
func (c Character) Name() string { return c.name }

// Titles returns a copy of the character's titles in their original order.
// A single empty string means the character holds no title.
func (c Character) Titles() []string { return slices.Clone(c.titles) }

// Portrayals returns a copy of the actors who played the character.
func (c Character) Portrayals() []string { return slices.Clone(c.portrayals) }

// TitleCount returns the number of entries in the title list, counting an
// empty placeholder title as an entry.
func (c Character) TitleCount() int { return len(c.titles) }

// IsTitled reports whether the title list is non-empty and its first title
// is a non-empty string.
func (c Character) IsTitled() bool {
	return len(c.titles) > 0 && c.titles[0] != ""
}

// Validate checks business rules for the Character entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (c Character) Validate() error {
	fields := make(map[string]string)

	if c.id < 0 {
		fields["id"] = msgNonNegative
	}
	if strings.TrimSpace(c.name) == "" {
		fields["name"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
