// Package house defines the House entity and its lord and overlord
// references.
package house

import (
	"strings"

	"github.com/jsamuelsen11/realm-chronicle/internal/domain"
)

const (
	msgRequired    = "is required"
	msgNonNegative = "must not be negative"
	msgSelfRef     = "must not reference the house itself"
)

// DornishRegion is the region substring identifying houses of Dorne.
const DornishRegion = "Dorne"

// House is an immutable house record. House values are comparable with ==.
type House struct {
	id          int64
	name        string
	region      string
	words       string
	currentLord int64
	overlord    int64
}

// New creates a House. Pass domain.NoRelation for a missing lord or
// overlord.
func New(id int64, name, region, words string, currentLord, overlord int64) House {
	return House{
		id:          id,
		name:        name,
		region:      region,
		words:       words,
		currentLord: currentLord,
		overlord:    overlord,
	}
}

// ID returns the house's unique identifier.
func (h House) ID() int64 { return h.id }

// Name returns the house's name.
func (h House) Name() string { return h.name }

// Region returns the region the house is seated in.
func (h House) Region() string { return h.region }

// Words returns the house motto.
func (h House) Words() string { return h.words }

// CurrentLord returns the lord's character ID, or domain.NoRelation.
func (h House) CurrentLord() int64 { return h.currentLord }

// Overlord returns the overlord house ID, or domain.NoRelation.
func (h House) Overlord() int64 { return h.overlord }

// HasLord reports whether the lord reference is set.
func (h House) HasLord() bool { return h.currentLord != domain.NoRelation }

// HasOverlord reports whether the overlord reference is set.
func (h House) HasOverlord() bool { return h.overlord != domain.NoRelation }

// IsDornish reports whether the region contains DornishRegion.
func (h House) IsDornish() bool { return strings.Contains(h.region, DornishRegion) }

// WithNewRuler returns a copy of the house with the lord replaced. The
// receiver is not modified.
func (h House) WithNewRuler(characterID int64) House {
	h.currentLord = characterID
	return h
}

// Validate checks business rules for the House entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (h House) Validate() error {
	fields := make(map[string]string)

	if h.id < 0 {
		fields["id"] = msgNonNegative
	}
	if strings.TrimSpace(h.name) == "" {
		fields["name"] = msgRequired
	}
	if h.overlord == h.id {
		fields["overlord"] = msgSelfRef
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
