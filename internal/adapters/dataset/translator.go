package dataset

import (
	"github.com/jsamuelsen11/realm-chronicle/internal/domain"
	"github.com/jsamuelsen11/realm-chronicle/internal/domain/character"
	"github.com/jsamuelsen11/realm-chronicle/internal/domain/house"
)

// ToCharacter converts a validated DTO to a domain Character.
func ToCharacter(dto *CharacterDTO) character.Character {
	return character.New(deref(dto.ID, 0), dto.Name, dto.Titles, dto.Portrayals)
}

// ToHouse converts a validated DTO to a domain House.
func ToHouse(dto *HouseDTO) house.House {
	return house.New(
		deref(dto.ID, 0),
		dto.Name,
		dto.Region,
		dto.Words,
		deref(dto.CurrentLord, domain.NoRelation),
		deref(dto.Overlord, domain.NoRelation),
	)
}

// FromCharacter converts a domain Character to its wire form.
func FromCharacter(c character.Character) CharacterDTO {
	id := c.ID()
	return CharacterDTO{
		ID:         &id,
		Name:       c.Name(),
		Titles:     c.Titles(),
		Portrayals: c.Portrayals(),
	}
}

// FromHouse converts a domain House to its wire form.
func FromHouse(h house.House) HouseDTO {
	id, lord, overlord := h.ID(), h.CurrentLord(), h.Overlord()
	return HouseDTO{
		ID:          &id,
		Name:        h.Name(),
		Region:      h.Region(),
		Words:       h.Words(),
		CurrentLord: &lord,
		Overlord:    &overlord,
	}
}

func deref(p *int64, fallback int64) int64 {
	if p == nil {
		return fallback
	}
	return *p
}
