// Package dto holds the CLI output documents, the problem document for
// failures, and the renderer that writes either as JSON or YAML.
package dto

import (
	"github.com/jsamuelsen11/realm-chronicle/internal/domain/character"
	"github.com/jsamuelsen11/realm-chronicle/internal/domain/house"
)

// CharacterResponse is a character in command output.
type CharacterResponse struct {
	ID         int64    `json:"id" yaml:"id"`
	Name       string   `json:"name" yaml:"name"`
	Titles     []string `json:"titles" yaml:"titles"`
	Portrayals []string `json:"portrayals" yaml:"portrayals"`
}

// CharacterListResponse is a list of characters in command output.
type CharacterListResponse struct {
	Characters []CharacterResponse `json:"characters" yaml:"characters"`
	Count      int                 `json:"count" yaml:"count"`
}

// HouseResponse is a house in command output. Missing references are -1.
type HouseResponse struct {
	ID          int64  `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Region      string `json:"region" yaml:"region"`
	Words       string `json:"words" yaml:"words"`
	CurrentLord int64  `json:"current_lord" yaml:"current_lord"`
	Overlord    int64  `json:"overlord" yaml:"overlord"`
}

// HouseListResponse is a list of houses in command output.
type HouseListResponse struct {
	Houses []HouseResponse `json:"houses" yaml:"houses"`
	Count  int             `json:"count" yaml:"count"`
}

// NameListResponse is an ordered list of character names.
type NameListResponse struct {
	Names []string `json:"names" yaml:"names"`
	Count int      `json:"count" yaml:"count"`
}

// MottoLengthsResponse maps house names to motto lengths.
type MottoLengthsResponse struct {
	MottoLengths map[string]int `json:"motto_lengths" yaml:"motto_lengths"`
}

// TitleShareResponse maps lord names to their percentage of titles.
type TitleShareResponse struct {
	TitleShare map[string]float64 `json:"title_share" yaml:"title_share"`
}

// ToCharacterResponse converts a domain Character to its output form.
func ToCharacterResponse(c character.Character) CharacterResponse {
	return CharacterResponse{
		ID:         c.ID(),
		Name:       c.Name(),
		Titles:     nonNil(c.Titles()),
		Portrayals: nonNil(c.Portrayals()),
	}
}

// ToCharacterListResponse converts characters to a list response.
func ToCharacterListResponse(cs []character.Character) CharacterListResponse {
	items := make([]CharacterResponse, len(cs))
	for i, c := range cs {
		items[i] = ToCharacterResponse(c)
	}
	return CharacterListResponse{Characters: items, Count: len(items)}
}

// ToHouseResponse converts a domain House to its output form.
func ToHouseResponse(h house.House) HouseResponse {
	return HouseResponse{
		ID:          h.ID(),
		Name:        h.Name(),
		Region:      h.Region(),
		Words:       h.Words(),
		CurrentLord: h.CurrentLord(),
		Overlord:    h.Overlord(),
	}
}

// ToHouseListResponse converts houses to a list response.
func ToHouseListResponse(hs []house.House) HouseListResponse {
	items := make([]HouseResponse, len(hs))
	for i, h := range hs {
		items[i] = ToHouseResponse(h)
	}
	return HouseListResponse{Houses: items, Count: len(items)}
}

// ToNameListResponse wraps names in a list response.
func ToNameListResponse(names []string) NameListResponse {
	names = nonNil(names)
	return NameListResponse{Names: names, Count: len(names)}
}

// nonNil keeps empty lists rendering as [] rather than null.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
