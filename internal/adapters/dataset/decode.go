package dataset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen11/realm-chronicle/internal/domain"
	"github.com/jsamuelsen11/realm-chronicle/internal/domain/character"
	"github.com/jsamuelsen11/realm-chronicle/internal/domain/house"
	"github.com/jsamuelsen11/realm-chronicle/internal/ports"
)

// decodeStrict decodes YAML (or JSON) from r into out, rejecting unknown
// keys. An empty document leaves out untouched.
func decodeStrict(r io.Reader, out any) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}
	return nil
}

// DecodeHouse reads one house document and validates it.
func DecodeHouse(r io.Reader) (house.House, error) {
	var dto HouseDTO
	if err := decodeStrict(r, &dto); err != nil {
		return house.House{}, fmt.Errorf("decoding house: %w", err)
	}
	if err := checkStruct("", &dto); err != nil {
		return house.House{}, err
	}
	h := ToHouse(&dto)
	if err := h.Validate(); err != nil {
		return house.House{}, err
	}
	return h, nil
}

// DecodeCharacter reads one character document and validates it.
func DecodeCharacter(r io.Reader) (character.Character, error) {
	var dto CharacterDTO
	if err := decodeStrict(r, &dto); err != nil {
		return character.Character{}, fmt.Errorf("decoding character: %w", err)
	}
	if err := checkStruct("", &dto); err != nil {
		return character.Character{}, err
	}
	c := ToCharacter(&dto)
	if err := c.Validate(); err != nil {
		return character.Character{}, err
	}
	return c, nil
}

// Decode parses a whole dataset document. Every invalid record is reported
// in one *domain.ValidationError, and nothing is returned unless all records
// are valid.
func Decode(data []byte) (*ports.Dataset, error) {
	var file fileDTO
	if err := decodeStrict(bytes.NewReader(data), &file); err != nil {
		return nil, err
	}
	return translate(&file)
}

func translate(file *fileDTO) (*ports.Dataset, error) {
	fields := make(map[string]string)
	if err := checkStruct("", file); err != nil && !mergeFields(fields, "", err) {
		return nil, err
	}

	ds := &ports.Dataset{
		Characters: make([]character.Character, 0, len(file.Characters)),
		Houses:     make([]house.House, 0, len(file.Houses)),
	}

	for i := range file.Characters {
		c := ToCharacter(&file.Characters[i])
		// Tag failures already cover this record.
		if hasPrefix(fields, recordPrefix("characters", i)) {
			continue
		}
		if err := c.Validate(); err != nil {
			mergeFields(fields, recordPrefix("characters", i), err)
			continue
		}
		ds.Characters = append(ds.Characters, c)
	}

	for i := range file.Houses {
		h := ToHouse(&file.Houses[i])
		if hasPrefix(fields, recordPrefix("houses", i)) {
			continue
		}
		if err := h.Validate(); err != nil {
			mergeFields(fields, recordPrefix("houses", i), err)
			continue
		}
		ds.Houses = append(ds.Houses, h)
	}

	if err := validationOrNil(fields); err != nil {
		return nil, err
	}
	return ds, nil
}

func recordPrefix(section string, i int) string {
	return section + "[" + strconv.Itoa(i) + "]."
}

func hasPrefix(fields map[string]string, prefix string) bool {
	for k := range fields {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}
