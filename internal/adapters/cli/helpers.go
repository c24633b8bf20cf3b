package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/realm-chronicle/internal/domain"
	"github.com/jsamuelsen11/realm-chronicle/internal/domain/character"
	"github.com/jsamuelsen11/realm-chronicle/internal/domain/house"
)

// stdinPath selects standard input in place of a file.
const stdinPath = "-"

func invalidArg(name, msg string) error {
	return &domain.ValidationError{Fields: map[string]string{name: msg}}
}

// exactArgs is cobra.ExactArgs reporting a validation error.
func exactArgs(names ...string) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) != len(names) {
			return fmt.Errorf("%w: expected %d argument(s) %v, got %d",
				domain.ErrValidation, len(names), names, len(args))
		}
		return nil
	}
}

// parseID parses a positional identifier argument.
func parseID(name, raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, invalidArg(name, "must be a valid integer")
	}
	return id, nil
}

// lookupHouse resolves a house ID argument against the store.
func (r *runner) lookupHouse(name, raw string) (house.House, error) {
	id, err := parseID(name, raw)
	if err != nil {
		return house.House{}, err
	}
	h, ok := r.deps.Read.HouseByID(id)
	if !ok {
		return house.House{}, &domain.HouseNotFoundError{HouseID: id}
	}
	return h, nil
}

// lookupCharacter resolves a character ID argument against the store.
func (r *runner) lookupCharacter(name, raw string) (character.Character, error) {
	id, err := parseID(name, raw)
	if err != nil {
		return character.Character{}, err
	}
	c, ok := r.deps.Read.CharacterByID(id)
	if !ok {
		return character.Character{}, fmt.Errorf("character %d: %w", id, domain.ErrNotFound)
	}
	return c, nil
}

// readInput decodes the document at path, or standard input for "-".
func readInput[T any](cmd *cobra.Command, flag, path string, decode func(io.Reader) (T, error)) (T, error) {
	var zero T

	if path == "" {
		return zero, invalidArg(flag, "is required")
	}

	var in io.Reader = cmd.InOrStdin()
	if path != stdinPath {
		f, err := os.Open(path)
		if errors.Is(err, fs.ErrNotExist) {
			return zero, fmt.Errorf("%s: %w", path, domain.ErrNotFound)
		}
		if err != nil {
			return zero, fmt.Errorf("opening %s: %w", path, err)
		}
		defer func() { _ = f.Close() }()
		in = f
	}

	v, err := decode(in)
	if err != nil {
		return zero, fmt.Errorf("reading --%s: %w", flag, err)
	}
	return v, nil
}
