package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/realm-chronicle/internal/domain"
	"github.com/jsamuelsen11/realm-chronicle/internal/domain/character"
	"github.com/jsamuelsen11/realm-chronicle/internal/domain/house"
	"github.com/jsamuelsen11/realm-chronicle/internal/ports"
)

// Compile-time check that WriteService implements ports.WriteService.
var _ ports.WriteService = (*WriteService)(nil)

// WriteService implements ports.WriteService. It validates entities, applies
// them through the exclusive [ports.WriteAccess] handle, and reads results
// back through the read view. Multi-step operations are not atomic: a step
// that fails leaves earlier steps applied.
type WriteService struct {
	write   ports.WriteAccess
	read    ports.ReadAccess
	queries *QueryService
	logger  *slog.Logger
}

// NewWriteService creates a WriteService. The read view must observe the
// same storage the write handle mutates. A nil logger discards output.
func NewWriteService(write ports.WriteAccess, read ports.ReadAccess, logger *slog.Logger) *WriteService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &WriteService{
		write:   write,
		read:    read,
		queries: NewQueryService(read, logger),
		logger:  logger,
	}
}

// AddHouse validates and stores a new house.
func (s *WriteService) AddHouse(ctx context.Context, h house.House) error {
	s.logger.InfoContext(ctx, "adding house", slog.Int64("house_id", h.ID()), slog.String("name", h.Name()))

	if err := h.Validate(); err != nil {
		return err
	}

	if err := s.write.AddHouse(h); err != nil {
		s.logger.ErrorContext(ctx, "failed to add house",
			slog.String("operation", "AddHouse"),
			slog.Int64("house_id", h.ID()),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// AddCharacter validates and stores a new character.
func (s *WriteService) AddCharacter(ctx context.Context, c character.Character) error {
	s.logger.InfoContext(ctx, "adding character", slog.Int64("character_id", c.ID()), slog.String("name", c.Name()))

	if err := c.Validate(); err != nil {
		return err
	}

	if err := s.write.AddCharacter(c); err != nil {
		s.logger.ErrorContext(ctx, "failed to add character",
			slog.String("operation", "AddCharacter"),
			slog.Int64("character_id", c.ID()),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// ChangeHouseRuler replaces h with a copy whose lord is ruler. h must equal
// the stored house, so only the lord changes; the ruler need not be stored.
func (s *WriteService) ChangeHouseRuler(ctx context.Context, h house.House, ruler character.Character) (house.House, error) {
	s.logger.InfoContext(ctx, "changing house ruler",
		slog.Int64("house_id", h.ID()),
		slog.Int64("ruler_id", ruler.ID()),
	)

	updated := h.WithNewRuler(ruler.ID())
	if err := s.write.ReplaceHouse(h, updated); err != nil {
		s.logger.ErrorContext(ctx, "failed to change house ruler",
			slog.String("operation", "ChangeHouseRuler"),
			slog.Int64("house_id", h.ID()),
			slog.Int64("ruler_id", ruler.ID()),
			slog.Any("error", err),
		)
		return house.House{}, err
	}
	return updated, nil
}

// AddHouseAndListOverlorded stores h, then returns every house sworn to
// the overlord of its overlord as seen after the insert.
func (s *WriteService) AddHouseAndListOverlorded(ctx context.Context, h house.House) ([]house.House, error) {
	if err := s.AddHouse(ctx, h); err != nil {
		return nil, fmt.Errorf("adding house: %w", err)
	}

	stored, ok := s.read.HouseByID(h.ID())
	if !ok {
		return nil, &domain.HouseNotFoundError{HouseID: h.ID()}
	}
	return s.queries.OverlordedsOverlorded(ctx, stored)
}

// AddHouseWithRuler stores h and ruler, makes ruler the lord of h, and
// returns the lord resolved from the house as stored.
func (s *WriteService) AddHouseWithRuler(ctx context.Context, h house.House, ruler character.Character) (character.Character, error) {
	if err := s.AddHouse(ctx, h); err != nil {
		return character.Character{}, fmt.Errorf("adding house: %w", err)
	}
	if err := s.AddCharacter(ctx, ruler); err != nil {
		return character.Character{}, fmt.Errorf("adding ruler: %w", err)
	}
	if _, err := s.ChangeHouseRuler(ctx, h, ruler); err != nil {
		return character.Character{}, fmt.Errorf("changing ruler: %w", err)
	}

	stored, ok := s.read.HouseByID(h.ID())
	if !ok {
		return character.Character{}, &domain.HouseNotFoundError{HouseID: h.ID()}
	}
	lord, ok := s.read.CharacterByID(stored.CurrentLord())
	if !ok {
		err := fmt.Errorf("ruler %d of house %d: %w", stored.CurrentLord(), h.ID(), domain.ErrNotFound)
		s.logger.ErrorContext(ctx, "failed to read back ruler",
			slog.String("operation", "AddHouseWithRuler"),
			slog.Int64("house_id", h.ID()),
			slog.Any("error", err),
		)
		return character.Character{}, err
	}
	return lord, nil
}
