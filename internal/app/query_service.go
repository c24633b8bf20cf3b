// Package app provides application services that orchestrate use cases by
// composing read and write access ports into query pipelines and mutations.
package app

import (
	"cmp"
	"context"
	"fmt"
	"iter"
	"log/slog"
	"slices"
	"unicode/utf8"

	"github.com/jsamuelsen11/realm-chronicle/internal/domain"
	"github.com/jsamuelsen11/realm-chronicle/internal/domain/character"
	"github.com/jsamuelsen11/realm-chronicle/internal/domain/house"
	"github.com/jsamuelsen11/realm-chronicle/internal/platform/stream"
	"github.com/jsamuelsen11/realm-chronicle/internal/ports"
)

// Compile-time check that QueryService implements ports.QueryService.
var _ ports.QueryService = (*QueryService)(nil)

// QueryService implements ports.QueryService as pure pipelines over a
// read-only [ports.ReadAccess]. It never writes and holds no state besides
// its collaborators.
type QueryService struct {
	read   ports.ReadAccess
	logger *slog.Logger
}

// NewQueryService creates a QueryService over the given read view. A nil
// logger is replaced by one that discards output.
func NewQueryService(read ports.ReadAccess, logger *slog.Logger) *QueryService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &QueryService{
		read:   read,
		logger: logger,
	}
}

// CharacterNames returns every character name in store order.
func (s *QueryService) CharacterNames(ctx context.Context) ([]string, error) {
	s.logger.InfoContext(ctx, "listing character names")

	return slices.Collect(stream.Map(s.read.Characters(), character.Character.Name)), nil
}

// CharacterNamesByLength returns every character name sorted by ascending
// length in runes. Names of equal length keep their store order.
func (s *QueryService) CharacterNamesByLength(ctx context.Context) ([]string, error) {
	s.logger.InfoContext(ctx, "listing character names by length")

	names := stream.Map(s.read.Characters(), character.Character.Name)
	return stream.SortedStableFunc(names, func(a, b string) int {
		return cmp.Compare(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	}), nil
}

// TitledCharacters returns the characters that hold at least one real
// title. A character whose only title is the empty string is excluded.
func (s *QueryService) TitledCharacters(ctx context.Context) ([]character.Character, error) {
	s.logger.InfoContext(ctx, "listing titled characters")

	return slices.Collect(stream.Filter(s.read.Characters(), character.Character.IsTitled)), nil
}

// CharacterWithMostTitles folds over all characters keeping the one with
// the greatest title count. A later character with an equal count replaces
// the current pick.
func (s *QueryService) CharacterWithMostTitles(ctx context.Context) (character.Character, error) {
	s.logger.InfoContext(ctx, "finding character with most titles")

	c, ok := s.MostTitledCharacter(ctx)
	if !ok {
		err := fmt.Errorf("finding character with most titles: no characters: %w", domain.ErrEmptyInput)
		s.logger.ErrorContext(ctx, "failed to find character with most titles",
			slog.String("operation", "CharacterWithMostTitles"),
			slog.Any("error", err),
		)
		return character.Character{}, err
	}
	return c, nil
}

// MostTitledCharacter is the optional flavour of CharacterWithMostTitles:
// it reports false instead of failing when there are no characters.
func (s *QueryService) MostTitledCharacter(_ context.Context) (character.Character, bool) {
	return stream.Reduce(s.read.Characters(), func(best, next character.Character) character.Character {
		if next.TitleCount() >= best.TitleCount() {
			return next
		}
		return best
	})
}

// MottoLengths maps each house name to the number of characters in its
// words. Houses sharing a name collapse to the last one seen.
func (s *QueryService) MottoLengths(ctx context.Context) (map[string]int, error) {
	s.logger.InfoContext(ctx, "mapping motto lengths")

	return stream.ToMap(s.read.Houses(),
		house.House.Name,
		func(h house.House) int { return utf8.RuneCountInString(h.Words()) },
	), nil
}

// DornishLords returns the current lord of every house in Dorne, one entry
// per house in store order. Lords that do not resolve are skipped.
func (s *QueryService) DornishLords(ctx context.Context) ([]character.Character, error) {
	s.logger.InfoContext(ctx, "listing dornish lords")

	return slices.Collect(s.dornishLords()), nil
}

func (s *QueryService) dornishLords() iter.Seq[character.Character] {
	dornish := stream.Filter(s.read.Houses(), func(h house.House) bool { return h.IsDornish() && h.HasLord() })
	lordIDs := stream.Map(dornish, house.House.CurrentLord)
	return stream.FilterMap(lordIDs, s.read.CharacterByID)
}

// OverlordedsOverlorded resolves h's overlord, then that house's overlord,
// and returns every house sworn to the latter. Any step that does not
// resolve yields an empty result.
func (s *QueryService) OverlordedsOverlorded(ctx context.Context, h house.House) ([]house.House, error) {
	s.logger.InfoContext(ctx, "listing houses sworn to overlord's overlord", slog.Int64("house_id", h.ID()))

	if !h.HasOverlord() {
		return []house.House{}, nil
	}
	overlord, ok := s.read.HouseByID(h.Overlord())
	if !ok || !overlord.HasOverlord() {
		return []house.House{}, nil
	}
	ancestor, ok := s.read.HouseByID(overlord.Overlord())
	if !ok {
		return []house.House{}, nil
	}
	return collectHouses(s.read.OverlordedBy(ancestor.ID())), nil
}

// VassalsOfVassals returns every house whose overlord is itself sworn to h.
func (s *QueryService) VassalsOfVassals(ctx context.Context, h house.House) ([]house.House, error) {
	s.logger.InfoContext(ctx, "listing vassals of vassals", slog.Int64("house_id", h.ID()))

	vassals := s.read.OverlordedBy(h.ID())
	return collectHouses(stream.FlatMap(vassals, func(v house.House) iter.Seq[house.House] {
		return s.read.OverlordedBy(v.ID())
	})), nil
}

// DornishLordsTitleShare maps every Dornish lord's name to the percentage
// of the Dornish lords' combined titles that lord holds. A lord ruling
// several Dornish houses is counted once, so the shares total 100.
func (s *QueryService) DornishLordsTitleShare(ctx context.Context) (map[string]float64, error) {
	s.logger.InfoContext(ctx, "computing dornish lords title share")

	lords := slices.Collect(stream.DistinctFunc(s.dornishLords(), character.Character.ID))

	var total int
	for _, l := range lords {
		total += l.TitleCount()
	}

	if err := checkShareInput(len(lords), total); err != nil {
		s.logger.ErrorContext(ctx, "failed to compute title share",
			slog.String("operation", "DornishLordsTitleShare"),
			slog.Int("lords", len(lords)),
			slog.Any("error", err),
		)
		return nil, err
	}

	// Distinct lords sharing a name pool their shares under that name.
	shares := make(map[string]float64, len(lords))
	for _, l := range lords {
		shares[l.Name()] += 100 * float64(l.TitleCount()) / float64(total)
	}
	return shares, nil
}

func checkShareInput(lords, titles int) error {
	switch {
	case lords == 0:
		return fmt.Errorf("computing title share: no dornish lords: %w", domain.ErrEmptyInput)
	case titles == 0:
		return fmt.Errorf("computing title share: dornish lords hold no titles: %w", domain.ErrEmptyInput)
	default:
		return nil
	}
}

// collectHouses drains seq into a non-nil slice.
func collectHouses(seq iter.Seq[house.House]) []house.House {
	out := slices.Collect(seq)
	if out == nil {
		return []house.House{}
	}
	return out
}
