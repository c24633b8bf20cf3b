package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/realm-chronicle/internal/adapters/cli/dto"
	"github.com/jsamuelsen11/realm-chronicle/internal/adapters/dataset"
)

func (r *runner) addHouseCmd() *cobra.Command {
	var (
		file           string
		listOverlorded bool
	)

	cmd := &cobra.Command{
		Use:   "add-house",
		Short: "Add a house read from a YAML or JSON document",
		Args:  exactArgs(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.run(cmd, func(ctx context.Context) (any, error) {
				h, err := readInput(cmd, "file", file, dataset.DecodeHouse)
				if err != nil {
					return nil, err
				}

				if listOverlorded {
					hs, err := r.deps.Writes.AddHouseAndListOverlorded(ctx, h)
					if err != nil {
						return nil, err
					}
					return dto.ToHouseListResponse(hs), nil
				}

				if err := r.deps.Writes.AddHouse(ctx, h); err != nil {
					return nil, err
				}
				return dto.ToHouseResponse(h), nil
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", `house document path, or "-" for stdin`)
	cmd.Flags().BoolVar(&listOverlorded, "list-overlorded", false,
		"after adding, list houses sworn to the overlord of the new house's overlord")
	return cmd
}

func (r *runner) addCharacterCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "add-character",
		Short: "Add a character read from a YAML or JSON document",
		Args:  exactArgs(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.run(cmd, func(ctx context.Context) (any, error) {
				c, err := readInput(cmd, "file", file, dataset.DecodeCharacter)
				if err != nil {
					return nil, err
				}
				if err := r.deps.Writes.AddCharacter(ctx, c); err != nil {
					return nil, err
				}
				return dto.ToCharacterResponse(c), nil
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", `character document path, or "-" for stdin`)
	return cmd
}

func (r *runner) changeRulerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "change-ruler <house-id> <character-id>",
		Short: "Make a stored character the current lord of a house",
		Args:  exactArgs("house-id", "character-id"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, func(ctx context.Context) (any, error) {
				h, err := r.lookupHouse("house-id", args[0])
				if err != nil {
					return nil, err
				}
				ruler, err := r.lookupCharacter("character-id", args[1])
				if err != nil {
					return nil, err
				}
				updated, err := r.deps.Writes.ChangeHouseRuler(ctx, h, ruler)
				if err != nil {
					return nil, err
				}
				return dto.ToHouseResponse(updated), nil
			})
		},
	}
}

func (r *runner) crownCmd() *cobra.Command {
	var houseFile, rulerFile string

	cmd := &cobra.Command{
		Use:   "crown",
		Short: "Add a house and its ruler, then print the ruler as stored",
		Args:  exactArgs(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.run(cmd, func(ctx context.Context) (any, error) {
				if houseFile == stdinPath && rulerFile == stdinPath {
					return nil, invalidArg("ruler-file", "only one input may be read from stdin")
				}
				h, err := readInput(cmd, "house-file", houseFile, dataset.DecodeHouse)
				if err != nil {
					return nil, err
				}
				ruler, err := readInput(cmd, "ruler-file", rulerFile, dataset.DecodeCharacter)
				if err != nil {
					return nil, err
				}
				lord, err := r.deps.Writes.AddHouseWithRuler(ctx, h, ruler)
				if err != nil {
					return nil, err
				}
				return dto.ToCharacterResponse(lord), nil
			})
		},
	}

	cmd.Flags().StringVar(&houseFile, "house-file", "", `house document path, or "-" for stdin`)
	cmd.Flags().StringVar(&rulerFile, "ruler-file", "", `ruler document path, or "-" for stdin`)
	return cmd
}
