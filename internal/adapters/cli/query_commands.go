package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/realm-chronicle/internal/adapters/cli/dto"
)

func (r *runner) namesCmd() *cobra.Command {
	var byLength bool

	cmd := &cobra.Command{
		Use:   "names",
		Short: "List character names",
		Args:  exactArgs(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.run(cmd, func(ctx context.Context) (any, error) {
				list := r.deps.Queries.CharacterNames
				if byLength {
					list = r.deps.Queries.CharacterNamesByLength
				}
				names, err := list(ctx)
				if err != nil {
					return nil, err
				}
				return dto.ToNameListResponse(names), nil
			})
		},
	}

	cmd.Flags().BoolVar(&byLength, "by-length", false, "sort names by ascending length, keeping ties in store order")
	return cmd
}

func (r *runner) titledCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "titled",
		Short: "List characters holding at least one title",
		Args:  exactArgs(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.run(cmd, func(ctx context.Context) (any, error) {
				cs, err := r.deps.Queries.TitledCharacters(ctx)
				if err != nil {
					return nil, err
				}
				return dto.ToCharacterListResponse(cs), nil
			})
		},
	}
}

func (r *runner) mostTitledCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "most-titled",
		Short: "Show the character with the most titles",
		Args:  exactArgs(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.run(cmd, func(ctx context.Context) (any, error) {
				c, err := r.deps.Queries.CharacterWithMostTitles(ctx)
				if err != nil {
					return nil, err
				}
				return dto.ToCharacterResponse(c), nil
			})
		},
	}
}

func (r *runner) mottoLengthsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "motto-lengths",
		Short: "Map each house name to the length of its words",
		Args:  exactArgs(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.run(cmd, func(ctx context.Context) (any, error) {
				lengths, err := r.deps.Queries.MottoLengths(ctx)
				if err != nil {
					return nil, err
				}
				return dto.MottoLengthsResponse{MottoLengths: lengths}, nil
			})
		},
	}
}

func (r *runner) dornishLordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dornish-lords",
		Short: "List the lords of every house in Dorne",
		Args:  exactArgs(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.run(cmd, func(ctx context.Context) (any, error) {
				lords, err := r.deps.Queries.DornishLords(ctx)
				if err != nil {
					return nil, err
				}
				return dto.ToCharacterListResponse(lords), nil
			})
		},
	}
}

func (r *runner) titleShareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "title-share",
		Short: "Show each Dornish lord's percentage of all Dornish lords' titles",
		Args:  exactArgs(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.run(cmd, func(ctx context.Context) (any, error) {
				share, err := r.deps.Queries.DornishLordsTitleShare(ctx)
				if err != nil {
					return nil, err
				}
				return dto.TitleShareResponse{TitleShare: share}, nil
			})
		},
	}
}

func (r *runner) overlordedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "overlorded <house-id>",
		Short: "List houses sworn to the overlord of a house's overlord",
		Args:  exactArgs("house-id"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, func(ctx context.Context) (any, error) {
				h, err := r.lookupHouse("house-id", args[0])
				if err != nil {
					return nil, err
				}
				hs, err := r.deps.Queries.OverlordedsOverlorded(ctx, h)
				if err != nil {
					return nil, err
				}
				return dto.ToHouseListResponse(hs), nil
			})
		},
	}
}

func (r *runner) vassalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vassals <house-id>",
		Short: "List houses whose overlord is sworn to a house",
		Args:  exactArgs("house-id"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, func(ctx context.Context) (any, error) {
				h, err := r.lookupHouse("house-id", args[0])
				if err != nil {
					return nil, err
				}
				hs, err := r.deps.Queries.VassalsOfVassals(ctx, h)
				if err != nil {
					return nil, err
				}
				return dto.ToHouseListResponse(hs), nil
			})
		},
	}
}
