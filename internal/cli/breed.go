package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/hatchery/internal/domain"
	"github.com/aalvaropc/hatchery/internal/usecase"
)

func breedCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "breed <n1> <n2>",
		Short: "Breed two records (level 5+, same category, opposite sexes)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			b, err := parseIndex(args[1])
			if err != nil {
				return err
			}

			return withSession(g, true, func(_ *workspaceCtx, s *usecase.Session) error {
				if s.Collection().Len() < 2 {
					return errors.New("il faut au moins 2 Pokémon pour la reproduction")
				}

				child, err := s.Breed(a, b)
				if domain.IsKind(err, domain.KindIneligibleBreed) {
					return fmt.Errorf("ces Pokémon ne peuvent pas se reproduire (niveau %d minimum, même type, sexes opposés): %w",
						domain.BreedingMinLevel, err)
				}
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Un nouveau Pokémon est né: %s\n", child)
				return nil
			})
		},
	}
}
