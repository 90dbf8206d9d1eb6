package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/hatchery/internal/infra/yamlroster"
	"github.com/aalvaropc/hatchery/internal/usecase"
)

func importCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "import <roster.yaml>",
		Short: "Append the records of a YAML roster to the collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(g, true, func(_ *workspaceCtx, s *usecase.Session) error {
				n, err := usecase.NewImportRoster(yamlroster.NewLoader()).Execute(s, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d Pokémon importé(s) depuis %s\n", n, args[0])
				return nil
			})
		},
	}
}
