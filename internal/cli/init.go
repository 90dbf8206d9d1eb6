package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/hatchery/internal/infra/fsworkspace"
	"github.com/aalvaropc/hatchery/internal/usecase"
)

func initCmd(g *globalFlags) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a hatchery workspace (hatchery.yaml, exports/, rosters/)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, _, err := resolveWorkspaceRoot(g.workspace)
			if err != nil {
				return err
			}

			uc := usecase.NewInitWorkspace(fsworkspace.NewInitializer())
			if err := uc.Execute(root, force); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Workspace initialized at %s\n", root)
			return nil
		},
	}

	c.Flags().BoolVar(&force, "force", false, "Overwrite template files that already exist")
	return c
}
