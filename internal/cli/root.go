package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/hatchery/internal/infra/fsworkspace"
	"github.com/aalvaropc/hatchery/internal/ui/tui"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	cmd := &cobra.Command{
		Use:          "hatchery",
		Short:        "Hatchery, a creature breeding simulator",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(g)
			if err != nil {
				return err
			}
			defer ws.Close()

			deps := tui.Deps{
				Store:                ws.store,
				SavePath:             ws.savePath,
				Chooser:              ws.rnd,
				Training:             ws.cfg.Training,
				WorkspaceRoot:        ws.root,
				WorkspaceFound:       ws.found,
				WorkspaceInitializer: fsworkspace.NewInitializer(),
				Logger:               ws.log,
				Debug:                g.debug,
			}

			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().StringVarP(&g.workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.PersistentFlags().StringVarP(&g.file, "file", "f", "", "Save file (optional; defaults to hatchery.save_file)")
	cmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "enable verbose logging to .hatchery/logs/hatchery.log")

	cmd.AddCommand(
		initCmd(g),
		newCollectionCmd(g),
		listCmd(g),
		addCmd(g),
		trainCmd(g),
		trainAllCmd(g),
		breedCmd(g),
		sortCmd(g),
		removeCmd(g),
		validateCmd(g),
		exportCmd(g),
		importCmd(g),
		queryCmd(g),
		versionCmd(),
	)
	return cmd
}
