package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/hatchery/internal/usecase"
)

func validateCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the save file and report lines a load would skip",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(g)
			if err != nil {
				return err
			}
			defer ws.Close()

			report, err := usecase.NewValidateSave(ws.store).Execute(ws.savePath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, is := range report.Issues {
				fmt.Fprintf(out, "line %d: %q: %v\n", is.Line, is.Text, is.Err)
			}
			if !report.OK() {
				return fmt.Errorf("%s: %d malformed line(s), %d record(s) readable", ws.savePath, len(report.Issues), report.Records)
			}

			fmt.Fprintf(out, "OK: %s (%d record(s))\n", report.Name, report.Records)
			return nil
		},
	}
}
