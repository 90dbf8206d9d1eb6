package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/hatchery/internal/domain"
	"github.com/aalvaropc/hatchery/internal/infra/snapshotstore"
	"github.com/aalvaropc/hatchery/internal/usecase"
	"github.com/aalvaropc/hatchery/internal/usecase/query"
)

func exportCmd(g *globalFlags) *cobra.Command {
	var index bool

	c := &cobra.Command{
		Use:   "export",
		Short: "Write a JSON snapshot of the collection under the exports dir",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(g, false, func(ws *workspaceCtx, s *usecase.Session) error {
				store := snapshotstore.NewJSONStore(ws.root, ws.cfg, snapshotstore.WithIndex(index))
				id, snap, err := usecase.NewExportSnapshot(store).Execute(s.Collection())
				if err != nil {
					return err
				}
				ws.log.Info("snapshot.export", "id", id, "records", snap.Count)
				fmt.Fprintf(cmd.OutOrStdout(), "Snapshot: %s (%d record(s))\n", id, snap.Count)
				return nil
			})
		},
	}

	c.Flags().BoolVar(&index, "index", true, "Append an entry to exports/index.jsonl")
	return c
}

func queryCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "query <jsonpath>",
		Short:   "Evaluate a JSONPath expression against the collection snapshot",
		Example: `  hatchery query '$.records[?(@.level >= 5)].name'`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(g, false, func(_ *workspaceCtx, s *usecase.Session) error {
				snap := domain.NewSnapshot(s.Collection(), time.Now().UTC())
				values, err := query.Evaluate(snap, args[0])
				if err != nil {
					return err
				}
				for _, v := range values {
					fmt.Fprintln(cmd.OutOrStdout(), v)
				}
				return nil
			})
		},
	}
}
