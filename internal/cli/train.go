package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/hatchery/internal/domain"
	"github.com/aalvaropc/hatchery/internal/usecase"
)

func trainCmd(g *globalFlags) *cobra.Command {
	var xp int

	c := &cobra.Command{
		Use:   "train <n>",
		Short: "Give experience to the record at position n (1-based)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			return withSession(g, true, func(ws *workspaceCtx, s *usecase.Session) error {
				amount := resolveXP(cmd, ws.cfg.Training, xp)
				change, err := s.Train(idx, amount)
				if err != nil {
					return err
				}
				printLevelChange(cmd.OutOrStdout(), change, amount)
				return nil
			})
		},
	}

	c.Flags().IntVar(&xp, "xp", 0, "Experience to give (outside [min_xp, max_xp] falls back to default_xp)")
	return c
}

func trainAllCmd(g *globalFlags) *cobra.Command {
	var xp int

	c := &cobra.Command{
		Use:   "train-all",
		Short: "Give experience to every record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(g, true, func(ws *workspaceCtx, s *usecase.Session) error {
				amount := resolveXP(cmd, ws.cfg.Training, xp)
				changes := s.TrainAll(amount)
				out := cmd.OutOrStdout()
				if len(changes) == 0 {
					fmt.Fprintln(out, "Aucun Pokémon dans l'élevage.")
					return nil
				}
				for _, ch := range changes {
					printLevelChange(out, ch, amount)
				}
				return nil
			})
		},
	}

	c.Flags().IntVar(&xp, "xp", 0, "Experience to give (outside [min_xp, max_xp] falls back to default_xp)")
	return c
}

// resolveXP applies the configured bounds to --xp. Without the flag the
// default amount is used silently.
func resolveXP(cmd *cobra.Command, t domain.TrainingConfig, xp int) uint32 {
	if !cmd.Flags().Changed("xp") {
		return t.DefaultXP
	}
	amount, ok := t.NormalizeXP(xp)
	if !ok {
		warnXP(cmd.ErrOrStderr(), t, xp)
	}
	return amount
}

func warnXP(w io.Writer, t domain.TrainingConfig, xp int) {
	fmt.Fprintf(w, "%d XP hors de [%d, %d], %d XP utilisés\n", xp, t.MinXP, t.MaxXP, t.DefaultXP)
}
