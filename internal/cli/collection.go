package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/hatchery/internal/app/template"
	"github.com/aalvaropc/hatchery/internal/domain"
	"github.com/aalvaropc/hatchery/internal/usecase"
)

func newCollectionCmd(g *globalFlags) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "new <name>",
		Short: "Start a new, empty collection in the save file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(g)
			if err != nil {
				return err
			}
			defer ws.Close()

			if fileExists(ws.savePath) && !force {
				return fmt.Errorf("save file %q already exists (use --force to replace it)", ws.savePath)
			}

			s, err := usecase.NewSession(ws.store, ws.savePath, args[0], ws.sessionOpts()...)
			if err != nil {
				return err
			}
			if err := s.Save(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Nouvel élevage %q créé dans %s\n", s.Collection().Name, ws.savePath)
			return nil
		},
	}

	c.Flags().BoolVar(&force, "force", false, "Replace an existing save file")
	return c
}

func listCmd(g *globalFlags) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "list",
		Short: "List the records of the collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(g, false, func(_ *workspaceCtx, s *usecase.Session) error {
				col := s.Collection()
				out := cmd.OutOrStdout()

				fmt.Fprintf(out, "Liste des Pokémon de l'élevage %s (%d)\n", col.Name, col.Len())
				if col.Len() == 0 {
					fmt.Fprintln(out, "Aucun Pokémon dans l'élevage.")
					return nil
				}

				lines, err := template.RenderRecords(format, col.Records)
				if err != nil {
					return err
				}
				for _, l := range lines {
					fmt.Fprintln(out, l)
				}
				return nil
			})
		},
	}

	c.Flags().StringVarP(&format, "template", "t", template.DefaultRecordFormat,
		"Line format; placeholders: {{index}} {{name}} {{level}} {{category}} {{experience}} {{sex}} {{record}}")
	return c
}

func addCmd(g *globalFlags) *cobra.Command {
	var category string
	var sex string

	c := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a level 1 record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := domain.ParseCategory(category)
			if err != nil {
				return err
			}
			sx, err := domain.ParseSex(sex)
			if err != nil {
				return err
			}

			return withSession(g, true, func(_ *workspaceCtx, s *usecase.Session) error {
				idx, err := s.Add(args[0], cat, sx)
				if err != nil {
					return err
				}
				r := s.Collection().Records[idx]
				fmt.Fprintf(cmd.OutOrStdout(), "#%d ajouté: %s\n", idx+1, r)
				return nil
			})
		},
	}

	c.Flags().StringVarP(&category, "category", "c", "", "Category: Feu, Eau, Plante, Électrik, Normal, Vol, Combat, Psy")
	c.Flags().StringVarP(&sex, "sex", "s", "", "Sex: m|mâle|male or f|femelle")
	_ = c.MarkFlagRequired("category")
	_ = c.MarkFlagRequired("sex")
	return c
}

func removeCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <n>",
		Short: "Remove the record at position n (1-based)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			return withSession(g, true, func(_ *workspaceCtx, s *usecase.Session) error {
				removed, err := s.Remove(idx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s a été retiré de l'élevage\n", removed.Name)
				return nil
			})
		},
	}
}

func sortCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:       "sort level|category",
		Short:     "Sort the collection by level (descending) or by category",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"level", "category"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(g, true, func(_ *workspaceCtx, s *usecase.Session) error {
				switch args[0] {
				case "level":
					s.SortByLevel()
					fmt.Fprintln(cmd.OutOrStdout(), "Élevage trié par niveau")
				default:
					s.SortByCategory()
					fmt.Fprintln(cmd.OutOrStdout(), "Élevage trié par type")
				}
				return nil
			})
		},
	}
}
