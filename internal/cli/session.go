package cli

import (
	"fmt"
	"io"

	"github.com/aalvaropc/hatchery/internal/domain"
	"github.com/aalvaropc/hatchery/internal/usecase"
)

// withSession opens the save file and hands the session to fn.
// When save is true the collection is written back after fn succeeds.
func withSession(g *globalFlags, save bool, fn func(ws *workspaceCtx, s *usecase.Session) error) error {
	ws, err := loadWorkspace(g)
	if err != nil {
		return err
	}
	defer ws.Close()

	s, err := ws.openSession()
	if err != nil {
		return err
	}

	if err := fn(ws, s); err != nil {
		return err
	}
	if !save {
		return nil
	}
	return s.Save()
}

func printLevelChange(w io.Writer, c domain.LevelChange, xp uint32) {
	if c.Leveled() {
		fmt.Fprintf(w, "%s passe du niveau %d au niveau %d\n", c.Name, c.From, c.To)
		return
	}
	fmt.Fprintf(w, "%s gagne %d XP\n", c.Name, xp)
}
