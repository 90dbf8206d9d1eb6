package tui

import (
	"errors"
	"io/fs"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/hatchery/internal/domain"
	"github.com/aalvaropc/hatchery/internal/usecase"
)

func sessionOpts(deps Deps) []usecase.SessionOption {
	return []usecase.SessionOption{
		usecase.WithSessionLogger(deps.Logger),
		usecase.WithChooser(deps.Chooser),
	}
}

func cmdOpenSession(deps Deps) tea.Cmd {
	return func() tea.Msg {
		if _, err := os.Stat(deps.SavePath); errors.Is(err, fs.ErrNotExist) {
			return sessionOpenedMsg{missing: true}
		}
		s, err := usecase.OpenSession(deps.Store, deps.SavePath, sessionOpts(deps)...)
		return sessionOpenedMsg{session: s, err: err}
	}
}

func cmdSave(s *usecase.Session, quit bool) tea.Cmd {
	return func() tea.Msg {
		err := s.Save()
		return sessionSavedMsg{path: s.Path(), quit: quit, err: err}
	}
}

func cmdInitWorkspaceHere(deps Deps, root string) tea.Cmd {
	return func() tea.Msg {
		if deps.WorkspaceInitializer == nil {
			return initWorkspaceDoneMsg{root: root, err: errors.New("WorkspaceInitializer is nil")}
		}

		err := deps.WorkspaceInitializer.Init(domain.WorkspaceSpec{Root: root}, false)
		return initWorkspaceDoneMsg{root: root, err: err}
	}
}
