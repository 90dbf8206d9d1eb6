package tui

import "github.com/aalvaropc/hatchery/internal/usecase"

type sessionOpenedMsg struct {
	session *usecase.Session
	// missing is set when there was no save file to load.
	missing bool
	err     error
}

type sessionSavedMsg struct {
	path string
	quit bool
	err  error
}

type initWorkspaceDoneMsg struct {
	root string
	err  error
}
