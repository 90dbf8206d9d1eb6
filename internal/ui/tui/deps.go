package tui

import (
	"log/slog"

	"github.com/aalvaropc/hatchery/internal/domain"
	"github.com/aalvaropc/hatchery/internal/ports"
)

type Deps struct {
	Store    ports.CollectionStore
	SavePath string
	Chooser  domain.Chooser
	Training domain.TrainingConfig

	WorkspaceRoot        string
	WorkspaceFound       bool
	WorkspaceInitializer ports.WorkspaceInitializer

	Logger *slog.Logger
	Debug  bool
}
