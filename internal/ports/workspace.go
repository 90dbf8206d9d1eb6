package ports

import "github.com/aalvaropc/hatchery/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
