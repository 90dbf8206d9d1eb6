package ports

import "github.com/aalvaropc/hatchery/internal/domain"

// RosterLoader reads a batch of records to import (e.g., from a YAML file).
type RosterLoader interface {
	LoadRoster(path string) (domain.Roster, error)
}
