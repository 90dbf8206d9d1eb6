package usecase

import (
	"github.com/aalvaropc/hatchery/internal/ports"
)

type ImportRoster struct {
	loader ports.RosterLoader
}

func NewImportRoster(loader ports.RosterLoader) *ImportRoster {
	return &ImportRoster{loader: loader}
}

// Execute reads the roster at path and appends its records to the session.
// The roster is validated as a whole before anything is appended.
func (uc *ImportRoster) Execute(s *Session, path string) (int, error) {
	roster, err := uc.loader.LoadRoster(path)
	if err != nil {
		return 0, err
	}
	n := s.AddRecords(roster.Records)
	s.log.Info("roster.import", "roster", roster.Name, "path", path, "records", n)
	return n, nil
}
