package usecase

import (
	"github.com/aalvaropc/hatchery/internal/domain"
	"github.com/aalvaropc/hatchery/internal/ports"
)

// SaveReport is the outcome of scanning a save file.
type SaveReport struct {
	Name    string
	Records int
	Issues  []domain.LineIssue
}

func (r SaveReport) OK() bool { return len(r.Issues) == 0 }

type ValidateSave struct {
	scanner ports.SaveScanner
}

func NewValidateSave(scanner ports.SaveScanner) *ValidateSave {
	return &ValidateSave{scanner: scanner}
}

// Execute reads the save file at path without modifying it and lists every
// line a regular load would drop. A missing or unreadable header is an error.
func (uc *ValidateSave) Execute(path string) (SaveReport, error) {
	col, issues, err := uc.scanner.Scan(path)
	if err != nil {
		return SaveReport{}, err
	}
	return SaveReport{Name: col.Name, Records: col.Len(), Issues: issues}, nil
}
