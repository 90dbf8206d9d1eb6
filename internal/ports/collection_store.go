package ports

import "github.com/aalvaropc/hatchery/internal/domain"

// CollectionStore persists a whole collection to a single file.
type CollectionStore interface {
	Load(path string) (domain.Collection, error)
	Save(path string, col domain.Collection) error
}

// SaveScanner reads a save file and reports the lines a Load would skip.
type SaveScanner interface {
	Scan(path string) (domain.Collection, []domain.LineIssue, error)
}
