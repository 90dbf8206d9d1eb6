package usecase

import (
	"time"

	"github.com/aalvaropc/hatchery/internal/domain"
	"github.com/aalvaropc/hatchery/internal/ports"
)

type ExportSnapshot struct {
	store ports.SnapshotStore
	now   func() time.Time
}

type ExportOption func(*ExportSnapshot)

func WithExportClock(now func() time.Time) ExportOption {
	return func(uc *ExportSnapshot) {
		if now != nil {
			uc.now = now
		}
	}
}

func NewExportSnapshot(store ports.SnapshotStore, opts ...ExportOption) *ExportSnapshot {
	uc := &ExportSnapshot{store: store, now: time.Now}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute snapshots col and returns the stored id.
func (uc *ExportSnapshot) Execute(col domain.Collection) (string, domain.Snapshot, error) {
	snap := domain.NewSnapshot(col, uc.now().UTC())
	id, err := uc.store.SaveSnapshot(snap)
	if err != nil {
		return "", snap, err
	}
	return id, snap, nil
}
