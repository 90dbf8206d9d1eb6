package ports

import "github.com/aalvaropc/hatchery/internal/domain"

// SnapshotStore persists exported snapshots.
type SnapshotStore interface {
	SaveSnapshot(s domain.Snapshot) (id string, err error)
}
