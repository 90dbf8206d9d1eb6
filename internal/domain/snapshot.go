package domain

import "time"

// Snapshot is a point-in-time export of a collection.
type Snapshot struct {
	Collection string         `json:"collection"`
	TakenAt    time.Time      `json:"taken_at"`
	Count      int            `json:"count"`
	Records    []SnapshotItem `json:"records"`
}

// SnapshotItem is one record with display strings for its enums and its
// 1-based position.
type SnapshotItem struct {
	Position   int    `json:"position"`
	Name       string `json:"name"`
	Level      uint32 `json:"level"`
	Category   string `json:"category"`
	Experience uint32 `json:"experience"`
	Sex        string `json:"sex"`
	CanBreed   bool   `json:"can_breed"`
}

func NewSnapshot(col Collection, at time.Time) Snapshot {
	s := Snapshot{
		Collection: col.Name,
		TakenAt:    at,
		Count:      len(col.Records),
		Records:    make([]SnapshotItem, 0, len(col.Records)),
	}
	for i, r := range col.Records {
		s.Records = append(s.Records, SnapshotItem{
			Position:   i + 1,
			Name:       r.Name,
			Level:      r.Level,
			Category:   r.Category.String(),
			Experience: r.Experience,
			Sex:        r.Sex.String(),
			CanBreed:   r.Level >= BreedingMinLevel,
		})
	}
	return s
}
