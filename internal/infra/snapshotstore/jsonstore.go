package snapshotstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aalvaropc/hatchery/internal/domain"
	"github.com/aalvaropc/hatchery/internal/ports"
)

const defaultExportsDir = "exports"

// JSONStore writes snapshots as indented JSON files named
// <UTC timestamp>_<collection slug>.json under the exports dir.
type JSONStore struct {
	rootDir    string
	exportsDir string
	writeIndex bool
	now        func() time.Time
}

type Option func(*JSONStore)

// WithIndex enables a simple JSONL index: exports/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	dir := cfg.Paths.ExportsDir
	if strings.TrimSpace(dir) == "" {
		dir = defaultExportsDir
	}

	s := &JSONStore{
		rootDir:    root,
		exportsDir: dir,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.SnapshotStore = (*JSONStore)(nil)

func (s *JSONStore) SaveSnapshot(snap domain.Snapshot) (string, error) {
	dir := filepath.Join(s.rootDir, s.exportsDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "snapshotstore.mkdir",
			Kind: domain.KindIOFailure,
			Path: dir,
			Err:  err,
		}
	}

	if snap.TakenAt.IsZero() {
		snap.TakenAt = s.now()
	}
	snap.TakenAt = snap.TakenAt.UTC()

	slug := slugify(snap.Collection)
	if slug == "" {
		slug = "collection"
	}

	filename := fmt.Sprintf("%s_%s.json", snap.TakenAt.Format("20060102T150405Z"), slug)
	id := strings.TrimSuffix(filename, ".json")
	path := filepath.Join(dir, filename)

	b, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "snapshotstore.marshal",
			Kind: domain.KindIOFailure,
			Path: path,
			Err:  err,
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return "", &domain.OpError{
			Op:   "snapshotstore.write",
			Kind: domain.KindIOFailure,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "snapshotstore.rename",
			Kind: domain.KindIOFailure,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		_ = s.appendIndex(dir, id, filename, snap)
	}

	return id, nil
}

func (s *JSONStore) appendIndex(dir, id, filename string, snap domain.Snapshot) error {
	type idx struct {
		ID         string    `json:"id"`
		File       string    `json:"file"`
		Collection string    `json:"collection"`
		Count      int       `json:"count"`
		TakenAt    time.Time `json:"taken_at"`
	}
	line, err := json.Marshal(idx{
		ID:         id,
		File:       filename,
		Collection: snap.Collection,
		Count:      snap.Count,
		TakenAt:    snap.TakenAt,
	})
	if err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(dir, "index.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}

// slugify produces a safe filename component. Letters outside a-z (accents
// included) collapse into dashes.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
