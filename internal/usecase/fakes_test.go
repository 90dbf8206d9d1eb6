package usecase

import (
	"github.com/aalvaropc/hatchery/internal/domain"
)

type memStore struct {
	files   map[string]domain.Collection
	saveErr error
	saves   int
}

func newMemStore() *memStore {
	return &memStore{files: map[string]domain.Collection{}}
}

func (m *memStore) Load(path string) (domain.Collection, error) {
	col, ok := m.files[path]
	if !ok {
		return domain.Collection{}, &domain.OpError{Op: "mem.load", Kind: domain.KindIOFailure, Path: path, Err: domain.ErrNotFound}
	}
	return col.Clone(), nil
}

func (m *memStore) Save(path string, col domain.Collection) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.files[path] = col.Clone()
	return nil
}

// seqChooser returns its values in order, wrapping around.
type seqChooser struct {
	vals []int
	i    int
}

func (s *seqChooser) Intn(n int) int {
	v := s.vals[s.i%len(s.vals)] % n
	s.i++
	return v
}

type fakeScanner struct {
	col    domain.Collection
	issues []domain.LineIssue
	err    error
}

func (f fakeScanner) Scan(string) (domain.Collection, []domain.LineIssue, error) {
	return f.col, f.issues, f.err
}

type fakeSnapshotStore struct {
	got domain.Snapshot
	id  string
	err error
}

func (f *fakeSnapshotStore) SaveSnapshot(s domain.Snapshot) (string, error) {
	f.got = s
	return f.id, f.err
}

type fakeRosterLoader struct {
	roster domain.Roster
	err    error
}

func (f fakeRosterLoader) LoadRoster(string) (domain.Roster, error) {
	return f.roster, f.err
}

type fakeInitializer struct {
	spec  domain.WorkspaceSpec
	force bool
	err   error
}

func (f *fakeInitializer) Init(spec domain.WorkspaceSpec, force bool) error {
	f.spec = spec
	f.force = force
	return f.err
}
