package usecase

import (
	"errors"
	"io"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/aalvaropc/hatchery/internal/domain"
	"github.com/aalvaropc/hatchery/internal/ports"
)

var errEmptyName = errors.New("name is required")

// Session owns the in-memory collection between a load and a save.
// It is not safe for concurrent use.
type Session struct {
	store ports.CollectionStore
	path  string
	col   *domain.Collection
	rnd   domain.Chooser
	log   *slog.Logger
	dirty bool
}

type SessionOption func(*Session)

func WithSessionLogger(l *slog.Logger) SessionOption {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

func WithChooser(c domain.Chooser) SessionOption {
	return func(s *Session) {
		if c != nil {
			s.rnd = c
		}
	}
}

// NewSession starts an empty collection named name, bound to path.
func NewSession(store ports.CollectionStore, path, name string, opts ...SessionOption) (*Session, error) {
	name = strings.TrimSpace(name)
	if err := checkName("session.new", name); err != nil {
		return nil, err
	}
	s := newSession(store, path, domain.NewCollection(name), opts)
	s.dirty = true
	s.log.Info("collection.new", "name", name, "path", path)
	return s, nil
}

// OpenSession loads the collection stored at path.
func OpenSession(store ports.CollectionStore, path string, opts ...SessionOption) (*Session, error) {
	col, err := store.Load(path)
	if err != nil {
		return nil, err
	}
	s := newSession(store, path, &col, opts)
	s.log.Info("collection.load", "name", col.Name, "path", path, "records", col.Len())
	return s, nil
}

func newSession(store ports.CollectionStore, path string, col *domain.Collection, opts []SessionOption) *Session {
	s := &Session{
		store: store,
		path:  path,
		col:   col,
		log:   slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rnd == nil {
		s.rnd = defaultChooser()
	}
	return s
}

func (s *Session) Path() string { return s.path }

// Dirty reports whether the collection changed since it was loaded or saved.
func (s *Session) Dirty() bool { return s.dirty }

// Collection returns a copy of the current collection.
func (s *Session) Collection() domain.Collection { return s.col.Clone() }

// Add appends a new level-1 record and returns its 0-based index.
func (s *Session) Add(name string, category domain.Category, sex domain.Sex) (int, error) {
	name = strings.TrimSpace(name)
	if err := checkName("session.add", name); err != nil {
		return 0, err
	}
	idx := s.col.Add(domain.NewRecord(name, category, sex))
	s.dirty = true
	s.log.Info("record.add", "name", name, "category", category.String(), "sex", sex.String(), "index", idx)
	return idx, nil
}

// AddRecords appends already-built records, as read from a roster.
func (s *Session) AddRecords(records []domain.Record) int {
	for _, r := range records {
		s.col.Add(r)
	}
	if len(records) > 0 {
		s.dirty = true
	}
	return len(records)
}

func (s *Session) Train(index int, xp uint32) (domain.LevelChange, error) {
	change, err := s.col.TrainOne(index, xp)
	if err != nil {
		s.log.Debug("train.rejected", "index", index, "err", err)
		return change, err
	}
	s.dirty = true
	s.logLevel("train.ok", change, xp)
	return change, nil
}

func (s *Session) TrainAll(xp uint32) []domain.LevelChange {
	changes := s.col.TrainAll(xp)
	if len(changes) > 0 {
		s.dirty = true
	}
	for _, c := range changes {
		s.logLevel("train.ok", c, xp)
	}
	return changes
}

func (s *Session) Breed(a, b int) (domain.Record, error) {
	child, err := s.col.AttemptBreed(a, b, s.rnd)
	if err != nil {
		s.log.Info("breed.rejected", "a", a, "b", b, "err", err)
		return domain.Record{}, err
	}
	s.dirty = true
	s.log.Info("breed.ok", "a", a, "b", b, "child", child.Name, "sex", child.Sex.String())
	return child, nil
}

func (s *Session) SortByLevel() {
	s.col.SortByLevelDescending()
	s.dirty = true
	s.log.Info("collection.sort", "by", "level")
}

func (s *Session) SortByCategory() {
	s.col.SortByCategory()
	s.dirty = true
	s.log.Info("collection.sort", "by", "category")
}

func (s *Session) Remove(index int) (domain.Record, error) {
	removed, err := s.col.Remove(index)
	if err != nil {
		return removed, err
	}
	s.dirty = true
	s.log.Info("record.remove", "name", removed.Name, "index", index)
	return removed, nil
}

// Save writes the collection to the session path.
func (s *Session) Save() error {
	if err := s.store.Save(s.path, s.col.Clone()); err != nil {
		s.log.Error("collection.save_failed", "path", s.path, "err", err)
		return err
	}
	s.dirty = false
	s.log.Info("collection.save", "name", s.col.Name, "path", s.path, "records", s.col.Len())
	return nil
}

func (s *Session) logLevel(event string, c domain.LevelChange, xp uint32) {
	if c.Leveled() {
		s.log.Info(event, "name", c.Name, "xp", xp, "from", c.From, "to", c.To)
		return
	}
	s.log.Debug(event, "name", c.Name, "xp", xp)
}

// checkName expects an already trimmed name.
func checkName(op, name string) error {
	if name == "" {
		return &domain.OpError{Op: op, Kind: domain.KindInvalidConfig, Err: errEmptyName}
	}
	return domain.ValidateName(name)
}

func defaultChooser() domain.Chooser {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
