package flatfile

import (
	"bufio"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aalvaropc/hatchery/internal/domain"
	"github.com/aalvaropc/hatchery/internal/ports"
)

// Store reads and writes the line-oriented save file:
//
//	<collection name>
//	<name>|<level>|<category>|<experience>|<sex>
//	...
type Store struct {
	log  *slog.Logger
	perm os.FileMode
}

type Option func(*Store)

// WithLogger receives one debug entry per skipped line.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

func WithFileMode(perm os.FileMode) Option {
	return func(s *Store) { s.perm = perm }
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		log:  slog.New(slog.NewJSONHandler(io.Discard, nil)),
		perm: 0o644,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var (
	_ ports.CollectionStore = (*Store)(nil)
	_ ports.SaveScanner     = (*Store)(nil)
)

// Save truncates path and writes the header followed by one line per record.
func (s *Store) Save(path string, col domain.Collection) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, s.perm)
	if err != nil {
		return ioFailure("flatfile.save", path, err)
	}

	w := bufio.NewWriter(f)
	w.WriteString(col.Name)
	w.WriteByte('\n')
	for _, r := range col.Records {
		w.WriteString(r.Serialize())
		w.WriteByte('\n')
	}

	// bufio.Writer keeps the first write error; Flush reports it.
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return ioFailure("flatfile.save", path, err)
	}
	if err := f.Close(); err != nil {
		return ioFailure("flatfile.save", path, err)
	}
	return nil
}

// Load reads a save file. Lines that do not parse are skipped.
func (s *Store) Load(path string) (domain.Collection, error) {
	col, issues, err := s.Scan(path)
	if err != nil {
		return domain.Collection{}, err
	}
	for _, is := range issues {
		s.log.Debug("load.line_skipped", "path", path, "line", is.Line, "err", is.Err)
	}
	return col, nil
}

// Scan is Load plus the list of skipped lines.
func (s *Store) Scan(path string) (domain.Collection, []domain.LineIssue, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Collection{}, nil, ioFailure("flatfile.load", path, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)

	header, err := readLine(r)
	if err != nil {
		cause := domain.ErrMissingHeader
		if !errors.Is(err, io.EOF) {
			cause = errors.Join(domain.ErrMissingHeader, err)
		}
		return domain.Collection{}, nil, &domain.OpError{
			Op:   "flatfile.load",
			Kind: domain.KindMissingHeader,
			Path: path,
			Err:  cause,
		}
	}

	col := domain.NewCollection(header)
	var issues []domain.LineIssue

	for n := 2; ; n++ {
		line, err := readLine(r)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return domain.Collection{}, nil, ioFailure("flatfile.load", path, err)
		}

		rec, perr := domain.ParseRecord(line)
		if perr != nil {
			issues = append(issues, domain.LineIssue{Line: n, Text: line, Err: perr})
			continue
		}
		col.Add(rec)
	}

	return *col, issues, nil
}

// readLine returns the next line without its terminator. io.EOF is returned
// only when nothing at all is left to read.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

func ioFailure(op, path string, err error) error {
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindIOFailure,
		Path: path,
		Err:  err,
	}
}
