package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidConfig   = errors.New("invalid config")
	ErrInvalidIndex    = errors.New("invalid index")
	ErrIneligibleBreed = errors.New("records cannot breed")
	ErrMalformedLine   = errors.New("malformed record line")
	ErrMissingHeader   = errors.New("missing or unreadable header")
	ErrInvalidQuery    = errors.New("invalid query")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound        ErrorKind = "not_found"
	KindInvalidConfig   ErrorKind = "invalid_config"
	KindInvalidIndex    ErrorKind = "invalid_index"
	KindIneligibleBreed ErrorKind = "ineligible_breed"
	KindMalformedLine   ErrorKind = "malformed_record_line"
	KindMissingHeader   ErrorKind = "missing_header"
	KindIOFailure       ErrorKind = "io_failure"
	KindInvalidQuery    ErrorKind = "invalid_query"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

func invalidIndex(op string, index, size int) error {
	return &OpError{
		Op:   op,
		Kind: KindInvalidIndex,
		Err:  fmt.Errorf("%w: %d (collection holds %d)", ErrInvalidIndex, index, size),
	}
}
