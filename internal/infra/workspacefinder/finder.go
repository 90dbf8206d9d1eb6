package workspacefinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/aalvaropc/hatchery/internal/domain"
	"github.com/aalvaropc/hatchery/internal/ports"
)

// Finder locates a hatchery workspace root by searching for hatchery.yaml upward.
type Finder struct {
	ConfigFile string // defaults to ConfigFileName
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: ConfigFileName}
}

var _ ports.WorkspaceLocator = (*Finder)(nil)

func (f *Finder) FindRoot(startDir string) (string, error) {
	const op = "workspacefinder.findroot"

	if startDir == "" {
		return "", &domain.OpError{
			Op:   op,
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{Op: op, Kind: domain.KindIOFailure, Err: err}
	}

	// If user passes a file path, use its directory.
	if info, statErr := os.Stat(abs); statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	for cur := filepath.Clean(abs); ; {
		if _, err := os.Stat(filepath.Join(cur, f.ConfigFile)); err == nil {
			return cur, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &domain.OpError{Op: op, Kind: domain.KindNotFound, Err: domain.ErrNotFound}
		}
		cur = parent
	}
}

// Resolve is FindRoot with a fallback: outside any workspace the start
// directory itself is used and found is false.
func (f *Finder) Resolve(startDir string) (root string, found bool, err error) {
	root, err = f.FindRoot(startDir)
	if err == nil {
		return root, true, nil
	}
	if !domain.IsKind(err, domain.KindNotFound) {
		return "", false, err
	}

	abs, absErr := filepath.Abs(startDir)
	if absErr != nil {
		return "", false, &domain.OpError{Op: "workspacefinder.resolve", Kind: domain.KindIOFailure, Err: absErr}
	}
	return abs, false, nil
}
