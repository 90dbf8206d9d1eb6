package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aalvaropc/hatchery/internal/domain"
	"github.com/aalvaropc/hatchery/internal/infra/flatfile"
	"github.com/aalvaropc/hatchery/internal/infra/logger"
	"github.com/aalvaropc/hatchery/internal/infra/rng"
	"github.com/aalvaropc/hatchery/internal/infra/workspacefinder"
	"github.com/aalvaropc/hatchery/internal/usecase"
)

// globalFlags are bound to the root command's persistent flags.
type globalFlags struct {
	workspace string
	file      string
	debug     bool
}

type workspaceCtx struct {
	root  string
	found bool
	cfg   domain.Config

	savePath string
	store    *flatfile.Store
	rnd      domain.Chooser
	log      *slog.Logger

	closeLog func() error
}

func loadWorkspace(g *globalFlags) (*workspaceCtx, error) {
	root, found, err := resolveWorkspaceRoot(g.workspace)
	if err != nil {
		return nil, err
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil && !domain.IsKind(err, domain.KindNotFound) {
		return nil, err
	}
	if err != nil {
		cfg = domain.DefaultConfig()
	}

	cfg, err = workspacefinder.ApplyEnv(root, cfg)
	if err != nil {
		return nil, err
	}

	cleanup, lerr := logger.Setup(logger.Config{Root: root, Debug: g.debug})
	if lerr != nil {
		cleanup = nil
	}
	log := logger.L()

	rnd, seed := rng.New(cfg.Breeding.Seed)
	log.Debug("workspace.loaded", "root", root, "found", found, "save_file", cfg.SaveFile, "seed", seed)

	return &workspaceCtx{
		root:     root,
		found:    found,
		cfg:      cfg,
		savePath: resolveSavePath(root, g.file, cfg.SaveFile),
		store:    flatfile.NewStore(flatfile.WithLogger(log)),
		rnd:      rnd,
		log:      log,
		closeLog: cleanup,
	}, nil
}

func (ws *workspaceCtx) Close() {
	if ws.closeLog != nil {
		_ = ws.closeLog()
	}
}

func (ws *workspaceCtx) openSession() (*usecase.Session, error) {
	s, err := usecase.OpenSession(ws.store, ws.savePath, ws.sessionOpts()...)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("no save file at %q (tip: run `hatchery new <name>`): %w", ws.savePath, err)
		}
		return nil, err
	}
	return s, nil
}

func (ws *workspaceCtx) sessionOpts() []usecase.SessionOption {
	return []usecase.SessionOption{
		usecase.WithSessionLogger(ws.log),
		usecase.WithChooser(ws.rnd),
	}
}

// resolveWorkspaceRoot uses the flag when set, otherwise the nearest
// hatchery.yaml above the working directory, otherwise the working directory.
func resolveWorkspaceRoot(workspaceFlag string) (string, bool, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", false, fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, fileExists(filepath.Join(abs, workspacefinder.ConfigFileName)), nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", false, fmt.Errorf("get working directory: %w", err)
	}
	return workspacefinder.NewFinder().Resolve(wd)
}

// resolveSavePath picks --file over the configured save file. Relative
// paths are taken from the workspace root.
func resolveSavePath(root, fileFlag, configured string) string {
	p := strings.TrimSpace(fileFlag)
	if p == "" {
		p = configured
	}
	if !filepath.IsAbs(p) {
		p = filepath.Join(root, p)
	}
	return filepath.Clean(p)
}

// parseIndex turns a 1-based position typed by the user into a 0-based index.
func parseIndex(arg string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, &domain.OpError{Op: "cli.index", Kind: domain.KindInvalidIndex, Err: fmt.Errorf("%w: %q is not a number", domain.ErrInvalidIndex, arg)}
	}
	if n < 1 {
		return 0, &domain.OpError{Op: "cli.index", Kind: domain.KindInvalidIndex, Err: fmt.Errorf("%w: positions start at 1, got %d", domain.ErrInvalidIndex, n)}
	}
	return n - 1, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
