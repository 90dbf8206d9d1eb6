package workspacefinder

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/aalvaropc/hatchery/internal/domain"
)

// EnvPrefix namespaces the environment overrides (HATCHERY_SAVE_FILE, ...).
const EnvPrefix = "HATCHERY_"

type envOverrides struct {
	SaveFile   string `env:"SAVE_FILE"`
	ExportsDir string `env:"EXPORTS_DIR"`
	Seed       int64  `env:"SEED"`
}

// ApplyEnv loads <root>/.env when present (variables already set win) and
// then applies HATCHERY_* variables on top of cfg.
func ApplyEnv(root string, cfg domain.Config) (domain.Config, error) {
	dotenv := filepath.Join(root, ".env")
	if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.dotenv",
			Kind: domain.KindInvalidConfig,
			Path: dotenv,
			Err:  err,
		}
	}

	o := envOverrides{
		SaveFile:   cfg.SaveFile,
		ExportsDir: cfg.Paths.ExportsDir,
		Seed:       cfg.Breeding.Seed,
	}
	if err := env.ParseWithOptions(&o, env.Options{Prefix: EnvPrefix}); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.env",
			Kind: domain.KindInvalidConfig,
			Err:  err,
		}
	}

	cfg.SaveFile = o.SaveFile
	cfg.Paths.ExportsDir = o.ExportsDir
	cfg.Breeding.Seed = o.Seed
	return cfg, nil
}

func errTrainingBounds(t domain.TrainingConfig) error {
	return fmt.Errorf("training.min_xp (%d) is greater than training.max_xp (%d)", t.MinXP, t.MaxXP)
}
