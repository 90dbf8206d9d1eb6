package workspacefinder

import (
	"os"
	"path/filepath"

	"github.com/aalvaropc/hatchery/internal/domain"
	"gopkg.in/yaml.v3"
)

// ConfigFileName marks the root of a workspace.
const ConfigFileName = "hatchery.yaml"

// LoadConfig loads hatchery.yaml from the workspace root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFileName)
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	h := y.Hatchery
	if h.SaveFile != "" {
		cfg.SaveFile = h.SaveFile
	}
	if h.Paths.ExportsDir != "" {
		cfg.Paths.ExportsDir = h.Paths.ExportsDir
	}
	if h.Training.MinXP != nil {
		cfg.Training.MinXP = *h.Training.MinXP
	}
	if h.Training.MaxXP != nil {
		cfg.Training.MaxXP = *h.Training.MaxXP
	}
	if h.Training.DefaultXP != nil {
		cfg.Training.DefaultXP = *h.Training.DefaultXP
	}
	if h.Breeding.Seed != nil {
		cfg.Breeding.Seed = *h.Breeding.Seed
	}

	if cfg.Training.MinXP > cfg.Training.MaxXP {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  errTrainingBounds(cfg.Training),
		}
	}

	return cfg, nil
}

type yamlConfig struct {
	Hatchery struct {
		SaveFile string `yaml:"save_file"`

		Paths struct {
			ExportsDir string `yaml:"exports_dir"`
		} `yaml:"paths"`

		Training struct {
			MinXP     *uint32 `yaml:"min_xp"`
			MaxXP     *uint32 `yaml:"max_xp"`
			DefaultXP *uint32 `yaml:"default_xp"`
		} `yaml:"training"`

		Breeding struct {
			Seed *int64 `yaml:"seed"`
		} `yaml:"breeding"`
	} `yaml:"hatchery"`
}
