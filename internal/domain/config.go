package domain

// Config represents the hatchery configuration loaded from hatchery.yaml.
type Config struct {
	SaveFile string
	Paths    PathsConfig
	Training TrainingConfig
	Breeding BreedingConfig
}

type PathsConfig struct {
	ExportsDir string
}

// TrainingConfig bounds the experience a single training session may grant.
type TrainingConfig struct {
	MinXP     uint32
	MaxXP     uint32
	DefaultXP uint32
}

type BreedingConfig struct {
	// Seed for offspring draws; 0 seeds from the clock.
	Seed int64
}

// DefaultConfig provides sane defaults if hatchery.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		SaveFile: "elevage_pokemon.txt",
		Paths: PathsConfig{
			ExportsDir: "exports",
		},
		Training: TrainingConfig{
			MinXP:     10,
			MaxXP:     100,
			DefaultXP: 10,
		},
	}
}

// NormalizeXP returns xp when it lies in [MinXP, MaxXP] and DefaultXP otherwise.
// The bool reports whether xp was kept.
func (t TrainingConfig) NormalizeXP(xp int) (uint32, bool) {
	if xp < int(t.MinXP) || xp > int(t.MaxXP) {
		return t.DefaultXP, false
	}
	return uint32(xp), true
}
