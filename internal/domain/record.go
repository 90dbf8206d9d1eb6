package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// ExperiencePerLevel is the experience needed to gain one level.
	ExperiencePerLevel = 100

	// BreedingMinLevel is the level both parents must have reached.
	BreedingMinLevel = 5

	fieldSeparator = "|"
	recordFields   = 5
)

// Record is one creature held by a collection.
// Experience is always kept below ExperiencePerLevel.
type Record struct {
	Name       string
	Level      uint32
	Category   Category
	Experience uint32
	Sex        Sex
}

// NewRecord returns a level 1 record with no experience.
func NewRecord(name string, category Category, sex Sex) Record {
	return Record{
		Name:     name,
		Level:    1,
		Category: category,
		Sex:      sex,
	}
}

// RestoreRecord rebuilds a record from all of its fields. Experience at or
// above ExperiencePerLevel is carried into levels and a zero level becomes 1.
func RestoreRecord(name string, level uint32, category Category, experience uint32, sex Sex) Record {
	r := Record{
		Name:     name,
		Level:    level,
		Category: category,
		Sex:      sex,
	}
	if r.Level == 0 {
		r.Level = 1
	}
	r.AccrueExperience(experience)
	return r
}

// LevelChange reports the level before and after an experience gain.
type LevelChange struct {
	Name string
	From uint32
	To   uint32
}

func (c LevelChange) Leveled() bool { return c.To > c.From }

func (c LevelChange) Gained() uint32 { return c.To - c.From }

// AccrueExperience adds xp and converts every full ExperiencePerLevel into a level.
// The level saturates at math.MaxUint32.
func (r *Record) AccrueExperience(xp uint32) LevelChange {
	before := r.Level

	total := uint64(r.Experience) + uint64(xp)
	level := uint64(r.Level) + total/ExperiencePerLevel
	if level > math.MaxUint32 {
		level = math.MaxUint32
	}
	r.Level = uint32(level)
	r.Experience = uint32(total % ExperiencePerLevel)

	return LevelChange{Name: r.Name, From: before, To: r.Level}
}

// CanBreedWith reports whether r and other may produce an offspring:
// both at BreedingMinLevel or above, same category, different sexes.
func (r Record) CanBreedWith(other Record) bool {
	return r.Category == other.Category &&
		r.Sex != other.Sex &&
		r.Level >= BreedingMinLevel &&
		other.Level >= BreedingMinLevel
}

// Serialize returns the single-line persisted form:
// name|level|category|experience|sex.
func (r Record) Serialize() string {
	return strings.Join([]string{
		r.Name,
		strconv.FormatUint(uint64(r.Level), 10),
		r.Category.String(),
		strconv.FormatUint(uint64(r.Experience), 10),
		r.Sex.String(),
	}, fieldSeparator)
}

// ParseRecord is the inverse of Serialize. Any bad field rejects the line.
func ParseRecord(line string) (Record, error) {
	parts := strings.Split(line, fieldSeparator)
	if len(parts) != recordFields {
		return Record{}, malformed(fmt.Errorf("expected %d fields, got %d", recordFields, len(parts)))
	}

	level, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return Record{}, malformed(fmt.Errorf("level %q: %w", parts[1], err))
	}

	category, err := ParseCategory(parts[2])
	if err != nil {
		return Record{}, malformed(err)
	}

	experience, err := strconv.ParseUint(parts[3], 10, 32)
	if err != nil {
		return Record{}, malformed(fmt.Errorf("experience %q: %w", parts[3], err))
	}

	sex, err := ParseSex(parts[4])
	if err != nil {
		return Record{}, malformed(err)
	}

	return RestoreRecord(parts[0], uint32(level), category, uint32(experience), sex), nil
}

// ValidateName rejects names that would not survive a save/load round trip.
func ValidateName(name string) error {
	if strings.ContainsAny(name, fieldSeparator+"\r\n") {
		return &OpError{
			Op:   "record.validate_name",
			Kind: KindInvalidConfig,
			Err:  fmt.Errorf("name %q must not contain %q or line breaks", name, fieldSeparator),
		}
	}
	return nil
}

func (r Record) String() string {
	return fmt.Sprintf("Pokémon: %s | Type: %s | Niveau: %d | XP: %d/%d | Genre: %s",
		r.Name, r.Category, r.Level, r.Experience, ExperiencePerLevel, r.Sex)
}

func malformed(err error) error {
	return &OpError{
		Op:   "record.parse",
		Kind: KindMalformedLine,
		Err:  fmt.Errorf("%w: %v", ErrMalformedLine, err),
	}
}
