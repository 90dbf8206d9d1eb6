package yamlroster

import (
	"fmt"
	"os"
	"strings"

	"github.com/aalvaropc/hatchery/internal/domain"
	"github.com/aalvaropc/hatchery/internal/ports"
	"gopkg.in/yaml.v3"
)

// Loader reads rosters like:
//
//	name: Starters
//	records:
//	  - name: Aqua
//	    category: Eau
//	    sex: f
//	    level: 5
//	    experience: 20
type Loader struct {
	defaultCategory domain.Category
	defaultSex      domain.Sex
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		defaultCategory: domain.CategoryNormal,
		defaultSex:      domain.SexMale,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

type Option func(*Loader)

// WithDefaults sets the category and sex used when an entry omits them.
func WithDefaults(c domain.Category, s domain.Sex) Option {
	return func(l *Loader) {
		l.defaultCategory = c
		l.defaultSex = s
	}
}

var _ ports.RosterLoader = (*Loader)(nil)

func (l *Loader) LoadRoster(path string) (domain.Roster, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Roster{}, &domain.OpError{
			Op:   "yamlroster.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var yr yamlRoster
	if err := yaml.Unmarshal(b, &yr); err != nil {
		return domain.Roster{}, &domain.OpError{
			Op:   "yamlroster.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return l.mapAndValidate(path, yr)
}

type yamlRoster struct {
	Name    string       `yaml:"name"`
	Records []yamlRecord `yaml:"records"`
}

type yamlRecord struct {
	Name       string  `yaml:"name"`
	Category   string  `yaml:"category"`
	Sex        string  `yaml:"sex"`
	Level      *uint32 `yaml:"level"`
	Experience uint32  `yaml:"experience"`
}

func (l *Loader) mapAndValidate(path string, yr yamlRoster) (domain.Roster, error) {
	if len(yr.Records) == 0 {
		return domain.Roster{}, invalidField(path, "records", "at least one record is required")
	}

	roster := domain.Roster{
		Name:    yr.Name,
		Records: make([]domain.Record, 0, len(yr.Records)),
	}

	for i, r := range yr.Records {
		fieldPrefix := fmt.Sprintf("records[%d]", i)

		if strings.TrimSpace(r.Name) == "" {
			return domain.Roster{}, invalidField(path, fieldPrefix+".name", "record name is required")
		}
		if err := domain.ValidateName(r.Name); err != nil {
			return domain.Roster{}, invalidField(path, fieldPrefix+".name", err.Error())
		}

		category := l.defaultCategory
		if strings.TrimSpace(r.Category) != "" {
			c, err := domain.ParseCategory(strings.TrimSpace(r.Category))
			if err != nil {
				return domain.Roster{}, invalidField(path, fieldPrefix+".category", err.Error())
			}
			category = c
		}

		sex := l.defaultSex
		if strings.TrimSpace(r.Sex) != "" {
			s, err := domain.ParseSex(strings.TrimSpace(r.Sex))
			if err != nil {
				return domain.Roster{}, invalidField(path, fieldPrefix+".sex", err.Error())
			}
			sex = s
		}

		level := uint32(1)
		if r.Level != nil {
			if *r.Level == 0 {
				return domain.Roster{}, invalidField(path, fieldPrefix+".level", "level must be at least 1")
			}
			level = *r.Level
		}

		roster.Records = append(roster.Records, domain.RestoreRecord(r.Name, level, category, r.Experience, sex))
	}

	return roster, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "yamlroster.validate",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s", field, msg),
	}
}
