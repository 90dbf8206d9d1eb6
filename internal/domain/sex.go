package domain

import (
	"fmt"

	"golang.org/x/text/cases"
)

type Sex int

const (
	SexMale Sex = iota
	SexFemale
)

var sexNames = [...]string{
	SexMale:   "Mâle",
	SexFemale: "Femelle",
}

// Keys are case-folded.
var sexAliases = map[string]Sex{
	"male":    SexMale,
	"mâle":    SexMale,
	"m":       SexMale,
	"femelle": SexFemale,
	"f":       SexFemale,
}

// Sexes returns both sexes in menu order.
func Sexes() []Sex {
	return []Sex{SexMale, SexFemale}
}

func (s Sex) Valid() bool {
	return s == SexMale || s == SexFemale
}

func (s Sex) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Sex(%d)", int(s))
	}
	return sexNames[s]
}

// ParseSex resolves a display string or one of its aliases, ignoring case.
func ParseSex(s string) (Sex, error) {
	if v, ok := sexAliases[cases.Fold().String(s)]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("unknown sex %q", s)
}
