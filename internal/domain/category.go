package domain

import (
	"fmt"

	"golang.org/x/text/cases"
)

// Category is the elemental type of a record. It drives breeding
// compatibility and the category sort.
type Category int

const (
	CategoryFire Category = iota
	CategoryWater
	CategoryGrass
	CategoryElectric
	CategoryNormal
	CategoryFlying
	CategoryFighting
	CategoryPsychic
)

var categoryNames = [...]string{
	CategoryFire:     "Feu",
	CategoryWater:    "Eau",
	CategoryGrass:    "Plante",
	CategoryElectric: "Électrik",
	CategoryNormal:   "Normal",
	CategoryFlying:   "Vol",
	CategoryFighting: "Combat",
	CategoryPsychic:  "Psy",
}

// Keys are case-folded.
var categoryAliases = map[string]Category{
	"feu":      CategoryFire,
	"eau":      CategoryWater,
	"plante":   CategoryGrass,
	"electrik": CategoryElectric,
	"électrik": CategoryElectric,
	"normal":   CategoryNormal,
	"vol":      CategoryFlying,
	"combat":   CategoryFighting,
	"psy":      CategoryPsychic,
}

// Categories returns every category in menu order.
func Categories() []Category {
	out := make([]Category, len(categoryNames))
	for i := range categoryNames {
		out[i] = Category(i)
	}
	return out
}

func (c Category) Valid() bool {
	return c >= 0 && int(c) < len(categoryNames)
}

// String returns the canonical display string, which is also the persisted form.
func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// ParseCategory resolves a display string or alias, ignoring case.
func ParseCategory(s string) (Category, error) {
	if c, ok := categoryAliases[cases.Fold().String(s)]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("unknown category %q", s)
}
