package domain

import (
	"cmp"
	"slices"
)

// OffspringPrefixes are the name prefixes an offspring can be given.
var OffspringPrefixes = []string{"Mystère", "Junior", "Petit", "Mini", "Pousse"}

// Chooser picks a uniform value in [0, n). *math/rand.Rand satisfies it.
type Chooser interface {
	Intn(n int) int
}

// Collection is a named, ordered set of records owned by one session.
// Indices are 0-based; order is insertion order until a sort is applied.
type Collection struct {
	Name    string
	Records []Record
}

func NewCollection(name string) *Collection {
	return &Collection{Name: name, Records: []Record{}}
}

func (c Collection) Len() int { return len(c.Records) }

// Clone returns a deep copy safe to hand out to callers.
func (c Collection) Clone() Collection {
	out := Collection{Name: c.Name, Records: make([]Record, len(c.Records))}
	copy(out.Records, c.Records)
	return out
}

// Get returns a copy of the record at index.
func (c *Collection) Get(index int) (Record, error) {
	if !c.inBounds(index) {
		return Record{}, invalidIndex("collection.get", index, len(c.Records))
	}
	return c.Records[index], nil
}

// Add appends r and returns its index.
func (c *Collection) Add(r Record) int {
	c.Records = append(c.Records, r)
	return len(c.Records) - 1
}

// TrainOne gives xp to the record at index.
func (c *Collection) TrainOne(index int, xp uint32) (LevelChange, error) {
	if !c.inBounds(index) {
		return LevelChange{}, invalidIndex("collection.train", index, len(c.Records))
	}
	return c.Records[index].AccrueExperience(xp), nil
}

// TrainAll gives xp to every record and returns one change per record, in order.
func (c *Collection) TrainAll(xp uint32) []LevelChange {
	out := make([]LevelChange, 0, len(c.Records))
	for i := range c.Records {
		out = append(out, c.Records[i].AccrueExperience(xp))
	}
	return out
}

// AttemptBreed breeds the records at a and b and appends the offspring.
// The offspring takes a's category and a name built from a's; its sex and
// name prefix are drawn from rnd. Nothing changes when an error is returned.
func (c *Collection) AttemptBreed(a, b int, rnd Chooser) (Record, error) {
	const op = "collection.breed"

	if !c.inBounds(a) {
		return Record{}, invalidIndex(op, a, len(c.Records))
	}
	if !c.inBounds(b) {
		return Record{}, invalidIndex(op, b, len(c.Records))
	}
	if a == b {
		return Record{}, &OpError{Op: op, Kind: KindInvalidIndex, Err: ErrInvalidIndex}
	}

	first, second := c.Records[a], c.Records[b]
	if !first.CanBreedWith(second) {
		return Record{}, &OpError{Op: op, Kind: KindIneligibleBreed, Err: ErrIneligibleBreed}
	}

	sexes := Sexes()
	sex := sexes[rnd.Intn(len(sexes))]
	prefix := OffspringPrefixes[rnd.Intn(len(OffspringPrefixes))]

	child := NewRecord(prefix+" "+nameStem(first.Name), first.Category, sex)
	c.Records = append(c.Records, child)
	return child, nil
}

// SortByLevelDescending orders records from highest to lowest level.
// Records of equal level keep their relative order.
func (c *Collection) SortByLevelDescending() {
	slices.SortStableFunc(c.Records, func(x, y Record) int {
		return cmp.Compare(y.Level, x.Level)
	})
}

// SortByCategory orders records by category display string, ascending.
func (c *Collection) SortByCategory() {
	slices.SortStableFunc(c.Records, func(x, y Record) int {
		return cmp.Compare(x.Category.String(), y.Category.String())
	})
}

// Remove deletes the record at index; later records shift down by one.
func (c *Collection) Remove(index int) (Record, error) {
	if !c.inBounds(index) {
		return Record{}, invalidIndex("collection.remove", index, len(c.Records))
	}
	removed := c.Records[index]
	c.Records = slices.Delete(c.Records, index, index+1)
	return removed, nil
}

func (c *Collection) inBounds(index int) bool {
	return index >= 0 && index < len(c.Records)
}

// nameStem is the first two characters of name, or all of it when shorter.
func nameStem(name string) string {
	runes := []rune(name)
	if len(runes) > 2 {
		runes = runes[:2]
	}
	return string(runes)
}
