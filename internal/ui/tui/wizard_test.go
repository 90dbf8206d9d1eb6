package tui

import (
	"slices"
	"strings"
	"testing"

	"github.com/aalvaropc/hatchery/internal/domain"
	"github.com/aalvaropc/hatchery/internal/usecase"
)

type memStore struct {
	files map[string]domain.Collection
}

func (m *memStore) Load(path string) (domain.Collection, error) {
	col, ok := m.files[path]
	if !ok {
		return domain.Collection{}, &domain.OpError{Op: "mem.load", Kind: domain.KindIOFailure, Path: path, Err: domain.ErrNotFound}
	}
	return col.Clone(), nil
}

func (m *memStore) Save(path string, col domain.Collection) error {
	m.files[path] = col.Clone()
	return nil
}

type fixedChooser int

func (f fixedChooser) Intn(n int) int { return int(f) % n }

func testSession(t *testing.T, records ...domain.Record) *usecase.Session {
	t.Helper()
	store := &memStore{files: map[string]domain.Collection{
		"save.txt": {Name: "Bourg", Records: records},
	}}
	s, err := usecase.OpenSession(store, "save.txt", usecase.WithChooser(fixedChooser(0)))
	if err != nil {
		t.Fatalf("OpenSession: %v", err)
	}
	return s
}

func TestCategoryChoice(t *testing.T) {
	cases := []struct {
		in   string
		want domain.Category
		ok   bool
	}{
		{"1", domain.CategoryFire, true},
		{" 4 ", domain.CategoryElectric, true},
		{"8", domain.CategoryPsychic, true},
		{"0", domain.CategoryNormal, false},
		{"9", domain.CategoryNormal, false},
		{"feu", domain.CategoryNormal, false},
	}
	for _, c := range cases {
		got, ok := categoryChoice(c.in)
		if got != c.want || ok != c.ok {
			t.Errorf("categoryChoice(%q) = %v, %v; want %v, %v", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestSexChoice(t *testing.T) {
	cases := []struct {
		in   string
		want domain.Sex
		ok   bool
	}{
		{"1", domain.SexMale, true},
		{"2", domain.SexFemale, true},
		{"3", domain.SexMale, false},
		{"", domain.SexMale, false},
	}
	for _, c := range cases {
		got, ok := sexChoice(c.in)
		if got != c.want || ok != c.ok {
			t.Errorf("sexChoice(%q) = %v, %v; want %v, %v", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestXPChoice(t *testing.T) {
	tc := domain.DefaultConfig().Training
	cases := []struct {
		in      string
		want    uint32
		noticed bool
	}{
		{"10", 10, false},
		{"100", 100, false},
		{"55", 55, false},
		{"9", 10, true},
		{"101", 10, true},
		{"beaucoup", 10, true},
	}
	for _, c := range cases {
		got, notes := xpChoice(tc, c.in)
		if got != c.want || (len(notes) > 0) != c.noticed {
			t.Errorf("xpChoice(%q) = %d, %q", c.in, got, notes)
		}
	}
}

func TestIndexChoice(t *testing.T) {
	if got, err := indexChoice("3"); err != nil || got != 2 {
		t.Fatalf("indexChoice(3) = %d, %v", got, err)
	}
	for _, in := range []string{"0", "-1", "x", ""} {
		if _, err := indexChoice(in); !domain.IsKind(err, domain.KindInvalidIndex) {
			t.Errorf("indexChoice(%q): expected invalid index, got %v", in, err)
		}
	}
}

func TestPrecheck(t *testing.T) {
	empty := domain.Collection{Name: "x"}
	one := domain.Collection{Name: "x", Records: []domain.Record{domain.NewRecord("A", domain.CategoryFire, domain.SexMale)}}

	if got := precheck(actTrain, empty); got != msgEmpty {
		t.Errorf("train on empty = %q", got)
	}
	if got := precheck(actBreed, one); got != msgNeedTwo {
		t.Errorf("breed with one = %q", got)
	}
	if got := precheck(actAdd, empty); got != "" {
		t.Errorf("add on empty = %q", got)
	}
	if got := precheck(actRemove, one); got != "" {
		t.Errorf("remove with one = %q", got)
	}
}

func TestRunAction_AddWithFallbacks(t *testing.T) {
	s := testSession(t)
	lines, err := runAction(s, domain.DefaultConfig().Training, actAdd, []string{"Evoli", "42", "7"})
	if err != nil {
		t.Fatalf("runAction: %v", err)
	}
	want := []string{
		msgBadCategory,
		msgBadSex,
		"Ajout du Pokémon: Pokémon: Evoli | Type: Normal | Niveau: 1 | XP: 0/100 | Genre: Mâle",
	}
	if !slices.Equal(lines, want) {
		t.Fatalf("lines = %q, want %q", lines, want)
	}
}

func TestRunAction_TrainLevelsUp(t *testing.T) {
	s := testSession(t, domain.RestoreRecord("Aqua", 4, domain.CategoryWater, 95, domain.SexMale))
	lines, err := runAction(s, domain.DefaultConfig().Training, actTrain, []string{"1", "10"})
	if err != nil {
		t.Fatalf("runAction: %v", err)
	}
	if !slices.Equal(lines, []string{"Aqua passe du niveau 4 au niveau 5"}) {
		t.Fatalf("lines = %q", lines)
	}

	_, err = runAction(s, domain.DefaultConfig().Training, actTrain, []string{"2", "10"})
	if !domain.IsKind(err, domain.KindInvalidIndex) {
		t.Fatalf("expected invalid index, got %v", err)
	}
}

func TestRunAction_TrainAllReportsLevelUps(t *testing.T) {
	s := testSession(t,
		domain.RestoreRecord("A", 1, domain.CategoryWater, 95, domain.SexMale),
		domain.RestoreRecord("B", 1, domain.CategoryFire, 0, domain.SexFemale),
	)
	lines, err := runAction(s, domain.DefaultConfig().Training, actTrainAll, []string{"500"})
	if err != nil {
		t.Fatalf("runAction: %v", err)
	}
	want := []string{
		"Quantité d'XP invalide. Utilisation de 10 XP par défaut.",
		"Entraînement de tous les Pokémon (+10 XP)...",
		"A passe du niveau 1 au niveau 2",
	}
	if !slices.Equal(lines, want) {
		t.Fatalf("lines = %q, want %q", lines, want)
	}
}

func TestRunAction_Breed(t *testing.T) {
	s := testSession(t,
		domain.RestoreRecord("Aqua", 5, domain.CategoryWater, 0, domain.SexMale),
		domain.RestoreRecord("Mare", 5, domain.CategoryWater, 0, domain.SexFemale),
	)
	lines, err := runAction(s, domain.DefaultConfig().Training, actBreed, []string{"1", "2"})
	if err != nil {
		t.Fatalf("runAction: %v", err)
	}
	if len(lines) != 2 || !strings.Contains(lines[1], "Mystère Aq") {
		t.Fatalf("lines = %q", lines)
	}

	_, err = runAction(s, domain.DefaultConfig().Training, actBreed, []string{"1", "3"})
	if !domain.IsKind(err, domain.KindIneligibleBreed) {
		t.Fatalf("expected ineligible breed, got %v", err)
	}
}

func TestRunAction_SortAndRemove(t *testing.T) {
	s := testSession(t,
		domain.RestoreRecord("C", 3, domain.CategoryPsychic, 0, domain.SexMale),
		domain.RestoreRecord("A", 7, domain.CategoryFire, 0, domain.SexMale),
	)
	tc := domain.DefaultConfig().Training

	if _, err := runAction(s, tc, actSortLevel, nil); err != nil {
		t.Fatalf("sort: %v", err)
	}
	if got := s.Collection().Records[0].Name; got != "A" {
		t.Fatalf("first after sort = %q", got)
	}

	lines, err := runAction(s, tc, actRemove, []string{"1"})
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if !slices.Equal(lines, []string{"A a été retiré de l'élevage."}) {
		t.Fatalf("lines = %q", lines)
	}
	if s.Collection().Len() != 1 {
		t.Fatalf("len = %d", s.Collection().Len())
	}
}

func TestPrompts(t *testing.T) {
	col := domain.Collection{Records: make([]domain.Record, 3)}
	tc := domain.DefaultConfig().Training

	if got := len(prompts(actAdd, col, tc)); got != 3 {
		t.Errorf("add prompts = %d", got)
	}
	if got := prompts(actTrain, col, tc); len(got) != 2 || !strings.Contains(got[0], "(1-3)") || !strings.Contains(got[1], "(10-100)") {
		t.Errorf("train prompts = %q", got)
	}
	if got := prompts(actSortLevel, col, tc); got != nil {
		t.Errorf("sort should run without prompts, got %q", got)
	}
	if !strings.Contains(categoryMenu(), "4. Électrik") {
		t.Errorf("category menu = %q", categoryMenu())
	}
}
