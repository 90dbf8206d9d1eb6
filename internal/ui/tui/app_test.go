package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/hatchery/internal/domain"
	"github.com/aalvaropc/hatchery/internal/usecase"
)

func testDeps(store *memStore) Deps {
	return Deps{
		Store:          store,
		SavePath:       "save.txt",
		Chooser:        fixedChooser(0),
		Training:       domain.DefaultConfig().Training,
		WorkspaceFound: true,
	}
}

// loaded returns a model on the home screen with the collection stored at save.txt.
func loaded(t *testing.T, store *memStore) model {
	t.Helper()
	deps := testDeps(store)
	s, err := usecase.OpenSession(store, deps.SavePath, sessionOpts(deps)...)
	if err != nil {
		t.Fatalf("OpenSession: %v", err)
	}
	next, _ := newModel(deps).Update(sessionOpenedMsg{session: s})
	return next.(model)
}

func press(t *testing.T, m model, keys ...string) model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(model)
	}
	return m
}

func TestModel_NamingWhenSaveMissing(t *testing.T) {
	store := &memStore{files: map[string]domain.Collection{}}
	m := newModel(testDeps(store))

	next, _ := m.Update(sessionOpenedMsg{missing: true})
	m = next.(model)
	if m.scr != screenNaming {
		t.Fatalf("screen = %v, want naming", m.scr)
	}

	m = press(t, m, "Bourg", "enter")
	if m.scr != screenHome || m.session == nil {
		t.Fatalf("expected home with a session, got screen %v", m.scr)
	}
	if got := m.session.Collection().Name; got != "Bourg" {
		t.Fatalf("collection name = %q", got)
	}
}

func TestModel_AddWizardThenQuitSaves(t *testing.T) {
	store := &memStore{files: map[string]domain.Collection{}}
	m := newModel(testDeps(store))
	next, _ := m.Update(sessionOpenedMsg{missing: true})
	m = press(t, next.(model), "Bourg", "enter")

	m = press(t, m, "1")
	if m.scr != screenWizard || m.wizardAct != actAdd {
		t.Fatalf("expected add wizard, got screen %v act %v", m.scr, m.wizardAct)
	}
	m = press(t, m, "Pikachu", "enter", "4", "enter", "2", "enter")
	if m.scr != screenHome {
		t.Fatalf("wizard should return home, got %v", m.scr)
	}
	col := m.session.Collection()
	if col.Len() != 1 || col.Records[0].Category != domain.CategoryElectric || col.Records[0].Sex != domain.SexFemale {
		t.Fatalf("collection = %+v", col.Records)
	}
	if m.toastErr || !strings.Contains(strings.Join(m.toast, "\n"), "Ajout du Pokémon") {
		t.Fatalf("toast = %q", m.toast)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("expected a save command on quit")
	}
	saved, ok := cmd().(sessionSavedMsg)
	if !ok || saved.err != nil || !saved.quit {
		t.Fatalf("save msg = %+v", saved)
	}
	if got := store.files["save.txt"]; got.Name != "Bourg" || got.Len() != 1 {
		t.Fatalf("stored = %+v", got)
	}
	if _, cmd := next.(model).Update(saved); cmd == nil {
		t.Fatalf("expected quit after a successful save")
	}
}

func TestModel_BreedNeedsTwo(t *testing.T) {
	store := &memStore{files: map[string]domain.Collection{
		"save.txt": {Name: "Bourg", Records: []domain.Record{domain.NewRecord("A", domain.CategoryFire, domain.SexMale)}},
	}}
	m := loaded(t, store)
	if m.scr != screenHome {
		t.Fatalf("expected home after load, got %v", m.scr)
	}

	m = press(t, m, "5")
	if m.scr != screenHome || !m.toastErr || m.toast[0] != msgNeedTwo {
		t.Fatalf("expected refusal toast, got screen %v toast %q", m.scr, m.toast)
	}
}

func TestModel_EscCancelsWizard(t *testing.T) {
	store := &memStore{files: map[string]domain.Collection{
		"save.txt": {Name: "Bourg", Records: []domain.Record{domain.NewRecord("A", domain.CategoryFire, domain.SexMale)}},
	}}
	m := press(t, loaded(t, store), "8", "esc")
	if m.scr != screenHome {
		t.Fatalf("expected home after esc, got %v", m.scr)
	}
	if m.session.Collection().Len() != 1 {
		t.Fatalf("cancelled removal changed the collection")
	}
}

func TestModel_ViewRendersListing(t *testing.T) {
	store := &memStore{files: map[string]domain.Collection{
		"save.txt": {Name: "Bourg", Records: []domain.Record{domain.NewRecord("Aqua", domain.CategoryWater, domain.SexMale)}},
	}}
	m := press(t, loaded(t, store), "2")
	if m.scr != screenList {
		t.Fatalf("expected list screen, got %v", m.scr)
	}
	v := m.View()
	if !strings.Contains(v, "Liste des Pokémon de l'élevage Bourg (1)") || !strings.Contains(v, "#1: Pokémon: Aqua") {
		t.Fatalf("view missing listing:\n%s", v)
	}
}

func TestModel_IgnoresKeysWhileSaving(t *testing.T) {
	store := &memStore{files: map[string]domain.Collection{
		"save.txt": {Name: "Bourg", Records: []domain.Record{
			domain.RestoreRecord("Bas", 1, domain.CategoryFire, 0, domain.SexMale),
			domain.RestoreRecord("Haut", 9, domain.CategoryWater, 0, domain.SexFemale),
		}},
	}}
	m := loaded(t, store)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	m = next.(model)
	if cmd == nil || !m.saving {
		t.Fatalf("expected a pending save after q")
	}

	m = press(t, m, "6", "1", "enter")
	if m.scr != screenHome {
		t.Fatalf("screen changed while saving: %v", m.scr)
	}
	if got := m.session.Collection().Records[0].Name; got != "Bas" {
		t.Fatalf("collection changed while saving, first = %q", got)
	}

	next, _ = m.Update(sessionSavedMsg{path: "save.txt"})
	m = press(t, next.(model), "6")
	if got := m.session.Collection().Records[0].Name; got != "Haut" {
		t.Fatalf("keys should work again after the save, first = %q", got)
	}
}
