package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/hatchery/internal/usecase"
)

type screen int

const (
	screenLoading screen = iota
	screenNaming
	screenHome
	screenList
	screenWizard
)

type menuItem struct {
	title string
	desc  string
	act   action
}

func (m menuItem) Title() string       { return m.title }
func (m menuItem) Description() string { return m.desc }
func (m menuItem) FilterValue() string { return m.title }

type model struct {
	theme Theme
	deps  Deps

	scr     screen
	menu    list.Model
	input   textinput.Model
	session *usecase.Session

	wizardAct     action
	wizardStep    int
	wizardAnswers []string

	toast    []string
	toastErr bool

	// quitArmed lets a second ctrl+c leave after a failed save.
	quitArmed bool
	saving    bool

	width int
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func menuItems(workspaceFound bool) []list.Item {
	items := []list.Item{
		menuItem{"1. Ajouter un Pokémon", "Nom, type et genre; niveau 1", actAdd},
		menuItem{"2. Afficher tous les Pokémon", "Liste numérotée de l'élevage", actList},
		menuItem{"3. Entraîner un Pokémon", "Donner de l'XP à un Pokémon", actTrain},
		menuItem{"4. Entraîner tous les Pokémon", "Donner de l'XP à tout l'élevage", actTrainAll},
		menuItem{"5. Reproduire deux Pokémon", "Niveau 5+, même type, sexes opposés", actBreed},
		menuItem{"6. Trier les Pokémon par niveau", "Du plus haut au plus bas", actSortLevel},
		menuItem{"7. Trier les Pokémon par type", "Ordre alphabétique des types", actSortCategory},
		menuItem{"8. Supprimer un Pokémon", "Retirer un Pokémon de l'élevage", actRemove},
		menuItem{"9. Quitter", "Sauvegarder puis quitter", actQuit},
	}
	if !workspaceFound {
		items = append(items, menuItem{"Initialiser l'espace de travail", "Créer hatchery.yaml, exports/ et rosters/ ici", actInitWorkspace})
	}
	return items
}

func newModel(deps Deps) model {
	l := list.New(menuItems(deps.WorkspaceFound), list.NewDefaultDelegate(), 0, 0)
	l.Title = "Menu principal"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)

	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 40

	return model{
		theme: DefaultTheme(),
		deps:  deps,
		scr:   screenLoading,
		menu:  l,
		input: ti,
	}
}

func (m model) Init() tea.Cmd { return cmdOpenSession(m.deps) }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.menu.SetSize(msg.Width-4, msg.Height-12)
		return m, nil

	case sessionOpenedMsg:
		return m.onSessionOpened(msg)

	case sessionSavedMsg:
		m.saving = false
		if msg.err != nil {
			m.setError(fmt.Errorf("sauvegarde: %w", msg.err))
			if msg.quit {
				m.quitArmed = true
				m.toast = append(m.toast, "ctrl+c pour quitter sans sauvegarder")
			}
			return m, nil
		}
		if msg.quit {
			return m, tea.Quit
		}
		m.setNotice("Élevage sauvegardé avec succès dans " + msg.path)
		return m, nil

	case initWorkspaceDoneMsg:
		if msg.err != nil {
			m.setError(msg.err)
			return m, nil
		}
		m.deps.WorkspaceFound = true
		m.deps.WorkspaceRoot = msg.root
		m.menu.SetItems(menuItems(true))
		m.setNotice("Espace de travail initialisé dans " + msg.root)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
		// The save command reads the session on another goroutine.
		if m.saving {
			return m, nil
		}
		switch m.scr {
		case screenNaming:
			return m.updateNaming(msg)
		case screenHome:
			return m.updateHome(msg)
		case screenList:
			switch msg.String() {
			case "esc", "b", "q", "enter":
				m.scr = screenHome
			}
			return m, nil
		case screenWizard:
			return m.updateWizard(msg)
		}
	}

	var cmd tea.Cmd
	switch m.scr {
	case screenHome:
		m.menu, cmd = m.menu.Update(msg)
	case screenNaming, screenWizard:
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m model) onSessionOpened(msg sessionOpenedMsg) (tea.Model, tea.Cmd) {
	if msg.err == nil && !msg.missing {
		m.session = msg.session
		m.scr = screenHome
		col := m.session.Collection()
		m.setNotice(fmt.Sprintf("Élevage \"%s\" chargé avec %d Pokémon.", col.Name, col.Len()))
		return m, nil
	}

	m.scr = screenNaming
	m.toast = nil
	if msg.err != nil {
		m.setError(fmt.Errorf("chargement de la sauvegarde: %w", msg.err))
		m.toast = append(m.toast, "Création d'un nouvel élevage...")
	}
	m.input.Reset()
	m.input.Placeholder = "Mon élevage"
	cmd := m.input.Focus()
	return m, cmd
}

func (m model) updateNaming(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() != "enter" {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	s, err := usecase.NewSession(m.deps.Store, m.deps.SavePath, m.input.Value(), sessionOpts(m.deps)...)
	if err != nil {
		m.setError(err)
		return m, nil
	}
	m.session = s
	m.scr = screenHome
	m.input.Blur()
	m.setNotice(fmt.Sprintf("Bienvenue dans votre élevage \"%s\"! Commençons par ajouter quelques Pokémon...", s.Collection().Name))
	return m, nil
}

func (m model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch {
	case key == "q":
		return m.quit()
	case key == "enter":
		it, ok := m.menu.SelectedItem().(menuItem)
		if !ok {
			return m, nil
		}
		return m.start(it.act)
	case len(key) == 1 && key[0] >= '1' && key[0] <= '9':
		n := int(key[0] - '1')
		if n < len(m.menu.Items()) {
			m.menu.Select(n)
			if it, ok := m.menu.SelectedItem().(menuItem); ok {
				return m.start(it.act)
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

// start runs a menu action, opening the wizard when it needs input.
func (m model) start(a action) (tea.Model, tea.Cmd) {
	switch a {
	case actQuit:
		return m.quit()
	case actList:
		m.toast = nil
		m.scr = screenList
		return m, nil
	case actInitWorkspace:
		return m, cmdInitWorkspaceHere(m.deps, m.deps.WorkspaceRoot)
	}

	col := m.session.Collection()
	if notice := precheck(a, col); notice != "" {
		m.toast = []string{notice}
		m.toastErr = true
		return m, nil
	}

	if len(prompts(a, col, m.deps.Training)) == 0 {
		return m.finish(a, nil), nil
	}

	m.scr = screenWizard
	m.wizardAct = a
	m.wizardStep = 0
	m.wizardAnswers = nil
	m.toast = nil
	m.input.Reset()
	m.input.Placeholder = ""
	cmd := m.input.Focus()
	return m, cmd
}

func (m model) updateWizard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.scr = screenHome
		m.wizardStep = 0
		m.input.Blur()
		return m, nil
	case "enter":
		m.wizardAnswers = append(m.wizardAnswers, m.input.Value())
		m.wizardStep++
		m.input.Reset()
		if m.wizardStep < len(prompts(m.wizardAct, m.session.Collection(), m.deps.Training)) {
			return m, nil
		}
		m.input.Blur()
		return m.finish(m.wizardAct, m.wizardAnswers), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) finish(a action, answers []string) model {
	lines, err := runAction(m.session, m.deps.Training, a, answers)
	m.scr = screenHome
	m.wizardStep = 0
	m.wizardAnswers = nil
	m.toast = lines
	m.toastErr = false
	if err != nil {
		m.toast = append(m.toast, userMessage(err))
		m.toastErr = true
	}
	return m
}

// quit saves before leaving. Without a session there is nothing to save.
func (m model) quit() (tea.Model, tea.Cmd) {
	if m.session == nil || m.quitArmed {
		return m, tea.Quit
	}
	if m.saving {
		return m, nil
	}
	m.saving = true
	return m, cmdSave(m.session, true)
}

func (m *model) setNotice(s string) {
	m.toast = []string{s}
	m.toastErr = false
}

func (m *model) setError(err error) {
	m.toast = []string{userMessage(err)}
	m.toastErr = true
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("POKÉMON ÉLEVAGE SIMULATOR") + "\n" +
		m.theme.Subtitle.Render(m.subtitle()) + "\n"

	var banner string
	if m.deps.WorkspaceFound {
		banner = m.theme.Help.Render(fmt.Sprintf("Workspace: %s • Sauvegarde: %s", m.deps.WorkspaceRoot, m.deps.SavePath))
	} else {
		banner = m.theme.Help.Render(fmt.Sprintf("Sauvegarde: %s (aucun hatchery.yaml trouvé)", m.deps.SavePath))
	}

	body := ""
	switch m.scr {
	case screenLoading:
		body = m.theme.Card.Render("Chargement de la sauvegarde...")

	case screenNaming:
		body = m.theme.Card.Render(
			m.theme.Title.Render("Nouvel élevage") + "\n\n" +
				"Donnez un nom à votre élevage:\n" + m.input.View() + "\n\n" +
				m.theme.Help.Render("enter valider • ctrl+c quitter"),
		)

	case screenHome:
		help := m.theme.Help.Render("↑/↓ naviguer • enter ou 1-9 choisir • q sauvegarder et quitter")
		body = m.theme.Card.Render(m.menu.View()) + "\n" + help

	case screenList:
		width := 0
		if m.width > 10 {
			width = m.width - 10
		}
		body = m.theme.Card.Render(
			renderCollection(m.session.Collection(), width) + "\n" +
				m.theme.Help.Render("enter/esc retour"),
		)

	case screenWizard:
		ps := prompts(m.wizardAct, m.session.Collection(), m.deps.Training)
		label := ""
		if m.wizardStep < len(ps) {
			label = ps[m.wizardStep]
		}
		body = m.theme.Card.Render(
			m.theme.Title.Render(fmt.Sprintf("Étape %d/%d", m.wizardStep+1, len(ps))) + "\n\n" +
				label + "\n" + m.input.View() + "\n\n" +
				m.theme.Help.Render("enter valider • esc annuler"),
		)

	default:
		body = "unknown state"
	}

	return wrap.Render(header + "\n" + banner + "\n\n" + body + m.renderToast())
}

func (m model) subtitle() string {
	if m.session == nil {
		return "Simulateur d'élevage"
	}
	col := m.session.Collection()
	return fmt.Sprintf("Élevage %s • %d Pokémon", col.Name, col.Len())
}

func (m model) renderToast() string {
	if len(m.toast) == 0 {
		return ""
	}
	style := m.theme.Notice
	if m.toastErr {
		style = m.theme.Error
	}
	return "\n\n" + style.Render(strings.Join(m.toast, "\n"))
}
