package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aalvaropc/hatchery/internal/domain"
	"github.com/aalvaropc/hatchery/internal/usecase"
)

type action int

const (
	actAdd action = iota
	actList
	actTrain
	actTrainAll
	actBreed
	actSortLevel
	actSortCategory
	actRemove
	actQuit
	actInitWorkspace
)

const (
	msgEmpty        = "Votre élevage est vide ! Ajoutez des Pokémon."
	msgNeedTwo      = "Vous avez besoin d'au moins 2 Pokémon pour la reproduction."
	msgBadCategory  = "Type invalide. Utilisation du type Normal par défaut."
	msgBadSex       = "Genre invalide. Utilisation du genre Mâle par défaut."
	msgBadXPPattern = "Quantité d'XP invalide. Utilisation de %d XP par défaut."
)

// prompts lists the questions asked, in order, before a runs.
// Actions without prompts run as soon as they are picked.
func prompts(a action, col domain.Collection, t domain.TrainingConfig) []string {
	pick := fmt.Sprintf("Choisissez un Pokémon (1-%d)", col.Len())
	xp := fmt.Sprintf("Quantité d'XP à gagner (%d-%d)", t.MinXP, t.MaxXP)

	switch a {
	case actAdd:
		return []string{
			"Nom du Pokémon",
			"Choisissez un type (1-8): " + categoryMenu(),
			"Choisissez un genre (1-2): 1. Mâle  2. Femelle",
		}
	case actTrain:
		return []string{pick, xp}
	case actTrainAll:
		return []string{fmt.Sprintf("Quantité d'XP à gagner pour tous (%d-%d)", t.MinXP, t.MaxXP)}
	case actBreed:
		return []string{
			fmt.Sprintf("Choisissez le premier Pokémon (1-%d)", col.Len()),
			fmt.Sprintf("Choisissez le second Pokémon (1-%d)", col.Len()),
		}
	case actRemove:
		return []string{fmt.Sprintf("Choisissez le Pokémon à supprimer (1-%d)", col.Len())}
	default:
		return nil
	}
}

// precheck returns a notice when a cannot start on col.
func precheck(a action, col domain.Collection) string {
	switch a {
	case actTrain, actTrainAll, actRemove:
		if col.Len() == 0 {
			return msgEmpty
		}
	case actBreed:
		if col.Len() < 2 {
			return msgNeedTwo
		}
	}
	return ""
}

// runAction applies a with the wizard answers and returns the lines to show.
func runAction(s *usecase.Session, t domain.TrainingConfig, a action, answers []string) ([]string, error) {
	switch a {
	case actAdd:
		var notes []string
		cat, ok := categoryChoice(answer(answers, 1))
		if !ok {
			notes = append(notes, msgBadCategory)
		}
		sex, ok := sexChoice(answer(answers, 2))
		if !ok {
			notes = append(notes, msgBadSex)
		}
		idx, err := s.Add(answer(answers, 0), cat, sex)
		if err != nil {
			return notes, err
		}
		return append(notes, "Ajout du Pokémon: "+s.Collection().Records[idx].String()), nil

	case actTrain:
		idx, err := indexChoice(answer(answers, 0))
		if err != nil {
			return nil, err
		}
		xp, notes := xpChoice(t, answer(answers, 1))
		change, err := s.Train(idx, xp)
		if err != nil {
			return notes, err
		}
		return append(notes, levelLine(change, xp)), nil

	case actTrainAll:
		xp, notes := xpChoice(t, answer(answers, 0))
		notes = append(notes, fmt.Sprintf("Entraînement de tous les Pokémon (+%d XP)...", xp))
		for _, c := range s.TrainAll(xp) {
			if c.Leveled() {
				notes = append(notes, levelLine(c, xp))
			}
		}
		return notes, nil

	case actBreed:
		first, err := indexChoice(answer(answers, 0))
		if err != nil {
			return nil, err
		}
		second, err := indexChoice(answer(answers, 1))
		if err != nil {
			return nil, err
		}
		child, err := s.Breed(first, second)
		if err != nil {
			return nil, err
		}
		return []string{"Reproduction réussie! Un nouveau Pokémon est né:", child.String()}, nil

	case actSortLevel:
		s.SortByLevel()
		return []string{"Pokémon triés par niveau (décroissant)."}, nil

	case actSortCategory:
		s.SortByCategory()
		return []string{"Pokémon triés par type."}, nil

	case actRemove:
		idx, err := indexChoice(answer(answers, 0))
		if err != nil {
			return nil, err
		}
		removed, err := s.Remove(idx)
		if err != nil {
			return nil, err
		}
		return []string{removed.Name + " a été retiré de l'élevage."}, nil
	}

	return nil, fmt.Errorf("unsupported action %d", a)
}

func answer(answers []string, i int) string {
	if i < len(answers) {
		return strings.TrimSpace(answers[i])
	}
	return ""
}

func categoryMenu() string {
	var b strings.Builder
	for i, c := range domain.Categories() {
		if i > 0 {
			b.WriteString("  ")
		}
		fmt.Fprintf(&b, "%d. %s", i+1, c)
	}
	return b.String()
}

// categoryChoice maps a 1-based menu choice to a category; anything else is Normal.
func categoryChoice(in string) (domain.Category, bool) {
	cats := domain.Categories()
	n, err := strconv.Atoi(strings.TrimSpace(in))
	if err != nil || n < 1 || n > len(cats) {
		return domain.CategoryNormal, false
	}
	return cats[n-1], true
}

// sexChoice maps 1 to Male and 2 to Female; anything else is Male.
func sexChoice(in string) (domain.Sex, bool) {
	switch strings.TrimSpace(in) {
	case "1":
		return domain.SexMale, true
	case "2":
		return domain.SexFemale, true
	default:
		return domain.SexMale, false
	}
}

func xpChoice(t domain.TrainingConfig, in string) (uint32, []string) {
	n, err := strconv.Atoi(strings.TrimSpace(in))
	if err != nil {
		return t.DefaultXP, []string{fmt.Sprintf(msgBadXPPattern, t.DefaultXP)}
	}
	xp, ok := t.NormalizeXP(n)
	if !ok {
		return xp, []string{fmt.Sprintf(msgBadXPPattern, t.DefaultXP)}
	}
	return xp, nil
}

// indexChoice converts a 1-based position to a 0-based index.
// Range checks are left to the collection.
func indexChoice(in string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(in))
	if err != nil || n < 1 {
		return 0, &domain.OpError{Op: "tui.index", Kind: domain.KindInvalidIndex, Err: domain.ErrInvalidIndex}
	}
	return n - 1, nil
}

func levelLine(c domain.LevelChange, xp uint32) string {
	if c.Leveled() {
		return fmt.Sprintf("%s passe du niveau %d au niveau %d", c.Name, c.From, c.To)
	}
	return fmt.Sprintf("%s gagne %d XP", c.Name, xp)
}
