package tui

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aalvaropc/hatchery/internal/domain"
)

const msgUnexpected = "Erreur inattendue (voir les logs)"

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {

		case domain.KindInvalidIndex:
			return "Indice invalide"

		case domain.KindIneligibleBreed:
			return fmt.Sprintf("Ces Pokémon ne peuvent pas se reproduire ensemble. "+
				"Ils doivent être au moins niveau %d, du même type et de sexes opposés.", domain.BreedingMinLevel)

		case domain.KindMissingHeader:
			return "Sauvegarde illisible: nom de l'élevage manquant"

		case domain.KindMalformedLine:
			return "Ligne de sauvegarde invalide"

		case domain.KindIOFailure:
			if strings.TrimSpace(oe.Path) != "" {
				return "Erreur d'accès au fichier " + filepath.Base(oe.Path)
			}
			return "Erreur d'accès au fichier"

		case domain.KindNotFound:
			if strings.Contains(oe.Op, "workspacefinder.findroot") {
				return "Espace de travail introuvable"
			}
			return "Introuvable"

		case domain.KindInvalidConfig:
			if strings.HasPrefix(oe.Op, "session.") || oe.Op == "record.validate_name" {
				return "Nom invalide: il ne doit pas être vide ni contenir | ou de retour à la ligne"
			}

			base := "config"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}

			line := extractLine(err.Error())
			if line != "" {
				return "YAML invalide: " + base + " ligne " + line
			}

			if looksLikeYAMLProblem(err.Error()) {
				return "YAML invalide: " + base
			}
			return "Configuration invalide"

		default:
			return msgUnexpected
		}
	}

	if looksLikeYAMLProblem(err.Error()) {
		line := extractLine(err.Error())
		if line != "" {
			return "YAML invalide ligne " + line
		}
		return "YAML invalide"
	}

	return msgUnexpected
}

func looksLikeYAMLProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") || strings.Contains(ls, "did not find expected") || strings.Contains(ls, "cannot unmarshal")
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}
