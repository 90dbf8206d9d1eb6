package tui

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/aalvaropc/hatchery/internal/domain"
)

func TestUserMessage(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"invalid index", &domain.OpError{Op: "collection.remove", Kind: domain.KindInvalidIndex, Err: domain.ErrInvalidIndex}, "Indice invalide"},
		{"missing header", &domain.OpError{Op: "flatfile.load", Kind: domain.KindMissingHeader}, "Sauvegarde illisible: nom de l'élevage manquant"},
		{"io with path", &domain.OpError{Op: "flatfile.save", Kind: domain.KindIOFailure, Path: "/tmp/x/elevage.txt"}, "Erreur d'accès au fichier elevage.txt"},
		{"wrapped io", fmt.Errorf("sauvegarde: %w", &domain.OpError{Op: "flatfile.save", Kind: domain.KindIOFailure}), "Erreur d'accès au fichier"},
		{"bad name", domain.ValidateName("a|b"), "Nom invalide: il ne doit pas être vide ni contenir | ou de retour à la ligne"},
		{"yaml line", &domain.OpError{Op: "yamlroster.load", Kind: domain.KindInvalidConfig, Path: "r/starters.yaml", Err: errors.New("yaml: line 4: did not find expected key")}, "YAML invalide: starters.yaml ligne 4"},
		{"plain", errors.New("boom"), msgUnexpected},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := userMessage(c.err); got != c.want {
				t.Errorf("userMessage = %q, want %q", got, c.want)
			}
		})
	}
}

func TestUserMessage_IneligibleMentionsRules(t *testing.T) {
	got := userMessage(&domain.OpError{Op: "collection.breed", Kind: domain.KindIneligibleBreed})
	if !strings.Contains(got, "niveau 5") || !strings.Contains(got, "sexes opposés") {
		t.Errorf("userMessage = %q", got)
	}
}
