package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aalvaropc/hatchery/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

// renderCollection is the numbered listing shown by "Afficher tous les Pokémon".
func renderCollection(col domain.Collection, width int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Liste des Pokémon de l'élevage %s (%d)\n\n", col.Name, col.Len())
	if col.Len() == 0 {
		b.WriteString(msgEmpty)
		b.WriteString("\n")
		return b.String()
	}
	for i, r := range col.Records {
		line := fmt.Sprintf("#%d: %s", i+1, r)
		if width > 0 {
			line = clampString(line, width)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
