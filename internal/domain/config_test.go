package domain

import "testing"

func TestNormalizeXP(t *testing.T) {
	tc := DefaultConfig().Training
	cases := []struct {
		in   int
		want uint32
		kept bool
	}{
		{10, 10, true},
		{55, 55, true},
		{100, 100, true},
		{9, 10, false},
		{101, 10, false},
		{-5, 10, false},
	}
	for _, c := range cases {
		got, kept := tc.NormalizeXP(c.in)
		if got != c.want || kept != c.kept {
			t.Errorf("NormalizeXP(%d) = (%d,%v), want (%d,%v)", c.in, got, kept, c.want, c.kept)
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.SaveFile != "elevage_pokemon.txt" {
		t.Fatalf("unexpected save file %q", cfg.SaveFile)
	}
	if cfg.Paths.ExportsDir != "exports" {
		t.Fatalf("unexpected exports dir %q", cfg.Paths.ExportsDir)
	}
	if cfg.Breeding.Seed != 0 {
		t.Fatalf("expected clock seeding by default")
	}
}
