package flatfile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/aalvaropc/hatchery/internal/domain"
)

func sampleCollection() domain.Collection {
	c := domain.NewCollection("Élevage du Bourg")
	c.Add(domain.Record{Name: "Aqua", Level: 5, Category: domain.CategoryWater, Experience: 12, Sex: domain.SexMale})
	c.Add(domain.Record{Name: "Zap", Level: 9, Category: domain.CategoryElectric, Experience: 99, Sex: domain.SexFemale})
	c.Add(domain.NewRecord("Flam", domain.CategoryFire, domain.SexFemale))
	return c.Clone()
}

func TestSave_WritesHeaderAndLines(t *testing.T) {
	p := filepath.Join(t.TempDir(), "save.txt")

	if err := NewStore().Save(p, sampleCollection()); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := "Élevage du Bourg\n" +
		"Aqua|5|Eau|12|Mâle\n" +
		"Zap|9|Électrik|99|Femelle\n" +
		"Flam|1|Feu|0|Femelle\n"
	if string(b) != want {
		t.Fatalf("unexpected file content:\n%s", b)
	}
}

func TestSave_TruncatesExistingFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "save.txt")
	if err := os.WriteFile(p, []byte("old\nline|1|Feu|0|m\nmore\nstuff\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := NewStore().Save(p, domain.Collection{Name: "new"}); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	b, _ := os.ReadFile(p)
	if string(b) != "new\n" {
		t.Fatalf("expected truncated file, got %q", b)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	p := filepath.Join(t.TempDir(), "save.txt")
	s := NewStore()
	in := sampleCollection()

	if err := s.Save(p, in); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	out, err := s.Load(p)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("round trip mismatch:\nin=%+v\nout=%+v", in, out)
	}
}

func TestSaveLoad_EmptyCollection(t *testing.T) {
	p := filepath.Join(t.TempDir(), "save.txt")
	s := NewStore()

	if err := s.Save(p, domain.NewCollection("Test").Clone()); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	out, err := s.Load(p)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if out.Name != "Test" || len(out.Records) != 0 {
		t.Fatalf("unexpected collection %+v", out)
	}
}

func TestRemoveThenRoundTrip_PreservesRemaining(t *testing.T) {
	p := filepath.Join(t.TempDir(), "save.txt")
	s := NewStore()

	c := sampleCollection()
	if _, err := c.Remove(1); err != nil {
		t.Fatalf("Remove error: %v", err)
	}
	if err := s.Save(p, c); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	out, err := s.Load(p)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	orig := sampleCollection()
	want := []domain.Record{orig.Records[0], orig.Records[2]}
	if !reflect.DeepEqual(out.Records, want) {
		t.Fatalf("expected %+v, got %+v", want, out.Records)
	}
}

func TestLoad_SkipsMalformedLines(t *testing.T) {
	p := filepath.Join(t.TempDir(), "save.txt")
	content := "Ferme\n" +
		"Aqua|5|Eau|12|Mâle\n" +
		"broken line\n" +
		"Zap|9|electrik|3|f\r\n" +
		"Flam|1|Feu|0|Femelle"
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	col, err := NewStore().Load(p)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if col.Name != "Ferme" {
		t.Fatalf("unexpected name %q", col.Name)
	}
	if len(col.Records) != 3 {
		t.Fatalf("expected 3 records, got %d (%+v)", len(col.Records), col.Records)
	}
	if col.Records[1].Category != domain.CategoryElectric || col.Records[1].Sex != domain.SexFemale {
		t.Fatalf("unexpected alias parse %+v", col.Records[1])
	}
}

func TestScan_ReportsIssues(t *testing.T) {
	p := filepath.Join(t.TempDir(), "save.txt")
	content := "Ferme\nAqua|5|Eau|12|Mâle\n\nZap|x|Feu|0|m\n"
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	col, issues, err := NewStore().Scan(p)
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	if len(col.Records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(col.Records))
	}
	if len(issues) != 2 {
		t.Fatalf("expected 2 issues, got %d", len(issues))
	}
	if issues[0].Line != 3 || issues[1].Line != 4 {
		t.Fatalf("unexpected issue lines %+v", issues)
	}
	if !errors.Is(issues[1].Err, domain.ErrMalformedLine) {
		t.Fatalf("expected malformed line error, got %v", issues[1].Err)
	}
}

func TestLoad_EmptyFileIsMissingHeader(t *testing.T) {
	p := filepath.Join(t.TempDir(), "save.txt")
	if err := os.WriteFile(p, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := NewStore().Load(p)
	if !domain.IsKind(err, domain.KindMissingHeader) {
		t.Fatalf("expected missing header, got %v", err)
	}
	if !errors.Is(err, domain.ErrMissingHeader) {
		t.Fatalf("expected ErrMissingHeader in chain, got %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := NewStore().Load(filepath.Join(t.TempDir(), "nope.txt"))
	if !domain.IsKind(err, domain.KindIOFailure) {
		t.Fatalf("expected io failure, got %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist in chain, got %v", err)
	}
}

func TestSave_UnwritablePath(t *testing.T) {
	p := filepath.Join(t.TempDir(), "missing-dir", "save.txt")

	err := NewStore().Save(p, domain.Collection{Name: "x"})
	if !domain.IsKind(err, domain.KindIOFailure) {
		t.Fatalf("expected io failure, got %v", err)
	}
}
