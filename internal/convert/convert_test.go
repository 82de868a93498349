package convert

import (
	"archive/zip"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/starford/sowilo/internal/apperr"
	"github.com/starford/sowilo/internal/pptx"
)

func testConverter() *Converter {
	return New(pptx.NewResolver())
}

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// readDeckPart opens the deck at path and returns the named part's content.
func readDeckPart(t *testing.T, path, name string) string {
	t.Helper()
	r, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("open deck %s: %v", path, err)
	}
	defer r.Close()
	for _, f := range r.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			t.Fatal(err)
		}
		return string(data)
	}
	t.Fatalf("part %s not found in %s", name, path)
	return ""
}

func TestFile_WritesDeck(t *testing.T) {
	dir := t.TempDir()
	input := writeSource(t, dir, "talk.md", "# Kickoff\n\nHello everyone.\n")
	output := filepath.Join(dir, "talk.pptx")

	if err := testConverter().File(context.Background(), input, output, "default"); err != nil {
		t.Fatalf("File() error: %v", err)
	}

	slide := readDeckPart(t, output, "ppt/slides/slide1.xml")
	if !strings.Contains(slide, "<a:t>Kickoff</a:t>") {
		t.Errorf("slide1 missing title, got %q", slide)
	}
	if !strings.Contains(slide, "<a:t>Hello everyone.</a:t>") {
		t.Errorf("slide1 missing body text")
	}
}

func TestFile_MissingInput(t *testing.T) {
	dir := t.TempDir()
	err := testConverter().File(context.Background(), filepath.Join(dir, "absent.md"), filepath.Join(dir, "out.pptx"), "default")
	if !errors.Is(err, apperr.ErrFileNotFound) {
		t.Errorf("File() error = %v, want ErrFileNotFound", err)
	}
}

func TestFile_RejectsWrongExtension(t *testing.T) {
	dir := t.TempDir()
	input := writeSource(t, dir, "notes.txt", "# Not markdown extension\n")
	err := testConverter().File(context.Background(), input, filepath.Join(dir, "out.pptx"), "default")
	if !errors.Is(err, apperr.ErrInvalidFormat) {
		t.Errorf("File() error = %v, want ErrInvalidFormat", err)
	}
}

func TestFile_UnparseableMarkdown(t *testing.T) {
	dir := t.TempDir()
	input := writeSource(t, dir, "empty.md", "")
	err := testConverter().File(context.Background(), input, filepath.Join(dir, "out.pptx"), "default")
	if !errors.Is(err, apperr.ErrConversion) {
		t.Errorf("File() error = %v, want ErrConversion", err)
	}
}

func TestDirectory_CombinesInSortedOrder(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "b.md", "# Beta\n\nSecond deck.\n")
	writeSource(t, dir, "a.md", "# Alpha\n\nFirst deck.\n")
	writeSource(t, dir, "notes.md", "Loose thoughts without a heading.\n")
	output := filepath.Join(t.TempDir(), "combined.pptx")

	if err := testConverter().Directory(context.Background(), dir, output, "default", false); err != nil {
		t.Fatalf("Directory() error: %v", err)
	}

	pres := readDeckPart(t, output, "ppt/presentation.xml")
	if got := strings.Count(pres, "<p:sldId "); got != 3 {
		t.Errorf("sldId count = %d, want 3", got)
	}
	if s := readDeckPart(t, output, "ppt/slides/slide1.xml"); !strings.Contains(s, "<a:t>Alpha</a:t>") {
		t.Errorf("slide1 should come from a.md, got %q", s)
	}
	if s := readDeckPart(t, output, "ppt/slides/slide2.xml"); !strings.Contains(s, "<a:t>Beta</a:t>") {
		t.Errorf("slide2 should come from b.md")
	}
	// The untitled slide takes its file stem as title.
	if s := readDeckPart(t, output, "ppt/slides/slide3.xml"); !strings.Contains(s, "<a:t>notes</a:t>") {
		t.Errorf("slide3 should be titled after its source file, got %q", s)
	}
}

func TestDirectory_AdoptsFirstMetadata(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "01-intro.md", "# Quarterly Review\n\nWelcome.\n")
	writeSource(t, dir, "02-close.md", "# Wrap Up\n\nThanks.\n")
	output := filepath.Join(t.TempDir(), "deck.pptx")

	if err := testConverter().Directory(context.Background(), dir, output, "default", false); err != nil {
		t.Fatalf("Directory() error: %v", err)
	}

	core := readDeckPart(t, output, "docProps/core.xml")
	if !strings.Contains(core, "<dc:title>Quarterly Review</dc:title>") {
		t.Errorf("core.xml title not adopted from first file, got %q", core)
	}
}

func TestDirectory_FallbackTitleFromDirName(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "launch")
	writeSource(t, dir, "only.md", "Nothing but a paragraph here.\n")
	output := filepath.Join(root, "deck.pptx")

	if err := testConverter().Directory(context.Background(), dir, output, "default", false); err != nil {
		t.Fatalf("Directory() error: %v", err)
	}

	core := readDeckPart(t, output, "docProps/core.xml")
	if !strings.Contains(core, "<dc:title>launch Presentation</dc:title>") {
		t.Errorf("core.xml should fall back to directory name, got %q", core)
	}
}

func TestDirectory_ParseFailureAborts(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "good.md", "# Fine\n\nContent.\n")
	writeSource(t, dir, "broken.md", "")
	output := filepath.Join(t.TempDir(), "deck.pptx")

	err := testConverter().Directory(context.Background(), dir, output, "default", false)
	if !errors.Is(err, apperr.ErrConversion) {
		t.Fatalf("Directory() error = %v, want ErrConversion", err)
	}
	if _, statErr := os.Stat(output); !errors.Is(statErr, os.ErrNotExist) {
		t.Errorf("output should not exist after failed combine")
	}
}

func TestDirectory_Recursive(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "top.md", "# Top\n\nRoot level.\n")
	writeSource(t, dir, filepath.Join("nested", "deep.md"), "# Deep\n\nNested level.\n")
	output := filepath.Join(t.TempDir(), "deck.pptx")

	if err := testConverter().Directory(context.Background(), dir, output, "default", true); err != nil {
		t.Fatalf("Directory() error: %v", err)
	}
	pres := readDeckPart(t, output, "ppt/presentation.xml")
	if got := strings.Count(pres, "<p:sldId "); got != 2 {
		t.Errorf("sldId count = %d, want 2", got)
	}
}

func TestSeparate_WritesOneDeckPerFile(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "alpha.md", "# Alpha\n\nFirst.\n")
	writeSource(t, dir, "beta.md", "# Beta\n\nSecond.\n")
	writeSource(t, dir, "broken.md", "")
	outDir := t.TempDir()

	n, err := testConverter().Separate(context.Background(), dir, outDir, "default", false)
	if err != nil {
		t.Fatalf("Separate() error: %v", err)
	}
	if n != 2 {
		t.Errorf("Separate() converted = %d, want 2", n)
	}
	for _, name := range []string{"alpha.pptx", "beta.pptx"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("expected %s to exist: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(outDir, "broken.pptx")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("broken.pptx should not exist")
	}
}

func TestSeparate_AllFailed(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "broken.md", "")

	_, err := testConverter().Separate(context.Background(), dir, t.TempDir(), "default", false)
	if !errors.Is(err, apperr.ErrConversion) {
		t.Errorf("Separate() error = %v, want ErrConversion", err)
	}
}

func TestSeparate_EmptyDirectory(t *testing.T) {
	_, err := testConverter().Separate(context.Background(), t.TempDir(), t.TempDir(), "default", false)
	if !errors.Is(err, apperr.ErrConfiguration) {
		t.Errorf("Separate() error = %v, want ErrConfiguration", err)
	}
}

func TestFileStem(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"notes.md", "notes"},
		{filepath.Join("a", "b", "deck.markdown"), "deck"},
		{"noext", "noext"},
	}
	for _, tt := range tests {
		if got := fileStem(tt.path); got != tt.want {
			t.Errorf("fileStem(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
