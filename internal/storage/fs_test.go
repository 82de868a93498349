package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/starford/sowilo/internal/apperr"
)

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestFindMarkdownFiles_SortedNonRecursive(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "b.md", "# B")
	writeSource(t, dir, "a.markdown", "# A")
	writeSource(t, dir, "notes.txt", "skip me")
	writeSource(t, dir, "nested/c.md", "# C")

	files, err := FindMarkdownFiles(dir, false)
	if err != nil {
		t.Fatalf("FindMarkdownFiles: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("len(files) = %d, want 2", len(files))
	}
	if filepath.Base(files[0]) != "a.markdown" || filepath.Base(files[1]) != "b.md" {
		t.Errorf("files = %v, want sorted [a.markdown b.md]", files)
	}
}

func TestFindMarkdownFiles_Recursive(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "top.md", "# Top")
	writeSource(t, dir, "nested/deep/leaf.md", "# Leaf")

	files, err := FindMarkdownFiles(dir, true)
	if err != nil {
		t.Fatalf("FindMarkdownFiles: %v", err)
	}
	if len(files) != 2 {
		t.Errorf("len(files) = %d, want 2", len(files))
	}
}

func TestFindMarkdownFiles_MissingDir(t *testing.T) {
	_, err := FindMarkdownFiles(filepath.Join(t.TempDir(), "nope"), false)
	if !errors.Is(err, apperr.ErrFileNotFound) {
		t.Errorf("err = %v, want ErrFileNotFound", err)
	}
}

func TestFindMarkdownFiles_NotADirectory(t *testing.T) {
	dir := t.TempDir()
	file := writeSource(t, dir, "plain.md", "# P")
	_, err := FindMarkdownFiles(file, false)
	if !errors.Is(err, apperr.ErrConfiguration) {
		t.Errorf("err = %v, want ErrConfiguration", err)
	}
}

func TestFindMarkdownFiles_EmptyDir(t *testing.T) {
	_, err := FindMarkdownFiles(t.TempDir(), false)
	if !errors.Is(err, apperr.ErrConfiguration) {
		t.Errorf("err = %v, want ErrConfiguration", err)
	}
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "absent.md"))
	if !errors.Is(err, apperr.ErrFileNotFound) {
		t.Errorf("err = %v, want ErrFileNotFound", err)
	}
}

func TestWriteFile_CreatesSubdirs(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "a", "b", "deck.pptx")
	if err := WriteFile(out, []byte("bytes")); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(got) != "bytes" {
		t.Errorf("content = %q", got)
	}
}

func TestWriteFile_AtomicNoLeftovers(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "deck.pptx")
	if err := WriteFile(out, []byte("first")); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := WriteFile(out, []byte("second")); err != nil {
		t.Fatalf("WriteFile overwrite: %v", err)
	}
	got, _ := os.ReadFile(out)
	if string(got) != "second" {
		t.Errorf("expected updated content, got %q", got)
	}
	matches, _ := filepath.Glob(filepath.Join(dir, ".sowilo-tmp-*"))
	if len(matches) != 0 {
		t.Errorf("leftover temp files: %v", matches)
	}
}

func TestValidateExtension(t *testing.T) {
	if err := ValidateExtension("slides.md", "md", "markdown"); err != nil {
		t.Errorf("md rejected: %v", err)
	}
	if err := ValidateExtension("slides.markdown", "md", "markdown"); err != nil {
		t.Errorf("markdown rejected: %v", err)
	}
	if err := ValidateExtension("deck.pptx", "pptx"); err != nil {
		t.Errorf("pptx rejected: %v", err)
	}
	err := ValidateExtension("slides.txt", "md", "markdown")
	if !errors.Is(err, apperr.ErrInvalidFormat) {
		t.Errorf("err = %v, want ErrInvalidFormat", err)
	}
	err = ValidateExtension("noext", "md")
	if !errors.Is(err, apperr.ErrInvalidFormat) {
		t.Errorf("err = %v, want ErrInvalidFormat", err)
	}
}

func TestIsMarkdownFile(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"a.md", true},
		{"dir/b.markdown", true},
		{"c.txt", false},
		{"d", false},
	}
	for _, c := range cases {
		if got := IsMarkdownFile(c.path); got != c.want {
			t.Errorf("IsMarkdownFile(%q) = %v, want %v", c.path, got, c.want)
		}
	}
}
