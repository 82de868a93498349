// Package storage handles markdown discovery and output writing on the
// local filesystem.
package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/starford/sowilo/internal/apperr"
)

var markdownExtensions = []string{".md", ".markdown"}

// IsMarkdownFile reports whether path has a markdown extension.
func IsMarkdownFile(path string) bool {
	ext := filepath.Ext(path)
	for _, e := range markdownExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// FindMarkdownFiles lists the markdown files in dir, sorted by path. With
// recursive set the whole tree below dir is searched.
func FindMarkdownFiles(dir string, recursive bool) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", apperr.ErrFileNotFound, dir)
		}
		return nil, fmt.Errorf("storage: stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: path %s is not a directory", apperr.ErrConfiguration, dir)
	}

	var files []string
	if recursive {
		err = filepath.WalkDir(dir, func(p string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if !d.IsDir() && IsMarkdownFile(p) {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("storage: walk %s: %w", dir, err)
		}
	} else {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("storage: read dir %s: %w", dir, err)
		}
		for _, entry := range entries {
			if !entry.IsDir() && IsMarkdownFile(entry.Name()) {
				files = append(files, filepath.Join(dir, entry.Name()))
			}
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no markdown files found in directory: %s", apperr.ErrConfiguration, dir)
	}
	sort.Strings(files)
	return files, nil
}

// ReadFile loads a source file.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", apperr.ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("storage: read %s: %w", path, err)
	}
	return data, nil
}

// WriteFile atomically writes data: tmp file → fsync → rename. Parent
// directories are created as needed.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: mkdir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".sowilo-tmp-*")
	if err != nil {
		return fmt.Errorf("storage: create temp: %w", err)
	}
	tmpName := tmp.Name()

	// Clean up on any failure path.
	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("storage: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("storage: fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: close temp: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("storage: rename: %w", err)
	}
	success = true
	return nil
}

// ValidateExtension checks that path carries one of the allowed extensions,
// given without the leading dot.
func ValidateExtension(path string, allowed ...string) error {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return fmt.Errorf("%w: file %s has no extension, expected .%s", apperr.ErrInvalidFormat, path, strings.Join(allowed, " or ."))
	}
	for _, a := range allowed {
		if ext == a {
			return nil
		}
	}
	return fmt.Errorf("%w: expected .%s file, got .%s", apperr.ErrInvalidFormat, strings.Join(allowed, " or ."), ext)
}
