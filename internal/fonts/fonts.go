package fonts

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned by Find when no font file matches.
var ErrNotFound = errors.New("font not found")

// Exts are the file extensions treated as fonts.
var Exts = []string{".ttf", ".otf"}

// BaseDirs returns the default font directories, relative to the process working directory.
func BaseDirs() []string {
	return []string{"assets/fonts", "../../assets/fonts"}
}

// ScanDir returns slash-separated paths of all font files under dir, relative to dir.
// A missing dir yields no paths and no error.
func ScanDir(dir string) ([]string, error) {
	var out []string
	dir = filepath.Clean(dir)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() || !isFont(path) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	return out, err
}

func isFont(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Exts {
		if ext == e {
			return true
		}
	}
	return false
}

// normalize lowercases and drops spaces, dashes and underscores so "Fira Code" matches "FiraCode-Regular.ttf".
func normalize(s string) string {
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(s))
}

// Find resolves search to a font file. An existing file path is returned as is; otherwise
// dirs are scanned for a file whose path contains search (normalized), preferring a
// "Regular" cut when several match.
func Find(search string, dirs []string) (string, error) {
	search = strings.TrimSpace(search)
	if search == "" {
		return "", ErrNotFound
	}
	if st, err := os.Stat(search); err == nil && !st.IsDir() {
		return search, nil
	}
	want := normalize(search)
	var matches []string
	for _, dir := range dirs {
		list, err := ScanDir(dir)
		if err != nil {
			continue
		}
		for _, rel := range list {
			if strings.Contains(normalize(rel), want) {
				matches = append(matches, filepath.Join(dir, filepath.FromSlash(rel)))
			}
		}
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("%w: %q", ErrNotFound, search)
	}
	for _, m := range matches {
		if strings.Contains(strings.ToLower(filepath.Base(m)), "regular") {
			return m, nil
		}
	}
	return matches[0], nil
}
