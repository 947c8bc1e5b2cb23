package fonts

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "Fira_Code", "FiraCode-Bold.ttf"))
	touch(t, filepath.Join(dir, "Inter.OTF"))
	touch(t, filepath.Join(dir, "readme.txt"))
	got, err := ScanDir(dir)
	if err != nil {
		t.Fatalf("ScanDir: %v", err)
	}
	if len(got) != 2 || got[0] != "Fira_Code/FiraCode-Bold.ttf" || got[1] != "Inter.OTF" {
		t.Fatalf("ScanDir = %q", got)
	}
	if got, err := ScanDir(filepath.Join(dir, "missing")); err != nil || len(got) != 0 {
		t.Fatalf("missing dir = %q, %v", got, err)
	}
}

func TestFindPrefersRegular(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "Fira_Code", "FiraCode-Bold.ttf"))
	touch(t, filepath.Join(dir, "Fira_Code", "FiraCode-Regular.ttf"))
	got, err := Find("fira code", []string{dir})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if filepath.Base(got) != "FiraCode-Regular.ttf" {
		t.Fatalf("Find = %q", got)
	}
}

func TestFindExistingPathAndMisses(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mono.ttf")
	touch(t, path)
	if got, err := Find(path, nil); err != nil || got != path {
		t.Fatalf("Find(path) = %q, %v", got, err)
	}
	if _, err := Find("Comic", []string{dir}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v; want ErrNotFound", err)
	}
	if _, err := Find("  ", []string{dir}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("blank search err = %v", err)
	}
}
