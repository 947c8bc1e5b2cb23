package env

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	in := `
# comment
PORTFOLIO_ASSET=models/fox.glb
export PORTFOLIO_SHOW_FPS="true"
QUOTED='single'
EMPTY=
`
	got, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := map[string]string{
		"PORTFOLIO_ASSET":    "models/fox.glb",
		"PORTFOLIO_SHOW_FPS": "true",
		"QUOTED":             "single",
		"EMPTY":              "",
	}
	if len(got) != len(want) {
		t.Fatalf("Parse = %v; want %v", got, want)
	}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("%s = %q; want %q", k, got[k], v)
		}
	}
}

func TestLoadKeepsExistingValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("ENV_TEST_A=file\nENV_TEST_B=file\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ENV_TEST_A", "shell")
	t.Setenv("ENV_TEST_B", "")
	os.Unsetenv("ENV_TEST_B")

	if err := Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := os.Getenv("ENV_TEST_A"); got != "shell" {
		t.Fatalf("ENV_TEST_A = %q; want shell", got)
	}
	if got := os.Getenv("ENV_TEST_B"); got != "file" {
		t.Fatalf("ENV_TEST_B = %q; want file", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if err := Load(filepath.Join(t.TempDir(), "nope.env")); err != nil {
		t.Fatalf("Load missing file: %v", err)
	}
}

func TestTypedGetters(t *testing.T) {
	t.Setenv("ENV_TEST_BOOL", "true")
	t.Setenv("ENV_TEST_BAD", "maybe")
	t.Setenv("ENV_TEST_STR", "  ")
	if !Bool("ENV_TEST_BOOL", false) {
		t.Fatal("Bool true not parsed")
	}
	if !Bool("ENV_TEST_BAD", true) {
		t.Fatal("Bool should fall back to default")
	}
	if got := String("ENV_TEST_STR", "def"); got != "def" {
		t.Fatalf("String = %q; want def", got)
	}
}
