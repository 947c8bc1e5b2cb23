package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/JuniorAww/junioraww.github.io/internal/anim"
	"github.com/JuniorAww/junioraww.github.io/internal/motion"
)

func TestDefaultIsValid(t *testing.T) {
	p := Default()
	if err := p.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if p.MotionParams() != motion.DefaultParams() {
		t.Fatalf("motion params = %+v; want %+v", p.MotionParams(), motion.DefaultParams())
	}
	if p.Asset.Clips[anim.Run] != "Gallop" {
		t.Fatalf("run clip = %q", p.Asset.Clips[anim.Run])
	}
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Camera.Zoom != 6 {
		t.Fatalf("zoom = %v; want 6", p.Camera.Zoom)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	data := "motion:\n  run_speed: 12\nrender:\n  shading: lit\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Motion.RunSpeed != 12 || p.Render.Shading != ShadingLit {
		t.Fatalf("overrides not applied: %+v", p)
	}
	if p.Motion.WalkSpeed != 5 || p.Asset.Path != "fox.glb" {
		t.Fatalf("defaults lost: %+v", p)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	dir := t.TempDir()
	tcs := []struct {
		name, data string
		invalid    bool
	}{
		{"syntax", "motion: [", false},
		{"range", "motion:\n  run_threshold: 2\n", true},
		{"shading", "render:\n  shading: toon\n", true},
	}
	for _, tc := range tcs {
		path := filepath.Join(dir, tc.name+".yaml")
		if err := os.WriteFile(path, []byte(tc.data), 0644); err != nil {
			t.Fatal(err)
		}
		p, err := Load(path)
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		if errors.Is(err, ErrInvalid) != tc.invalid {
			t.Fatalf("%s: err = %v", tc.name, err)
		}
		if p.Motion.RunThreshold != 6 || p.Render.Shading != ShadingFlat {
			t.Fatalf("%s: did not fall back to defaults: %+v", tc.name, p)
		}
	}
}

func TestValidateRejectsDegenerateCamera(t *testing.T) {
	tcs := []struct {
		name     string
		position [3]float32
		target   [3]float32
	}{
		{"straight down", [3]float32{0, 5, 0}, [3]float32{0, 0, 0}},
		{"straight up", [3]float32{1, -5, 2}, [3]float32{1, 3, 2}},
		{"same point", [3]float32{2, 2, 2}, [3]float32{2, 2, 2}},
	}
	for _, tc := range tcs {
		p := Default()
		p.Camera.Position = tc.position
		p.Camera.Target = tc.target
		if err := p.Validate(); !errors.Is(err, ErrInvalid) {
			t.Fatalf("%s: Validate = %v; want ErrInvalid", tc.name, err)
		}
	}
	p := Default()
	p.Camera.Position = [3]float32{0, 5, 0.01}
	if err := p.Validate(); err != nil {
		t.Fatalf("slightly tilted camera rejected: %v", err)
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "portfolio.yaml")
	p := Default()
	p.Render.GridVisible = true
	p.Motion.TurnFactor = 0.25
	p.Asset.Clips[anim.Run] = "Run"
	if err := Save(path, p); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !got.Render.GridVisible || got.Motion.TurnFactor != 0.25 || got.Asset.Clips[anim.Run] != "Run" {
		t.Fatalf("saved prefs not restored: %+v", got)
	}
}

func TestCloneIsDeep(t *testing.T) {
	p := Default()
	c, err := p.Clone()
	if err != nil {
		t.Fatalf("Clone: %v", err)
	}
	c.Asset.Clips[anim.Idle] = "Sit"
	c.Motion.RunSpeed = 99
	if p.Asset.Clips[anim.Idle] != "Idle" || p.Motion.RunSpeed != 10 {
		t.Fatalf("clone shares state with original: %+v", p)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("PORTFOLIO_ASSET", "assets/other.glb")
	t.Setenv("PORTFOLIO_SHOW_FPS", "1")
	t.Setenv("PORTFOLIO_SHADING", "")
	p := Default()
	p.ApplyEnv()
	if p.Asset.Path != "assets/other.glb" || !p.Render.ShowFPS || p.Render.Shading != ShadingFlat {
		t.Fatalf("env not applied: %+v", p)
	}
}

func TestParseColor(t *testing.T) {
	tcs := []struct {
		in   string
		want [4]uint8
		ok   bool
	}{
		{"#21212a", [4]uint8{0x21, 0x21, 0x2a, 0xff}, true},
		{"00000000", [4]uint8{}, true},
		{"#ff000080", [4]uint8{0xff, 0, 0, 0x80}, true},
		{"#fff", [4]uint8{}, false},
		{"#gggggg", [4]uint8{}, false},
	}
	for _, tc := range tcs {
		got, err := ParseColor(tc.in)
		if (err == nil) != tc.ok || got != tc.want {
			t.Fatalf("ParseColor(%q) = %v, %v", tc.in, got, err)
		}
	}
}
