package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"

	"github.com/JuniorAww/junioraww.github.io/internal/anim"
	"github.com/JuniorAww/junioraww.github.io/internal/camera"
	"github.com/JuniorAww/junioraww.github.io/internal/env"
	"github.com/JuniorAww/junioraww.github.io/internal/motion"
)

// Path is the default config file, relative to the process working directory.
const Path = "config/portfolio.yaml"

// Shading modes for the character material.
const (
	ShadingFlat = "flat"
	ShadingLit  = "lit"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Prefs holds everything the viewer reads at startup. Runtime edits from the terminal
// go through Clone + Validate before they replace the live copy.
type Prefs struct {
	Window WindowPrefs `yaml:"window"`
	Camera CameraPrefs `yaml:"camera"`
	Asset  AssetPrefs  `yaml:"asset"`
	Motion MotionPrefs `yaml:"motion"`
	Render RenderPrefs `yaml:"render"`
	Lights LightPrefs  `yaml:"lights"`
	// GroundSize is the side length of the invisible pick plane.
	GroundSize float32 `yaml:"ground_size"`
}

// WindowPrefs size and title the window.
type WindowPrefs struct {
	Width      int32  `yaml:"width"`
	Height     int32  `yaml:"height"`
	Title      string `yaml:"title"`
	Fullscreen bool   `yaml:"fullscreen"`
	TargetFPS  int32  `yaml:"target_fps"`
}

// CameraPrefs place the orthographic camera. Zoom is half the visible height.
type CameraPrefs struct {
	Zoom     float32    `yaml:"zoom"`
	Position [3]float32 `yaml:"position,flow"`
	Target   [3]float32 `yaml:"target,flow"`
}

// AssetPrefs points at the animated model. Clips maps symbolic names (idle, walk, run)
// to the clip names inside the file.
type AssetPrefs struct {
	Path  string            `yaml:"path"`
	Scale float32           `yaml:"scale"`
	Clips map[string]string `yaml:"clips"`
}

// MotionPrefs mirror motion.Params.
type MotionPrefs struct {
	WalkThreshold float32 `yaml:"walk_threshold"`
	RunThreshold  float32 `yaml:"run_threshold"`
	WalkSpeed     float32 `yaml:"walk_speed"`
	RunSpeed      float32 `yaml:"run_speed"`
	TurnFactor    float32 `yaml:"turn_factor"`
	Fade          float32 `yaml:"fade"`
}

// RenderPrefs pick the character material, colors and overlays.
type RenderPrefs struct {
	Shading      string `yaml:"shading"`
	FlatColor    string `yaml:"flat_color"`
	Background   string `yaml:"background"`
	GridVisible  bool   `yaml:"grid_visible"`
	ShowTarget   bool   `yaml:"show_target"`
	ShowFPS      bool   `yaml:"show_fps"`
	ShowMemAlloc bool   `yaml:"show_memalloc"`
	// Font is a file path or a family name looked up under assets/fonts. Empty keeps raylib's default.
	Font string `yaml:"font,omitempty"`
}

// Light is a hex color and intensity; Position only matters for the directional light.
type Light struct {
	Color     string     `yaml:"color"`
	Intensity float32    `yaml:"intensity"`
	Position  [3]float32 `yaml:"position,flow,omitempty"`
}

// LightPrefs are the scene's ambient and directional lights.
type LightPrefs struct {
	Ambient     Light `yaml:"ambient"`
	Directional Light `yaml:"directional"`
}

// Default returns the fox scene: orthographic zoom 6, flat #21212a material, overlays off.
func Default() Prefs {
	m := motion.DefaultParams()
	return Prefs{
		Window: WindowPrefs{
			Width:     1280,
			Height:    720,
			Title:     "junioraww",
			TargetFPS: 60,
		},
		Camera: CameraPrefs{
			Zoom:     6,
			Position: [3]float32{0, 5, 5.77},
		},
		Asset: AssetPrefs{
			Path:  "fox.glb",
			Scale: 1,
			Clips: anim.DefaultNames(),
		},
		Motion: MotionPrefs{
			WalkThreshold: m.WalkThreshold,
			RunThreshold:  m.RunThreshold,
			WalkSpeed:     m.WalkSpeed,
			RunSpeed:      m.RunSpeed,
			TurnFactor:    m.TurnFactor,
			Fade:          m.Fade,
		},
		Render: RenderPrefs{
			Shading:    ShadingFlat,
			FlatColor:  "#21212a",
			Background: "#00000000",
		},
		Lights: LightPrefs{
			Ambient:     Light{Color: "#ffffff", Intensity: 0.7},
			Directional: Light{Color: "#ffffff", Intensity: 1, Position: [3]float32{5, 10, 7}},
		},
		GroundSize: 100,
	}
}

// Load reads prefs from path on top of Default(). A missing file is not an error.
// A file that does not parse or validate yields Default() and the error.
func Load(path string) (Prefs, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return p, nil
		}
		return p, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return p, nil
}

// Save writes prefs to path as YAML, creating the directory if needed.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Clone returns a deep copy, so edits to the copy never leak into p.
func (p Prefs) Clone() (Prefs, error) {
	var out Prefs
	if err := copier.CopyWithOption(&out, &p, copier.Option{DeepCopy: true}); err != nil {
		return Prefs{}, fmt.Errorf("config: clone: %w", err)
	}
	return out, nil
}

// MotionParams converts the motion section for the controller.
func (p Prefs) MotionParams() motion.Params {
	return motion.Params{
		WalkThreshold: p.Motion.WalkThreshold,
		RunThreshold:  p.Motion.RunThreshold,
		WalkSpeed:     p.Motion.WalkSpeed,
		RunSpeed:      p.Motion.RunSpeed,
		TurnFactor:    p.Motion.TurnFactor,
		Fade:          p.Motion.Fade,
	}
}

// Validate checks ranges and names. The returned error wraps ErrInvalid.
func (p Prefs) Validate() error {
	m := p.Motion
	switch {
	case m.WalkThreshold <= 0:
		return fmt.Errorf("%w: motion.walk_threshold must be positive", ErrInvalid)
	case m.RunThreshold <= m.WalkThreshold:
		return fmt.Errorf("%w: motion.run_threshold must exceed walk_threshold", ErrInvalid)
	case m.WalkSpeed <= 0 || m.RunSpeed <= 0:
		return fmt.Errorf("%w: motion speeds must be positive", ErrInvalid)
	case m.TurnFactor <= 0 || m.TurnFactor > 1:
		return fmt.Errorf("%w: motion.turn_factor must be in (0, 1]", ErrInvalid)
	case m.Fade < 0:
		return fmt.Errorf("%w: motion.fade must not be negative", ErrInvalid)
	case p.Camera.Zoom <= 0:
		return fmt.Errorf("%w: camera.zoom must be positive", ErrInvalid)
	case !camera.CanLook(vec3(p.Camera.Position), vec3(p.Camera.Target)):
		return fmt.Errorf("%w: camera must look from position to a different target, not straight along +Y", ErrInvalid)
	case p.Asset.Path == "":
		return fmt.Errorf("%w: asset.path is empty", ErrInvalid)
	case p.Asset.Scale <= 0:
		return fmt.Errorf("%w: asset.scale must be positive", ErrInvalid)
	case p.GroundSize <= 0:
		return fmt.Errorf("%w: ground_size must be positive", ErrInvalid)
	case p.Render.Shading != ShadingFlat && p.Render.Shading != ShadingLit:
		return fmt.Errorf("%w: render.shading %q (want flat or lit)", ErrInvalid, p.Render.Shading)
	}
	for _, key := range []string{anim.Idle, anim.Walk, anim.Run} {
		if p.Asset.Clips[key] == "" {
			return fmt.Errorf("%w: asset.clips.%s is empty", ErrInvalid, key)
		}
	}
	for name, c := range map[string]string{
		"render.flat_color":        p.Render.FlatColor,
		"render.background":        p.Render.Background,
		"lights.ambient.color":     p.Lights.Ambient.Color,
		"lights.directional.color": p.Lights.Directional.Color,
	} {
		if _, err := ParseColor(c); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalid, name, err)
		}
	}
	return nil
}

func vec3(v [3]float32) mgl32.Vec3 {
	return mgl32.Vec3{v[0], v[1], v[2]}
}

// ApplyEnv overrides a few fields from PORTFOLIO_* environment variables.
func (p *Prefs) ApplyEnv() {
	p.Asset.Path = env.String("PORTFOLIO_ASSET", p.Asset.Path)
	p.Render.Shading = env.String("PORTFOLIO_SHADING", p.Render.Shading)
	p.Render.ShowFPS = env.Bool("PORTFOLIO_SHOW_FPS", p.Render.ShowFPS)
	p.Window.Fullscreen = env.Bool("PORTFOLIO_FULLSCREEN", p.Window.Fullscreen)
}

// ParseColor parses #rrggbb or #rrggbbaa into RGBA bytes. Alpha defaults to 255.
func ParseColor(s string) ([4]uint8, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return [4]uint8{}, fmt.Errorf("color %q: want #rrggbb or #rrggbbaa", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return [4]uint8{}, fmt.Errorf("color %q: %w", s, err)
	}
	return [4]uint8{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}
