package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/JuniorAww/junioraww.github.io/internal/camera"
	"github.com/JuniorAww/junioraww.github.io/internal/config"
	"github.com/JuniorAww/junioraww.github.io/internal/pointer"
	"github.com/JuniorAww/junioraww.github.io/internal/shading"
)

const (
	gridMinorStep  = 1
	gridMajorStep  = 10
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	axisLineAlpha  = 220
	markerRadius   = 0.15
)

var markerColor = rl.NewColor(230, 120, 40, 200)

// Drawable is anything rendered inside the 3D pass.
type Drawable interface {
	Draw()
}

// Scene holds the orthographic camera, the lights and the invisible ground plane the
// pointer picks against. The ground is never drawn; the grid only shows with GridVisible.
type Scene struct {
	Camera      *camera.Ortho
	Ground      pointer.Plane
	Lights      shading.Lights
	Background  rl.Color
	GridVisible bool
	ShowTarget  bool
}

// New builds the scene from prefs. Colors are assumed valid (config.Validate ran).
func New(p config.Prefs) *Scene {
	pos := p.Camera.Position
	tgt := p.Camera.Target
	s := &Scene{
		Camera: camera.NewOrtho(p.Camera.Zoom,
			mgl32.Vec3{pos[0], pos[1], pos[2]},
			mgl32.Vec3{tgt[0], tgt[1], tgt[2]}),
		Ground:      pointer.Ground(p.GroundSize),
		Lights:      Lights(p.Lights),
		Background:  Color(p.Render.Background),
		GridVisible: p.Render.GridVisible,
		ShowTarget:  p.Render.ShowTarget,
	}
	return s
}

// Lights converts the config lights into shader inputs. The directional light shines
// from its position toward the origin.
func Lights(l config.LightPrefs) shading.Lights {
	amb := Color(l.Ambient.Color)
	dl := Color(l.Directional.Color)
	dir := mgl32.Vec3{l.Directional.Position[0], l.Directional.Position[1], l.Directional.Position[2]}
	if dir.Len() == 0 {
		dir = mgl32.Vec3{0, 1, 0}
	}
	dir = dir.Normalize()
	ai := l.Ambient.Intensity
	return shading.Lights{
		Ambient:   [4]float32{float32(amb.R) / 255 * ai, float32(amb.G) / 255 * ai, float32(amb.B) / 255 * ai, 1},
		Color:     [3]float32{float32(dl.R) / 255, float32(dl.G) / 255, float32(dl.B) / 255},
		LightDir:  [3]float32{dir[0], dir[1], dir[2]},
		Intensity: l.Directional.Intensity,
	}
}

// Color converts a #rrggbb[aa] string; invalid input yields opaque black.
func Color(hex string) rl.Color {
	c, err := config.ParseColor(hex)
	if err != nil {
		return rl.Black
	}
	return rl.NewColor(c[0], c[1], c[2], c[3])
}

// Resize recomputes the camera aspect for the new framebuffer size.
func (s *Scene) Resize(width, height int) {
	s.Camera.SetViewport(width, height)
}

// RaylibCamera maps the orthographic camera onto raylib, where Fovy is the visible height.
func (s *Scene) RaylibCamera() rl.Camera3D {
	c := s.Camera
	return rl.Camera3D{
		Position:   rl.NewVector3(c.Position.X(), c.Position.Y(), c.Position.Z()),
		Target:     rl.NewVector3(c.Target.X(), c.Target.Y(), c.Target.Z()),
		Up:         rl.NewVector3(c.Up.X(), c.Up.Y(), c.Up.Z()),
		Fovy:       2 * c.Zoom,
		Projection: rl.CameraOrthographic,
	}
}

// Draw clears to the background and renders the 3D pass: grid, drawables, then the
// target marker. Call between BeginDrawing and EndDrawing, before 2D overlays.
func (s *Scene) Draw(target mgl32.Vec3, drawables ...Drawable) {
	rl.ClearBackground(s.Background)
	rl.BeginMode3D(s.RaylibCamera())
	if s.GridVisible {
		drawEditorGrid(int(s.Ground.HalfExtent))
	}
	for _, d := range drawables {
		d.Draw()
	}
	if s.ShowTarget {
		rl.DrawSphere(rl.NewVector3(target.X(), target.Y(), target.Z()), markerRadius, markerColor)
	}
	rl.EndMode3D()
}

// drawEditorGrid draws major/minor lines over the ground plane's extent plus X and Z axes.
// Reuses start/end vectors to avoid per-frame allocations in the hot loop.
func drawEditorGrid(extent int) {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)
	axisX := rl.NewColor(220, 80, 80, axisLineAlpha)
	axisZ := rl.NewColor(80, 80, 220, axisLineAlpha)

	var start, end rl.Vector3
	for i := -extent; i <= extent; i += gridMinorStep {
		c := major
		if i%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(i), 0, float32(-extent)
		end.X, end.Y, end.Z = float32(i), 0, float32(extent)
		rl.DrawLine3D(start, end, c)
		start.X, start.Z = float32(-extent), float32(i)
		end.X, end.Z = float32(extent), float32(i)
		rl.DrawLine3D(start, end, c)
	}

	start.X, start.Y, start.Z = float32(-extent), 0, 0
	end.X, end.Y, end.Z = float32(extent), 0, 0
	rl.DrawLine3D(start, end, axisX)
	start.X, start.Z = 0, float32(-extent)
	end.X, end.Z = 0, float32(extent)
	rl.DrawLine3D(start, end, axisZ)
}
