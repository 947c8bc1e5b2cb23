package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh overlay text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug draws runtime overlays in the top-right corner. All are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	// Status, when set, is shown as an extra line (e.g. the character's gait and distance).
	Status func() string

	font       rl.Font // optional; zero means raylib's default font
	frameCount uint32
	fpsText    string
	memText    string
	statusText string
	memStats   runtime.MemStats
}

// New returns a Debug with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetFont draws overlay text with f instead of the default font. Pass rl.Font{} to reset.
func (d *Debug) SetFont(f rl.Font) {
	d.font = f
}

// Enabled reports whether any overlay is visible.
func (d *Debug) Enabled() bool {
	return d.ShowFPS || d.ShowMemAlloc
}

// Draw renders the enabled overlays. Call after the 3D pass.
// The status line follows ShowFPS so it never shows on its own.
func (d *Debug) Draw() {
	if !d.Enabled() {
		return
	}
	d.frameCount++
	refresh := d.frameCount%updateInterval == 0 ||
		(d.ShowFPS && d.fpsText == "") ||
		(d.ShowMemAlloc && d.memText == "")

	if refresh {
		d.fpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		runtime.ReadMemStats(&d.memStats)
		d.memText = fmt.Sprintf("Mem: %.2f MiB", float64(d.memStats.Alloc)/(1024*1024))
	}
	if d.Status != nil {
		// Status changes every frame; it is cheap compared with MemStats.
		d.statusText = d.Status()
	}

	y := int32(padding)
	if d.ShowFPS {
		d.drawRight(d.fpsText, y)
		y += lineHeight
		if d.statusText != "" {
			d.drawRight(d.statusText, y)
			y += lineHeight
		}
	}
	if d.ShowMemAlloc {
		d.drawRight(d.memText, y)
	}
}

func (d *Debug) drawRight(text string, y int32) {
	if text == "" {
		return
	}
	screenW := int32(rl.GetScreenWidth())
	if d.font.Texture.ID != 0 {
		sz := float32(fontSize)
		pos := rl.NewVector2(float32(screenW)-rl.MeasureTextEx(d.font, text, sz, 1).X-padding, float32(y))
		rl.DrawTextEx(d.font, text, pos, sz, 1, rl.Green)
		return
	}
	x := screenW - rl.MeasureText(text, fontSize) - padding
	rl.DrawText(text, x, y, fontSize, rl.Green)
}
