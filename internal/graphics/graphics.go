package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Options configure the window.
type Options struct {
	Width      int32
	Height     int32
	Title      string
	Fullscreen bool
	TargetFPS  int32
	// OnInit runs once after the window opens, before the first frame. GPU resources
	// (fonts, shaders) can be created from here on.
	OnInit func()
	// OnResize runs on the first frame and whenever the framebuffer size changes.
	OnResize func(width, height int)
	// OnClose runs after the last frame, while the GPU context still exists.
	OnClose func()
}

// Run opens the window and drives the main loop. Each frame it calls update with the time
// since the previous frame, then draw between BeginDrawing and EndDrawing. draw owns
// clearing the screen. The loop ends when the window is closed.
func Run(opts Options, update func(dt float32), draw func()) {
	flags := uint32(rl.FlagWindowResizable | rl.FlagMsaa4xHint | rl.FlagWindowTransparent)
	if opts.Fullscreen {
		flags |= uint32(rl.FlagFullscreenMode)
	}
	rl.SetConfigFlags(flags)
	w, h := opts.Width, opts.Height
	rl.InitWindow(w, h, opts.Title)
	defer rl.CloseWindow()
	if opts.OnClose != nil {
		defer opts.OnClose()
	}
	if opts.Fullscreen {
		rl.SetWindowSize(rl.GetMonitorWidth(rl.GetCurrentMonitor()), rl.GetMonitorHeight(rl.GetCurrentMonitor()))
	}

	rl.SetExitKey(rl.KeyNull) // ESC toggles the terminal; close via the window button
	if opts.TargetFPS > 0 {
		rl.SetTargetFPS(opts.TargetFPS)
	}

	if opts.OnInit != nil {
		opts.OnInit()
	}
	if opts.OnResize != nil {
		opts.OnResize(rl.GetScreenWidth(), rl.GetScreenHeight())
	}
	for !rl.WindowShouldClose() {
		if opts.OnResize != nil && rl.IsWindowResized() {
			opts.OnResize(rl.GetScreenWidth(), rl.GetScreenHeight())
		}
		update(rl.GetFrameTime())

		rl.BeginDrawing()
		draw()
		rl.EndDrawing()
	}
}
