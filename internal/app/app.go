// Package app wires the scene, the pointer, the asset load and the overlays into one
// per-frame update/draw pair for graphics.Run.
package app

import (
	"context"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/JuniorAww/junioraww.github.io/internal/asset"
	"github.com/JuniorAww/junioraww.github.io/internal/character"
	"github.com/JuniorAww/junioraww.github.io/internal/commands"
	"github.com/JuniorAww/junioraww.github.io/internal/config"
	"github.com/JuniorAww/junioraww.github.io/internal/debug"
	"github.com/JuniorAww/junioraww.github.io/internal/fonts"
	"github.com/JuniorAww/junioraww.github.io/internal/graphics"
	"github.com/JuniorAww/junioraww.github.io/internal/logger"
	"github.com/JuniorAww/junioraww.github.io/internal/pointer"
	"github.com/JuniorAww/junioraww.github.io/internal/scene"
	"github.com/JuniorAww/junioraww.github.io/internal/terminal"
)

// App owns everything that lives for the lifetime of the window. All methods run on the
// main thread; the only other goroutine is the asset fetch, reached through Pending.
type App struct {
	prefs   config.Prefs
	cfgPath string
	log     *logger.Logger

	scene   *scene.Scene
	tracker *pointer.Tracker
	pending *asset.Pending
	actor   character.Actor
	term    *terminal.Terminal
	overlay *debug.Debug
	font    rl.Font

	ctx    context.Context
	cancel context.CancelFunc

	mouse         rl.Vector2
	width, height int
}

// New builds the app and starts fetching the model. prefs must be valid.
// cfgPath is where "cmd save" writes.
func New(prefs config.Prefs, cfgPath string, log *logger.Logger) *App {
	ctx, cancel := context.WithCancel(context.Background())
	sc := scene.New(prefs)
	a := &App{
		prefs:   prefs,
		cfgPath: cfgPath,
		log:     log,
		scene:   sc,
		tracker: pointer.NewTracker(sc.Camera, sc.Ground),
		actor:   character.Absent{},
		overlay: debug.New(),
		ctx:     ctx,
		cancel:  cancel,
	}
	a.overlay.ShowFPS = prefs.Render.ShowFPS
	a.overlay.ShowMemAlloc = prefs.Render.ShowMemAlloc
	a.overlay.Status = func() string { return a.actor.Status() }

	reg := commands.NewRegistry()
	a.registerCommands(reg)
	a.term = terminal.New(log, reg)

	a.fetch()
	return a
}

// Window returns the graphics options for prefs, with resize routed to the scene.
func (a *App) Window() graphics.Options {
	w := a.prefs.Window
	return graphics.Options{
		Width:      w.Width,
		Height:     w.Height,
		Title:      w.Title,
		Fullscreen: w.Fullscreen,
		TargetFPS:  w.TargetFPS,
		OnInit:     a.Init,
		OnResize:   a.Resize,
		OnClose:    a.Close,
	}
}

// Init loads GPU resources that need an open window. Today that is only the overlay font.
func (a *App) Init() {
	name := a.prefs.Render.Font
	if name == "" {
		return
	}
	path, err := fonts.Find(name, fonts.BaseDirs())
	if err != nil {
		a.log.Errorf("font: %v", err)
		return
	}
	f := rl.LoadFont(path)
	if f.Texture.ID == 0 {
		a.log.Errorf("font: cannot load %s", path)
		return
	}
	a.font = f
	a.term.SetFont(f)
	a.overlay.SetFont(f)
	a.log.Logf("font %s", path)
}

func (a *App) fetch() {
	a.log.Logf("loading %s", a.prefs.Asset.Path)
	a.pending = asset.Fetch(a.ctx, a.prefs.Asset.Path, a.prefs.Asset.Clips)
}

// pollAsset spawns the character once the background fetch finishes. Failures are
// logged and leave the scene empty; there is no retry.
func (a *App) pollAsset() {
	if a.pending == nil {
		return
	}
	res, ok := a.pending.Poll()
	if !ok {
		return
	}
	a.pending = nil
	if len(res.Info.Clips) > 0 {
		a.log.Logf("available animations: %s", strings.Join(res.Info.Names(), ", "))
	}
	if res.Err != nil {
		a.log.Errorf("model load: %v", res.Err)
		return
	}
	c, err := character.Spawn(res, a.characterOptions())
	if err != nil {
		a.log.Errorf("model load: %v", err)
		return
	}
	a.actor.Unload()
	a.actor = c
	a.log.Logf("spawned %s", res.Info.Path)
}

func (a *App) characterOptions() character.Options {
	return character.Options{
		Scale:  a.prefs.Asset.Scale,
		Params: a.prefs.MotionParams(),
		Lit:    a.prefs.Render.Shading == config.ShadingLit,
		Color:  scene.Color(a.prefs.Render.FlatColor),
		Lights: a.scene.Lights,
	}
}

// Resize recomputes the camera for a new framebuffer size.
func (a *App) Resize(width, height int) {
	a.width, a.height = width, height
	a.scene.Resize(width, height)
}

// Update runs one frame: terminal input, asset completion, pointer picking, then the
// character controller.
func (a *App) Update(dt float32) {
	a.term.Update()
	a.pollAsset()
	if !a.term.IsOpen() {
		if m := rl.GetMousePosition(); m != a.mouse {
			a.mouse = m
			a.tracker.Move(m.X, m.Y, a.width, a.height)
		}
	}
	a.actor.Update(a.tracker.Target(), dt)
}

// Draw renders the scene, then the overlays on top.
func (a *App) Draw() {
	a.scene.Draw(a.tracker.Target(), a.actor)
	a.overlay.Draw()
	a.term.Draw()
}

// Close cancels an unfinished fetch and frees the character and the font.
func (a *App) Close() {
	a.cancel()
	a.actor.Unload()
	a.actor = character.Absent{}
	if a.font.Texture.ID != 0 {
		a.term.SetFont(rl.Font{})
		a.overlay.SetFont(rl.Font{})
		rl.UnloadFont(a.font)
		a.font = rl.Font{}
	}
}

// apply swaps in validated prefs and pushes them to every component that caches them.
func (a *App) apply(next config.Prefs) error {
	if err := next.Validate(); err != nil {
		return err
	}
	a.prefs = next
	a.scene.GridVisible = next.Render.GridVisible
	a.scene.ShowTarget = next.Render.ShowTarget
	a.overlay.ShowFPS = next.Render.ShowFPS
	a.overlay.ShowMemAlloc = next.Render.ShowMemAlloc
	if c, ok := a.actor.(*character.Character); ok {
		c.SetParams(next.MotionParams())
		c.SetLit(next.Render.Shading == config.ShadingLit)
	}
	return nil
}
