package character

import (
	"bytes"
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/JuniorAww/junioraww.github.io/internal/anim"
	"github.com/JuniorAww/junioraww.github.io/internal/asset"
	"github.com/JuniorAww/junioraww.github.io/internal/motion"
	"github.com/JuniorAww/junioraww.github.io/internal/shading"
)

// ErrLoad is returned when the renderer cannot build a model from the file.
var ErrLoad = errors.New("model load failed")

// Options configure a spawned character.
type Options struct {
	Scale  float32
	Params motion.Params
	Lit    bool
	Color  rl.Color
	Lights shading.Lights
}

// Character is a loaded, animated model following a target point.
type Character struct {
	model   rl.Model
	anims   []rl.ModelAnimation
	shaders shading.Set
	ctrl    motion.Controller
	state   motion.State
	target  mgl32.Vec3
	scale   float32
	lit     bool
	color   rl.Color
	lights  shading.Lights
}

// Spawn builds GPU resources for a fetched asset. It must run on the thread that owns
// the window. The character starts at the origin playing idle.
func Spawn(res asset.Result, opts Options) (*Character, error) {
	if res.Err != nil {
		return nil, res.Err
	}
	path := res.Info.Path
	model := rl.LoadModel(path)
	if !rl.IsModelValid(model) {
		return nil, fmt.Errorf("%w: %s", ErrLoad, path)
	}
	anims := rl.LoadModelAnimations(path)
	sampled := make([]anim.Sampled, len(anims))
	for i, a := range anims {
		sampled[i] = anim.Sampled{Name: clipName(a), Frames: int(a.FrameCount)}
	}
	clips, err := anim.Bind(res.Clips, sampled)
	if err != nil {
		if len(anims) > 0 {
			rl.UnloadModelAnimations(anims)
		}
		rl.UnloadModel(model)
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	idle, _ := clips.Clip(anim.Idle)

	c := &Character{
		model:  model,
		anims:  anims,
		ctrl:   motion.Controller{Params: opts.Params, Clips: clips},
		state:  motion.NewState(mgl32.Vec3{}, idle),
		scale:  opts.Scale,
		lit:    opts.Lit,
		color:  opts.Color,
		lights: opts.Lights,
	}
	if c.scale <= 0 {
		c.scale = 1
	}
	c.applyMaterial()
	return c, nil
}

// clipName decodes the NUL-padded animation name raylib copies from the file.
func clipName(a rl.ModelAnimation) string {
	name := a.Name[:]
	if i := bytes.IndexByte(name, 0); i >= 0 {
		name = name[:i]
	}
	return string(name)
}

func (c *Character) applyMaterial() {
	shader := c.shaders.Flat()
	if c.lit {
		shader = c.shaders.Lit()
	}
	shading.Apply(c.model, shader, c.color)
}

// SetParams swaps the motion tuning without touching the current state.
func (c *Character) SetParams(p motion.Params) {
	c.ctrl.Params = p
}

// SetLit switches between the flat and the lit material.
func (c *Character) SetLit(lit bool) {
	if c.lit == lit {
		return
	}
	c.lit = lit
	c.applyMaterial()
}

// State returns the controller state after the last Update.
func (c *Character) State() motion.State {
	return c.state
}

// Update runs the motion controller for one frame.
func (c *Character) Update(target mgl32.Vec3, dt float32) {
	c.target = target
	c.state = c.ctrl.Step(c.state, target, dt)
}

// Draw renders every animation layer with its blend weight as alpha, outgoing clip
// first, so a gait change dissolves over the fade instead of popping.
// Must be called between BeginMode3D and EndMode3D.
func (c *Character) Draw() {
	q := c.state.Orientation
	c.model.Transform = rl.QuaternionToMatrix(rl.NewQuaternion(q.V[0], q.V[1], q.V[2], q.W))
	if c.lit {
		shading.SetLights(c.shaders.Lit(), c.lights)
	}
	p := c.state.Position
	pos := rl.NewVector3(p.X(), p.Y(), p.Z())
	for _, layer := range c.state.Anim.Layers() {
		if layer.Weight <= 0 || layer.Clip.Index >= len(c.anims) {
			continue
		}
		rl.UpdateModelAnimation(c.model, c.anims[layer.Clip.Index], int32(layer.Frame()))
		rl.DrawModel(c.model, pos, c.scale, rl.Fade(rl.White, layer.Weight))
	}
}

// Status is a one-line summary for the debug overlay and the terminal.
func (c *Character) Status() string {
	p := c.state.Position
	d := c.target.Sub(p).Len()
	return fmt.Sprintf("%s d=%.2f pos=(%.2f, %.2f, %.2f)", c.state.Gait, d, p.X(), p.Y(), p.Z())
}

// Unload frees the model, its animations and shaders.
func (c *Character) Unload() {
	if len(c.anims) > 0 {
		rl.UnloadModelAnimations(c.anims)
		c.anims = nil
	}
	rl.UnloadModel(c.model)
	c.shaders.Unload()
}
