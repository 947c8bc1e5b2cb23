// Package motion moves the character toward the pointer target and picks its gait.
// Step is pure: state goes in, the next state comes out, nothing touches the renderer.
package motion

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/JuniorAww/junioraww.github.io/internal/anim"
)

// hysteresis widens the idle->walk threshold while the character is stopped.
const hysteresis = 1

// Gait is the locomotion state.
type Gait int

const (
	Idle Gait = iota
	Walk
	Run
)

// String returns the symbolic clip name for the gait.
func (g Gait) String() string {
	switch g {
	case Walk:
		return anim.Walk
	case Run:
		return anim.Run
	default:
		return anim.Idle
	}
}

// Params are the tunable thresholds (world units), speeds (units/sec), turn smoothing
// (slerp factor per frame) and cross-fade duration (seconds).
type Params struct {
	WalkThreshold float32
	RunThreshold  float32
	WalkSpeed     float32
	RunSpeed      float32
	TurnFactor    float32
	Fade          float32
}

// DefaultParams returns the fox's tuning.
func DefaultParams() Params {
	return Params{
		WalkThreshold: 3,
		RunThreshold:  6,
		WalkSpeed:     5,
		RunSpeed:      10,
		TurnFactor:    0.1,
		Fade:          0.2,
	}
}

// Select picks the gait for distance d. stopped is whether the character was idle on the
// previous frame; the returned flag is the new value.
func Select(p Params, d float32, stopped bool) (g Gait, speed float32, nowStopped bool) {
	offset := float32(0)
	if stopped {
		offset = hysteresis
	}
	switch {
	case d > p.RunThreshold:
		return Run, p.RunSpeed, false
	case d > p.WalkThreshold+offset:
		return Walk, p.WalkSpeed, false
	default:
		return Idle, 0, true
	}
}

// State is everything the controller carries between frames.
type State struct {
	Position    mgl32.Vec3
	Orientation mgl32.Quat
	Gait        Gait
	Stopped     bool
	Anim        anim.Player
}

// NewState places an idle character at position, facing +Z, playing idle.
func NewState(position mgl32.Vec3, idle anim.Clip) State {
	return State{
		Position:    position,
		Orientation: mgl32.QuatIdent(),
		Gait:        Idle,
		Anim:        anim.NewPlayer(idle),
	}
}

// Controller advances a State one frame at a time.
type Controller struct {
	Params Params
	Clips  anim.ClipSet
}

// Step runs one frame: pick a gait from the 3D distance to target, cross-fade when it
// changes, move and turn toward target, then advance the animation clock by dt.
func (c Controller) Step(s State, target mgl32.Vec3, dt float32) State {
	d := target.Sub(s.Position).Len()
	gait, speed, stopped := Select(c.Params, d, s.Stopped)
	s.Stopped = stopped

	if gait != s.Gait {
		if clip, ok := c.Clips.Clip(gait.String()); ok {
			s.Anim = s.Anim.CrossFade(clip, c.Params.Fade)
		}
		s.Gait = gait
	}

	if speed > 0 {
		dir := target.Sub(s.Position).Normalize()
		s.Position = s.Position.Add(dir.Mul(speed * dt))
		flat := mgl32.Vec3{target.X(), 0, target.Z()}
		desired := LookRotation(s.Position, flat)
		s.Orientation = Turn(s.Orientation, desired, c.Params.TurnFactor)
	}

	s.Anim = s.Anim.Advance(dt)
	return s
}
