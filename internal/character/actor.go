// Package character puts the loaded fox on screen and drives it every frame.
package character

import "github.com/go-gl/mathgl/mgl32"

// Actor is whatever stands in the scene. Before a model loads (or after it fails to)
// the scene holds Absent, so the frame loop never checks for nil.
type Actor interface {
	Update(target mgl32.Vec3, dt float32)
	Draw()
	Status() string
	Unload()
}

// Absent is the actor used while no model is loaded. Every method is a no-op.
type Absent struct{}

func (Absent) Update(mgl32.Vec3, float32) {}
func (Absent) Draw()                      {}
func (Absent) Status() string             { return "no character" }
func (Absent) Unload()                    {}
