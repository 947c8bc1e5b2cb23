// Package camera holds the orthographic view used to draw the scene and to turn
// screen positions into world-space pick rays.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Ray is a half-line in world space. Direction is unit length.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// At returns the point t units along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Ortho is an orthographic camera. Zoom is half the visible height in world units;
// the visible width follows the viewport aspect ratio.
type Ortho struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3
	Zoom     float32
	Near     float32
	Far      float32
	aspect   float32
}

// NewOrtho returns a camera at position looking at target with +Y up and a square viewport.
// Near is negative so geometry slightly behind the eye is still visible.
func NewOrtho(zoom float32, position, target mgl32.Vec3) *Ortho {
	return &Ortho{
		Position: position,
		Target:   target,
		Up:       mgl32.Vec3{0, 1, 0},
		Zoom:     zoom,
		Near:     -100,
		Far:      1000,
		aspect:   1,
	}
}

// CanLook reports whether a camera at position can look at target with +Y up. It fails
// when the two points coincide or the view direction is parallel to up, where the
// camera basis and every pick ray would be NaN.
func CanLook(position, target mgl32.Vec3) bool {
	forward := target.Sub(position)
	if forward.Len() < 1e-6 {
		return false
	}
	return forward.Normalize().Cross(mgl32.Vec3{0, 1, 0}).Len() > 1e-6
}

// SetViewport recomputes the aspect ratio for a width x height viewport.
// Degenerate sizes are ignored and reported as false.
func (c *Ortho) SetViewport(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	c.aspect = float32(width) / float32(height)
	return true
}

// Aspect is width / height of the current viewport.
func (c *Ortho) Aspect() float32 {
	return c.aspect
}

// Bounds returns the frustum extents in view space.
func (c *Ortho) Bounds() (left, right, top, bottom float32) {
	return -c.Zoom * c.aspect, c.Zoom * c.aspect, c.Zoom, -c.Zoom
}

// Basis returns the camera's right, up and forward unit vectors in world space.
func (c *Ortho) Basis() (right, up, forward mgl32.Vec3) {
	forward = c.Target.Sub(c.Position).Normalize()
	right = forward.Cross(c.Up).Normalize()
	up = right.Cross(forward)
	return right, up, forward
}

// Ray returns the pick ray through normalized device coordinates (x, y in [-1, 1], +y up).
// All rays share the camera's forward direction and start on the near plane.
func (c *Ortho) Ray(ndcX, ndcY float32) Ray {
	right, up, forward := c.Basis()
	left, rgt, top, bottom := c.Bounds()
	halfW := (rgt - left) / 2
	halfH := (top - bottom) / 2
	origin := c.Position.
		Add(right.Mul(ndcX * halfW)).
		Add(up.Mul(ndcY * halfH)).
		Add(forward.Mul(c.Near))
	return Ray{Origin: origin, Direction: forward}
}

// NDC converts a screen position (pixels, origin top-left) into normalized device
// coordinates. ok is false for an empty viewport or non-finite input.
func NDC(x, y float32, width, height int) (nx, ny float32, ok bool) {
	if width <= 0 || height <= 0 {
		return 0, 0, false
	}
	nx = x/float32(width)*2 - 1
	ny = -(y/float32(height))*2 + 1
	if math32.IsNaN(nx) || math32.IsNaN(ny) || math32.IsInf(nx, 0) || math32.IsInf(ny, 0) {
		return 0, 0, false
	}
	return nx, ny, true
}
