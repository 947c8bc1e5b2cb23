// Package pointer turns cursor positions into a world-space target on the ground plane.
package pointer

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/JuniorAww/junioraww.github.io/internal/camera"
)

const parallelEpsilon = 1e-6

// Plane is a square, one-sided surface. Only rays hitting the side Normal points to count.
type Plane struct {
	Center     mgl32.Vec3
	Normal     mgl32.Vec3
	HalfExtent float32
}

// Ground returns a horizontal size x size plane at Y=0 facing up.
func Ground(size float32) Plane {
	return Plane{Normal: mgl32.Vec3{0, 1, 0}, HalfExtent: size / 2}
}

// Intersect returns where ray meets the plane. It misses when the ray is parallel,
// approaches from the back, points away, lands outside the square or is not finite.
func (p Plane) Intersect(ray camera.Ray) (mgl32.Vec3, bool) {
	denom := p.Normal.Dot(ray.Direction)
	if math32.Abs(denom) < parallelEpsilon || denom > 0 {
		return mgl32.Vec3{}, false
	}
	t := p.Normal.Dot(p.Center.Sub(ray.Origin)) / denom
	if t < 0 || !finite(t) {
		return mgl32.Vec3{}, false
	}
	hit := ray.At(t)
	if !finite(hit.X()) || !finite(hit.Y()) || !finite(hit.Z()) {
		return mgl32.Vec3{}, false
	}
	if p.HalfExtent > 0 {
		off := hit.Sub(p.Center)
		// In-plane offset; the normal component is ~0 by construction.
		off = off.Sub(p.Normal.Mul(off.Dot(p.Normal)))
		u, v := planeAxes(p.Normal)
		if math32.Abs(off.Dot(u)) > p.HalfExtent || math32.Abs(off.Dot(v)) > p.HalfExtent {
			return mgl32.Vec3{}, false
		}
	}
	return hit, true
}

func finite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}

// planeAxes returns two unit vectors spanning the plane. For the ground plane these are X and Z.
func planeAxes(n mgl32.Vec3) (u, v mgl32.Vec3) {
	ref := mgl32.Vec3{1, 0, 0}
	if math32.Abs(n.X()) > 0.9 {
		ref = mgl32.Vec3{0, 0, 1}
	}
	v = n.Cross(ref).Normalize()
	u = v.Cross(n).Normalize()
	return u, v
}

// Tracker owns the shared target point. Each Move either overwrites it with the new
// ground hit or leaves it as it was.
type Tracker struct {
	cam    *camera.Ortho
	plane  Plane
	target mgl32.Vec3
}

// NewTracker returns a tracker picking against plane through cam. The target starts at the origin.
func NewTracker(cam *camera.Ortho, plane Plane) *Tracker {
	return &Tracker{cam: cam, plane: plane}
}

// Target is the last ground point the pointer hit.
func (t *Tracker) Target() mgl32.Vec3 {
	return t.target
}

// Move handles a pointer move to screen position (x, y) in a width x height viewport.
// It reports whether the target was updated.
func (t *Tracker) Move(x, y float32, width, height int) bool {
	nx, ny, ok := camera.NDC(x, y, width, height)
	if !ok {
		return false
	}
	return t.Cast(t.cam.Ray(nx, ny))
}

// Cast updates the target from an explicit ray.
func (t *Tracker) Cast(ray camera.Ray) bool {
	hit, ok := t.plane.Intersect(ray)
	if !ok {
		return false
	}
	t.target = hit
	return true
}
