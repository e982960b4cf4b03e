// camera.go
package renderer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	minFovy  = 1.0
	maxFovy  = 100.0
	maxPitch = 89.0
)

// Camera is a look-at camera. View and projection are derived from the
// current fields on every call; nothing is cached, so edits between frames
// always take effect.
type Camera struct {
	Eye  mgl32.Vec3
	At   mgl32.Vec3
	Up   mgl32.Vec3
	Fovy float32 // Vertical field of view in degrees
	Near float32
	Far  float32

	// COLD DATA - input handling
	Sensitivity float32 // Degrees of orbit per pixel of mouse drag
}

func NewDefaultCamera() *Camera {
	return &Camera{
		Eye:         mgl32.Vec3{0, 5, 10},
		At:          mgl32.Vec3{0, 0, 0},
		Up:          mgl32.Vec3{0, 1, 0},
		Fovy:        45,
		Near:        0.1,
		Far:         40,
		Sensitivity: 0.3,
	}
}

func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye, c.At, c.Up)
}

func (c *Camera) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.Fovy), aspect, c.Near, c.Far)
}

// Orbit rotates the eye around At by yaw degrees about Up and pitch degrees
// about the camera's right axis, keeping the distance to At. Pitch stops
// short of the poles so the view never flips.
func (c *Camera) Orbit(yaw, pitch float32) {
	offset := c.Eye.Sub(c.At)
	radius := offset.Len()
	if radius == 0 {
		return
	}

	up := c.Up.Normalize()
	// Current elevation of the eye above the plane perpendicular to Up.
	elevation := mgl32.RadToDeg(float32(math.Asin(float64(mgl32.Clamp(offset.Normalize().Dot(up), -1, 1)))))
	target := mgl32.Clamp(elevation+pitch, -maxPitch, maxPitch)
	pitch = target - elevation

	rot := mgl32.QuatRotate(mgl32.DegToRad(yaw), up)
	if right := up.Cross(offset); right.Len() > 1e-6 {
		rot = rot.Mul(mgl32.QuatRotate(mgl32.DegToRad(-pitch), right.Normalize()))
	}

	c.Eye = c.At.Add(rot.Rotate(offset))
}

// ProcessMouseDrag orbits by a mouse delta in pixels.
func (c *Camera) ProcessMouseDrag(dx, dy float32) {
	c.Orbit(-dx*c.Sensitivity, dy*c.Sensitivity)
}

// Zoom narrows (positive delta) or widens the field of view.
func (c *Camera) Zoom(delta float32) {
	c.Fovy = mgl32.Clamp(c.Fovy-delta, minFovy, maxFovy)
}
