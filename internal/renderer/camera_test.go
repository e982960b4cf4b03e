package renderer

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewDefaultCamera(t *testing.T) {
	cam := NewDefaultCamera()

	if cam == nil {
		t.Fatal("NewDefaultCamera returned nil")
	}

	if cam.Eye != (mgl32.Vec3{0, 5, 10}) {
		t.Errorf("Expected eye (0,5,10), got %v", cam.Eye)
	}

	if cam.Fovy != 45 || cam.Near != 0.1 || cam.Far != 40 {
		t.Errorf("Unexpected projection defaults fovy=%v near=%v far=%v", cam.Fovy, cam.Near, cam.Far)
	}

	if cam.Sensitivity <= 0 {
		t.Error("Camera sensitivity should be positive")
	}
}

func TestCameraViewMatrixMapsEyeToOrigin(t *testing.T) {
	cam := NewDefaultCamera()

	eye := cam.ViewMatrix().Mul4x1(cam.Eye.Vec4(1))

	if eye.Vec3().Len() > 1e-5 {
		t.Errorf("Eye should map to the view origin, got %v", eye)
	}

	at := cam.ViewMatrix().Mul4x1(cam.At.Vec4(1))
	if at.Z() >= 0 {
		t.Errorf("Target should be in front of the camera (negative z), got %v", at)
	}
}

func TestCameraProjectionMatrix(t *testing.T) {
	cam := NewDefaultCamera()

	proj := cam.ProjectionMatrix(16.0 / 9.0)

	if proj.At(3, 3) != 0.0 {
		t.Error("Perspective projection should have w=0 at (3,3)")
	}

	if proj.At(3, 2) != -1.0 {
		t.Error("Perspective projection should copy -z into w")
	}
}

func TestCameraOrbitKeepsDistance(t *testing.T) {
	cam := NewDefaultCamera()
	before := cam.Eye.Sub(cam.At).Len()

	cam.Orbit(35, 20)

	after := cam.Eye.Sub(cam.At).Len()
	if math.Abs(float64(after-before)) > 1e-4 {
		t.Errorf("Orbit changed distance from %f to %f", before, after)
	}

	if cam.At != (mgl32.Vec3{}) {
		t.Error("Orbit must not move the target")
	}
}

func TestCameraOrbitYaw(t *testing.T) {
	cam := NewDefaultCamera()
	cam.Eye = mgl32.Vec3{0, 0, 10}

	cam.Orbit(90, 0)

	if math.Abs(float64(cam.Eye.X()-10)) > 1e-4 || math.Abs(float64(cam.Eye.Z())) > 1e-4 {
		t.Errorf("Expected eye near (10,0,0), got %v", cam.Eye)
	}
}

func TestCameraOrbitClampsPitch(t *testing.T) {
	cam := NewDefaultCamera()

	cam.Orbit(0, 500)

	offset := cam.Eye.Sub(cam.At).Normalize()
	elevation := mgl32.RadToDeg(float32(math.Asin(float64(offset.Y()))))
	if elevation > maxPitch+1e-3 {
		t.Errorf("Pitch should stop at %v degrees, got %v", maxPitch, elevation)
	}
	if math.IsNaN(float64(cam.Eye.X())) {
		t.Fatal("Orbit produced NaN")
	}
}

func TestCameraZoom(t *testing.T) {
	cam := NewDefaultCamera()

	cam.Zoom(5)
	if cam.Fovy != 40 {
		t.Errorf("Expected fovy 40, got %v", cam.Fovy)
	}

	cam.Zoom(1000)
	if cam.Fovy != minFovy {
		t.Errorf("Expected fovy clamped to %v, got %v", minFovy, cam.Fovy)
	}

	cam.Zoom(-1000)
	if cam.Fovy != maxFovy {
		t.Errorf("Expected fovy clamped to %v, got %v", maxFovy, cam.Fovy)
	}
}
