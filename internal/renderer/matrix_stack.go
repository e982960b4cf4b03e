package renderer

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl32/matstack"
)

// ErrStackUnderflow is returned by Pop when only the base entry is left.
// It means a push/pop mismatch in the traversal that called it.
var ErrStackUnderflow = errors.New("transform stack underflow: pop without matching push")

// TransformStack holds the nested object-to-view transforms of a traversal.
// The base entry is always present; it is normally the camera's view matrix,
// seeded once per frame with Load.
type TransformStack struct {
	ms *matstack.MatStack
}

func NewTransformStack() *TransformStack {
	return &TransformStack{ms: matstack.NewMatStack()}
}

// Push duplicates the top. The new entry is a copy, mutating it never
// affects the entry below.
func (s *TransformStack) Push() {
	s.ms.Push()
}

// Pop discards the top. The base entry is never removed.
func (s *TransformStack) Pop() error {
	if s.Depth() <= 1 {
		return ErrStackUnderflow
	}
	return s.ms.Pop()
}

// Load replaces the top in place.
func (s *TransformStack) Load(m mgl32.Mat4) {
	s.ms.Load(m)
}

func (s *TransformStack) LoadIdentity() {
	s.ms.LoadIdent()
}

// Current returns a copy of the top matrix.
func (s *TransformStack) Current() mgl32.Mat4 {
	return s.ms.Peek()
}

// Depth is the number of entries, base included.
func (s *TransformStack) Depth() int {
	return len(*s.ms)
}

// Multiply sets top = top * m, so m applies closer to the object than
// everything already on the stack.
func (s *TransformStack) Multiply(m mgl32.Mat4) {
	s.ms.RightMul(m)
}

func (s *TransformStack) Translate(v mgl32.Vec3) {
	s.Multiply(mgl32.Translate3D(v.X(), v.Y(), v.Z()))
}

func (s *TransformStack) Scale(v mgl32.Vec3) {
	s.Multiply(mgl32.Scale3D(v.X(), v.Y(), v.Z()))
}

// RotateX rotates about the X axis by deg degrees.
func (s *TransformStack) RotateX(deg float32) {
	s.Multiply(mgl32.HomogRotate3DX(mgl32.DegToRad(deg)))
}

func (s *TransformStack) RotateY(deg float32) {
	s.Multiply(mgl32.HomogRotate3DY(mgl32.DegToRad(deg)))
}

func (s *TransformStack) RotateZ(deg float32) {
	s.Multiply(mgl32.HomogRotate3DZ(mgl32.DegToRad(deg)))
}

// MultMatrix is Multiply under the name the scene code uses for arbitrary
// matrices.
func (s *TransformStack) MultMatrix(m mgl32.Mat4) {
	s.Multiply(m)
}
