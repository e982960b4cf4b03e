package renderer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const matTol = 1e-5

// assertMatEqual compares element-wise with an absolute tolerance.
func assertMatEqual(t *testing.T, want, got mgl32.Mat4) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], matTol, "element %d: want\n%v\ngot\n%v", i, want, got)
	}
}

func assertMat3Equal(t *testing.T, want, got mgl32.Mat3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], matTol, "element %d: want\n%v\ngot\n%v", i, want, got)
	}
}

func TestNewTransformStack(t *testing.T) {
	s := NewTransformStack()

	assert.Equal(t, 1, s.Depth())
	assert.Equal(t, mgl32.Ident4(), s.Current())
}

func TestTransformStackBalance(t *testing.T) {
	s := NewTransformStack()
	s.Load(mgl32.LookAtV(mgl32.Vec3{0, 5, 10}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}))
	before := s.Current()

	const n = 6
	for i := 0; i < n; i++ {
		s.Push()
		s.Translate(mgl32.Vec3{float32(i), 1, -2})
		s.RotateY(float32(15 * i))
		s.Scale(mgl32.Vec3{2, 0.5, 1})
	}
	assert.Equal(t, n+1, s.Depth())

	for i := 0; i < n; i++ {
		require.NoError(t, s.Pop())
	}
	assert.Equal(t, before, s.Current())
	assert.Equal(t, 1, s.Depth())
}

func TestTransformStackPushCopies(t *testing.T) {
	s := NewTransformStack()
	s.Translate(mgl32.Vec3{1, 2, 3})
	base := s.Current()

	s.Push()
	s.Scale(mgl32.Vec3{4, 4, 4})
	require.NoError(t, s.Pop())

	assert.Equal(t, base, s.Current(), "mutating the pushed entry must not touch the one below")
}

func TestTransformStackUnderflow(t *testing.T) {
	s := NewTransformStack()
	view := mgl32.Translate3D(0, 0, -10)
	s.Load(view)

	err := s.Pop()

	assert.ErrorIs(t, err, ErrStackUnderflow)
	assert.Equal(t, 1, s.Depth())
	assert.Equal(t, view, s.Current())
}

func TestTransformStackUnderflowAfterBalancedUse(t *testing.T) {
	s := NewTransformStack()
	s.Push()
	require.NoError(t, s.Pop())

	assert.ErrorIs(t, s.Pop(), ErrStackUnderflow)
}

func TestTransformStackMultiplyComposes(t *testing.T) {
	a := mgl32.Translate3D(1, -2, 3).Mul4(mgl32.HomogRotate3DX(0.4))
	b := mgl32.Scale3D(2, 3, 4).Mul4(mgl32.HomogRotate3DZ(-1.1))

	s := NewTransformStack()
	s.Load(mgl32.Translate3D(0, 0, -5))

	s.Push()
	s.Multiply(a)
	s.Multiply(b)
	m1 := s.Current()
	require.NoError(t, s.Pop())

	s.Push()
	s.Multiply(a.Mul4(b))
	m2 := s.Current()
	require.NoError(t, s.Pop())

	assertMatEqual(t, m1, m2)
}

func TestTransformStackMultiplyIsRightSide(t *testing.T) {
	s := NewTransformStack()
	s.Translate(mgl32.Vec3{5, 0, 0})
	s.Scale(mgl32.Vec3{2, 2, 2})

	// The scale applies first, so the origin lands on the translation and
	// (1,0,0) lands at 5+2.
	p := s.Current().Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.InDelta(t, 7, p.X(), matTol)
}

func TestTransformStackLoadReplacesTop(t *testing.T) {
	s := NewTransformStack()
	s.Push()
	s.Translate(mgl32.Vec3{1, 1, 1})

	m := mgl32.Scale3D(3, 3, 3)
	s.Load(m)

	assert.Equal(t, m, s.Current())
	assert.Equal(t, 2, s.Depth())

	require.NoError(t, s.Pop())
	assert.Equal(t, mgl32.Ident4(), s.Current())
}

func TestTransformStackRotations(t *testing.T) {
	s := NewTransformStack()
	s.RotateZ(90)

	p := s.Current().Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.InDelta(t, 0, p.X(), matTol)
	assert.InDelta(t, 1, p.Y(), matTol)

	s.LoadIdentity()
	s.RotateX(90)
	p = s.Current().Mul4x1(mgl32.Vec4{0, 1, 0, 1})
	assert.InDelta(t, 1, p.Z(), matTol)

	s.LoadIdentity()
	s.RotateY(90)
	p = s.Current().Mul4x1(mgl32.Vec4{0, 0, 1, 1})
	assert.InDelta(t, 1, p.X(), matTol)
}

func TestTransformStackTranslateScaleScenario(t *testing.T) {
	s := NewTransformStack()
	s.Load(mgl32.Ident4())

	s.Push()
	s.Translate(mgl32.Vec3{2, 0, 2})
	s.Scale(mgl32.Vec3{10, 10, 10})

	want := mgl32.Mat4{
		10, 0, 0, 0,
		0, 10, 0, 0,
		0, 0, 10, 0,
		2, 0, 2, 1,
	}
	assertMatEqual(t, want, s.Current())

	require.NoError(t, s.Pop())
	assert.Equal(t, mgl32.Ident4(), s.Current())
}
