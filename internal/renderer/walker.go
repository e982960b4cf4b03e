package renderer

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Transform is an object's placement relative to its parent. Rotation holds
// Euler angles in degrees.
type Transform struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Vec3
	Scale       mgl32.Vec3
}

func IdentityTransform() Transform {
	return Transform{Scale: mgl32.Vec3{1, 1, 1}}
}

// Apply multiplies the transform onto the top of s as
// T * Rx * Ry * Rz * S.
func (t Transform) Apply(s *TransformStack) {
	s.Translate(t.Translation)
	if t.Rotation.X() != 0 {
		s.RotateX(t.Rotation.X())
	}
	if t.Rotation.Y() != 0 {
		s.RotateY(t.Rotation.Y())
	}
	if t.Rotation.Z() != 0 {
		s.RotateZ(t.Rotation.Z())
	}
	s.Scale(t.Scale)
}

// Matrix returns the single matrix Apply multiplies onto the stack.
func (t Transform) Matrix() mgl32.Mat4 {
	return mgl32.Translate3D(t.Translation.X(), t.Translation.Y(), t.Translation.Z()).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(t.Rotation.X()))).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(t.Rotation.Y()))).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(t.Rotation.Z()))).
		Mul4(mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z()))
}

// SceneObject is one drawable prop.
type SceneObject struct {
	Name      string
	Material  *Material
	Transform Transform
	Mesh      MeshHandle
}

// Walker draws a fixed list of scene objects through a TransformStack that
// the caller has already loaded with the view matrix.
type Walker struct {
	stack *TransformStack
}

func NewWalker(stack *TransformStack) *Walker {
	return &Walker{stack: stack}
}

// Walk draws objects in list order. Each object is bracketed by its own
// push/pop, so the stack is balanced on return even when a draw fails. The
// first error stops the traversal.
func (w *Walker) Walk(objects []SceneObject, sink UniformSink, drawer MeshDrawer, mode FillMode) error {
	for i := range objects {
		if err := w.drawObject(&objects[i], sink, drawer, mode); err != nil {
			return fmt.Errorf("object %q: %w", objects[i].Name, err)
		}
	}
	return nil
}

func (w *Walker) drawObject(obj *SceneObject, sink UniformSink, drawer MeshDrawer, mode FillMode) (err error) {
	w.stack.Push()
	defer func() {
		if perr := w.stack.Pop(); perr != nil && err == nil {
			err = perr
		}
	}()

	obj.Transform.Apply(w.stack)

	modelView := w.stack.Current()
	if err := UploadMaterial(sink, obj.Material); err != nil {
		return err
	}
	sink.SetMat4(UniformModelView, modelView)
	sink.SetMat4(UniformNormals, NormalMatrix4(modelView))

	return drawer.Draw(obj.Mesh, mode)
}
