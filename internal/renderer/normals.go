package renderer

import "github.com/go-gl/mathgl/mgl32"

// NormalMatrix returns the inverse-transpose of the upper 3x3 of modelView.
// Normals transformed by it stay perpendicular to their surface under
// non-uniform scaling. A singular modelView yields the zero matrix.
func NormalMatrix(modelView mgl32.Mat4) mgl32.Mat3 {
	return modelView.Mat3().Inv().Transpose()
}

// NormalMatrix4 embeds NormalMatrix in a 4x4 with no translation, the layout
// the shading stage reads mNormals in.
func NormalMatrix4(modelView mgl32.Mat4) mgl32.Mat4 {
	return NormalMatrix(modelView).Mat4()
}
