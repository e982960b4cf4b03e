package renderer

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Uniform names shared with the shaders in shaders.go. They must match the
// GLSL declarations exactly.
const (
	UniformModelView  = "mModelView"
	UniformNormals    = "mNormals"
	UniformProjection = "mProjection"
	UniformView       = "mView"
	UniformNLights    = "uNLights"

	UniformMaterialKa        = "uMaterial.Ka"
	UniformMaterialKd        = "uMaterial.Kd"
	UniformMaterialKs        = "uMaterial.Ks"
	UniformMaterialShininess = "uMaterial.shininess"
)

// Per-light fields of uLights[i].
const (
	LightFieldType     = "type"
	LightFieldEnabled  = "enabled"
	LightFieldAmbient  = "ambient"
	LightFieldDiffuse  = "diffuse"
	LightFieldSpecular = "specular"
	LightFieldPosition = "position"
	LightFieldAxis     = "axis"
	LightFieldAperture = "aperture"
	LightFieldCutoff   = "cutoff"
)

// LightUniform returns the name of field of uLights[index].
func LightUniform(index int, field string) string {
	return fmt.Sprintf("uLights[%d].%s", index, field)
}

// UniformSink receives shader uniform uploads. Program selection is the
// sink's concern; every call writes into the currently bound program.
type UniformSink interface {
	SetMat4(name string, value mgl32.Mat4)
	SetVec3(name string, value mgl32.Vec3)
	SetVec4(name string, value mgl32.Vec4)
	SetFloat(name string, value float32)
	SetInt(name string, value int32)
}
