package renderer

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

var ErrTooManyLights = errors.New("too many lights for the shader light array")

// UploadLights writes uNLights and then every field of every light, in list
// order, to sink. Disabled lights are written too; skipping them is the
// shader's job. Spot apertures are converted from degrees to radians here and
// nowhere else. More than MaxLights lights is rejected before anything is
// written.
func UploadLights(sink UniformSink, lights []Light) error {
	if len(lights) > MaxLights {
		return fmt.Errorf("%w: got %d, capacity %d", ErrTooManyLights, len(lights), MaxLights)
	}

	for i, l := range lights {
		if l == nil {
			return fmt.Errorf("light %d is nil", i)
		}
	}

	sink.SetInt(UniformNLights, int32(len(lights)))
	for i, l := range lights {
		uploadLight(sink, i, l)
	}
	return nil
}

func uploadLight(sink UniformSink, i int, l Light) {
	var (
		position mgl32.Vec4
		axis     mgl32.Vec3
		aperture float32
		cutoff   = NoFalloff
	)
	switch v := l.(type) {
	case *PointLight:
		position = v.Position.Vec4(1)
	case *DirectionalLight:
		// w=0 marks a direction; the shader reads it as a vector toward the light.
		position = v.Direction.Mul(-1).Vec4(0)
		axis = v.Direction
	case *SpotLight:
		position = v.Position.Vec4(1)
		axis = v.Axis
		aperture = mgl32.DegToRad(v.Aperture)
		cutoff = v.Cutoff
	}

	base := l.Base()
	enabled := int32(0)
	if base.Enabled {
		enabled = 1
	}

	sink.SetInt(LightUniform(i, LightFieldType), int32(l.Kind()))
	sink.SetInt(LightUniform(i, LightFieldEnabled), enabled)
	sink.SetVec3(LightUniform(i, LightFieldAmbient), base.Ambient)
	sink.SetVec3(LightUniform(i, LightFieldDiffuse), base.Diffuse)
	sink.SetVec3(LightUniform(i, LightFieldSpecular), base.Specular)
	sink.SetVec4(LightUniform(i, LightFieldPosition), position)
	sink.SetVec3(LightUniform(i, LightFieldAxis), axis)
	sink.SetFloat(LightUniform(i, LightFieldAperture), aperture)
	sink.SetFloat(LightUniform(i, LightFieldCutoff), cutoff)
}

// UploadMaterial writes the uMaterial block. Call it right before the draw of
// the object it belongs to; the next object's upload overwrites it.
func UploadMaterial(sink UniformSink, m *Material) error {
	if err := m.Validate(); err != nil {
		return err
	}
	sink.SetVec3(UniformMaterialKa, m.Ambient)
	sink.SetVec3(UniformMaterialKd, m.Diffuse)
	sink.SetVec3(UniformMaterialKs, m.Specular)
	sink.SetFloat(UniformMaterialShininess, m.Shininess)
	return nil
}
