package renderer

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	ErrNoMaterial      = errors.New("scene object has no material")
	ErrInvalidMaterial = errors.New("material shininess must be positive")
)

// Material parameterizes the Phong reflection of one object.
type Material struct {
	Ambient   mgl32.Vec3 // Ka
	Diffuse   mgl32.Vec3 // Kd
	Specular  mgl32.Vec3 // Ks
	Shininess float32
}

// DefaultMaterial is a neutral white plastic.
var DefaultMaterial = Material{
	Ambient:   mgl32.Vec3{1, 1, 1},
	Diffuse:   mgl32.Vec3{1, 1, 1},
	Specular:  mgl32.Vec3{1, 1, 1},
	Shininess: 32,
}

// NewColoredMaterial uses color for ambient and diffuse reflectance with a
// white specular highlight.
func NewColoredMaterial(color mgl32.Vec3, shininess float32) *Material {
	return &Material{
		Ambient:   color,
		Diffuse:   color,
		Specular:  mgl32.Vec3{1, 1, 1},
		Shininess: shininess,
	}
}

func (m *Material) Validate() error {
	if m == nil {
		return ErrNoMaterial
	}
	if m.Shininess <= 0 {
		return ErrInvalidMaterial
	}
	return nil
}
