package renderer

import "github.com/go-gl/mathgl/mgl32"

// MaxLights is the capacity of the uLights array in the fragment shader.
const MaxLights = 8

// LightKind is uploaded as uLights[i].type.
type LightKind int32

const (
	PointKind LightKind = iota
	DirectionalKind
	SpotKind
)

func (k LightKind) String() string {
	switch k {
	case PointKind:
		return "point"
	case DirectionalKind:
		return "directional"
	case SpotKind:
		return "spot"
	}
	return "unknown"
}

// NoFalloff disables the angular falloff of a spot light.
const NoFalloff float32 = -1

// LightBase carries the fields every light has. Colors use whatever scale the
// shader expects; the default scenes use raw 0-255 intensities.
type LightBase struct {
	Enabled  bool
	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3
}

// Light is one of *PointLight, *DirectionalLight or *SpotLight.
type Light interface {
	Kind() LightKind
	Base() *LightBase
	light()
}

// PointLight radiates in every direction from Position.
type PointLight struct {
	LightBase
	Position mgl32.Vec3
}

// DirectionalLight shines along Direction from infinitely far away.
type DirectionalLight struct {
	LightBase
	Direction mgl32.Vec3
}

// SpotLight is a cone of half-angle Aperture (degrees) around Axis.
// Cutoff is the falloff exponent; NoFalloff turns falloff off.
type SpotLight struct {
	LightBase
	Position mgl32.Vec3
	Axis     mgl32.Vec3
	Aperture float32
	Cutoff   float32
}

func (*PointLight) Kind() LightKind       { return PointKind }
func (*DirectionalLight) Kind() LightKind { return DirectionalKind }
func (*SpotLight) Kind() LightKind        { return SpotKind }

func (l *PointLight) Base() *LightBase       { return &l.LightBase }
func (l *DirectionalLight) Base() *LightBase { return &l.LightBase }
func (l *SpotLight) Base() *LightBase        { return &l.LightBase }

func (*PointLight) light()       {}
func (*DirectionalLight) light() {}
func (*SpotLight) light()        {}

func whiteLight(ambient, diffuse, specular float32) LightBase {
	return LightBase{
		Enabled:  true,
		Ambient:  mgl32.Vec3{ambient, ambient, ambient},
		Diffuse:  mgl32.Vec3{diffuse, diffuse, diffuse},
		Specular: mgl32.Vec3{specular, specular, specular},
	}
}

// CreatePointLight returns an enabled grey point light at position.
func CreatePointLight(position mgl32.Vec3) *PointLight {
	return &PointLight{
		LightBase: whiteLight(50, 60, 200),
		Position:  position,
	}
}

// CreateDirectionalLight returns an enabled grey directional light (like the sun).
func CreateDirectionalLight(direction mgl32.Vec3) *DirectionalLight {
	return &DirectionalLight{
		LightBase: whiteLight(50, 60, 200),
		Direction: direction.Normalize(),
	}
}

// CreateSpotLight returns an enabled spot light with falloff disabled.
func CreateSpotLight(position, axis mgl32.Vec3, aperture float32) *SpotLight {
	return &SpotLight{
		LightBase: whiteLight(50, 60, 200),
		Position:  position,
		Axis:      axis.Normalize(),
		Aperture:  aperture,
		Cutoff:    NoFalloff,
	}
}
