package scene

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"Phong3D/internal/renderer"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownMesh     = errors.New("unknown mesh")
	ErrUnknownMaterial = errors.New("unknown material")
	ErrUnknownLight    = errors.New("unknown light kind")
	ErrBadVector       = errors.New("vector has the wrong number of components")
)

// Description is the declarative form of a scene: the camera, the lights
// and the object roster. Every scene variant is one of these.
type Description struct {
	Name      string                  `yaml:"name"`
	Camera    CameraDesc              `yaml:"camera"`
	Options   OptionsDesc             `yaml:"options"`
	Animation AnimationDesc           `yaml:"animation"`
	Meshes    map[string]string       `yaml:"meshes"` // name -> OBJ path, relative to the file
	Materials map[string]MaterialDesc `yaml:"materials"`
	Lights    []LightDesc             `yaml:"lights"`
	Objects   []ObjectDesc            `yaml:"objects"`

	dir string
}

type CameraDesc struct {
	Eye  []float32 `yaml:"eye"`
	At   []float32 `yaml:"at"`
	Up   []float32 `yaml:"up"`
	Fovy float32   `yaml:"fovy"`
	Near float32   `yaml:"near"`
	Far  float32   `yaml:"far"`
}

type OptionsDesc struct {
	Wireframe   bool  `yaml:"wireframe"`
	DepthTest   *bool `yaml:"depth_test"`
	BackCulling *bool `yaml:"back_culling"`
}

type AnimationDesc struct {
	Paused bool    `yaml:"paused"`
	Speed  float64 `yaml:"speed"`
}

// MaterialDesc uses 0-1 reflectances. Color is shorthand for Ka = Kd = Color.
type MaterialDesc struct {
	Color     []float32 `yaml:"color"`
	Ka        []float32 `yaml:"ka"`
	Kd        []float32 `yaml:"kd"`
	Ks        []float32 `yaml:"ks"`
	Shininess float32   `yaml:"shininess"`
}

// LightDesc is the flat file form of a light; Kind picks which fields are
// read. Position may carry a fourth component, which must match the kind.
type LightDesc struct {
	Kind     string    `yaml:"kind"`
	Disabled bool      `yaml:"disabled"`
	Ambient  []float32 `yaml:"ambient"`
	Diffuse  []float32 `yaml:"diffuse"`
	Specular []float32 `yaml:"specular"`
	Position []float32 `yaml:"position"`
	Axis     []float32 `yaml:"axis"`
	Aperture float32   `yaml:"aperture"` // degrees
	Cutoff   *float32  `yaml:"cutoff"`
}

type ObjectDesc struct {
	Name        string    `yaml:"name"`
	Mesh        string    `yaml:"mesh"`
	Material    string    `yaml:"material"`
	Translation []float32 `yaml:"translation"`
	Rotation    []float32 `yaml:"rotation"`
	Scale       []float32 `yaml:"scale"`
	Spin        float32   `yaml:"spin"` // degrees about Y per clock unit
}

// LoadFile reads a YAML scene description.
func LoadFile(path string) (*Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	d.dir = filepath.Dir(path)
	return d, nil
}

// Parse decodes a YAML scene description and validates it.
func Parse(data []byte) (*Description, error) {
	var d Description
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Validate checks references and light count without touching any mesh.
func (d *Description) Validate() error {
	if len(d.Lights) > renderer.MaxLights {
		return fmt.Errorf("%w: %d lights, capacity %d", renderer.ErrTooManyLights, len(d.Lights), renderer.MaxLights)
	}
	for i, l := range d.Lights {
		if _, err := l.Light(); err != nil {
			return fmt.Errorf("light %d: %w", i, err)
		}
	}
	for name, m := range d.Materials {
		if _, err := m.Material(); err != nil {
			return fmt.Errorf("material %q: %w", name, err)
		}
	}
	for _, o := range d.Objects {
		if _, ok := d.Materials[o.Material]; !ok {
			return fmt.Errorf("object %q: %w %q", o.Name, ErrUnknownMaterial, o.Material)
		}
		if _, ok := d.Meshes[o.Mesh]; !ok && !isBuiltinMesh(o.Mesh) {
			return fmt.Errorf("object %q: %w %q", o.Name, ErrUnknownMesh, o.Mesh)
		}
		if _, err := o.Transform(); err != nil {
			return fmt.Errorf("object %q: %w", o.Name, err)
		}
	}
	if _, err := d.Camera.Camera(); err != nil {
		return fmt.Errorf("camera: %w", err)
	}
	return nil
}

// MeshPath resolves the OBJ path of a named mesh relative to the file the
// description was loaded from.
func (d *Description) MeshPath(name string) (string, bool) {
	p, ok := d.Meshes[name]
	if !ok {
		return "", false
	}
	if !filepath.IsAbs(p) && d.dir != "" {
		p = filepath.Join(d.dir, p)
	}
	return p, true
}

// SkipMissingModels drops the objects whose OBJ file does not exist and
// returns their names. Built-in meshes are never dropped.
func (d *Description) SkipMissingModels() []string {
	var skipped []string
	kept := d.Objects[:0:0]
	for _, o := range d.Objects {
		if path, ok := d.MeshPath(o.Mesh); ok {
			if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
				skipped = append(skipped, o.Name)
				continue
			}
		}
		kept = append(kept, o)
	}
	d.Objects = kept
	return skipped
}

func vec3(v []float32, def mgl32.Vec3) (mgl32.Vec3, error) {
	switch len(v) {
	case 0:
		return def, nil
	case 3:
		return mgl32.Vec3{v[0], v[1], v[2]}, nil
	}
	return def, fmt.Errorf("%w: want 3, got %d", ErrBadVector, len(v))
}

func (c CameraDesc) Camera() (*renderer.Camera, error) {
	cam := renderer.NewDefaultCamera()
	var err error
	if cam.Eye, err = vec3(c.Eye, cam.Eye); err != nil {
		return nil, err
	}
	if cam.At, err = vec3(c.At, cam.At); err != nil {
		return nil, err
	}
	if cam.Up, err = vec3(c.Up, cam.Up); err != nil {
		return nil, err
	}
	if c.Fovy != 0 {
		cam.Fovy = c.Fovy
	}
	if c.Near != 0 {
		cam.Near = c.Near
	}
	if c.Far != 0 {
		cam.Far = c.Far
	}
	if cam.Near >= cam.Far {
		return nil, fmt.Errorf("near %v must be less than far %v", cam.Near, cam.Far)
	}
	return cam, nil
}

func (o OptionsDesc) Options() renderer.Options {
	opts := renderer.DefaultOptions()
	if o.Wireframe {
		opts.Mode = renderer.Wireframe
	}
	if o.DepthTest != nil {
		opts.DepthTest = *o.DepthTest
	}
	if o.BackCulling != nil {
		opts.BackCulling = *o.BackCulling
	}
	return opts
}

func (m MaterialDesc) Material() (*renderer.Material, error) {
	white := mgl32.Vec3{1, 1, 1}
	color, err := vec3(m.Color, white)
	if err != nil {
		return nil, err
	}
	mat := &renderer.Material{Shininess: m.Shininess}
	if mat.Ambient, err = vec3(m.Ka, color); err != nil {
		return nil, err
	}
	if mat.Diffuse, err = vec3(m.Kd, color); err != nil {
		return nil, err
	}
	if mat.Specular, err = vec3(m.Ks, white); err != nil {
		return nil, err
	}
	if err := mat.Validate(); err != nil {
		return nil, err
	}
	return mat, nil
}

// Light converts the flat description into the matching light variant.
func (l LightDesc) Light() (renderer.Light, error) {
	base := renderer.LightBase{Enabled: !l.Disabled}
	var err error
	if base.Ambient, err = vec3(l.Ambient, mgl32.Vec3{}); err != nil {
		return nil, err
	}
	if base.Diffuse, err = vec3(l.Diffuse, mgl32.Vec3{}); err != nil {
		return nil, err
	}
	if base.Specular, err = vec3(l.Specular, mgl32.Vec3{}); err != nil {
		return nil, err
	}

	pos, w, err := l.position()
	if err != nil {
		return nil, err
	}
	axis, err := vec3(l.Axis, mgl32.Vec3{0, 0, -1})
	if err != nil {
		return nil, err
	}

	switch l.Kind {
	case "point", "":
		if w == 0 {
			return nil, errors.New("point light position needs w=1")
		}
		return &renderer.PointLight{LightBase: base, Position: pos}, nil
	case "directional":
		dir := axis
		if len(l.Axis) == 0 && len(l.Position) > 0 {
			// A w=0 position is the direction toward the light.
			dir = pos.Mul(-1)
		}
		if dir.Len() == 0 {
			return nil, errors.New("directional light needs a direction")
		}
		return &renderer.DirectionalLight{LightBase: base, Direction: dir.Normalize()}, nil
	case "spot":
		if w == 0 {
			return nil, errors.New("spot light position needs w=1")
		}
		if l.Aperture <= 0 || l.Aperture > 180 {
			return nil, fmt.Errorf("spot aperture %v out of (0, 180] degrees", l.Aperture)
		}
		cutoff := renderer.NoFalloff
		if l.Cutoff != nil {
			cutoff = *l.Cutoff
		}
		return &renderer.SpotLight{LightBase: base, Position: pos, Axis: axis, Aperture: l.Aperture, Cutoff: cutoff}, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownLight, l.Kind)
}

func (l LightDesc) position() (mgl32.Vec3, float32, error) {
	switch len(l.Position) {
	case 0:
		return mgl32.Vec3{}, 1, nil
	case 3:
		return mgl32.Vec3{l.Position[0], l.Position[1], l.Position[2]}, 1, nil
	case 4:
		return mgl32.Vec3{l.Position[0], l.Position[1], l.Position[2]}, l.Position[3], nil
	}
	return mgl32.Vec3{}, 0, fmt.Errorf("%w: position wants 3 or 4, got %d", ErrBadVector, len(l.Position))
}

func (o ObjectDesc) Transform() (renderer.Transform, error) {
	t := renderer.IdentityTransform()
	var err error
	if t.Translation, err = vec3(o.Translation, t.Translation); err != nil {
		return t, err
	}
	if t.Rotation, err = vec3(o.Rotation, t.Rotation); err != nil {
		return t, err
	}
	if t.Scale, err = vec3(o.Scale, t.Scale); err != nil {
		return t, err
	}
	return t, nil
}
