package scene

import (
	"fmt"

	"Phong3D/internal/renderer"
)

// Scene is a built description: the render state plus the per-object spin
// rates the clock drives.
type Scene struct {
	Name  string
	State *renderer.SceneState
	Clock *Clock

	animation AnimationDesc
	spins     []spin
}

type spin struct {
	object int
	base   float32
	rate   float32
}

// Build resolves every mesh and converts the description into render state.
// The description is validated again so a hand-built one gets the same checks
// as a parsed file.
func Build(d *Description, meshes MeshResolver) (*Scene, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	cam, err := d.Camera.Camera()
	if err != nil {
		return nil, err
	}

	lights := make([]renderer.Light, 0, len(d.Lights))
	for _, ld := range d.Lights {
		l, err := ld.Light()
		if err != nil {
			return nil, err
		}
		lights = append(lights, l)
	}

	materials := make(map[string]*renderer.Material, len(d.Materials))
	for name, md := range d.Materials {
		m, err := md.Material()
		if err != nil {
			return nil, err
		}
		materials[name] = m
	}

	s := &Scene{
		Name:  d.Name,
		Clock: NewClock(d.Animation.Speed, !d.Animation.Paused),

		animation: d.Animation,
	}
	objects := make([]renderer.SceneObject, 0, len(d.Objects))
	for i, od := range d.Objects {
		handle, err := meshes.Resolve(d, od.Mesh)
		if err != nil {
			return nil, fmt.Errorf("object %q: %w", od.Name, err)
		}
		t, err := od.Transform()
		if err != nil {
			return nil, fmt.Errorf("object %q: %w", od.Name, err)
		}
		objects = append(objects, renderer.SceneObject{
			Name:      od.Name,
			Material:  materials[od.Material],
			Transform: t,
			Mesh:      handle,
		})
		if od.Spin != 0 {
			s.spins = append(s.spins, spin{object: i, base: t.Rotation.Y(), rate: od.Spin})
		}
	}

	s.State = &renderer.SceneState{
		Camera:  cam,
		Lights:  lights,
		Objects: objects,
		Options: d.Options.Options(),
	}
	return s, nil
}

// Animate sets each spinning object's Y rotation from the clock time.
func (s *Scene) Animate() {
	t := float32(s.Clock.Time())
	for _, sp := range s.spins {
		rot := &s.State.Objects[sp.object].Transform.Rotation
		rot[1] = sp.base + sp.rate*t
	}
}

// Step advances the clock one frame and applies the animation.
func (s *Scene) Step() {
	s.Clock.Tick()
	s.Animate()
}

// KeepClock carries prev's clock into s when both were built from the same
// animation settings, so a reload does not reset time or a speed changed at
// runtime.
func (s *Scene) KeepClock(prev *Scene) {
	if prev == nil || prev.animation != s.animation {
		return
	}
	s.Clock = prev.Clock
	s.Animate()
}
