package loader

import (
	"errors"
	"math"

	"Phong3D/internal/renderer"

	"github.com/go-gl/mathgl/mgl32"
)

// Built-in mesh kinds.
const (
	MeshCube    = "cube"
	MeshPyramid = "pyramid"
	MeshTorus   = "torus"
)

// Torus proportions for LoadPrimitive, sized to fit the unit box like the
// cube and pyramid.
const (
	TorusRadius      = 0.35
	TorusTubeRadius  = 0.15
	TorusRadialSegs  = 48
	TorusTubularSegs = 24
)

var ErrUnknownPrimitive = errors.New("unknown primitive mesh")

// LoadPrimitive builds one of the built-in meshes by kind.
func LoadPrimitive(kind string) (*renderer.Mesh, error) {
	switch kind {
	case MeshCube:
		return LoadCube(), nil
	case MeshPyramid:
		return LoadPyramid(), nil
	case MeshTorus:
		return LoadTorus(TorusRadius, TorusTubeRadius, TorusRadialSegs, TorusTubularSegs)
	}
	return nil, ErrUnknownPrimitive
}

// IsPrimitive reports whether kind names a built-in mesh.
func IsPrimitive(kind string) bool {
	return kind == MeshCube || kind == MeshPyramid || kind == MeshTorus
}

// flatMesh gives every triangle its own three vertices carrying the face
// normal, for hard-edged solids.
func flatMesh(name string, triangles [][3]mgl32.Vec3) *renderer.Mesh {
	positions := make([]mgl32.Vec3, 0, len(triangles)*3)
	normals := make([]mgl32.Vec3, 0, len(triangles)*3)
	indices := make([]uint32, 0, len(triangles)*3)

	for _, tri := range triangles {
		n := faceNormal(tri[0], tri[1], tri[2]).Normalize()
		for _, p := range tri {
			indices = append(indices, uint32(len(positions)))
			positions = append(positions, p)
			normals = append(normals, n)
		}
	}
	return renderer.CreateMesh(name, positions, normals, indices)
}

// LoadCube returns the unit cube centered at the origin, counter-clockwise
// faces pointing outward.
func LoadCube() *renderer.Mesh {
	x := mgl32.Vec3{1, 0, 0}
	y := mgl32.Vec3{0, 1, 0}
	z := mgl32.Vec3{0, 0, 1}

	// (normal, u, v) with u x v = normal.
	faces := [][3]mgl32.Vec3{
		{x, y, z},
		{x.Mul(-1), z, y},
		{y, z, x},
		{y.Mul(-1), x, z},
		{z, x, y},
		{z.Mul(-1), y, x},
	}

	triangles := make([][3]mgl32.Vec3, 0, 12)
	for _, f := range faces {
		n, u, v := f[0].Mul(0.5), f[1].Mul(0.5), f[2].Mul(0.5)
		c0 := n.Sub(u).Sub(v)
		c1 := n.Add(u).Sub(v)
		c2 := n.Add(u).Add(v)
		c3 := n.Sub(u).Add(v)
		triangles = append(triangles, [3]mgl32.Vec3{c0, c1, c2}, [3]mgl32.Vec3{c0, c2, c3})
	}
	return flatMesh(MeshCube, triangles)
}

// LoadPyramid returns a square pyramid filling the unit cube: base at
// y=-0.5, apex at y=0.5.
func LoadPyramid() *renderer.Mesh {
	apex := mgl32.Vec3{0, 0.5, 0}
	a := mgl32.Vec3{-0.5, -0.5, -0.5}
	b := mgl32.Vec3{0.5, -0.5, -0.5}
	c := mgl32.Vec3{0.5, -0.5, 0.5}
	d := mgl32.Vec3{-0.5, -0.5, 0.5}

	return flatMesh(MeshPyramid, [][3]mgl32.Vec3{
		{d, c, apex},
		{c, b, apex},
		{b, a, apex},
		{a, d, apex},
		{a, b, c},
		{a, c, d},
	})
}

// LoadTorus returns a torus lying in the XZ plane with smooth normals.
func LoadTorus(radius, tubeRadius float32, radialSegments, tubularSegments int) (*renderer.Mesh, error) {
	if radialSegments < 3 || tubularSegments < 3 {
		return nil, errors.New("torus needs at least 3 segments each way")
	}
	if tubeRadius <= 0 || radius <= tubeRadius {
		return nil, errors.New("torus tube radius must be positive and smaller than the radius")
	}

	positions := make([]mgl32.Vec3, 0, (radialSegments+1)*(tubularSegments+1))
	normals := make([]mgl32.Vec3, 0, cap(positions))
	indices := make([]uint32, 0, radialSegments*tubularSegments*6)

	// Generate vertices; the seam is duplicated so indices never wrap.
	for i := 0; i <= radialSegments; i++ {
		theta := 2 * math.Pi * float64(i) / float64(radialSegments)
		ct, st := float32(math.Cos(theta)), float32(math.Sin(theta))
		for j := 0; j <= tubularSegments; j++ {
			phi := 2 * math.Pi * float64(j) / float64(tubularSegments)
			cp, sp := float32(math.Cos(phi)), float32(math.Sin(phi))

			ring := radius + tubeRadius*cp
			positions = append(positions, mgl32.Vec3{ring * ct, tubeRadius * sp, ring * st})
			normals = append(normals, mgl32.Vec3{cp * ct, sp, cp * st})
		}
	}

	// Generate indices for triangles
	stride := uint32(tubularSegments + 1)
	for i := 0; i < radialSegments; i++ {
		for j := 0; j < tubularSegments; j++ {
			a := uint32(i)*stride + uint32(j)
			b := a + stride
			c := b + 1
			d := a + 1

			indices = append(indices, a, d, c, a, c, b)
		}
	}

	return renderer.CreateMesh(MeshTorus, positions, normals, indices), nil
}
