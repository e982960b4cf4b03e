package renderer

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

var ErrInvalidMeshHandle = errors.New("invalid or uninitialized mesh handle")

// FillMode is the global wireframe/solid toggle.
type FillMode int

const (
	Filled FillMode = iota
	Wireframe
)

func (m FillMode) String() string {
	if m == Wireframe {
		return "wireframe"
	}
	return "filled"
}

// MeshHandle refers to a mesh owned by a MeshDrawer. The zero handle is never
// valid.
type MeshHandle uint32

// MeshDrawer issues the draw call for an initialized mesh.
type MeshDrawer interface {
	Draw(handle MeshHandle, mode FillMode) error
}

// Mesh is CPU-side geometry: interleaved position (3) + normal (3) floats and
// triangle indices.
type Mesh struct {
	Name     string
	Vertices []float32
	Indices  []uint32
}

// FloatsPerVertex is the interleaved stride of Mesh.Vertices.
const FloatsPerVertex = 6

func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / FloatsPerVertex
}

// CreateMesh interleaves positions and normals. normals may be nil, in which
// case every normal points up.
func CreateMesh(name string, positions, normals []mgl32.Vec3, indices []uint32) *Mesh {
	interleaved := make([]float32, 0, len(positions)*FloatsPerVertex)
	for i, p := range positions {
		n := mgl32.Vec3{0, 1, 0}
		if i < len(normals) {
			n = normals[i]
		}
		interleaved = append(interleaved, p.X(), p.Y(), p.Z(), n.X(), n.Y(), n.Z())
	}
	return &Mesh{
		Name:     name,
		Vertices: interleaved,
		Indices:  indices,
	}
}

// Position returns the position of vertex i.
func (m *Mesh) Position(i int) mgl32.Vec3 {
	o := i * FloatsPerVertex
	return mgl32.Vec3{m.Vertices[o], m.Vertices[o+1], m.Vertices[o+2]}
}

// Normal returns the normal of vertex i.
func (m *Mesh) Normal(i int) mgl32.Vec3 {
	o := i*FloatsPerVertex + 3
	return mgl32.Vec3{m.Vertices[o], m.Vertices[o+1], m.Vertices[o+2]}
}
