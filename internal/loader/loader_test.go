package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"Phong3D/internal/renderer"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const quadOBJ = `# unit quad in the XY plane
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vn 0 0 1
f 1//1 2//1 3//1 4//1
`

// assertOutwardWinding checks that every triangle's counter-clockwise normal
// agrees with the normals stored on its vertices.
func assertOutwardWinding(t *testing.T, m *renderer.Mesh) {
	t.Helper()
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		face := faceNormal(m.Position(int(a)), m.Position(int(b)), m.Position(int(c)))
		if face.Len() < 1e-9 {
			continue
		}
		for _, v := range []uint32{a, b, c} {
			if face.Dot(m.Normal(int(v))) <= 0 {
				t.Fatalf("%s: triangle %d winds against vertex %d normal", m.Name, i/3, v)
			}
		}
	}
}

func TestParseOBJQuad(t *testing.T) {
	m, err := ParseOBJ("quad", strings.NewReader(quadOBJ), false)
	require.NoError(t, err)

	assert.Equal(t, 4, m.VertexCount())
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, m.Indices)
	for i := 0; i < m.VertexCount(); i++ {
		assert.Equal(t, mgl32.Vec3{0, 0, 1}, m.Normal(i))
	}
	assertOutwardWinding(t, m)
}

func TestParseOBJComputesMissingNormals(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"

	m, err := ParseOBJ("tri", strings.NewReader(src), false)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		n := m.Normal(i)
		assert.InDelta(t, 1, n.Z(), 1e-6)
	}
}

func TestParseOBJNegativeIndices(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf -3 -2 -1\n"

	m, err := ParseOBJ("tri", strings.NewReader(src), false)
	require.NoError(t, err)

	assert.Equal(t, mgl32.Vec3{1, 0, 0}, m.Position(int(m.Indices[1])))
}

func TestParseOBJErrors(t *testing.T) {
	cases := map[string]string{
		"empty":        "v 0 0 0\n",
		"bad vertex":   "v 0 x 0\n",
		"bad face":     "v 0 0 0\nf 1 2\n",
		"out of range": "v 0 0 0\nf 1 2 3\n",
		"zero index":   "v 0 0 0\nf 0 1 1\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseOBJ(name, strings.NewReader(src), false)
			assert.Error(t, err)
		})
	}

	_, err := ParseOBJ("empty", strings.NewReader("# nothing\n"), false)
	assert.ErrorIs(t, err, ErrEmptyModel)
}

func TestLoadModelFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quad.obj")
	require.NoError(t, os.WriteFile(path, []byte(quadOBJ), 0o644))

	m, err := LoadModel(path, true)
	require.NoError(t, err)

	assert.Equal(t, "quad", m.Name)
	assert.Len(t, m.Indices, 6)

	_, err = LoadModel(filepath.Join(t.TempDir(), "missing.obj"), false)
	assert.Error(t, err)
}

func TestRecalculateNormals(t *testing.T) {
	positions := []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 0, -1}}
	normals := RecalculateNormals(positions, []uint32{0, 1, 2})

	for _, n := range normals {
		assert.InDelta(t, 1, n.Y(), 1e-6)
	}
}

func TestPrimitivesWindOutward(t *testing.T) {
	for _, kind := range []string{MeshCube, MeshPyramid, MeshTorus} {
		t.Run(kind, func(t *testing.T) {
			m, err := LoadPrimitive(kind)
			require.NoError(t, err)

			assert.Equal(t, kind, m.Name)
			assert.Zero(t, len(m.Indices)%3)
			assertOutwardWinding(t, m)

			for i := 0; i < m.VertexCount(); i++ {
				p := m.Position(i)
				for axis := 0; axis < 3; axis++ {
					assert.LessOrEqual(t, p[axis], float32(0.5)+1e-6)
					assert.GreaterOrEqual(t, p[axis], float32(-0.5)-1e-6)
				}
			}
		})
	}
}

func TestCubeShape(t *testing.T) {
	m := LoadCube()

	assert.Equal(t, 36, m.VertexCount())
	assert.Len(t, m.Indices, 36)
}

func TestLoadPrimitiveUnknown(t *testing.T) {
	_, err := LoadPrimitive("teapot")

	assert.ErrorIs(t, err, ErrUnknownPrimitive)
	assert.False(t, IsPrimitive("teapot"))
	assert.True(t, IsPrimitive(MeshTorus))
}

func TestLoadTorusValidation(t *testing.T) {
	_, err := LoadTorus(0.35, 0.15, 2, 10)
	assert.Error(t, err)

	_, err = LoadTorus(0.1, 0.2, 10, 10)
	assert.Error(t, err)
}
