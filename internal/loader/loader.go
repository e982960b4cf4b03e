package loader

import (
	"Phong3D/internal/logger"
	"Phong3D/internal/renderer"
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

var ErrEmptyModel = errors.New("model has no faces")

// LoadModel reads a Wavefront OBJ file. Only geometry is used: positions,
// normals and faces. Materials and texture coordinates are ignored since
// materials come from the scene description.
func LoadModel(filename string, recalculateNormals bool) (*renderer.Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	mesh, err := ParseOBJ(name, file, recalculateNormals)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	logger.Log.Info("Model loaded",
		zap.String("path", filename),
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int("triangles", len(mesh.Indices)/3))
	return mesh, nil
}

type vertexKey struct {
	position int32
	normal   int32
}

// ParseOBJ builds a mesh from OBJ text. A vertex is emitted for every distinct
// position/normal pair referenced by the faces. Faces without normals, or
// recalculateNormals, get smooth normals averaged from the faces.
func ParseOBJ(name string, r io.Reader, recalculateNormals bool) (*renderer.Mesh, error) {
	var (
		positions []mgl32.Vec3
		normals   []mgl32.Vec3
		corners   []FaceVertex
	)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		switch parts[0] {
		case "v":
			v, err := parseVec3(parts[1:])
			if err != nil {
				logger.Log.Error("Error parsing vertex", zap.Int("line", lineNo), zap.Error(err))
				return nil, err
			}
			positions = append(positions, v)
		case "vn":
			n, err := parseVec3(parts[1:])
			if err != nil {
				logger.Log.Error("Error parsing normal", zap.Int("line", lineNo), zap.Error(err))
				return nil, err
			}
			normals = append(normals, n)
		case "f":
			face, err := parseFace(parts[1:])
			if err != nil {
				logger.Log.Error("Error parsing face", zap.Int("line", lineNo), zap.Error(err))
				return nil, err
			}
			corners = append(corners, face...)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(corners) == 0 {
		return nil, ErrEmptyModel
	}

	var (
		outPositions []mgl32.Vec3
		outNormals   []mgl32.Vec3
		indices      = make([]uint32, 0, len(corners))
		seen         = make(map[vertexKey]uint32)
		missing      bool
	)
	for _, c := range corners {
		pi := resolveIndex(c.VertexIdx, len(positions))
		if pi < 0 {
			return nil, fmt.Errorf("face references vertex %d of %d", c.VertexIdx, len(positions))
		}
		ni := resolveIndex(c.NormalIdx, len(normals))
		if ni < 0 {
			missing = true
		}

		key := vertexKey{position: pi, normal: ni}
		idx, ok := seen[key]
		if !ok {
			idx = uint32(len(outPositions))
			seen[key] = idx
			outPositions = append(outPositions, positions[pi])
			if ni >= 0 {
				outNormals = append(outNormals, normals[ni])
			} else {
				outNormals = append(outNormals, mgl32.Vec3{})
			}
		}
		indices = append(indices, idx)
	}

	// Some models have broken normals, so we recalculate them ourselves
	if recalculateNormals || missing {
		outNormals = RecalculateNormals(outPositions, indices)
	}

	return renderer.CreateMesh(name, outPositions, outNormals, indices), nil
}

// resolveIndex turns a zero-based (or negative, relative) OBJ index into a
// slice index, or -1 if it is absent or out of range.
func resolveIndex(idx int32, n int) int32 {
	if idx == noIndex {
		return -1
	}
	if idx < 0 {
		idx = int32(n) + idx
	}
	if idx < 0 || int(idx) >= n {
		return -1
	}
	return idx
}

func parseVec3(parts []string) (mgl32.Vec3, error) {
	var v mgl32.Vec3
	if len(parts) < 3 {
		return v, fmt.Errorf("expected 3 components, got %d", len(parts))
	}
	for i := 0; i < 3; i++ {
		val, err := strconv.ParseFloat(parts[i], 32)
		if err != nil {
			return v, fmt.Errorf("invalid vertex value %v: %w", parts[i], err)
		}
		v[i] = float32(val)
	}
	return v, nil
}

const noIndex int32 = -1 << 31

type FaceVertex struct {
	VertexIdx int32
	NormalIdx int32
}

func parseFace(parts []string) ([]FaceVertex, error) {
	if len(parts) < 3 {
		return nil, fmt.Errorf("face needs at least 3 vertices, got %d", len(parts))
	}

	face := make([]FaceVertex, 0, len(parts))
	for _, part := range parts {
		vals := strings.Split(part, "/")

		vertexIdx, err := parseObjIndex(vals[0])
		if err != nil {
			return nil, fmt.Errorf("invalid vertex index %v: %w", vals[0], err)
		}

		normalIdx := noIndex
		if len(vals) > 2 && vals[2] != "" {
			normalIdx, err = parseObjIndex(vals[2])
			if err != nil {
				return nil, fmt.Errorf("invalid normal index %v: %w", vals[2], err)
			}
		}

		face = append(face, FaceVertex{VertexIdx: vertexIdx, NormalIdx: normalIdx})
	}

	if len(face) == 3 {
		return face, nil
	}
	// Polygons: triangulate as a fan from the first vertex
	triangulated := make([]FaceVertex, 0, (len(face)-2)*3)
	for i := 1; i < len(face)-1; i++ {
		triangulated = append(triangulated, face[0], face[i], face[i+1])
	}
	return triangulated, nil
}

// parseObjIndex converts a 1-based OBJ index to 0-based. Negative indices are
// relative to the end and are kept negative.
func parseObjIndex(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, err
	}
	if v == 0 {
		return 0, errors.New("index 0 is not valid in OBJ")
	}
	if v > 0 {
		return int32(v - 1), nil
	}
	return int32(v), nil
}

// RecalculateNormals averages the face normals around each vertex.
func RecalculateNormals(positions []mgl32.Vec3, indices []uint32) []mgl32.Vec3 {
	normals := make([]mgl32.Vec3, len(positions))

	for i := 0; i+2 < len(indices); i += 3 {
		i0, i1, i2 := indices[i], indices[i+1], indices[i+2]
		if int(i0) >= len(positions) || int(i1) >= len(positions) || int(i2) >= len(positions) {
			logger.Log.Warn("Index out of bounds while computing normals", zap.Int("triangle", i/3))
			continue
		}

		// Unnormalized cross product weights by triangle area.
		n := faceNormal(positions[i0], positions[i1], positions[i2])
		normals[i0] = normals[i0].Add(n)
		normals[i1] = normals[i1].Add(n)
		normals[i2] = normals[i2].Add(n)
	}

	for i, n := range normals {
		if n.Len() > 0 {
			normals[i] = n.Normalize()
		}
	}
	return normals
}

func faceNormal(a, b, c mgl32.Vec3) mgl32.Vec3 {
	return b.Sub(a).Cross(c.Sub(a))
}
