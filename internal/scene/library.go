package scene

import (
	"fmt"

	"Phong3D/internal/loader"
	"Phong3D/internal/logger"
	"Phong3D/internal/renderer"

	"go.uber.org/zap"
)

// MeshUploader hands mesh geometry to the GPU and returns its handle.
type MeshUploader interface {
	Initialize(mesh *renderer.Mesh) (renderer.MeshHandle, error)
}

// MeshResolver maps a mesh name in a description to an uploaded handle.
type MeshResolver interface {
	Resolve(d *Description, name string) (renderer.MeshHandle, error)
}

// MeshLibrary loads each named mesh once, either from a built-in primitive or
// from the OBJ file the description maps it to, and caches the handle.
type MeshLibrary struct {
	uploader MeshUploader
	handles  map[string]renderer.MeshHandle
}

func NewMeshLibrary(uploader MeshUploader) *MeshLibrary {
	return &MeshLibrary{
		uploader: uploader,
		handles:  make(map[string]renderer.MeshHandle),
	}
}

func isBuiltinMesh(name string) bool {
	return loader.IsPrimitive(name)
}

func (l *MeshLibrary) Resolve(d *Description, name string) (renderer.MeshHandle, error) {
	key := name
	path, fromFile := d.MeshPath(name)
	if fromFile {
		key = path
	}
	if h, ok := l.handles[key]; ok {
		return h, nil
	}

	var (
		mesh *renderer.Mesh
		err  error
	)
	switch {
	case fromFile:
		mesh, err = loader.LoadModel(path, true)
	case isBuiltinMesh(name):
		mesh, err = loader.LoadPrimitive(name)
	default:
		err = ErrUnknownMesh
	}
	if err != nil {
		return 0, fmt.Errorf("mesh %q: %w", name, err)
	}

	h, err := l.uploader.Initialize(mesh)
	if err != nil {
		return 0, fmt.Errorf("mesh %q: %w", name, err)
	}
	l.handles[key] = h
	logger.Log.Debug("Mesh registered", zap.String("mesh", name), zap.Uint32("handle", uint32(h)))
	return h, nil
}

// Len returns the number of cached meshes.
func (l *MeshLibrary) Len() int {
	return len(l.handles)
}
