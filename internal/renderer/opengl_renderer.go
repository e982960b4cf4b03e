package renderer

import (
	"Phong3D/internal/logger"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
)

type glMesh struct {
	name       string
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// OpenGLRenderer owns the phong program and the GPU copies of every mesh.
// It is the UniformSink and MeshDrawer the frame renderer talks to.
type OpenGLRenderer struct {
	*UniformCache
	shader Shader
	meshes map[MeshHandle]*glMesh
	next   MeshHandle
}

func (rend *OpenGLRenderer) Init(width, height int32) error {
	if err := gl.Init(); err != nil {
		logger.Log.Error("OpenGL initialization failed", zap.Error(err))
		return err
	}

	rend.shader = InitShader()
	if err := rend.shader.Compile(); err != nil {
		return err
	}
	rend.UniformCache = NewUniformCache(rend.shader.Program())
	rend.meshes = make(map[MeshHandle]*glMesh)

	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	gl.Viewport(0, 0, width, height)
	logger.Log.Info("OpenGL render initialized", zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))))
	return nil
}

// Initialize uploads mesh to the GPU and returns its handle.
func (rend *OpenGLRenderer) Initialize(mesh *Mesh) (MeshHandle, error) {
	if mesh == nil || len(mesh.Vertices) == 0 || len(mesh.Indices) == 0 {
		return 0, fmt.Errorf("initialize mesh: empty geometry")
	}

	m := &glMesh{name: mesh.Name, indexCount: int32(len(mesh.Indices))}
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*4, gl.Ptr(mesh.Vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, gl.Ptr(mesh.Indices), gl.STATIC_DRAW)

	stride := int32(FloatsPerVertex * 4)
	gl.VertexAttribPointer(attribPosition, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(attribPosition)

	gl.VertexAttribPointer(attribNormal, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(attribNormal)

	gl.BindVertexArray(0)

	rend.next++
	rend.meshes[rend.next] = m
	logger.Log.Debug("Mesh uploaded",
		zap.String("name", mesh.Name),
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int("indices", len(mesh.Indices)))
	return rend.next, nil
}

// Draw draws an initialized mesh with the current program and uniforms.
func (rend *OpenGLRenderer) Draw(handle MeshHandle, mode FillMode) error {
	m, ok := rend.meshes[handle]
	if !ok {
		return fmt.Errorf("%w: %d", ErrInvalidMeshHandle, handle)
	}

	if mode == Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
	return nil
}

// BeginFrame clears the framebuffer, applies the global toggles and binds
// the phong program.
func (rend *OpenGLRenderer) BeginFrame(opts Options) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if opts.DepthTest {
		gl.Enable(gl.DEPTH_TEST)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}

	// Culling : https://learnopengl.com/Advanced-OpenGL/Face-culling
	if opts.BackCulling {
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
		gl.FrontFace(gl.CCW)
	} else {
		gl.Disable(gl.CULL_FACE)
	}

	rend.shader.Use()
}

func (rend *OpenGLRenderer) SetClearColor(r, g, b float32) {
	gl.ClearColor(r, g, b, 1.0)
}

// UpdateViewport updates the OpenGL viewport to match the current window size
func (rend *OpenGLRenderer) UpdateViewport(width, height int32) {
	gl.Viewport(0, 0, width, height)
}

func (rend *OpenGLRenderer) Cleanup() {
	for h, m := range rend.meshes {
		gl.DeleteVertexArrays(1, &m.vao)
		gl.DeleteBuffers(1, &m.vbo)
		gl.DeleteBuffers(1, &m.ebo)
		delete(rend.meshes, h)
	}
	rend.shader.Delete()
}
