package renderer

// Render is the graphics backend the engine loop drives.
type Render interface {
	UniformSink
	MeshDrawer
	Init(width, height int32) error
	Initialize(mesh *Mesh) (MeshHandle, error)
	BeginFrame(opts Options)
	SetClearColor(r, g, b float32)
	UpdateViewport(width, height int32)
	Cleanup()
}

var _ Render = (*OpenGLRenderer)(nil)
