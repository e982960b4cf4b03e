package renderer

// Options are the global rendering toggles.
type Options struct {
	Mode        FillMode
	DepthTest   bool
	BackCulling bool
}

func DefaultOptions() Options {
	return Options{Mode: Filled, DepthTest: true, BackCulling: true}
}

// SceneState is everything a frame reads. It is owned by the caller and only
// mutated between frames.
type SceneState struct {
	Camera  *Camera
	Lights  []Light
	Objects []SceneObject
	Options Options
}

// FrameRenderer runs the per-frame render step. The transform stack lives as
// long as the renderer and is reseeded with the view matrix every frame.
type FrameRenderer struct {
	stack  *TransformStack
	walker *Walker
}

func NewFrameRenderer() *FrameRenderer {
	stack := NewTransformStack()
	return &FrameRenderer{stack: stack, walker: NewWalker(stack)}
}

// Stack exposes the renderer's transform stack, mostly for tests.
func (f *FrameRenderer) Stack() *TransformStack {
	return f.stack
}

// Render uploads projection and view derived from the camera as it is now,
// uploads the lights once, and draws every object.
func (f *FrameRenderer) Render(state *SceneState, aspect float32, sink UniformSink, drawer MeshDrawer) error {
	projection := state.Camera.ProjectionMatrix(aspect)
	view := state.Camera.ViewMatrix()

	sink.SetMat4(UniformProjection, projection)
	sink.SetMat4(UniformView, view)

	// Only the base entry is left between frames; the walker pops every push.
	f.stack.Load(view)

	if err := UploadLights(sink, state.Lights); err != nil {
		return err
	}
	return f.walker.Walk(state.Objects, sink, drawer, state.Options.Mode)
}
