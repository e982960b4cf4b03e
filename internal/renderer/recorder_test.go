package renderer

import (
	"errors"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

type uniformWrite struct {
	name  string
	value interface{}
}

// recordingSink is a UniformSink that keeps every write in order.
type recordingSink struct {
	writes []uniformWrite
	last   map[string]interface{}
}

func newRecordingSink() *recordingSink {
	return &recordingSink{last: make(map[string]interface{})}
}

func (r *recordingSink) set(name string, v interface{}) {
	r.writes = append(r.writes, uniformWrite{name: name, value: v})
	r.last[name] = v
}

func (r *recordingSink) SetMat4(name string, v mgl32.Mat4) { r.set(name, v) }
func (r *recordingSink) SetVec3(name string, v mgl32.Vec3) { r.set(name, v) }
func (r *recordingSink) SetVec4(name string, v mgl32.Vec4) { r.set(name, v) }
func (r *recordingSink) SetFloat(name string, v float32)   { r.set(name, v) }
func (r *recordingSink) SetInt(name string, v int32)       { r.set(name, v) }

func (r *recordingSink) count(name string) (n int) {
	for _, w := range r.writes {
		if w.name == name {
			n++
		}
	}
	return n
}

// lightWrites counts writes per uLights index.
func (r *recordingSink) lightWrites() map[int]int {
	perIndex := make(map[int]int)
	for _, w := range r.writes {
		if !strings.HasPrefix(w.name, "uLights[") {
			continue
		}
		for i := 0; i < MaxLights; i++ {
			if strings.HasPrefix(w.name, LightUniform(i, "")) {
				perIndex[i]++
			}
		}
	}
	return perIndex
}

type drawCall struct {
	handle    MeshHandle
	mode      FillMode
	modelView mgl32.Mat4
	depth     int
}

// recordingDrawer captures the transform stack as it is at draw time.
type recordingDrawer struct {
	stack *TransformStack
	calls []drawCall
	fail  map[MeshHandle]bool
}

var errDrawFailed = errors.New("draw failed")

func (d *recordingDrawer) Draw(handle MeshHandle, mode FillMode) error {
	if handle == 0 {
		return ErrInvalidMeshHandle
	}
	if d.fail[handle] {
		return errDrawFailed
	}
	call := drawCall{handle: handle, mode: mode}
	if d.stack != nil {
		call.modelView = d.stack.Current()
		call.depth = d.stack.Depth()
	}
	d.calls = append(d.calls, call)
	return nil
}
