package renderer

import (
	"Phong3D/internal/logger"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// UniformCache is the OpenGL UniformSink. It caches uniform locations to
// avoid repeated gl.GetUniformLocation calls.
type UniformCache struct {
	locations map[string]int32
	missing   map[string]bool
	program   uint32
}

// NewUniformCache creates a new uniform cache for a shader program
func NewUniformCache(program uint32) *UniformCache {
	return &UniformCache{
		locations: make(map[string]int32),
		missing:   make(map[string]bool),
		program:   program,
	}
}

// GetLocation returns the cached uniform location or fetches and caches it
func (uc *UniformCache) GetLocation(name string) int32 {
	if loc, exists := uc.locations[name]; exists {
		return loc
	}

	loc := gl.GetUniformLocation(uc.program, gl.Str(name+"\x00"))
	uc.locations[name] = loc
	if loc == -1 && !uc.missing[name] {
		// The GLSL compiler strips unused uniforms, so this is only worth a debug line.
		uc.missing[name] = true
		logger.Log.Debug("Uniform not active in program", zap.String("name", name), zap.Uint32("program", uc.program))
	}
	return loc
}

func (uc *UniformCache) SetMat4(name string, value mgl32.Mat4) {
	loc := uc.GetLocation(name)
	if loc != -1 {
		gl.UniformMatrix4fv(loc, 1, false, &value[0])
	}
}

func (uc *UniformCache) SetVec3(name string, value mgl32.Vec3) {
	loc := uc.GetLocation(name)
	if loc != -1 {
		gl.Uniform3f(loc, value[0], value[1], value[2])
	}
}

func (uc *UniformCache) SetVec4(name string, value mgl32.Vec4) {
	loc := uc.GetLocation(name)
	if loc != -1 {
		gl.Uniform4f(loc, value[0], value[1], value[2], value[3])
	}
}

// SetFloat sets a float uniform using cached location
func (uc *UniformCache) SetFloat(name string, value float32) {
	loc := uc.GetLocation(name)
	if loc != -1 {
		gl.Uniform1f(loc, value)
	}
}

// SetInt sets an int uniform using cached location
func (uc *UniformCache) SetInt(name string, value int32) {
	loc := uc.GetLocation(name)
	if loc != -1 {
		gl.Uniform1i(loc, value)
	}
}

// Clear clears the cache (call when shader program changes)
func (uc *UniformCache) Clear() {
	uc.locations = make(map[string]int32)
	uc.missing = make(map[string]bool)
}
