package engine

import (
	"Phong3D/internal/logger"
	"Phong3D/internal/renderer"
	"Phong3D/internal/scene"

	"go.uber.org/zap"
)

// Controls maps keyboard and mouse input onto the live scene. It holds no
// window state so it can be driven directly.
type Controls struct {
	scene *scene.Scene

	dragging     bool
	lastX, lastY float64
}

func (c *Controls) SetScene(s *scene.Scene) {
	c.scene = s
	c.dragging = false
}

// HandleChar applies the single-key commands: w wireframe, s solid, p pause,
// + and - speed while the animation runs.
func (c *Controls) HandleChar(ch rune) {
	if c.scene == nil {
		return
	}
	switch ch {
	case 'w':
		c.scene.State.Options.Mode = renderer.Wireframe
	case 's':
		c.scene.State.Options.Mode = renderer.Filled
	case 'p':
		running := c.scene.Clock.Toggle()
		logger.Log.Debug("Animation toggled", zap.Bool("running", running))
	case '+':
		c.scene.Clock.Faster()
	case '-':
		c.scene.Clock.Slower()
	}
}

// BeginDrag starts an orbit at the given cursor position.
func (c *Controls) BeginDrag(x, y float64) {
	c.dragging = true
	c.lastX, c.lastY = x, y
}

func (c *Controls) EndDrag() {
	c.dragging = false
}

// MoveCursor orbits the camera by the cursor delta while dragging.
func (c *Controls) MoveCursor(x, y float64) {
	if !c.dragging || c.scene == nil {
		return
	}
	dx := x - c.lastX
	dy := c.lastY - y // Reversed since y-coordinates go from bottom to top
	c.lastX, c.lastY = x, y
	c.scene.State.Camera.ProcessMouseDrag(float32(dx), float32(dy))
}

// Scroll zooms the camera; scrolling up narrows the field of view.
func (c *Controls) Scroll(yoff float64) {
	if c.scene == nil {
		return
	}
	c.scene.State.Camera.Zoom(float32(yoff))
}
