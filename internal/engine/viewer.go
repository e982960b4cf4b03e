package engine

import (
	"Phong3D/internal/config"
	"Phong3D/internal/logger"
	"Phong3D/internal/renderer"
	"Phong3D/internal/scene"
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

// Viewer owns the window, the GL backend and the live scene, and runs the
// frame loop on a locked OS thread.
type Viewer struct {
	Width       int32
	Height      int32
	cfg         *config.Config
	rendererAPI renderer.Render
	window      *glfw.Window
	frame       *renderer.FrameRenderer
	meshes      *scene.MeshLibrary
	scene       *scene.Scene
	watcher     *scene.Watcher
	controls    Controls
}

func NewViewer(cfg *config.Config) *Viewer {
	return &Viewer{
		cfg:         cfg,
		rendererAPI: &renderer.OpenGLRenderer{},
		Width:       cfg.Window.Width,
		Height:      cfg.Window.Height,
		frame:       renderer.NewFrameRenderer(),
	}
}

// Run opens the window, loads the scene and renders until the window closes
// or a frame fails.
func (v *Viewer) Run() error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := glfw.Init(); err != nil {
		logger.Log.Error("Could not initialize glfw", zap.Error(err))
		return err
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Decorated, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(int(v.Width), int(v.Height), v.cfg.Window.Title, nil, nil)
	if err != nil {
		logger.Log.Error("Could not create glfw window", zap.Error(err))
		return err
	}
	v.window = window
	window.MakeContextCurrent()
	window.SetPos(v.cfg.Window.X, v.cfg.Window.Y)
	glfw.SwapInterval(1)

	// The framebuffer can differ from the window size on high-DPI screens.
	fbw, fbh := window.GetFramebufferSize()
	v.Width, v.Height = int32(fbw), int32(fbh)

	if err := v.rendererAPI.Init(v.Width, v.Height); err != nil {
		return err
	}
	defer v.rendererAPI.Cleanup()
	cc := v.cfg.Render.ClearColor
	v.rendererAPI.SetClearColor(cc[0], cc[1], cc[2])
	styleTitleBar(window, cc[0], cc[1], cc[2])

	v.meshes = scene.NewMeshLibrary(v.rendererAPI)
	s, err := v.loadScene()
	if err != nil {
		return err
	}
	v.setScene(s)

	if path := v.cfg.Scene.Path; path != "" && v.cfg.Scene.Watch {
		w, err := scene.NewWatcher(path)
		if err != nil {
			logger.Log.Warn("Scene reload disabled", zap.String("path", path), zap.Error(err))
		} else {
			v.watcher = w
			defer w.Close()
		}
	}

	v.installCallbacks()
	return v.RenderLoop()
}

func (v *Viewer) loadScene() (*scene.Scene, error) {
	desc := scene.Default()
	if path := v.cfg.Scene.Path; path != "" {
		var err error
		if desc, err = scene.LoadFile(path); err != nil {
			return nil, err
		}
	}
	if skipped := desc.SkipMissingModels(); len(skipped) > 0 {
		logger.Log.Warn("Model files missing, objects skipped",
			zap.String("scene", desc.Name),
			zap.Strings("objects", skipped))
	}
	s, err := scene.Build(desc, v.meshes)
	if err != nil {
		return nil, fmt.Errorf("scene %q: %w", desc.Name, err)
	}
	logger.Log.Info("Scene loaded",
		zap.String("scene", s.Name),
		zap.Int("objects", len(s.State.Objects)),
		zap.Int("lights", len(s.State.Lights)))
	return s, nil
}

func (v *Viewer) setScene(s *scene.Scene) {
	v.scene = s
	v.controls.SetScene(s)
}

// reload swaps in the edited scene file. A broken edit keeps the current
// scene on screen.
func (v *Viewer) reload() {
	s, err := v.loadScene()
	if err != nil {
		logger.Log.Warn("Scene reload failed", zap.Error(err))
		return
	}
	s.KeepClock(v.scene)
	v.setScene(s)
}

func (v *Viewer) RenderLoop() error {
	for !v.window.ShouldClose() {
		if v.watcher != nil {
			select {
			case <-v.watcher.Changes():
				v.reload()
			default:
			}
		}

		// Minimized windows have a zero-height framebuffer.
		if v.Width > 0 && v.Height > 0 {
			v.rendererAPI.BeginFrame(v.scene.State.Options)
			aspect := float32(v.Width) / float32(v.Height)
			if err := v.frame.Render(v.scene.State, aspect, v.rendererAPI, v.rendererAPI); err != nil {
				logger.Log.Error("Frame failed", zap.String("scene", v.scene.Name), zap.Error(err))
				return err
			}
			v.window.SwapBuffers()
		}

		v.scene.Step()
		glfw.PollEvents()
	}
	return nil
}

func (v *Viewer) installCallbacks() {
	v.window.SetCharCallback(func(w *glfw.Window, char rune) {
		v.controls.HandleChar(char)
	})
	v.window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})
	v.window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if button != glfw.MouseButtonLeft {
			return
		}
		if action == glfw.Press {
			v.controls.BeginDrag(w.GetCursorPos())
		} else if action == glfw.Release {
			v.controls.EndDrag()
		}
	})
	v.window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		v.controls.MoveCursor(xpos, ypos)
	})
	v.window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		v.controls.Scroll(yoff)
	})
	v.window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		v.Width, v.Height = int32(width), int32(height)
		v.rendererAPI.UpdateViewport(v.Width, v.Height)
	})
}
