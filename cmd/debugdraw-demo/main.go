// Package main runs an interactive showcase of the debug drawing primitives.
//
// Drag with the right mouse button to orbit, scroll to zoom, WASD/QE to pan.
// Left click traces a ray and a sphere cast into the scene; the results stay
// visible for the configured hit duration. F12 saves a screenshot and C
// clears durable drawings.
package main

import (
	"fmt"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/debugdraw/internal/config"
	"github.com/Faultbox/debugdraw/internal/debugdraw"
	"github.com/Faultbox/debugdraw/internal/engine/camera"
	"github.com/Faultbox/debugdraw/internal/engine/debug"
	"github.com/Faultbox/debugdraw/internal/engine/debugrender"
	"github.com/Faultbox/debugdraw/internal/engine/input"
	"github.com/Faultbox/debugdraw/internal/engine/picking"
	"github.com/Faultbox/debugdraw/internal/engine/window"
	"github.com/Faultbox/debugdraw/internal/logger"
	"github.com/Faultbox/debugdraw/internal/query"
	"github.com/Faultbox/debugdraw/pkg/math"
)

const (
	windowTitle = "Debug Draw"
	nearPlane   = 0.1
	farPlane    = 500
	clickRange  = 100
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Debug Draw Demo ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("demo failed", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("demo closed normally")
}

func run(cfg *config.Config) error {
	win, err := window.New(window.Config{
		Title:      windowTitle,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return err
	}
	defer win.Close()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("initializing OpenGL: %w", err)
	}
	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0)

	backend, err := debugrender.New()
	if err != nil {
		return err
	}
	defer backend.Close()

	loader := debugrender.NewFileIconLoader(cfg.Debug.IconDir)
	vis := debugdraw.New(backend,
		debugdraw.WithIconLoader(loader),
		debugdraw.WithFallbackIcon(debugrender.FallbackIcon()),
		debugdraw.WithLogger(logger.Named("debugdraw")),
		debugdraw.WithHitScale(cfg.Debug.HitScale),
		debugdraw.WithCircleVertices(cfg.Debug.CircleVertices),
		debugdraw.WithIconPixelSize(cfg.Debug.IconPixelSize),
	)
	defer vis.Close()

	settings, err := cfg.Debug.TraceSettings()
	if err != nil {
		return err
	}
	world := newPickWorld()
	tracer := query.NewTracer(world, vis)
	tracer.Settings = settings

	var watcher *debugrender.IconWatcher
	if cfg.Debug.WatchIcons {
		watcher, err = debugrender.WatchIcons(cfg.Debug.IconDir)
		if err != nil {
			logger.Warn("icon watching disabled", zap.Error(err))
		} else {
			defer watcher.Close()
		}
	}

	cam := camera.NewOrbitCamera()
	in := input.New()
	shots := debug.NewScreenshots("screenshots", "debugdraw")
	fovY := math.DegToRad(cfg.Window.FovY)

	for {
		if in.Update() {
			return nil
		}

		if watcher != nil {
			watcher.Poll(vis.Icons().Forget)
		}

		width, height := win.Size()
		fbWidth, fbHeight := win.DrawableSize()
		handleCamera(cam, in)

		proj := math.Perspective(fovY, win.Aspect(), nearPlane, farPlane)
		viewMatrix := cam.ViewMatrix()
		backend.SetCamera(viewMatrix, proj, debugdraw.View{
			Eye:            cam.Position(),
			Forward:        cam.Forward(),
			FovY:           fovY,
			ViewportHeight: float32(fbHeight),
		})

		if x, y, ok := in.Clicked(sdl.BUTTON_LEFT); ok {
			invViewProj := proj.Mul(viewMatrix).Inverse()
			ray := picking.ScreenToRay(float32(x), float32(y), float32(width), float32(height), invViewProj)
			if hit, ok := tracer.Raycast(ray.Origin, ray.Direction, clickRange, query.AllLayers); ok {
				logger.Debug("pick", zap.Float32("distance", hit.Distance),
					zap.Float32("x", hit.Point.X), zap.Float32("y", hit.Point.Y), zap.Float32("z", hit.Point.Z))
			}
			tracer.SphereCast(ray.Origin, 0.25, ray.Direction, clickRange, query.AllLayers)
		}
		if in.IsKeyPressed(sdl.SCANCODE_C) {
			vis.Reset()
		}

		drawScene(vis)
		drawColliders(vis, world)

		gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		backend.Begin()
		vis.Flush()
		// A second flush in the same frame only redraws durable primitives.
		vis.Flush()

		if in.IsKeyPressed(sdl.SCANCODE_F12) {
			saveScreenshot(shots, fbWidth, fbHeight)
		}

		win.SwapBuffers()
	}
}

func handleCamera(cam *camera.OrbitCamera, in *input.Input) {
	for _, e := range in.Events() {
		switch {
		case e.Type == input.EventMouseWheel:
			cam.HandleZoom(float32(e.DeltaY))
		case e.Dragging(sdl.BUTTON_RIGHT):
			cam.HandleDrag(float32(e.DeltaX), float32(e.DeltaY))
		}
	}

	keys := sdl.GetKeyboardState()
	axis := func(pos, neg sdl.Scancode) float32 {
		return float32(keys[pos]) - float32(keys[neg])
	}
	forward := axis(sdl.SCANCODE_W, sdl.SCANCODE_S)
	right := axis(sdl.SCANCODE_D, sdl.SCANCODE_A)
	up := axis(sdl.SCANCODE_E, sdl.SCANCODE_Q)
	if forward != 0 || right != 0 || up != 0 {
		cam.HandleMovement(forward*0.1, right*0.1, up*0.1)
	}
}

func saveScreenshot(shots *debug.Screenshots, width, height int) {
	pixels := make([]byte, width*height*4)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	path, err := shots.SavePixels(pixels, width, height)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}
