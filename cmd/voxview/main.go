// Command voxview meshes one chunk and displays it in an OpenGL window.
package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/xlab/closer"
	"go.uber.org/zap"

	"voxmesh/internal/config"
	"voxmesh/internal/density"
	"voxmesh/internal/graphics"
	"voxmesh/internal/input"
	"voxmesh/internal/logger"
	"voxmesh/internal/meshing"
	"voxmesh/internal/profiling"
)

const (
	lightRange = 100.0
	roughness  = 0.9
)

var baseColor = mgl32.Vec3{0.02, 0.02, 0.02}

func init() {
	runtime.LockOSThread()
}

type viewer struct {
	window    *glfw.Window
	input     *input.Manager
	camera    *graphics.Camera
	shader    *graphics.Shader
	mesh      *graphics.GPUMesh
	model     mgl32.Mat4
	light     mgl32.Vec3
	wireframe bool
	quads     int
	limiter   *graphics.FPSLimiter
}

func main() {
	config.ParseFlags()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "voxview: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "voxview: init logger: %v\n", err)
		os.Exit(1)
	}
	closer.Bind(logger.Sync)

	sampler, err := density.FromConfig(cfg.Density)
	if err != nil {
		logger.Fatal("building density sampler", zap.Error(err))
	}

	if err := glfw.Init(); err != nil {
		logger.Fatal("glfw init", zap.Error(err))
	}

	window, err := setupWindow(cfg.Viewer)
	if err != nil {
		glfw.Terminate()
		logger.Fatal("creating window", zap.Error(err))
	}
	if err := gl.Init(); err != nil {
		glfw.Terminate()
		logger.Fatal("gl init", zap.Error(err))
	}
	logger.Info("OpenGL context ready", zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))))

	v, err := newViewer(window, cfg, sampler)
	if err != nil {
		glfw.Terminate()
		logger.Fatal("setting up scene", zap.Error(err))
	}

	// Signals are delivered on closer's goroutine; GL teardown has to stay
	// on the locked main thread, so the loop is asked to stop instead.
	exitC := make(chan struct{}, 1)
	doneC := make(chan struct{})
	closer.Bind(func() {
		exitC <- struct{}{}
		<-doneC
	})

	v.run(exitC)
	v.release()
	glfw.Terminate()
	close(doneC)

	closer.Close()
}

func setupWindow(vc config.ViewerConfig) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(vc.Width, vc.Height, "voxview", nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	if vc.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	return window, nil
}

func newViewer(window *glfw.Window, cfg *config.Config, sampler density.Sampler) (*viewer, error) {
	shader, err := graphics.NewShader(graphics.MeshVertexShader, graphics.MeshFragmentShader)
	if err != nil {
		return nil, err
	}

	m := meshing.GenerateMesh(cfg.Chunk.EdgeLength, sampler)
	if err := m.Validate(); err != nil {
		shader.Delete()
		return nil, err
	}
	logger.Info("mesh generated",
		zap.Uint32("edge", cfg.Chunk.EdgeLength),
		zap.String("sampler", cfg.Density.Kind),
		zap.Int("quads", m.NumQuads()),
		zap.Int("vertices", m.NumVertices()),
	)

	vc := cfg.Viewer
	w, h := window.GetFramebufferSize()
	v := &viewer{
		window:    window,
		input:     input.NewManager(),
		camera:    graphics.NewLookAtCamera(mgl32.Vec3(vc.Camera), mgl32.Vec3{}, w, h),
		shader:    shader,
		mesh:      graphics.UploadMesh(m),
		model:     mgl32.Translate3D(vc.Placement[0], vc.Placement[1], vc.Placement[2]),
		light:     mgl32.Vec3(vc.Light),
		wireframe: vc.Wireframe,
		quads:     m.NumQuads(),
		limiter:   graphics.NewFPSLimiter(vc.FPSLimit),
	}

	gl.Viewport(0, 0, int32(w), int32(h))
	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(0.53, 0.81, 0.92, 1.0)

	v.input.Attach(window)
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
		v.camera.SetViewport(width, height)
	})
	return v, nil
}

var moves = map[input.Action]graphics.Move{
	input.ActionMoveForward: graphics.MoveForward,
	input.ActionMoveBack:    graphics.MoveBack,
	input.ActionMoveLeft:    graphics.MoveLeft,
	input.ActionMoveRight:   graphics.MoveRight,
	input.ActionMoveUp:      graphics.MoveUp,
	input.ActionMoveDown:    graphics.MoveDown,
}

// handleInput applies the actions pressed since the previous frame.
func (v *viewer) handleInput() {
	for action, move := range moves {
		if v.input.JustPressed(action) {
			v.camera.Step(move)
		}
	}
	if v.input.JustPressed(input.ActionToggleWireframe) {
		v.wireframe = !v.wireframe
		logger.Debug("wireframe toggled", zap.Bool("enabled", v.wireframe))
	}
	if v.input.JustPressed(input.ActionQuit) {
		v.window.SetShouldClose(true)
	}
	v.input.PostUpdate()
}

func (v *viewer) run(exitC <-chan struct{}) {
	frames := 0
	lastFPSCheck := time.Now()

	for !v.window.ShouldClose() {
		select {
		case <-exitC:
			return
		default:
		}

		profiling.ResetFrame()
		v.handleInput()
		v.render()

		func() {
			defer profiling.Track("viewer.SwapBuffers")()
			v.window.SwapBuffers()
		}()
		glfw.PollEvents()
		v.limiter.Wait()

		frames++
		if time.Since(lastFPSCheck) >= time.Second {
			v.window.SetTitle(fmt.Sprintf("voxview | FPS: %d | quads: %d | %s",
				frames, v.quads, profiling.TopN(2)))
			frames = 0
			lastFPSCheck = time.Now()
		}
	}
}

func (v *viewer) render() {
	defer profiling.Track("viewer.Render")()

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	if v.wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	v.shader.Use()
	v.shader.SetMat4("model", v.model)
	v.shader.SetMat4("view", v.camera.ViewMatrix())
	v.shader.SetMat4("proj", v.camera.ProjectionMatrix())
	v.shader.SetVec3("color", baseColor)
	v.shader.SetVec3("lightPos", v.light)
	v.shader.SetFloat("lightRange", lightRange)
	v.shader.SetFloat("roughness", roughness)
	v.mesh.Draw()
}

func (v *viewer) release() {
	v.mesh.Delete()
	v.shader.Delete()
	v.window.Destroy()
}
