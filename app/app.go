// Package app runs the playground window: it creates the GL context, sets up
// the renderer and draws frames until Escape is pressed or the window closes.
package app

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/go-gl/gl/all-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/soypat/glcube/camera"
	"github.com/soypat/glcube/config"
	"github.com/soypat/glcube/glrender"
	"github.com/soypat/glcube/internal/fps"
	"github.com/soypat/glcube/mesh"
	"github.com/soypat/glcube/shader"
	"github.com/soypat/glgl/v4.6-core/glgl"
)

var (
	// ErrWindowInit is returned when GLFW or the window and its context cannot be created.
	ErrWindowInit = errors.New("failed to initialize GLFW window")
	// ErrGLInit is returned when the GL bindings cannot be loaded for the
	// context or the driver is older than OpenGL 3.3.
	ErrGLInit = errors.New("failed to initialize OpenGL bindings")
)

// Run opens the window and renders until exit is requested. It must be
// called from the main OS thread.
func Run(cfg config.Config, src glgl.ShaderSource) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	window, terminate, err := openWindow(cfg)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWindowInit, err)
	}
	defer terminate()
	if err := initGL(); err != nil {
		return fmt.Errorf("%w: %v", ErrGLInit, err)
	}
	log.Printf("OpenGL version %s", gl.GoStr(gl.GetString(gl.VERSION)))

	// Ensure we can capture the escape key being pressed below.
	window.SetInputMode(glfw.StickyKeysMode, glfw.True)
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	fbw, fbh := window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbw), int32(fbh))

	prog, err := shader.Compile(src)
	if err != nil {
		return err
	}
	scene := mesh.Scene()
	r, err := glrender.New(prog, cfg.Camera, camera.Aspect(cfg.Width, cfg.Height), scene...)
	if err != nil {
		prog.Delete()
		return err
	}
	defer r.Delete()
	r.SetClearColor(cfg.ClearColor)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("color seed %d", seed)
	rng := rand.New(rand.NewSource(seed))
	colors := mesh.NewColorsFor(scene...)
	counter := fps.Counter{}
	if cfg.LogFPS {
		counter.Report = func(rate float64) { log.Printf("%.1f fps", rate) }
	}

	for {
		colors.Randomize(rng)
		if err := r.Draw(colors); err != nil {
			return err
		}
		window.SwapBuffers()
		glfw.PollEvents()
		counter.Tick(time.Now())
		if exitRequested(window) {
			break
		}
	}
	log.Printf("rendered %d frames", counter.Total())
	return nil
}

func exitRequested(w *glfw.Window) bool {
	return w.GetKey(glfw.KeyEscape) == glfw.Press || w.ShouldClose()
}
