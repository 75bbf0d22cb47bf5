package app

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/all-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/soypat/glcube/config"
)

// Context version requested from GLFW and required from the driver.
const glMajor, glMinor = 3, 3

// msaaSamples is the number of samples per pixel of the default framebuffer.
const msaaSamples = 4

// requiredProcs are the GL entry points the renderer and shader packages call.
var requiredProcs = []string{
	"glAttachShader", "glBindBuffer", "glBindVertexArray", "glBufferData",
	"glClear", "glClearColor", "glCompileShader", "glCreateProgram",
	"glCreateShader", "glDeleteBuffers", "glDeleteProgram", "glDeleteShader",
	"glDeleteVertexArrays", "glDepthFunc", "glDetachShader",
	"glDisableVertexAttribArray", "glDrawArrays", "glEnable",
	"glEnableVertexAttribArray", "glGenBuffers", "glGenVertexArrays",
	"glGetIntegerv", "glGetProgramInfoLog", "glGetProgramiv",
	"glGetShaderInfoLog", "glGetShaderiv", "glGetString",
	"glGetUniformLocation", "glLinkProgram", "glShaderSource",
	"glUniformMatrix4fv", "glUseProgram", "glVertexAttribPointer", "glViewport",
}

// openWindow initializes GLFW and creates a window with a current
// OpenGL 3.3 core context. The returned function terminates GLFW.
func openWindow(cfg config.Config) (*glfw.Window, func(), error) {
	if err := glfw.Init(); err != nil {
		return nil, nil, err
	}
	glfw.WindowHint(glfw.Samples, msaaSamples)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, glMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, glMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	// Required to get a core context on macOS.
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, nil, err
	}
	window.MakeContextCurrent()
	return window, glfw.Terminate, nil
}

// initGL loads the GL bindings for the current context and checks the
// driver provides what the renderer calls.
func initGL() error {
	if missing := missingProcs(glfw.GetProcAddress, requiredProcs); len(missing) > 0 {
		return fmt.Errorf("driver lacks %s", strings.Join(missing, ", "))
	}
	if err := gl.Init(); err != nil {
		return err
	}
	var major, minor int32
	gl.GetIntegerv(gl.MAJOR_VERSION, &major)
	gl.GetIntegerv(gl.MINOR_VERSION, &minor)
	if !versionAtLeast(int(major), int(minor), glMajor, glMinor) {
		return fmt.Errorf("got OpenGL %d.%d, need %d.%d", major, minor, glMajor, glMinor)
	}
	return nil
}

func missingProcs(lookup func(name string) unsafe.Pointer, names []string) (missing []string) {
	for _, name := range names {
		if lookup(name) == nil {
			missing = append(missing, name)
		}
	}
	return missing
}

func versionAtLeast(major, minor, wantMajor, wantMinor int) bool {
	return major > wantMajor || (major == wantMajor && minor >= wantMinor)
}
