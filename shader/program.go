package shader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/gl/all-core/gl"
	"github.com/soypat/glgl/v4.6-core/glgl"
)

// Program is a linked vertex and fragment shader program.
type Program struct {
	id uint32
}

// ID returns the GL name of the program.
func (p Program) ID() uint32 { return p.id }

// Bind makes p the current program.
func (p Program) Bind() { gl.UseProgram(p.id) }

// Delete releases the program. p must not be used afterwards.
func (p Program) Delete() {
	if p.id == 0 {
		return
	}
	gl.UseProgram(0)
	gl.DeleteProgram(p.id)
}

// UniformLocation returns the location of the named uniform. Uniforms the
// GLSL compiler optimized away are reported as errors.
func (p Program) UniformLocation(name string) (int32, error) {
	loc := gl.GetUniformLocation(p.id, gl.Str(cSource(name)))
	if loc < 0 {
		return loc, fmt.Errorf("shader program has no %q uniform", name)
	}
	return loc, nil
}

// Compile compiles and links src into a program. Requires a current GL context.
func Compile(src glgl.ShaderSource) (Program, error) {
	if src.Compute != "" {
		return Program{}, errors.New("compute shaders are not supported")
	}
	if strings.TrimSpace(strings.TrimRight(src.Vertex, "\x00")) == "" ||
		strings.TrimSpace(strings.TrimRight(src.Fragment, "\x00")) == "" {
		return Program{}, errors.New("missing vertex or fragment shader source")
	}
	vs, err := compileStage(gl.VERTEX_SHADER, src.Vertex)
	if err != nil {
		return Program{}, fmt.Errorf("vertex shader compile: %w", err)
	}
	defer gl.DeleteShader(vs)
	fs, err := compileStage(gl.FRAGMENT_SHADER, src.Fragment)
	if err != nil {
		return Program{}, fmt.Errorf("fragment shader compile: %w", err)
	}
	defer gl.DeleteShader(fs)

	id := gl.CreateProgram()
	if id == 0 {
		return Program{}, errors.New("got invalid program ID, is the GL context current on this thread?")
	}
	gl.AttachShader(id, vs)
	gl.AttachShader(id, fs)
	gl.LinkProgram(id)
	gl.DetachShader(id, vs)
	gl.DetachShader(id, fs)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLength)
		log := infoLog(logLength, func(buf *uint8) { gl.GetProgramInfoLog(id, logLength, nil, buf) })
		gl.DeleteProgram(id)
		return Program{}, fmt.Errorf("link failed: %s", log)
	}
	return Program{id: id}, nil
}

func compileStage(shaderType uint32, source string) (uint32, error) {
	id := gl.CreateShader(shaderType)
	if id == 0 {
		return 0, errors.New("got invalid shader ID")
	}
	csources, free := gl.Strs(cSource(source))
	gl.ShaderSource(id, 1, csources, nil)
	free()
	gl.CompileShader(id)

	var status int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &logLength)
		log := infoLog(logLength, func(buf *uint8) { gl.GetShaderInfoLog(id, logLength, nil, buf) })
		gl.DeleteShader(id)
		return 0, errors.New(log)
	}
	return id, nil
}

func infoLog(length int32, get func(buf *uint8)) string {
	if length <= 0 {
		return "no info log"
	}
	buf := make([]uint8, length+1)
	get(&buf[0])
	return strings.TrimSpace(strings.TrimRight(string(buf), "\x00"))
}

// cSource returns s with exactly one trailing null terminator.
func cSource(s string) string {
	return strings.TrimRight(s, "\x00") + "\x00"
}
