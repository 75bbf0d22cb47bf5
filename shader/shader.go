// Package shader loads GLSL sources and compiles them into GL programs.
//
// Compilation goes through the all-core bindings only, so a 3.3 core
// context is enough.
//
// Programs read vertex positions from attribute location [PositionAttrib],
// vertex colors from [ColorAttrib] and the transform from the [MVPUniform] uniform.
package shader

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/soypat/glgl/v4.6-core/glgl"
)

const (
	PositionAttrib = 0
	ColorAttrib    = 1
	MVPUniform     = "MVP"
)

var (
	//go:embed default.vert
	defaultVertex string
	//go:embed default.frag
	defaultFragment string
)

// Default returns the embedded shader pair which passes vertex colors
// through to the fragment stage untouched.
func Default() glgl.ShaderSource {
	return glgl.ShaderSource{
		Vertex:   defaultVertex,
		Fragment: defaultFragment,
	}
}

// Load reads a vertex and a fragment shader from disk.
func Load(vertexPath, fragmentPath string) (glgl.ShaderSource, error) {
	vertex, err := readSource(vertexPath)
	if err != nil {
		return glgl.ShaderSource{}, err
	}
	fragment, err := readSource(fragmentPath)
	if err != nil {
		return glgl.ShaderSource{}, err
	}
	return glgl.ShaderSource{Vertex: vertex, Fragment: fragment}, nil
}

// LoadCombined reads a single file containing both shader stages, each
// preceded by a #shader directive.
func LoadCombined(path string) (glgl.ShaderSource, error) {
	fp, err := os.Open(path)
	if err != nil {
		return glgl.ShaderSource{}, err
	}
	defer fp.Close()
	ss, err := glgl.ParseCombined(fp)
	if err != nil {
		return glgl.ShaderSource{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if ss.Compute != "" {
		return glgl.ShaderSource{}, fmt.Errorf("%s: compute shaders are not supported", path)
	}
	// Stages come back null terminated, Load's do not.
	ss.Vertex = strings.TrimRight(ss.Vertex, "\x00")
	ss.Fragment = strings.TrimRight(ss.Fragment, "\x00")
	if strings.TrimSpace(ss.Vertex) == "" || strings.TrimSpace(ss.Fragment) == "" {
		return glgl.ShaderSource{}, fmt.Errorf("%s: need both vertex and fragment shaders", path)
	}
	return ss, nil
}

func readSource(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	src := string(b)
	if strings.TrimSpace(src) == "" {
		return "", fmt.Errorf("%s: empty shader source", path)
	}
	return src, nil
}
