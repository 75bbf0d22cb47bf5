package shader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/soypat/glgl/v4.6-core/glgl"
)

func TestDefault(t *testing.T) {
	src := Default()
	for _, test := range []struct {
		name   string
		source string
		want   []string
	}{
		{"vertex", src.Vertex, []string{"#version 330 core", "uniform mat4 " + MVPUniform, "location = 0", "location = 1"}},
		{"fragment", src.Fragment, []string{"#version 330 core", "in vec3 fragmentColor"}},
	} {
		for _, want := range test.want {
			if !strings.Contains(test.source, want) {
				t.Errorf("%s shader missing %q", test.name, want)
			}
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	vert := filepath.Join(dir, "simple.vertexshader")
	frag := filepath.Join(dir, "simple.fragmentshader")
	err := os.WriteFile(vert, []byte(Default().Vertex), 0644)
	if err != nil {
		t.Fatal(err)
	}
	err = os.WriteFile(frag, []byte(Default().Fragment), 0644)
	if err != nil {
		t.Fatal(err)
	}
	src, err := Load(vert, frag)
	if err != nil {
		t.Fatal(err)
	}
	if src.Vertex != Default().Vertex || src.Fragment != Default().Fragment {
		t.Fatal("loaded sources differ from files")
	}

	if _, err := Load(filepath.Join(dir, "missing"), frag); err == nil {
		t.Error("expected error for missing vertex shader")
	}
	if _, err := Load(vert, filepath.Join(dir, "missing")); err == nil {
		t.Error("expected error for missing fragment shader")
	}
	empty := filepath.Join(dir, "empty")
	if err := os.WriteFile(empty, []byte("  \n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(vert, empty); err == nil {
		t.Error("expected error for empty fragment shader")
	}
}

func TestLoadCombinedMissing(t *testing.T) {
	_, err := LoadCombined(filepath.Join(t.TempDir(), "nope.glsl"))
	if err == nil {
		t.Fatal("expected error")
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCombined(t *testing.T) {
	def := Default()
	path := writeFile(t, "simple.glsl", "// passthrough colors\n#shader vertex\n"+def.Vertex+"#shader fragment\n"+def.Fragment)
	src, err := LoadCombined(path)
	if err != nil {
		t.Fatal(err)
	}
	if src.Vertex != def.Vertex {
		t.Errorf("vertex stage mismatch:\n%q\nwant\n%q", src.Vertex, def.Vertex)
	}
	if src.Fragment != def.Fragment {
		t.Errorf("fragment stage mismatch:\n%q\nwant\n%q", src.Fragment, def.Fragment)
	}
}

func TestLoadCombinedRejects(t *testing.T) {
	def := Default()
	for _, test := range []struct {
		name    string
		content string
	}{
		{"vertex only", "#shader vertex\n" + def.Vertex},
		{"fragment only", "#shader fragment\n" + def.Fragment},
		{"no pragmas", def.Vertex},
		{"unknown stage", "#shader geometry\n" + def.Vertex},
		{"compute", "#shader vertex\n" + def.Vertex + "#shader fragment\n" + def.Fragment + "#shader compute\nvoid main(){}\n"},
	} {
		path := writeFile(t, "bad.glsl", test.content)
		if _, err := LoadCombined(path); err == nil {
			t.Errorf("%s: expected error", test.name)
		}
	}
}

func TestCompileRejectsMissingStage(t *testing.T) {
	// Rejected before any GL call, no context needed.
	def := Default()
	for _, src := range []glgl.ShaderSource{
		{},
		{Vertex: def.Vertex},
		{Fragment: def.Fragment},
		{Vertex: "\x00", Fragment: def.Fragment},
		{Vertex: def.Vertex, Fragment: def.Fragment, Compute: "void main(){}"},
	} {
		if _, err := Compile(src); err == nil {
			t.Errorf("expected error compiling %+v", src)
		}
	}
}

func TestCSource(t *testing.T) {
	for _, test := range []struct {
		in, want string
	}{
		{"MVP", "MVP\x00"},
		{"MVP\x00", "MVP\x00"},
		{"void main(){}\n\x00\x00", "void main(){}\n\x00"},
		{"", "\x00"},
	} {
		if got := cSource(test.in); got != test.want {
			t.Errorf("cSource(%q) = %q, want %q", test.in, got, test.want)
		}
	}
}

func TestZeroProgramDelete(t *testing.T) {
	// A program that was never linked releases nothing and needs no context.
	var p Program
	p.Delete()
	if p.ID() != 0 {
		t.Fatalf("got ID %d", p.ID())
	}
}
