// Package snapshot rasterizes a playground frame in software so it can be
// inspected without a window or a GPU.
package snapshot

import (
	"errors"
	"image"

	"github.com/fogleman/fauxgl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/nfnt/resize"
	"github.com/soypat/glcube/camera"
	"github.com/soypat/glcube/mesh"
)

// Config sets the output image.
type Config struct {
	// Width and Height of the output image in pixels.
	Width, Height int
	// Scale is the supersampling factor. Values below 1 are treated as 1.
	Scale int
	// Background is the opaque RGB clear color.
	Background [3]float32
}

// DefaultConfig matches the playground window at 2x supersampling.
func DefaultConfig() Config {
	return Config{Width: 1280, Height: 720, Scale: 2}
}

// Render draws meshes as seen by cam, interpolating the per-vertex colors
// across each triangle. Meshes share colors the same way the GPU renderer does.
func Render(cfg Config, cam camera.Camera, colors mesh.Colors, meshes ...mesh.Mesh) (image.Image, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, errors.New("invalid snapshot size")
	}
	if err := cam.Validate(); err != nil {
		return nil, err
	}
	scale := max(cfg.Scale, 1)
	var triangles []*fauxgl.Triangle
	for _, m := range meshes {
		if err := m.Validate(); err != nil {
			return nil, err
		}
		c, err := colors.For(m)
		if err != nil {
			return nil, err
		}
		triangles = append(triangles, coloredTriangles(m, c)...)
	}
	if len(triangles) == 0 {
		return nil, errors.New("no meshes to render")
	}

	context := fauxgl.NewContext(cfg.Width*scale, cfg.Height*scale)
	bg := cfg.Background
	context.ClearColorBufferWith(fauxgl.Color{R: float64(bg[0]), G: float64(bg[1]), B: float64(bg[2]), A: 1})
	context.ClearDepthBuffer()
	// The cube winding is not consistent, draw both faces like the GL path.
	context.Cull = fauxgl.CullNone

	aspect := float64(cfg.Width) / float64(cfg.Height)
	matrix := fauxgl.LookAt(vector(cam.Eye), vector(cam.Center), vector(cam.Up)).
		Perspective(float64(cam.FovY), aspect, float64(cam.Near), float64(cam.Far))
	context.Shader = &vertexColorShader{Matrix: matrix}
	context.DrawMesh(fauxgl.NewTriangleMesh(triangles))

	img := context.Image()
	if scale > 1 {
		// downsample image for antialiasing
		img = resize.Resize(uint(cfg.Width), uint(cfg.Height), img, resize.Bilinear)
	}
	return img, nil
}

// Save writes img to path in PNG format.
func Save(path string, img image.Image) error {
	return fauxgl.SavePNG(path, img)
}

func coloredTriangles(m mesh.Mesh, colors mesh.Colors) []*fauxgl.Triangle {
	vertex := func(i int) fauxgl.Vertex {
		p := m.Vertex(i)
		r, g, b := colors.Vertex(i)
		return fauxgl.Vertex{
			Position: fauxgl.V(p.X, p.Y, p.Z),
			Color:    fauxgl.Color{R: float64(r), G: float64(g), B: float64(b), A: 1},
		}
	}
	t := make([]*fauxgl.Triangle, m.TriangleCount())
	for i := range t {
		t[i] = &fauxgl.Triangle{
			V1: vertex(3 * i),
			V2: vertex(3*i + 1),
			V3: vertex(3*i + 2),
		}
	}
	return t
}

func vector(v mgl32.Vec3) fauxgl.Vector {
	return fauxgl.V(float64(v[0]), float64(v[1]), float64(v[2]))
}

// vertexColorShader is the software counterpart of the embedded GLSL
// shaders: transform by the MVP matrix, output the interpolated vertex color.
type vertexColorShader struct {
	Matrix fauxgl.Matrix
}

func (s *vertexColorShader) Vertex(v fauxgl.Vertex) fauxgl.Vertex {
	v.Output = s.Matrix.MulPositionW(v.Position)
	return v
}

func (s *vertexColorShader) Fragment(v fauxgl.Vertex) fauxgl.Color {
	return v.Color
}
