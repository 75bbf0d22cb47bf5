// Package mesh holds the static geometry drawn by the playground and the
// per-vertex color buffer shared between its meshes.
package mesh

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/soypat/glcube/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// CoordsPerVertex is the number of float32 components of a position or color.
	CoordsPerVertex = 3
	// VerticesPerTriangle is the number of vertices that make up a single triangle.
	VerticesPerTriangle = 3
	sizeofFloat32       = 4
)

// Mesh is a triangle soup: three consecutive XYZ triples in Positions
// make up one triangle.
type Mesh struct {
	Name      string
	Positions []float32
}

// VertexCount returns the number of vertices in the mesh.
func (m Mesh) VertexCount() int { return len(m.Positions) / CoordsPerVertex }

// TriangleCount returns the number of triangles in the mesh.
func (m Mesh) TriangleCount() int { return m.VertexCount() / VerticesPerTriangle }

// SizeBytes is the size of the position data once uploaded to a GPU buffer.
func (m Mesh) SizeBytes() int { return len(m.Positions) * sizeofFloat32 }

// Validate checks the position data describes whole triangles of finite vertices.
func (m Mesh) Validate() error {
	if len(m.Positions) == 0 {
		return fmt.Errorf("mesh %q has no vertices", m.Name)
	}
	if len(m.Positions)%(CoordsPerVertex*VerticesPerTriangle) != 0 {
		return fmt.Errorf("mesh %q: %d position components do not make whole triangles", m.Name, len(m.Positions))
	}
	for i, f := range m.Positions {
		if math32.IsNaN(f) || math32.IsInf(f, 0) {
			return fmt.Errorf("mesh %q: inf/NaN at vertex %d", m.Name, i/CoordsPerVertex)
		}
	}
	return nil
}

// Vertex returns the i'th vertex of the mesh.
func (m Mesh) Vertex(i int) r3.Vec {
	p := m.Positions[i*CoordsPerVertex:]
	return r3.Vec{X: float64(p[0]), Y: float64(p[1]), Z: float64(p[2])}
}

// Triangles returns the mesh as a slice of triangles.
func (m Mesh) Triangles() []r3.Triangle {
	t := make([]r3.Triangle, m.TriangleCount())
	for i := range t {
		t[i] = r3.Triangle{
			m.Vertex(3 * i),
			m.Vertex(3*i + 1),
			m.Vertex(3*i + 2),
		}
	}
	return t
}

// Bounds returns the axis aligned bounding box of the mesh. A mesh with no
// vertices has the zero Box.
func (m Mesh) Bounds() d3.Box {
	n := m.VertexCount()
	if n == 0 {
		return d3.Box{}
	}
	bb := d3.BoxOf(m.Vertex(0))
	for i := 1; i < n; i++ {
		bb = bb.Include(m.Vertex(i))
	}
	return bb
}

// Bounds returns the bounding box enclosing all meshes. Meshes without vertices are ignored.
func Bounds(meshes ...Mesh) (d3.Box, error) {
	var (
		bb    d3.Box
		found bool
	)
	for _, m := range meshes {
		if m.VertexCount() == 0 {
			continue
		}
		if !found {
			bb, found = m.Bounds(), true
			continue
		}
		bb = bb.Extend(m.Bounds())
	}
	if !found {
		return d3.Box{}, errors.New("no vertices to bound")
	}
	return bb, nil
}

// Cube returns the 12 triangle cube spanning [-1,1] in every axis.
func Cube() Mesh {
	return Mesh{Name: "cube", Positions: append([]float32(nil), cubePositions[:]...)}
}

// Triangle returns the lone triangle drawn beside the cube.
func Triangle() Mesh {
	return Mesh{Name: "triangle", Positions: append([]float32(nil), trianglePositions[:]...)}
}

// Scene returns the meshes drawn every frame, in draw order.
func Scene() []Mesh {
	return []Mesh{Cube(), Triangle()}
}

// A cube has 6 faces with 2 triangles each, so this makes 6*2=12 triangles, and 12*3 vertices.
var cubePositions = [12 * 3 * CoordsPerVertex]float32{
	-1.0, -1.0, -1.0, // triangle 1 : begin
	-1.0, -1.0, 1.0,
	-1.0, 1.0, 1.0, // triangle 1 : end
	1.0, 1.0, -1.0, // triangle 2 : begin
	-1.0, -1.0, -1.0,
	-1.0, 1.0, -1.0, // triangle 2 : end
	1.0, -1.0, 1.0,
	-1.0, -1.0, -1.0,
	1.0, -1.0, -1.0,
	1.0, 1.0, -1.0,
	1.0, -1.0, -1.0,
	-1.0, -1.0, -1.0,
	-1.0, -1.0, -1.0,
	-1.0, 1.0, 1.0,
	-1.0, 1.0, -1.0,
	1.0, -1.0, 1.0,
	-1.0, -1.0, 1.0,
	-1.0, -1.0, -1.0,
	-1.0, 1.0, 1.0,
	-1.0, -1.0, 1.0,
	1.0, -1.0, 1.0,
	1.0, 1.0, 1.0,
	1.0, -1.0, -1.0,
	1.0, 1.0, -1.0,
	1.0, -1.0, -1.0,
	1.0, 1.0, 1.0,
	1.0, -1.0, 1.0,
	1.0, 1.0, 1.0,
	1.0, 1.0, -1.0,
	-1.0, 1.0, -1.0,
	1.0, 1.0, 1.0,
	-1.0, 1.0, -1.0,
	-1.0, 1.0, 1.0,
	1.0, 1.0, 1.0,
	-1.0, 1.0, 1.0,
	1.0, -1.0, 1.0,
}

var trianglePositions = [VerticesPerTriangle * CoordsPerVertex]float32{
	-3.0, -2.0, -2.0,
	-2.0, -2.0, -3.0,
	-1.0, 0.0, -1.0,
}
