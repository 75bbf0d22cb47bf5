package mesh

import (
	"fmt"
	"math/rand"
)

// Colors holds one RGB triple per vertex. A single Colors buffer is shared
// between meshes: a mesh with fewer vertices uses a prefix of it.
type Colors []float32

// NewColors returns a zeroed color buffer for the given number of vertices.
func NewColors(vertices int) Colors {
	return make(Colors, vertices*CoordsPerVertex)
}

// NewColorsFor returns a zeroed color buffer large enough for every mesh.
func NewColorsFor(meshes ...Mesh) Colors {
	n := 0
	for _, m := range meshes {
		n = max(n, m.VertexCount())
	}
	return NewColors(n)
}

// VertexCount returns the number of vertices the buffer holds colors for.
func (c Colors) VertexCount() int { return len(c) / CoordsPerVertex }

// Randomize sets every color component to a pseudo-random value in [0,1).
func (c Colors) Randomize(rng *rand.Rand) {
	for i := range c {
		c[i] = rng.Float32()
	}
}

// Fill sets every vertex to the same color.
func (c Colors) Fill(r, g, b float32) {
	for i := 0; i+2 < len(c); i += CoordsPerVertex {
		c[i], c[i+1], c[i+2] = r, g, b
	}
}

// For returns the prefix of the buffer holding exactly one color per vertex of m.
func (c Colors) For(m Mesh) ([]float32, error) {
	n := m.VertexCount() * CoordsPerVertex
	if n > len(c) {
		return nil, fmt.Errorf("color buffer holds %d vertices, mesh %q needs %d", c.VertexCount(), m.Name, m.VertexCount())
	}
	return c[:n], nil
}

// Vertex returns the color of the i'th vertex.
func (c Colors) Vertex(i int) (r, g, b float32) {
	p := c[i*CoordsPerVertex:]
	return p[0], p[1], p[2]
}
