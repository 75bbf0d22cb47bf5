// Package glrender owns the GPU side of the playground: the vertex array,
// one static position buffer per mesh and a color buffer shared by all
// meshes which is re-uploaded before every draw call, sized for the mesh
// being drawn.
//
// All functions require the GL context to be current on the calling thread.
package glrender

import (
	"errors"

	"github.com/go-gl/gl/all-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/soypat/glcube/camera"
	"github.com/soypat/glcube/mesh"
	"github.com/soypat/glcube/shader"
)

const sizeofFloat32 = 4

// Renderer draws a fixed set of meshes with a fixed camera.
type Renderer struct {
	prog     shader.Program
	vao      uint32
	colorVBO uint32
	mvpLoc   int32
	clear    [4]float32
	objects  []object
}

type object struct {
	mesh mesh.Mesh
	vbo  uint32
	// mvp is computed once, the camera does not move.
	mvp mgl32.Mat4
}

// New uploads the meshes to static vertex buffers and prepares prog for
// drawing them as seen by cam. Every mesh is placed at the origin.
func New(prog shader.Program, cam camera.Camera, aspect float32, meshes ...mesh.Mesh) (*Renderer, error) {
	if len(meshes) == 0 {
		return nil, errors.New("no meshes to render")
	}
	if err := cam.Validate(); err != nil {
		return nil, err
	}
	for _, m := range meshes {
		if err := m.Validate(); err != nil {
			return nil, err
		}
	}

	mvpLoc, err := prog.UniformLocation(shader.MVPUniform)
	if err != nil {
		return nil, err
	}
	r := &Renderer{prog: prog, mvpLoc: mvpLoc}
	prog.Bind()

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	colorSize := 0
	model := mgl32.Ident4()
	for _, m := range meshes {
		obj := object{
			mesh: m,
			mvp:  cam.MVP(aspect, model),
		}
		gl.GenBuffers(1, &obj.vbo)
		gl.BindBuffer(gl.ARRAY_BUFFER, obj.vbo)
		gl.BufferData(gl.ARRAY_BUFFER, m.SizeBytes(), gl.Ptr(m.Positions), gl.STATIC_DRAW)
		r.objects = append(r.objects, obj)
		colorSize = max(colorSize, m.SizeBytes())
	}

	// Contents are replaced every frame.
	gl.GenBuffers(1, &r.colorVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.colorVBO)
	gl.BufferData(gl.ARRAY_BUFFER, colorSize, nil, gl.STREAM_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	// Accept fragment if it is closer to the camera than the former one.
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	return r, nil
}

// SetClearColor sets the RGBA background color.
func (r *Renderer) SetClearColor(c [4]float32) { r.clear = c }

// Draw renders one frame. colors must hold at least one color per vertex of
// the largest mesh; smaller meshes use a prefix of it.
func (r *Renderer) Draw(colors mesh.Colors) error {
	gl.ClearColor(r.clear[0], r.clear[1], r.clear[2], r.clear[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.prog.Bind()
	gl.BindVertexArray(r.vao)
	gl.EnableVertexAttribArray(shader.PositionAttrib)
	gl.EnableVertexAttribArray(shader.ColorAttrib)
	defer func() {
		gl.DisableVertexAttribArray(shader.PositionAttrib)
		gl.DisableVertexAttribArray(shader.ColorAttrib)
	}()

	for i := range r.objects {
		obj := &r.objects[i]
		c, err := colors.For(obj.mesh)
		if err != nil {
			return err
		}
		gl.UniformMatrix4fv(r.mvpLoc, 1, false, &obj.mvp[0])

		gl.BindBuffer(gl.ARRAY_BUFFER, obj.vbo)
		gl.VertexAttribPointerWithOffset(shader.PositionAttrib, mesh.CoordsPerVertex, gl.FLOAT, false, 0, 0)

		gl.BindBuffer(gl.ARRAY_BUFFER, r.colorVBO)
		gl.BufferData(gl.ARRAY_BUFFER, len(c)*sizeofFloat32, gl.Ptr(c), gl.STREAM_DRAW)
		gl.VertexAttribPointerWithOffset(shader.ColorAttrib, mesh.CoordsPerVertex, gl.FLOAT, false, 0, 0)

		gl.DrawArrays(gl.TRIANGLES, 0, int32(obj.mesh.VertexCount()))
	}
	return nil
}

// Delete releases every GPU handle owned by the renderer, program included.
func (r *Renderer) Delete() {
	for i := range r.objects {
		gl.DeleteBuffers(1, &r.objects[i].vbo)
	}
	gl.DeleteBuffers(1, &r.colorVBO)
	r.prog.Delete()
	gl.DeleteVertexArrays(1, &r.vao)
	r.objects = nil
}
