// Package camera builds the static projection and view transforms the
// playground renders with.
package camera

import (
	"errors"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a perspective camera looking from Eye towards Center.
type Camera struct {
	Eye    mgl32.Vec3 `json:"eye"`
	Center mgl32.Vec3 `json:"center"`
	Up     mgl32.Vec3 `json:"up"`
	// FovY is the vertical field of view in degrees.
	FovY float32 `json:"fovy"`
	// Near and Far delimit the display range in world units.
	Near float32 `json:"near"`
	Far  float32 `json:"far"`
}

// Default returns the playground camera: 45° field of view, display range
// 0.1 to 100 units, placed at (10,-10,10) looking at the origin with Y up.
func Default() Camera {
	return Camera{
		Eye:    mgl32.Vec3{10, -10, 10},
		Center: mgl32.Vec3{0, 0, 0},
		Up:     mgl32.Vec3{0, 1, 0},
		FovY:   45,
		Near:   0.1,
		Far:    100,
	}
}

// Validate returns an error if the camera cannot produce a well formed
// projection or view matrix.
func (c Camera) Validate() error {
	switch {
	case !(c.FovY > 0 && c.FovY < 180):
		return errors.New("field of view must be in (0, 180) degrees")
	case !(c.Near > 0):
		return errors.New("near plane must be positive")
	case !(c.Far > c.Near):
		return errors.New("far plane must be beyond near plane")
	}
	dir := c.Center.Sub(c.Eye)
	if dir.Len() == 0 {
		return errors.New("camera eye and center coincide")
	}
	if c.Up.Len() == 0 {
		return errors.New("zero up vector")
	}
	const parallelTol = 1e-6
	sin := dir.Normalize().Cross(c.Up.Normalize()).Len()
	if math32.Abs(sin) < parallelTol {
		return errors.New("up vector parallel to view direction")
	}
	return nil
}

// Aspect returns the width/height ratio of a viewport.
func Aspect(width, height int) float32 {
	if height == 0 {
		return 1
	}
	return float32(width) / float32(height)
}

// Projection returns the perspective projection matrix for the aspect ratio.
func (c Camera) Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FovY), aspect, c.Near, c.Far)
}

// View returns the camera matrix.
func (c Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye, c.Center, c.Up)
}

// MVP returns Projection * View * model. Matrix multiplication is applied
// right to left, so model transforms vertices first.
func (c Camera) MVP(aspect float32, model mgl32.Mat4) mgl32.Mat4 {
	return c.Projection(aspect).Mul4(c.View()).Mul4(model)
}
