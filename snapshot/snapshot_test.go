package snapshot

import (
	"image"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/soypat/glcube/camera"
	"github.com/soypat/glcube/mesh"
	"gonum.org/v1/plot/cmpimg"
)

// small keeps the software rasterizer fast in tests.
var small = Config{Width: 160, Height: 90, Scale: 2}

func TestRenderWhiteScene(t *testing.T) {
	scene := mesh.Scene()
	colors := mesh.NewColorsFor(scene...)
	colors.Fill(1, 1, 1)
	img, err := Render(small, camera.Default(), colors, scene...)
	if err != nil {
		t.Fatal(err)
	}
	b := img.Bounds()
	if b.Dx() != small.Width || b.Dy() != small.Height {
		t.Fatalf("got %dx%d image", b.Dx(), b.Dy())
	}
	// The cube sits at the origin which the camera looks at.
	r, g, bl := rgb8(img, b.Dx()/2, b.Dy()/2)
	if r < 250 || g < 250 || bl < 250 {
		t.Errorf("center pixel not white: %d %d %d", r, g, bl)
	}
	for _, corner := range []image.Point{{0, 0}, {b.Dx() - 1, 0}, {0, b.Dy() - 1}, {b.Dx() - 1, b.Dy() - 1}} {
		r, g, bl := rgb8(img, corner.X, corner.Y)
		if r != 0 || g != 0 || bl != 0 {
			t.Errorf("corner %v not background: %d %d %d", corner, r, g, bl)
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	dir := t.TempDir()
	render := func(name string, seed int64) string {
		scene := mesh.Scene()
		colors := mesh.NewColorsFor(scene...)
		colors.Randomize(rand.New(rand.NewSource(seed)))
		img, err := Render(small, camera.Default(), colors, scene...)
		if err != nil {
			t.Fatal(err)
		}
		path := filepath.Join(dir, name)
		if err := Save(path, img); err != nil {
			t.Fatal(err)
		}
		return path
	}
	a := render("a.png", 1)
	b := render("b.png", 1)
	if !equalImages(t, a, b) {
		t.Error("same seed rendered different images")
	}
	c := render("c.png", 2)
	if equalImages(t, a, c) {
		t.Error("different seeds rendered identical images")
	}
}

func TestRenderErrors(t *testing.T) {
	scene := mesh.Scene()
	colors := mesh.NewColorsFor(scene...)
	if _, err := Render(Config{}, camera.Default(), colors, scene...); err == nil {
		t.Error("expected error for zero size")
	}
	badCam := camera.Default()
	badCam.Far = 0
	if _, err := Render(small, badCam, colors, scene...); err == nil {
		t.Error("expected error for bad camera")
	}
	if _, err := Render(small, camera.Default(), mesh.NewColors(3), scene...); err == nil {
		t.Error("expected error for short color buffer")
	}
	if _, err := Render(small, camera.Default(), colors); err == nil {
		t.Error("expected error for no meshes")
	}
}

func rgb8(img image.Image, x, y int) (r, g, b uint32) {
	b0 := img.Bounds().Min
	r, g, b, _ = img.At(b0.X+x, b0.Y+y).RGBA()
	return r >> 8, g >> 8, b >> 8
}

func equalImages(t *testing.T, png1, png2 string) bool {
	b1 := readFile(t, png1)
	b2 := readFile(t, png2)
	equal, err := cmpimg.EqualApprox("png", b1, b2, 0)
	if err != nil {
		t.Fatal(err)
	}
	return equal
}

func readFile(t *testing.T, path string) []byte {
	fp, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer fp.Close()
	b, err := io.ReadAll(fp)
	if err != nil {
		t.Fatal(err)
	}
	return b
}
