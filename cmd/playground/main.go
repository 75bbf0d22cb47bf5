// Command playground draws a cube and a triangle with per-vertex colors that
// change every frame. Press Escape or close the window to exit.
//
//	playground [-config playground.json] [-vert simple.vert -frag simple.frag]
//	playground -snapshot frame.png
//	playground -stl scene.stl
//	playground -width 800 -height 600 -saveconfig playground.json
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/soypat/glcube/app"
	"github.com/soypat/glcube/config"
	"github.com/soypat/glcube/mesh"
	"github.com/soypat/glcube/shader"
	"github.com/soypat/glcube/snapshot"
	"github.com/soypat/glgl/v4.6-core/glgl"
)

func init() {
	// GLFW event handling and GL calls must run on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("playground: ")
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("playground", flag.ContinueOnError)
	var (
		configPath   = fs.String("config", "playground.json", "JSON configuration file, ignored if missing")
		width        = fs.Int("width", 0, "window width in pixels")
		height       = fs.Int("height", 0, "window height in pixels")
		title        = fs.String("title", "", "window title")
		vert         = fs.String("vert", "", "vertex shader file")
		frag         = fs.String("frag", "", "fragment shader file")
		combined     = fs.String("shader", "", "combined vertex and fragment shader file")
		seed         = fs.Int64("seed", 0, "color generator seed, 0 picks a time based seed")
		logFPS       = fs.Bool("fps", false, "log frames per second")
		noVSync      = fs.Bool("novsync", false, "do not wait for vertical sync on buffer swap")
		snapshotPath = fs.String("snapshot", "", "render one frame in software to this PNG file and exit")
		stlPath      = fs.String("stl", "", "write the scene meshes to this STL file and exit")
		saveConfig   = fs.String("saveconfig", "", "write the effective configuration to this JSON file and exit")
	)
	if err := fs.Parse(args); errors.Is(err, flag.ErrHelp) {
		return nil
	} else if err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "title":
			cfg.Title = *title
		case "vert":
			cfg.VertexShader = *vert
		case "frag":
			cfg.FragmentShader = *frag
		case "shader":
			cfg.CombinedShader = *combined
		case "seed":
			cfg.Seed = *seed
		case "fps":
			cfg.LogFPS = *logFPS
		case "novsync":
			cfg.VSync = !*noVSync
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	scene := mesh.Scene()
	switch {
	case *saveConfig != "":
		if err := config.Save(*saveConfig, cfg); err != nil {
			return fmt.Errorf("saving configuration: %w", err)
		}
		log.Printf("wrote %s", *saveConfig)
		return nil
	case *stlPath != "":
		if err := mesh.CreateSTL(*stlPath, scene...); err != nil {
			return fmt.Errorf("writing STL: %w", err)
		}
		bb, err := mesh.Bounds(scene...)
		if err != nil {
			return err
		}
		log.Printf("wrote %s (bounds centered at %v, size %v)", *stlPath, bb.Center(), bb.Size())
		return nil
	case *snapshotPath != "":
		return writeSnapshot(cfg, *snapshotPath)
	}

	src, err := loadShaders(cfg)
	if err != nil {
		return err
	}
	return app.Run(cfg, src)
}

func loadShaders(cfg config.Config) (glgl.ShaderSource, error) {
	switch {
	case cfg.CombinedShader != "":
		return shader.LoadCombined(cfg.CombinedShader)
	case cfg.VertexShader != "":
		return shader.Load(cfg.VertexShader, cfg.FragmentShader)
	}
	return shader.Default(), nil
}

func writeSnapshot(cfg config.Config, path string) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	scene := mesh.Scene()
	colors := mesh.NewColorsFor(scene...)
	colors.Randomize(rand.New(rand.NewSource(seed)))

	scfg := snapshot.DefaultConfig()
	scfg.Width, scfg.Height = cfg.Width, cfg.Height
	copy(scfg.Background[:], cfg.ClearColor[:3])
	tstart := time.Now()
	img, err := snapshot.Render(scfg, cfg.Camera, colors, scene...)
	if err != nil {
		return fmt.Errorf("rendering snapshot: %w", err)
	}
	if err := snapshot.Save(path, img); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	log.Printf("wrote %s in %s (seed %d)", path, time.Since(tstart).Round(time.Millisecond), seed)
	return nil
}
