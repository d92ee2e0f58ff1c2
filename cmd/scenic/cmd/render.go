package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-scenic/scenic/cmd/scenic/internal/config"
	"github.com/go-scenic/scenic/cmd/scenic/internal/sceneio"
	"github.com/go-scenic/scenic/pkg/core"
	"github.com/go-scenic/scenic/pkg/render"
	"github.com/go-scenic/scenic/pkg/scene"
	"github.com/go-scenic/scenic/pkg/spatial"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render a scene document to PNG",
		Long: `Render mounts a scene document and draws one frame to a PNG file.

Surface size and output path come from scenic.yaml when present; flags
override both.

Flags:
  --out PATH    Output file (default: out.png)
  --width N     Surface width in pixels (default: 800)
  --height N    Surface height in pixels (default: 600)`,
		Usage: "scenic render <scene.yaml> [--out PATH] [--width N] [--height N]",
		Run:   runRender,
	})
}

type renderOptions struct {
	scenePath string
	out       string
	width     int
	height    int
}

func parseRenderArgs(args []string, defaults *config.Resolved) (*renderOptions, error) {
	opts := &renderOptions{
		out:    defaults.OutputPath,
		width:  defaults.Width,
		height: defaults.Height,
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--out":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("--out requires a file path")
			}
			i++
			opts.out = args[i]
		case strings.HasPrefix(arg, "--out="):
			opts.out = strings.TrimPrefix(arg, "--out=")
		case arg == "--width", arg == "--height":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("%s requires a number", arg)
			}
			value, err := strconv.Atoi(args[i+1])
			if err != nil || value <= 0 {
				return nil, fmt.Errorf("%s: invalid size %q", arg, args[i+1])
			}
			if arg == "--width" {
				opts.width = value
			} else {
				opts.height = value
			}
			i++
		case strings.HasPrefix(arg, "--"):
			return nil, fmt.Errorf("unknown flag: %s", arg)
		default:
			if opts.scenePath != "" {
				return nil, fmt.Errorf("unexpected argument: %s", arg)
			}
			opts.scenePath = arg
		}
	}

	if opts.scenePath == "" {
		return nil, fmt.Errorf("render requires a scene document path")
	}
	return opts, nil
}

func runRender(args []string) error {
	resolved, err := config.Resolve(".")
	if err != nil {
		return err
	}
	opts, err := parseRenderArgs(args, resolved)
	if err != nil {
		return err
	}

	doc, err := sceneio.Load(opts.scenePath)
	if err != nil {
		return err
	}

	reconciler := core.NewReconciler(nil)
	root, err := reconciler.Mount(doc.SceneNode(), nil)
	if err != nil {
		return err
	}
	defer reconciler.Unmount(root)

	sc, ok := root.Object().(*scene.Scene)
	if !ok {
		return fmt.Errorf("document root must be a scene, got %q", root.TypeName())
	}

	camera, cleanup, err := mountCamera(reconciler, doc)
	if err != nil {
		return err
	}
	defer cleanup()

	target := render.NewTarget(opts.width, opts.height)
	if err := render.NewRenderer().Render(target, sc, camera); err != nil {
		return err
	}

	file, err := os.Create(opts.out)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer file.Close()
	if err := target.EncodePNG(file); err != nil {
		return err
	}

	fmt.Printf("Rendered %s (%dx%d) to %s\n", opts.scenePath, opts.width, opts.height, opts.out)
	return nil
}

// mountCamera mounts the document's camera, or falls back to a perspective
// camera pulled back from the origin.
func mountCamera(reconciler *core.Reconciler, doc *sceneio.Document) (scene.Camera, func(), error) {
	node := doc.CameraNode()
	if node == nil {
		camera := scene.NewPerspectiveCamera(0, 0, 0, 0)
		camera.Position = spatial.V3(0, 0, 5)
		return camera, func() {}, nil
	}

	instance, err := reconciler.Mount(node, nil)
	if err != nil {
		return nil, nil, err
	}
	camera, ok := instance.Object().(scene.Camera)
	if !ok {
		reconciler.Unmount(instance)
		return nil, nil, fmt.Errorf("document camera must be a camera type, got %q", instance.TypeName())
	}
	return camera, func() { reconciler.Unmount(instance) }, nil
}
