package cmd

import (
	"fmt"

	"github.com/go-scenic/scenic/cmd/scenic/internal/sceneio"
	"github.com/go-scenic/scenic/pkg/core"
)

func init() {
	RegisterCommand(&Command{
		Name:  "inspect",
		Short: "Print the mounted instance tree of a scene document",
		Long: `Inspect mounts a scene document and prints the resulting instance
tree: one line per instance with its type, key, attachment slot,
construction arguments, and interesting native state.`,
		Usage: "scenic inspect <scene.yaml>",
		Run:   runInspect,
	})
}

func runInspect(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("inspect requires exactly one scene document path")
	}

	doc, err := sceneio.Load(args[0])
	if err != nil {
		return err
	}

	reconciler := core.NewReconciler(nil)
	root, err := reconciler.Mount(doc.SceneNode(), nil)
	if err != nil {
		return err
	}
	defer reconciler.Unmount(root)

	fmt.Print(core.TreeDump(root))

	if camera := doc.CameraNode(); camera != nil {
		instance, err := reconciler.Mount(camera, nil)
		if err != nil {
			return err
		}
		defer reconciler.Unmount(instance)
		fmt.Print(core.TreeDump(instance))
	}
	return nil
}
