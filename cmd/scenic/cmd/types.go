package cmd

import (
	"fmt"
	"sort"

	"github.com/go-scenic/scenic/pkg/registry"
)

func init() {
	RegisterCommand(&Command{
		Name:  "types",
		Short: "List constructible type names",
		Long: `Types lists every type name the built-in registry can construct,
one per line, with its default attachment slot when it has one.`,
		Usage: "scenic types",
		Run:   runTypes,
	})
}

func runTypes(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("types takes no arguments")
	}

	reg := registry.Builtin()
	names := reg.Names()
	sort.Strings(names)

	for _, name := range names {
		descriptor, err := reg.Resolve(name)
		if err != nil {
			return err
		}
		if descriptor.DefaultAttach != "" {
			fmt.Printf("%-22s attaches to %q\n", name, descriptor.DefaultAttach)
		} else {
			fmt.Println(name)
		}
	}
	return nil
}
