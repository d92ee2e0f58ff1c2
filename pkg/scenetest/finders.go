package scenetest

import (
	"fmt"
	"reflect"

	"github.com/go-scenic/scenic/pkg/core"
)

// Finder locates instances in a mounted tree.
type Finder interface {
	// Matches reports whether one instance satisfies the finder.
	Matches(instance *core.Instance) bool
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder matches with convenient accessors.
type FinderResult struct {
	instances []*core.Instance
	finder    Finder
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() *core.Instance {
	if len(r.instances) == 0 {
		desc := "unknown"
		if r.finder != nil {
			desc = r.finder.Description()
		}
		panic(fmt.Sprintf("finder found no instances: %s", desc))
	}
	return r.instances[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() *core.Instance {
	if len(r.instances) == 0 {
		return nil
	}
	return r.instances[0]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []*core.Instance {
	return r.instances
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.instances)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.instances) > 0
}

// Object returns the native object of the first match. Panics if no matches.
func (r FinderResult) Object() any {
	return r.First().Object()
}

// ByType matches instances whose native object has the exact type T.
func ByType[T any]() Finder {
	return typeFinder{target: reflect.TypeOf((*T)(nil)).Elem()}
}

type typeFinder struct {
	target reflect.Type
}

func (f typeFinder) Matches(instance *core.Instance) bool {
	return reflect.TypeOf(instance.Object()) == f.target
}

func (f typeFinder) Description() string {
	return fmt.Sprintf("ByType[%s]", f.target)
}

// ByTypeName matches instances mounted under a declarative type name.
func ByTypeName(name string) Finder {
	return typeNameFinder{name: name}
}

type typeNameFinder struct {
	name string
}

func (f typeNameFinder) Matches(instance *core.Instance) bool {
	return instance.TypeName() == f.name
}

func (f typeNameFinder) Description() string {
	return fmt.Sprintf("ByTypeName(%q)", f.name)
}

// ByKey matches instances carrying the given reconciliation key.
func ByKey(key any) Finder {
	return keyFinder{key: key}
}

type keyFinder struct {
	key any
}

func (f keyFinder) Matches(instance *core.Instance) bool {
	return reflect.DeepEqual(instance.Key(), f.key)
}

func (f keyFinder) Description() string {
	return fmt.Sprintf("ByKey(%v)", f.key)
}
