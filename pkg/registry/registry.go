// Package registry maps declarative type names onto the native object
// library's constructors.
//
// The mapping is an explicit table: every constructible scene type is
// registered under its lowercase-initial name ("boxGeometry" for
// scene.BoxGeometry) at process start. The process-wide registry returned
// by Builtin is sealed after init and never mutated again; tests build
// their own unsealed registries with probe types.
package registry

import (
	"fmt"
	"reflect"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/go-scenic/scenic/pkg/errors"
)

// PropKind tells the prop applier how a field accepts values.
type PropKind int

const (
	// PropAssign means the field takes direct assignment.
	PropAssign PropKind = iota
	// PropMutator means the field exposes a positional Set mutator that
	// should be invoked with spread slice values.
	PropMutator
)

// PropInfo describes one settable field of a native type.
type PropInfo struct {
	// Kind selects assignment or mutator invocation.
	Kind PropKind
	// MutatorArgs is the mutator's positional arity (Kind == PropMutator).
	MutatorArgs int
}

// Constructor builds a native instance from positional construction
// arguments. It must tolerate an empty argument list by falling back to
// the type's documented defaults.
type Constructor func(args Args) (any, error)

// Descriptor is one entry of the registry: everything the reconciler needs
// to construct instances of a declarative type and apply props to them.
type Descriptor struct {
	// Name is the declarative type name (lowercase-initial).
	Name string
	// DefaultAttach is the parent slot a child of this type attaches to
	// when the node does not override it ("geometry", "material"), or ""
	// for generic scene-graph children.
	DefaultAttach string

	construct Constructor
	defaults  any
	props     map[string]PropInfo
}

// NewDescriptor builds a descriptor. The constructor is invoked once with
// no arguments to capture a pristine defaults instance; that instance backs
// the removed-prop reset policy and the prop capability table.
func NewDescriptor(name, defaultAttach string, construct Constructor) (*Descriptor, error) {
	defaults, err := construct(nil)
	if err != nil {
		return nil, fmt.Errorf("capturing defaults for %q: %w", name, err)
	}
	return &Descriptor{
		Name:          name,
		DefaultAttach: defaultAttach,
		construct:     construct,
		defaults:      defaults,
		props:         buildPropTable(defaults),
	}, nil
}

// New constructs a native instance from the given construction arguments.
// Constructor panics surface as ConstructionError rather than crashing the
// mount.
func (d *Descriptor) New(args []any) (instance any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &errors.ConstructionError{
				TypeName: d.Name,
				Args:     args,
				Err:      fmt.Errorf("constructor panicked: %v", r),
			}
		}
	}()
	instance, err = d.construct(Args(args))
	if err != nil {
		return nil, &errors.ConstructionError{TypeName: d.Name, Args: args, Err: err}
	}
	return instance, nil
}

// Defaults returns the pristine instance captured at registration. Callers
// read default field values from it and must not mutate it.
func (d *Descriptor) Defaults() any {
	return d.defaults
}

// Prop looks up the capability entry for a top-level field name
// (lowercase-initial).
func (d *Descriptor) Prop(name string) (PropInfo, bool) {
	info, ok := d.props[name]
	return info, ok
}

// Registry is a lookup table from declarative type names to descriptors.
type Registry struct {
	mu          sync.RWMutex
	descriptors map[string]*Descriptor
	sealed      bool
}

// New creates an empty, unsealed registry.
func New() *Registry {
	return &Registry{descriptors: make(map[string]*Descriptor)}
}

// Register adds a descriptor. Registering on a sealed registry or reusing
// a name fails.
func (r *Registry) Register(d *Descriptor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sealed {
		return fmt.Errorf("registry is sealed; cannot register %q", d.Name)
	}
	if _, exists := r.descriptors[d.Name]; exists {
		return fmt.Errorf("type %q already registered", d.Name)
	}
	r.descriptors[d.Name] = d
	return nil
}

// MustRegister is Register that panics on error, for init-time tables.
func (r *Registry) MustRegister(d *Descriptor) {
	if err := r.Register(d); err != nil {
		panic(err)
	}
}

// Seal freezes the registry. Resolve keeps working; Register fails.
func (r *Registry) Seal() {
	r.mu.Lock()
	r.sealed = true
	r.mu.Unlock()
}

// Resolve returns the descriptor for a declarative type name. Lookup is
// case-normalized on the first rune, so "BoxGeometry" resolves to the
// "boxGeometry" entry. Unknown names return UnknownTypeError.
func (r *Registry) Resolve(typeName string) (*Descriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if d, ok := r.descriptors[typeName]; ok {
		return d, nil
	}
	if normalized := lowerFirst(typeName); normalized != typeName {
		if d, ok := r.descriptors[normalized]; ok {
			return d, nil
		}
	}
	return nil, &errors.UnknownTypeError{TypeName: typeName}
}

// Names returns the registered type names in no particular order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.descriptors))
	for name := range r.descriptors {
		names = append(names, name)
	}
	return names
}

// lowerFirst lowercases the first rune of s.
func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	if !unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// buildPropTable introspects a pristine instance once at registration time,
// recording for every exported field whether the applier should assign
// directly or invoke a positional Set mutator. Embedded structs are
// flattened so base fields (Position, Visible) appear as top-level props.
func buildPropTable(defaults any) map[string]PropInfo {
	table := make(map[string]PropInfo)
	t := reflect.TypeOf(defaults)
	if t == nil {
		return table
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return table
	}
	collectFields(t, table)
	return table
}

func collectFields(t reflect.Type, table map[string]PropInfo) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous {
			embedded := field.Type
			if embedded.Kind() == reflect.Pointer {
				embedded = embedded.Elem()
			}
			if embedded.Kind() == reflect.Struct {
				collectFields(embedded, table)
			}
			continue
		}
		if !field.IsExported() {
			continue
		}
		name := lowerFirst(field.Name)
		if info, ok := mutatorInfo(field.Type); ok {
			table[name] = info
		} else {
			table[name] = PropInfo{Kind: PropAssign}
		}
	}
}

// mutatorInfo reports whether a pointer to fieldType exposes a positional
// multi-argument Set method.
func mutatorInfo(fieldType reflect.Type) (PropInfo, bool) {
	method, ok := reflect.PointerTo(fieldType).MethodByName("Set")
	if !ok {
		return PropInfo{}, false
	}
	// NumIn includes the receiver; a mutator takes at least two values.
	arity := method.Type.NumIn() - 1
	if arity < 2 {
		return PropInfo{}, false
	}
	return PropInfo{Kind: PropMutator, MutatorArgs: arity}, true
}
