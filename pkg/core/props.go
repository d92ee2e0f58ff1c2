package core

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-scenic/scenic/pkg/errors"
	"github.com/go-scenic/scenic/pkg/registry"
	"github.com/go-scenic/scenic/pkg/spatial"
)

// applyProps computes the property delta between two renders and mutates
// the live native object accordingly. Keys new or changed in newProps are
// applied; keys that disappeared are reset to the value the type's pristine
// defaults instance carries at that path. Each application is independent:
// a failing path is reported as warning-class and the rest of the batch
// still proceeds.
func (r *Reconciler) applyProps(instance *Instance, oldProps, newProps map[string]any) {
	for path, value := range newProps {
		if old, ok := oldProps[path]; ok && reflect.DeepEqual(old, value) {
			continue
		}
		if err := applyProp(instance, path, value); err != nil {
			reportPropError(instance.typeName, err)
		}
	}

	for path := range oldProps {
		if _, ok := newProps[path]; ok {
			continue
		}
		defaultValue, err := readPath(instance.descriptor.Defaults(), path)
		if err != nil {
			reportPropError(instance.typeName, &errors.PropError{
				TypeName: instance.typeName,
				Path:     path,
				Err:      fmt.Errorf("no default to reset to: %w", err),
			})
			continue
		}
		if err := applyProp(instance, path, defaultValue); err != nil {
			reportPropError(instance.typeName, err)
		}
	}
}

// applyProp resolves a (possibly dotted) path against the instance's
// native object and applies one value: through the field's positional Set
// mutator when the value is a slice of matching arity, or by direct
// assignment otherwise.
func applyProp(instance *Instance, path string, value any) error {
	field, err := walkPath(instance.object, path)
	if err != nil {
		return &errors.PropError{TypeName: instance.typeName, Path: path, Err: err}
	}

	if err := setField(field, value, mutatorArity(instance, path)); err != nil {
		return &errors.PropError{TypeName: instance.typeName, Path: path, Err: err}
	}
	return nil
}

// mutatorArity returns the registered mutator arity for a top-level prop,
// or 0 when the path is dotted or not a mutator. Dotted paths fall back to
// runtime probing in setField; top-level paths hit the capability table the
// registry built at registration time.
func mutatorArity(instance *Instance, path string) int {
	if strings.ContainsRune(path, '.') {
		return 0
	}
	if info, ok := instance.descriptor.Prop(path); ok && info.Kind == registry.PropMutator {
		return info.MutatorArgs
	}
	return 0
}

// walkPath resolves a dotted path to an addressable field.
func walkPath(object any, path string) (reflect.Value, error) {
	v := reflect.ValueOf(object)
	if !v.IsValid() {
		return reflect.Value{}, fmt.Errorf("nil instance")
	}

	segments := strings.Split(path, ".")
	for index, segment := range segments {
		for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
			if v.IsNil() {
				return reflect.Value{}, fmt.Errorf("nil value at %q", strings.Join(segments[:index], "."))
			}
			v = v.Elem()
		}
		if v.Kind() != reflect.Struct {
			return reflect.Value{}, fmt.Errorf("cannot descend into %s at %q", v.Kind(), segment)
		}
		field := v.FieldByName(upperFirst(segment))
		if !field.IsValid() {
			return reflect.Value{}, fmt.Errorf("no field %q", segment)
		}
		v = field
	}
	if !v.CanSet() {
		return reflect.Value{}, fmt.Errorf("field %q is not settable", path)
	}
	return v, nil
}

// readPath reads the value at a dotted path, used against pristine
// defaults instances for the removed-prop reset policy.
func readPath(object any, path string) (any, error) {
	v := reflect.ValueOf(object)
	segments := strings.Split(path, ".")
	for index, segment := range segments {
		for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
			if v.IsNil() {
				return nil, fmt.Errorf("nil value at %q", strings.Join(segments[:index], "."))
			}
			v = v.Elem()
		}
		if v.Kind() != reflect.Struct {
			return nil, fmt.Errorf("cannot descend into %s at %q", v.Kind(), segment)
		}
		field := v.FieldByName(upperFirst(segment))
		if !field.IsValid() {
			return nil, fmt.Errorf("no field %q", segment)
		}
		v = field
	}
	return v.Interface(), nil
}

// setField writes one value into an addressable field. Slice values prefer
// the field's positional Set mutator (table-known arity or probed at
// runtime for dotted paths); hex strings feed Color fields through SetHex;
// everything else assigns directly with numeric conversion.
func setField(field reflect.Value, value any, knownArity int) error {
	if values, ok := asSlice(value); ok {
		arity := knownArity
		method := reflect.Value{}
		if field.CanAddr() {
			method = field.Addr().MethodByName("Set")
		}
		if arity == 0 && method.IsValid() {
			arity = method.Type().NumIn()
		}
		if method.IsValid() && arity >= 2 {
			if len(values) != arity {
				return fmt.Errorf("mutator wants %d values, got %d", arity, len(values))
			}
			args := make([]reflect.Value, arity)
			for i, raw := range values {
				converted, err := convertValue(raw, method.Type().In(i))
				if err != nil {
					return fmt.Errorf("mutator arg %d: %w", i, err)
				}
				args[i] = converted
			}
			method.Call(args)
			return nil
		}
	}

	// Hex string into a Color field.
	if hex, ok := value.(string); ok && field.Type() == reflect.TypeOf(spatial.Color{}) {
		var c spatial.Color
		if err := c.SetHex(hex); err != nil {
			return err
		}
		field.Set(reflect.ValueOf(c))
		return nil
	}

	converted, err := convertValue(value, field.Type())
	if err != nil {
		return err
	}
	field.Set(converted)
	return nil
}

// asSlice normalizes the slice shapes a declarative caller can supply.
func asSlice(value any) ([]any, bool) {
	switch v := value.(type) {
	case []any:
		return v, true
	case []float64:
		out := make([]any, len(v))
		for i, f := range v {
			out[i] = f
		}
		return out, true
	case []float32:
		out := make([]any, len(v))
		for i, f := range v {
			out[i] = f
		}
		return out, true
	case []int:
		out := make([]any, len(v))
		for i, n := range v {
			out[i] = n
		}
		return out, true
	default:
		return nil, false
	}
}

// convertValue adapts a loosely typed prop value to the target type.
// Numeric kinds convert freely; anything else must be assignable.
func convertValue(value any, target reflect.Type) (reflect.Value, error) {
	if value == nil {
		return reflect.Zero(target), nil
	}
	v := reflect.ValueOf(value)
	if v.Type().AssignableTo(target) {
		return v, nil
	}
	if isNumericKind(v.Kind()) && isNumericKind(target.Kind()) {
		return v.Convert(target), nil
	}
	return reflect.Value{}, fmt.Errorf("cannot assign %T to %s", value, target)
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// setSlot assigns a child object into the parent field named by slot.
func setSlot(parentObject any, slot string, child any) error {
	field, err := walkPath(parentObject, slot)
	if err != nil {
		return err
	}
	if child == nil {
		field.Set(reflect.Zero(field.Type()))
		return nil
	}
	v := reflect.ValueOf(child)
	if !v.Type().AssignableTo(field.Type()) {
		return fmt.Errorf("cannot attach %T into slot of type %s", child, field.Type())
	}
	field.Set(v)
	return nil
}

// clearSlot zeroes the parent field named by slot, but only if it still
// holds the given child; a replacement mounted into the slot stays.
func clearSlot(parentObject any, slot string, child any) {
	field, err := walkPath(parentObject, slot)
	if err != nil {
		return
	}
	current := field.Interface()
	if current != child {
		return
	}
	field.Set(reflect.Zero(field.Type()))
}

// upperFirst uppercases the first rune of s, turning a declarative prop
// name into the exported Go field name.
func upperFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	if !unicode.IsLower(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
