package registry

import (
	"fmt"

	"github.com/go-scenic/scenic/pkg/spatial"
)

// Args is a positional construction-argument list. Accessors coerce the
// loosely typed values a declarative caller supplies (YAML numbers arrive
// as int or float64) into the native constructor's parameter types, and
// fall back to a default when the position is absent.
type Args []any

// Float returns the argument at index i as a float32, or def when absent.
func (a Args) Float(i int, def float32) (float32, error) {
	if i >= len(a) || a[i] == nil {
		return def, nil
	}
	switch v := a[i].(type) {
	case float32:
		return v, nil
	case float64:
		return float32(v), nil
	case int:
		return float32(v), nil
	case int64:
		return float32(v), nil
	default:
		return 0, fmt.Errorf("arg %d: expected number, got %T", i, a[i])
	}
}

// Int returns the argument at index i as an int, or def when absent.
func (a Args) Int(i int, def int) (int, error) {
	if i >= len(a) || a[i] == nil {
		return def, nil
	}
	switch v := a[i].(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	case float32:
		return int(v), nil
	default:
		return 0, fmt.Errorf("arg %d: expected integer, got %T", i, a[i])
	}
}

// Color returns the argument at index i as a color, or def when absent.
// Accepts a spatial.Color value or a hex string.
func (a Args) Color(i int, def spatial.Color) (spatial.Color, error) {
	if i >= len(a) || a[i] == nil {
		return def, nil
	}
	switch v := a[i].(type) {
	case spatial.Color:
		return v, nil
	case string:
		var c spatial.Color
		if err := c.SetHex(v); err != nil {
			return spatial.Color{}, fmt.Errorf("arg %d: %w", i, err)
		}
		return c, nil
	default:
		return spatial.Color{}, fmt.Errorf("arg %d: expected color, got %T", i, a[i])
	}
}
