package errors

import (
	"errors"
	"strings"
	"sync"
	"testing"
)

func TestSceneErrorString(t *testing.T) {
	err := &SceneError{
		Op:   "core.Mount",
		Kind: KindConstruct,
		Err:  &ConstructionError{TypeName: "boxGeometry", Args: []any{1, 2}, Err: errors.New("boom")},
	}
	got := err.Error()
	if got == "" {
		t.Error("expected non-empty error string")
	}
}

func TestSceneErrorWithTypeName(t *testing.T) {
	err := &SceneError{
		Op:       "core.Mount",
		Kind:     KindRegistry,
		TypeName: "boxGeometri",
		Err:      &UnknownTypeError{TypeName: "boxGeometri"},
	}
	got := err.Error()
	want := "type=boxGeometri"
	if !strings.Contains(got, want) {
		t.Errorf("error string %q should contain %q", got, want)
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindRegistry, "registry"},
		{KindConstruct, "construct"},
		{KindProp, "prop"},
		{KindRender, "render"},
		{KindPanic, "panic"},
		{KindParse, "parse"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestUnwrapChain(t *testing.T) {
	inner := errors.New("field not settable")
	prop := &PropError{TypeName: "meshStandardMaterial", Path: "color", Err: inner}
	scene := &SceneError{Op: "core.applyProps", Kind: KindProp, Err: prop}
	if !errors.Is(scene, inner) {
		t.Error("expected errors.Is to reach the inner error through the chain")
	}
	var pe *PropError
	if !errors.As(scene, &pe) {
		t.Fatal("expected errors.As to find PropError")
	}
	if pe.Path != "color" {
		t.Errorf("PropError.Path = %q, want %q", pe.Path, "color")
	}
}

// captureHandler records reported errors for assertions.
type captureHandler struct {
	mu     sync.Mutex
	errs   []*SceneError
	panics []*PanicError
}

func (h *captureHandler) HandleError(err *SceneError) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.errs = append(h.errs, err)
}

func (h *captureHandler) HandlePanic(err *PanicError) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.panics = append(h.panics, err)
}

func TestSetHandlerAndReport(t *testing.T) {
	capture := &captureHandler{}
	SetHandler(capture)
	defer SetHandler(nil)

	Report(&SceneError{Op: "test.op", Kind: KindRender, Err: errors.New("bad frame")})
	if len(capture.errs) != 1 {
		t.Fatalf("expected 1 reported error, got %d", len(capture.errs))
	}
	if capture.errs[0].Timestamp.IsZero() {
		t.Error("Report should stamp a zero Timestamp")
	}
}

func TestRecoverReportsPanic(t *testing.T) {
	capture := &captureHandler{}
	SetHandler(capture)
	defer SetHandler(nil)

	func() {
		defer Recover("test.panics")
		panic("kaboom")
	}()

	if len(capture.panics) != 1 {
		t.Fatalf("expected 1 reported panic, got %d", len(capture.panics))
	}
	if capture.panics[0].Op != "test.panics" {
		t.Errorf("PanicError.Op = %q, want %q", capture.panics[0].Op, "test.panics")
	}
	if capture.panics[0].StackTrace == "" {
		t.Error("expected a captured stack trace")
	}
}

func TestRecoverWithCallback(t *testing.T) {
	SetHandler(&captureHandler{})
	defer SetHandler(nil)

	var got any
	func() {
		defer RecoverWithCallback("test.callback", func(r any) { got = r })
		panic(42)
	}()

	if got != 42 {
		t.Errorf("callback received %v, want 42", got)
	}
}
