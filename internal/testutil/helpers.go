// internal/testutil/helpers.go
package testutil

import (
	"encoding/json"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"testing"
)

// Todas las aserciones reportan con t.Errorf y continúan; msg prefija el fallo.

func fail(t *testing.T, msg, format string, args ...any) {
	t.Helper()
	t.Errorf("%s: %s", msg, fmt.Sprintf(format, args...))
}

// AssertEqual compara con reflect.DeepEqual.
func AssertEqual(t *testing.T, got, want interface{}, msg string) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		fail(t, msg, "got %v (%T), want %v (%T)", got, got, want, want)
	}
}

func AssertNotEqual(t *testing.T, got, want interface{}, msg string) {
	t.Helper()
	if reflect.DeepEqual(got, want) {
		fail(t, msg, "got %v, should differ", got)
	}
}

// AssertNil solo acepta nil sin tipo; un puntero nil dentro de una
// interfaz no cuenta como nil.
func AssertNil(t *testing.T, got interface{}, msg string) {
	t.Helper()
	if got != nil {
		fail(t, msg, "expected nil, got %v", got)
	}
}

func AssertNotNil(t *testing.T, got interface{}, msg string) {
	t.Helper()
	if got == nil {
		fail(t, msg, "expected non-nil value")
	}
}

func AssertError(t *testing.T, err error, msg string) {
	t.Helper()
	if err == nil {
		fail(t, msg, "expected an error")
	}
}

func AssertNoError(t *testing.T, err error, msg string) {
	t.Helper()
	if err != nil {
		fail(t, msg, "unexpected error: %v", err)
	}
}

func AssertTrue(t *testing.T, condition bool, msg string) {
	t.Helper()
	if !condition {
		fail(t, msg, "condition is false")
	}
}

func AssertFalse(t *testing.T, condition bool, msg string) {
	t.Helper()
	if condition {
		fail(t, msg, "condition is true")
	}
}

// AssertContains acepta un []string (pertenencia) o un string (substring).
func AssertContains(t *testing.T, container interface{}, element string, msg string) {
	t.Helper()
	switch v := container.(type) {
	case []string:
		if !slices.Contains(v, element) {
			fail(t, msg, "%v has no element %q", v, element)
		}
	case string:
		if !strings.Contains(v, element) {
			fail(t, msg, "%q has no substring %q", v, element)
		}
	default:
		fail(t, msg, "AssertContains does not support %T", container)
	}
}

func AssertLen(t *testing.T, slice []string, want int, msg string) {
	t.Helper()
	if len(slice) != want {
		fail(t, msg, "len %d, want %d: %v", len(slice), want, slice)
	}
}

// AssertStrings compara slices respetando el orden y señala el primer índice distinto.
func AssertStrings(t *testing.T, got, want []string, msg string) {
	t.Helper()
	if len(got) != len(want) {
		fail(t, msg, "got %v, want %v", got, want)
		return
	}
	for i := range want {
		if got[i] != want[i] {
			fail(t, msg, "index %d: got %q, want %q (full: %v)", i, got[i], want[i], got)
			return
		}
	}
}

func UnmarshalJSON(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}
