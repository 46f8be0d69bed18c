// internal/platform/logx/logx_test.go
package logx

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"
)

func TestNew(t *testing.T) {
	logger := New()
	if logger == nil {
		t.Fatal("New() should return a logger, got nil")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"dbg", LevelDebug},
		{"  debug  ", LevelDebug},

		{"info", LevelInfo},
		{"INF", LevelInfo},
		{"", LevelInfo},

		{"warn", LevelWarn},
		{"Warning", LevelWarn},

		{"err", LevelError},
		{"ERROR", LevelError},

		// Invalid defaults to Info
		{"garbage", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestKVPairs(t *testing.T) {
	tests := []struct {
		name     string
		input    []any
		expected []string
	}{
		{"empty input", []any{}, []string{}},
		{"single pair", []any{"key", "value"}, []string{"key=value"}},
		{"odd number of elements", []any{"key1", "value1", "key2"}, []string{"key1=value1", "key2=(missing)"}},
		{"mixed types", []any{"int", 123, "bool", false}, []string{"int=123", "bool=false"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := kvPairs(tt.input...)
			if len(result) != len(tt.expected) {
				t.Fatalf("expected %d pairs, got %d", len(tt.expected), len(result))
			}
			for i, exp := range tt.expected {
				if result[i] != exp {
					t.Errorf("pair %d: expected %q, got %q", i, exp, result[i])
				}
			}
		})
	}
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithOutput(&buf, LevelDebug)

	scoped := logger.With("source", "crt.sh", "domain", "example.com")
	scoped.Info("search finished")

	output := buf.String()
	for _, want := range []string{"INF", "search finished", "source=crt.sh", "domain=example.com"} {
		if !strings.Contains(output, want) {
			t.Errorf("output should contain %q, got: %s", want, output)
		}
	}
}

func TestLogger_With_DoesNotLeakScope(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithOutput(&buf, LevelDebug)

	_ = logger.With("component", "orchestrator")
	logger.Info("root line")

	if strings.Contains(buf.String(), "component=orchestrator") {
		t.Errorf("root logger should not carry child scope: %s", buf.String())
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithOutput(&buf, LevelWarn)

	logger.Debug("hidden debug")
	logger.Info("hidden info")
	logger.Warn("visible warn")

	output := buf.String()
	if strings.Contains(output, "hidden") {
		t.Errorf("lines below warn should be filtered, got: %s", output)
	}
	if !strings.Contains(output, "WRN visible warn") {
		t.Errorf("warn line missing, got: %s", output)
	}
}

func TestLogger_SetLevel_AppliesToChildren(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithOutput(&buf, LevelError)
	child := logger.With("k", "v")

	logger.SetLevel(LevelDebug)
	child.Debug("now visible")

	if !strings.Contains(buf.String(), "now visible") {
		t.Errorf("child should follow parent level, got: %s", buf.String())
	}
}

func TestLogger_Err(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithOutput(&buf, LevelDebug)

	logger.Err(nil)
	if buf.Len() != 0 {
		t.Errorf("Err(nil) should not log, got: %s", buf.String())
	}

	logger.Err(errors.New("boom"), "phase", "scan")
	output := buf.String()
	if !strings.Contains(output, "ERR error=boom phase=scan") {
		t.Errorf("unexpected error line: %s", output)
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	// no panics, no output
	logger.Err(errors.New("ignored"))
	logger.With("a", 1).Info("ignored")
}

func TestLogger_Concurrent(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithOutput(&buf, LevelInfo)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			logger.With("worker", n).Info("tick")
		}(i)
	}
	wg.Wait()

	lines := strings.Count(buf.String(), "\n")
	if lines != 20 {
		t.Errorf("expected 20 lines, got %d", lines)
	}
}
