package errors

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"subscanner/internal/testutil"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{"single layer", Wrap(ErrTimeout, "crt.sh"), "crt.sh: operation timed out"},
		{"nested layers", Wrap(Wrap(ErrRateLimit, "attempt 3"), "hackertarget"), "hackertarget: attempt 3: rate limit exceeded"},
		{"formatted", Wrapf(ErrNotFound, "GET %s", "/cdx"), "GET /cdx: resource not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, tt.err.Error(), tt.wantMsg, "message")
		})
	}

	testutil.AssertTrue(t, Wrap(nil, "ctx") == nil, "Wrap(nil) is nil")
	testutil.AssertTrue(t, Wrapf(nil, "ctx %d", 1) == nil, "Wrapf(nil) is nil")
}

func TestWrap_KeepsChain(t *testing.T) {
	err := Wrapf(Wrap(ErrServiceUnavailable, "upstream"), "source %s", "alienvault")

	testutil.AssertTrue(t, Is(err, ErrServiceUnavailable), "sentinel reachable through two layers")
	testutil.AssertFalse(t, Is(err, ErrTimeout), "unrelated sentinel")

	var w *wrappedError
	testutil.AssertTrue(t, As(err, &w), "As finds the wrapper")
	testutil.AssertEqual(t, w.msg, "source alienvault", "outermost wrapper")
}

func TestSentinelsAreDistinct(t *testing.T) {
	all := []error{
		ErrTimeout, ErrRateLimit, ErrNotFound, ErrUnauthorized,
		ErrServiceUnavailable, ErrInvalidResponse, ErrTransportClosed, ErrNoAddress,
	}
	seen := map[string]bool{}
	for _, e := range all {
		testutil.AssertFalse(t, seen[e.Error()], "duplicate message "+e.Error())
		seen[e.Error()] = true
		for _, other := range all {
			if e != other {
				testutil.AssertFalse(t, Is(e, other), e.Error()+" matches "+other.Error())
			}
		}
	}
}

func TestClassifiers(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		timeout   bool
		canceled  bool
		transport bool
	}{
		{"nil", nil, false, false, false},
		{"timeout sentinel", Wrap(ErrTimeout, "GET"), true, false, false},
		{"deadline", fmt.Errorf("fetch: %w", context.DeadlineExceeded), true, true, false},
		{"canceled", context.Canceled, false, true, false},
		{"transport closed", Wrap(ErrTransportClosed, "aborted"), false, false, true},
		{"other", New(http.StatusText(http.StatusTeapot)), false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, IsTimeout(tt.err), tt.timeout, "IsTimeout")
			testutil.AssertEqual(t, IsCanceled(tt.err), tt.canceled, "IsCanceled")
			testutil.AssertEqual(t, IsTransportClosed(tt.err), tt.transport, "IsTransportClosed")
		})
	}
}

func TestJoin(t *testing.T) {
	testutil.AssertTrue(t, Join() == nil, "empty join")
	testutil.AssertTrue(t, Join(nil, nil) == nil, "only nils")

	err := Join(ErrRateLimit, nil, Wrap(ErrInvalidResponse, "crt.sh returned HTML"))
	testutil.AssertTrue(t, Is(err, ErrRateLimit), "first joined error")
	testutil.AssertTrue(t, Is(err, ErrInvalidResponse), "second joined error")
}

func TestErrorf(t *testing.T) {
	err := Errorf("%w: %s", ErrInvalidResponse, "unexpected end of JSON input")
	testutil.AssertTrue(t, Is(err, ErrInvalidResponse), "%w keeps the sentinel")
	testutil.AssertEqual(t, err.Error(), "invalid response: unexpected end of JSON input", "message")
}
