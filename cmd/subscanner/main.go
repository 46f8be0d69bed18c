// cmd/subscanner/main.go
package main

import (
	"errors"
	"fmt"
	"os"

	// Import sources for auto-registration via init()
	_ "subscanner/internal/sources/alienvault"
	_ "subscanner/internal/sources/commoncrawl"
	_ "subscanner/internal/sources/crtsh"
	_ "subscanner/internal/sources/hackertarget"
	_ "subscanner/internal/sources/threatcrowd"
	_ "subscanner/internal/sources/wayback"
)

var (
	// Rellenables con -ldflags en build
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Exit codes
const (
	exitOK       = 0
	exitRuntime  = 1
	exitUsage    = 2
	exitCanceled = 130
)

// exitError carries the process exit code alongside the cause.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func withCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &exitError{code: code, err: err}
}

// exitCode maps an Execute error to a process exit code. Errors that did not
// go through withCode are flag or argument errors raised by cobra.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUsage
}

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(exitCode(err))
}
