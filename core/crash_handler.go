package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

var (
	crashMu      sync.Mutex
	crashCleanup func()
)

// SetCrashCleanup registers the function that restores the terminal before a crash report
func SetCrashCleanup(fn func()) {
	crashMu.Lock()
	crashCleanup = fn
	crashMu.Unlock()
}

// HandleCrash restores the terminal, prints the stack trace and exits
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	cleanup := crashCleanup
	crashMu.Unlock()
	if cleanup != nil {
		cleanup()
	}

	os.Stdout.Sync()
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// onCrash is swapped in tests, HandleCrash exits the process
var onCrash = HandleCrash

// Guard wraps fn so a panic restores the terminal before the crash report
// The result fits errgroup.Group.Go, errors from fn pass through unchanged
func Guard(fn func() error) func() error {
	return func() error {
		defer func() {
			if r := recover(); r != nil {
				onCrash(r)
			}
		}()
		return fn()
	}
}
