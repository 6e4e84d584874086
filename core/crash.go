// Package core holds process-wide crash handling for goroutines that own the terminal
package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

// Finisher restores the terminal, satisfied by tcell.Screen
type Finisher interface {
	Fini()
}

var (
	crashMu     sync.Mutex
	crashScreen Finisher
	crashOut    io.Writer = os.Stderr
	crashExit             = os.Exit
)

// SetCrashScreen registers the screen to restore before a crash report is printed
// Pass nil once the screen has been finalized normally
func SetCrashScreen(s Finisher) {
	crashMu.Lock()
	crashScreen = s
	crashMu.Unlock()
}

// HandleCrash restores the terminal, prints the panic and stack, and exits
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	s := crashScreen
	crashScreen = nil
	crashMu.Unlock()
	if s != nil {
		s.Fini()
	}

	fmt.Fprintf(crashOut, "\r\nCRASH DETECTED: %v\r\n", r)
	fmt.Fprintf(crashOut, "Stack Trace:\r\n%s\r\n", debug.Stack())
	crashExit(1)
}

// Recover routes a panic on the calling goroutine to HandleCrash
// Must be deferred directly: defer core.Recover()
func Recover() {
	HandleCrash(recover())
}

// Go runs fn in a goroutine with panic recovery
// Use instead of the go keyword for anything running while the screen is active
func Go(fn func()) {
	go func() {
		defer Recover()
		fn()
	}()
}
