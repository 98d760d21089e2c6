package report

import (
	"fmt"
	"os"
)

// ICEError is an internal compiler error: an IR well-formedness violation, a
// capability mismatch, or undefined-mode access (spec.md §7, error kinds
// 2-4). ICE displays the diagnostic and then panics with one; Raise builds
// one without displaying anything. CatchICE, deferred by the CLI driver,
// turns the panic into a process exit.
type ICEError struct {
	Message string
}

func (e *ICEError) Error() string { return e.Message }

// Raise creates an ICEError ready to be panicked.
func Raise(format string, args ...interface{}) *ICEError {
	return &ICEError{Message: fmt.Sprintf(format, args...)}
}

// ICE reports an internal compiler error and panics with an *ICEError so a
// caller can still recover in the same way any Go panic is recoverable
// (modetype's tests rely on this directly). A top-level CatchICE, deferred
// once near the start of the CLI driver, turns an uncaught one into a
// clean process exit instead of a raw stack trace. These errors indicate a
// bug in the compiler itself — an ill-formed IR graph, a lowering pass
// that didn't consult a capability bit before using a hook, or a query
// against an undefined Mode — and are always displayed regardless of log
// level.
func ICE(message string, args ...interface{}) {
	msg := fmt.Sprintf(message, args...)
	if rep != nil {
		rep.m.Lock()
		rep.isErr = true
		rep.m.Unlock()
	}
	displayICE(msg)
	panic(&ICEError{Message: msg})
}

// Fatal reports a fatal but expected error — missing external compiler,
// unwritable temp directory, a symbol the JIT wrapper couldn't resolve —
// and terminates the process. Unlike ICE, a Fatal is never meant to be
// recovered from: it indicates the environment, not the compiler, is at
// fault.
func Fatal(message string, args ...interface{}) {
	if rep == nil || rep.logLevel > LogLevelSilent {
		if rep != nil {
			rep.m.Lock()
			defer rep.m.Unlock()
		}

		displayFatal(fmt.Sprintf(message, args...))
	}

	os.Exit(1)
}

// CatchICE recovers a panicked *ICEError and exits the process cleanly
// instead of unwinding with a raw Go stack trace. The diagnostic has
// already been printed by ICE at the point it panicked, so this does not
// redisplay it. It must always be deferred, typically once near the top
// of the CLI driver.
func CatchICE() {
	if x := recover(); x != nil {
		if _, ok := x.(*ICEError); ok {
			os.Exit(-1)
		}
		displayICE(fmt.Sprintf("%v", x))
		os.Exit(-1)
	}
}
