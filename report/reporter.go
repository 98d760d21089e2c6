// Package report is the compiler's diagnostics sink: log-level-gated,
// colored terminal output for the fatal error classes spec.md §7 defines
// (format-parse errors are recoverable and returned to the caller directly
// as a *format.FormatError; IR well-formedness violations, capability
// mismatches, and undefined-mode access are all fatal and go through ICE),
// plus phase progress reporting for the lower -> codegen -> jit pipeline.
package report

import "sync"

// Reporter holds the diagnostics state shared across one process. It is
// synchronized so its methods are safe to call from multiple goroutines,
// matching spec.md §5's requirement that process-wide shared state (here,
// whether any error has been seen) tolerate concurrent compilations.
type Reporter struct {
	m        *sync.Mutex
	logLevel int
	isErr    bool
}

// Enumeration of the supported log levels, ordered least to most verbose.
const (
	LogLevelSilent  = iota // Displays no output.
	LogLevelError          // Displays only errors.
	LogLevelWarn           // Displays warnings and errors.
	LogLevelVerbose        // Displays all compilation messages (default).
)

// rep is the global reporter instance.
var rep *Reporter

// InitReporter initializes the global reporter to the given log level. If
// the reporter has already been initialized, this function does nothing,
// so that repeated CLI setup doesn't reset an in-flight error flag.
func InitReporter(logLevel int) {
	if rep == nil {
		rep = &Reporter{m: &sync.Mutex{}, logLevel: logLevel}
	}
}

// AnyErrors reports whether a non-fatal error has been recorded.
func AnyErrors() bool {
	if rep == nil {
		return false
	}
	return rep.isErr
}

