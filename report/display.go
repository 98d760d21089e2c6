package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/pterm/pterm"
)

// Color styles for the different message kinds, grounded on chai's
// src/logging/display.go palette.
var (
	successFG = pterm.FgLightGreen
	successBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	warnFG    = pterm.FgYellow
	warnBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	errorFG   = pterm.FgRed
	errorBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	infoFG    = successFG
)

// Info prints an informational message, gated to LogLevelVerbose. A
// package that emits diagnostics before the CLI driver calls InitReporter
// (e.g. a library caller that never sets up a reporter at all) sees no
// output rather than a nil-pointer panic.
func Info(tag, msg string) {
	if rep == nil || rep.logLevel < LogLevelVerbose {
		return
	}
	successBG.Print(" " + tag + " ")
	infoFG.Println(" " + msg)
}

// Warn prints a warning message, gated to LogLevelWarn or above.
func Warn(tag, msg string) {
	if rep == nil || rep.logLevel < LogLevelWarn {
		return
	}
	warnBG.Print(" " + tag + " ")
	warnFG.Println(" " + msg)
}

// Error prints a recoverable, non-fatal error message (e.g. a bad CLI
// argument) and records that the run saw an error, gated to LogLevelError
// or above. Unlike Fatal/ICE it does not terminate the process — the
// caller decides whether to keep going or exit.
func Error(tag, msg string) {
	if rep != nil {
		rep.m.Lock()
		rep.isErr = true
		rep.m.Unlock()
	}
	if rep == nil || rep.logLevel < LogLevelError {
		return
	}
	errorBG.Print(" " + tag + " ")
	errorFG.Println(" " + msg)
}

func displayICE(message string) {
	fmt.Println()
	errorBG.Print(" internal compiler error ")
	errorFG.Println(" " + message)
	pterm.Println("This indicates a bug in the lowering engine or emitter, not in the input tensor declaration.")
}

func displayFatal(message string) {
	fmt.Println()
	errorBG.Print(" fatal error ")
	errorFG.Println(" " + message)
}

// -----------------------------------------------------------------------------
// Phase progress reporting for the lower -> codegen -> jit pipeline.

var (
	phaseSpinner   *pterm.SpinnerPrinter
	currentPhase   string
	phaseStartTime time.Time
)

const maxPhaseNameLen = len("generate")

// BeginPhase starts a named compilation phase (e.g. "lower", "emit",
// "compile", "load") and shows a spinner while it runs.
func BeginPhase(phase string) {
	if rep == nil || rep.logLevel < LogLevelVerbose {
		return
	}

	currentPhase = phase
	pad := maxPhaseNameLen - len(phase)
	if pad < 0 {
		pad = 0
	}
	text := phase + "..." + strings.Repeat(" ", pad+2)

	phaseSpinner = pterm.DefaultSpinner.WithStyle(pterm.NewStyle(infoFG))
	phaseSpinner.SuccessPrinter = &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix:       pterm.Prefix{Style: successBG, Text: "done"},
	}
	phaseSpinner.FailPrinter = &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix:       pterm.Prefix{Style: errorBG, Text: "fail"},
	}

	phaseSpinner.Start(text)
	phaseStartTime = time.Now()
}

// EndPhase ends the current phase, reporting success or failure.
func EndPhase(success bool) {
	if phaseSpinner == nil {
		return
	}

	if success {
		phaseSpinner.Success(fmt.Sprintf("%s (%.3fs)", currentPhase, time.Since(phaseStartTime).Seconds()))
	} else {
		phaseSpinner.Fail(currentPhase)
	}
	phaseSpinner = nil
}

// Finished prints the concluding message of a compilation run.
func Finished(success bool, outputPath string) {
	if rep == nil || rep.logLevel < LogLevelError {
		return
	}

	if success {
		successFG.Print("All done! ")
		if outputPath != "" {
			fmt.Println("wrote " + outputPath)
		} else {
			fmt.Println()
		}
	} else {
		errorFG.Println("Compilation failed.")
	}
}
