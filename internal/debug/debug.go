// Package debug provides verbose/quiet output control and API-call
// accounting for the sk CLI.
package debug

import (
	"fmt"
	"os"
	"sync/atomic"
)

var (
	enabled     = os.Getenv("SIDEKICK_DEBUG") != ""
	verboseMode atomic.Bool
	quietMode   atomic.Bool
	apiCalls    atomic.Int64
)

// Enabled reports whether debug output is active (env var or --verbose).
func Enabled() bool {
	return enabled || verboseMode.Load()
}

// SetVerbose enables verbose/debug output.
func SetVerbose(verbose bool) {
	verboseMode.Store(verbose)
}

// SetQuiet enables quiet mode (suppress non-essential output).
func SetQuiet(quiet bool) {
	quietMode.Store(quiet)
}

// IsQuiet returns true if quiet mode is enabled.
func IsQuiet() bool {
	return quietMode.Load()
}

// Logf writes to stderr when debug output is active.
func Logf(format string, args ...interface{}) {
	if Enabled() {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// PrintNormal prints output unless quiet mode is enabled.
func PrintNormal(format string, args ...interface{}) {
	if !quietMode.Load() {
		fmt.Printf(format, args...)
	}
}

// CountAPICall records one remote API round trip.
func CountAPICall() {
	apiCalls.Add(1)
}

// APICalls returns the number of remote API round trips so far.
func APICalls() int64 {
	return apiCalls.Load()
}

// ResetAPICalls zeroes the API call counter.
func ResetAPICalls() {
	apiCalls.Store(0)
}
