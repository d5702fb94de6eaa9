// Package debug gates pipeline tracing behind a runtime flag. The line
// editor runs dozens of small transforms per page; when an extraction goes
// wrong the pre- and post-edit dumps are the fastest way to see which one.
package debug

import (
	"fmt"
	"log"
	"time"
)

// Output prints a formatted trace line when enabled.
func Output(enabled bool, format string, args ...any) {
	if enabled {
		log.Printf("[%s] %s", time.Now().Format("15:04:05.000"), fmt.Sprintf(format, args...))
	}
}

// Lines dumps a line sequence under a label when enabled.
func Lines(enabled bool, label string, lnes []string) {
	if !enabled {
		return
	}
	log.Printf("--- %s (%d lines)", label, len(lnes))
	for _, lne := range lnes {
		log.Printf("    %q", lne)
	}
}

// Timing logs the duration of an operation when enabled; call the returned
// function when the operation completes.
func Timing(enabled bool, operation string) func() {
	if !enabled {
		return func() {}
	}
	start := time.Now()
	Output(enabled, "start: %s", operation)
	return func() {
		Output(enabled, "done: %s (%v)", operation, time.Since(start))
	}
}
