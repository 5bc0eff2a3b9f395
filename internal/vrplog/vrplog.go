// Package vrplog is a thin wrapper around the standard library's log
// package, matching the teacher templates' own logging: no structured
// logging dependency appears anywhere in the reference pack's actual
// solver code, so this module doesn't reach for one either (see
// DESIGN.md's internal/vrplog entry).
package vrplog

import (
	"log"
	"os"
)

// Logger is the solver's logging handle. New wraps os.Stderr with a
// prefix.
type Logger struct {
	*log.Logger
}

// New returns a Logger writing to os.Stderr with the given prefix.
func New(prefix string) *Logger {
	return &Logger{Logger: log.New(os.Stderr, prefix+" ", log.LstdFlags)}
}

// Default is the package-level logger used when callers don't supply
// their own.
var Default = New("[vrpsolver]")
