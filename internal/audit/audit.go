package audit

// Package audit provides the action-logging side channel. User-facing actions
// that need auditing (search, feed refresh, comment submit) are wrapped
// explicitly at the call site; each wrapped invocation writes a single
// "Action logged: <name> called" line before the action runs.

import (
	"io"
	"log"
	"os"
	"sync"
)

// Audit line format
const (
	ActionLogFormat = "Action logged: %s called"
)

var (
	loggerMutex sync.Mutex
	logger      = log.New(os.Stderr, "", log.LstdFlags)
)

// SetOutput redirects the audit stream. Tests use this to capture lines.
func SetOutput(w io.Writer) {
	loggerMutex.Lock()
	defer loggerMutex.Unlock()
	logger = log.New(w, "", 0)
}

// Logged wraps an action so that every invocation is reported on the audit
// stream before the action executes.
func Logged(name string, fn func()) func() {
	return func() {
		loggerMutex.Lock()
		l := logger
		loggerMutex.Unlock()

		l.Printf(ActionLogFormat, name)
		fn()
	}
}
