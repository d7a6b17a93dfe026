// Package diag tracks recoverable errors raised while processing a line.
package diag

import (
	"fmt"
	"io"
	"os"
)

// Reporter records recoverable errors for the component embedding it.
// Each error is written to the reporter's writer the moment it is
// recorded; the first one is retained and the errored state never
// clears for the lifetime of the owner.
type Reporter struct {
	w   io.Writer
	err error
}

// NewReporter creates a Reporter emitting to w. A nil w means stderr.
func NewReporter(w io.Writer) *Reporter {
	if w == nil {
		w = os.Stderr
	}
	return &Reporter{w: w}
}

// Report emits err and latches the errored state. No-op on nil.
func (r *Reporter) Report(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(r.w, err)
	if r.err == nil {
		r.err = err
	}
}

// HadError reports whether any error was recorded.
func (r *Reporter) HadError() bool { return r.err != nil }

// Err returns the first recorded error, nil if none.
func (r *Reporter) Err() error { return r.err }
