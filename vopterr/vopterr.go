// Package vopterr distinguishes the two error categories this engine can
// raise: ordinary input errors (returned as plain error values) and
// invariant violations (programmer errors in the core, which must never
// be reachable from valid input). Invariant violations panic with
// *InvariantError; Recover converts one back into an error at the
// top-level library surface, per the design note that these are
// assertion-style panics internally and result values only at the
// boundary.
package vopterr

import "fmt"

// InvariantError identifies a fatal, unrecoverable violation of one of the
// core's structural invariants (a segment length not present at the
// expected node, a full adjacency slot, and the like). Operation names the
// function where the violation was detected.
type InvariantError struct {
	Operation string
	Message   string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s: invariant violation: %s", e.Operation, e.Message)
}

// Fatalf panics with an *InvariantError built from operation and the
// given format string. Callers use this for conditions that indicate a
// bug in the core, never for malformed input.
func Fatalf(operation, format string, args ...any) {
	panic(&InvariantError{Operation: operation, Message: fmt.Sprintf(format, args...)})
}

// Recover should be deferred by any top-level entry point that wants to
// convert an *InvariantError panic into a returned error instead of
// crashing the process. Any other panic value is re-panicked unchanged.
func Recover(err *error) {
	if r := recover(); r != nil {
		if ie, ok := r.(*InvariantError); ok {
			*err = ie
			return
		}
		panic(r)
	}
}
