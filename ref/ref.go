// Package ref implements the opaque identity tokens used to name variable
// and function slots across the evaluator.
package ref

import "sync/atomic"

// Ref is an opaque, monotonically-assigned identity token. Two refs compare
// by integer equality; refs are never reused within a process.
type Ref uint64

// FnRef is a Ref scoped to function identity.
type FnRef Ref

var counter atomic.Uint64

// New allocates a fresh, process-wide unique Ref.
func New() Ref {
	return Ref(counter.Add(1))
}

// NewFn allocates a fresh, process-wide unique FnRef.
func NewFn() FnRef {
	return FnRef(New())
}

// String renders the ref for diagnostics.
func (r Ref) String() string {
	return uintToString(uint64(r))
}

// String renders the fn ref for diagnostics.
func (r FnRef) String() string {
	return "fn#" + uintToString(uint64(r))
}

func uintToString(v uint64) string {
	if v == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}
