package sigslot

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrExpiredDependency is reported when an object tracked by a slot has gone
// away. The slot is disconnected and its result is left out of the emission.
var ErrExpiredDependency = errors.New("sigslot: tracked dependency expired")

// PanicError wraps a panic recovered while disposing of released slot state,
// together with the stack at the point of the panic.
type PanicError struct {
	Value any
	Stack string
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("sigslot: panic during slot release: %v\n\n%s", e.Value, e.Stack)
}

func newPanicError(v any) *PanicError {
	buf := make([]byte, 8192)
	n := runtime.Stack(buf, false)
	return &PanicError{
		Value: v,
		Stack: string(buf[:n]),
	}
}

// PanicHandler receives panics raised by release hooks. Release hooks run after
// the signal's mutex is released and are never allowed to unwind into it.
type PanicHandler func(err *PanicError)

// ErrorHandler is told about connections the engine disconnected on its own,
// currently only because a tracked dependency expired.
type ErrorHandler func(conn Connection, err error)

// environment is shared by a signal and every connection body it creates.
type environment struct {
	onPanic PanicHandler
	onError ErrorHandler
}

func (env *environment) expired(conn Connection) {
	if env == nil || env.onError == nil {
		return
	}
	env.onError(conn, fmt.Errorf("connection %d: %w", conn.ID(), ErrExpiredDependency))
}
