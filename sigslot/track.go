package sigslot

import (
	"sync/atomic"
	"weak"
)

// WeakRef is anything a slot can depend on without keeping it alive.
//
// Resolve returns a strong reference to the target, held for the length of one
// slot invocation, or false once the target has expired. Emissions and
// Connection.Connected call it with the signal's mutex held, so it must not
// call back into that signal or anything connected to it.
type WeakRef interface {
	Resolve() (any, bool)
}

// Dependent exposes the dependencies registered on it, so they can be copied
// onto another slot.
type Dependent interface {
	Dependencies() []WeakRef
}

// Trackable is implemented by values that hand out a WeakRef to themselves,
// signals being the main example.
type Trackable interface {
	Tracker() WeakRef
}

type weakPointer[T any] struct {
	p weak.Pointer[T]
}

// Weak tracks p through a weak pointer. The dependency expires once the garbage
// collector reclaims the value p points to.
func Weak[T any](p *T) WeakRef {
	return weakPointer[T]{p: weak.Make(p)}
}

func (w weakPointer[T]) Resolve() (any, bool) {
	v := w.p.Value()
	if v == nil {
		return nil, false
	}
	return v, true
}

// Lifetime is an explicitly ended dependency. Embed it in a value and call
// Expire when the value is torn down; slots tracking it drop out of every
// emission afterwards.
type Lifetime struct {
	expired atomic.Bool
}

func (l *Lifetime) Resolve() (any, bool) {
	if l.expired.Load() {
		return nil, false
	}
	return l, true
}

func (l *Lifetime) Tracker() WeakRef {
	return l
}

func (l *Lifetime) Expire() {
	l.expired.Store(true)
}

func (l *Lifetime) Expired() bool {
	return l.expired.Load()
}

type engineRef[A, R, G any] struct {
	p weak.Pointer[engine[A, R, G]]
}

func (r engineRef[A, R, G]) Resolve() (any, bool) {
	e := r.p.Value()
	if e == nil || e.closed.Load() {
		return nil, false
	}
	return e, true
}
