package sigslot

import (
	"runtime"

	"github.com/delaneyj/slotparty/pkg/autobuf"
)

// slotHolder is what a connection body keeps: a slot of any signature.
type slotHolder interface {
	base() *slotBase
}

// slotBase carries the signature independent half of a slot: its dependencies
// and the hooks to run once it is released.
type slotBase struct {
	tracked   []WeakRef
	onRelease []func()
}

func (s *slotBase) base() *slotBase {
	return s
}

// lock resolves every dependency into out. It stops at the first expired one
// and reports false.
func (s *slotBase) lock(out *autobuf.Buffer[any]) bool {
	for _, ref := range s.tracked {
		v, ok := ref.Resolve()
		if !ok {
			return false
		}
		if out != nil {
			out.Append(v)
		}
	}
	return true
}

func (s *slotBase) expired() bool {
	return !s.lock(nil)
}

func (s *slotBase) dispose() {
	for _, fn := range s.onRelease {
		fn()
	}
}

// Slot is a callable plus the objects it depends on. Configure tracking and
// release hooks before connecting the slot; a connected slot is read
// concurrently by emissions.
type Slot[A, R any] struct {
	slotBase
	fn func(A) (R, error)
}

// NewSlot wraps fn so dependencies can be attached to it.
func NewSlot[A, R any](fn func(A) R) *Slot[A, R] {
	if fn == nil {
		panic("sigslot: nil slot function")
	}
	return &Slot[A, R]{
		fn: func(arg A) (R, error) {
			return fn(arg), nil
		},
	}
}

func newFallibleSlot[A, R any](fn func(A) (R, error)) *Slot[A, R] {
	return &Slot[A, R]{fn: fn}
}

// Track adds dependencies. If any of them expires the slot is disconnected the
// next time a signal looks at it.
func (s *Slot[A, R]) Track(refs ...WeakRef) *Slot[A, R] {
	for _, ref := range refs {
		if ref == nil {
			panic("sigslot: nil tracked reference")
		}
	}
	s.tracked = append(s.tracked, refs...)
	return s
}

// TrackSignal makes the slot depend on another signal (or anything else that
// can hand out a tracker). The slot is dropped once that signal is closed or
// collected.
func (s *Slot[A, R]) TrackSignal(t Trackable) *Slot[A, R] {
	return s.Track(t.Tracker())
}

// TrackSlot copies the dependencies of another slot.
func (s *Slot[A, R]) TrackSlot(d Dependent) *Slot[A, R] {
	return s.Track(d.Dependencies()...)
}

func (s *Slot[A, R]) Dependencies() []WeakRef {
	out := make([]WeakRef, len(s.tracked))
	copy(out, s.tracked)
	return out
}

// OnRelease registers fn to run when a connection holding this slot lets go
// of it. It never runs while a signal's mutex is held.
func (s *Slot[A, R]) OnRelease(fn func()) *Slot[A, R] {
	s.onRelease = append(s.onRelease, fn)
	return s
}

// Expired reports whether any dependency has expired.
func (s *Slot[A, R]) Expired() bool {
	return s.expired()
}

// Lock resolves the dependencies to strong references, or fails with
// ErrExpiredDependency.
func (s *Slot[A, R]) Lock() ([]any, error) {
	var buf autobuf.Buffer[any]
	if !s.lock(&buf) {
		return nil, ErrExpiredDependency
	}
	out := make([]any, 0, buf.Len())
	for _, v := range buf.All() {
		out = append(out, v)
	}
	return out, nil
}

// Call invokes the slot directly, keeping its dependencies alive for the
// length of the call.
func (s *Slot[A, R]) Call(arg A) (R, error) {
	var buf autobuf.Buffer[any]
	if !s.lock(&buf) {
		var zero R
		return zero, ErrExpiredDependency
	}
	defer runtime.KeepAlive(&buf)
	return s.fn(arg)
}
