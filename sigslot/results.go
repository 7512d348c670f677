package sigslot

import (
	"errors"
	"iter"

	"github.com/delaneyj/slotparty/pkg/autobuf"
)

// Results walks the slots of one emission in order. Blocked and disconnected
// slots are skipped. A slot runs the first time Value is called for its
// position and the result is cached, so a combiner may read a value as often
// as it likes.
type Results[R any] struct {
	next func() *connectionBody
	call func(slotHolder) (R, error)

	active     *connectionBody
	activeSlot slotHolder
	tracked    autobuf.Buffer[any]

	invoked bool
	value   R
	err     error
	done    bool

	connected    int
	disconnected int
}

// Next moves to the next slot that should run and reports whether there is one.
// It resolves that slot's dependencies with the signal's mutex held.
func (r *Results[R]) Next() bool {
	if r.done {
		return false
	}
	var zero R
	r.value, r.err, r.invoked = zero, nil, false

	for b := r.next(); b != nil; b = r.next() {
		if r.visit(b) {
			return true
		}
	}

	r.finish()
	return false
}

// visit counts b and makes it the active slot unless it is blocked.
// Dependencies resolve under the signal's mutex and may panic.
func (r *Results[R]) visit(b *connectionBody) bool {
	var l gcLock
	b.lock(&l)
	defer l.release()
	r.tracked.Reset()
	b.nolockGrabTracked(&l, &r.tracked)
	if b.nolockConnected() {
		r.connected++
	} else {
		r.disconnected++
	}
	if b.nolockBlocked() {
		return false
	}
	r.setActive(&l, b)
	return true
}

// Value runs the current slot, once, and returns its result. A slot whose
// dependencies expired between Next and Value is disconnected and reported as
// ErrExpiredDependency.
func (r *Results[R]) Value() (R, error) {
	if r.active == nil {
		panic("sigslot: Value called without a current slot")
	}
	if !r.invoked {
		r.invoked = true
		r.value, r.err = r.call(r.activeSlot)
		if errors.Is(r.err, ErrExpiredDependency) {
			r.active.expire()
		}
	}
	return r.value, r.err
}

// All yields every result, skipping slots whose dependencies expired.
func (r *Results[R]) All() iter.Seq[R] {
	return func(yield func(R) bool) {
		for r.Next() {
			v, err := r.Value()
			if errors.Is(err, ErrExpiredDependency) {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Connected and Disconnected count the positions visited so far.
func (r *Results[R]) Connected() int {
	return r.connected
}

func (r *Results[R]) Disconnected() int {
	return r.disconnected
}

func (r *Results[R]) setActive(l *gcLock, b *connectionBody) {
	if r.active != nil {
		r.active.decSlotRefs(l)
	}
	r.active = b
	r.activeSlot = nil
	if b != nil {
		b.incSlotRefs(l)
		r.activeSlot = b.slot
	}
}

// finish drops the reference on the active slot. It runs at the end of the
// walk and again, harmlessly, when the emission unwinds.
func (r *Results[R]) finish() {
	r.done = true
	r.tracked.Reset()
	if r.active == nil {
		return
	}
	var l gcLock
	r.active.lock(&l)
	defer l.release()
	r.setActive(&l, nil)
}
