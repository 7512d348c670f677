// Package property is a value cell that announces every change through a
// sigslot event, plus derived cells that recompute when their sources change.
package property

import (
	"sync"
	"weak"

	"github.com/delaneyj/slotparty/sigslot"
)

type Property[T comparable] struct {
	mu      sync.RWMutex
	val     T
	ver     uint32
	changed *sigslot.Event2[T, T]
}

func New[T comparable](val T, opts ...sigslot.Option) *Property[T] {
	return &Property[T]{
		val:     val,
		ver:     1,
		changed: sigslot.NewEvent2[T, T](opts...),
	}
}

func (p *Property[T]) Value() T {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.val
}

// Version starts at 1 and increases with every stored change.
func (p *Property[T]) Version() uint32 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.ver
}

// SetValue stores val and reports whether it differed from the current value.
// Subscribers run after the property's lock is released, so they may read or
// set it again. Concurrent setters may deliver their notifications out of
// order.
func (p *Property[T]) SetValue(val T) bool {
	p.mu.Lock()
	old := p.val
	if old == val {
		p.mu.Unlock()
		return false
	}
	p.val = val
	p.ver++
	p.mu.Unlock()

	p.changed.Emit(old, val)
	return true
}

// Changed is emitted with the old and the new value.
func (p *Property[T]) Changed() *sigslot.Event2[T, T] {
	return p.changed
}

func (p *Property[T]) Tracker() sigslot.WeakRef {
	return p.changed.Tracker()
}

// Close drops every subscriber and every derived property's subscription.
func (p *Property[T]) Close() error {
	return p.changed.Close()
}

// Effect1 calls fn with each new value of src until stop is called.
func Effect1[T comparable](src *Property[T], fn func(T)) (stop func()) {
	conn := src.changed.Connect(func(_, v T) {
		fn(v)
	})
	return conn.Disconnect
}

// follow subscribes out to src without keeping out alive. The subscription
// drops once out, or anything in deps, is closed or collected. recompute gets
// src's new value and reports false when an input has gone away.
func follow[S, O comparable](src *Property[S], out *Property[O], recompute func(S) (O, bool), deps ...sigslot.WeakRef) {
	w := weak.Make(out)
	slot := sigslot.NewEventSlot2(func(_, v S) {
		o := w.Value()
		if o == nil {
			return
		}
		if next, ok := recompute(v); ok {
			o.SetValue(next)
		}
	})
	slot.Track(sigslot.Weak(out)).TrackSignal(out).Track(deps...)
	src.changed.ConnectSlot(slot)
}

func Computed1[T0, O comparable](src *Property[T0], fn func(T0) O) *Property[O] {
	out := New(fn(src.Value()))
	follow(src, out, func(v T0) (O, bool) {
		return fn(v), true
	})
	return out
}

// Computed2 recomputes whenever a or b changes. Sources are held weakly, so a
// derived property never keeps its inputs alive.
func Computed2[T0, T1, O comparable](a *Property[T0], b *Property[T1], fn func(T0, T1) O) *Property[O] {
	out := New(fn(a.Value(), b.Value()))
	wa, wb := weak.Make(a), weak.Make(b)
	follow(a, out, func(v T0) (O, bool) {
		pb := wb.Value()
		if pb == nil {
			var zero O
			return zero, false
		}
		return fn(v, pb.Value()), true
	}, sigslot.Weak(b), b.Tracker())
	follow(b, out, func(v T1) (O, bool) {
		pa := wa.Value()
		if pa == nil {
			var zero O
			return zero, false
		}
		return fn(pa.Value(), v), true
	}, sigslot.Weak(a), a.Tracker())
	return out
}
