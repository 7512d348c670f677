package sigslot_test

import (
	"runtime"
	"testing"
	"time"

	"github.com/delaneyj/slotparty/sigslot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	name string
	pad  [64]byte
}

func TestLifetime(t *testing.T) {
	var l sigslot.Lifetime
	v, ok := l.Resolve()
	assert.True(t, ok)
	assert.Same(t, &l, v)
	assert.False(t, l.Expired())

	l.Expire()
	_, ok = l.Tracker().Resolve()
	assert.False(t, ok)
	assert.True(t, l.Expired())
}

func TestSlotLockAndCall(t *testing.T) {
	var a, b sigslot.Lifetime
	w := &widget{name: "w"}
	slot := sigslot.NewSlot(func(v int) int { return v + 1 }).Track(&a, sigslot.Weak(w)).TrackSignal(&b)

	refs, err := slot.Lock()
	require.NoError(t, err)
	require.Len(t, refs, 3)
	assert.Same(t, w, refs[1])
	assert.False(t, slot.Expired())

	v, err := slot.Call(1)
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	b.Expire()
	assert.True(t, slot.Expired())
	_, err = slot.Lock()
	assert.ErrorIs(t, err, sigslot.ErrExpiredDependency)
	_, err = slot.Call(1)
	assert.ErrorIs(t, err, sigslot.ErrExpiredDependency)
	runtime.KeepAlive(w)

	assert.Panics(t, func() { slot.Track(nil) })
}

func TestTrackSlotCopiesDependencies(t *testing.T) {
	var l sigslot.Lifetime
	src := sigslot.NewSlot(func(v int) int { return v }).Track(&l)
	dst := sigslot.NewSlot(func(s string) string { return s }).TrackSlot(src)

	deps := dst.Dependencies()
	require.Len(t, deps, 1)
	deps[0] = nil
	assert.Len(t, dst.Dependencies(), 1, "Dependencies returns a copy")

	l.Expire()
	assert.True(t, dst.Expired())
}

func connectWeak(sig *sigslot.Signal[int, int], calls *int) sigslot.Connection {
	w := &widget{name: "short lived"}
	return sig.ConnectSlot(sigslot.NewSlot(counter(calls)).Track(sigslot.Weak(w)))
}

// should disconnect a slot once a weakly tracked object is collected
func TestWeakDependencyCollected(t *testing.T) {
	errs := 0
	sig := sigslot.New[int, int](sigslot.WithErrorHandler(func(sigslot.Connection, error) {
		errs++
	}))
	calls := 0
	c := connectWeak(sig, &calls)

	runtime.GC()
	runtime.GC()

	sig.Emit(1)
	assert.Equal(t, 0, calls)
	assert.False(t, c.Connected())
	assert.Equal(t, 1, errs)
}

// should drop slots tracking a signal once that signal closes
func TestTrackSignal(t *testing.T) {
	source := sigslot.New[int, int]()
	other := sigslot.New[string, int]()

	calls := 0
	c := source.ConnectSlot(sigslot.NewSlot(counter(&calls)).TrackSignal(other))
	source.Emit(1)
	assert.Equal(t, 1, calls)

	require.NoError(t, other.Close())
	source.Emit(1)
	assert.Equal(t, 1, calls)
	assert.False(t, c.Connected())
}

// should forward through a signal used as a slot until it closes
func TestSignalAsSlot(t *testing.T) {
	var errs []error
	outer := sigslot.New[int, int](sigslot.WithErrorHandler(func(_ sigslot.Connection, err error) {
		errs = append(errs, err)
	}))
	inner := sigslot.New[int, int]()
	inner.Connect(func(v int) int { return v * 2 })

	fwd := inner.AsSlot()
	assert.Len(t, fwd.Dependencies(), 1)
	c := outer.ConnectSlot(fwd)

	assert.Equal(t, 6, outer.Emit(3))
	v, err := fwd.Call(4)
	require.NoError(t, err)
	assert.Equal(t, 8, v)

	require.NoError(t, inner.Close())
	_, err = fwd.Call(4)
	assert.ErrorIs(t, err, sigslot.ErrExpiredDependency)

	assert.Equal(t, 0, outer.Emit(3))
	assert.False(t, c.Connected())
	assert.Equal(t, 0, outer.NumSlots())
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], sigslot.ErrExpiredDependency)
}

// should disconnect a slot whose dependency expires between Next and Value
func TestExpiryDuringInvocation(t *testing.T) {
	outer := sigslot.New[int, int]()
	inner := sigslot.New[int, int]()
	inner.Connect(func(v int) int { return v })
	c := outer.ConnectSlot(inner.AsSlot())

	errs := sigslot.Fold[int, int, []error](outer, 5, func(results *sigslot.Results[int]) []error {
		var errs []error
		for results.Next() {
			inner.Close()
			_, err := results.Value()
			errs = append(errs, err)
		}
		return errs
	})

	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], sigslot.ErrExpiredDependency)
	assert.False(t, c.Connected())
	assert.Equal(t, 0, outer.Emit(5))
}

// emitDropped builds a signal whose only remaining use is the emit call, and
// collects garbage from inside the first slot.
func emitDropped(emit func(*sigslot.Signal[int, int])) []int {
	var ran []int
	sig := sigslot.New[int, int]()
	sig.Connect(func(int) int {
		ran = append(ran, 1)
		runtime.GC()
		runtime.GC()
		time.Sleep(20 * time.Millisecond)
		return 1
	})
	sig.Connect(func(int) int {
		ran = append(ran, 2)
		return 2
	})
	emit(sig)
	return ran
}

// should finish an emission even if the signal becomes unreachable during it
func TestEmitKeepsSignalAlive(t *testing.T) {
	assert.Equal(t, []int{1, 2}, emitDropped(func(sig *sigslot.Signal[int, int]) {
		sig.Emit(0)
	}))

	var folded []int
	assert.Equal(t, []int{1, 2}, emitDropped(func(sig *sigslot.Signal[int, int]) {
		folded = sigslot.Fold[int, int, []int](sig, 0, sigslot.Collect[int])
	}))
	assert.Equal(t, []int{1, 2}, folded)
}
