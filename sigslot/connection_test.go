package sigslot_test

import (
	"testing"

	"github.com/delaneyj/slotparty/sigslot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counter(calls *int) func(int) int {
	return func(v int) int {
		*calls++
		return v
	}
}

func TestZeroConnection(t *testing.T) {
	var c sigslot.Connection
	assert.NotPanics(t, c.Disconnect)
	assert.False(t, c.Connected())
	assert.False(t, c.Blocked())
	assert.Equal(t, uint64(0), c.ID())
}

func TestConnectionIdentity(t *testing.T) {
	sig := sigslot.New[int, int]()
	a := sig.Connect(func(v int) int { return v })
	b := sig.Connect(func(v int) int { return v })

	assert.NotEqual(t, a, b)
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.Less(t, a.ID(), b.ID())

	seen := map[sigslot.Connection]bool{a: true}
	assert.True(t, seen[a])
	assert.False(t, seen[b])
}

// should need every block released before the slot runs again
func TestSharedConnectionBlockIsCounted(t *testing.T) {
	sig := sigslot.New[int, int]()
	calls := 0
	c := sig.Connect(counter(&calls))

	b1 := sigslot.NewSharedConnectionBlock(c, true)
	b2 := sigslot.NewSharedConnectionBlock(c, true)
	assert.True(t, c.Blocked())
	assert.True(t, c.Connected())

	sig.Emit(1)
	assert.Equal(t, 0, calls)

	b1.Unblock()
	b1.Unblock()
	assert.False(t, b1.Blocking())
	assert.True(t, c.Blocked())
	sig.Emit(1)
	assert.Equal(t, 0, calls)

	b2.Unblock()
	assert.False(t, c.Blocked())
	sig.Emit(1)
	assert.Equal(t, 1, calls)

	b1.Block()
	b1.Block()
	assert.True(t, b1.Blocking())
	assert.True(t, c.Blocked())
	b1.Unblock()
	assert.False(t, c.Blocked())

	idle := sigslot.NewSharedConnectionBlock(c, false)
	assert.False(t, idle.Blocking())
	assert.Equal(t, c, idle.Connection())
}

func TestSharedConnectionBlockClose(t *testing.T) {
	sig := sigslot.New[int, int]()
	calls := 0
	c := sig.Connect(counter(&calls))

	func() {
		b := sigslot.NewSharedConnectionBlock(c, true)
		defer b.Close()
		sig.Emit(1)
		assert.True(t, c.Blocked())
	}()
	assert.False(t, c.Blocked())
	sig.Emit(1)
	assert.Equal(t, 1, calls)

	b := sigslot.NewSharedConnectionBlock(c, false)
	require.NoError(t, b.Close())
	assert.False(t, b.Blocking())
	assert.False(t, c.Blocked())
}

func TestSharedConnectionBlockOnDeadConnection(t *testing.T) {
	var c sigslot.Connection
	b := sigslot.NewSharedConnectionBlock(c, true)
	assert.True(t, b.Blocking())
	assert.NotPanics(t, b.Unblock)
	assert.False(t, b.Blocking())
}

func TestScopedConnection(t *testing.T) {
	sig := sigslot.New[int, int]()
	calls := 0

	first := sig.Connect(counter(&calls))
	scoped := sigslot.NewScopedConnection(first)
	assert.True(t, scoped.Connected())
	assert.Equal(t, first, scoped.Connection())

	second := sig.Connect(counter(&calls))
	scoped.Reset(second)
	assert.False(t, first.Connected())
	assert.True(t, second.Connected())

	scoped.Reset(second)
	assert.True(t, second.Connected(), "resetting to the same connection keeps it")

	require.NoError(t, scoped.Close())
	assert.False(t, second.Connected())
	assert.False(t, scoped.Connected())

	third := sig.Connect(counter(&calls))
	scoped.Reset(third)
	released := scoped.Release()
	require.NoError(t, scoped.Close())
	assert.Equal(t, third, released)
	assert.True(t, third.Connected())

	sig.Emit(1)
	assert.Equal(t, 1, calls)
}

func TestConnectionSet(t *testing.T) {
	sig := sigslot.New[int, int]()
	calls := 0
	a := sig.Connect(counter(&calls))
	b := sig.Connect(counter(&calls))
	c := sig.Connect(counter(&calls))

	set := sigslot.NewConnectionSet(c, a)
	set.Add(b, a)
	assert.Equal(t, 3, set.Len())
	assert.True(t, set.Contains(b))
	assert.Equal(t, []sigslot.Connection{a, b, c}, set.Connections())

	b.Disconnect()
	assert.Equal(t, 1, set.Prune())
	assert.False(t, set.Contains(b))

	set.Remove(c)
	assert.Equal(t, 1, set.Len())

	set.DisconnectAll()
	assert.Equal(t, 0, set.Len())
	assert.False(t, a.Connected())
	assert.True(t, c.Connected())

	set.Add(c)
	require.NoError(t, set.Close())
	assert.False(t, c.Connected())

	sig.Emit(1)
	assert.Equal(t, 0, calls)
}
