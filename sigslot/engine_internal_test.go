package sigslot

import (
	"cmp"
	"testing"

	"github.com/delaneyj/slotparty/pkg/grouplist"
	"github.com/delaneyj/slotparty/pkg/mutex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGCLockDisposesAfterUnlock(t *testing.T) {
	m := &mutex.Checked{}
	var panics []*PanicError
	env := &environment{onPanic: func(err *PanicError) { panics = append(panics, err) }}

	var l gcLock
	l.acquire(m, env)
	ran := 0
	for i := 0; i < 12; i++ {
		l.later(func() {
			assert.False(t, m.Held())
			ran++
		})
	}
	l.later(func() { panic("dispose") })
	assert.Equal(t, 0, ran)
	l.release()

	assert.Equal(t, 12, ran)
	require.Len(t, panics, 1)
	assert.Equal(t, "dispose", panics[0].Value)
	assert.Equal(t, 0, l.trash.Len())
}

// should copy the state instead of touching one an emission still reads
func TestConnectCopiesSharedState(t *testing.T) {
	e := newEngine[int, int, int](cmp.Compare[int], nil)
	e.connect(grouplist.Back[int](), AtBack, NewSlot(func(v int) int { return v }), nil)

	st := e.readable()
	before := st.bodies
	e.connect(grouplist.Back[int](), AtBack, NewSlot(func(v int) int { return v }), nil)

	assert.NotSame(t, st, e.state)
	assert.Same(t, before, st.bodies)
	assert.Equal(t, 1, st.bodies.Len())
	assert.Equal(t, 2, e.state.bodies.Len())
	assert.Equal(t, uint64(1), e.state.gen)
	st.done()

	// unique again: mutate in place
	cur := e.state
	e.connect(grouplist.Back[int](), AtBack, NewSlot(func(v int) int { return v }), nil)
	assert.Same(t, cur, e.state)
}

// should restart the sweep from the front once the cursor is stale
func TestSweepCursor(t *testing.T) {
	e := newEngine[int, int, int](cmp.Compare[int], nil)
	var conns []Connection
	for i := 0; i < 4; i++ {
		conns = append(conns, e.connect(grouplist.Back[int](), AtBack, NewSlot(func(v int) int { return v }), nil))
	}
	conns[0].Disconnect()
	conns[2].Disconnect()

	var l gcLock
	e.lock(&l)
	e.nolockCleanupFrom(&l, false, e.state.bodies.Front(), 2)
	require.NotNil(t, e.gcCursor)
	assert.Equal(t, conns[2].ID(), e.gcCursor.Value.id)
	assert.Equal(t, 3, e.state.bodies.Len())

	e.nolockCleanup(&l, false, 1)
	assert.Equal(t, 2, e.state.bodies.Len())
	assert.Equal(t, conns[3].ID(), e.gcCursor.Value.id)

	e.nolockClone(e.state.combiner)
	assert.Nil(t, e.gcCursor)
	e.nolockCleanup(&l, false, 1)
	assert.Equal(t, conns[3].ID(), e.gcCursor.Value.id, "a cloned list sweeps from its front")
	l.release()
}
