package sigslot_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/delaneyj/slotparty/sigslot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// should survive emitters, connectors, blockers and disconnectors racing
func TestConcurrentChurn(t *testing.T) {
	const (
		workers = 8
		rounds  = 300
	)

	var permanent atomic.Int64
	sig := sigslot.New[int, int](
		sigslot.WithCombiner[int](sigslot.Sum[int]),
		sigslot.WithChurnRatio(0),
	)
	anchor := sig.Connect(func(v int) int {
		permanent.Add(1)
		return v
	})

	g, ctx := errgroup.WithContext(context.Background())
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := 0; i < rounds && ctx.Err() == nil; i++ {
				c := sig.Connect(func(v int) int { return 0 })
				sig.Emit(i)
				if i%3 == 0 {
					b := sigslot.NewSharedConnectionBlock(c, true)
					sig.Emit(i)
					b.Unblock()
				}
				c.Disconnect()
			}
			return nil
		})
		g.Go(func() error {
			for i := 0; i < rounds && ctx.Err() == nil; i++ {
				sig.ConnectExtended(func(c sigslot.Connection, v int) int {
					c.Disconnect()
					return 0
				}, sigslot.AtFront)
				sig.ConnectGroup(i%4, func(v int) int { return 0 }).Disconnect()
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	// every self disconnecting slot was either emitted once or is still waiting
	sig.Emit(0)
	assert.Equal(t, 1, sig.NumSlots())
	assert.True(t, anchor.Connected())
	assert.GreaterOrEqual(t, permanent.Load(), int64(workers*rounds))

	// slots that disconnected themselves count as dead on the next walk
	sig.Emit(0)
	assert.Equal(t, 1, sig.Stats().Entries, "any dead entry forces a sweep at ratio zero")
}

// should never run a slot once Disconnect has returned and no emission is in flight
func TestConcurrentDisconnectAll(t *testing.T) {
	sig := sigslot.New[int, int]()
	var calls atomic.Int64
	for i := 0; i < 100; i++ {
		sig.Connect(func(v int) int {
			calls.Add(1)
			return v
		})
	}

	var g errgroup.Group
	for i := 0; i < 4; i++ {
		g.Go(func() error {
			sig.Emit(i)
			return nil
		})
	}
	g.Go(func() error {
		sig.DisconnectAll()
		return nil
	})
	require.NoError(t, g.Wait())

	before := calls.Load()
	sig.Emit(0)
	assert.Equal(t, before, calls.Load())
	assert.True(t, sig.Empty())
}
