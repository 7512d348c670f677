package sigslot

import (
	"sync"
	"sync/atomic"
	"weak"

	"github.com/delaneyj/slotparty/pkg/autobuf"
)

var connectionIDs atomic.Uint64

// connectionBody is one subscription. It shares the mutex of the signal that
// created it; every field below mu is guarded by it.
//
// slotRefs starts at one for the connection itself. A running emission adds a
// reference while the slot is its active position, so disconnecting a slot
// that is executing only releases it once the emission moves on.
type connectionBody struct {
	mu  sync.Locker
	env *environment
	id  uint64
	ref weak.Pointer[connectionBody]

	connected bool
	slotRefs  uint32
	blockers  uint32
	slot      slotHolder
}

func newConnectionBody(s slotHolder, mu sync.Locker, env *environment) *connectionBody {
	b := &connectionBody{
		mu:        mu,
		env:       env,
		id:        connectionIDs.Add(1),
		connected: true,
		slotRefs:  1,
		slot:      s,
	}
	b.ref = weak.Make(b)
	return b
}

func (b *connectionBody) connection() Connection {
	return Connection{body: b.ref, id: b.id}
}

func (b *connectionBody) lock(l *gcLock) {
	l.acquire(b.mu, b.env)
}

func (b *connectionBody) nolockConnected() bool {
	return b.connected
}

// nolockBlocked also reports disconnected bodies as blocked; either way the
// slot must not run.
func (b *connectionBody) nolockBlocked() bool {
	return b.blockers > 0 || !b.connected
}

func (b *connectionBody) nolockDisconnect(l *gcLock) {
	if b.connected {
		b.connected = false
		b.decSlotRefs(l)
	}
}

func (b *connectionBody) incSlotRefs(_ *gcLock) {
	if b.slotRefs == 0 {
		panic("sigslot: reviving a released slot")
	}
	b.slotRefs++
}

// decSlotRefs drops a reference. The last one hands the slot to the lock so it
// is disposed after the mutex is released.
func (b *connectionBody) decSlotRefs(l *gcLock) {
	if b.slotRefs == 0 {
		panic("sigslot: slot released twice")
	}
	b.slotRefs--
	if b.slotRefs == 0 {
		s := b.slot
		b.slot = nil
		if s != nil {
			l.later(s.base().dispose)
		}
	}
}

// nolockGrabTracked resolves the slot's dependencies into out. An expired one
// disconnects the body.
func (b *connectionBody) nolockGrabTracked(l *gcLock, out *autobuf.Buffer[any]) {
	if b.slot == nil {
		return
	}
	if !b.slot.base().lock(out) {
		b.nolockExpire(l)
	}
}

func (b *connectionBody) nolockDisconnectExpired(l *gcLock) {
	if b.slot == nil {
		return
	}
	if b.slot.base().expired() {
		b.nolockExpire(l)
	}
}

func (b *connectionBody) nolockExpire(l *gcLock) {
	if !b.connected {
		return
	}
	b.nolockDisconnect(l)
	conn := b.connection()
	env := b.env
	l.later(func() { env.expired(conn) })
}

func (b *connectionBody) disconnect() {
	var l gcLock
	b.lock(&l)
	defer l.release()
	b.nolockDisconnect(&l)
}

func (b *connectionBody) expire() {
	var l gcLock
	b.lock(&l)
	defer l.release()
	b.nolockExpire(&l)
}

// isConnected checks dependencies as well, so a body whose tracked objects have
// expired reports disconnected.
func (b *connectionBody) isConnected() bool {
	var l gcLock
	b.lock(&l)
	defer l.release()
	b.nolockGrabTracked(&l, nil)
	return b.connected
}

func (b *connectionBody) isBlocked() bool {
	var l gcLock
	b.lock(&l)
	defer l.release()
	return b.blockers > 0
}

func (b *connectionBody) addBlocker() {
	var l gcLock
	b.lock(&l)
	defer l.release()
	b.blockers++
}

func (b *connectionBody) removeBlocker() {
	var l gcLock
	b.lock(&l)
	defer l.release()
	if b.blockers == 0 {
		panic("sigslot: unbalanced unblock")
	}
	b.blockers--
}

// slotIfConnected returns the slot while the body is still connected.
func (b *connectionBody) slotIfConnected() slotHolder {
	var l gcLock
	b.lock(&l)
	defer l.release()
	if !b.connected {
		return nil
	}
	return b.slot
}
