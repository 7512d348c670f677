// Package mutex provides the locking policies a signal can be built with.
//
// Real gives full thread safety, Noop restricts a signal to one goroutine and
// Checked is a test double that panics on re-entrant locking.
package mutex

import (
	"sync"
	"sync/atomic"

	"github.com/petermattis/goid"
)

// Factory builds the mutex shared by a signal and all of its connections.
type Factory func() sync.Locker

func Real() sync.Locker {
	return &sync.Mutex{}
}

func NewNoop() sync.Locker {
	return Noop{}
}

// Noop satisfies sync.Locker without doing anything.
type Noop struct{}

func (Noop) Lock()   {}
func (Noop) Unlock() {}

func NewChecked() sync.Locker {
	return &Checked{}
}

// Checked is a mutex that remembers which goroutine owns it.
// Locking it again from the owner panics instead of deadlocking.
type Checked struct {
	mu    sync.Mutex
	owner atomic.Int64
	locks atomic.Uint64
}

func (m *Checked) Lock() {
	gid := goid.Get()
	if m.owner.Load() == gid {
		panic("mutex: recursive lock by goroutine that already holds it")
	}
	m.mu.Lock()
	m.owner.Store(gid)
	m.locks.Add(1)
}

func (m *Checked) Unlock() {
	if m.owner.Load() != goid.Get() {
		panic("mutex: unlock by goroutine that does not hold it")
	}
	m.owner.Store(0)
	m.mu.Unlock()
}

// Held reports whether the calling goroutine owns the mutex.
func (m *Checked) Held() bool {
	return m.owner.Load() == goid.Get()
}

// Locks is the number of times the mutex has been acquired.
func (m *Checked) Locks() uint64 {
	return m.locks.Load()
}
