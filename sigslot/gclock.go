package sigslot

import (
	"sync"

	"github.com/delaneyj/slotparty/pkg/autobuf"
)

// gcLock holds a signal's mutex and collects work that must not run while the
// mutex is held: releasing slot state and notifying error handlers. The queued
// work runs in release, after the unlock.
//
// Methods that need the mutex held take a *gcLock as proof.
type gcLock struct {
	mu    sync.Locker
	env   *environment
	trash autobuf.Buffer[func()]
}

func (l *gcLock) acquire(mu sync.Locker, env *environment) {
	l.mu = mu
	l.env = env
	mu.Lock()
}

func (l *gcLock) later(fn func()) {
	l.trash.Append(fn)
}

func (l *gcLock) release() {
	l.mu.Unlock()
	for _, fn := range l.trash.All() {
		l.dispose(fn)
	}
	l.trash.Reset()
}

func (l *gcLock) dispose(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			if l.env != nil && l.env.onPanic != nil {
				l.env.onPanic(newPanicError(r))
			}
		}
	}()
	fn()
}
