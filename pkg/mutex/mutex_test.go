package mutex_test

import (
	"sync"
	"testing"

	"github.com/delaneyj/slotparty/pkg/mutex"
	"github.com/stretchr/testify/assert"
)

func TestCheckedPanicsOnRecursion(t *testing.T) {
	m := mutex.NewChecked().(*mutex.Checked)
	m.Lock()
	assert.True(t, m.Held())
	assert.Panics(t, func() { m.Lock() })
	m.Unlock()
	assert.False(t, m.Held())
	assert.Equal(t, uint64(1), m.Locks())
}

func TestCheckedUnlockFromOtherGoroutine(t *testing.T) {
	m := mutex.NewChecked()
	m.Lock()
	defer m.Unlock()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.Panics(t, func() { m.Unlock() })
	}()
	wg.Wait()
}

func TestCheckedAcrossGoroutines(t *testing.T) {
	m := mutex.NewChecked().(*mutex.Checked)
	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.Lock()
				counter++
				m.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 800, counter)
	assert.Equal(t, uint64(800), m.Locks())
}

func TestNoopAndReal(t *testing.T) {
	n := mutex.NewNoop()
	n.Lock()
	n.Lock()
	n.Unlock()

	r := mutex.Real()
	r.Lock()
	r.Unlock()
}
