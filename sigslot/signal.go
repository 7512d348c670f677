package sigslot

import (
	"cmp"
	"runtime"
	"sync"
	"sync/atomic"
	"weak"

	"github.com/delaneyj/slotparty/pkg/grouplist"
)

type bodyList[G any] = grouplist.List[G, *connectionBody]

type bodyNode[G any] = grouplist.Node[G, *connectionBody]

// invocationState is what an emission reads. Once an emission holds it
// (readers > 0) it is never modified; writers clone it instead.
type invocationState[R, G any] struct {
	bodies   *bodyList[G]
	combiner Combiner[R]
	gen      uint64
	readers  atomic.Int32
}

type engine[A, R, G any] struct {
	mu     sync.Locker
	env    *environment
	opts   options
	closed atomic.Bool

	// guarded by mu
	state    *invocationState[R, G]
	gcCursor *bodyNode[G]
	gen      uint64
}

func newEngine[A, R, G any](less func(a, b G) int, opts []Option) *engine[A, R, G] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	combiner := Combiner[R](LastValue[R])
	if o.combiner != nil {
		c, ok := o.combiner.(Combiner[R])
		if !ok {
			panic("sigslot: combiner result type does not match the signal")
		}
		combiner = c
	}

	e := &engine[A, R, G]{
		mu:   o.newMutex(),
		env:  &environment{onPanic: o.onPanic, onError: o.onError},
		opts: o,
	}
	e.state = &invocationState[R, G]{
		bodies:   grouplist.New[G, *connectionBody](less),
		combiner: combiner,
	}
	return e
}

func (e *engine[A, R, G]) lock(l *gcLock) {
	l.acquire(e.mu, e.env)
}

// readable takes a read reference on the current state. Callers must call
// done on it.
func (e *engine[A, R, G]) readable() *invocationState[R, G] {
	var l gcLock
	e.lock(&l)
	defer l.release()
	st := e.state
	st.readers.Add(1)
	return st
}

func (st *invocationState[R, G]) done() {
	st.readers.Add(-1)
}

func (e *engine[A, R, G]) nolockUnique() bool {
	return e.state.readers.Load() == 0
}

func (e *engine[A, R, G]) nolockClone(combiner Combiner[R]) {
	e.gen++
	e.state = &invocationState[R, G]{
		bodies:   e.state.bodies.Clone(),
		combiner: combiner,
		gen:      e.gen,
	}
	e.gcCursor = nil
}

// nolockCleanupFrom unlinks disconnected bodies starting at n, visiting at most
// count entries (all of them when count is zero). With grabTracked set it also
// disconnects bodies whose dependencies expired.
func (e *engine[A, R, G]) nolockCleanupFrom(l *gcLock, grabTracked bool, n *bodyNode[G], count int) {
	for i := 0; n != nil && (count == 0 || i < count); i++ {
		b := n.Value
		if grabTracked {
			b.nolockDisconnectExpired(l)
		}
		if !b.nolockConnected() {
			n = e.state.bodies.Remove(n)
		} else {
			n = n.Next()
		}
	}
	e.gcCursor = n
}

// nolockCleanup continues the sweep where the previous one stopped.
func (e *engine[A, R, G]) nolockCleanup(l *gcLock, grabTracked bool, count int) {
	start := e.gcCursor
	if start == nil || start.List() != e.state.bodies {
		start = e.state.bodies.Front()
	}
	e.nolockCleanupFrom(l, grabTracked, start, count)
}

// nolockForceUnique makes the state safe to modify. A shared state is cloned
// and the clone fully swept; otherwise a couple of entries are swept so that
// connect-heavy workloads also reclaim dead entries.
func (e *engine[A, R, G]) nolockForceUnique(l *gcLock) {
	if !e.nolockUnique() {
		e.nolockClone(e.state.combiner)
		e.nolockCleanupFrom(l, true, e.state.bodies.Front(), 0)
		return
	}
	e.nolockCleanup(l, true, 2)
}

func (e *engine[A, R, G]) connect(key grouplist.Key[G], pos Position, s slotHolder, bind func(Connection)) Connection {
	var l gcLock
	e.lock(&l)
	defer l.release()

	if e.closed.Load() {
		return Connection{}
	}

	e.nolockForceUnique(&l)
	b := newConnectionBody(s, e.mu, e.env)
	conn := b.connection()
	if bind != nil {
		bind(conn)
	}
	if pos == AtFront {
		e.state.bodies.PushFront(key, b)
	} else {
		e.state.bodies.PushBack(key, b)
	}
	return conn
}

// emission is one in-flight emit: a read reference on a state plus the lazy
// results over it.
type emission[R any] struct {
	results  *Results[R]
	combiner Combiner[R]
	finish   func()
}

func (e *engine[A, R, G]) start(arg A) *emission[R] {
	var l gcLock
	e.lock(&l)
	if e.nolockUnique() && e.opts.sweepLimit > 0 {
		e.nolockCleanup(&l, false, e.opts.sweepLimit)
	}
	st := e.state
	st.readers.Add(1)
	l.release()

	n := st.bodies.Front()
	results := &Results[R]{
		next: func() *connectionBody {
			if n == nil {
				return nil
			}
			b := n.Value
			n = n.Next()
			return b
		},
		call: func(s slotHolder) (R, error) {
			return s.(*Slot[A, R]).fn(arg)
		},
	}

	return &emission[R]{
		results:  results,
		combiner: st.combiner,
		finish: func() {
			results.finish()
			st.done()
			if float64(results.disconnected) > e.opts.churnRatio*float64(results.connected) {
				e.forceCleanup(st)
			}
		},
	}
}

// forceCleanup sweeps the whole list after an emission that walked past mostly
// dead entries, unless the list has been replaced in the meantime.
func (e *engine[A, R, G]) forceCleanup(st *invocationState[R, G]) {
	var l gcLock
	e.lock(&l)
	defer l.release()
	if e.state != st {
		return
	}
	if !e.nolockUnique() {
		e.nolockClone(e.state.combiner)
	}
	e.nolockCleanupFrom(&l, false, e.state.bodies.Front(), 0)
}

func (e *engine[A, R, G]) emit(arg A) R {
	em := e.start(arg)
	defer em.finish()
	return em.combiner(em.results)
}

func (e *engine[A, R, G]) disconnectAll() {
	st := e.readable()
	defer st.done()
	for n := range st.bodies.All() {
		n.Value.disconnect()
	}
}

func (e *engine[A, R, G]) disconnectGroup(g G) {
	st := e.readable()
	defer st.done()
	for n := range st.bodies.InGroup(grouplist.InGroup(g)) {
		n.Value.disconnect()
	}
}

func (e *engine[A, R, G]) disconnectIf(pred func(*Slot[A, R]) bool) int {
	st := e.readable()
	defer st.done()
	disconnected := 0
	for n := range st.bodies.All() {
		b := n.Value
		s, ok := b.slotIfConnected().(*Slot[A, R])
		if !ok || !pred(s) {
			continue
		}
		b.disconnect()
		disconnected++
	}
	return disconnected
}

func (e *engine[A, R, G]) numSlots() int {
	st := e.readable()
	defer st.done()
	count := 0
	for n := range st.bodies.All() {
		if n.Value.isConnected() {
			count++
		}
	}
	return count
}

func (e *engine[A, R, G]) empty() bool {
	st := e.readable()
	defer st.done()
	for n := range st.bodies.All() {
		if n.Value.isConnected() {
			return false
		}
	}
	return true
}

func (e *engine[A, R, G]) combiner() Combiner[R] {
	var l gcLock
	e.lock(&l)
	defer l.release()
	return e.state.combiner
}

func (e *engine[A, R, G]) setCombiner(c Combiner[R]) {
	if c == nil {
		panic("sigslot: nil combiner")
	}
	var l gcLock
	e.lock(&l)
	defer l.release()
	if e.nolockUnique() {
		e.state.combiner = c
		return
	}
	e.nolockClone(c)
}

func (e *engine[A, R, G]) stats() Stats {
	st := e.readable()
	defer st.done()
	s := Stats{
		Entries:    st.bodies.Len(),
		Groups:     st.bodies.Groups(),
		Generation: st.gen,
	}
	for n := range st.bodies.All() {
		b := n.Value
		if !b.isConnected() {
			continue
		}
		s.Connected++
		if b.isBlocked() {
			s.Blocked++
		}
	}
	return s
}

func (e *engine[A, R, G]) close() {
	if e.closed.Swap(true) {
		return
	}
	e.disconnectAll()
}

// Stats is a snapshot of a signal's subscriber list.
type Stats struct {
	// Entries counts list entries, including disconnected ones not yet swept.
	Entries int

	Connected int
	Blocked   int

	// Groups is the number of distinct ordering keys in the list, counting the
	// front and back ungrouped sections as one key each.
	Groups int

	// Generation increases every time the list is copied because an emission
	// was still reading it.
	Generation uint64
}

// Source is anything that can be emitted with an ad-hoc combiner via Fold.
type Source[A, R any] interface {
	start(arg A) *emission[R]
}

// Fold emits once, combining the results with combine instead of the signal's
// own combiner.
func Fold[A, R, T any](s Source[A, R], arg A, combine func(*Results[R]) T) T {
	defer runtime.KeepAlive(s)
	em := s.start(arg)
	defer em.finish()
	return combine(em.results)
}

// Grouped is a signal whose slots can be ordered by a group key of type G.
// Slots receive an A and return an R; the results of one emission are folded by
// the signal's combiner.
type Grouped[A, R, G any] struct {
	e *engine[A, R, G]
}

// NewGrouped creates a signal whose groups are ordered by compare.
func NewGrouped[A, R, G any](compare func(a, b G) int, opts ...Option) *Grouped[A, R, G] {
	s := &Grouped[A, R, G]{e: newEngine[A, R, G](compare, opts)}
	runtime.AddCleanup(s, func(e *engine[A, R, G]) { e.close() }, s.e)
	return s
}

// Connect subscribes fn, by default after every other ungrouped slot.
// AtFront places it before every slot instead.
func (s *Grouped[A, R, G]) Connect(fn func(A) R, pos ...Position) Connection {
	return s.ConnectSlot(NewSlot(fn), pos...)
}

func (s *Grouped[A, R, G]) ConnectSlot(slot *Slot[A, R], pos ...Position) Connection {
	p := position(pos)
	key := grouplist.Back[G]()
	if p == AtFront {
		key = grouplist.Front[G]()
	}
	return s.e.connect(key, p, slot, nil)
}

// ConnectGroup subscribes fn within group g, after the group's existing slots
// or, with AtFront, before them.
func (s *Grouped[A, R, G]) ConnectGroup(g G, fn func(A) R, pos ...Position) Connection {
	return s.ConnectSlotGroup(g, NewSlot(fn), pos...)
}

func (s *Grouped[A, R, G]) ConnectSlotGroup(g G, slot *Slot[A, R], pos ...Position) Connection {
	return s.e.connect(grouplist.InGroup(g), position(pos), slot, nil)
}

// ConnectExtended subscribes a slot that receives its own connection, so it
// can for instance disconnect itself.
func (s *Grouped[A, R, G]) ConnectExtended(fn func(Connection, A) R, pos ...Position) Connection {
	p := position(pos)
	key := grouplist.Back[G]()
	if p == AtFront {
		key = grouplist.Front[G]()
	}
	slot, bind := extendedSlot(fn)
	return s.e.connect(key, p, slot, bind)
}

func (s *Grouped[A, R, G]) ConnectExtendedGroup(g G, fn func(Connection, A) R, pos ...Position) Connection {
	slot, bind := extendedSlot(fn)
	return s.e.connect(grouplist.InGroup(g), position(pos), slot, bind)
}

func extendedSlot[A, R any](fn func(Connection, A) R) (*Slot[A, R], func(Connection)) {
	if fn == nil {
		panic("sigslot: nil slot function")
	}
	var self Connection
	slot := NewSlot(func(arg A) R {
		return fn(self, arg)
	})
	return slot, func(c Connection) { self = c }
}

// Emit runs every connected, unblocked slot in order and returns the combined
// result. Slots run without the signal's mutex held, so they may connect,
// disconnect or emit again. A panicking slot aborts the rest of the emission.
func (s *Grouped[A, R, G]) Emit(arg A) R {
	// the cleanup registered on s must not close the engine mid emission
	defer runtime.KeepAlive(s)
	return s.e.emit(arg)
}

func (s *Grouped[A, R, G]) start(arg A) *emission[R] {
	return s.e.start(arg)
}

func (s *Grouped[A, R, G]) DisconnectAll() {
	s.e.disconnectAll()
}

func (s *Grouped[A, R, G]) DisconnectGroup(g G) {
	s.e.disconnectGroup(g)
}

// DisconnectSlot disconnects every connection made with slot.
func (s *Grouped[A, R, G]) DisconnectSlot(slot *Slot[A, R]) int {
	return s.e.disconnectIf(func(other *Slot[A, R]) bool { return other == slot })
}

// DisconnectIf disconnects every connected slot pred accepts and returns how
// many it disconnected. pred runs without the signal's mutex held.
func (s *Grouped[A, R, G]) DisconnectIf(pred func(*Slot[A, R]) bool) int {
	return s.e.disconnectIf(pred)
}

func (s *Grouped[A, R, G]) NumSlots() int {
	return s.e.numSlots()
}

func (s *Grouped[A, R, G]) Empty() bool {
	return s.e.empty()
}

func (s *Grouped[A, R, G]) Combiner() Combiner[R] {
	return s.e.combiner()
}

// SetCombiner replaces the combiner. Emissions already running keep the old one.
func (s *Grouped[A, R, G]) SetCombiner(c Combiner[R]) {
	s.e.setCombiner(c)
}

func (s *Grouped[A, R, G]) Stats() Stats {
	return s.e.stats()
}

// Tracker lets slots on other signals depend on this one.
func (s *Grouped[A, R, G]) Tracker() WeakRef {
	return engineRef[A, R, G]{p: weak.Make(s.e)}
}

// AsSlot returns a slot that forwards to this signal. It only holds the signal
// weakly and expires once the signal is closed or collected.
func (s *Grouped[A, R, G]) AsSlot() *Slot[A, R] {
	p := weak.Make(s.e)
	return newFallibleSlot(func(arg A) (R, error) {
		e := p.Value()
		if e == nil || e.closed.Load() {
			var zero R
			return zero, ErrExpiredDependency
		}
		return e.emit(arg), nil
	}).Track(engineRef[A, R, G]{p: p})
}

// Close disconnects every slot and expires the signal for anything tracking
// it. Connecting to a closed signal yields an already disconnected Connection.
func (s *Grouped[A, R, G]) Close() error {
	s.e.close()
	return nil
}

func (s *Grouped[A, R, G]) Closed() bool {
	return s.e.closed.Load()
}

// Signal is a Grouped signal keyed by int, the common case.
type Signal[A, R any] struct {
	*Grouped[A, R, int]
}

func New[A, R any](opts ...Option) *Signal[A, R] {
	return &Signal[A, R]{Grouped: NewGrouped[A, R, int](cmp.Compare[int], opts...)}
}
