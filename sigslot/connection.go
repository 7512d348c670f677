package sigslot

import (
	"sync"
	"weak"
)

// Connection is a handle to one subscription. It does not keep the
// subscription alive: once the signal has dropped it the handle simply reports
// disconnected. Connections are comparable and can be used as map keys.
type Connection struct {
	body weak.Pointer[connectionBody]
	id   uint64
}

func (c Connection) resolve() *connectionBody {
	return c.body.Value()
}

// Disconnect removes the slot from future emissions. It is safe to call more
// than once, and safe to call from inside the slot itself.
func (c Connection) Disconnect() {
	if b := c.resolve(); b != nil {
		b.disconnect()
	}
}

func (c Connection) Connected() bool {
	b := c.resolve()
	return b != nil && b.isConnected()
}

func (c Connection) Blocked() bool {
	b := c.resolve()
	return b != nil && b.isBlocked()
}

// ID is unique per process and increases with connection order. The zero
// Connection has ID 0.
func (c Connection) ID() uint64 {
	return c.id
}

func (c Connection) Less(other Connection) bool {
	return c.id < other.id
}

// ScopedConnection disconnects its connection when closed or reassigned.
// Use it with defer where a destructor would be used elsewhere.
type ScopedConnection struct {
	mu   sync.Mutex
	conn Connection
}

func NewScopedConnection(c Connection) *ScopedConnection {
	return &ScopedConnection{conn: c}
}

func (s *ScopedConnection) Connection() Connection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn
}

func (s *ScopedConnection) Connected() bool {
	return s.Connection().Connected()
}

// Reset disconnects the held connection and takes c in its place.
func (s *ScopedConnection) Reset(c Connection) {
	s.mu.Lock()
	old := s.conn
	s.conn = c
	s.mu.Unlock()
	if old != c {
		old.Disconnect()
	}
}

// Release hands the connection back without disconnecting it.
func (s *ScopedConnection) Release() Connection {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.conn
	s.conn = Connection{}
	return c
}

func (s *ScopedConnection) Close() error {
	s.Release().Disconnect()
	return nil
}

// SharedConnectionBlock holds a connection blocked. Blocking is counted: the
// connection only runs again once every block on it is released.
type SharedConnectionBlock struct {
	mu       sync.Mutex
	conn     Connection
	blocking bool
	holds    bool
}

// NewSharedConnectionBlock creates a block on c, already blocking when
// initiallyBlocked is set.
func NewSharedConnectionBlock(c Connection, initiallyBlocked bool) *SharedConnectionBlock {
	s := &SharedConnectionBlock{conn: c}
	if initiallyBlocked {
		s.Block()
	}
	return s
}

func (s *SharedConnectionBlock) Block() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.blocking {
		return
	}
	s.blocking = true
	// an expired connection still reports blocking so callers see what they asked for
	if b := s.conn.resolve(); b != nil {
		b.addBlocker()
		s.holds = true
	}
}

func (s *SharedConnectionBlock) Unblock() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.blocking {
		return
	}
	s.blocking = false
	if s.holds {
		s.holds = false
		if b := s.conn.resolve(); b != nil {
			b.removeBlocker()
		}
	}
}

// Close releases the block, so it can be deferred right after creation.
func (s *SharedConnectionBlock) Close() error {
	s.Unblock()
	return nil
}

func (s *SharedConnectionBlock) Blocking() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.blocking
}

func (s *SharedConnectionBlock) Connection() Connection {
	return s.conn
}
