package sigslot

import (
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
)

// ConnectionSet is a bag of connections that are torn down together, typically
// everything one object subscribed to. It is safe for concurrent use.
type ConnectionSet struct {
	conns mapset.Set[Connection]
}

func NewConnectionSet(conns ...Connection) *ConnectionSet {
	return &ConnectionSet{
		conns: mapset.NewSet[Connection](conns...),
	}
}

func (s *ConnectionSet) Add(conns ...Connection) {
	for _, c := range conns {
		s.conns.Add(c)
	}
}

func (s *ConnectionSet) Remove(c Connection) {
	s.conns.Remove(c)
}

func (s *ConnectionSet) Contains(c Connection) bool {
	return s.conns.Contains(c)
}

func (s *ConnectionSet) Len() int {
	return s.conns.Cardinality()
}

// Connections returns the members in connection order.
func (s *ConnectionSet) Connections() []Connection {
	out := s.conns.ToSlice()
	slices.SortFunc(out, func(a, b Connection) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		default:
			return 0
		}
	})
	return out
}

// Prune forgets members that are no longer connected and returns how many were
// dropped.
func (s *ConnectionSet) Prune() int {
	pruned := 0
	for _, c := range s.conns.ToSlice() {
		if !c.Connected() {
			s.conns.Remove(c)
			pruned++
		}
	}
	return pruned
}

// DisconnectAll disconnects every member and empties the set.
func (s *ConnectionSet) DisconnectAll() {
	for _, c := range s.Connections() {
		s.conns.Remove(c)
		c.Disconnect()
	}
}

func (s *ConnectionSet) Close() error {
	s.DisconnectAll()
	return nil
}
