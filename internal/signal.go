package internal

import "reflect"

// Signal is a mutable value cell with dependency tracking on read.
type Signal struct {
	Node

	value any
}

func (r *Runtime) NewSignal(initial any) *Signal {
	return &Signal{
		value: initial,
	}
}

func (s *Signal) base() *Node {
	return &s.Node
}

func (s *Signal) Read() any {
	r := GetRuntime()
	r.tracker.Track(s)

	return s.value
}

// Write stores the new value and propagates: direct subscribers are marked
// dirty, transitive ones marked for checking, and queued effects run before
// Write returns unless a batch or an outer flush is in progress. Writing a
// value equal to the current one is a no-op.
func (s *Signal) Write(v any) {
	if equal(s.value, v) {
		return
	}

	s.value = v

	r := GetRuntime()
	r.mark(&s.Node)
	r.Schedule()
}

// equal reports whether two dynamic values compare equal. Values of
// uncomparable types never compare equal, so writes of such values always
// propagate instead of panicking on ==.
func equal(a, b any) bool {
	if a == nil || b == nil {
		return a == b
	}

	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}

	return a == b
}
