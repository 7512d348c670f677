// Package sigslot is an in-process signal/slot library: a signal keeps an
// ordered list of callbacks (slots) and emitting it calls every one of them
// with the same argument.
//
// # Connecting
//
// [Signal.Connect] returns a [Connection], a small comparable handle that can
// disconnect, query or block the subscription. Slots are ordered in three
// sections: slots connected [AtFront] without a group, grouped slots ordered by
// group key, then slots connected [AtBack] (the default) without a group.
// Within a section or group, insertion order is kept.
//
//	sig := sigslot.New[string, int]()
//	sig.ConnectGroup(2, func(s string) int { return len(s) })
//	sig.ConnectGroup(1, func(s string) int { return 1 })
//	conn := sig.Connect(func(s string) int { return 0 })
//	defer conn.Disconnect()
//
//	sig.Emit("hi") // runs group 1, group 2, then the ungrouped slot
//
// # Results
//
// A [Combiner] decides what Emit returns. It receives a lazy [Results]
// iterator: a slot only runs when the combiner asks for its value, so
// [FirstValue] stops the emission early. [Fold] emits once with an ad-hoc
// combiner whose result type differs from the signal's, such as [Collect].
//
// # Lifetimes
//
// A [Slot] can track objects through a [WeakRef]. When any of them expires the
// connection is disconnected before it runs again and the signal's
// [ErrorHandler] is told. Tracked objects are resolved to strong references
// for the length of each invocation. [Lifetime] is an explicitly ended
// dependency, [Weak] follows the garbage collector, and a signal's own
// [Grouped.Tracker] expires when it is closed.
//
// # Concurrency
//
// Signals are safe for concurrent use. Emissions run slots without holding the
// signal's mutex, over a snapshot of the slot list; connects and disconnects
// made meanwhile copy the list instead of touching the snapshot. A slot may
// therefore connect, disconnect or emit from inside its own invocation.
// Disconnecting is never undone and a disconnected slot does not start again,
// but a slot already running on another goroutine finishes its call.
//
// Disconnected entries are swept lazily: a few at the start of each emission,
// and the whole list after an emission that found mostly dead entries. See
// [WithSweepLimit] and [WithChurnRatio].
package sigslot
