package internal

// Flags represents the state of a reactive node.
type Flags uint8

const (
	FlagNone Flags = 0

	// FlagCheck means the node might be stale: an indirect dependency
	// changed, so direct dependencies must be validated before recomputing.
	FlagCheck Flags = 1 << iota

	// FlagDirty means the node is definitely stale and must recompute.
	// Must stay numerically above FlagCheck; marking compares the two.
	FlagDirty

	// FlagInHeap means the node is currently queued in the dirty heap.
	FlagInHeap

	// FlagRunning means the node's body is currently executing.
	// A read re-entering a running node is a dependency cycle.
	FlagRunning

	// FlagDisposed means the node has been torn down and must never run again.
	FlagDisposed
)

func (f Flags) Has(flag Flags) bool {
	return f&flag != 0
}

func (f *Flags) Set(flag Flags) {
	*f |= flag
}

func (f *Flags) Clear(flag Flags) {
	*f &^= flag
}

func (f *Flags) Replace(old, new Flags) {
	*f = (*f &^ old) | new
}
