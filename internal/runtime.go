package internal

// Runtime is the reactive graph for one goroutine: the ambient tracking
// context, the dirty heap, and the batching state. All propagation runs
// synchronously on the calling goroutine.
type Runtime struct {
	tracker *Tracker
	heap    *Heap
	batcher *Batcher

	flushing bool
}

func NewRuntime() *Runtime {
	return &Runtime{
		tracker: NewTracker(),
		heap:    NewHeap(),
		batcher: NewBatcher(),
	}
}

// mark propagates staleness from a changed source: direct subscribers become
// dirty, everything above them becomes check-marked, and every reachable
// effect is queued. No computation runs here; this is the mark phase only.
func (r *Runtime) mark(n *Node) {
	for l := n.subs; l != nil; l = l.nextSub {
		r.markNode(l.sub, FlagDirty)
	}
}

func (r *Runtime) markNode(sub Subscriber, state Flags) {
	n := sub.base()

	// skip if already marked at least this strongly
	if n.flags&(FlagCheck|FlagDirty) >= state {
		return
	}
	n.flags.Replace(FlagCheck|FlagDirty, state)

	switch s := sub.(type) {
	case *Effect:
		r.heap.Insert(s)
	case *Computed:
		for l := s.subs; l != nil; l = l.nextSub {
			r.markNode(l.sub, FlagCheck)
		}
	}
}

// Schedule flushes the queued effects unless a batch defers it or a flush is
// already draining, in which case the in-progress drain picks them up.
func (r *Runtime) Schedule() {
	if r.batcher.IsBatching() || r.flushing {
		return
	}

	r.Flush()
}

// Flush drains the dirty heap in height order until it is empty. Writes
// issued by running effects requeue into the same drain, so a whole cascade,
// re-entrant writes included, completes before the triggering write returns.
// The drain is iterative; cascade length does not grow the call stack.
func (r *Runtime) Flush() {
	if r.flushing {
		return
	}
	r.flushing = true
	defer func() { r.flushing = false }()

	ran := 0
	for !r.heap.Empty() {
		e := r.heap.Pop()
		r.maybeRun(e)
		ran++
	}

	if ran > 0 {
		logger.Debug("rheo: flush complete", "effects", ran)
	}
}

func (r *Runtime) Untrack(fn func()) {
	r.tracker.RunUntracked(fn)
}

// OnCleanup registers fn on the current owner; outside of any reactive scope
// it is a no-op.
func (r *Runtime) OnCleanup(fn func()) {
	if owner := r.tracker.currentOwner; owner != nil {
		owner.OnCleanup(fn)
	}
}
