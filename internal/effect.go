package internal

// Effect is a side-effecting computation, rerun whenever a source it read
// actually changes. Reruns happen during the flush that a write triggers.
type Effect struct {
	Node

	owner *Owner
	body  func()

	// intrusive dirty-heap list, see Heap. heapHeight pins the bucket the
	// effect was queued in; its live height may change while queued, when a
	// rerun rebuilds the dependency set.
	heapNext   *Effect
	heapPrev   *Effect
	heapHeight int
}

func (r *Runtime) NewEffect(body func()) *Effect {
	e := &Effect{
		owner: r.NewOwner(),
		body:  body,
	}
	e.heapPrev = e

	e.owner.OnDispose(func() {
		e.detach()
	})

	// discovery pass
	r.runEffect(e)

	return e
}

func (e *Effect) base() *Node {
	return &e.Node
}

// Dispose tears the effect down: child nodes and cleanups run one last time,
// every dependency edge is removed, and the effect never reruns.
func (e *Effect) Dispose() {
	e.owner.Dispose()
}

func (e *Effect) detach() {
	if e.flags.Has(FlagDisposed) {
		return
	}
	e.flags.Set(FlagDisposed)

	GetRuntime().heap.Remove(e)
	e.clearDeps()
}

// maybeRun reruns a queued effect unless validating its dependencies shows
// nothing actually changed.
func (r *Runtime) maybeRun(e *Effect) {
	if e.flags.Has(FlagDisposed) {
		e.flags.Clear(FlagCheck | FlagDirty)
		return
	}

	if e.flags.Has(FlagCheck) && !e.flags.Has(FlagDirty) {
		if r.depsChanged(&e.Node) {
			e.flags.Set(FlagDirty)
		}
	}

	stale := e.flags.Has(FlagDirty)
	e.flags.Clear(FlagCheck | FlagDirty)

	if stale {
		r.runEffect(e)
	}
}

// runEffect clears the stale dependency set, disposes everything the previous
// run produced, and executes the body under tracking. Stale edges go first:
// cleanups may read sources this effect no longer depends on, and a surviving
// edge would re-mark the effect mid-run. A panicking body is routed to the
// nearest owner with an error listener; with none it propagates to whoever
// triggered the run, with the ambient context already restored.
func (r *Runtime) runEffect(e *Effect) {
	e.clearDeps()
	e.owner.DisposeChildren()
	e.owner.runCleanups()

	defer func() {
		if rec := recover(); rec != nil {
			catch := e.owner.catcher()
			if catch == nil {
				panic(rec)
			}

			logger.Debug("rheo: effect panic caught by owner", "value", rec)
			catch(rec)
		}
	}()

	r.tracker.RunWithComputation(e, e.owner, e.body)
}
