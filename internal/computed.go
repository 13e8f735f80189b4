package internal

// Computed is a cached derived value, readable like a signal. It is created
// stale and recomputes only when read: a dependency change just flips flags
// and propagates them upward, it never runs the computation.
type Computed struct {
	Node

	owner   *Owner
	compute func() any

	value       any
	initialized bool
}

func (r *Runtime) NewComputed(compute func() any) *Computed {
	c := &Computed{
		owner:   r.NewOwner(),
		compute: compute,
	}
	c.flags = FlagDirty

	c.owner.OnDispose(func() {
		c.flags.Set(FlagDisposed)
		c.clearDeps()
	})

	return c
}

func (c *Computed) base() *Node {
	return &c.Node
}

// Read returns the cached value, recomputing it first if stale, and registers
// the caller's computation as a subscriber. Panics with *CycleError if this
// computed is currently evaluating, i.e. its own computation (transitively)
// read it back.
func (c *Computed) Read() any {
	r := GetRuntime()

	if c.flags.Has(FlagCheck | FlagDirty) {
		r.update(c)
	}

	r.tracker.Track(c)

	return c.value
}

func (c *Computed) Dispose() {
	c.owner.Dispose()
}

// update validates a possibly-stale computed and reports whether its value
// changed. A node only marked for checking recomputes only if validating its
// dependencies shows one actually changed; an unchanged result stops the
// propagation wave here.
func (r *Runtime) update(c *Computed) bool {
	if c.flags.Has(FlagRunning) {
		panic(&CycleError{})
	}
	if c.flags.Has(FlagDisposed) {
		c.flags.Clear(FlagCheck | FlagDirty)
		return false
	}

	if c.flags.Has(FlagCheck) && !c.flags.Has(FlagDirty) {
		if r.depsChanged(&c.Node) {
			c.flags.Set(FlagDirty)
		}
	}

	changed := false
	if c.flags.Has(FlagDirty) {
		changed = r.recompute(c)
	}

	c.flags.Clear(FlagCheck | FlagDirty)

	if changed {
		// Subscribers were only marked for checking during the write's mark
		// phase; now that the change is confirmed, promote them to dirty so a
		// later validation doesn't miss it.
		r.mark(&c.Node)
	}

	return changed
}

// recompute runs the computation under tracking and reports whether the
// cached value changed. On panic the dirty flag survives, so the next read
// retries; the ambient context is restored either way.
func (r *Runtime) recompute(c *Computed) bool {
	old := c.value

	// stale edges first, so cleanups reading old sources can't re-mark us
	c.clearDeps()
	c.owner.DisposeChildren()
	c.owner.runCleanups()

	c.flags.Set(FlagRunning)
	defer c.flags.Clear(FlagRunning)

	var v any
	r.tracker.RunWithComputation(c, c.owner, func() {
		v = c.compute()
	})

	changed := !c.initialized || !equal(old, v)
	c.value = v
	c.initialized = true

	return changed
}

// depsChanged validates every stale computed dependency of n and reports
// whether any of them produced a new value.
func (r *Runtime) depsChanged(n *Node) bool {
	for l := n.deps; l != nil; l = l.nextDep {
		dep, ok := l.dep.(*Computed)
		if !ok {
			continue
		}

		if dep.flags.Has(FlagCheck|FlagDirty) && r.update(dep) {
			return true
		}
	}

	return false
}
