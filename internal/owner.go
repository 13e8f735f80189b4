package internal

// Owner manages the lifecycle of reactive nodes. Every effect and computed
// carries one; disposing an owner disposes its children depth-first, then
// runs the cleanups registered during the last run.
type Owner struct {
	parent       *Owner
	prevSibling  *Owner
	nextSibling  *Owner
	childrenHead *Owner

	// cleanup functions registered via OnCleanup during the last run,
	// consumed on the next dispose or rerun
	cleanups []func()

	// teardown hooks that run on every dispose
	disposers []func()

	// panic handlers for computations running under this owner
	catchers []func(any)
}

func (r *Runtime) NewOwner() *Owner {
	o := &Owner{}

	if parent := r.tracker.currentOwner; parent != nil {
		parent.AddChild(o)
	}

	return o
}

func (parent *Owner) AddChild(child *Owner) {
	child.parent = parent
	child.prevSibling = nil
	child.nextSibling = parent.childrenHead

	if parent.childrenHead != nil {
		parent.childrenHead.prevSibling = child
	}

	parent.childrenHead = child
}

func (parent *Owner) removeChild(child *Owner) {
	if child.parent != parent {
		return
	}

	if child.prevSibling != nil {
		child.prevSibling.nextSibling = child.nextSibling
	} else {
		parent.childrenHead = child.nextSibling
	}

	if child.nextSibling != nil {
		child.nextSibling.prevSibling = child.prevSibling
	}

	child.parent = nil
	child.prevSibling = nil
	child.nextSibling = nil
}

func (o *Owner) Dispose() {
	if o.parent != nil {
		o.parent.removeChild(o)
	}

	o.DisposeChildren()
	o.runCleanups()

	for _, dispose := range o.disposers {
		dispose()
	}
}

func (o *Owner) DisposeChildren() {
	for child := o.childrenHead; child != nil; {
		next := child.nextSibling
		child.parent = nil // already being detached wholesale
		child.Dispose()
		child = next
	}

	o.childrenHead = nil
}

func (o *Owner) runCleanups() {
	cleanups := o.cleanups
	o.cleanups = nil

	for _, cleanup := range cleanups {
		cleanup()
	}
}

// Run executes fn with this owner as the ambient owner, so nodes created
// inside become its children. A panic in fn is routed to the nearest owner
// with an error listener; with none registered it propagates as usual.
func (o *Owner) Run(fn func()) {
	defer func() {
		if rec := recover(); rec != nil {
			catch := o.catcher()
			if catch == nil {
				panic(rec)
			}
			catch(rec)
		}
	}()

	GetRuntime().tracker.RunWithOwner(o, fn)
}

func (o *Owner) OnCleanup(fn func()) {
	o.cleanups = append(o.cleanups, fn)
}

func (o *Owner) OnDispose(fn func()) {
	o.disposers = append(o.disposers, fn)
}

func (o *Owner) OnError(fn func(any)) {
	o.catchers = append(o.catchers, fn)
}

// catcher returns a handler invoking the catchers of the nearest owner,
// searching upward from this one, or nil if no owner registered any.
func (o *Owner) catcher() func(any) {
	for owner := o; owner != nil; owner = owner.parent {
		if len(owner.catchers) == 0 {
			continue
		}

		catchers := owner.catchers
		return func(v any) {
			for _, catch := range catchers {
				catch(v)
			}
		}
	}

	return nil
}
