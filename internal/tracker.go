package internal

// Tracker holds the ambient execution context: the computation currently
// running (for dependency discovery) and the owner currently in scope (for
// lifecycle registration). Both are saved and restored with stack discipline,
// via defer, so a panicking body never leaves a stale pointer behind.
type Tracker struct {
	tracking bool

	currentOwner       *Owner
	currentComputation Subscriber
}

func NewTracker() *Tracker {
	return &Tracker{
		tracking: true,
	}
}

func (t *Tracker) RunWithOwner(owner *Owner, fn func()) {
	prev := t.currentOwner
	t.currentOwner = owner
	defer func() { t.currentOwner = prev }()

	fn()
}

func (t *Tracker) RunWithComputation(sub Subscriber, owner *Owner, fn func()) {
	prevOwner := t.currentOwner
	prevComputation := t.currentComputation
	prevTracking := t.tracking

	t.currentOwner = owner
	t.currentComputation = sub
	t.tracking = true

	defer func() {
		t.currentOwner = prevOwner
		t.currentComputation = prevComputation
		t.tracking = prevTracking
	}()

	fn()
}

func (t *Tracker) RunUntracked(fn func()) {
	prev := t.tracking
	t.tracking = false
	defer func() { t.tracking = prev }()

	fn()
}

// Track registers the given source as a dependency of the currently running
// computation, if any.
func (t *Tracker) Track(dep Source) {
	if t.ShouldTrack() {
		link(t.currentComputation, dep)
	}
}

func (t *Tracker) ShouldTrack() bool {
	return t.currentComputation != nil && t.tracking
}
