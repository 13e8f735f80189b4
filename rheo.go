package rheo

import (
	"log/slog"

	"github.com/rheo-dev/rheo/internal"
)

func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}

	return v.(T)
}

// CycleError is the panic value raised when a computed (transitively) reads
// itself during its own evaluation.
type CycleError = internal.CycleError

type Signal[T any] struct {
	signal *internal.Signal
}

// NewSignal creates your typical read/write signal.
func NewSignal[T any](initial T) *Signal[T] {
	return &Signal[T]{
		internal.GetRuntime().NewSignal(initial),
	}
}

// Read the current value of the signal, tracking the dependency if within a
// reactive context.
func (s *Signal[T]) Read() T {
	return as[T](s.signal.Read())
}

// Write a new value to the signal, triggering updates to any dependents.
// Writing a value equal to the current one triggers nothing.
func (s *Signal[T]) Write(v T) {
	s.signal.Write(v)
}

type Computed[T any] struct {
	computed *internal.Computed
}

// NewComputed creates a computed signal that derives its value from other
// signals. The computation does not run until the first Read; a dependency
// change only invalidates the cache.
func NewComputed[T any](compute func() T) *Computed[T] {
	return &Computed[T]{
		internal.GetRuntime().NewComputed(func() any {
			return compute()
		}),
	}
}

// Read the current value of the computed signal, recomputing it if stale, and
// tracking the dependency if within a reactive context.
func (c *Computed[T]) Read() T {
	return as[T](c.computed.Read())
}

// Dispose unsubscribes the computed from all its dependencies.
func (c *Computed[T]) Dispose() {
	c.computed.Dispose()
}

type Effect struct {
	effect *internal.Effect
}

// NewEffect creates a reactive effect that runs the given function once
// immediately and again whenever a signal or computed it read changes.
func NewEffect(body func()) *Effect {
	return &Effect{
		internal.GetRuntime().NewEffect(body),
	}
}

// Dispose stops the effect: cleanups run one last time and the effect is
// removed from every source's subscriber set.
func (e *Effect) Dispose() {
	e.effect.Dispose()
}

// CreateSignal is the function-pair form of NewSignal.
func CreateSignal[T any](initial T) (read func() T, write func(T)) {
	s := NewSignal(initial)
	return s.Read, s.Write
}

// CreateComputed is the function-pair form of NewComputed.
func CreateComputed[T any](compute func() T) (read func() T) {
	return NewComputed(compute).Read
}

// CreateEffect is the function-pair form of NewEffect.
func CreateEffect(body func()) (dispose func()) {
	return NewEffect(body).Dispose
}

// Batch groups multiple signal writes into a single update cycle, instead of
// triggering updates after each write.
func Batch(fn func()) {
	internal.GetRuntime().NewBatch(fn)
}

// Untrack runs the given function without tracking any reactive dependencies.
func Untrack[T any](fn func() T) T {
	var result T
	internal.GetRuntime().Untrack(func() { result = fn() })
	return result
}

// OnCleanup registers a function to be called before the current effect's
// next rerun and when its owner is disposed.
func OnCleanup(fn func()) {
	internal.GetRuntime().OnCleanup(fn)
}

type Owner struct {
	owner *internal.Owner
}

// NewOwner creates a new reactive owner.
// An owner manages the lifecycle of reactive nodes created within its context.
func NewOwner() *Owner {
	return &Owner{
		internal.GetRuntime().NewOwner(),
	}
}

// Run a function within the context of this owner.
// Each reactive node created within the function will be a child of this
// owner, and will be disposed when Dispose is called on this owner.
func (o *Owner) Run(fn func()) { o.owner.Run(fn) }

// Dispose this owner and all its children.
func (o *Owner) Dispose() { o.owner.Dispose() }

// Add a cleanup function to be called when the owner is disposed.
func (o *Owner) OnCleanup(fn func()) { o.owner.OnCleanup(fn) }

// Add a function to be called when a panic occurs within this owner.
// If no error listener is registered, the panic will propagate as usual.
func (o *Owner) OnError(fn func(any)) { o.owner.OnError(fn) }

// SetLogger overrides the logger used for the engine's debug traces.
// If not set, slog.Default() is used.
func SetLogger(l *slog.Logger) {
	internal.SetLogger(l)
}
