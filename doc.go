// Package rheo provides fine-grained reactive primitives: values that can be
// read and written such that any computation that read them is automatically
// re-invoked when they change, without declaring dependencies explicitly.
//
// The three building blocks:
//   - [NewSignal] creates a mutable value cell. Reading it inside an effect
//     or computed records a dependency edge; writing it reruns dependents.
//   - [NewEffect] creates a side-effecting computation that runs once
//     immediately and again whenever a value it read changes.
//   - [NewComputed] creates a cached derived value, itself readable like a
//     signal. A dependency change only invalidates the cache; the
//     computation reruns on the next read.
//
// Propagation model (high level):
//   - A write first marks the transitive closure of dependents as stale,
//     then runs the affected effects in dependency order before returning.
//     Effects therefore never observe a half-propagated state, even in
//     diamond-shaped graphs.
//   - Each rerun rediscovers dependencies from scratch: edges into sources
//     no longer read are removed, so switching a branch stops notifications
//     from the branch no longer taken.
//   - A computed that reads itself back during its own evaluation panics
//     with [*CycleError] instead of recursing forever.
//
// Lifecycle (high level):
//   - [NewEffect] and [CreateEffect] hand back a disposer; disposing removes
//     the computation from every source's subscriber set.
//   - [OnCleanup] registers teardown to run before the next rerun.
//   - [NewOwner] scopes a group of nodes so they can be disposed together.
//
// Each goroutine owns an independent reactive graph; all propagation is
// synchronous on the calling goroutine.
package rheo
