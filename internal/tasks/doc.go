// Package tasks provides the two-phase documentation task graph.
//
// The declare phase registers tasks and queues deferred configurers against
// them; nothing mutates task state yet. The materialize phase runs once the
// whole workspace model is known: it rejects cycles, orders tasks
// topologically, and applies each task's configurers in registration order.
// This makes the usual lazy-configuration behavior of build tools explicit
// instead of relying on a runtime's evaluation semantics.
package tasks
