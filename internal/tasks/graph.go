package tasks

import (
	"context"
	"fmt"

	"github.com/vk/docgraph/internal/ctxlog"
	"github.com/vk/docgraph/internal/dag"
)

// Configurer is a deferred mutation against a task. Configurers registered
// during the declare phase run only at materialization, once the whole
// workspace model is known, in registration order per task.
type Configurer func(ctx context.Context, t *Task) error

// Graph is the two-phase documentation task graph.
//
// Declare phase: tasks are declared and configurers queued against them;
// nothing is applied yet. Materialize phase: cycles are rejected, then every
// task runs its configurer queue, tasks in topological order so a configurer
// may read the already-materialized state of the tasks it depends on.
type Graph struct {
	tasks map[string]*Task
	// declared preserves declaration order for stable plan output.
	declared    []string
	configurers map[string][]Configurer
	topology    *dag.Graph
}

// NewGraph creates an empty task graph.
func NewGraph() *Graph {
	return &Graph{
		tasks:       make(map[string]*Task),
		configurers: make(map[string][]Configurer),
		topology:    dag.New(),
	}
}

// Declare registers a new task for the given module. Declaring the same
// task name twice is an error: tasks are owned by exactly one module.
func (g *Graph) Declare(module, name string) (*Task, error) {
	if _, exists := g.tasks[name]; exists {
		return nil, fmt.Errorf("task %q already declared", name)
	}
	t := &Task{Name: name, Module: module}
	g.tasks[name] = t
	g.declared = append(g.declared, name)
	g.topology.AddNode(name)
	return t, nil
}

// Lookup returns the task with the given name, if declared.
func (g *Graph) Lookup(name string) (*Task, bool) {
	t, ok := g.tasks[name]
	return t, ok
}

// Configure queues a deferred configurer against a declared task.
func (g *Graph) Configure(name string, fn Configurer) error {
	if _, ok := g.tasks[name]; !ok {
		return fmt.Errorf("cannot configure unknown task %q", name)
	}
	g.configurers[name] = append(g.configurers[name], fn)
	return nil
}

// AddTaskDependency records an execution-ordering edge: the task named by
// dependsOn must run before the named task. The edge also constrains
// materialization order.
func (g *Graph) AddTaskDependency(name, dependsOn string) error {
	t, ok := g.tasks[name]
	if !ok {
		return fmt.Errorf("cannot add dependency to unknown task %q", name)
	}
	if _, ok := g.tasks[dependsOn]; !ok {
		return fmt.Errorf("task %q depends on unknown task %q", name, dependsOn)
	}
	if err := g.topology.AddEdge(dependsOn, name); err != nil {
		return err
	}
	t.addDependsOn(dependsOn)
	return nil
}

// AddEvaluationDependency constrains materialization order without adding an
// execution edge: the task named by dependsOn materializes first, so this
// task's configurers can read its final state. This is how a bundling module
// reaches into its sibling's finished source set and classpath.
func (g *Graph) AddEvaluationDependency(name, dependsOn string) error {
	if _, ok := g.tasks[name]; !ok {
		return fmt.Errorf("cannot add evaluation dependency to unknown task %q", name)
	}
	if _, ok := g.tasks[dependsOn]; !ok {
		return fmt.Errorf("task %q evaluation-depends on unknown task %q", name, dependsOn)
	}
	return g.topology.AddEdge(dependsOn, name)
}

// Materialize runs every queued configurer. It validates the topology first;
// a dependency cycle between documentation tasks is a fatal configuration
// error, surfaced before any task state is touched.
func (g *Graph) Materialize(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Materialize: validating task topology.", "task_count", len(g.tasks))

	if err := g.topology.DetectCycles(); err != nil {
		return fmt.Errorf("error validating task graph: %w", err)
	}

	order, err := g.topology.TopologicalOrder()
	if err != nil {
		return fmt.Errorf("error ordering task graph: %w", err)
	}
	logger.Debug("Materialize: applying deferred configurers.", "order", order)

	for _, name := range order {
		t := g.tasks[name]
		for _, fn := range g.configurers[name] {
			if err := fn(ctx, t); err != nil {
				return fmt.Errorf("failed to configure task %q: %w", name, err)
			}
		}
		t.materialized = true
	}

	logger.Debug("Materialize: all tasks configured.")
	return nil
}

// Tasks returns all tasks in declaration order.
func (g *Graph) Tasks() []*Task {
	out := make([]*Task, 0, len(g.declared))
	for _, name := range g.declared {
		out = append(out, g.tasks[name])
	}
	return out
}
