package app

import (
	"context"
	"fmt"
	"path"

	"github.com/vk/docgraph/internal/config"
	"github.com/vk/docgraph/internal/ctxlog"
	"github.com/vk/docgraph/internal/registry"
	"github.com/vk/docgraph/internal/render"
	"github.com/vk/docgraph/internal/tasks"
)

// Run executes the single configuration pass: declare every module's
// documentation task, apply the registered plugins (which only queue
// deferred configurers), materialize the task graph, and render the plan.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	graph, err := a.BuildGraph(ctx)
	if err != nil {
		return err
	}

	if err := render.Plan(a.outW, graph); err != nil {
		return fmt.Errorf("failed to render plan: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// BuildGraph performs the declare and materialize phases and returns the
// finished task graph. Exposed separately so tests can inspect the graph
// without capturing rendered output.
func (a *App) BuildGraph(ctx context.Context) (*tasks.Graph, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	graph := tasks.NewGraph()
	if err := a.declareTasks(ctx, graph); err != nil {
		return nil, fmt.Errorf("failed to declare documentation tasks: %w", err)
	}
	a.logger.Debug("Documentation tasks declared.", "count", len(graph.Tasks()))

	if err := a.registry.ApplyAll(ctx, a.model, graph); err != nil {
		return nil, fmt.Errorf("failed to apply plugins: %w", err)
	}
	a.logger.Debug("All plugins applied.")

	if err := graph.Materialize(ctx); err != nil {
		return nil, fmt.Errorf("failed to materialize task graph: %w", err)
	}
	a.logger.Info("Documentation task graph materialized.", "tasks", len(graph.Tasks()))

	return graph, nil
}

// declareTasks creates one documentation task per module, seeded with the
// module's own sources and the classpath derived from its external compile
// dependencies. Plugins refine this state through deferred configurers.
func (a *App) declareTasks(ctx context.Context, graph *tasks.Graph) error {
	for _, mod := range a.model.Modules {
		t, err := graph.Declare(mod.Name, registry.DocTaskName(mod.Name))
		if err != nil {
			return err
		}
		t.UnionSource(mod.SourceRoots)
		t.SetClasspath(initialClasspath(mod))
	}
	return nil
}

// initialClasspath derives a module's starting classpath from the external
// artifacts on its compile classpath. Project references contribute nothing
// here; the docs plugin decides how siblings are wired.
func initialClasspath(mod *config.Module) []string {
	var classpath []string
	for _, dep := range mod.Configurations["compileClasspath"] {
		if dep.IsProject() {
			continue
		}
		classpath = append(classpath, path.Join("libs", dep.Group, dep.Name+"-"+dep.Version+".jar"))
	}
	return classpath
}
