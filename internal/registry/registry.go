// Package registry holds the plugin registry. Plugins are applied once per
// module during the declare phase, mirroring how a host build system applies
// build plugins project by project.
package registry

import (
	"context"
	"fmt"

	"github.com/vk/docgraph/internal/config"
	"github.com/vk/docgraph/internal/ctxlog"
	"github.com/vk/docgraph/internal/tasks"
)

// Project is the per-module view handed to plugins: the module itself, the
// whole workspace model for resolving sibling references, and the shared
// task graph to declare mutations against.
type Project struct {
	Module *config.Module
	Model  *config.Model
	Tasks  *tasks.Graph
}

// DocTaskName returns the name of this project's documentation task.
func (p *Project) DocTaskName() string {
	return DocTaskName(p.Module.Name)
}

// DocTaskName returns the documentation task name for a module.
func DocTaskName(module string) string {
	return module + ":docs"
}

// Plugin is the interface all registered plugins implement. Apply runs once
// per module during the declare phase; it must only queue deferred
// configurers and ordering edges, never mutate task state directly.
type Plugin interface {
	Name() string
	Apply(ctx context.Context, p *Project) error
}

// Registry holds all registered plugins for a single application instance.
type Registry struct {
	plugins []Plugin
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{}
}

// Register appends a plugin. Registration order is application order.
func (r *Registry) Register(p Plugin) {
	r.plugins = append(r.plugins, p)
}

// Plugins returns the registered plugins in registration order.
func (r *Registry) Plugins() []Plugin {
	return r.plugins
}

// ApplyAll applies every registered plugin to every module of the model, in
// module declaration order.
func (r *Registry) ApplyAll(ctx context.Context, model *config.Model, graph *tasks.Graph) error {
	logger := ctxlog.FromContext(ctx)

	for _, mod := range model.Modules {
		project := &Project{Module: mod, Model: model, Tasks: graph}
		for _, p := range r.plugins {
			logger.Debug("Applying plugin to module.", "plugin", p.Name(), "module", mod.Name)
			if err := p.Apply(ctx, project); err != nil {
				return fmt.Errorf("plugin %q failed on module %q: %w", p.Name(), mod.Name, err)
			}
		}
	}
	return nil
}
