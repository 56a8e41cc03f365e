// Package docs implements the documentation-link plugin. For every module
// it defaults the documentation task's lint flags and encoding, then wires
// cross-module links: siblings bundled into the module's artifact contribute
// their sources directly, while separately-published siblings become offline
// links against their published documentation index.
package docs

import (
	"context"

	"github.com/vk/docgraph/internal/config"
	"github.com/vk/docgraph/internal/registry"
)

// Plugin is the documentation-link plugin. The strictness mode for dangling
// sibling references is injected at construction.
type Plugin struct {
	strict config.StrictMode
}

// New creates the plugin with the given strictness mode.
func New(strict config.StrictMode) *Plugin {
	return &Plugin{strict: strict}
}

// Name implements registry.Plugin.
func (p *Plugin) Name() string {
	return "docs"
}

// Apply implements registry.Plugin. It queues the task defaulter and all
// cross-module link configuration for the module's documentation task.
// Everything is deferred: mutations land only when the task graph
// materializes.
func (p *Plugin) Apply(ctx context.Context, proj *registry.Project) error {
	if err := applyDefaults(proj); err != nil {
		return err
	}
	return p.configureCrossLinks(ctx, proj)
}
