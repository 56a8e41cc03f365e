package docs

import (
	"context"
	"fmt"
	"sort"

	"github.com/vk/docgraph/internal/config"
	"github.com/vk/docgraph/internal/ctxlog"
	"github.com/vk/docgraph/internal/registry"
)

// baseGroupings are the dependency groupings inspected for every module.
var baseGroupings = []string{"compileClasspath", "compileOnly"}

// shadowGrouping is additionally inspected when the module bundles its
// dependencies. It goes last: link resolution is first-registered-wins, so a
// bundled self-reference registered earlier would shadow the links of
// genuinely external siblings.
const shadowGrouping = "shadow"

// configureCrossLinks inspects the module's dependency groupings and
// dispatches every resolvable sibling reference to the per-dependency
// configurer. Dependencies are stable-sorted by group ascending before
// dispatch; that sort is the only ordering guarantee between groupings'
// entries.
func (p *Plugin) configureCrossLinks(ctx context.Context, proj *registry.Project) error {
	logger := ctxlog.FromContext(ctx)

	shadowed := proj.Module.Shadow
	groupings := baseGroupings
	if shadowed {
		groupings = append(append([]string(nil), baseGroupings...), shadowGrouping)
	}
	logger.Debug("Resolving cross-module documentation links.",
		"module", proj.Module.Name, "shadowed", shadowed, "groupings", groupings)

	for _, grouping := range groupings {
		deps := append([]*config.Dependency(nil), proj.Module.Configurations[grouping]...)
		sort.SliceStable(deps, func(i, j int) bool {
			return p.sortGroup(proj, deps[i]) < p.sortGroup(proj, deps[j])
		})

		for _, dep := range deps {
			if !dep.IsProject() {
				continue
			}

			target := proj.Model.ModuleByName(dep.Project)
			if target == nil {
				if err := p.handleDangling(ctx, proj, grouping, dep); err != nil {
					return err
				}
				continue
			}

			var err error
			if shadowed {
				err = p.configureBundled(ctx, proj, target)
			} else {
				err = p.configureExternalLink(ctx, proj, dep, target)
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// handleDangling applies the configured strictness to a project reference
// whose target module is not declared in the workspace.
func (p *Plugin) handleDangling(ctx context.Context, proj *registry.Project, grouping string, dep *config.Dependency) error {
	logger := ctxlog.FromContext(ctx)
	switch p.strict {
	case config.StrictError:
		return fmt.Errorf("module %q, configuration %q: project reference %q does not resolve to a workspace module", proj.Module.Name, grouping, dep.Project)
	case config.StrictSkip:
		logger.Debug("Skipping unresolvable project reference.",
			"module", proj.Module.Name, "configuration", grouping, "project", dep.Project)
	default:
		logger.Warn("Project reference does not resolve to a workspace module; its documentation will not be linked.",
			"module", proj.Module.Name, "configuration", grouping, "project", dep.Project)
	}
	return nil
}

// sortGroup returns the group identifier a dependency sorts under: its own
// declared group, or the target module's group for bare project references.
func (p *Plugin) sortGroup(proj *registry.Project, dep *config.Dependency) string {
	if dep.Group != "" {
		return dep.Group
	}
	if dep.IsProject() {
		if target := proj.Model.ModuleByName(dep.Project); target != nil {
			return target.Group
		}
	}
	return ""
}
