package docs

import (
	"context"
	"fmt"

	"github.com/vk/docgraph/internal/config"
	"github.com/vk/docgraph/internal/ctxlog"
	"github.com/vk/docgraph/internal/registry"
	"github.com/vk/docgraph/internal/tasks"
)

// configureBundled handles a sibling whose classes are merged into the
// current module's artifact. The sibling's documentation sources are unioned
// into the current task so they appear local, and the classpath is replaced
// with the sibling's so its references typecheck against its own
// dependencies. The evaluation dependency guarantees the sibling's task is
// fully materialized before this configurer reads it.
func (p *Plugin) configureBundled(ctx context.Context, proj *registry.Project, target *config.Module) error {
	logger := ctxlog.FromContext(ctx)
	current := proj.DocTaskName()
	upstream := registry.DocTaskName(target.Name)
	logger.Debug("Bundling sibling documentation sources.", "task", current, "upstream", upstream)

	graph := proj.Tasks
	if err := graph.AddEvaluationDependency(current, upstream); err != nil {
		return err
	}
	return graph.Configure(current, func(ctx context.Context, t *tasks.Task) error {
		up, ok := graph.Lookup(upstream)
		if !ok {
			return fmt.Errorf("upstream task %q disappeared from the graph", upstream)
		}
		t.UnionSource(up.SourceSet)
		t.SetClasspath(up.Classpath)
		return nil
	})
}

// configureExternalLink handles a separately-published sibling: the
// sibling's documentation task must run first, and an offline link maps the
// sibling's published documentation URL to its local documentation output.
func (p *Plugin) configureExternalLink(ctx context.Context, proj *registry.Project, dep *config.Dependency, target *config.Module) error {
	logger := ctxlog.FromContext(ctx)
	current := proj.DocTaskName()
	upstream := registry.DocTaskName(target.Name)
	logger.Debug("Linking sibling documentation offline.", "task", current, "upstream", upstream)

	if err := proj.Tasks.AddTaskDependency(current, upstream); err != nil {
		return err
	}

	workspace := proj.Model.Workspace
	group := effectiveGroup(dep, target)
	version := effectiveVersion(dep, target)
	return proj.Tasks.Configure(current, func(ctx context.Context, t *tasks.Task) error {
		artifactPath := ArtifactPath(group, target.ArchivesBaseName, version)
		t.AddOfflineLink(ArtifactHost(workspace)+"/docs/api/"+artifactPath, target.DocDir)
		return nil
	})
}

// effectiveGroup is the dependency's declared group, falling back to the
// target module's own group for bare project references.
func effectiveGroup(dep *config.Dependency, target *config.Module) string {
	if dep.Group != "" {
		return dep.Group
	}
	return target.Group
}

// effectiveVersion is the dependency's declared version, falling back to
// the target module's own version.
func effectiveVersion(dep *config.Dependency, target *config.Module) string {
	if dep.Version != "" {
		return dep.Version
	}
	return target.Version
}
