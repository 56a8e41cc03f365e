package hcl_adapter

import (
	"fmt"

	"github.com/vk/docgraph/internal/config"
	"github.com/vk/docgraph/internal/schema"
)

// translateWorkspace converts the HCL-specific workspace schema into the
// agnostic model.
func translateWorkspace(ws *schema.Workspace) (*config.Workspace, error) {
	strict := config.StrictWarn
	if ws.StrictLinks != "" {
		parsed, err := config.ParseStrictMode(ws.StrictLinks)
		if err != nil {
			return nil, err
		}
		strict = parsed
	}
	return &config.Workspace{
		Group:        ws.Group,
		Version:      ws.Version,
		SnapshotHost: ws.SnapshotHost,
		ReleaseHost:  ws.ReleaseHost,
		StrictLinks:  strict,
	}, nil
}

// translateModule converts the HCL-specific module schema into the agnostic
// model, grouping dependency blocks by their configuration label.
func translateModule(mod *schema.Module) (*config.Module, error) {
	m := &config.Module{
		Name:             mod.Name,
		Group:            mod.Group,
		Version:          mod.Version,
		ArchivesBaseName: mod.ArchivesBaseName,
		Shadow:           mod.Shadow,
		SourceRoots:      mod.SourceRoots,
		DocDir:           mod.DocDir,
		Configurations:   make(map[string][]*config.Dependency),
	}
	for _, dep := range mod.Dependencies {
		if dep.Configuration == "" {
			return nil, fmt.Errorf("module %q: dependency block needs a configuration label", mod.Name)
		}
		m.Configurations[dep.Configuration] = append(m.Configurations[dep.Configuration], &config.Dependency{
			Group:   dep.Group,
			Name:    dep.Name,
			Version: dep.Version,
			Project: dep.Project,
		})
	}
	return m, nil
}
