// Package yaml_adapter implements the config.Loader interface for YAML
// workspace files. It produces the same model as the HCL adapter, so the
// rest of the planner never knows which format a workspace was written in.
package yaml_adapter

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vk/docgraph/internal/config"
	"github.com/vk/docgraph/internal/ctxlog"
	"github.com/vk/docgraph/internal/fsutil"
)

// Extensions are the file suffixes this loader recognizes.
var Extensions = []string{".yaml", ".yml"}

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML workspace loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot mirrors the top-level structure of a YAML workspace file.
type fileRoot struct {
	Workspace *workspaceDoc `yaml:"workspace"`
	Modules   []*moduleDoc  `yaml:"modules"`
}

type workspaceDoc struct {
	Group        string `yaml:"group"`
	Version      string `yaml:"version"`
	SnapshotHost string `yaml:"snapshot_host"`
	ReleaseHost  string `yaml:"release_host"`
	StrictLinks  string `yaml:"strict_links"`
}

type moduleDoc struct {
	Name             string                      `yaml:"name"`
	Group            string                      `yaml:"group"`
	Version          string                      `yaml:"version"`
	ArchivesBaseName string                      `yaml:"archives_base_name"`
	Shadow           bool                        `yaml:"shadow"`
	SourceRoots      []string                    `yaml:"source_roots"`
	DocDir           string                      `yaml:"doc_dir"`
	Dependencies     map[string][]*dependencyDoc `yaml:"dependencies"`
}

type dependencyDoc struct {
	Group   string `yaml:"group"`
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Project string `yaml:"project"`
}

// Load reads every YAML file under the given paths and merges the result
// into a single workspace model. Exactly one file may carry the workspace
// section.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path_count", len(paths))

	var yamlFiles []string
	for _, p := range paths {
		found, err := fsutil.FindFilesByExtension(p, Extensions...)
		if err != nil {
			return nil, fmt.Errorf("failed to discover workspace files under %s: %w", p, err)
		}
		yamlFiles = append(yamlFiles, found...)
	}
	logger.Debug("Discovered YAML files.", "count", len(yamlFiles))

	if len(yamlFiles) == 0 {
		return nil, fmt.Errorf("no YAML workspace files found")
	}

	var workspace *config.Workspace
	model := &config.Model{}

	for _, file := range yamlFiles {
		root, err := decodeFile(file)
		if err != nil {
			return nil, err
		}

		if root.Workspace != nil {
			if workspace != nil {
				return nil, fmt.Errorf("duplicate workspace section in %s: only one is allowed", file)
			}
			workspace, err = translateWorkspace(root.Workspace)
			if err != nil {
				return nil, fmt.Errorf("invalid workspace section in %s: %w", file, err)
			}
		}

		for _, mod := range root.Modules {
			translated, err := translateModule(mod)
			if err != nil {
				return nil, fmt.Errorf("invalid module in %s: %w", file, err)
			}
			model.Modules = append(model.Modules, translated)
		}
	}

	if workspace == nil {
		return nil, fmt.Errorf("no workspace section found in any loaded file")
	}
	model.Workspace = workspace
	logger.Debug("YAML workspace translated into unified model.", "modules", len(model.Modules))

	return model, nil
}

// decodeFile strictly decodes a single YAML workspace file, rejecting
// unknown keys so typos surface as load errors instead of silently ignored
// configuration.
func decodeFile(path string) (*fileRoot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read YAML file %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var root fileRoot
	if err := dec.Decode(&root); err != nil {
		if err == io.EOF {
			return &fileRoot{}, nil
		}
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", path, err)
	}
	return &root, nil
}

func translateWorkspace(ws *workspaceDoc) (*config.Workspace, error) {
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

func translateModule(mod *moduleDoc) (*config.Module, error) {
	if mod.Name == "" {
		return nil, fmt.Errorf("module entry needs a name")
	}
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
	for configName, deps := range mod.Dependencies {
		if configName == "" {
			return nil, fmt.Errorf("module %q: dependency grouping with empty name", mod.Name)
		}
		for _, dep := range deps {
			m.Configurations[configName] = append(m.Configurations[configName], &config.Dependency{
				Group:   dep.Group,
				Name:    dep.Name,
				Version: dep.Version,
				Project: dep.Project,
			})
		}
	}
	return m, nil
}
