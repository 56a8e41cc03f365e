package config

import (
	"fmt"
	"path"
)

// Model is the unified, format-agnostic representation of an entire
// multi-module workspace: product-wide metadata plus every module's
// dependency declarations.
type Model struct {
	Workspace *Workspace
	// Modules preserves declaration order; ModuleByName resolves references.
	Modules []*Module
}

// Workspace carries the product-wide metadata shared by all modules.
// Version is always injected explicitly, either from the workspace file or
// from a CLI override; nothing reads it from ambient process state.
type Workspace struct {
	Group        string
	Version      string
	SnapshotHost string
	ReleaseHost  string
	StrictLinks  StrictMode
}

// Module is the format-agnostic representation of a single buildable unit
// within the workspace.
type Module struct {
	Name    string
	Group   string
	Version string
	// ArchivesBaseName is the artifact name the module publishes under.
	// Defaults to the module name.
	ArchivesBaseName string
	// Shadow is the module's bundling capability flag: when set, sibling
	// dependencies are merged into this module's artifact. Resolved once at
	// load time, never probed from plugin objects.
	Shadow bool
	// SourceRoots are the documentation source directories for the module.
	SourceRoots []string
	// DocDir is the local directory the module's generated documentation
	// index lands in, used as the local half of offline links.
	DocDir string
	// Configurations are the named dependency groupings, e.g.
	// "compileClasspath" or "shadow", in declaration order per grouping.
	Configurations map[string][]*Dependency
}

// Dependency is a single declaration inside a dependency grouping. It either
// carries external coordinates (Group/Name/Version) or references a sibling
// module by name via Project. The two forms are mutually exclusive.
type Dependency struct {
	Group   string
	Name    string
	Version string
	Project string
}

// IsProject reports whether the dependency references a sibling module
// rather than an external artifact.
func (d *Dependency) IsProject() bool {
	return d.Project != ""
}

// ModuleByName resolves a module by name. It returns nil when the workspace
// declares no such module.
func (m *Model) ModuleByName(name string) *Module {
	for _, mod := range m.Modules {
		if mod.Name == name {
			return mod
		}
	}
	return nil
}

// Default documentation hosts, overridable per workspace.
const (
	DefaultSnapshotHost = "https://snapshots.example.org"
	DefaultReleaseHost  = "https://artifacts.example.org"
)

// ApplyDefaults fills derived fields after loading: documentation hosts get
// their stock URLs, module group and version fall back to the workspace
// values, the archives base name falls back to the module name, and
// source/doc directories get their conventional locations under the module
// directory.
func (m *Model) ApplyDefaults() {
	if m.Workspace.SnapshotHost == "" {
		m.Workspace.SnapshotHost = DefaultSnapshotHost
	}
	if m.Workspace.ReleaseHost == "" {
		m.Workspace.ReleaseHost = DefaultReleaseHost
	}
	for _, mod := range m.Modules {
		if mod.Group == "" {
			mod.Group = m.Workspace.Group
		}
		if mod.Version == "" {
			mod.Version = m.Workspace.Version
		}
		if mod.ArchivesBaseName == "" {
			mod.ArchivesBaseName = mod.Name
		}
		if len(mod.SourceRoots) == 0 {
			mod.SourceRoots = []string{path.Join(mod.Name, "src")}
		}
		if mod.DocDir == "" {
			mod.DocDir = path.Join(mod.Name, "build", "docs", "api")
		}
	}
}

// Validate checks the structural integrity of the loaded model. Loader
// implementations already reject malformed files; this catches the
// cross-cutting mistakes a single file cannot see, like duplicate module
// names or a dependency that mixes both declaration forms.
func (m *Model) Validate() error {
	if m.Workspace == nil {
		return fmt.Errorf("workspace block is missing")
	}
	if m.Workspace.Version == "" {
		return fmt.Errorf("workspace version must be set")
	}

	seen := make(map[string]bool, len(m.Modules))
	for _, mod := range m.Modules {
		if mod.Name == "" {
			return fmt.Errorf("module with empty name")
		}
		if seen[mod.Name] {
			return fmt.Errorf("duplicate module %q", mod.Name)
		}
		seen[mod.Name] = true

		for configName, deps := range mod.Configurations {
			if configName == "" {
				return fmt.Errorf("module %q: dependency grouping with empty name", mod.Name)
			}
			for _, d := range deps {
				if err := validateDependency(mod.Name, configName, d); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func validateDependency(module, configuration string, d *Dependency) error {
	if d.IsProject() {
		if d.Name != "" {
			return fmt.Errorf("module %q, configuration %q: dependency declares both project %q and artifact name %q", module, configuration, d.Project, d.Name)
		}
		return nil
	}
	if d.Group == "" || d.Name == "" {
		return fmt.Errorf("module %q, configuration %q: external dependency needs both group and name", module, configuration)
	}
	return nil
}
