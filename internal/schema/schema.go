// Package schema defines the HCL block structures a workspace file is
// decoded into. These are HCL-specific; the hcl_adapter package translates
// them into the format-agnostic config model.
package schema

import "github.com/hashicorp/hcl/v2"

// Workspace represents the single `workspace` block of a workspace file.
// It carries the product-wide metadata every module inherits.
type Workspace struct {
	Group        string `hcl:"group"`
	Version      string `hcl:"version"`
	SnapshotHost string `hcl:"snapshot_host,optional"`
	ReleaseHost  string `hcl:"release_host,optional"`
	StrictLinks  string `hcl:"strict_links,optional"`
}

// Module represents a `module` block: one buildable unit of the workspace.
// Attribute expressions may reference the workspace via the `workspace.*`
// variables, e.g. `group = workspace.group`.
type Module struct {
	Name             string        `hcl:"name,label"`
	Group            string        `hcl:"group,optional"`
	Version          string        `hcl:"version,optional"`
	ArchivesBaseName string        `hcl:"archives_base_name,optional"`
	Shadow           bool          `hcl:"shadow,optional"`
	SourceRoots      []string      `hcl:"source_roots,optional"`
	DocDir           string        `hcl:"doc_dir,optional"`
	Dependencies     []*Dependency `hcl:"dependency,block"`
}

// Dependency represents a `dependency` block inside a module. The label
// names the dependency grouping ("configuration") the declaration belongs
// to. Either `project` (a sibling module name) or `group`+`name` must be
// set, never both forms at once.
type Dependency struct {
	Configuration string `hcl:"configuration,label"`
	Group         string `hcl:"group,optional"`
	Name          string `hcl:"name,optional"`
	Version       string `hcl:"version,optional"`
	Project       string `hcl:"project,optional"`
}

// WorkspaceRoot decodes only the workspace block of a file, leaving module
// blocks for the second decoding pass once the evaluation context exists.
type WorkspaceRoot struct {
	Workspaces []*Workspace `hcl:"workspace,block"`
	Remain     hcl.Body     `hcl:",remain"`
}

// FileRoot decodes all top-level blocks of a workspace file.
type FileRoot struct {
	Workspaces []*Workspace `hcl:"workspace,block"`
	Modules    []*Module    `hcl:"module,block"`
	Remain     hcl.Body     `hcl:",remain"`
}
