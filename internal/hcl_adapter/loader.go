// Package hcl_adapter implements the config.Loader interface for HCL
// workspace files. Loading runs in two passes: the first collects the
// single workspace block, the second decodes module blocks with an
// evaluation context exposing `workspace.group` and `workspace.version`.
package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/docgraph/internal/config"
	"github.com/vk/docgraph/internal/ctxlog"
	"github.com/vk/docgraph/internal/fsutil"
	"github.com/vk/docgraph/internal/schema"
)

// Extension is the file suffix this loader recognizes.
const Extension = ".hcl"

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL workspace loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load orchestrates the entire HCL workspace loading process. It accepts
// files or directories; directories are scanned recursively for .hcl files.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	var hclFiles []string
	for _, p := range paths {
		found, err := fsutil.FindFilesByExtension(p, Extension)
		if err != nil {
			return nil, fmt.Errorf("failed to discover workspace files under %s: %w", p, err)
		}
		hclFiles = append(hclFiles, found...)
	}
	logger.Debug("Discovered HCL files.", "count", len(hclFiles))

	if len(hclFiles) == 0 {
		return nil, fmt.Errorf("no %s workspace files found", Extension)
	}

	parser := hclparse.NewParser()
	parsed := make([]*hcl.File, 0, len(hclFiles))
	for _, file := range hclFiles {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}
		parsed = append(parsed, hclFile)
	}

	// First pass: find the workspace block across all files.
	workspace, err := l.decodeWorkspace(hclFiles, parsed)
	if err != nil {
		return nil, err
	}
	logger.Debug("Workspace block decoded.", "group", workspace.Group, "version", workspace.Version)

	// Second pass: decode module blocks with the workspace in scope.
	evalCtx := evalContext(workspace)
	model := &config.Model{Workspace: workspace}
	for i, hclFile := range parsed {
		var root schema.FileRoot
		if diags := gohcl.DecodeBody(hclFile.Body, evalCtx, &root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", hclFiles[i], diags)
		}
		for _, mod := range root.Modules {
			translated, err := translateModule(mod)
			if err != nil {
				return nil, fmt.Errorf("invalid module in %s: %w", hclFiles[i], err)
			}
			model.Modules = append(model.Modules, translated)
		}
	}
	logger.Debug("HCL workspace translated into unified model.", "modules", len(model.Modules))

	return model, nil
}

// decodeWorkspace scans every file for workspace blocks and requires exactly
// one across the whole workspace.
func (l *Loader) decodeWorkspace(names []string, files []*hcl.File) (*config.Workspace, error) {
	var found *schema.Workspace
	for i, hclFile := range files {
		var root schema.WorkspaceRoot
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", names[i], diags)
		}
		for _, ws := range root.Workspaces {
			if found != nil {
				return nil, fmt.Errorf("duplicate workspace block in %s: only one is allowed", names[i])
			}
			found = ws
		}
	}
	if found == nil {
		return nil, fmt.Errorf("no workspace block found in any loaded file")
	}
	return translateWorkspace(found)
}

// evalContext builds the evaluation context for module blocks, exposing the
// workspace metadata as the `workspace` object variable.
func evalContext(ws *config.Workspace) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"workspace": cty.ObjectVal(map[string]cty.Value{
				"group":   cty.StringVal(ws.Group),
				"version": cty.StringVal(ws.Version),
			}),
		},
	}
}
