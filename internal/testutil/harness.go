// Package testutil provides helpers for tests that drive the planner
// through real workspace files on disk.
package testutil

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/vk/docgraph/internal/app"
	"github.com/vk/docgraph/internal/config"
	"github.com/vk/docgraph/internal/hcl_adapter"
	"github.com/vk/docgraph/internal/render"
	"github.com/vk/docgraph/internal/tasks"
	"github.com/vk/docgraph/internal/yaml_adapter"
)

// WriteFiles writes the given relative-path to content map under a fresh
// temporary directory and returns the directory's root.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("failed to create dir for %s: %v", rel, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("failed to write %s: %v", rel, err)
		}
	}
	return root
}

// PlannerResult is what RunPlannerTest hands back: the app (nil when startup
// failed), the materialized graph, any error from startup or the
// configuration pass, and the rendered plan output.
type PlannerResult struct {
	App    *app.App
	Graph  *tasks.Graph
	Err    error
	Output string
}

// RunPlannerTest writes the given workspace files, runs the full planner
// pipeline over them, and returns the result. Startup panics (unreadable or
// invalid workspaces) are recovered into Err so tests can assert on them.
func RunPlannerTest(t *testing.T, files map[string]string, cfg app.Config) *PlannerResult {
	t.Helper()

	root := WriteFiles(t, files)
	if cfg.WorkspacePath == "" {
		cfg.WorkspacePath = root
	} else {
		cfg.WorkspacePath = filepath.Join(root, cfg.WorkspacePath)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "error"
	}

	appConfig, err := app.NewConfig(cfg)
	if err != nil {
		return &PlannerResult{Err: err}
	}

	out := &bytes.Buffer{}
	result := &PlannerResult{}
	func() {
		defer func() {
			if r := recover(); r != nil {
				if recovered, ok := r.(error); ok {
					result.Err = recovered
				} else {
					t.Fatalf("unexpected non-error panic: %v", r)
				}
			}
		}()
		result.App = app.NewApp(out, io.Discard, appConfig, loaderFor(cfg.WorkspacePath))
	}()
	if result.Err != nil {
		return result
	}

	result.Graph, result.Err = result.App.BuildGraph(context.Background())
	if result.Err != nil {
		return result
	}

	result.Err = render.Plan(out, result.Graph)
	result.Output = out.String()
	return result
}

func loaderFor(path string) config.Loader {
	ext := filepath.Ext(path)
	for _, known := range yaml_adapter.Extensions {
		if ext == known {
			return yaml_adapter.NewLoader()
		}
	}
	return hcl_adapter.NewLoader()
}
