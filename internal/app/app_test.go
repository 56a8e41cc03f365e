package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/docgraph/internal/app"
	"github.com/vk/docgraph/internal/testutil"
)

const workspaceHCL = `
workspace {
  group   = "org.acme"
  version = "8.1.0"
}

module "core" {
  group = "org.acme.core"
}

module "server" {
  dependency "compileClasspath" {
    project = "core"
  }

  dependency "compileClasspath" {
    group   = "ext.lib"
    name    = "x"
    version = "1.0"
  }
}

module "uber" {
  shadow = true

  dependency "shadow" {
    project = "core"
  }
}
`

func TestPlannerEndToEnd(t *testing.T) {
	result := testutil.RunPlannerTest(t, map[string]string{"main.hcl": workspaceHCL}, app.Config{})
	require.NoError(t, result.Err)
	require.NotNil(t, result.Graph)

	taskList := result.Graph.Tasks()
	require.Len(t, taskList, 3)

	server, ok := result.Graph.Lookup("server:docs")
	require.True(t, ok)
	assert.Equal(t, "UTF-8", server.Encoding)
	assert.Equal(t, []string{"-Xdoclint:all,-missing", "-quiet"}, server.Flags)
	assert.Equal(t, []string{"core:docs"}, server.DependsOn)
	assert.Equal(t, []string{"libs/ext.lib/x-1.0.jar"}, server.Classpath, "external compile deps seed the classpath")
	require.Len(t, server.OfflineLinks, 1)
	assert.Equal(t, "https://artifacts.example.org/docs/api/org/acme/core/core/8.1.0", server.OfflineLinks[0].URL)
	assert.Equal(t, "core/build/docs/api", server.OfflineLinks[0].Dir)

	uber, ok := result.Graph.Lookup("uber:docs")
	require.True(t, ok)
	assert.Contains(t, uber.SourceSet, "core/src", "bundled sibling sources appear local")
	assert.Contains(t, uber.SourceSet, "uber/src")
	assert.Empty(t, uber.OfflineLinks)

	assert.Contains(t, result.Output, "task server:docs")
}

func TestProductVersionOverride(t *testing.T) {
	result := testutil.RunPlannerTest(t, map[string]string{"main.hcl": workspaceHCL}, app.Config{
		ProductVersion: "9.0.0-SNAPSHOT",
	})
	require.NoError(t, result.Err)

	assert.Equal(t, "9.0.0-SNAPSHOT", result.App.Model().Workspace.Version)

	server, ok := result.Graph.Lookup("server:docs")
	require.True(t, ok)
	require.Len(t, server.OfflineLinks, 1)
	// The override propagates into module versions and flips the host to snapshots.
	assert.Equal(t, "https://snapshots.example.org/docs/api/org/acme/core/core/9.0.0-SNAPSHOT", server.OfflineLinks[0].URL)
}

func TestStrictLinksOverride(t *testing.T) {
	files := map[string]string{"main.hcl": `
workspace {
  group   = "org.acme"
  version = "1.0"
}

module "server" {
  dependency "compileClasspath" {
    project = "ghost"
  }
}
`}

	t.Run("default warn mode tolerates the dangling reference", func(t *testing.T) {
		result := testutil.RunPlannerTest(t, files, app.Config{})
		require.NoError(t, result.Err)
	})

	t.Run("error mode fails the pass", func(t *testing.T) {
		result := testutil.RunPlannerTest(t, files, app.Config{StrictLinks: "error"})
		require.Error(t, result.Err)
		assert.Contains(t, result.Err.Error(), `"ghost"`)
	})
}

func TestInvalidWorkspaceIsAFatalStartupError(t *testing.T) {
	result := testutil.RunPlannerTest(t, map[string]string{"main.hcl": `
workspace {
  group   = "org.acme"
  version = "1.0"
}

module "dup" {}
module "dup" {}
`}, app.Config{})
	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "invalid workspace")
	assert.Contains(t, result.Err.Error(), `duplicate module "dup"`)
}

func TestFormatsProduceTheSamePlan(t *testing.T) {
	hcl := testutil.RunPlannerTest(t, map[string]string{"ws.hcl": `
workspace {
  group   = "org.acme"
  version = "8.1.0"
}

module "core" {}

module "server" {
  shadow = true

  dependency "compileClasspath" {
    project = "core"
  }

  dependency "shadow" {
    project = "core"
  }
}
`}, app.Config{WorkspacePath: "ws.hcl"})
	require.NoError(t, hcl.Err)

	yaml := testutil.RunPlannerTest(t, map[string]string{"ws.yaml": `
workspace:
  group: org.acme
  version: "8.1.0"

modules:
  - name: core
  - name: server
    shadow: true
    dependencies:
      compileClasspath:
        - project: core
      shadow:
        - project: core
`}, app.Config{WorkspacePath: "ws.yaml"})
	require.NoError(t, yaml.Err)

	assert.Equal(t, hcl.Output, yaml.Output, "the declaration format must not leak into the plan")
}

func TestYAMLWorkspace(t *testing.T) {
	result := testutil.RunPlannerTest(t, map[string]string{"ws.yaml": `
workspace:
  group: org.acme
  version: "8.1.0"

modules:
  - name: core
  - name: server
    dependencies:
      compileClasspath:
        - project: core
`}, app.Config{WorkspacePath: "ws.yaml"})
	require.NoError(t, result.Err)

	server, ok := result.Graph.Lookup("server:docs")
	require.True(t, ok)
	require.Len(t, server.OfflineLinks, 1)
	assert.Equal(t, "https://artifacts.example.org/docs/api/org/acme/core/8.1.0", server.OfflineLinks[0].URL)
}
