package yaml_adapter_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/docgraph/internal/config"
	"github.com/vk/docgraph/internal/testutil"
	"github.com/vk/docgraph/internal/yaml_adapter"
)

const workspaceYAML = `
workspace:
  group: org.acme
  version: 8.1.0-SNAPSHOT
  strict_links: skip

modules:
  - name: core
    group: org.acme.core

  - name: server
    shadow: true
    archives_base_name: acme.server
    source_roots: [server/src/main]
    dependencies:
      compileClasspath:
        - project: core
        - group: ext.lib
          name: x
          version: "1.0"
      shadow:
        - project: core
`

func TestLoad(t *testing.T) {
	root := testutil.WriteFiles(t, map[string]string{
		"workspace.yaml": workspaceYAML,
	})

	model, err := yaml_adapter.NewLoader().Load(context.Background(), root)
	require.NoError(t, err)

	require.NotNil(t, model.Workspace)
	assert.Equal(t, "org.acme", model.Workspace.Group)
	assert.Equal(t, "8.1.0-SNAPSHOT", model.Workspace.Version)
	assert.Equal(t, config.StrictSkip, model.Workspace.StrictLinks)

	require.Len(t, model.Modules, 2)

	server := model.ModuleByName("server")
	require.NotNil(t, server)
	assert.True(t, server.Shadow)
	assert.Equal(t, "acme.server", server.ArchivesBaseName)
	assert.Equal(t, []string{"server/src/main"}, server.SourceRoots)
	require.Len(t, server.Configurations["compileClasspath"], 2)
	assert.Equal(t, "core", server.Configurations["compileClasspath"][0].Project)
	assert.Equal(t, "ext.lib", server.Configurations["compileClasspath"][1].Group)
}

func TestLoadModulesAcrossFiles(t *testing.T) {
	root := testutil.WriteFiles(t, map[string]string{
		"workspace.yml": `
workspace:
  group: org.acme
  version: "1.0"
`,
		"modules.yml": `
modules:
  - name: core
`,
	})

	model, err := yaml_adapter.NewLoader().Load(context.Background(), root)
	require.NoError(t, err)
	assert.Len(t, model.Modules, 1)
}

func TestLoadErrors(t *testing.T) {
	t.Run("no workspace section", func(t *testing.T) {
		root := testutil.WriteFiles(t, map[string]string{
			"m.yaml": "modules:\n  - name: core\n",
		})
		_, err := yaml_adapter.NewLoader().Load(context.Background(), root)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no workspace section")
	})

	t.Run("duplicate workspace section", func(t *testing.T) {
		ws := "workspace:\n  group: g\n  version: \"1\"\n"
		root := testutil.WriteFiles(t, map[string]string{
			"a.yaml": ws,
			"b.yaml": ws,
		})
		_, err := yaml_adapter.NewLoader().Load(context.Background(), root)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate workspace section")
	})

	t.Run("unknown keys are rejected", func(t *testing.T) {
		root := testutil.WriteFiles(t, map[string]string{
			"bad.yaml": "workspace:\n  group: g\n  version: \"1\"\n  colour: red\n",
		})
		_, err := yaml_adapter.NewLoader().Load(context.Background(), root)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode")
	})

	t.Run("module without a name", func(t *testing.T) {
		root := testutil.WriteFiles(t, map[string]string{
			"m.yaml": "workspace:\n  group: g\n  version: \"1\"\nmodules:\n  - group: g\n",
		})
		_, err := yaml_adapter.NewLoader().Load(context.Background(), root)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "needs a name")
	})

	t.Run("empty file is tolerated but yields no workspace", func(t *testing.T) {
		root := testutil.WriteFiles(t, map[string]string{"empty.yaml": ""})
		_, err := yaml_adapter.NewLoader().Load(context.Background(), root)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no workspace section")
	})
}
