package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/docgraph/internal/tasks"
)

func TestPlan(t *testing.T) {
	g := tasks.NewGraph()

	core, err := g.Declare("core", "core:docs")
	require.NoError(t, err)
	core.Encoding = "UTF-8"
	core.AddFlag("-quiet")
	core.UnionSource([]string{"core/src"})

	server, err := g.Declare("server", "server:docs")
	require.NoError(t, err)
	server.Encoding = "UTF-8"
	server.AddFlag("-Xdoclint:all,-missing")
	server.AddFlag("-quiet")
	server.UnionSource([]string{"server/src"})
	server.SetClasspath([]string{"libs/ext.lib/x-1.0.jar"})
	require.NoError(t, g.AddTaskDependency("server:docs", "core:docs"))
	server.AddOfflineLink("https://artifacts.example.org/docs/api/org/acme/core/8.1.0", "core/build/docs/api")

	out := &bytes.Buffer{}
	require.NoError(t, Plan(out, g))
	plan := out.String()

	assert.Contains(t, plan, "task core:docs")
	assert.Contains(t, plan, "task server:docs")
	assert.Contains(t, plan, "-Xdoclint:all,-missing -quiet")
	assert.Contains(t, plan, "core/src")
	assert.Contains(t, plan, "libs/ext.lib/x-1.0.jar")
	assert.Contains(t, plan, "core:docs")
	assert.Contains(t, plan, "https://artifacts.example.org/docs/api/org/acme/core/8.1.0 -> core/build/docs/api")

	// Declaration order is preserved in the rendered plan.
	assert.Less(t, bytes.Index(out.Bytes(), []byte("task core:docs")), bytes.Index(out.Bytes(), []byte("task server:docs")))
}

func TestPlanEmptyGraph(t *testing.T) {
	out := &bytes.Buffer{}
	require.NoError(t, Plan(out, tasks.NewGraph()))
	assert.Empty(t, out.String())
}
