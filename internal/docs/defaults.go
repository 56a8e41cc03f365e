package docs

import (
	"context"

	"github.com/vk/docgraph/internal/registry"
	"github.com/vk/docgraph/internal/tasks"
)

// DefaultEncoding is the input encoding forced onto every documentation task.
const DefaultEncoding = "UTF-8"

// defaultFlags enable every doclint category except missing-doc warnings,
// and suppress informational generator output. Flags are additive strings,
// so re-applying them is harmless.
var defaultFlags = []string{"-Xdoclint:all,-missing", "-quiet"}

// applyDefaults queues the blanket defaulter against the module's
// documentation task.
func applyDefaults(proj *registry.Project) error {
	return proj.Tasks.Configure(proj.DocTaskName(), func(ctx context.Context, t *tasks.Task) error {
		t.Encoding = DefaultEncoding
		for _, flag := range defaultFlags {
			t.AddFlag(flag)
		}
		return nil
	})
}
