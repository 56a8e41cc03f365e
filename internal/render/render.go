// Package render prints the materialized documentation task plan in a
// human-readable form.
package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/vk/docgraph/internal/tasks"
)

// Plan writes one section per task, in declaration order. List-valued
// fields keep their configured order, since ordering is part of the plan's
// meaning (offline links resolve first-registered-wins).
func Plan(w io.Writer, g *tasks.Graph) error {
	for i, t := range g.Tasks() {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := task(w, t); err != nil {
			return err
		}
	}
	return nil
}

func task(w io.Writer, t *tasks.Task) error {
	if _, err := fmt.Fprintf(w, "task %s\n", t.Name); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)
	fmt.Fprintf(tw, "  module:\t%s\n", t.Module)
	fmt.Fprintf(tw, "  encoding:\t%s\n", t.Encoding)
	fmt.Fprintf(tw, "  flags:\t%s\n", strings.Join(t.Flags, " "))
	if len(t.DependsOn) > 0 {
		fmt.Fprintf(tw, "  dependsOn:\t%s\n", strings.Join(t.DependsOn, ", "))
	}
	list(tw, "source", t.SourceSet)
	list(tw, "classpath", t.Classpath)
	for i, link := range t.OfflineLinks {
		if i == 0 {
			fmt.Fprintf(tw, "  links:\t%s -> %s\n", link.URL, link.Dir)
			continue
		}
		fmt.Fprintf(tw, "  \t%s -> %s\n", link.URL, link.Dir)
	}
	return tw.Flush()
}

func list(tw *tabwriter.Writer, label string, values []string) {
	for i, v := range values {
		if i == 0 {
			fmt.Fprintf(tw, "  %s:\t%s\n", label, v)
			continue
		}
		fmt.Fprintf(tw, "  \t%s\n", v)
	}
}
