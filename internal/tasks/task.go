package tasks

// OfflineLink is a documentation-generator directive pairing a remote
// documentation index URL with the local directory holding the same index.
// The generator resolves references first-registered-wins, so registration
// order is part of the task's contract.
type OfflineLink struct {
	URL string
	Dir string
}

// Task is one module's documentation task: its option flags, input sources,
// classpath, ordering edges, and offline links. Tasks are declared empty and
// mutated by deferred configurers during materialization.
type Task struct {
	// Name uniquely identifies the task, e.g. "server:docs".
	Name string
	// Module is the owning module's name.
	Module string

	Encoding     string
	Flags        []string
	SourceSet    []string
	Classpath    []string
	DependsOn    []string
	OfflineLinks []OfflineLink

	materialized bool
}

// AddFlag appends a doclet flag. Flags are additive strings; appending the
// same flag twice is harmless.
func (t *Task) AddFlag(flag string) {
	t.Flags = append(t.Flags, flag)
}

// UnionSource unions the given source roots into the task's source set,
// preserving existing order and skipping roots already present.
func (t *Task) UnionSource(roots []string) {
	present := make(map[string]bool, len(t.SourceSet))
	for _, r := range t.SourceSet {
		present[r] = true
	}
	for _, r := range roots {
		if !present[r] {
			t.SourceSet = append(t.SourceSet, r)
			present[r] = true
		}
	}
}

// SetClasspath replaces the task's classpath wholesale. Bundled modules must
// be cross-referenced against their own dependencies, so replacement rather
// than union is the required semantic.
func (t *Task) SetClasspath(classpath []string) {
	t.Classpath = append([]string(nil), classpath...)
}

// AddOfflineLink registers an offline link at the end of the current list.
func (t *Task) AddOfflineLink(url, dir string) {
	t.OfflineLinks = append(t.OfflineLinks, OfflineLink{URL: url, Dir: dir})
}

// addDependsOn records an execution-ordering edge by task name, once.
func (t *Task) addDependsOn(name string) {
	for _, d := range t.DependsOn {
		if d == name {
			return
		}
	}
	t.DependsOn = append(t.DependsOn, name)
}

// Materialized reports whether the task's deferred configurers have run.
func (t *Task) Materialized() bool {
	return t.materialized
}
