// Package report turns a cgroup v2 subtree into a human-readable snapshot:
// per-node sections for the core, cpu, and memory interfaces, deferred
// footnotes, and a run summary.
package report

// Options are the resolved command-line options for one run. Immutable once
// parsed.
type Options struct {
	// Verbose replaces the structured core and cpu summaries with verbatim
	// interface-file dumps and prepends a system-wide summary.
	Verbose bool

	// ShowProcNames passes each node's pid list to ps(1).
	ShowProcNames bool

	// ShowThreadNames passes each node's tid list to ps(1).
	ShowThreadNames bool

	// Depth bounds the walk to this many levels below the hierarchy mount
	// point (not below the start path). 0 means unbounded.
	Depth int

	// StartPath is the node the walk begins at.
	StartPath string

	// ExplicitStart records that StartPath came from the command line
	// rather than defaulting to the mount root. The mount root is rendered
	// only when explicitly requested.
	ExplicitStart bool
}

// Stats counts what one run saw. Mutated monotonically during traversal and
// read once at the end.
type Stats struct {
	Visited     int
	Unpopulated int
}
