//go:build linux

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/containerd/cgroups/v3/cgroup2"

	"github.com/ncshy/cginspect/cgfs"
	"github.com/ncshy/cginspect/footnote"
)

// Driver runs one inspection: validate the start node, walk the subtree,
// render each node, then emit the triggered footnotes and a summary.
type Driver struct {
	opts      Options
	mountRoot string
	fn        *footnote.Registry
	renderer  *Renderer
}

// NewDriver wires up a driver for the given options. It fails when name
// listing was requested but ps(1) is nowhere to be found.
func NewDriver(opts Options, mountRoot string) (*Driver, error) {
	var ps Lister
	if opts.ShowProcNames || opts.ShowThreadNames {
		lister, err := NewPSLister()
		if err != nil {
			return nil, err
		}
		ps = lister
	}

	fn := footnote.NewRegistry()
	return &Driver{
		opts:      opts,
		mountRoot: mountRoot,
		fn:        fn,
		renderer:  NewRenderer(opts, fn, ps),
	}, nil
}

// Run produces the report on w. The returned error covers only the fatal
// cases: an invalid start node or an empty discovery; everything below that
// is best-effort against the live hierarchy.
func (d *Driver) Run(w io.Writer) (Stats, error) {
	var stats Stats

	if !cgfs.IsNode(d.opts.StartPath) {
		return stats, fmt.Errorf("%s is not a cgroup v2 node (no %s)", d.opts.StartPath, cgfs.ControllersFile)
	}

	if d.opts.Verbose {
		d.systemSummary(w)
	}

	fmt.Fprintf(w, "=== cgroup v2 snapshot of %s ===\n", d.opts.StartPath)

	nodes, err := cgfs.Walk(d.mountRoot, d.opts.StartPath, d.opts.Depth)
	if err != nil {
		return stats, fmt.Errorf("enumerating nodes under %s: %w", d.opts.StartPath, err)
	}

	for _, path := range nodes {
		if path == d.mountRoot && !d.opts.ExplicitStart {
			// The mount root shows up in every walk that starts at it,
			// but it is only rendered when the user asked for it by name.
			continue
		}
		d.renderer.Render(w, cgfs.Node{Path: path}, &stats)
	}

	if stats.Visited == 0 {
		return stats, fmt.Errorf("no cgroup nodes found under %s", d.opts.StartPath)
	}

	d.footnotes(w)
	fmt.Fprintf(w, "\nvisited %d node(s), %d unpopulated\n", stats.Visited, stats.Unpopulated)

	return stats, nil
}

// systemSummary prints the verbose preamble: cgroup mount lines, the full
// hierarchy listing, and the mount root's controller state.
func (d *Driver) systemSummary(w io.Writer) {
	fmt.Fprintln(w, "=== system summary ===")

	for _, line := range cgfs.MountLines() {
		fmt.Fprintf(w, "  %s\n", line)
	}

	if nodes, err := cgfs.Walk(d.mountRoot, d.mountRoot, 0); err == nil {
		fmt.Fprintf(w, "  hierarchy (%d nodes):\n", len(nodes))
		for _, path := range nodes {
			fmt.Fprintf(w, "    %s\n", path)
		}
	}

	if m, err := cgroup2.Load("/", cgroup2.WithMountpoint(d.mountRoot)); err == nil {
		if ctrls, err := m.Controllers(); err == nil {
			fmt.Fprintf(w, "  enabled controllers: %s\n", strings.Join(ctrls, " "))
		}
	}
	if sc := cgfs.ReadFile(d.mountRoot, cgfs.SubtreeControlFile); sc.Present() {
		fmt.Fprintf(w, "  root %s: %s\n", cgfs.SubtreeControlFile, sc)
	}

	fmt.Fprintln(w)
}

// footnotes prints every annotation whose section rendered at least once.
func (d *Driver) footnotes(w io.Writer) {
	triggered := d.fn.Triggered()
	if len(triggered) == 0 {
		return
	}
	fmt.Fprintln(w, "\nFOOTNOTES")
	for _, e := range triggered {
		fmt.Fprintf(w, "  [%d] %s\n", e.ID, e.Text)
	}
}
