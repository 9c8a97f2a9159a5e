package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"

	"github.com/ncshy/cginspect/cgfs"
	"github.com/ncshy/cginspect/footnote"
)

// Lister returns human-readable metadata for raw process or thread id lists.
// The renderer only decides whether to invoke it; everything about names and
// owners lives behind this interface.
type Lister interface {
	Procs(w io.Writer, pids []string)
	Threads(w io.Writer, tids []string)
}

// Renderer produces the report section of one node.
type Renderer struct {
	opts Options
	fn   *footnote.Registry
	ps   Lister
	log  *logger.Logger
}

// NewRenderer creates a renderer. ps may be nil when neither name flag is
// set.
func NewRenderer(opts Options, fn *footnote.Registry, ps Lister) *Renderer {
	return &Renderer{
		opts: opts,
		fn:   fn,
		ps:   ps,
		log:  logger.NewLogger(coloransi.Color(coloransi.ColorLimeGreen, coloransi.Black, "render")),
	}
}

// Render emits the full report block for one node and updates stats. An
// unpopulated node gets a one-line notice and no sections, but still counts
// as visited; its children are walked independently since an unpopulated
// parent may have populated descendants.
func (r *Renderer) Render(w io.Writer, node cgfs.Node, stats *Stats) {
	stats.Visited++
	r.log.Debugln("rendering", node.Path)

	fmt.Fprintf(w, "\n[+] %s\n", node.Path)
	if !node.Populated() {
		fmt.Fprintln(w, "  <unpopulated>")
		stats.Unpopulated++
		return
	}

	r.section(w, node, r.core)
	r.section(w, node, r.cpu)
	r.section(w, node, r.memory)
	r.section(w, node, r.cgStat)
}

// section isolates one extractor. The hierarchy is live: a node can vanish
// between the directory listing and any individual read, and that must not
// take down the remaining sections or nodes.
func (r *Renderer) section(w io.Writer, node cgfs.Node, extract func(io.Writer, cgfs.Node)) {
	defer func() {
		if v := recover(); v != nil {
			r.log.Warn("section failed on", node.Path, ":", v)
		}
	}()
	extract(w, node)
}

// cgStat prints the closing per-node line from cgroup.stat.
func (r *Renderer) cgStat(w io.Writer, node cgfs.Node) {
	st := node.Stat()
	if !st.Present() {
		return
	}
	fmt.Fprintf(w, "  cg stat: %s\n", strings.Join(st.Lines(), ", "))
}

// writeValue prints "label: value" indented, aligning continuation lines of
// multi-line values (the pressure files) under the value column.
func writeValue(w io.Writer, indent, label string, v cgfs.Value) {
	lines := v.Lines()
	if len(lines) == 0 {
		fmt.Fprintf(w, "%s%s:\n", indent, label)
		return
	}
	fmt.Fprintf(w, "%s%s: %s\n", indent, label, lines[0])
	for _, line := range lines[1:] {
		fmt.Fprintf(w, "%s%s  %s\n", indent, strings.Repeat(" ", len(label)), line)
	}
}
