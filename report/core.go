package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/ncshy/cginspect/cgfs"
	"github.com/ncshy/cginspect/filedump"
	"github.com/ncshy/cginspect/footnote"
)

// core extracts the cgroup.* interface of one node: controllers, type,
// freeze state, member pids/tids, and the optional pressure file. Footnote
// conditions are evaluated regardless of verbose mode; verbose mode swaps
// the structured summary for a verbatim dump of all cgroup.-prefixed files.
func (r *Renderer) core(w io.Writer, node cgfs.Node) {
	ctrls := node.Controllers()
	typ := node.Type()
	frozen := node.Frozen()
	procs := node.Procs()
	threads := node.Threads()

	if len(ctrls) == 0 {
		r.fn.Mark(footnote.NoControllers)
	}
	if typ.Present() && typ.String() != "domain" {
		r.fn.Mark(footnote.NonDomainType)
	}
	if frozen {
		r.fn.Mark(footnote.Frozen)
	}

	if r.opts.Verbose {
		filedump.DumpToWriter(w, node.Path, filedump.DefaultOptions("cgroup."))
	} else {
		if len(ctrls) == 0 {
			fmt.Fprintln(w, "  controllers: <none> [1]")
		} else {
			fmt.Fprintf(w, "  controllers: %s\n", strings.Join(ctrls, " "))
		}
		if typ.Present() {
			if typ.String() != "domain" {
				fmt.Fprintf(w, "  type: %s [2]\n", typ)
			} else {
				fmt.Fprintf(w, "  type: %s\n", typ)
			}
		}
		if fr := node.Read(cgfs.FreezeFile); fr.Present() {
			if frozen {
				fmt.Fprintf(w, "  freeze: %s (frozen) [3]\n", fr)
			} else {
				fmt.Fprintf(w, "  freeze: %s\n", fr)
			}
		}
		fmt.Fprintf(w, "  procs (%d): %s\n", len(procs), strings.Join(procs, " "))
		fmt.Fprintf(w, "  threads (%d): %s\n", len(threads), strings.Join(threads, " "))
		if pr := node.Read(cgfs.PressureFile); pr.Present() {
			writeValue(w, "  ", cgfs.PressureFile, pr)
		}
	}

	// Name resolution stays delegated to the lister in both display modes;
	// the verbose dump only replaces the raw-file summary.
	if r.opts.ShowProcNames && r.ps != nil && len(procs) > 0 {
		r.ps.Procs(w, procs)
	}
	if r.opts.ShowThreadNames && r.ps != nil && len(threads) > 0 {
		r.ps.Threads(w, threads)
	}
}
