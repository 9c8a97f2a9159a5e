package report

import (
	"fmt"
	"io"

	"github.com/ncshy/cginspect/cgfs"
	"github.com/ncshy/cginspect/footnote"
	"github.com/ncshy/cginspect/units"
)

// memory extracts the memory controller section. Unlike cpu, the MEMORY
// header appears on every rendered node whether or not any memory file is
// present; individual lines are omitted for absent files. memory.min is
// shown only when the node has at least one thread, because a min
// reservation on an empty node is ignored by the kernel.
func (r *Renderer) memory(w io.Writer, node cgfs.Node) {
	r.fn.Mark(footnote.MemorySection)
	fmt.Fprintln(w, "  MEMORY [5]")

	if v := node.Read(cgfs.MemCurrentFile); v.Present() {
		writeBytes(w, cgfs.MemCurrentFile, v)
	}
	if len(node.Threads()) > 0 {
		if v := node.Read(cgfs.MemMinFile); v.Present() {
			writeBytes(w, cgfs.MemMinFile, v)
		}
	}
	if v := node.Read(cgfs.MemLowFile); v.Present() {
		writeBytes(w, cgfs.MemLowFile, v)
	}
	if v := node.Read(cgfs.MemHighFile); v.Present() {
		writeBytes(w, cgfs.MemHighFile, v)
	}
}

// writeBytes prints a byte-valued field as raw value plus a human-readable
// parenthetical. The parenthetical is suppressed when conversion yields
// nothing: a zero value, or non-numeric content like memory.high's "max".
func writeBytes(w io.Writer, name string, v cgfs.Value) {
	if h := units.HumanBytes(v.String()); h != "" {
		fmt.Fprintf(w, "    %s: %s (%s)\n", name, v, h)
		return
	}
	fmt.Fprintf(w, "    %s: %s\n", name, v)
}
