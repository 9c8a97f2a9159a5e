package report

import (
	"fmt"
	"io"

	"github.com/Moonlight-Companies/gologger/coloransi"

	"github.com/ncshy/cginspect/cgfs"
	"github.com/ncshy/cginspect/filedump"
	"github.com/ncshy/cginspect/footnote"
)

// cpuFiles are the cpu controller interface files, in display order.
var cpuFiles = []string{
	cgfs.CPUWeightFile,
	cgfs.CPUWeightNiceFile,
	cgfs.CPUMaxFile,
	cgfs.CPUPressureFile,
}

// cpu extracts the cpu controller section. The section header is emitted
// only when at least one of the four cpu files is present; a node without
// the cpu controller gets no CPU section at all.
func (r *Renderer) cpu(w io.Writer, node cgfs.Node) {
	vals := make([]cgfs.Value, len(cpuFiles))
	any := false
	for i, name := range cpuFiles {
		vals[i] = node.Read(name)
		any = any || vals[i].Present()
	}
	if !any {
		return
	}

	r.fn.Mark(footnote.CPUSection)
	fmt.Fprintln(w, "  CPU [4]")

	if r.opts.Verbose {
		opts := filedump.DefaultOptions("cpu.")
		opts.Indent = "    "
		opts.NameColor = coloransi.Yellow
		filedump.DumpToWriter(w, node.Path, opts)
		return
	}

	for i, name := range cpuFiles {
		if vals[i].Present() {
			writeValue(w, "    ", name, vals[i])
		}
	}
}
