// Package filedump renders a verbatim, highlighted dump of a node's
// interface files for verbose mode: every readable file whose name matches a
// prefix, printed as name/content pairs with ANSI colors.
package filedump

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Moonlight-Companies/gologger/coloransi"
)

// Options defines options for customizing the dump output
type Options struct {
	// Prefix selects the interface files to dump ("cgroup.", "cpu.", ...)
	Prefix string

	// Indent is prepended to every emitted line
	Indent string

	// NameColor is the color for the interface file name
	NameColor coloransi.ColorCode

	// ValueColor is the color for the file content
	ValueColor coloransi.ColorCode

	// AbsentColor is the color for files that vanished between listing
	// and reading
	AbsentColor coloransi.ColorCode
}

// DefaultOptions returns the default dump options for the given prefix.
func DefaultOptions(prefix string) Options {
	return Options{
		Prefix:      prefix,
		Indent:      "  ",
		NameColor:   coloransi.Cyan,
		ValueColor:  coloransi.Green,
		AbsentColor: coloransi.BrightBlack,
	}
}

// Dump returns the dump of the matching files under dir as a string.
func Dump(dir string, options Options) string {
	var buffer bytes.Buffer
	DumpToWriter(&buffer, dir, options)
	return buffer.String()
}

// DumpToWriter writes a dump of the matching interface files under dir to
// the writer and reports how many files it emitted. Unreadable files are
// shown as such rather than skipped: the point of the verbose dump is to
// show exactly what the node exposes.
func DumpToWriter(writer io.Writer, dir string, options Options) int {
	if options.Indent == "" {
		options.Indent = "  "
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}

	count := 0
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, options.Prefix) {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(writer, "%s%s: %s\n",
				options.Indent,
				coloransi.Foreground(options.NameColor, name),
				coloransi.Foreground(options.AbsentColor, "<unreadable>"))
			count++
			continue
		}

		value := strings.TrimSuffix(string(data), "\n")
		lines := strings.Split(value, "\n")

		fmt.Fprintf(writer, "%s%s: %s\n",
			options.Indent,
			coloransi.Foreground(options.NameColor, name),
			coloransi.Foreground(options.ValueColor, lines[0]))
		for _, line := range lines[1:] {
			fmt.Fprintf(writer, "%s%s  %s\n",
				options.Indent,
				strings.Repeat(" ", len(name)),
				coloransi.Foreground(options.ValueColor, line))
		}
		count++
	}

	return count
}
