//go:build linux

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/ncshy/cginspect/cgfs"
	"github.com/ncshy/cginspect/report"
)

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cginspect [-v] [-p] [-t] [-d<N>] [-h] [cgroup-path]")
	fmt.Fprintln(w, "  -v      verbose: system summary plus verbatim interface-file dumps")
	fmt.Fprintln(w, "  -p      show process names via ps(1)")
	fmt.Fprintln(w, "  -t      show thread names via ps(1)")
	fmt.Fprintln(w, "  -d<N>   limit the walk to N levels below the hierarchy mount point")
	fmt.Fprintln(w, "  -h      show this help")
	fmt.Fprintln(w, "The optional cgroup-path must be the last argument.")
}

// parseOptions resolves the command line. It returns pflag.ErrHelp when -h
// was given, and a plain error for any usage mistake, including a flag
// placed after the positional cgroup path.
func parseOptions(args []string) (report.Options, error) {
	var opts report.Options

	fs := pflag.NewFlagSet("cginspect", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SetInterspersed(false)
	fs.BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	fs.BoolVarP(&opts.ShowProcNames, "processes", "p", false, "show process names")
	fs.BoolVarP(&opts.ShowThreadNames, "threads", "t", false, "show thread names")
	fs.IntVarP(&opts.Depth, "depth", "d", 0, "depth limit below the mount root")
	help := fs.BoolP("help", "h", false, "show help")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if *help {
		return opts, pflag.ErrHelp
	}
	if opts.Depth < 0 {
		return opts, fmt.Errorf("depth must be non-negative, got %d", opts.Depth)
	}

	// Interspersed parsing is off, so anything after the first positional
	// argument (flags included) lands in Args. More than one entry means
	// the cgroup path was not the last argument.
	rest := fs.Args()
	switch {
	case len(rest) > 1:
		return opts, fmt.Errorf("the cgroup path must be the last argument")
	case len(rest) == 1:
		opts.StartPath = filepath.Clean(rest[0])
		opts.ExplicitStart = true
	}

	return opts, nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "cginspect: %v\n", err)
	os.Exit(1)
}

func main() {
	opts, err := parseOptions(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			usage(os.Stdout)
			return
		}
		fmt.Fprintf(os.Stderr, "cginspect: %v\n", err)
		usage(os.Stderr)
		os.Exit(1)
	}

	mountRoot, err := cgfs.Discover()
	if err != nil {
		fatal(err)
	}
	if opts.StartPath == "" {
		opts.StartPath = mountRoot
	}

	driver, err := report.NewDriver(opts, mountRoot)
	if err != nil {
		fatal(err)
	}
	if _, err := driver.Run(os.Stdout); err != nil {
		fatal(err)
	}
}
