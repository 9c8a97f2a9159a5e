// Package cgfs reads the cgroup v2 unified hierarchy: interface files,
// per-node attributes, mount discovery, and tree enumeration. All reads are
// best-effort against a live hierarchy; a file or directory vanishing
// between listing and reading is a normal condition, never an error.
package cgfs

import (
	"os"
	"path/filepath"
	"strings"
)

// Interface file names exposed on every cgroup v2 node.
const (
	ControllersFile    = "cgroup.controllers"
	SubtreeControlFile = "cgroup.subtree_control"
	TypeFile           = "cgroup.type"
	FreezeFile         = "cgroup.freeze"
	ProcsFile          = "cgroup.procs"
	ThreadsFile        = "cgroup.threads"
	StatFile           = "cgroup.stat"
	EventsFile         = "cgroup.events"
	PressureFile       = "cgroup.pressure"
)

// Controller-specific interface files read by the report extractors.
const (
	CPUWeightFile     = "cpu.weight"
	CPUWeightNiceFile = "cpu.weight.nice"
	CPUMaxFile        = "cpu.max"
	CPUPressureFile   = "cpu.pressure"

	MemCurrentFile = "memory.current"
	MemMinFile     = "memory.min"
	MemLowFile     = "memory.low"
	MemHighFile    = "memory.high"
)

// Value is the content of one interface file read. Absence (file missing or
// unreadable) is distinct from an empty value: some interface files are
// legitimately empty.
type Value struct {
	s       string
	present bool
}

// Present reports whether the file existed and was readable.
func (v Value) Present() bool { return v.present }

// String returns the file content with the trailing newline stripped, or ""
// when absent.
func (v Value) String() string { return v.s }

// Fields splits the value on whitespace. Absent or empty values yield nil.
func (v Value) Fields() []string {
	if !v.present || v.s == "" {
		return nil
	}
	return strings.Fields(v.s)
}

// Lines splits the value on newlines. Absent or empty values yield nil.
func (v Value) Lines() []string {
	if !v.present || v.s == "" {
		return nil
	}
	return strings.Split(v.s, "\n")
}

// ReadFile reads one interface file under dir. Missing or unreadable files
// come back absent; optional and root-only files disappear routinely on a
// live hierarchy, so there is no error path here at all.
func ReadFile(dir, name string) Value {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return Value{}
	}
	return Value{s: strings.TrimSuffix(string(data), "\n"), present: true}
}

// IsNode reports whether path is a cgroup v2 node, i.e. carries the core
// marker file.
func IsNode(path string) bool {
	_, err := os.Stat(filepath.Join(path, ControllersFile))
	return err == nil
}
