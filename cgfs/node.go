package cgfs

import "strings"

// Node is one directory in the hierarchy, identified by its path. Attributes
// are read on demand and never cached: the hierarchy is live and a stale
// answer is worse than a second read.
type Node struct {
	Path string
}

// Read reads one named interface file on this node.
func (n Node) Read(name string) Value {
	return ReadFile(n.Path, name)
}

// Controllers returns the enabled sub-controller list. Empty on a node with
// no controllers enabled, nil if the marker file itself is gone.
func (n Node) Controllers() []string {
	return n.Read(ControllersFile).Fields()
}

// Type returns the cgroup.type value ("domain", "threaded", ...).
func (n Node) Type() Value {
	return n.Read(TypeFile)
}

// Frozen reports whether cgroup.freeze reads 1. The file is absent on the
// mount root, which is never frozen.
func (n Node) Frozen() bool {
	return n.Read(FreezeFile).String() == "1"
}

// Procs returns the member process ids, one per line in cgroup.procs.
func (n Node) Procs() []string {
	return n.Read(ProcsFile).Lines()
}

// Threads returns the member thread ids from cgroup.threads.
func (n Node) Threads() []string {
	return n.Read(ThreadsFile).Lines()
}

// Stat returns the raw cgroup.stat content (nr_descendants and friends).
func (n Node) Stat() Value {
	return n.Read(StatFile)
}

// Populated reports whether the node or any descendant has a live process,
// per the "populated" field of cgroup.events. A node whose events file has
// vanished counts as unpopulated.
func (n Node) Populated() bool {
	for _, line := range n.Read(EventsFile).Lines() {
		if strings.HasPrefix(line, "populated ") {
			return strings.TrimPrefix(line, "populated ") == "1"
		}
	}
	return false
}
