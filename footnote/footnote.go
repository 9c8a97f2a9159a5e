// Package footnote holds the deferred annotations printed at the end of a
// report. Sections mark a footnote when they render; only marked footnotes
// show up in the final output, each at most once per run.
package footnote

// Footnote ids. Small positive integers, referenced inline as "[n]" by the
// section that triggers them.
const (
	NoControllers = 1
	NonDomainType = 2
	Frozen        = 3
	CPUSection    = 4
	MemorySection = 5
)

// Entry is one annotation: fixed text plus a triggered flag that flips true
// the first time the related section renders for any node.
type Entry struct {
	ID        int
	Text      string
	triggered bool
}

// Registry maps footnote ids to entries for one inspection run. Not safe
// for concurrent use; the report driver is strictly sequential.
type Registry struct {
	entries []*Entry
}

// NewRegistry returns a registry populated with the fixed footnote table,
// all entries untriggered.
func NewRegistry() *Registry {
	return &Registry{
		entries: []*Entry{
			{ID: NoControllers, Text: "no sub-controllers are enabled here; controllers are turned on via the parent's cgroup.subtree_control"},
			{ID: NonDomainType, Text: "cgroup.type other than \"domain\" marks a threaded subtree; thread-level resource control applies below this point"},
			{ID: Frozen, Text: "this cgroup is frozen; its processes are stopped until cgroup.freeze is written 0"},
			{ID: CPUSection, Text: "cpu interface files appear only once the cpu controller is enabled for the node; cpu.weight is relative, not a hard limit"},
			{ID: MemorySection, Text: "memory values are in bytes; memory.min is ignored for a cgroup with no threads"},
		},
	}
}

// Mark flips the triggered flag for id. Marking an already-triggered or
// unknown id is a no-op.
func (r *Registry) Mark(id int) {
	for _, e := range r.entries {
		if e.ID == id {
			e.triggered = true
			return
		}
	}
}

// Triggered returns the triggered entries in ascending id order.
func (r *Registry) Triggered() []Entry {
	var out []Entry
	for _, e := range r.entries {
		if e.triggered {
			out = append(out, *e)
		}
	}
	return out
}
