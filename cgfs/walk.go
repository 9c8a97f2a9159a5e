package cgfs

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Walk enumerates node directories under start in lexicographic path order.
//
// A nonzero depth bounds the enumeration relative to the MOUNT ROOT, not the
// start path: a descendant is listed only while its level below mountRoot is
// strictly less than depth. The start path itself is always listed, so a
// start nested deeper than the bound yields exactly one node. Depth 1 from
// the mount root therefore yields the mount root alone. This mirrors a
// maxdepth bound anchored at the mount point and is intentional.
//
// Directories that vanish mid-walk are skipped.
func Walk(mountRoot, start string, depth int) ([]string, error) {
	var nodes []string

	err := filepath.WalkDir(start, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Listed a moment ago, gone now. Normal on a live hierarchy.
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != start && depth > 0 && levelBelow(mountRoot, path) >= depth {
			return fs.SkipDir
		}
		nodes = append(nodes, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	// WalkDir is depth-first; the report wants plain lexicographic order,
	// which differs once node names contain characters sorting before '/'.
	sort.Strings(nodes)

	return nodes, nil
}

// levelBelow returns how many directory levels path sits below root, 0 for
// root itself.
func levelBelow(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}
