//go:build linux

package cgfs

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/containerd/cgroups/v3"
	"golang.org/x/sys/unix"
)

const mountsFile = "/proc/self/mounts"

// Discover locates the mount point of the cgroup v2 unified hierarchy. The
// mount entry is cross-checked against the statfs magic so a stale mounts
// line cannot send the walker into an ordinary directory.
func Discover() (string, error) {
	if mode := cgroups.Mode(); mode == cgroups.Legacy || mode == cgroups.Unavailable {
		return "", errors.New("cgroup v2 unified hierarchy is not available on this system")
	}

	for _, line := range MountLines() {
		fields := strings.Fields(line)
		if len(fields) < 3 || fields[2] != "cgroup2" {
			continue
		}
		mp := fields[1]

		var st unix.Statfs_t
		if err := unix.Statfs(mp, &st); err != nil {
			continue
		}
		if st.Type != unix.CGROUP2_SUPER_MAGIC {
			continue
		}
		return mp, nil
	}

	return "", fmt.Errorf("no cgroup2 filesystem found in %s", mountsFile)
}

// MountLines returns the cgroup-related lines of the mount table, for the
// verbose system summary. Best-effort: an unreadable mount table yields nil.
func MountLines() []string {
	data, err := os.ReadFile(mountsFile)
	if err != nil {
		return nil
	}

	var out []string
	for _, line := range strings.Split(strings.TrimSuffix(string(data), "\n"), "\n") {
		if strings.Contains(line, "cgroup") {
			out = append(out, line)
		}
	}
	return out
}
