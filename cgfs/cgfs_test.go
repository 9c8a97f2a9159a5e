package cgfs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "cgroup.type", "domain\n")

	v := ReadFile(dir, "cgroup.type")
	assert.True(t, v.Present())
	assert.Equal(t, "domain", v.String())
}

func TestReadFileAbsent(t *testing.T) {
	v := ReadFile(t.TempDir(), "cgroup.type")
	assert.False(t, v.Present())
	assert.Empty(t, v.String())
	assert.Nil(t, v.Fields())
	assert.Nil(t, v.Lines())
}

func TestReadFileEmptyIsPresent(t *testing.T) {
	// An empty interface file is a valid value, distinct from absence.
	dir := t.TempDir()
	writeFile(t, dir, "cgroup.procs", "")

	v := ReadFile(dir, "cgroup.procs")
	assert.True(t, v.Present())
	assert.Empty(t, v.String())
	assert.Nil(t, v.Lines())
}

func TestReadFileStripsOnlyTrailingNewline(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "cgroup.stat", "nr_descendants 2\nnr_dying_descendants 0\n")

	v := ReadFile(dir, "cgroup.stat")
	assert.Equal(t, []string{"nr_descendants 2", "nr_dying_descendants 0"}, v.Lines())
}

func TestIsNode(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, IsNode(dir))

	writeFile(t, dir, ControllersFile, "cpu memory\n")
	assert.True(t, IsNode(dir))
}

func TestNodeAttributes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ControllersFile, "cpuset cpu memory pids\n")
	writeFile(t, dir, TypeFile, "domain\n")
	writeFile(t, dir, FreezeFile, "0\n")
	writeFile(t, dir, ProcsFile, "12\n345\n")
	writeFile(t, dir, ThreadsFile, "12\n345\n678\n")
	writeFile(t, dir, EventsFile, "populated 1\nfrozen 0\n")
	writeFile(t, dir, StatFile, "nr_descendants 4\nnr_dying_descendants 1\n")

	n := Node{Path: dir}
	assert.Equal(t, []string{"cpuset", "cpu", "memory", "pids"}, n.Controllers())
	assert.Equal(t, "domain", n.Type().String())
	assert.False(t, n.Frozen())
	assert.Equal(t, []string{"12", "345"}, n.Procs())
	assert.Len(t, n.Threads(), 3)
	assert.True(t, n.Populated())
	assert.True(t, n.Stat().Present())
}

func TestNodeFrozen(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FreezeFile, "1\n")
	assert.True(t, Node{Path: dir}.Frozen())
}

func TestNodeUnpopulated(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, EventsFile, "populated 0\nfrozen 0\n")
	assert.False(t, Node{Path: dir}.Populated())
}

func TestNodeMissingEventsCountsUnpopulated(t *testing.T) {
	assert.False(t, Node{Path: t.TempDir()}.Populated())
}

func TestNodeEmptyControllers(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ControllersFile, "\n")
	assert.Empty(t, Node{Path: dir}.Controllers())
}
