//go:build linux

package report

import (
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
)

// PSLister shells out to ps(1) for human-readable process and thread
// metadata. The report core never resolves names itself; it hands raw id
// lists to this collaborator.
type PSLister struct {
	path string
	log  *logger.Logger
}

// NewPSLister locates ps in PATH. A missing ps is a startup error when name
// listing was requested; failures of individual invocations later are not.
func NewPSLister() (*PSLister, error) {
	path, err := exec.LookPath("ps")
	if err != nil {
		return nil, fmt.Errorf("ps not found in PATH: %w", err)
	}
	return &PSLister{
		path: path,
		log:  logger.NewLogger(coloransi.Color(coloransi.BrightBlack, coloransi.Black, "ps")),
	}, nil
}

// Procs lists name and owner for the given process ids.
func (l *PSLister) Procs(w io.Writer, pids []string) {
	l.run(w, "-o", "pid,ppid,user,comm", "-p", strings.Join(pids, ","))
}

// Threads lists name and owner for the given thread ids.
func (l *PSLister) Threads(w io.Writer, tids []string) {
	l.run(w, "-T", "-o", "tid,user,comm", "-p", strings.Join(tids, ","))
}

func (l *PSLister) run(w io.Writer, args ...string) {
	out, err := exec.Command(l.path, args...).Output()
	if err != nil {
		// Every listed task may have exited since the id list was read;
		// the rest of the report is unaffected.
		l.log.Warn("ps invocation failed:", err)
		return
	}
	for _, line := range strings.Split(strings.TrimSuffix(string(out), "\n"), "\n") {
		fmt.Fprintf(w, "    %s\n", line)
	}
}
