package strengthen

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/pprof"
)

// Measurer records a CPU profile for the lifetime of a command in debug mode.
type Measurer struct {
	Path    string
	closeFn func(w io.Writer)
}

func NewMeasurer(name string, debugMode bool) *Measurer {
	m := &Measurer{}
	if !debugMode {
		return m
	}
	m.Path = filepath.Join(os.TempDir(), fmt.Sprintf("%s-%d.pprof", name, os.Getpid()))
	fd, err := os.Create(m.Path)
	if err != nil {
		m.Path = ""
		return m
	}
	if err = pprof.StartCPUProfile(fd); err != nil {
		_ = fd.Close()
		_ = os.Remove(m.Path)
		m.Path = ""
		return m
	}
	m.closeFn = func(w io.Writer) {
		pprof.StopCPUProfile()
		_ = fd.Close()
		fmt.Fprintf(w, "cpu profile written\ngo tool pprof -http=\":8080\" %s\n", m.Path)
	}
	return m
}

// Close stops profiling and reports the profile location on stderr.
func (m *Measurer) Close() {
	if m.closeFn != nil {
		m.closeFn(os.Stderr)
		m.closeFn = nil
	}
}
