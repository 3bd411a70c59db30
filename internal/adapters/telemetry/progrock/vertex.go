package progrock

import (
	"fmt"
	"io"

	"github.com/0xg0nz0/pants/internal/core/domain"
	"github.com/vito/progrock"
)

// Vertex adapts one *progrock.VertexRecorder to the vertex shape the compile
// pipeline records against.
type Vertex struct {
	vertex *progrock.VertexRecorder
}

// Stdout returns a writer capturing the unit's standard output stream.
func (v *Vertex) Stdout() io.Writer {
	return v.vertex.Stdout()
}

// Stderr returns a writer capturing the unit's error output stream.
func (v *Vertex) Stderr() io.Writer {
	return v.vertex.Stderr()
}

// Log writes one leveled line onto the vertex streams. Warnings and errors go
// to the stderr stream so they stay visible in the rendered tape of a compile
// that went on to fail.
func (v *Vertex) Log(level domain.LogLevel, msg string) {
	w := v.vertex.Stdout()
	if level >= domain.LogLevelWarn {
		w = v.vertex.Stderr()
	}
	_, _ = fmt.Fprintf(w, "[%s] %s\n", level.String(), msg)
}

// Complete finishes the vertex. A non-nil error is echoed onto the stderr
// stream first, so the rendered tape shows the cause next to the failed unit
// even when the process produced no diagnostics of its own.
func (v *Vertex) Complete(err error) {
	if err != nil {
		_, _ = fmt.Fprintln(v.vertex.Stderr(), err.Error())
	}
	v.vertex.Done(err)
}
