package ports

import (
	"context"
	"io"

	"github.com/0xg0nz0/pants/internal/core/domain"
)

// Telemetry records units of work in the compile pipeline. One vertex covers
// one phase (preprocess, assemble) or one native file compile.
type Telemetry interface {
	// Record starts recording a new vertex and returns a context carrying it.
	Record(ctx context.Context, name string) (context.Context, Vertex)

	// Close flushes and closes the recording session.
	Close() error
}

// Vertex represents one recorded unit of work.
type Vertex interface {
	// Stdout returns a writer capturing the unit's standard output stream.
	Stdout() io.Writer

	// Stderr returns a writer capturing the unit's error output stream.
	Stderr() io.Writer

	// Log records a structured log message associated with this vertex.
	Log(level domain.LogLevel, msg string)

	// Complete marks the vertex as finished, with err nil on success.
	Complete(err error)
}

type vertexCtxKey struct{}

// ContextWithVertex returns a context carrying the vertex.
func ContextWithVertex(ctx context.Context, v Vertex) context.Context {
	return context.WithValue(ctx, vertexCtxKey{}, v)
}

// VertexFromContext extracts the vertex from ctx, nil when absent.
func VertexFromContext(ctx context.Context) Vertex {
	v, _ := ctx.Value(vertexCtxKey{}).(Vertex)
	return v
}
