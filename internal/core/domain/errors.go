package domain

import "go.trai.ch/zerr"

var (
	// ErrConfiguration is returned for malformed flags or requests, e.g. a
	// flag left empty after ${SRCDIR} substitution, or cgo files present while
	// cgo is disabled. No process is spawned for these.
	ErrConfiguration = zerr.New("invalid cgo configuration")

	// ErrToolNotFound is returned when a required compiler or archiver binary
	// is absent from the configured search paths.
	ErrToolNotFound = zerr.New("toolchain binary not found")

	// ErrPreprocess is returned when the external cgo tool exits non-zero.
	ErrPreprocess = zerr.New("cgo preprocessing failed")

	// ErrNativeCompile is returned when a single native source file fails to
	// compile. The whole request fails; no partial archive is produced.
	ErrNativeCompile = zerr.New("native compilation failed")

	// ErrGoStubCompile is returned when the cgo-generated Go stubs fail to
	// compile, usually a cgo/compiler version mismatch.
	ErrGoStubCompile = zerr.New("go stub compilation failed")

	// ErrAssembly is returned when the archiver invocation fails.
	ErrAssembly = zerr.New("archive assembly failed")
)
