package ports

// Emitter defines the interface for writing rendered documents to their
// destination.
//
//go:generate mockgen -source=emitter.go -destination=mocks/mock_emitter.go -package=mocks
type Emitter interface {
	// Emit writes data to path, creating parent directories as needed, and
	// reports whether the destination content actually changed. An unchanged
	// destination is left untouched so downstream tooling sees no new mtime.
	Emit(path string, data []byte) (bool, error)
}
