package ports

import (
	"olymstats/domain/table"
)

// TableReader supplies a raw table matching the Olympic schema.
// An unreadable source is a hard failure for the caller, never the core.
type TableReader interface {
	// Read loads the full record set into memory
	Read() (*table.Table, error)

	// Source returns a human-readable description of the origin
	Source() string
}
