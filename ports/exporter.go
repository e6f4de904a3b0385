package ports

import (
	"olymstats/domain/views"
)

// ViewExporter serializes aggregate views. The core never formats or writes
// files itself.
type ViewExporter interface {
	// Export writes the given views to the exporter's destination
	Export(vs []views.View) error
}
