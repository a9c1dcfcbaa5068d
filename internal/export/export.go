// Package export renders decoded survey documents into cave-surveying text
// formats.
//
// Ownership boundary: exporters consume a fully decoded topo.Document and
// write to an io.Writer. They never touch the filesystem or the wire format;
// choosing destinations is the caller's job.
package export

import (
	"io"

	"github.com/dlubom/CaveConv/internal/topo"
)

// Options carries the caller's rendering choices, shared by all formats.
type Options struct {
	// CaveName labels the output survey. Empty falls back to "cave".
	CaveName string
	// IncludeSplays renders splay shots where the format can express them.
	IncludeSplays bool
}

// Metadata describes an exporter to format listings and the CLI.
type Metadata struct {
	ID          string
	Name        string
	Description string
}

// Exporter renders one output format.
type Exporter interface {
	Metadata() Metadata
	Export(w io.Writer, doc *topo.Document, opts Options) error
}

// BuiltinRegistry returns a registry holding every built-in exporter.
func BuiltinRegistry() *Registry {
	r := NewRegistry()
	for _, e := range []Exporter{Survex{}, CSV{}} {
		if err := r.Register(e); err != nil {
			panic(err)
		}
	}
	return r
}
