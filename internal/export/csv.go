package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/dlubom/CaveConv/internal/topo"
)

// CSV renders one row per raw shot in file order. Splays are rows like any
// other shot; nothing is grouped or averaged.
type CSV struct{}

func (CSV) Metadata() Metadata {
	return Metadata{
		ID:          "csv",
		Name:        "CSV",
		Description: "one row per raw shot, in file order",
	}
}

func (CSV) Export(w io.Writer, doc *topo.Document, _ Options) error {
	cw := csv.NewWriter(w)
	header := []string{"from", "to", "distance_m", "azimuth_deg", "inclination_deg", "roll_deg", "trip", "comment"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("export: write csv: %w", err)
	}
	for _, s := range doc.Shots {
		trip := ""
		if s.HasTrip() {
			trip = strconv.Itoa(s.TripIndex)
		}
		rec := []string{
			s.From.String(),
			s.To.String(),
			meters(s.DistanceMeters()),
			degrees(s.Azimuth),
			degrees(s.Inclination),
			degrees(s.Roll),
			trip,
			s.Comment,
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("export: write csv: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export: write csv: %w", err)
	}
	return nil
}
