package export

import (
	"bytes"
	"testing"

	"github.com/dlubom/CaveConv/internal/topo"
)

func TestCSVExport(t *testing.T) {
	var buf bytes.Buffer
	if err := (CSV{}).Export(&buf, testDocument(), Options{}); err != nil {
		t.Fatalf("Export: %v", err)
	}

	want := `from,to,distance_m,azimuth_deg,inclination_deg,roll_deg,trip,comment
1.0,1.1,5.000,100.00,10.00,0.00,0,wet passage
1.1,1.0,5.020,280.50,-10.40,0.00,,
1.1,-,0.930,90.00,0.00,0.00,,
1.1,1.2,3.000,200.00,0.00,0.00,,
`
	if got := buf.String(); got != want {
		t.Fatalf("output mismatch:\ngot:\n%q\nwant:\n%q", got, want)
	}
}

func TestCSVExportEmptyDocument(t *testing.T) {
	var buf bytes.Buffer
	if err := (CSV{}).Export(&buf, &topo.Document{}, Options{}); err != nil {
		t.Fatalf("Export: %v", err)
	}
	if got := buf.String(); got != "from,to,distance_m,azimuth_deg,inclination_deg,roll_deg,trip,comment\n" {
		t.Fatalf("output = %q", got)
	}
}
