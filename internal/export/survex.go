package export

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/dlubom/CaveConv/internal/topo"
)

// Survex renders a .svx source file: header metadata, fixed points, the
// averaged survey legs as a normal data block, and optionally the splays as
// anonymous-station legs.
type Survex struct{}

func (Survex) Metadata() Metadata {
	return Metadata{
		ID:          "survex",
		Name:        "Survex",
		Description: "Survex .svx source with fixes, averaged legs and optional splays",
	}
}

func (Survex) Export(w io.Writer, doc *topo.Document, opts Options) error {
	if err := survexTmpl.Execute(w, buildSurvexView(doc, opts)); err != nil {
		return fmt.Errorf("export: render survex: %w", err)
	}
	return nil
}

// The date and declination lines come from the first trip; PocketTopo files
// carry one declination per trip but Survex wants a single value per block.
const survexTemplate = `; {{.CaveName}}.svx exported from PocketTopo data
*begin {{.CaveName}}
{{- if .Date}}
*date {{.Date}}
{{- end}}
{{- if .Declination}}
*declination {{.Declination}} degrees
{{- end}}
{{- if .Total}}
; total surveyed length: {{.Total}} m
{{- end}}
{{- if .Splays}}
*alias station - ..
{{- end}}
{{- range .Fixes}}
*fix {{.Station}} {{.East}} {{.North}} {{.Altitude}}{{with .Comment}} ; {{.}}{{end}}
{{- end}}

*data normal from to tape compass clino
{{- range .Legs}}
{{.From}} {{.To}} {{.Tape}} {{.Compass}} {{.Clino}}{{with .Comment}} ; {{.}}{{end}}
{{- end}}
{{- if .Splays}}
*flags splay
{{- range .Splays}}
{{.From}} {{.To}} {{.Tape}} {{.Compass}} {{.Clino}}{{with .Comment}} ; {{.}}{{end}}
{{- end}}
*flags not splay
{{- end}}

*end {{.CaveName}}
`

var survexTmpl = template.Must(template.New("survex").Parse(survexTemplate))

type survexFix struct {
	Station  string
	East     string
	North    string
	Altitude string
	Comment  string
}

type survexRow struct {
	From    string
	To      string
	Tape    string
	Compass string
	Clino   string
	Comment string
}

type survexView struct {
	CaveName    string
	Date        string
	Declination string
	Total       string
	Fixes       []survexFix
	Legs        []survexRow
	Splays      []survexRow
}

func buildSurvexView(doc *topo.Document, opts Options) survexView {
	v := survexView{CaveName: opts.CaveName}
	if v.CaveName == "" {
		v.CaveName = "cave"
	}
	if len(doc.Trips) > 0 {
		first := doc.Trips[0]
		v.Date = first.Time.Format("2006.01.02")
		v.Declination = fmt.Sprintf("%.2f", first.Declination)
	}

	for _, ref := range doc.References {
		v.Fixes = append(v.Fixes, survexFix{
			Station:  ref.Station.String(),
			East:     meters(float64(ref.East) / 1000),
			North:    meters(float64(ref.North) / 1000),
			Altitude: meters(float64(ref.Altitude) / 1000),
			Comment:  inlineComment(ref.Comment),
		})
	}

	legs := doc.Legs()
	var total float64
	for _, leg := range legs {
		total += leg.Distance
		v.Legs = append(v.Legs, survexRow{
			From:    leg.From.String(),
			To:      leg.To.String(),
			Tape:    meters(leg.Distance),
			Compass: degrees(leg.Azimuth),
			Clino:   degrees(leg.Inclination),
			Comment: inlineComment(leg.Comment),
		})
	}
	if len(legs) > 0 {
		v.Total = meters(total)
	}

	if opts.IncludeSplays {
		for _, s := range doc.Splays() {
			v.Splays = append(v.Splays, survexRow{
				From:    s.From.String(),
				To:      s.To.String(),
				Tape:    meters(s.DistanceMeters()),
				Compass: degrees(s.Azimuth),
				Clino:   degrees(s.Inclination),
				Comment: inlineComment(s.Comment),
			})
		}
	}
	return v
}

func meters(v float64) string { return fmt.Sprintf("%.3f", v) }

func degrees(v float64) string { return fmt.Sprintf("%.2f", v) }

// inlineComment flattens a collector comment onto one line; a raw newline
// inside a data line would derail the Survex parser.
func inlineComment(c string) string {
	c = strings.ReplaceAll(c, "\r\n", " ")
	c = strings.ReplaceAll(c, "\n", " ")
	return strings.TrimSpace(c)
}
