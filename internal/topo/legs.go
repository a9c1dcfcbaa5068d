package topo

import "strings"

// Leg is one surveyed connection between two named stations, with repeated
// measurements of the same pair averaged into a single set of values.
type Leg struct {
	From        StationID
	To          StationID
	Distance    float64 // metres
	Azimuth     float64 // degrees
	Inclination float64 // degrees
	Comment     string
}

type stationPair struct {
	from StationID
	to   StationID
}

// Legs groups the document's shots by station pair and averages duplicates.
// A leg measured in both directions contributes its reverse measurements via
// inversion, so back-sights average into the forward frame. Splays are
// excluded. Order follows the first appearance of each pair in the file.
func (d *Document) Legs() []Leg {
	groups := make(map[stationPair][]Shot)
	var order []stationPair
	add := func(p stationPair, s Shot) {
		if _, ok := groups[p]; !ok {
			order = append(order, p)
		}
		groups[p] = append(groups[p], s)
	}

	for _, s := range d.Shots {
		if s.IsSplay() {
			continue
		}
		add(stationPair{s.From, s.To}, s)
		inv := s.Inverted()
		add(stationPair{inv.From, inv.To}, inv)
	}

	seen := make(map[stationPair]struct{}, len(order))
	legs := make([]Leg, 0, len(order)/2+1)
	for _, p := range order {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		seen[stationPair{p.to, p.from}] = struct{}{}

		measurements := groups[p]
		var dist, azimuth, inclination float64
		var comments []string
		for _, m := range measurements {
			dist += m.DistanceMeters()
			azimuth += m.Azimuth
			inclination += m.Inclination
			if m.Comment != "" {
				comments = append(comments, m.Comment)
			}
		}
		n := float64(len(measurements))
		legs = append(legs, Leg{
			From:        p.from,
			To:          p.to,
			Distance:    dist / n,
			Azimuth:     azimuth / n,
			Inclination: inclination / n,
			Comment:     strings.Join(comments, "; "),
		})
	}
	return legs
}

// TotalDistance sums the averaged leg lengths in metres. Splays do not
// count toward surveyed length.
func (d *Document) TotalDistance() float64 {
	var total float64
	for _, leg := range d.Legs() {
		total += leg.Distance
	}
	return total
}

// Splays returns the splay shots in file order.
func (d *Document) Splays() []Shot {
	var splays []Shot
	for _, s := range d.Shots {
		if s.IsSplay() {
			splays = append(splays, s)
		}
	}
	return splays
}
