package topo

import (
	"math"
	"time"
)

// Point is a position in millimetres relative to the coordinate origin, which
// is the first Reference of the document.
type Point struct {
	X int32
	Y int32
}

// Mapping is the collector's last scroll position and zoom for one view.
type Mapping struct {
	Origin Point
	Scale  int32 // 10..50000 by convention, not enforced at decode time
}

// Trip is one field session grouping shots under a shared timestamp,
// declination and comment.
type Trip struct {
	Time        time.Time
	Comment     string
	Declination float64 // degrees
}

// ShotFlags is the raw flag byte of a shot record.
type ShotFlags byte

const (
	FlagFlipped ShotFlags = 1 << 0
	FlagComment ShotFlags = 1 << 1
)

// Flipped reports whether the shot was taken with the instrument flipped.
func (f ShotFlags) Flipped() bool { return f&FlagFlipped != 0 }

// HasComment reports whether the shot record carried an inline comment.
func (f ShotFlags) HasComment() bool { return f&FlagComment != 0 }

// Shot is one measured leg between two stations.
type Shot struct {
	From        StationID
	To          StationID
	Distance    int32   // mm
	Azimuth     float64 // degrees, wrapped to [0,360)
	Inclination float64 // degrees
	Flags       ShotFlags
	Roll        float64 // degrees, 0 = display up
	TripIndex   int     // index into Document.Trips, -1 when unassigned
	Comment     string
}

// HasTrip reports whether the shot is assigned to a trip.
func (s Shot) HasTrip() bool { return s.TripIndex >= 0 }

// IsSplay reports whether the shot is a splay leg, a measurement to an
// unnamed wall or detail point.
func (s Shot) IsSplay() bool { return !s.To.Defined() }

// DistanceMeters returns the leg length in metres.
func (s Shot) DistanceMeters() float64 { return float64(s.Distance) / 1000 }

// Inverted returns the same leg measured from the opposite station: stations
// swapped, azimuth turned half a circle, inclination negated.
func (s Shot) Inverted() Shot {
	inv := s
	inv.From, inv.To = s.To, s.From
	inv.Azimuth = math.Mod(s.Azimuth+180, 360)
	inv.Inclination = -s.Inclination
	return inv
}

// Reference is a fixed point: a station with known real-world coordinates.
type Reference struct {
	Station  StationID
	East     int64 // mm
	North    int64 // mm
	Altitude int32 // mm above sea level
	Comment  string
}

// Drawing is a sketch: a view state plus vector elements in render order.
type Drawing struct {
	Mapping  Mapping
	Elements []Element
}

// Element is one vector primitive of a Drawing. The variant set is closed;
// decode rejects any tag that is not one of the known kinds.
type Element interface {
	element()
}

// Color identifies a polygon stroke color.
type Color byte

const (
	ColorBlack Color = iota + 1
	ColorGray
	ColorBrown
	ColorBlue
	ColorRed
	ColorGreen
	ColorOrange
)

func (c Color) String() string {
	switch c {
	case ColorBlack:
		return "black"
	case ColorGray:
		return "gray"
	case ColorBrown:
		return "brown"
	case ColorBlue:
		return "blue"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorOrange:
		return "orange"
	default:
		return "unknown"
	}
}

// Polygon is an open polyline drawn in a single color.
type Polygon struct {
	Points []Point
	Color  Color
}

func (Polygon) element() {}

// XSection marks a cross-section at a station, projected either horizontally
// or along a fixed azimuth.
type XSection struct {
	Position  Point
	Station   StationID
	Direction int32 // -1 = horizontal, otherwise azimuth in fine angle units
}

func (XSection) element() {}

// Horizontal reports whether the section is projected horizontally.
func (x XSection) Horizontal() bool { return x.Direction == -1 }

// Azimuth returns the projection azimuth in degrees, wrapped to [0,360).
// Meaningless when Horizontal.
func (x XSection) Azimuth() float64 {
	return compass(Degrees(int16(x.Direction), FullCircle))
}

// Document is one fully decoded survey file. It owns all child entities and
// is immutable once returned.
type Document struct {
	Version    byte
	Trips      []Trip
	Shots      []Shot
	References []Reference
	Overview   Mapping
	Outline    Drawing
	Sideview   Drawing
}

// TripFor resolves the trip a shot belongs to.
func (d *Document) TripFor(s Shot) (Trip, bool) {
	if s.TripIndex < 0 || s.TripIndex >= len(d.Trips) {
		return Trip{}, false
	}
	return d.Trips[s.TripIndex], true
}

// Origin returns the first reference, the point all drawing coordinates are
// relative to. False when the document has no references.
func (d *Document) Origin() (Reference, bool) {
	if len(d.References) == 0 {
		return Reference{}, false
	}
	return d.References[0], true
}

// Group tags a calibration entry with the measurement group it belongs to.
type Group byte

const (
	GroupNone Group = 0
	GroupA    Group = 1
	GroupB    Group = 2
)

func (g Group) String() string {
	switch g {
	case GroupNone:
		return "none"
	case GroupA:
		return "A"
	case GroupB:
		return "B"
	default:
		return "unknown"
	}
}

// CalibrationEntry is one raw sensor sample: an accelerometer triple and a
// magnetometer triple.
type CalibrationEntry struct {
	GX, GY, GZ int16
	MX, MY, MZ int16
	Group      Group
	Valid      bool
}

// CalibrationDocument is one fully decoded calibration file.
type CalibrationDocument struct {
	Version byte
	Entries []CalibrationEntry
}
