package topo

import (
	"fmt"
	"strconv"
)

// StationKind partitions the raw identifier space into its three
// interpretations.
type StationKind uint8

const (
	StationUndefined StationKind = iota
	StationPlain
	StationComposite
)

// StationID identifies a survey station. Exactly one interpretation applies:
// undefined, a plain non-negative number, or a major.minor composite.
type StationID struct {
	Kind  StationKind
	Value int32 // plain numeric label, StationPlain only
	Major uint16
	Minor uint16
}

// stationUndefinedRaw is the reserved sentinel value on the wire.
const stationUndefinedRaw = 0x80000000

// DecodeStationID interprets a raw 32-bit identifier. Total: every raw value
// maps to exactly one kind.
//
//	0x80000000      undefined
//	sign bit set    plain number stored as value+0x80000001
//	sign bit clear  composite major<<16 | minor
func DecodeStationID(raw uint32) StationID {
	switch {
	case raw == stationUndefinedRaw:
		return StationID{Kind: StationUndefined}
	case raw&0x80000000 != 0:
		return StationID{Kind: StationPlain, Value: int32(raw - 0x80000001)}
	default:
		return StationID{Kind: StationComposite, Major: uint16(raw >> 16), Minor: uint16(raw)}
	}
}

// Defined reports whether the identifier names a station at all.
func (id StationID) Defined() bool { return id.Kind != StationUndefined }

// String derives the human-readable station label: "major.minor" for
// composites, the bare number for plain stations, and "-" for undefined
// (the anonymous-station spelling used by survey notations).
func (id StationID) String() string {
	switch id.Kind {
	case StationPlain:
		return strconv.Itoa(int(id.Value))
	case StationComposite:
		return fmt.Sprintf("%d.%d", id.Major, id.Minor)
	default:
		return "-"
	}
}
