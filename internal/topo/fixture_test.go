package topo

import "encoding/binary"

// Hand-assembled wire fixtures for the decode tests. All multi-byte fields
// are little-endian, matching the collector format.

func appendU16(b []byte, v uint16) []byte { return binary.LittleEndian.AppendUint16(b, v) }
func appendI16(b []byte, v int16) []byte  { return appendU16(b, uint16(v)) }
func appendU32(b []byte, v uint32) []byte { return binary.LittleEndian.AppendUint32(b, v) }
func appendI32(b []byte, v int32) []byte  { return appendU32(b, uint32(v)) }
func appendU64(b []byte, v uint64) []byte { return binary.LittleEndian.AppendUint64(b, v) }
func appendI64(b []byte, v int64) []byte  { return appendU64(b, uint64(v)) }

// appendString writes the 7-bit chunked length prefix followed by the raw
// UTF-8 payload.
func appendString(b []byte, s string) []byte {
	n := uint32(len(s))
	for {
		group := byte(n & 0x7F)
		n >>= 7
		if n != 0 {
			b = append(b, group|0x80)
			continue
		}
		b = append(b, group)
		break
	}
	return append(b, s...)
}

func surveyHeader() []byte { return []byte{'T', 'o', 'p', SurveyVersion} }

type tripFixture struct {
	ticks       int64
	comment     string
	declination int16
}

func appendTripRecord(b []byte, t tripFixture) []byte {
	b = appendI64(b, t.ticks)
	b = appendString(b, t.comment)
	return appendI16(b, t.declination)
}

type shotFixture struct {
	from, to    uint32
	distance    int32
	azimuth     int16
	inclination int16
	flags       byte
	roll        byte
	trip        int16
	comment     string
}

func appendShotRecord(b []byte, s shotFixture) []byte {
	b = appendU32(b, s.from)
	b = appendU32(b, s.to)
	b = appendI32(b, s.distance)
	b = appendI16(b, s.azimuth)
	b = appendI16(b, s.inclination)
	b = append(b, s.flags, s.roll)
	b = appendI16(b, s.trip)
	if s.flags&byte(FlagComment) != 0 {
		b = appendString(b, s.comment)
	}
	return b
}

type referenceFixture struct {
	station     uint32
	east, north int64
	altitude    int32
	comment     string
}

func appendReferenceRecord(b []byte, r referenceFixture) []byte {
	b = appendU32(b, r.station)
	b = appendI64(b, r.east)
	b = appendI64(b, r.north)
	b = appendI32(b, r.altitude)
	return appendString(b, r.comment)
}

func appendMappingRecord(b []byte, x, y, scale int32) []byte {
	b = appendI32(b, x)
	b = appendI32(b, y)
	return appendI32(b, scale)
}

func appendEmptyDrawing(b []byte) []byte {
	b = appendMappingRecord(b, 0, 0, 100)
	return append(b, tagEndOfElements)
}

// surveyFixture assembles a complete well-formed survey file. The outline
// and sideview fields hold pre-built drawing bytes; nil means an empty
// drawing with a default mapping.
type surveyFixture struct {
	trips    []tripFixture
	shots    []shotFixture
	refs     []referenceFixture
	outline  []byte
	sideview []byte
}

func buildSurvey(f surveyFixture) []byte {
	b := surveyHeader()
	b = appendI32(b, int32(len(f.trips)))
	for _, t := range f.trips {
		b = appendTripRecord(b, t)
	}
	b = appendI32(b, int32(len(f.shots)))
	for _, s := range f.shots {
		b = appendShotRecord(b, s)
	}
	b = appendI32(b, int32(len(f.refs)))
	for _, r := range f.refs {
		b = appendReferenceRecord(b, r)
	}
	b = appendMappingRecord(b, 0, 0, 500)
	for _, d := range [][]byte{f.outline, f.sideview} {
		if d == nil {
			b = appendEmptyDrawing(b)
		} else {
			b = append(b, d...)
		}
	}
	return b
}
