package topo

import (
	"fmt"

	"github.com/dlubom/CaveConv/internal/topo/wire"
)

// Element stream tags. Anything else is an unknown element kind and fatal:
// the format gives no length prefix to skip over an unrecognized element.
const (
	tagEndOfElements byte = 0
	tagPolygon       byte = 1
	tagXSection      byte = 3
)

const pointSize = 8 // two int32 coordinates

func decodeDrawing(r *wire.Reader) (Drawing, error) {
	mapping, err := decodeMapping(r)
	if err != nil {
		return Drawing{}, err
	}
	var elements []Element
	for {
		tag, err := r.ReadU8()
		if err != nil {
			return Drawing{}, err
		}
		switch tag {
		case tagEndOfElements:
			return Drawing{Mapping: mapping, Elements: elements}, nil
		case tagPolygon:
			p, err := decodePolygon(r)
			if err != nil {
				return Drawing{}, err
			}
			elements = append(elements, p)
		case tagXSection:
			x, err := decodeXSection(r)
			if err != nil {
				return Drawing{}, err
			}
			elements = append(elements, x)
		default:
			return Drawing{}, fmt.Errorf("%w: tag %d at offset %d", ErrUnknownElementType, tag, r.Offset()-1)
		}
	}
}

func decodePolygon(r *wire.Reader) (Polygon, error) {
	count, err := r.ReadI32()
	if err != nil {
		return Polygon{}, err
	}
	n := int(count)
	if n < 0 {
		n = 0
	}
	// Size the claim against the buffer before allocating anything.
	if int64(n)*pointSize > int64(r.Remaining()) {
		return Polygon{}, fmt.Errorf("%w: polygon of %d points at offset %d, have %d bytes", wire.ErrUnexpectedEOF, n, r.Offset(), r.Remaining())
	}
	points := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		p, err := decodePoint(r)
		if err != nil {
			return Polygon{}, err
		}
		points = append(points, p)
	}
	colorByte, err := r.ReadU8()
	if err != nil {
		return Polygon{}, err
	}
	if colorByte < byte(ColorBlack) || colorByte > byte(ColorOrange) {
		return Polygon{}, fmt.Errorf("%w: color %d at offset %d", ErrInvalidColor, colorByte, r.Offset()-1)
	}
	return Polygon{Points: points, Color: Color(colorByte)}, nil
}

func decodeXSection(r *wire.Reader) (XSection, error) {
	pos, err := decodePoint(r)
	if err != nil {
		return XSection{}, err
	}
	stationRaw, err := r.ReadU32()
	if err != nil {
		return XSection{}, err
	}
	direction, err := r.ReadI32()
	if err != nil {
		return XSection{}, err
	}
	return XSection{
		Position:  pos,
		Station:   DecodeStationID(stationRaw),
		Direction: direction,
	}, nil
}
