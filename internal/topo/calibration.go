package topo

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/dlubom/CaveConv/internal/topo/wire"
)

const (
	calMagic = "Cal"

	// CalVersion is the only calibration container version this decoder
	// understands.
	CalVersion byte = 1

	calEntrySize = 16 // six int16 sensor fields, group byte, valid byte
)

// DecodeCalibration decodes one calibration (.cal) file: a count followed by
// fixed-size sensor entries. Entries are independent rows; the alternating
// group pattern of a normal calibration run is not a structural contract and
// is not checked.
func DecodeCalibration(buf []byte) (*CalibrationDocument, error) {
	r := wire.NewReader(buf)
	if err := expectHeader(r, calMagic, CalVersion); err != nil {
		return nil, err
	}
	count, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	n := int(count)
	if n < 0 {
		n = 0
	}
	if int64(n)*calEntrySize > int64(r.Remaining()) {
		return nil, fmt.Errorf("%w: %d entries at offset %d, have %d bytes", wire.ErrUnexpectedEOF, n, r.Offset(), r.Remaining())
	}

	entries := make([]CalibrationEntry, 0, n)
	for i := 0; i < n; i++ {
		e, err := decodeCalibrationEntry(r)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		entries = append(entries, e)
	}

	doc := &CalibrationDocument{Version: CalVersion, Entries: entries}
	log.Debug().Int("entries", len(doc.Entries)).Msg("calibration decoded")
	return doc, nil
}

func decodeCalibrationEntry(r *wire.Reader) (CalibrationEntry, error) {
	var e CalibrationEntry
	for _, field := range []*int16{&e.GX, &e.GY, &e.GZ, &e.MX, &e.MY, &e.MZ} {
		v, err := r.ReadI16()
		if err != nil {
			return CalibrationEntry{}, err
		}
		*field = v
	}
	group, err := r.ReadU8()
	if err != nil {
		return CalibrationEntry{}, err
	}
	if group > byte(GroupB) {
		return CalibrationEntry{}, fmt.Errorf("%w: group %d at offset %d", ErrInvalidGroup, group, r.Offset()-1)
	}
	valid, err := r.ReadU8()
	if err != nil {
		return CalibrationEntry{}, err
	}
	e.Group = Group(group)
	e.Valid = valid != 0
	return e, nil
}
