package topo

import (
	"errors"
	"testing"

	"github.com/dlubom/CaveConv/internal/topo/wire"
)

type calEntryFixture struct {
	gx, gy, gz int16
	mx, my, mz int16
	group      byte
	valid      byte
}

func buildCalibration(entries []calEntryFixture) []byte {
	b := []byte{'C', 'a', 'l', CalVersion}
	b = appendI32(b, int32(len(entries)))
	for _, e := range entries {
		for _, v := range []int16{e.gx, e.gy, e.gz, e.mx, e.my, e.mz} {
			b = appendI16(b, v)
		}
		b = append(b, e.group, e.valid)
	}
	return b
}

func TestDecodeCalibrationEmpty(t *testing.T) {
	doc, err := DecodeCalibration(buildCalibration(nil))
	if err != nil {
		t.Fatalf("DecodeCalibration: %v", err)
	}
	if doc.Version != CalVersion {
		t.Fatalf("Version = %d, want %d", doc.Version, CalVersion)
	}
	if len(doc.Entries) != 0 {
		t.Fatalf("entries = %v", doc.Entries)
	}
}

func TestDecodeCalibrationEntries(t *testing.T) {
	doc, err := DecodeCalibration(buildCalibration([]calEntryFixture{
		{gx: 100, gy: -200, gz: 300, mx: -4000, my: 5000, mz: -6000, group: 1, valid: 1},
		{gx: -32768, gy: 32767, gz: 0, mx: 1, my: -1, mz: 2, group: 2, valid: 0},
		{group: 0, valid: 7},
	}))
	if err != nil {
		t.Fatalf("DecodeCalibration: %v", err)
	}
	if len(doc.Entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(doc.Entries))
	}

	want := CalibrationEntry{GX: 100, GY: -200, GZ: 300, MX: -4000, MY: 5000, MZ: -6000, Group: GroupA, Valid: true}
	if doc.Entries[0] != want {
		t.Fatalf("entry 0 = %+v, want %+v", doc.Entries[0], want)
	}

	e := doc.Entries[1]
	if e.GX != -32768 || e.GY != 32767 || e.Group != GroupB || e.Valid {
		t.Fatalf("entry 1 = %+v", e)
	}

	// Any nonzero valid byte counts as valid.
	if doc.Entries[2].Group != GroupNone || !doc.Entries[2].Valid {
		t.Fatalf("entry 2 = %+v", doc.Entries[2])
	}
}

func TestDecodeCalibrationInvalidGroup(t *testing.T) {
	buf := buildCalibration([]calEntryFixture{{group: 3, valid: 1}})
	if _, err := DecodeCalibration(buf); !errors.Is(err, ErrInvalidGroup) {
		t.Fatalf("err = %v, want ErrInvalidGroup", err)
	}
}

func TestDecodeCalibrationWrongHeader(t *testing.T) {
	buf := buildCalibration(nil)
	buf[0] = 'T'
	if _, err := DecodeCalibration(buf); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("err = %v, want ErrUnsupportedFormat", err)
	}

	buf = buildCalibration(nil)
	buf[3] = 2
	if _, err := DecodeCalibration(buf); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("err = %v, want ErrUnsupportedFormat", err)
	}
}

func TestDecodeCalibrationTruncated(t *testing.T) {
	full := buildCalibration([]calEntryFixture{
		{gx: 1, gy: 2, gz: 3, mx: 4, my: 5, mz: 6, group: 1, valid: 1},
	})
	for i := 0; i < len(full); i++ {
		if _, err := DecodeCalibration(full[:i]); !errors.Is(err, wire.ErrUnexpectedEOF) {
			t.Fatalf("prefix %d/%d: err = %v, want ErrUnexpectedEOF", i, len(full), err)
		}
	}
}

func TestDecodeCalibrationCountOverclaim(t *testing.T) {
	b := []byte{'C', 'a', 'l', CalVersion}
	b = appendI32(b, 1000)
	b = append(b, 0, 0, 0, 0)
	if _, err := DecodeCalibration(b); !errors.Is(err, wire.ErrUnexpectedEOF) {
		t.Fatalf("err = %v, want ErrUnexpectedEOF", err)
	}
}

func TestGroupNames(t *testing.T) {
	names := map[Group]string{
		GroupNone: "none",
		GroupA:    "A",
		GroupB:    "B",
		Group(5):  "unknown",
	}
	for g, want := range names {
		if g.String() != want {
			t.Errorf("Group(%d).String() = %q, want %q", byte(g), g.String(), want)
		}
	}
}
