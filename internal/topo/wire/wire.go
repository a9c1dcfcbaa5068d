// Package wire owns the byte-cursor decode primitives shared by the survey
// and calibration decoders.
//
// Ownership boundary:
// - fixed-width little-endian integer reads
// - 7-bit chunked length-prefixed string reads
// - end-of-data and malformed-input sentinels
//
// The cursor has no knowledge of survey semantics; every read advances it or
// fails without consuming partial values.
package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	ErrUnexpectedEOF   = errors.New("wire: unexpected end of data")
	ErrMalformedLength = errors.New("wire: malformed string length")
	ErrInvalidText     = errors.New("wire: invalid utf-8 text")
)

// Reader is a sequential cursor over an immutable byte buffer.
type Reader struct {
	buf []byte
	off int
}

// NewReader creates a cursor positioned at the start of buf. The buffer must
// not be mutated while the reader is in use.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Offset reports the number of bytes consumed so far.
func (r *Reader) Offset() int {
	return r.off
}

// Remaining reports the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.off
}

func (r *Reader) take(n int) ([]byte, error) {
	if r.Remaining() < n {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrUnexpectedEOF, n, r.off, r.Remaining())
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}

// ReadBytes consumes n bytes and returns them as a fresh slice.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	b, err := r.take(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

func (r *Reader) ReadU8() (uint8, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *Reader) ReadI8() (int8, error) {
	v, err := r.ReadU8()
	return int8(v), err
}

func (r *Reader) ReadU16() (uint16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (r *Reader) ReadI16() (int16, error) {
	v, err := r.ReadU16()
	return int16(v), err
}

func (r *Reader) ReadU32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (r *Reader) ReadI32() (int32, error) {
	v, err := r.ReadU32()
	return int32(v), err
}

func (r *Reader) ReadU64() (uint64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (r *Reader) ReadI64() (int64, error) {
	v, err := r.ReadU64()
	return int64(v), err
}

// ReadString reads a length-prefixed UTF-8 string. The length is unsigned,
// encoded in 7-bit groups least significant first, the high bit of every
// byte except the last signalling continuation. The payload is not
// zero-terminated.
func (r *Reader) ReadString() (string, error) {
	length, err := r.readLength()
	if err != nil {
		return "", err
	}
	if int64(length) > int64(r.Remaining()) {
		return "", fmt.Errorf("%w: string of %d bytes at offset %d, have %d", ErrUnexpectedEOF, length, r.off, r.Remaining())
	}
	start := r.off
	raw := r.buf[start : start+int(length)]
	r.off += int(length)
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("%w: string payload at offset %d", ErrInvalidText, start)
	}
	return string(raw), nil
}

// readLength decodes the 7-bit chunked length prefix. A continuation chain
// that would exceed the width of a 32-bit length is rejected so that
// unterminated or hostile prefixes cannot run away.
func (r *Reader) readLength() (uint32, error) {
	var length uint32
	for shift := 0; ; shift += 7 {
		if shift > 28 {
			return 0, fmt.Errorf("%w: continuation past 32 bits at offset %d", ErrMalformedLength, r.off)
		}
		b, err := r.ReadU8()
		if err != nil {
			return 0, err
		}
		group := uint32(b & 0x7F)
		if shift == 28 && group > 0x0F {
			return 0, fmt.Errorf("%w: length overflows 32 bits at offset %d", ErrMalformedLength, r.off-1)
		}
		length |= group << shift
		if b&0x80 == 0 {
			return length, nil
		}
	}
}
