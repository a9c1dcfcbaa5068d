package topo

import "errors"

var (
	ErrUnsupportedFormat    = errors.New("topo: unsupported file format")
	ErrInvalidTripReference = errors.New("topo: invalid trip reference")
	ErrInvalidColor         = errors.New("topo: invalid polygon color")
	ErrInvalidGroup         = errors.New("topo: invalid calibration group")
	ErrUnknownElementType   = errors.New("topo: unknown element type")
)
