// Package topo owns the PocketTopo container formats and the survey model
// they decode into.
//
// Ownership boundary:
// - survey (.top) and calibration (.cal) decode entry points
// - station identifier and angle codecs
// - the immutable document model handed to exporters
//
// Decoding is all-or-nothing: any malformed byte aborts the whole document
// with a sentinel from this package or from topo/wire. The package never
// validates surveying semantics (loop closure, geometry); it only enforces
// the structural contract of the container.
package topo
