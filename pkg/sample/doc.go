// ABOUTME: Package documentation for sample
// ABOUTME: Describes raw sample formats and the byte conversion engine
// Package sample describes the physical encoding of a single audio
// sample and converts between raw bytes and numeric values.
//
// A Format records bit depth, byte order, occupied storage width and
// numeric kind. The decode/encode functions are pure: they operate on
// a Storage-sized run of bytes with no dependency on any container,
// and they honor the declared byte order regardless of the host's
// native order.
//
//	raw := []byte{0x03, 0x00, 0x00, 0x00} // 24-bit LE in 4 bytes
//	v := sample.DecodeInt(sample.S24LE4, raw)
//	// v == 3
//
// Integer decode returns the raw (sign-extended) value at the
// format's natural width. Float decode normalizes integers onto the
// [-1.0, 1.0) range. Float-to-integer encoding rounds to nearest and
// saturates at the format's limits; it never fails.
package sample
