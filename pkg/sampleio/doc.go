// ABOUTME: Package documentation for sampleio
// ABOUTME: Describes stream helpers for encoded samples
// Package sampleio reads and writes individual encoded samples on
// byte streams.
//
// The helpers are thin callers into the conversion engine: each one
// moves a Storage-sized chunk between the stream and a bare byte
// array and converts it with package sample. They add no semantics of
// their own beyond error propagation:
//
//	v, err := sampleio.ReadFloat(file, sample.S24LE)
//	err = sampleio.WriteFloat(out, sample.F32BE, v)
package sampleio
