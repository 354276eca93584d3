// ABOUTME: Package documentation for adapter
// ABOUTME: Describes the capability interfaces and buffer wrappers
// Package adapter gives audio code a uniform view of sample buffers
// regardless of how they are laid out or encoded.
//
// The capability surface is layered. Reader is the minimal contract:
// every sample is fetched by value through ReadSample, which works
// even when the storage holds raw bytes that need conversion. Writer
// adds indirect writes. Direct and DirectMut expose borrowed access
// and lazy per-channel/per-frame sequences, and only make sense when
// the stored element type is the sample type itself.
//
// Bulk helpers such as ReadChannel and WriteChannel run an
// element-by-element loop by default. A wrapper whose storage makes
// the requested run contiguous may implement the matching fast-path
// interface (ChannelReader, FrameWriter, ...); the helper then
// delegates, io.Copy style. An override must be observably identical
// to the default loop.
//
// Two wrappers are provided: Slice adapts a []T in either layout, and
// Bytes adapts a raw []byte plus a sample.Format, converting on every
// access:
//
//	pcm := []byte{ /* interleaved 24-bit little-endian samples */ }
//	buf, err := adapter.NewBytes[int32](pcm, 2, 3, layout.Interleaved, sample.S24LE)
//	v, err := buf.ReadSample(0, 1) // decoded left sample of frame 1
//
// Adapters borrow their storage and never resize it. A read-only
// adapter may be shared between goroutines if the storage is; a
// writer requires exclusive use.
package adapter
