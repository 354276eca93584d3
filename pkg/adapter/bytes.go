// ABOUTME: Bytes adapter for raw encoded sample buffers
// ABOUTME: Converts between stored bytes and a numeric target type
package adapter

import (
	"fmt"

	"github.com/harperreed/audioadapter-go/pkg/layout"
	"github.com/harperreed/audioadapter-go/pkg/sample"
)

// byteMode selects how decoded values map onto the target type.
type byteMode int

const (
	modeInt byteMode = iota
	modeUint
	modeFloat
)

// Bytes adapts a raw []byte buffer of encoded samples. Every access
// runs through the conversion engine: integer targets see the raw
// sample values at their natural width, float targets see values
// normalized to [-1.0, 1.0). Writes through integer targets saturate
// at the format's limits and zero-fill any padding bytes.
type Bytes[T Numeric] struct {
	buf    []byte
	dims   layout.Dimensions
	lay    layout.Layout
	format sample.Format
	mode   byteMode
}

// NewBytes wraps buf, which must hold exactly
// channels*frames*format.Storage bytes in the given layout. Integer
// targets must match the format's signedness and be at least as wide
// as its bit depth; float targets accept every format.
func NewBytes[T Numeric](buf []byte, channels, frames int, lay layout.Layout, format sample.Format) (*Bytes[T], error) {
	if err := format.Validate(); err != nil {
		return nil, fmt.Errorf("invalid sample format: %w", err)
	}
	dims := layout.Dimensions{Channels: channels, Frames: frames}
	if !dims.Valid() {
		return nil, errNegativeDimensions
	}

	targetBits, targetKind := numericInfo[T]()
	var mode byteMode
	switch targetKind {
	case sample.Float:
		mode = modeFloat
	case sample.SignedInt:
		if format.Kind != sample.SignedInt {
			return nil, fmt.Errorf("%w: signed target for %v samples", ErrIncompatibleTarget, format)
		}
		if targetBits < format.Bits {
			return nil, fmt.Errorf("%w: %d-bit target cannot hold %v samples", ErrIncompatibleTarget, targetBits, format)
		}
		mode = modeInt
	case sample.UnsignedInt:
		if format.Kind != sample.UnsignedInt {
			return nil, fmt.Errorf("%w: unsigned target for %v samples", ErrIncompatibleTarget, format)
		}
		if targetBits < format.Bits {
			return nil, fmt.Errorf("%w: %d-bit target cannot hold %v samples", ErrIncompatibleTarget, targetBits, format)
		}
		mode = modeUint
	}

	required := dims.Samples() * format.Storage
	if len(buf) != required {
		return nil, &InvalidBufferSizeError{Actual: len(buf), Required: required}
	}
	return &Bytes[T]{buf: buf, dims: dims, lay: lay, format: format, mode: mode}, nil
}

// Channels returns the number of channels.
func (b *Bytes[T]) Channels() int { return b.dims.Channels }

// Frames returns the number of frames.
func (b *Bytes[T]) Frames() int { return b.dims.Frames }

// Layout returns the physical ordering of the wrapped buffer.
func (b *Bytes[T]) Layout() layout.Layout { return b.lay }

// Format returns the sample format of the wrapped buffer.
func (b *Bytes[T]) Format() sample.Format { return b.format }

func (b *Bytes[T]) decodeAt(idx int) T {
	raw := b.buf[idx*b.format.Storage:]
	switch b.mode {
	case modeFloat:
		return T(sample.DecodeFloat(b.format, raw))
	case modeUint:
		return T(sample.DecodeUint(b.format, raw))
	default:
		return T(sample.DecodeInt(b.format, raw))
	}
}

func (b *Bytes[T]) encodeAt(idx int, value T) {
	raw := b.buf[idx*b.format.Storage:]
	switch b.mode {
	case modeFloat:
		sample.EncodeFloat(b.format, float64(value), raw)
	case modeUint:
		sample.EncodeUint(b.format, uint64(value), raw)
	default:
		sample.EncodeInt(b.format, int64(value), raw)
	}
}

// ReadSample decodes the sample at the given channel and frame.
func (b *Bytes[T]) ReadSample(channel, frame int) (T, error) {
	idx, err := b.lay.Index(b.dims, channel, frame)
	if err != nil {
		var zero T
		return zero, err
	}
	return b.decodeAt(idx), nil
}

// WriteSample encodes the sample at the given channel and frame.
// Out-of-range values saturate; only bad indices fail.
func (b *Bytes[T]) WriteSample(channel, frame int, value T) error {
	idx, err := b.lay.Index(b.dims, channel, frame)
	if err != nil {
		return err
	}
	b.encodeAt(idx, value)
	return nil
}

// ReadChannel decodes samples from a channel into dst, starting skip
// frames in. This is the fast path behind the ReadChannel helper; it
// still decodes per sample but walks the byte run directly.
func (b *Bytes[T]) ReadChannel(channel, skip int, dst []T) (int, error) {
	start, stride, err := b.lay.ChannelRun(b.dims, channel)
	if err != nil {
		return 0, err
	}
	if skip < 0 || skip > b.dims.Frames {
		return 0, outOfBounds(b.dims, channel, skip)
	}
	n := min(len(dst), b.dims.Frames-skip)
	for i := 0; i < n; i++ {
		dst[i] = b.decodeAt(start + (skip+i)*stride)
	}
	return n, nil
}

// WriteChannel encodes samples from src into a channel, starting
// skip frames in.
func (b *Bytes[T]) WriteChannel(channel, skip int, src []T) (int, error) {
	start, stride, err := b.lay.ChannelRun(b.dims, channel)
	if err != nil {
		return 0, err
	}
	if skip < 0 || skip > b.dims.Frames {
		return 0, outOfBounds(b.dims, channel, skip)
	}
	n := min(len(src), b.dims.Frames-skip)
	for i := 0; i < n; i++ {
		b.encodeAt(start+(skip+i)*stride, src[i])
	}
	return n, nil
}
