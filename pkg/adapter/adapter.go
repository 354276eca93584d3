// ABOUTME: Capability interfaces for sample buffer access
// ABOUTME: Defines indirect, direct and bulk fast-path contracts
package adapter

import "iter"

// Numeric is the set of in-memory sample types an adapter can expose.
type Numeric interface {
	int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64 | float32 | float64
}

// Reader reads samples from a buffer by value. Implementations may
// convert the stored representation before returning it, so Reader
// works even when the storage cannot hand out references.
type Reader[T Numeric] interface {
	// Channels returns the number of channels in the buffer.
	Channels() int
	// Frames returns the number of frames in the buffer.
	Frames() int
	// ReadSample returns the sample at the given channel and frame.
	// It fails with an OutOfBoundsError if either index is outside
	// the buffer's dimensions; it never panics or clamps.
	ReadSample(channel, frame int) (T, error)
}

// Writer reads and writes samples by value. Implementations that
// convert may saturate out-of-range values; writing never fails for
// numeric reasons, only for out-of-bounds indices.
type Writer[T Numeric] interface {
	Reader[T]
	// WriteSample stores the sample at the given channel and frame.
	WriteSample(channel, frame int, value T) error
}

// Direct is implemented by adapters whose stored element type is the
// sample type, so samples can be observed without conversion. The
// returned sequences are lazy and restartable: each range over them
// starts again from the first sample.
type Direct[T Numeric] interface {
	Reader[T]
	// ChannelSamples returns a sequence over all frames of a channel.
	ChannelSamples(channel int) (iter.Seq[T], error)
	// FrameSamples returns a sequence over all channels of a frame.
	FrameSamples(frame int) (iter.Seq[T], error)
}

// DirectMut adds mutable direct access: Sample returns a pointer to
// the stored element, valid for the lifetime of the wrapped storage.
type DirectMut[T Numeric] interface {
	Direct[T]
	Writer[T]
	// Sample returns a pointer to the element at the given channel
	// and frame.
	Sample(channel, frame int) (*T, error)
}

// ChannelReader is the optional fast path consumed by ReadChannel.
// An implementation must behave exactly like the default loop.
type ChannelReader[T Numeric] interface {
	ReadChannel(channel, skip int, dst []T) (int, error)
}

// ChannelWriter is the optional fast path consumed by WriteChannel.
type ChannelWriter[T Numeric] interface {
	WriteChannel(channel, skip int, src []T) (int, error)
}

// FrameReader is the optional fast path consumed by ReadFrame.
type FrameReader[T Numeric] interface {
	ReadFrame(frame, skip int, dst []T) (int, error)
}

// FrameWriter is the optional fast path consumed by WriteFrame.
type FrameWriter[T Numeric] interface {
	WriteFrame(frame, skip int, src []T) (int, error)
}
