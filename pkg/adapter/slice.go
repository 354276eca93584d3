// ABOUTME: Slice adapter for element-typed sample buffers
// ABOUTME: Wraps a []T with a layout and provides direct access
package adapter

import (
	"iter"

	"github.com/harperreed/audioadapter-go/pkg/layout"
)

// Slice adapts a []T holding samples in either layout. It implements
// DirectMut along with the channel and frame fast paths; bulk copies
// use a single block copy whenever the layout makes the run
// contiguous.
type Slice[T Numeric] struct {
	buf  []T
	dims layout.Dimensions
	lay  layout.Layout
}

// NewSlice wraps buf, which must hold exactly channels*frames
// elements in the given layout. The adapter borrows buf; it never
// copies or resizes it.
func NewSlice[T Numeric](buf []T, channels, frames int, lay layout.Layout) (*Slice[T], error) {
	dims := layout.Dimensions{Channels: channels, Frames: frames}
	if !dims.Valid() {
		return nil, errNegativeDimensions
	}
	if len(buf) != dims.Samples() {
		return nil, &InvalidBufferSizeError{Actual: len(buf), Required: dims.Samples()}
	}
	return &Slice[T]{buf: buf, dims: dims, lay: lay}, nil
}

// Channels returns the number of channels.
func (s *Slice[T]) Channels() int { return s.dims.Channels }

// Frames returns the number of frames.
func (s *Slice[T]) Frames() int { return s.dims.Frames }

// Layout returns the physical ordering of the wrapped slice.
func (s *Slice[T]) Layout() layout.Layout { return s.lay }

// ReadSample returns the sample at the given channel and frame.
func (s *Slice[T]) ReadSample(channel, frame int) (T, error) {
	idx, err := s.lay.Index(s.dims, channel, frame)
	if err != nil {
		var zero T
		return zero, err
	}
	return s.buf[idx], nil
}

// WriteSample stores the sample at the given channel and frame.
func (s *Slice[T]) WriteSample(channel, frame int, value T) error {
	idx, err := s.lay.Index(s.dims, channel, frame)
	if err != nil {
		return err
	}
	s.buf[idx] = value
	return nil
}

// Sample returns a pointer to the element at the given channel and
// frame, valid for the lifetime of the wrapped slice.
func (s *Slice[T]) Sample(channel, frame int) (*T, error) {
	idx, err := s.lay.Index(s.dims, channel, frame)
	if err != nil {
		return nil, err
	}
	return &s.buf[idx], nil
}

// ChannelSamples returns a restartable sequence over all frames of a
// channel.
func (s *Slice[T]) ChannelSamples(channel int) (iter.Seq[T], error) {
	start, stride, err := s.lay.ChannelRun(s.dims, channel)
	if err != nil {
		return nil, err
	}
	return func(yield func(T) bool) {
		for i, idx := 0, start; i < s.dims.Frames; i, idx = i+1, idx+stride {
			if !yield(s.buf[idx]) {
				return
			}
		}
	}, nil
}

// FrameSamples returns a restartable sequence over all channels of a
// frame.
func (s *Slice[T]) FrameSamples(frame int) (iter.Seq[T], error) {
	start, stride, err := s.lay.FrameRun(s.dims, frame)
	if err != nil {
		return nil, err
	}
	return func(yield func(T) bool) {
		for i, idx := 0, start; i < s.dims.Channels; i, idx = i+1, idx+stride {
			if !yield(s.buf[idx]) {
				return
			}
		}
	}, nil
}

// ReadChannel copies samples from a channel into dst, starting skip
// frames in. It is the fast path behind the ReadChannel helper: a
// sequential channel is one block copy, an interleaved one a strided
// loop.
func (s *Slice[T]) ReadChannel(channel, skip int, dst []T) (int, error) {
	start, stride, err := s.lay.ChannelRun(s.dims, channel)
	if err != nil {
		return 0, err
	}
	if skip < 0 || skip > s.dims.Frames {
		return 0, outOfBounds(s.dims, channel, skip)
	}
	n := min(len(dst), s.dims.Frames-skip)
	if stride == 1 {
		copy(dst[:n], s.buf[start+skip:start+skip+n])
		return n, nil
	}
	for i := 0; i < n; i++ {
		dst[i] = s.buf[start+(skip+i)*stride]
	}
	return n, nil
}

// WriteChannel copies samples from src into a channel, starting skip
// frames in.
func (s *Slice[T]) WriteChannel(channel, skip int, src []T) (int, error) {
	start, stride, err := s.lay.ChannelRun(s.dims, channel)
	if err != nil {
		return 0, err
	}
	if skip < 0 || skip > s.dims.Frames {
		return 0, outOfBounds(s.dims, channel, skip)
	}
	n := min(len(src), s.dims.Frames-skip)
	if stride == 1 {
		copy(s.buf[start+skip:start+skip+n], src[:n])
		return n, nil
	}
	for i := 0; i < n; i++ {
		s.buf[start+(skip+i)*stride] = src[i]
	}
	return n, nil
}

// ReadFrame copies samples from a frame into dst, starting skip
// channels in. An interleaved frame is one block copy.
func (s *Slice[T]) ReadFrame(frame, skip int, dst []T) (int, error) {
	start, stride, err := s.lay.FrameRun(s.dims, frame)
	if err != nil {
		return 0, err
	}
	if skip < 0 || skip > s.dims.Channels {
		return 0, outOfBounds(s.dims, skip, frame)
	}
	n := min(len(dst), s.dims.Channels-skip)
	if stride == 1 {
		copy(dst[:n], s.buf[start+skip:start+skip+n])
		return n, nil
	}
	for i := 0; i < n; i++ {
		dst[i] = s.buf[start+(skip+i)*stride]
	}
	return n, nil
}

// WriteFrame copies samples from src into a frame, starting skip
// channels in.
func (s *Slice[T]) WriteFrame(frame, skip int, src []T) (int, error) {
	start, stride, err := s.lay.FrameRun(s.dims, frame)
	if err != nil {
		return 0, err
	}
	if skip < 0 || skip > s.dims.Channels {
		return 0, outOfBounds(s.dims, skip, frame)
	}
	n := min(len(src), s.dims.Channels-skip)
	if stride == 1 {
		copy(s.buf[start+skip:start+skip+n], src[:n])
		return n, nil
	}
	for i := 0; i < n; i++ {
		s.buf[start+(skip+i)*stride] = src[i]
	}
	return n, nil
}
