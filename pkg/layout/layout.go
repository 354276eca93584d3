// ABOUTME: Layout and dimension types for audio buffers
// ABOUTME: Computes linear indices for interleaved and sequential orderings
package layout

import "fmt"

// Layout is the physical ordering of samples in a linear buffer.
type Layout int

const (
	// Interleaved stores buffers frame-major: all channels of frame 0,
	// then all channels of frame 1, and so on.
	Interleaved Layout = iota
	// Sequential stores buffers channel-major: all frames of channel 0,
	// then all frames of channel 1, and so on.
	Sequential
)

// String returns the layout name.
func (l Layout) String() string {
	switch l {
	case Interleaved:
		return "interleaved"
	case Sequential:
		return "sequential"
	default:
		return fmt.Sprintf("layout(%d)", int(l))
	}
}

// Dimensions is the channel and frame count of a buffer, fixed for
// the lifetime of an adapter.
type Dimensions struct {
	Channels int
	Frames   int
}

// Valid reports whether both counts are non-negative. Zero channels
// or frames is valid; such a buffer has no addressable samples.
func (d Dimensions) Valid() bool {
	return d.Channels >= 0 && d.Frames >= 0
}

// Samples returns the total number of samples in the buffer.
func (d Dimensions) Samples() int {
	return d.Channels * d.Frames
}

// Contains reports whether (channel, frame) addresses a sample.
func (d Dimensions) Contains(channel, frame int) bool {
	return channel >= 0 && channel < d.Channels && frame >= 0 && frame < d.Frames
}

// OutOfBoundsError reports a (channel, frame) access outside a
// buffer's dimensions.
type OutOfBoundsError struct {
	Channel  int
	Frame    int
	Channels int
	Frames   int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("sample (channel %d, frame %d) is out of bounds for %d channels x %d frames",
		e.Channel, e.Frame, e.Channels, e.Frames)
}

// Index maps (channel, frame) to a linear index. The bounds check
// runs before any arithmetic, so the returned index is always within
// [0, d.Samples()).
func (l Layout) Index(d Dimensions, channel, frame int) (int, error) {
	if !d.Contains(channel, frame) {
		return 0, &OutOfBoundsError{
			Channel:  channel,
			Frame:    frame,
			Channels: d.Channels,
			Frames:   d.Frames,
		}
	}
	if l == Sequential {
		return channel*d.Frames + frame, nil
	}
	return frame*d.Channels + channel, nil
}

// ChannelRun returns the linear index of the first sample of a
// channel and the stride between consecutive frames of that channel.
// A full channel is contiguous (stride 1) only under Sequential;
// under Interleaved callers must step by the stride.
func (l Layout) ChannelRun(d Dimensions, channel int) (start, stride int, err error) {
	if channel < 0 || channel >= d.Channels {
		return 0, 0, &OutOfBoundsError{
			Channel:  channel,
			Channels: d.Channels,
			Frames:   d.Frames,
		}
	}
	if l == Sequential {
		return channel * d.Frames, 1, nil
	}
	return channel, d.Channels, nil
}

// FrameRun returns the linear index of the first sample of a frame
// and the stride between consecutive channels of that frame. A full
// frame is contiguous (stride 1) only under Interleaved.
func (l Layout) FrameRun(d Dimensions, frame int) (start, stride int, err error) {
	if frame < 0 || frame >= d.Frames {
		return 0, 0, &OutOfBoundsError{
			Frame:    frame,
			Channels: d.Channels,
			Frames:   d.Frames,
		}
	}
	if l == Interleaved {
		return frame * d.Channels, 1, nil
	}
	return frame, d.Frames, nil
}
