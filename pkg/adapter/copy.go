// ABOUTME: Bulk copy helpers between adapters and plain slices
// ABOUTME: Default element loops with optional fast-path delegation
package adapter

import "github.com/harperreed/audioadapter-go/pkg/layout"

func checkChannelRange[T Numeric](r Reader[T], channel, skip int) error {
	dims := layout.Dimensions{Channels: r.Channels(), Frames: r.Frames()}
	if channel < 0 || channel >= dims.Channels || skip < 0 || skip > dims.Frames {
		return outOfBounds(dims, channel, skip)
	}
	return nil
}

func checkFrameRange[T Numeric](r Reader[T], frame, skip int) error {
	dims := layout.Dimensions{Channels: r.Channels(), Frames: r.Frames()}
	if frame < 0 || frame >= dims.Frames || skip < 0 || skip > dims.Channels {
		return outOfBounds(dims, skip, frame)
	}
	return nil
}

// ReadChannel copies samples from a channel of src into dst, starting
// skip frames in. If dst is longer than the remaining frames, only
// the available samples are copied. It returns the number of samples
// copied, delegating to the adapter's own ReadChannel when one is
// provided.
func ReadChannel[T Numeric](src Reader[T], channel, skip int, dst []T) (int, error) {
	if fast, ok := src.(ChannelReader[T]); ok {
		return fast.ReadChannel(channel, skip, dst)
	}
	if err := checkChannelRange(src, channel, skip); err != nil {
		return 0, err
	}
	n := min(len(dst), src.Frames()-skip)
	for i := 0; i < n; i++ {
		v, err := src.ReadSample(channel, skip+i)
		if err != nil {
			return i, err
		}
		dst[i] = v
	}
	return n, nil
}

// WriteChannel copies samples from src into a channel of dst,
// starting skip frames in. It returns the number of samples copied.
func WriteChannel[T Numeric](dst Writer[T], channel, skip int, src []T) (int, error) {
	if fast, ok := dst.(ChannelWriter[T]); ok {
		return fast.WriteChannel(channel, skip, src)
	}
	if err := checkChannelRange[T](dst, channel, skip); err != nil {
		return 0, err
	}
	n := min(len(src), dst.Frames()-skip)
	for i := 0; i < n; i++ {
		if err := dst.WriteSample(channel, skip+i, src[i]); err != nil {
			return i, err
		}
	}
	return n, nil
}

// ReadFrame copies samples from a frame of src into dst, starting
// skip channels in. It returns the number of samples copied.
func ReadFrame[T Numeric](src Reader[T], frame, skip int, dst []T) (int, error) {
	if fast, ok := src.(FrameReader[T]); ok {
		return fast.ReadFrame(frame, skip, dst)
	}
	if err := checkFrameRange(src, frame, skip); err != nil {
		return 0, err
	}
	n := min(len(dst), src.Channels()-skip)
	for i := 0; i < n; i++ {
		v, err := src.ReadSample(skip+i, frame)
		if err != nil {
			return i, err
		}
		dst[i] = v
	}
	return n, nil
}

// WriteFrame copies samples from src into a frame of dst, starting
// skip channels in. It returns the number of samples copied.
func WriteFrame[T Numeric](dst Writer[T], frame, skip int, src []T) (int, error) {
	if fast, ok := dst.(FrameWriter[T]); ok {
		return fast.WriteFrame(frame, skip, src)
	}
	if err := checkFrameRange[T](dst, frame, skip); err != nil {
		return 0, err
	}
	n := min(len(src), dst.Channels()-skip)
	for i := 0; i < n; i++ {
		if err := dst.WriteSample(skip+i, frame, src[i]); err != nil {
			return i, err
		}
	}
	return n, nil
}

// CopyChannel copies count samples from a channel of src to a channel
// of dst, reading from srcSkip frames in and writing from dstSkip
// frames in. Both ranges must fit; nothing is copied on error.
func CopyChannel[T Numeric](dst Writer[T], dstChannel, dstSkip int, src Reader[T], srcChannel, srcSkip, count int) error {
	if count < 0 || srcSkip < 0 || srcSkip+count > src.Frames() {
		return outOfBounds(layout.Dimensions{Channels: src.Channels(), Frames: src.Frames()}, srcChannel, srcSkip+count)
	}
	if srcChannel < 0 || srcChannel >= src.Channels() {
		return outOfBounds(layout.Dimensions{Channels: src.Channels(), Frames: src.Frames()}, srcChannel, srcSkip)
	}
	if dstSkip < 0 || dstSkip+count > dst.Frames() {
		return outOfBounds(layout.Dimensions{Channels: dst.Channels(), Frames: dst.Frames()}, dstChannel, dstSkip+count)
	}
	if dstChannel < 0 || dstChannel >= dst.Channels() {
		return outOfBounds(layout.Dimensions{Channels: dst.Channels(), Frames: dst.Frames()}, dstChannel, dstSkip)
	}
	for i := 0; i < count; i++ {
		v, err := src.ReadSample(srcChannel, srcSkip+i)
		if err != nil {
			return err
		}
		if err := dst.WriteSample(dstChannel, dstSkip+i, v); err != nil {
			return err
		}
	}
	return nil
}

// FillChannel writes value to every sample of a channel. Writing
// zeroes clears the channel.
func FillChannel[T Numeric](dst Writer[T], channel int, value T) error {
	if channel < 0 || channel >= dst.Channels() {
		return outOfBounds(layout.Dimensions{Channels: dst.Channels(), Frames: dst.Frames()}, channel, 0)
	}
	for frame := 0; frame < dst.Frames(); frame++ {
		if err := dst.WriteSample(channel, frame, value); err != nil {
			return err
		}
	}
	return nil
}

// FillFrame writes value to every sample of a frame.
func FillFrame[T Numeric](dst Writer[T], frame int, value T) error {
	if frame < 0 || frame >= dst.Frames() {
		return outOfBounds(layout.Dimensions{Channels: dst.Channels(), Frames: dst.Frames()}, 0, frame)
	}
	for channel := 0; channel < dst.Channels(); channel++ {
		if err := dst.WriteSample(channel, frame, value); err != nil {
			return err
		}
	}
	return nil
}

// Fill writes value to every sample in the buffer.
func Fill[T Numeric](dst Writer[T], value T) error {
	for channel := 0; channel < dst.Channels(); channel++ {
		if err := FillChannel(dst, channel, value); err != nil {
			return err
		}
	}
	return nil
}
