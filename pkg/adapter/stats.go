// ABOUTME: Level statistics over adapter channels and frames
// ABOUTME: RMS and min/max computed through the Reader interface
package adapter

import (
	"math"

	"github.com/harperreed/audioadapter-go/pkg/layout"
)

// ChannelRMS returns the root-mean-square level of a channel,
// computed on the values as stored (raw integers for integer
// adapters, normalized floats for float adapters).
func ChannelRMS[T Numeric](r Reader[T], channel int) (float64, error) {
	if channel < 0 || channel >= r.Channels() {
		return 0, outOfBounds(layout.Dimensions{Channels: r.Channels(), Frames: r.Frames()}, channel, 0)
	}
	frames := r.Frames()
	if frames == 0 {
		return 0, nil
	}
	var sum float64
	for frame := 0; frame < frames; frame++ {
		v, err := r.ReadSample(channel, frame)
		if err != nil {
			return 0, err
		}
		f := float64(v)
		sum += f * f
	}
	return math.Sqrt(sum / float64(frames)), nil
}

// FrameRMS returns the root-mean-square level across the channels of
// a single frame.
func FrameRMS[T Numeric](r Reader[T], frame int) (float64, error) {
	if frame < 0 || frame >= r.Frames() {
		return 0, outOfBounds(layout.Dimensions{Channels: r.Channels(), Frames: r.Frames()}, 0, frame)
	}
	channels := r.Channels()
	if channels == 0 {
		return 0, nil
	}
	var sum float64
	for channel := 0; channel < channels; channel++ {
		v, err := r.ReadSample(channel, frame)
		if err != nil {
			return 0, err
		}
		f := float64(v)
		sum += f * f
	}
	return math.Sqrt(sum / float64(channels)), nil
}

// ChannelMinMax returns the smallest and largest sample of a channel.
// Both start from zero, so a silent channel reports (0, 0) and an
// all-positive channel still reports a zero minimum.
func ChannelMinMax[T Numeric](r Reader[T], channel int) (minVal, maxVal T, err error) {
	if channel < 0 || channel >= r.Channels() {
		return 0, 0, outOfBounds(layout.Dimensions{Channels: r.Channels(), Frames: r.Frames()}, channel, 0)
	}
	for frame := 0; frame < r.Frames(); frame++ {
		v, err := r.ReadSample(channel, frame)
		if err != nil {
			return 0, 0, err
		}
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	return minVal, maxVal, nil
}

// FrameMinMax returns the smallest and largest sample of a frame,
// both starting from zero.
func FrameMinMax[T Numeric](r Reader[T], frame int) (minVal, maxVal T, err error) {
	if frame < 0 || frame >= r.Frames() {
		return 0, 0, outOfBounds(layout.Dimensions{Channels: r.Channels(), Frames: r.Frames()}, 0, frame)
	}
	for channel := 0; channel < r.Channels(); channel++ {
		v, err := r.ReadSample(channel, frame)
		if err != nil {
			return 0, 0, err
		}
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	return minVal, maxVal, nil
}
