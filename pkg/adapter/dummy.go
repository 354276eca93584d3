// ABOUTME: Dummy adapter returning a constant and discarding writes
// ABOUTME: Useful as a test source or sink with real bounds behavior
package adapter

import "github.com/harperreed/audioadapter-go/pkg/layout"

// Dummy is an adapter with no storage: every read returns the same
// value and every write is discarded. Bounds are still enforced, so
// it works as a stand-in source or sink in tests.
type Dummy[T Numeric] struct {
	value T
	dims  layout.Dimensions
}

// NewDummy returns a Dummy that always reads value.
func NewDummy[T Numeric](value T, channels, frames int) *Dummy[T] {
	return &Dummy[T]{value: value, dims: layout.Dimensions{Channels: channels, Frames: frames}}
}

// Channels returns the number of channels.
func (d *Dummy[T]) Channels() int { return d.dims.Channels }

// Frames returns the number of frames.
func (d *Dummy[T]) Frames() int { return d.dims.Frames }

// ReadSample returns the constant value for any in-bounds position.
func (d *Dummy[T]) ReadSample(channel, frame int) (T, error) {
	if !d.dims.Contains(channel, frame) {
		var zero T
		return zero, outOfBounds(d.dims, channel, frame)
	}
	return d.value, nil
}

// WriteSample discards the value for any in-bounds position.
func (d *Dummy[T]) WriteSample(channel, frame int, _ T) error {
	if !d.dims.Contains(channel, frame) {
		return outOfBounds(d.dims, channel, frame)
	}
	return nil
}
