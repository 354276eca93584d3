// ABOUTME: Converting wrappers exposing a buffer as another sample type
// ABOUTME: On-the-fly numeric conversion over any Reader or Writer
package adapter

// Convert wraps a Reader of sample type S and exposes it as a Reader
// of sample type D, converting every value on the fly. Integer pairs
// rescale by the ratio of their representable ranges; pairs involving
// a float go through the normalized [-1.0, 1.0) range.
type Convert[D, S Numeric] struct {
	src Reader[S]
}

// NewConvert wraps src for reading as type D.
func NewConvert[D, S Numeric](src Reader[S]) *Convert[D, S] {
	return &Convert[D, S]{src: src}
}

// Channels returns the number of channels of the wrapped buffer.
func (c *Convert[D, S]) Channels() int { return c.src.Channels() }

// Frames returns the number of frames of the wrapped buffer.
func (c *Convert[D, S]) Frames() int { return c.src.Frames() }

// ReadSample reads from the wrapped buffer and converts to D.
func (c *Convert[D, S]) ReadSample(channel, frame int) (D, error) {
	v, err := c.src.ReadSample(channel, frame)
	if err != nil {
		var zero D
		return zero, err
	}
	return convertValue[D](v), nil
}

// ConvertMut is a Convert over a Writer: values written as D are
// converted to S before being stored, saturating integer targets.
type ConvertMut[D, S Numeric] struct {
	Convert[D, S]
	dst Writer[S]
}

// NewConvertMut wraps buf for reading and writing as type D.
func NewConvertMut[D, S Numeric](buf Writer[S]) *ConvertMut[D, S] {
	return &ConvertMut[D, S]{Convert: Convert[D, S]{src: buf}, dst: buf}
}

// WriteSample converts value to S and stores it.
func (c *ConvertMut[D, S]) WriteSample(channel, frame int, value D) error {
	return c.dst.WriteSample(channel, frame, convertValue[S](value))
}
