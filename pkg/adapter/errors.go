// ABOUTME: Error types for adapter construction and access
// ABOUTME: Defines the out-of-bounds and buffer-size failure modes
package adapter

import (
	"errors"
	"fmt"

	"github.com/harperreed/audioadapter-go/pkg/layout"
)

// OutOfBoundsError reports a (channel, frame) access outside an
// adapter's dimensions. It is the only failure mode of sample and
// slice accessors.
type OutOfBoundsError = layout.OutOfBoundsError

// InvalidBufferSizeError reports storage whose length does not match
// the size implied by dimensions and sample format. It is raised only
// at construction; no partially initialized adapter is ever returned.
type InvalidBufferSizeError struct {
	Actual   int
	Required int
}

func (e *InvalidBufferSizeError) Error() string {
	return fmt.Sprintf("buffer has wrong size: got %d, required %d", e.Actual, e.Required)
}

// ErrIncompatibleTarget is returned at construction when the numeric
// target type cannot represent samples of the declared format, for
// example an int16 target for a 24-bit format or a signed target for
// an unsigned format.
var ErrIncompatibleTarget = errors.New("numeric target type is incompatible with the sample format")

var errNegativeDimensions = errors.New("channels and frames must be non-negative")

func outOfBounds(d layout.Dimensions, channel, frame int) error {
	return &OutOfBoundsError{
		Channel:  channel,
		Frame:    frame,
		Channels: d.Channels,
		Frames:   d.Frames,
	}
}
