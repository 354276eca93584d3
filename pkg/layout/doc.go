// ABOUTME: Package documentation for layout
// ABOUTME: Describes channel/frame addressing for audio buffers
// Package layout maps (channel, frame) coordinates to linear storage
// indices for the two standard audio buffer orderings.
//
// An interleaved (frame-major) buffer stores all channels of a frame
// contiguously; a sequential (channel-major) buffer stores all frames
// of a channel contiguously. The same Dimensions work with either
// ordering, and the index math is always derived from the current
// dimensions:
//
//	d := layout.Dimensions{Channels: 2, Frames: 3}
//	idx, err := layout.Interleaved.Index(d, 1, 2) // frame 2, right channel
//
// ChannelRun and FrameRun report the start and stride of a full
// channel or frame, letting callers detect the combinations that form
// a contiguous run (stride 1) and copy them as a block.
package layout
