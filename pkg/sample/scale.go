// ABOUTME: Numeric scaling between integer sample depths and floats
// ABOUTME: Implements normalization, saturation and depth rescaling
package sample

import "math"

// MaxInt returns the largest signed sample value at the given depth.
func MaxInt(bits int) int64 {
	if bits >= 64 {
		return math.MaxInt64
	}
	return int64(1)<<(bits-1) - 1
}

// MinInt returns the smallest signed sample value at the given depth.
func MinInt(bits int) int64 {
	return int64(-1) << (bits - 1)
}

// IntToFloat normalizes a signed integer sample of the given bit
// depth onto [-1.0, 1.0). The asymmetry of the integer range is
// preserved: MinInt maps to exactly -1.0, MaxInt to just below +1.0.
func IntToFloat(v int64, bits int) float64 {
	return float64(v) / math.Ldexp(1, bits-1)
}

// UintToFloat normalizes an unsigned integer sample by offsetting it
// to the signed range first, so the midpoint of the range maps to 0.
func UintToFloat(v uint64, bits int) float64 {
	half := math.Ldexp(1, bits-1)
	return (float64(v) - half) / half
}

// FloatToInt converts a normalized float to a signed integer sample
// of the given bit depth, rounding to nearest. Values outside the
// representable range saturate at MinInt/MaxInt and NaN becomes zero;
// the returned flag reports whether the value was clipped.
func FloatToInt(v float64, bits int) (int64, bool) {
	if math.IsNaN(v) {
		return 0, true
	}
	scale := math.Ldexp(1, bits-1)
	scaled := math.Round(v * scale)
	if scaled >= scale {
		return MaxInt(bits), true
	}
	if scaled < -scale {
		return MinInt(bits), true
	}
	return int64(scaled), false
}

// FloatToUint converts a normalized float to an unsigned integer
// sample, offsetting so that 0.0 maps to the midpoint of the range.
func FloatToUint(v float64, bits int) (uint64, bool) {
	if math.IsNaN(v) {
		return 0, true
	}
	half := math.Ldexp(1, bits-1)
	scaled := math.Round(v*half + half)
	if scaled >= 2*half {
		if bits >= 64 {
			return math.MaxUint64, true
		}
		return uint64(1)<<bits - 1, true
	}
	if scaled < 0 {
		return 0, true
	}
	return uint64(scaled), false
}

// Rescale converts a signed integer sample between bit depths by the
// ratio of their representable ranges. Widening shifts the value into
// the upper bits, narrowing drops the lower bits; neither is a plain
// truncation of the stored bytes.
func Rescale(v int64, fromBits, toBits int) int64 {
	switch {
	case toBits > fromBits:
		return v << (toBits - fromBits)
	case toBits < fromBits:
		return v >> (fromBits - toBits)
	}
	return v
}
