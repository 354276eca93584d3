// ABOUTME: Numeric type introspection and value conversion
// ABOUTME: Maps Go sample types onto bit depths and kinds
package adapter

import "github.com/harperreed/audioadapter-go/pkg/sample"

// numericInfo returns the bit depth and kind of the numeric type T.
func numericInfo[T Numeric]() (bits int, kind sample.Kind) {
	var zero T
	switch any(zero).(type) {
	case int8:
		return 8, sample.SignedInt
	case int16:
		return 16, sample.SignedInt
	case int32:
		return 32, sample.SignedInt
	case int64:
		return 64, sample.SignedInt
	case uint8:
		return 8, sample.UnsignedInt
	case uint16:
		return 16, sample.UnsignedInt
	case uint32:
		return 32, sample.UnsignedInt
	case uint64:
		return 64, sample.UnsignedInt
	case float32:
		return 32, sample.Float
	default:
		return 64, sample.Float
	}
}

func signExtend(v uint64, bits int) int64 {
	if bits < 64 && v&(1<<(bits-1)) != 0 {
		v |= ^uint64(0) << bits
	}
	return int64(v)
}

func maskBits(bits int) uint64 {
	if bits >= 64 {
		return ^uint64(0)
	}
	return uint64(1)<<bits - 1
}

// normalize maps a sample value onto the [-1.0, 1.0) float range.
func normalize[T Numeric](v T) float64 {
	bits, kind := numericInfo[T]()
	switch kind {
	case sample.SignedInt:
		return sample.IntToFloat(int64(v), bits)
	case sample.UnsignedInt:
		return sample.UintToFloat(uint64(v), bits)
	default:
		return float64(v)
	}
}

// denormalize maps a [-1.0, 1.0) float onto the full range of T,
// rounding to nearest and saturating integer targets.
func denormalize[T Numeric](v float64) (T, bool) {
	bits, kind := numericInfo[T]()
	switch kind {
	case sample.SignedInt:
		i, clipped := sample.FloatToInt(v, bits)
		return T(i), clipped
	case sample.UnsignedInt:
		u, clipped := sample.FloatToUint(v, bits)
		return T(u), clipped
	default:
		return T(v), false
	}
}

// convertValue converts a sample value between numeric types. Pairs
// of integer types use an exact range-ratio rescale; any pair
// involving a float goes through the normalized range, saturating on
// the way back to an integer.
func convertValue[D, S Numeric](v S) D {
	sBits, sKind := numericInfo[S]()
	dBits, dKind := numericInfo[D]()
	if sKind == sample.Float || dKind == sample.Float {
		d, _ := denormalize[D](normalize(v))
		return d
	}
	sv := int64(v)
	if sKind == sample.UnsignedInt {
		sv = signExtend(uint64(v)^(1<<(sBits-1)), sBits)
	}
	rv := sample.Rescale(sv, sBits, dBits)
	if dKind == sample.UnsignedInt {
		return D((uint64(rv) & maskBits(dBits)) ^ (1 << (dBits - 1)))
	}
	return D(rv)
}
