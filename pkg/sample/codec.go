// ABOUTME: Raw byte decode/encode for sample formats
// ABOUTME: Converts Storage-sized byte runs to and from numeric values
package sample

import "math"

// significant returns the sub-slice of raw holding the significant
// bytes. Padding precedes them for big-endian formats and follows
// them for little-endian formats.
func (f Format) significant(raw []byte) []byte {
	nb := f.Bits / 8
	if f.Order == BigEndian {
		return raw[f.Storage-nb : f.Storage]
	}
	return raw[:nb]
}

// putRaw writes the low Bits of raw into dst in the declared byte
// order and zeroes the padding bytes, so repeated round-trips are
// deterministic.
func (f Format) putRaw(raw uint64, dst []byte) {
	for i := 0; i < f.Storage; i++ {
		dst[i] = 0
	}
	nb := f.Bits / 8
	if f.Order == BigEndian {
		off := f.Storage - nb
		for i := 0; i < nb; i++ {
			dst[off+i] = byte(raw >> (8 * (nb - 1 - i)))
		}
		return
	}
	for i := 0; i < nb; i++ {
		dst[i] = byte(raw >> (8 * i))
	}
}

// DecodeUint reads an unsigned integer sample from raw, which must be
// at least Storage bytes long. Padding bytes are ignored.
func DecodeUint(f Format, raw []byte) uint64 {
	sig := f.significant(raw)
	var v uint64
	if f.Order == BigEndian {
		for _, b := range sig {
			v = v<<8 | uint64(b)
		}
		return v
	}
	for i := len(sig) - 1; i >= 0; i-- {
		v = v<<8 | uint64(sig[i])
	}
	return v
}

// DecodeInt reads a signed integer sample from raw, sign-extending
// from the format's bit depth. The returned value is the raw sample
// value at its natural width, e.g. a 24-bit sample stays within
// [-8388608, 8388607].
func DecodeInt(f Format, raw []byte) int64 {
	v := DecodeUint(f, raw)
	if f.Bits < 64 && v&(1<<(f.Bits-1)) != 0 {
		v |= ^uint64(0) << f.Bits
	}
	return int64(v)
}

// EncodeUint writes an unsigned integer sample into dst, which must
// be at least Storage bytes long. Values above the format's maximum
// saturate; they never wrap.
func EncodeUint(f Format, v uint64, dst []byte) {
	if f.Bits < 64 {
		if max := uint64(1)<<f.Bits - 1; v > max {
			v = max
		}
	}
	f.putRaw(v, dst)
}

// EncodeInt writes a signed integer sample into dst. Values outside
// the format's representable range saturate; they never wrap.
func EncodeInt(f Format, v int64, dst []byte) {
	if f.Bits < 64 {
		if max := int64(1)<<(f.Bits-1) - 1; v > max {
			v = max
		}
		if min := int64(-1) << (f.Bits - 1); v < min {
			v = min
		}
	}
	f.putRaw(uint64(v), dst)
}

// DecodeFloat reads a sample from raw and returns it as a normalized
// float. Signed integers map their full range onto [-1.0, 1.0),
// unsigned integers are offset to the signed range first, and float
// formats pass through unchanged.
func DecodeFloat(f Format, raw []byte) float64 {
	switch f.Kind {
	case Float:
		bits := DecodeUint(f, raw)
		if f.Bits == 32 {
			return float64(math.Float32frombits(uint32(bits)))
		}
		return math.Float64frombits(bits)
	case UnsignedInt:
		return UintToFloat(DecodeUint(f, raw), f.Bits)
	default:
		return IntToFloat(DecodeInt(f, raw), f.Bits)
	}
}

// EncodeFloat writes a normalized float sample into dst. Integer
// formats round to nearest and saturate at their limits; the returned
// flag reports whether the value was clipped. Float formats narrow
// with standard rounding and never clip.
func EncodeFloat(f Format, v float64, dst []byte) bool {
	switch f.Kind {
	case Float:
		if f.Bits == 32 {
			f.putRaw(uint64(math.Float32bits(float32(v))), dst)
		} else {
			f.putRaw(math.Float64bits(v), dst)
		}
		return false
	case UnsignedInt:
		u, clipped := FloatToUint(v, f.Bits)
		f.putRaw(u, dst)
		return clipped
	default:
		i, clipped := FloatToInt(v, f.Bits)
		f.putRaw(uint64(i), dst)
		return clipped
	}
}
