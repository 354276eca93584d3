// ABOUTME: Tests for numeric scaling helpers
// ABOUTME: Covers normalization, saturation limits and depth rescaling
package sample

import (
	"math"
	"testing"
)

func TestIntToFloat(t *testing.T) {
	tests := []struct {
		name     string
		value    int64
		bits     int
		expected float64
	}{
		{"zero", 0, 16, 0},
		{"min 16", -32768, 16, -1.0},
		{"max 16", 32767, 16, 32767.0 / 32768.0},
		{"min 8", -128, 8, -1.0},
		{"max 8", 127, 8, 127.0 / 128.0},
		{"half 24", -4194304, 24, -0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IntToFloat(tt.value, tt.bits); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestFloatToIntSaturation(t *testing.T) {
	// A float above +1.0 must give exactly 2^(N-1)-1, below -1.0
	// exactly -2^(N-1).
	for _, bits := range []int{8, 16, 24, 32, 64} {
		v, clipped := FloatToInt(2.0, bits)
		if v != MaxInt(bits) || !clipped {
			t.Errorf("bits %d: expected (%d, true), got (%d, %v)", bits, MaxInt(bits), v, clipped)
		}
		v, clipped = FloatToInt(-2.0, bits)
		if v != MinInt(bits) || !clipped {
			t.Errorf("bits %d: expected (%d, true), got (%d, %v)", bits, MinInt(bits), v, clipped)
		}
	}
}

func TestFloatToIntRounding(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		bits     int
		expected int64
	}{
		{"rounds down", 100.4 / 32768.0, 16, 100},
		{"rounds up", 100.6 / 32768.0, 16, 101},
		{"negative exact", -1.0, 16, -32768},
		{"tiny", 0.4 / 32768.0, 16, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, clipped := FloatToInt(tt.value, tt.bits)
			if clipped {
				t.Error("unexpected clipping")
			}
			if got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestFloatToUint(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		bits     int
		expected uint64
		clipped  bool
	}{
		{"midpoint", 0, 8, 128, false},
		{"min", -1.0, 8, 0, false},
		{"max in range", 127.0 / 128.0, 8, 255, false},
		{"over", 1.5, 8, 255, true},
		{"under", -1.5, 8, 0, true},
		{"over 16", 2.0, 16, 65535, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, clipped := FloatToUint(tt.value, tt.bits)
			if got != tt.expected || clipped != tt.clipped {
				t.Errorf("expected (%d, %v), got (%d, %v)", tt.expected, tt.clipped, got, clipped)
			}
		})
	}
}

func TestUintToFloatInverse(t *testing.T) {
	for _, bits := range []int{8, 16, 24} {
		max := uint64(1)<<bits - 1
		for _, v := range []uint64{0, 1, max / 2, max/2 + 1, max} {
			f := UintToFloat(v, bits)
			got, clipped := FloatToUint(f, bits)
			if clipped || got != v {
				t.Errorf("bits %d: value %d round-tripped to %d (clipped %v)", bits, v, got, clipped)
			}
		}
	}
}

func TestFloatToIntNaN(t *testing.T) {
	v, clipped := FloatToInt(math.NaN(), 16)
	if v != 0 || !clipped {
		t.Errorf("expected (0, true), got (%d, %v)", v, clipped)
	}
}

func TestRescale(t *testing.T) {
	tests := []struct {
		name     string
		value    int64
		from     int
		to       int
		expected int64
	}{
		{"widen 16 to 24", 1, 16, 24, 256},
		{"widen preserves sign", -32768, 16, 24, -8388608},
		{"narrow 24 to 16", 8388607, 24, 16, 32767},
		{"narrow 16 to 8", -32768, 16, 8, -128},
		{"same width", 1234, 16, 16, 1234},
		{"not a truncation", 0x1234, 16, 8, 0x12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Rescale(tt.value, tt.from, tt.to); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}
