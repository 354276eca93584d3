// ABOUTME: Tests for format descriptors
// ABOUTME: Covers validation rules and format names
package sample

import "testing"

func TestValidateStandardFormats(t *testing.T) {
	formats := []Format{
		S8, U8, S16LE, S16BE, U16LE, U16BE,
		S24LE, S24BE, S24LE4, S24BE4, U24LE, U24BE,
		S32LE, S32BE, U32LE, U32BE, S64LE, S64BE, U64LE, U64BE,
		F32LE, F32BE, F64LE, F64BE,
	}
	for _, f := range formats {
		if err := f.Validate(); err != nil {
			t.Errorf("%v: unexpected validation error: %v", f, err)
		}
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		format Format
	}{
		{"unsupported bits", Format{Bits: 12, Order: LittleEndian, Storage: 2, Kind: SignedInt}},
		{"storage too small", Format{Bits: 24, Order: LittleEndian, Storage: 2, Kind: SignedInt}},
		{"zero storage", Format{Bits: 8, Order: LittleEndian, Storage: 0, Kind: SignedInt}},
		{"storage too large", Format{Bits: 8, Order: LittleEndian, Storage: 9, Kind: SignedInt}},
		{"float 24", Format{Bits: 24, Order: LittleEndian, Storage: 3, Kind: Float}},
		{"padded float", Format{Bits: 32, Order: LittleEndian, Storage: 8, Kind: Float}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.format.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestFormatString(t *testing.T) {
	tests := []struct {
		format   Format
		expected string
	}{
		{S16LE, "S16LE"},
		{S24BE, "S24BE"},
		{S24LE4, "S24LE(4 bytes)"},
		{U8, "U8LE"},
		{F64BE, "F64BE"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.expected {
			t.Errorf("expected %q, got %q", tt.expected, got)
		}
	}
}
