// ABOUTME: Sample format descriptors
// ABOUTME: Defines bit depth, byte order, storage width and numeric kind
package sample

import "fmt"

// Kind is the numeric interpretation of a sample's bits.
type Kind int

const (
	// SignedInt samples are two's-complement integers.
	SignedInt Kind = iota
	// UnsignedInt samples are offset-binary integers; the midpoint of
	// the range is silence.
	UnsignedInt
	// Float samples are IEEE 754 values, nominally in [-1.0, 1.0].
	Float
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case SignedInt:
		return "signed"
	case UnsignedInt:
		return "unsigned"
	case Float:
		return "float"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ByteOrder is the byte ordering of a stored sample.
type ByteOrder int

const (
	LittleEndian ByteOrder = iota
	BigEndian
)

// String returns the byte order name.
func (o ByteOrder) String() string {
	if o == BigEndian {
		return "BE"
	}
	return "LE"
}

// Format describes the physical encoding of one sample.
//
// Bits is the number of significant bits, Storage the number of bytes
// each sample occupies. When Storage exceeds Bits/8 the extra bytes
// are padding: ignored on decode, written as zero on encode. Padding
// sits after the significant bytes for little-endian formats and
// before them for big-endian formats, so the significant bytes always
// hold the least significant end of the value.
type Format struct {
	Bits    int
	Order   ByteOrder
	Storage int
	Kind    Kind
}

// Standard formats. S24LE/S24BE are packed 3-byte variants, S24LE4
// and S24BE4 store 24 bits padded to 4 bytes.
var (
	S8     = Format{Bits: 8, Order: LittleEndian, Storage: 1, Kind: SignedInt}
	U8     = Format{Bits: 8, Order: LittleEndian, Storage: 1, Kind: UnsignedInt}
	S16LE  = Format{Bits: 16, Order: LittleEndian, Storage: 2, Kind: SignedInt}
	S16BE  = Format{Bits: 16, Order: BigEndian, Storage: 2, Kind: SignedInt}
	U16LE  = Format{Bits: 16, Order: LittleEndian, Storage: 2, Kind: UnsignedInt}
	U16BE  = Format{Bits: 16, Order: BigEndian, Storage: 2, Kind: UnsignedInt}
	S24LE  = Format{Bits: 24, Order: LittleEndian, Storage: 3, Kind: SignedInt}
	S24BE  = Format{Bits: 24, Order: BigEndian, Storage: 3, Kind: SignedInt}
	S24LE4 = Format{Bits: 24, Order: LittleEndian, Storage: 4, Kind: SignedInt}
	S24BE4 = Format{Bits: 24, Order: BigEndian, Storage: 4, Kind: SignedInt}
	U24LE  = Format{Bits: 24, Order: LittleEndian, Storage: 3, Kind: UnsignedInt}
	U24BE  = Format{Bits: 24, Order: BigEndian, Storage: 3, Kind: UnsignedInt}
	S32LE  = Format{Bits: 32, Order: LittleEndian, Storage: 4, Kind: SignedInt}
	S32BE  = Format{Bits: 32, Order: BigEndian, Storage: 4, Kind: SignedInt}
	U32LE  = Format{Bits: 32, Order: LittleEndian, Storage: 4, Kind: UnsignedInt}
	U32BE  = Format{Bits: 32, Order: BigEndian, Storage: 4, Kind: UnsignedInt}
	S64LE  = Format{Bits: 64, Order: LittleEndian, Storage: 8, Kind: SignedInt}
	S64BE  = Format{Bits: 64, Order: BigEndian, Storage: 8, Kind: SignedInt}
	U64LE  = Format{Bits: 64, Order: LittleEndian, Storage: 8, Kind: UnsignedInt}
	U64BE  = Format{Bits: 64, Order: BigEndian, Storage: 8, Kind: UnsignedInt}
	F32LE  = Format{Bits: 32, Order: LittleEndian, Storage: 4, Kind: Float}
	F32BE  = Format{Bits: 32, Order: BigEndian, Storage: 4, Kind: Float}
	F64LE  = Format{Bits: 64, Order: LittleEndian, Storage: 8, Kind: Float}
	F64BE  = Format{Bits: 64, Order: BigEndian, Storage: 8, Kind: Float}
)

// Validate checks the format invariants: a supported bit depth, a
// storage width that can hold the significant bits, and for float
// kinds an IEEE width stored without padding.
func (f Format) Validate() error {
	switch f.Bits {
	case 8, 16, 24, 32, 64:
	default:
		return fmt.Errorf("unsupported bit depth %d (supported: 8, 16, 24, 32, 64)", f.Bits)
	}
	if f.Storage < 1 || f.Storage > 8 {
		return fmt.Errorf("storage width %d bytes out of range", f.Storage)
	}
	if f.Storage*8 < f.Bits {
		return fmt.Errorf("storage width %d bytes cannot hold %d bits", f.Storage, f.Bits)
	}
	if f.Kind == Float {
		if f.Bits != 32 && f.Bits != 64 {
			return fmt.Errorf("unsupported float bit depth %d (supported: 32, 64)", f.Bits)
		}
		if f.Storage != f.Bits/8 {
			return fmt.Errorf("float samples must be stored without padding, got %d bytes for %d bits", f.Storage, f.Bits)
		}
	}
	return nil
}

// String returns a name like "S24LE" or "S24LE(4 bytes)".
func (f Format) String() string {
	prefix := "S"
	switch f.Kind {
	case UnsignedInt:
		prefix = "U"
	case Float:
		prefix = "F"
	}
	name := fmt.Sprintf("%s%d%s", prefix, f.Bits, f.Order)
	if f.Storage != f.Bits/8 {
		name += fmt.Sprintf("(%d bytes)", f.Storage)
	}
	return name
}
