// ABOUTME: Single-sample stream readers and writers
// ABOUTME: Thin io.Reader/io.Writer callers into the conversion engine
package sampleio

import (
	"io"

	"github.com/harperreed/audioadapter-go/pkg/sample"
)

// ReadInt reads one encoded sample from r and returns its raw signed
// integer value. The format must be valid per Format.Validate.
func ReadInt(r io.Reader, f sample.Format) (int64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:f.Storage]); err != nil {
		return 0, err
	}
	return sample.DecodeInt(f, buf[:f.Storage]), nil
}

// ReadUint reads one encoded sample from r and returns its raw
// unsigned integer value.
func ReadUint(r io.Reader, f sample.Format) (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:f.Storage]); err != nil {
		return 0, err
	}
	return sample.DecodeUint(f, buf[:f.Storage]), nil
}

// ReadFloat reads one encoded sample from r and returns it as a
// normalized float.
func ReadFloat(r io.Reader, f sample.Format) (float64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:f.Storage]); err != nil {
		return 0, err
	}
	return sample.DecodeFloat(f, buf[:f.Storage]), nil
}

// WriteInt encodes one sample and writes it to w. Out-of-range
// values saturate at the format's limits.
func WriteInt(w io.Writer, f sample.Format, v int64) error {
	var buf [8]byte
	sample.EncodeInt(f, v, buf[:f.Storage])
	_, err := w.Write(buf[:f.Storage])
	return err
}

// WriteUint encodes one unsigned sample and writes it to w.
func WriteUint(w io.Writer, f sample.Format, v uint64) error {
	var buf [8]byte
	sample.EncodeUint(f, v, buf[:f.Storage])
	_, err := w.Write(buf[:f.Storage])
	return err
}

// WriteFloat encodes one normalized float sample and writes it to w,
// reporting whether the value was clipped during conversion.
func WriteFloat(w io.Writer, f sample.Format, v float64) (bool, error) {
	var buf [8]byte
	clipped := sample.EncodeFloat(f, v, buf[:f.Storage])
	_, err := w.Write(buf[:f.Storage])
	return clipped, err
}

// ReadInts fills dst with consecutive samples from r. It fails with
// io.ErrUnexpectedEOF if the stream ends mid-way.
func ReadInts(r io.Reader, f sample.Format, dst []int64) error {
	for i := range dst {
		v, err := ReadInt(r, f)
		if err != nil {
			return err
		}
		dst[i] = v
	}
	return nil
}

// ReadFloats fills dst with consecutive normalized samples from r.
func ReadFloats(r io.Reader, f sample.Format, dst []float64) error {
	for i := range dst {
		v, err := ReadFloat(r, f)
		if err != nil {
			return err
		}
		dst[i] = v
	}
	return nil
}

// WriteInts writes all samples in src to w.
func WriteInts(w io.Writer, f sample.Format, src []int64) error {
	for _, v := range src {
		if err := WriteInt(w, f, v); err != nil {
			return err
		}
	}
	return nil
}

// WriteFloats writes all samples in src to w and returns how many of
// them were clipped during conversion.
func WriteFloats(w io.Writer, f sample.Format, src []float64) (int, error) {
	clipped := 0
	for _, v := range src {
		c, err := WriteFloat(w, f, v)
		if err != nil {
			return clipped, err
		}
		if c {
			clipped++
		}
	}
	return clipped, nil
}
