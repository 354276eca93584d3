// ABOUTME: Tests for the Slice adapter
// ABOUTME: Covers construction, access, iterators and bounds errors
package adapter

import (
	"errors"
	"testing"

	"github.com/harperreed/audioadapter-go/pkg/layout"
)

func TestNewSliceSizeCheck(t *testing.T) {
	tests := []struct {
		name     string
		length   int
		channels int
		frames   int
		wantErr  bool
	}{
		{"exact", 6, 2, 3, false},
		{"too short", 5, 2, 3, true},
		{"too long", 7, 2, 3, true},
		{"empty dims", 0, 0, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]int32, tt.length)
			_, err := NewSlice(buf, tt.channels, tt.frames, layout.Interleaved)
			if tt.wantErr {
				var sizeErr *InvalidBufferSizeError
				if !errors.As(err, &sizeErr) {
					t.Fatalf("expected InvalidBufferSizeError, got %v", err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestSliceReadSample(t *testing.T) {
	data := []int32{1, 2, 3, 4, 5, 6}

	inter, err := NewSlice(data, 2, 3, layout.Interleaved)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seq, err := NewSlice(data, 2, 3, layout.Sequential)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Interleaved: frames are [1 2] [3 4] [5 6].
	if v, _ := inter.ReadSample(0, 1); v != 3 {
		t.Errorf("interleaved (0,1): expected 3, got %d", v)
	}
	if v, _ := inter.ReadSample(1, 2); v != 6 {
		t.Errorf("interleaved (1,2): expected 6, got %d", v)
	}
	// Sequential: channels are [1 2 3] [4 5 6].
	if v, _ := seq.ReadSample(0, 1); v != 2 {
		t.Errorf("sequential (0,1): expected 2, got %d", v)
	}
	if v, _ := seq.ReadSample(1, 2); v != 6 {
		t.Errorf("sequential (1,2): expected 6, got %d", v)
	}
}

func TestSliceBounds(t *testing.T) {
	buf, err := NewSlice(make([]int16, 6), 2, 3, layout.Interleaved)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := buf.ReadSample(0, 0); err != nil {
		t.Errorf("(0,0) should succeed, got %v", err)
	}
	for _, pos := range [][2]int{{2, 0}, {0, 3}, {-1, 0}, {0, -1}} {
		_, err := buf.ReadSample(pos[0], pos[1])
		var oob *OutOfBoundsError
		if !errors.As(err, &oob) {
			t.Errorf("(%d,%d): expected OutOfBoundsError, got %v", pos[0], pos[1], err)
		}
		if werr := buf.WriteSample(pos[0], pos[1], 1); !errors.As(werr, &oob) {
			t.Errorf("write (%d,%d): expected OutOfBoundsError, got %v", pos[0], pos[1], werr)
		}
	}
}

func TestSliceWriteSample(t *testing.T) {
	data := make([]float32, 6)
	buf, err := NewSlice(data, 2, 3, layout.Sequential)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := buf.WriteSample(1, 0, 0.5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data[3] != 0.5 {
		t.Errorf("expected write at linear index 3, got %v", data)
	}
}

func TestSliceSamplePointer(t *testing.T) {
	data := []int32{1, 2, 3, 4, 5, 6}
	buf, err := NewSlice(data, 2, 3, layout.Interleaved)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p, err := buf.Sample(1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *p != 4 {
		t.Errorf("expected 4, got %d", *p)
	}
	*p = 40
	if data[3] != 40 {
		t.Errorf("pointer write should reach the backing slice, got %v", data)
	}

	if _, err := buf.Sample(2, 0); err == nil {
		t.Error("expected error for channel out of range")
	}
}

func TestSliceIterators(t *testing.T) {
	data := []int32{1, 2, 3, 4, 5, 6}
	buf, err := NewSlice(data, 2, 3, layout.Interleaved)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ch, err := buf.ChannelSamples(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got []int32
	for v := range ch {
		got = append(got, v)
	}
	want := []int32{2, 4, 6}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}

	// The sequence must restart on a second range.
	count := 0
	for range ch {
		count++
	}
	if count != 3 {
		t.Errorf("expected restartable sequence of 3, got %d", count)
	}

	fr, err := buf.FrameSamples(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got = got[:0]
	for v := range fr {
		got = append(got, v)
	}
	if len(got) != 2 || got[0] != 5 || got[1] != 6 {
		t.Errorf("expected [5 6], got %v", got)
	}

	if _, err := buf.ChannelSamples(5); err == nil {
		t.Error("expected error for channel out of range")
	}
	if _, err := buf.FrameSamples(-1); err == nil {
		t.Error("expected error for frame out of range")
	}
}

func TestSliceEmptyBuffer(t *testing.T) {
	buf, err := NewSlice([]int16{}, 0, 5, layout.Sequential)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := buf.ReadSample(0, 0); err == nil {
		t.Error("expected error reading from empty buffer")
	}
}
