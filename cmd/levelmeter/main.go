// ABOUTME: Entry point for the PCM level meter
// ABOUTME: Parses flags and feeds file windows to the meter TUI
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/harperreed/audioadapter-go/pkg/adapter"
	"github.com/harperreed/audioadapter-go/pkg/layout"
	"github.com/harperreed/audioadapter-go/pkg/sample"
)

var (
	filePath   = flag.String("file", "", "Raw PCM file to meter")
	channels   = flag.Int("channels", 2, "Number of channels")
	rate       = flag.Int("rate", 44100, "Sample rate in Hz")
	formatName = flag.String("format", "s16le", "Sample format (s16le, s16be, s24le, s24le4, s32le, f32le, f64le, u8)")
	layoutName = flag.String("layout", "interleaved", "Buffer layout (interleaved, sequential)")
)

var formats = map[string]sample.Format{
	"u8":     sample.U8,
	"s16le":  sample.S16LE,
	"s16be":  sample.S16BE,
	"s24le":  sample.S24LE,
	"s24le4": sample.S24LE4,
	"s24be":  sample.S24BE,
	"s32le":  sample.S32LE,
	"f32le":  sample.F32LE,
	"f64le":  sample.F64LE,
}

func main() {
	flag.Parse()

	if *filePath == "" {
		fmt.Fprintln(os.Stderr, "usage: levelmeter -file <raw pcm file> [-channels N] [-rate N] [-format s16le]")
		os.Exit(1)
	}

	format, ok := formats[strings.ToLower(*formatName)]
	if !ok {
		log.Fatalf("Unknown sample format: %s", *formatName)
	}

	var lay layout.Layout
	switch strings.ToLower(*layoutName) {
	case "interleaved":
		lay = layout.Interleaved
	case "sequential":
		lay = layout.Sequential
	default:
		log.Fatalf("Unknown layout: %s", *layoutName)
	}

	f, err := os.Open(*filePath)
	if err != nil {
		log.Fatalf("Failed to open file: %v", err)
	}
	defer func() { _ = f.Close() }()

	p := tea.NewProgram(newMeterModel(*filePath, *channels, format))

	// Feed the TUI one window of levels per tick, pacing playback in
	// real time.
	go func() {
		window := *rate / windowsPerSecond
		buf := make([]byte, *channels*window*format.Storage)
		ticker := time.NewTicker(time.Second / windowsPerSecond)
		defer ticker.Stop()

		for range ticker.C {
			n, err := io.ReadFull(f, buf)
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				// Meter whatever full frames are left, then stop.
				frames := n / (*channels * format.Storage)
				if frames > 0 {
					if levels, err := meterWindow(buf[:frames**channels*format.Storage], *channels, frames, lay, format); err == nil {
						p.Send(levelsMsg(levels))
					}
				}
				p.Send(doneMsg{})
				return
			}
			if err != nil {
				log.Printf("Read error: %v", err)
				p.Send(doneMsg{})
				return
			}
			levels, err := meterWindow(buf, *channels, window, lay, format)
			if err != nil {
				log.Printf("Meter error: %v", err)
				p.Send(doneMsg{})
				return
			}
			p.Send(levelsMsg(levels))
		}
	}()

	if _, err := p.Run(); err != nil {
		log.Fatalf("TUI error: %v", err)
	}
}

// meterWindow wraps one window of raw bytes and computes per-channel
// RMS and peak on the normalized samples.
func meterWindow(raw []byte, channels, frames int, lay layout.Layout, format sample.Format) ([]channelLevel, error) {
	buf, err := adapter.NewBytes[float64](raw, channels, frames, lay, format)
	if err != nil {
		return nil, err
	}

	levels := make([]channelLevel, channels)
	for c := 0; c < channels; c++ {
		rms, err := adapter.ChannelRMS[float64](buf, c)
		if err != nil {
			return nil, err
		}
		lo, hi, err := adapter.ChannelMinMax[float64](buf, c)
		if err != nil {
			return nil, err
		}
		peak := hi
		if -lo > peak {
			peak = -lo
		}
		levels[c] = channelLevel{RMS: rms, Peak: peak}
	}
	return levels, nil
}
