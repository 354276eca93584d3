// ABOUTME: Bubbletea model for the level meter display
// ABOUTME: Renders per-channel RMS and peak bars with lipgloss
package main

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/harperreed/audioadapter-go/pkg/sample"
)

// windowsPerSecond is the metering rate: each window covers 1/20 s.
const windowsPerSecond = 20

const barWidth = 40
const floorDB = -60.0

type channelLevel struct {
	RMS  float64
	Peak float64
}

type levelsMsg []channelLevel

type doneMsg struct{}

type meterModel struct {
	file    string
	format  sample.Format
	levels  []channelLevel
	windows int
	done    bool
}

func newMeterModel(file string, channels int, format sample.Format) meterModel {
	return meterModel{
		file:   file,
		format: format,
		levels: make([]channelLevel, channels),
	}
}

func (m meterModel) Init() tea.Cmd {
	return nil
}

func (m meterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	case levelsMsg:
		m.levels = msg
		m.windows++
		return m, nil
	case doneMsg:
		m.done = true
		return m, nil
	}
	return m, nil
}

func (m meterModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205"))

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("86"))

	dimStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("250"))

	var b strings.Builder

	b.WriteString(titleStyle.Render("Level Meter"))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("File:   %s", m.file)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Format: %s", m.format)))
	b.WriteString("\n\n")

	for c, lvl := range m.levels {
		b.WriteString(labelStyle.Render(fmt.Sprintf("ch %d", c)))
		b.WriteString("  ")
		b.WriteString(renderBar(lvl.RMS, lvl.Peak))
		b.WriteString(fmt.Sprintf("  %6.1f dB", toDB(lvl.RMS)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.done {
		b.WriteString(dimStyle.Render("End of file. Press q to quit."))
	} else {
		b.WriteString(dimStyle.Render(fmt.Sprintf("%.1f s metered. Press q to quit.", float64(m.windows)/windowsPerSecond)))
	}
	b.WriteString("\n")

	return b.String()
}

// renderBar draws an RMS bar with a peak marker on a fixed dB scale
// from floorDB to 0.
func renderBar(rms, peak float64) string {
	barStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	peakStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("220"))

	filled := barCells(rms)
	peakCell := barCells(peak)

	var b strings.Builder
	b.WriteString("[")
	for i := 0; i < barWidth; i++ {
		switch {
		case i == peakCell-1 && peakCell > filled:
			b.WriteString(peakStyle.Render("|"))
		case i < filled:
			b.WriteString(barStyle.Render("="))
		default:
			b.WriteString(" ")
		}
	}
	b.WriteString("]")
	return b.String()
}

func barCells(level float64) int {
	db := toDB(level)
	if db <= floorDB {
		return 0
	}
	cells := int(math.Round((db - floorDB) / -floorDB * barWidth))
	if cells > barWidth {
		cells = barWidth
	}
	return cells
}

func toDB(level float64) float64 {
	if level <= 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(level)
}
