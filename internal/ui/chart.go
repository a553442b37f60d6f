package ui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Bar is one labelled value in a bar chart.
type Bar struct {
	Label string
	Value int64
	// Note is appended after the value, e.g. a percentage
	Note string
}

// chartBarWidth is the width of the longest bar
const chartBarWidth = 30

// BarChart renders horizontal bars scaled to the largest value.
// Bars are drawn in the given order.
func (u *UI) BarChart(title string, bars []Bar) string {
	var sb strings.Builder
	if title != "" {
		sb.WriteString(u.Bold(title))
		sb.WriteString("\n")
	}
	if len(bars) == 0 {
		sb.WriteString(u.Muted("  (no data)"))
		return sb.String()
	}

	var maxValue int64
	labelWidth := 0
	for _, b := range bars {
		if b.Value > maxValue {
			maxValue = b.Value
		}
		if w := utf8.RuneCountInString(b.Label); w > labelWidth {
			labelWidth = w
		}
	}

	bar := progress.New(
		progress.WithGradient(ChartGradientStart, ChartGradientEnd),
		progress.WithWidth(chartBarWidth),
		progress.WithoutPercentage(),
	)
	labelStyle := lipgloss.NewStyle().Width(labelWidth + 1)

	lines := make([]string, 0, len(bars))
	for _, b := range bars {
		pct := barFraction(b.Value, maxValue)
		value := fmt.Sprintf("%d", b.Value)
		if b.Note != "" {
			value += " " + b.Note
		}

		if !u.shouldStyle() {
			label := b.Label + strings.Repeat(" ", labelWidth-utf8.RuneCountInString(b.Label))
			filled := int(pct*chartBarWidth + 0.5)
			lines = append(lines, fmt.Sprintf("  %s %s%s %s",
				label,
				strings.Repeat("#", filled),
				strings.Repeat(" ", chartBarWidth-filled),
				value,
			))
			continue
		}

		lines = append(lines, fmt.Sprintf("  %s %s %s",
			labelStyle.Render(b.Label),
			bar.ViewAs(pct),
			StyleMuted.Render(value),
		))
	}

	sb.WriteString(strings.Join(lines, "\n"))
	return sb.String()
}

// barFraction returns value/max clamped to [0, 1]
func barFraction(value, max int64) float64 {
	if max <= 0 || value <= 0 {
		return 0
	}
	pct := float64(value) / float64(max)
	if pct > 1 {
		pct = 1
	}
	return pct
}
