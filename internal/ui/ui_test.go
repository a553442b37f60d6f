package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainOutput(t *testing.T) {
	u := Plain()

	assert.Equal(t, "=== Flight Analytics ===", u.Header("Flight Analytics"))
	assert.Equal(t, "[OK] done", u.Success("done"))
	assert.Equal(t, "[FAILED] boom", u.Error("boom"))
	assert.Equal(t, "[WARN] careful", u.Warning("careful"))
	assert.Equal(t, "Total Cities:  10", u.KeyValue("Total Cities", "10"))
}

func TestSummaryBoxPlain(t *testing.T) {
	out := Plain().SummaryBox("Dashboard", []KV{
		{Key: "Total Airlines", Value: "12"},
		{Key: "Average Daily Flights", Value: "0.00"},
	})

	assert.Contains(t, out, "=== Dashboard ===")
	assert.Contains(t, out, "Total Airlines:")
	assert.Contains(t, out, "Average Daily Flights:   0.00")
}

func TestTablePlain(t *testing.T) {
	out := Plain().Table(
		[]string{"Airline", "Price (₹)"},
		[][]string{{"IndiGo", "₹200"}, {"Air India", "₹5,000"}},
		1,
	)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Airline    Price (₹)", lines[0])
	assert.Equal(t, "---------  ---------", lines[1])
	assert.Equal(t, "IndiGo          ₹200", lines[2])
	assert.Equal(t, "Air India     ₹5,000", lines[3])
	assert.Equal(t, "(2 rows)", lines[4])
}

func TestTableStyledContainsCells(t *testing.T) {
	u := &UI{IsTTY: true, Width: 80}

	out := u.Table([]string{"City", "Count"}, [][]string{{"Delhi", "9"}}, 1)

	assert.Contains(t, out, "City")
	assert.Contains(t, out, "Delhi")
	assert.Contains(t, out, "9")
}

func TestBarChartPlain(t *testing.T) {
	out := Plain().BarChart("Busiest Airports", []Bar{
		{Label: "Delhi", Value: 10},
		{Label: "Cochin", Value: 5, Note: "(50.00%)"},
		{Label: "Goa", Value: 0},
	})

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Busiest Airports", lines[0])
	assert.Equal(t, "  Delhi  "+strings.Repeat("#", 30)+" 10", lines[1])
	assert.Equal(t, "  Cochin "+strings.Repeat("#", 15)+strings.Repeat(" ", 15)+" 5 (50.00%)", lines[2])
	assert.Equal(t, "  Goa    "+strings.Repeat(" ", 30)+" 0", lines[3])
}

func TestBarChartEmpty(t *testing.T) {
	out := Plain().BarChart("Daily Flight Trends", nil)
	assert.Contains(t, out, "(no data)")
}

func TestBarFraction(t *testing.T) {
	assert.Zero(t, barFraction(5, 0))
	assert.Zero(t, barFraction(-1, 10))
	assert.Equal(t, 0.5, barFraction(5, 10))
	assert.Equal(t, 1.0, barFraction(20, 10))
}

func TestSpinnerPlain(t *testing.T) {
	var buf bytes.Buffer
	s := Plain().NewSpinnerTo(&buf, "Connecting to database")

	s.Start()
	s.Success("connected!")
	// A second stop is a no-op
	s.Error("ignored")

	assert.Equal(t, "Connecting to database... connected!\n", buf.String())
}

func TestSpinnerNotStarted(t *testing.T) {
	var buf bytes.Buffer
	s := Plain().NewSpinnerTo(&buf, "Connecting")

	s.Error("never started")

	assert.Empty(t, buf.String())
}
