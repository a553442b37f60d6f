package ui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Table renders rows under headers. Columns listed in rightAlign are
// right-aligned (numeric columns such as prices and counts).
func (u *UI) Table(headers []string, rows [][]string, rightAlign ...int) string {
	right := make(map[int]bool, len(rightAlign))
	for _, c := range rightAlign {
		right[c] = true
	}

	if !u.shouldStyle() {
		return plainTable(headers, rows, right)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleTableBorder).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			var s lipgloss.Style
			switch {
			case row == table.HeaderRow:
				s = StyleTableHeader
			case row%2 == 1:
				s = StyleTableOdd
			default:
				s = StyleTableCell
			}
			if right[col] {
				s = s.Align(lipgloss.Right)
			}
			return s
		})

	return t.String()
}

// plainTable renders a fixed-width text table for non-TTY output
func plainTable(headers []string, rows [][]string, right map[int]bool) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			if w := utf8.RuneCountInString(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var sb strings.Builder
	writeRow := func(cells []string) {
		parts := make([]string, len(widths))
		for i := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			pad := strings.Repeat(" ", widths[i]-utf8.RuneCountInString(cell))
			if right[i] {
				parts[i] = pad + cell
			} else {
				parts[i] = cell + pad
			}
		}
		sb.WriteString(strings.TrimRight(strings.Join(parts, "  "), " "))
		sb.WriteString("\n")
	}

	writeRow(headers)
	rules := make([]string, len(widths))
	for i, w := range widths {
		rules[i] = strings.Repeat("-", w)
	}
	writeRow(rules)
	for _, row := range rows {
		writeRow(row)
	}
	sb.WriteString(fmt.Sprintf("(%d rows)", len(rows)))
	return sb.String()
}
