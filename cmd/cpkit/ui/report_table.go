package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// DetailWidth bounds the free-text column of battery and history reports.
// Output mismatches quote whole verdict streams and would otherwise wrap.
const DetailWidth = 72

// ReportTable renders one row per case (or run) under a caption. Cells in a
// column with a width limit are cut with an ellipsis.
type ReportTable struct {
	caption string
	headers []string
	limits  map[int]int
	rows    [][]string
}

// NewReportTable creates an empty table with the given caption and headers.
func NewReportTable(caption string, headers ...string) *ReportTable {
	return &ReportTable{caption: caption, headers: headers, limits: map[int]int{}}
}

// Limit caps column col at width cells.
func (t *ReportTable) Limit(col, width int) *ReportTable {
	if width > 0 {
		t.limits[col] = width
	}
	return t
}

// AddRow appends a row. Cells beyond the headers are dropped and missing
// cells render empty.
func (t *ReportTable) AddRow(cells ...string) {
	row := make([]string, len(t.headers))
	for i := range row {
		if i >= len(cells) {
			break
		}
		row[i] = cells[i]
		if w, ok := t.limits[i]; ok {
			row[i] = ansi.Truncate(row[i], w, "…")
		}
	}
	t.rows = append(t.rows, row)
}

// Len is the number of rows added.
func (t *ReportTable) Len() int {
	return len(t.rows)
}

// Render lays the table out with styles. An empty table renders as "".
func (t *ReportTable) Render(styles Styles) string {
	if len(t.rows) == 0 {
		return ""
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	var sb strings.Builder
	if t.caption != "" {
		sb.WriteString(styles.Title.Render(t.caption))
		sb.WriteString("\n")
	}

	sep := styles.Rule.Render("|")
	writeRow := func(style lipgloss.Style, cells []string) {
		for i, cell := range cells {
			if i > 0 {
				sb.WriteString(sep)
			}
			// Width includes the one-cell padding on each side.
			sb.WriteString(style.Width(widths[i] + 2).Render(cell))
		}
		sb.WriteString("\n")
	}

	writeRow(styles.Header.Padding(0, 1), t.headers)

	total := len(widths) - 1
	for _, w := range widths {
		total += w + 2
	}
	sb.WriteString(styles.Rule.Render(strings.Repeat("-", total)))
	sb.WriteString("\n")

	cell := styles.Cell.Padding(0, 1)
	for _, row := range t.rows {
		writeRow(cell, row)
	}
	return sb.String()
}
