package report

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const columnGap = 2

// table lays rows out in fixed-width, left-aligned columns sized to the widest cell.
func table(headers []string, rows [][]string, s styles) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, tableLine(headers, widths, s.header))
	for _, row := range rows {
		lines = append(lines, tableLine(row, widths, s.cell))
	}

	return strings.Join(lines, "\n")
}

func tableLine(cells []string, widths []int, style lipgloss.Style) string {
	parts := make([]string, 0, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		if i < len(widths)-1 {
			width += columnGap
		}
		parts = append(parts, style.Width(width).Render(cell))
	}

	return strings.TrimRight(lipgloss.JoinHorizontal(lipgloss.Top, parts...), " ")
}
