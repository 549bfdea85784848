// Package static provides non-interactive terminal output components.
package static

import (
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/imqdee/wtree/internal/ui/styles"
)

const columnGap = 2

var (
	headerStyle    = styles.Bold.PaddingRight(columnGap)
	firstColStyle  = styles.PrimaryStyle.PaddingRight(columnGap)
	otherColsStyle = lipgloss.NewStyle().PaddingRight(columnGap)
)

// RenderTable lays rows out under headers in aligned columns without
// borders, ending in a newline. Headers are bold and the first column is
// tinted. No rows renders "".
func RenderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	t := table.New().
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(cellStyle)

	return t.String() + "\n"
}

func cellStyle(row, col int) lipgloss.Style {
	switch {
	case row == table.HeaderRow:
		return headerStyle
	case col == 0:
		return firstColStyle
	default:
		return otherColsStyle
	}
}
