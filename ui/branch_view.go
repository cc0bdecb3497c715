package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

type BranchRow struct {
	Prefix string
	Title  string
}

// RenderBranchList writes one "<prefix>\t<title>" line per row.
func RenderBranchList(rows []BranchRow, styles Styles) string {
	var b strings.Builder
	for _, row := range rows {
		b.WriteString(styles.Prefix(row.Prefix))
		b.WriteString("\t")
		b.WriteString(styles.Title(row.Title))
		b.WriteString("\n")
	}
	return b.String()
}

// PickerLabel is the option text shown by the interactive prefix picker.
func PickerLabel(row BranchRow, prefixWidth int, styles Styles) string {
	return PadOrTrim(row.Prefix, prefixWidth) + "  " + styles.Secondary(row.Title)
}

func PadOrTrim(value string, width int) string {
	if width <= 0 {
		return ""
	}
	w := ansi.StringWidth(value)
	if w == width {
		return value
	}
	if w < width {
		return value + strings.Repeat(" ", width-w)
	}
	if width == 1 {
		return ansi.Truncate(value, 1, "")
	}
	return ansi.Truncate(value, width, "…")
}
