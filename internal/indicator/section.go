package indicator

import (
	"strings"
)

// section renders a headed block, or nothing at all when ok is false.
// Empty-backed blocks are omitted entirely rather than shown empty; the
// same rule applies to every optional block in the detail panel.
func section(ok bool, heading string, content func() string) string {
	if !ok {
		return ""
	}
	var b strings.Builder
	b.WriteString(headingStyle.Render(heading))
	b.WriteString("\n")
	b.WriteString(content())
	return b.String()
}

// fieldList renders one "- name" line per field.
func fieldList(fields []string) string {
	var b strings.Builder
	for _, f := range fields {
		b.WriteString("  - ")
		b.WriteString(f)
		b.WriteString("\n")
	}
	return b.String()
}

// bar renders a fixed-width progress bar for a whole percentage.
func bar(pct, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := pct * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
