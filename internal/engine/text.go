package engine

import "strings"

// WrapText inserts soft line breaks so each line fits within width columns.
// Words longer than the width are left intact on their own line.
func WrapText(text string, width int) string {
	if width <= 0 {
		return text
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	current := 0
	for _, word := range words {
		n := len([]rune(word))
		switch {
		case current == 0:
			b.WriteString(word)
			current = n
		case current+1+n > width:
			b.WriteByte('\n')
			b.WriteString(word)
			current = n
		default:
			b.WriteByte(' ')
			b.WriteString(word)
			current += 1 + n
		}
	}
	return b.String()
}
