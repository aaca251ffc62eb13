package hack

import (
	"strings"
	"unicode"
)

// line is a cleaned line of hack assembly. Num is the 1-based line number in the source it was
// taken from and is only used when reporting malformed instructions.
type line struct {
	Num  int
	Text string
}

// normalize strips comments and whitespace from src and drops lines that end up empty. The
// remaining lines keep their relative order.
func normalize(src string) []line {
	var lines []line
	for i, raw := range strings.Split(src, "\n") {
		command, _, _ := strings.Cut(raw, "//")
		command = strings.Map(dropSpace, command)

		if len(command) == 0 {
			continue
		}
		lines = append(lines, line{Num: i + 1, Text: command})
	}
	return lines
}

func dropSpace(r rune) rune {
	if unicode.IsSpace(r) {
		return -1
	}
	return r
}
