package hack

import (
	"fmt"
	"sort"
	"strings"
)

// MalformedInstructionError describes an instruction that cannot be encoded as written. It is only
// returned when assembling in strict mode.
type MalformedInstructionError struct {
	Line   int    // line number in the source
	Text   string // instruction without comments and whitespace
	Reason string
}

func (e *MalformedInstructionError) Error() string {
	return fmt.Sprintf("line %d: malformed instruction %q: %s", e.Line, e.Text, e.Reason)
}

// ErrorList is a list of malformed instructions in source order.
type ErrorList []*MalformedInstructionError

func (l ErrorList) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d malformed instructions:", len(l))
	for _, e := range l {
		b.WriteString("\n\t")
		b.WriteString(e.Error())
	}
	return b.String()
}

// Sort sorts the list by line number. Errors on the same line keep their order.
func (l ErrorList) Sort() {
	sort.SliceStable(l, func(i, j int) bool {
		return l[i].Line < l[j].Line
	})
}

// Err returns an error equivalent to this list, or nil if the list is empty.
func (l ErrorList) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}
