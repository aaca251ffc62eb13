package hack

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	cToComp = invert(compToC)
	dToDest = invert(destToD)
	jToJump = invert(jumpToJ)
)

func invert(m map[string]string) map[string]string {
	inverted := make(map[string]string, len(m))
	for k, v := range m {
		inverted[v] = k
	}
	return inverted
}

// Decode translates a machine code word back into hack assembly. A-instructions decode into
// constants as symbols do not survive assembly. C-instructions decode into dest=comp;jump with
// empty fields omitted.
func Decode(word uint16) (string, error) {
	if word&0x8000 == 0 {
		return "@" + strconv.FormatUint(uint64(word), 10), nil
	}

	bits := fmt.Sprintf("%016b", word)
	if bits[:3] != "111" {
		return "", errors.Errorf("failed to decode %s: C-instruction needs to start with 111", bits)
	}

	comp, ok := cToComp[bits[4:10]]
	if !ok {
		return "", errors.Errorf("failed to decode %s: unknown c-bits %s", bits, bits[4:10])
	}
	if bits[3] == '1' {
		comp = strings.ReplaceAll(comp, "A", "M")
	}
	dest := dToDest[bits[10:13]]
	jump := jToJump[bits[13:]]

	var b strings.Builder
	if dest != "" {
		b.WriteString(dest)
		b.WriteByte('=')
	}
	b.WriteString(comp)
	if jump != "" {
		b.WriteByte(';')
		b.WriteString(jump)
	}
	return b.String(), nil
}
