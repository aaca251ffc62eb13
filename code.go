package hack

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/sirupsen/logrus"
)

// firstVariableAddress is the address of the first variable. Addresses below are taken by the
// virtual registers R0 to R15.
const firstVariableAddress uint16 = 16

// code translates label-free lines into machine code. Symbolic references in A-instructions are
// resolved into memory addresses at this stage. Symbols that are neither pre-defined nor labels are
// variables and get the next free address on first use.
func (as *assembly) code(lines []line) []uint16 {
	words := make([]uint16, 0, len(lines))
	for _, l := range lines {
		if l.Text[0] == '@' {
			words = append(words, as.codeAInstruction(l))
		} else {
			words = append(words, as.codeCInstruction(l))
		}
	}
	return words
}

func (as *assembly) codeAInstruction(l line) uint16 {
	in := l.Text[1:] // drop the @
	if len(in) == 0 {
		as.malformed(l, "@ needs to be followed by a constant or symbol")
		return 0
	}

	// symbols cannot start with a digit; as a starting digit indicates a constant. Lenient assembly
	// resolves a starting digit that does not parse as a constant like any other symbol.
	if unicode.IsDigit(rune(in[0])) {
		bitSize := 16
		if as.strict {
			bitSize = 15
		}
		v, err := strconv.ParseUint(in, 10, bitSize)
		if err == nil {
			return uint16(v)
		}
		as.malformed(l, fmt.Sprintf("expected unsigned %d-bit value: %v", bitSize, err))
		if as.strict {
			return 0
		}
	}

	if !containsOnly(in, validSymbolChars) {
		as.malformed(l, "symbol contains illegal character. A user-deﬁned symbol can be any sequence of letters, digits, underscore ( _ ), dot (.), dollar sign ($), and colon (:) that does not begin with a digit")
	}

	if v, ok := as.symbols.Lookup(in); ok {
		return v
	}
	v := as.nextVariable
	as.symbols.bind(in, v)
	as.nextVariable++
	as.log.WithFields(logrus.Fields{"variable": in, "address": v}).Debug("allocated variable")
	return v
}

// validSymbolChars ensures that user-deﬁned symbol can only be any sequence of letters, digits,
// underscore ( _ ), dot (.), dollar sign ($), and colon (:).
func validSymbolChars(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '.' || r == '$' || r == ':'
}

// containsOnly returns true if every rune in s satisfies given f.
func containsOnly(s string, f func(rune) bool) bool {
	for _, r := range s {
		ok := f(r)
		if !ok {
			return false
		}
	}
	return true
}

// splitCInstruction splits a C-instruction of the form dest=comp;jump. Dest and jump are empty if
// omitted. ok is false if any of the fields still contains a delimiter.
func splitCInstruction(in string) (dest, comp, jump string, ok bool) {
	dest, rest, foundEquals := strings.Cut(in, "=")
	if !foundEquals {
		// this is to accommodate for Cut behavior
		dest = ""
		rest = in
	}
	comp, jump, _ = strings.Cut(rest, ";")

	ok = !strings.ContainsAny(dest, "=;") && !strings.ContainsAny(comp, "=;") && !strings.ContainsAny(jump, "=;")
	return dest, comp, jump, ok
}

// compToC holds the c-bits of every computation on the A register. A computation on M uses the
// c-bits of the same computation on A; the a-bit tells them apart.
var compToC map[string]string = map[string]string{
	"0":   "101010",
	"1":   "111111",
	"-1":  "111010",
	"D":   "001100",
	"A":   "110000",
	"!D":  "001101",
	"!A":  "110001",
	"-D":  "001111",
	"-A":  "110011",
	"D+1": "011111",
	"A+1": "110111",
	"D-1": "001110",
	"A-1": "110010",
	"D+A": "000010",
	"D-A": "010011",
	"A-D": "000111",
	"D&A": "000000",
	"D|A": "010101",
}

var destToD map[string]string = map[string]string{
	"":    "000",
	"M":   "001",
	"D":   "010",
	"MD":  "011",
	"A":   "100",
	"AM":  "101",
	"AD":  "110",
	"AMD": "111",
}

var jumpToJ map[string]string = map[string]string{
	"":    "000",
	"JGT": "001",
	"JEQ": "010",
	"JGE": "011",
	"JLT": "100",
	"JNE": "101",
	"JLE": "110",
	"JMP": "111",
}

// codeCInstruction encodes a C-instruction as 111a cccc ccdd djjj. Fields that cannot be encoded
// are reported and encoded as zero bits.
func (as *assembly) codeCInstruction(l line) uint16 {
	dest, comp, jump, ok := splitCInstruction(l.Text)
	if !ok {
		as.malformed(l, "expected a computation in the form dest=comp;jump")
	}

	aBit := "0"
	if strings.Contains(comp, "M") {
		aBit = "1"
	}

	cBits, ok := compToC[strings.ReplaceAll(comp, "M", "A")]
	if !ok {
		as.malformed(l, fmt.Sprintf("failed to encode c-bits from comp field %q", comp))
		cBits = "000000"
	}

	dBits, ok := destToD[dest]
	if !ok {
		as.malformed(l, fmt.Sprintf("failed to encode d-bits from dest field %q", dest))
		dBits = "000"
	}

	jBits, ok := jumpToJ[jump]
	if !ok {
		as.malformed(l, fmt.Sprintf("failed to encode j-bits from jump field %q", jump))
		jBits = "000"
	}

	// every table entry has a fixed width, so the bits always fit into 16 bits
	word, _ := strconv.ParseUint("111"+aBit+cBits+dBits+jBits, 2, 16)
	return uint16(word)
}
