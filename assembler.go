// Package hack implements an assembler for the hack assembly language as documented in
// https://www.nand2tetris.org/project04.
//
// Assembly happens in two passes over the cleaned source. The first pass binds every label to the
// address of the instruction following it. The second pass drops the labels and encodes every
// instruction into a 16-bit word, allocating variables as they are first referenced.
//
// By default the assembler is lenient: fields it cannot encode are encoded as zero bits and
// assembly carries on. In strict mode every such instruction is reported instead.
package hack

import (
	"io"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Assembler translates hack assembly into machine code. The zero value is a lenient assembler that
// does not log. An Assembler holds no state between runs and can be used concurrently.
type Assembler struct {
	// Strict rejects malformed instructions instead of encoding them as zero bits.
	Strict bool
	// Log receives debug messages about bound labels and allocated variables. In lenient mode
	// malformed instructions are logged as warnings.
	Log logrus.FieldLogger
}

// Program is the result of assembling a source.
type Program struct {
	// Words holds one instruction per non-label line of the source, in order.
	Words []uint16
	// Symbols holds the pre-defined symbols, labels and variables.
	Symbols *SymbolTable
}

// assembly holds the state of a single run of the assembler.
type assembly struct {
	strict       bool
	log          logrus.FieldLogger
	symbols      *SymbolTable
	nextVariable uint16
	errs         ErrorList
}

func (a *Assembler) newAssembly() *assembly {
	log := a.Log
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &assembly{
		strict:       a.Strict,
		log:          log,
		symbols:      NewSymbolTable(),
		nextVariable: firstVariableAddress,
	}
}

// Assemble translates hack assembly in src into machine code. In strict mode the returned error is
// an ErrorList holding every malformed instruction.
func (a *Assembler) Assemble(src string) (*Program, error) {
	as := a.newAssembly()

	lines := normalize(src)
	as.discoverLabels(lines)
	words := as.code(stripLabels(lines))

	as.errs.Sort()
	if err := as.errs.Err(); err != nil {
		return nil, err
	}
	return &Program{Words: words, Symbols: as.symbols}, nil
}

// Assemble translates hack assembly into machine code for the hack CPU. The machine code is written
// as text instead of binary as that is what was required in https://www.nand2tetris.org/project06.
func Assemble(r io.Reader, w io.Writer) error {
	src, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "failed to read assembly")
	}

	var a Assembler
	program, err := a.Assemble(string(src))
	if err != nil {
		return err
	}

	return WriteWords(w, program.Words)
}

// malformed records an instruction that cannot be encoded as written. Lenient assembly only logs
// it.
func (as *assembly) malformed(l line, reason string) {
	if as.strict {
		as.errs = append(as.errs, &MalformedInstructionError{Line: l.Num, Text: l.Text, Reason: reason})
		return
	}
	as.log.WithFields(logrus.Fields{"line": l.Num, "instruction": l.Text}).Warn(reason)
}

// isLabel reports whether in is a label declaration. A label is a pseudo-instruction that will not
// be translated into machine code. It is used as a reference to the instruction memory location
// holding the next command in the program.
func isLabel(in string) bool {
	return in[0] == '('
}

// discoverLabels binds every label to the address of the instruction following it. Addresses count
// instructions only, so every newly bound label shifts the addresses of the lines after it by one.
// The first declaration of a label wins; a label that is already bound, including a pre-defined
// symbol, does not shift.
func (as *assembly) discoverLabels(lines []line) {
	var shift int
	for i, l := range lines {
		if !isLabel(l.Text) {
			continue
		}

		symbol := as.parseLabel(l)
		address := uint16(i - shift)

		if isPredefined(symbol) {
			as.malformed(l, "label is a pre-defined symbol which cannot be used as a label")
			continue
		}
		if !as.symbols.bind(symbol, address) {
			as.malformed(l, "label re-declared")
			continue
		}
		shift++
		as.log.WithFields(logrus.Fields{"label": symbol, "address": address}).Debug("bound label")
	}
}

func (as *assembly) parseLabel(l line) string {
	in := l.Text
	if len(in) < 2 || in[len(in)-1] != ')' {
		as.malformed(l, "label definitions need to be enclosed in (). Missing closing )")
	}

	symbol := strings.Trim(in, "()")
	if len(symbol) == 0 {
		as.malformed(l, "label definitions need to define symbols enclosed in ()")
	} else if unicode.IsDigit(rune(symbol[0])) || !containsOnly(symbol, validSymbolChars) {
		as.malformed(l, "label contains illegal character. A user-deﬁned symbol can be any sequence of letters, digits, underscore ( _ ), dot (.), dollar sign ($), and colon (:) that does not begin with a digit")
	}
	return symbol
}

// stripLabels drops label declarations. The index of every remaining line is its address in
// instruction memory.
func stripLabels(lines []line) []line {
	instructions := make([]line, 0, len(lines))
	for _, l := range lines {
		if !isLabel(l.Text) {
			instructions = append(instructions, l)
		}
	}
	return instructions
}
