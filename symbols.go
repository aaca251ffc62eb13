package hack

import "sort"

var predefinedSymbols map[string]uint16 = map[string]uint16{
	"SP":     0,
	"LCL":    1,
	"ARG":    2,
	"THIS":   3,
	"THAT":   4,
	"R0":     0,
	"R1":     1,
	"R2":     2,
	"R3":     3,
	"R4":     4,
	"R5":     5,
	"R6":     6,
	"R7":     7,
	"R8":     8,
	"R9":     9,
	"R10":    10,
	"R11":    11,
	"R12":    12,
	"R13":    13,
	"R14":    14,
	"R15":    15,
	"SCREEN": 16384,
	"KBD":    24576,
}

// SymbolTable maps symbols to memory addresses. It starts out with the pre-defined symbols of the
// hack platform and then grows by labels and variables. A symbol is bound at most once.
type SymbolTable struct {
	symbols map[string]uint16
}

// NewSymbolTable creates a symbol table holding the pre-defined symbols.
func NewSymbolTable() *SymbolTable {
	symbols := make(map[string]uint16, len(predefinedSymbols))
	for k, v := range predefinedSymbols {
		symbols[k] = v
	}
	return &SymbolTable{symbols: symbols}
}

// Lookup returns the address bound to symbol.
func (s *SymbolTable) Lookup(symbol string) (uint16, bool) {
	v, ok := s.symbols[symbol]
	return v, ok
}

// bind binds symbol to address unless symbol is already bound. It reports whether the binding was
// made.
func (s *SymbolTable) bind(symbol string, address uint16) bool {
	if _, ok := s.symbols[symbol]; ok {
		return false
	}
	s.symbols[symbol] = address
	return true
}

// Len returns the number of bound symbols.
func (s *SymbolTable) Len() int {
	return len(s.symbols)
}

// Symbols returns the bound symbols sorted by name.
func (s *SymbolTable) Symbols() []string {
	names := make([]string, 0, len(s.symbols))
	for k := range s.symbols {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Map returns a copy of the symbol table.
func (s *SymbolTable) Map() map[string]uint16 {
	m := make(map[string]uint16, len(s.symbols))
	for k, v := range s.symbols {
		m[k] = v
	}
	return m
}

func isPredefined(symbol string) bool {
	_, ok := predefinedSymbols[symbol]
	return ok
}
