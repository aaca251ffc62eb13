package hack

import (
	"strings"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := map[string]struct {
		in   uint16
		want string
	}{
		"Constant": {
			in:   0b0000000000000010,
			want: "@2",
		},
		"LargestConstant": {
			in:   0b0111111111111111,
			want: "@32767",
		},
		"DestAndComp": {
			in:   0b1110011111010000,
			want: "D=D+1",
		},
		"CompAndJump": {
			in:   0b1110101010000111,
			want: "0;JMP",
		},
		"ComputationOnM": {
			in:   0b1111110010011000,
			want: "MD=M-1",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Decode(tc.in)
			assertNoError(t, err)

			assertEquals(t, "Decode", tc.in, tc.want, got)
		})
	}

	errTests := map[string]struct {
		in uint16
	}{
		"RejectMissingCInstructionPrefix": {
			in: 0b1000000000000000,
		},
		"RejectUnknownCBits": {
			in: 0b1110100000000000,
		},
	}

	for name, tc := range errTests {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(tc.in)
			assertError(t, err)
		})
	}
}

// TestDecodeRoundTrip encodes every combination of the dest, comp and jump tables and decodes it
// again.
func TestDecodeRoundTrip(t *testing.T) {
	var comps []string
	for comp := range compToC {
		comps = append(comps, comp)
		if strings.Contains(comp, "A") {
			comps = append(comps, strings.ReplaceAll(comp, "A", "M"))
		}
	}

	for _, comp := range comps {
		for dest := range destToD {
			for jump := range jumpToJ {
				in := comp
				if dest != "" {
					in = dest + "=" + in
				}
				if jump != "" {
					in = in + ";" + jump
				}

				as := (&Assembler{Strict: true}).newAssembly()
				word := as.codeCInstruction(line{Text: in})
				assertNoError(t, as.errs.Err())

				got, err := Decode(word)
				assertNoError(t, err)
				if got != in {
					t.Errorf("Decode(%016b) = %q; want %q", word, got, in)
				}
			}
		}
	}
}
