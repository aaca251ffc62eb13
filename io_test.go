package hack

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteWords(t *testing.T) {
	tests := map[string]struct {
		in   []uint16
		want string
	}{
		"NoWords": {
			in:   nil,
			want: "",
		},
		"OneWord": {
			in:   []uint16{2},
			want: "0000000000000010",
		},
		"NoTrailingNewline": {
			in:   []uint16{2, 0b1110011111010000, 0xffff},
			want: "0000000000000010\n1110011111010000\n1111111111111111",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var got bytes.Buffer
			err := WriteWords(&got, tc.in)
			assertNoError(t, err)

			assertDeepEquals(t, "WriteWords", tc.in, got.String(), tc.want)
		})
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "Prog.hack")
	assertNoError(t, os.WriteFile(file, []byte("stale"), 0o644))

	err := WriteFile(file, []uint16{16, 0b1110101010000111})
	assertNoError(t, err)

	got, err := os.ReadFile(file)
	assertNoError(t, err)
	assertDeepEquals(t, "WriteFile", file, string(got), "0000000000010000\n1110101010000111")

	missing := filepath.Join(dir, "missing", "Prog.hack")
	err = WriteFile(missing, []uint16{16})
	assertError(t, err)

	entries, err := os.ReadDir(dir)
	assertNoError(t, err)
	if len(entries) != 1 {
		t.Errorf("expected only %q in %q instead got %d entries", file, dir, len(entries))
	}
}

func TestReadSource(t *testing.T) {
	got, err := ReadSource("testdata/Max.asm")
	assertNoError(t, err)

	words, err := (&Assembler{}).Assemble(got)
	assertNoError(t, err)
	assertEquals(t, "ReadSource", "testdata/Max.asm", 16, len(words.Words))

	_, err = ReadSource("testdata/Missing.asm")
	assertError(t, err)
}

func TestOutputPath(t *testing.T) {
	tests := map[string]struct {
		in   string
		want string
	}{
		"FileName": {
			in:   "Max.asm",
			want: "Max.hack",
		},
		"Path": {
			in:   filepath.Join("projects", "06", "max", "Max.asm"),
			want: filepath.Join("projects", "06", "max", "Max.hack"),
		},
		"DotsInName": {
			in:   "Max.v2.asm",
			want: "Max.v2.hack",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := OutputPath(tc.in)
			assertNoError(t, err)

			assertEquals(t, "OutputPath", tc.in, tc.want, got)
		})
	}

	errTests := map[string]struct {
		in string
	}{
		"RejectMissingExtension": {
			in: "Max",
		},
		"RejectOtherExtension": {
			in: "Max.hack",
		},
		"RejectAsmInTheMiddle": {
			in: "Max.asm.bak",
		},
	}

	for name, tc := range errTests {
		t.Run(name, func(t *testing.T) {
			_, err := OutputPath(tc.in)
			assertError(t, err)
		})
	}
}
