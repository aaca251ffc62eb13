package hack

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/renameio/v2"
	"github.com/pkg/errors"
)

const (
	assemblyExt    = ".asm"
	machineCodeExt = ".hack"
)

// ReadSource reads the hack assembly in the file at path.
func ReadSource(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read assembly file %q", path)
	}
	return string(b), nil
}

// WriteWords writes every word as a line of 16 binary digits, most significant bit first. The last
// line is not terminated by a newline.
func WriteWords(w io.Writer, words []uint16) error {
	bw := bufio.NewWriter(w)
	for i, word := range words {
		if i > 0 {
			bw.WriteByte('\n')
		}
		fmt.Fprintf(bw, "%016b", word)
	}
	return errors.Wrap(bw.Flush(), "failed to write machine code")
}

// WriteFile writes words to the file at path in the format of WriteWords. The file is replaced
// atomically so it is either written entirely or left untouched.
func WriteFile(path string, words []uint16) error {
	var b bytes.Buffer
	if err := WriteWords(&b, words); err != nil {
		return err
	}
	return errors.Wrapf(renameio.WriteFile(path, b.Bytes(), 0o644), "failed to write machine code file %q", path)
}

// OutputPath returns the path of the machine code file for the assembly file at path.
func OutputPath(path string) (string, error) {
	ext := filepath.Ext(path)
	if ext != assemblyExt {
		return "", errors.Errorf("expected assembly file with filename ending in '%s', instead got %q", assemblyExt, path)
	}
	return strings.TrimSuffix(path, ext) + machineCodeExt, nil
}
