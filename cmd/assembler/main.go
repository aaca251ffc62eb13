package main

import (
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"teleivo/nand2tetris/hackasm"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "assembly failed due to:\n%v\n", err)
		os.Exit(1)
	}
}

type options struct {
	strict  bool
	verbose bool
	symbols bool
	listing bool
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "assembler file.asm",
		Short: "Assembles hack assembly into hack machine code",
		Long: `Assembler translates a hack assembly file into machine code for the hack CPU.

The machine code is written next to the assembly file, with the '.asm' extension
replaced by '.hack'. Every instruction is written as a line of 16 binary digits.
`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.strict, "strict", false, "reject malformed instructions instead of encoding them as zero bits")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log bound labels and allocated variables")
	cmd.Flags().BoolVar(&opts.symbols, "symbols", false, "dump the symbol table to stderr")
	cmd.Flags().BoolVar(&opts.listing, "listing", false, "print address, machine code and decoded instruction to stdout")

	return cmd
}

func run(cmd *cobra.Command, assemblyFile string, opts options) error {
	machineFile, err := hack.OutputPath(assemblyFile)
	if err != nil {
		return err
	}

	src, err := hack.ReadSource(assemblyFile)
	if err != nil {
		return err
	}

	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())
	if opts.verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	a := hack.Assembler{Strict: opts.strict, Log: log.WithField("file", assemblyFile)}
	program, err := a.Assemble(src)
	if err != nil {
		return err
	}

	if opts.symbols {
		dumper := spew.ConfigState{Indent: "\t", SortKeys: true}
		dumper.Fdump(cmd.ErrOrStderr(), program.Symbols.Map())
	}
	if opts.listing {
		if err := writeListing(cmd.OutOrStdout(), program.Words); err != nil {
			return err
		}
	}

	if err := hack.WriteFile(machineFile, program.Words); err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"out": machineFile, "instructions": len(program.Words)}).Debug("wrote machine code")
	return nil
}

func writeListing(w io.Writer, words []uint16) error {
	for pc, word := range words {
		ins, err := hack.Decode(word)
		if err != nil {
			ins = err.Error()
		}
		if _, err := fmt.Fprintf(w, "%-5d %016b %s\n", pc, word, ins); err != nil {
			return err
		}
	}
	return nil
}
