// Command tsstrip strips TypeScript type syntax from one or more files,
// writing length-preserving JavaScript to stdout or to an output directory.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/zfben/ts-blank-space/internal/ast"
	"github.com/zfben/ts-blank-space/internal/logger"
	"github.com/zfben/ts-blank-space/pkg/tsstrip"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var outDir string
	var strict bool

	cmd := &cobra.Command{
		Use:   "tsstrip [file...]",
		Short: "Erase TypeScript types, byte offset for byte offset",
		Long: `tsstrip reads TypeScript (or TSX) source and replaces every type-only
construct with spaces, leaving runtime JavaScript exactly where it was.

With no arguments, or with "-" as an argument, source is read from stdin
and the result is written to stdout. Given one or more file arguments,
each is transformed in turn; by default the result is printed to stdout
(prefixed by a "// file: <name>" banner when more than one input is
given), or written under --out-dir when given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStrip(cmd, args, outDir, strict)
		},
	}

	cmd.Flags().StringVarP(&outDir, "out-dir", "o", "", "write transformed files under this directory instead of stdout")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit nonzero if any file contains unsupported syntax")

	return cmd
}

func runStrip(cmd *cobra.Command, args []string, outDir string, strict bool) error {
	if len(args) == 0 {
		args = []string{"-"}
	}

	colorize := term.IsTerminal(int(os.Stderr.Fd()))
	var sawUnsupported bool

	for _, path := range args {
		name, src, err := readInput(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		source := logger.Source{FileName: name, Contents: src}
		var msgs logger.List
		output, err := tsstrip.TransformWithOptions(src, tsstrip.TransformOptions{FileName: name}, func(n *ast.Node) {
			msgs.Add(source, logger.Warning, logger.Loc{Start: int32(n.Start)}, unsupportedText(n))
		})
		if err != nil {
			return fmt.Errorf("parse %s: %w", name, err)
		}

		for _, m := range msgs.Msgs {
			sawUnsupported = true
			printDiagnostic(cmd.ErrOrStderr(), m, colorize)
		}

		if err := writeOutput(cmd.OutOrStdout(), outDir, path, name, output, len(args) > 1); err != nil {
			return err
		}
	}

	if strict && sawUnsupported {
		return fmt.Errorf("unsupported syntax present and --strict was given")
	}
	return nil
}

func readInput(path string) (name string, contents string, err error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", err
		}
		return "<stdin>", string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", err
	}
	return path, string(data), nil
}

func writeOutput(stdout io.Writer, outDir, path, name, output string, multiple bool) error {
	if outDir != "" {
		destName := name
		if destName == "<stdin>" {
			destName = "stdin.js"
		}
		dest := filepath.Join(outDir, stripTSExt(filepath.Base(destName)))
		if err := os.MkdirAll(outDir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", outDir, err)
		}
		return os.WriteFile(dest, []byte(output), 0644)
	}
	if multiple {
		fmt.Fprintf(stdout, "// file: %s\n", name)
	}
	_, err := fmt.Fprint(stdout, output)
	return err
}

func stripTSExt(name string) string {
	switch filepath.Ext(name) {
	case ".ts":
		return name[:len(name)-3] + ".js"
	case ".tsx":
		return name[:len(name)-4] + ".jsx"
	default:
		return name
	}
}

// unsupportedText names the construct behind an onError callback: one of
// the handful of constructs erasure declines to rewrite.
func unsupportedText(n *ast.Node) string {
	switch n.Kind {
	case ast.KindTypeAssertionExpression:
		return "legacy \"<T>expr\" type assertions are not supported, use \"expr as T\""
	case ast.KindImportEqualsDeclaration:
		return "\"import X = require(...)\" is left as runtime JavaScript"
	case ast.KindExportAssignment:
		return "\"export = ...\" is left as runtime JavaScript"
	case ast.KindEnumDeclaration:
		return "non-\"declare\" enum has a runtime representation and cannot be erased"
	case ast.KindModuleDeclaration:
		return "non-\"declare\" namespace has a runtime representation and cannot be erased"
	case ast.KindParameter:
		return "constructor parameter properties are not supported"
	default:
		return "unsupported syntax left unmodified"
	}
}

func printDiagnostic(w io.Writer, m logger.Msg, colorize bool) {
	if !colorize {
		fmt.Fprintln(w, m.String())
		return
	}
	const yellow, reset = "\x1b[33m", "\x1b[0m"
	fmt.Fprintf(w, "%s%s%s\n", yellow, m.String(), reset)
}
