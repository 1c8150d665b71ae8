// Package tsstrip is the public entry point: a single Transform function
// wrapping the parser and the erasure engine.
package tsstrip

import (
	"github.com/zfben/ts-blank-space/internal/ast"
	"github.com/zfben/ts-blank-space/internal/blank"
	"github.com/zfben/ts-blank-space/internal/erase"
	"github.com/zfben/ts-blank-space/internal/logger"
	"github.com/zfben/ts-blank-space/internal/tsparser"
)

// TransformOptions configures a single Transform call. The zero value is
// ready to use.
type TransformOptions struct {
	// FileName names the input in parse error messages; it never affects
	// the output bytes, and onError receives only the offending node.
	FileName string
}

// OnError is called once for every construct treated as an unsupported
// runtime feature rather than erasable type syntax: a legacy
// "<T>expr" assertion, a parameter property (once per offending modifier,
// so "public readonly x" reports the parameter twice), an "import X = ..." or
// "export = ..." declaration, and a non-"declare" enum or namespace. The
// offending node is left untouched in the output.
type OnError func(node *ast.Node)

// Transform strips type-only syntax from input and returns a plain
// JavaScript string of identical length, with every surviving byte at
// its original offset. A non-nil error means input could not be parsed
// at all; onError (which may be nil) reports erasure-time limitations
// without failing the call.
func Transform(input string, onError OnError) (string, error) {
	return TransformWithOptions(input, TransformOptions{}, onError)
}

// TransformWithOptions is Transform with explicit options. Each call
// constructs its own parser and erasure Context, so concurrent calls
// never share state.
func TransformWithOptions(input string, opts TransformOptions, onError OnError) (string, error) {
	fileName := opts.FileName
	if fileName == "" {
		fileName = "<input>"
	}
	source := logger.Source{FileName: fileName, Contents: input}

	root, err := tsparser.Parse(source)
	if err != nil {
		return "", err
	}

	out := blank.New(input)
	ctx := erase.New(source, out, onError)
	ctx.Run(root)
	return out.String(), nil
}
