package tsparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zfben/ts-blank-space/internal/ast"
	"github.com/zfben/ts-blank-space/internal/logger"
)

func mustParse(t *testing.T, src string) *ast.Node {
	t.Helper()
	root, err := Parse(logger.Source{FileName: "<test>", Contents: src})
	require.NoError(t, err, "source: %s", src)
	require.NotNil(t, root)
	require.Equal(t, ast.KindSourceFile, root.Kind)
	return root
}

func firstChild(t *testing.T, root *ast.Node) *ast.Node {
	t.Helper()
	var first *ast.Node
	root.Children(func(n *ast.Node) {
		if first == nil {
			first = n
		}
	})
	require.NotNil(t, first, "source file has no statements")
	return first
}

func TestParseVariableStatementWithType(t *testing.T) {
	root := mustParse(t, "let x: number = 1")
	stmt := firstChild(t, root)
	assert.Equal(t, ast.KindVariableStatement, stmt.Kind)
	require.Len(t, stmt.Elements, 1)
	decl := stmt.Elements[0]
	assert.Equal(t, ast.KindVariableDeclaration, decl.Kind)
	require.NotNil(t, decl.Type)
	assert.Equal(t, ast.KindTypeNode, decl.Type.Kind)
	assert.NotZero(t, decl.ColonStart)
}

func TestParseConstEnum(t *testing.T) {
	root := mustParse(t, "const enum Color { Red, Green }")
	stmt := firstChild(t, root)
	assert.Equal(t, ast.KindEnumDeclaration, stmt.Kind)
	assert.False(t, stmt.Declare)
	assert.True(t, stmt.HasModifier("const"))
}

func TestParseDeclareConstEnum(t *testing.T) {
	root := mustParse(t, "declare const enum Color { Red }")
	stmt := firstChild(t, root)
	assert.Equal(t, ast.KindEnumDeclaration, stmt.Kind)
	assert.True(t, stmt.Declare)
}

func TestParseImportEquals(t *testing.T) {
	root := mustParse(t, `import fs = require("fs")`)
	stmt := firstChild(t, root)
	assert.Equal(t, ast.KindImportEqualsDeclaration, stmt.Kind)
	require.NotNil(t, stmt.Expression)
}

func TestParseClassExtendsGeneric(t *testing.T) {
	root := mustParse(t, "class Foo extends Base<T> {}")
	stmt := firstChild(t, root)
	assert.Equal(t, ast.KindClassDeclaration, stmt.Kind)
	require.Len(t, stmt.HeritageClauses, 1)
	h := stmt.HeritageClauses[0]
	assert.True(t, h.IsExtends)
	require.NotNil(t, h.Expression)
	assert.Equal(t, ast.KindExpressionWithTypeArguments, h.Expression.Kind)
	assert.NotNil(t, h.Expression.TypeArguments)
}

func TestParseFunctionReturnType(t *testing.T) {
	root := mustParse(t, "function f(): void {}")
	stmt := firstChild(t, root)
	assert.Equal(t, ast.KindFunctionDeclaration, stmt.Kind)
	require.NotNil(t, stmt.ReturnType)
	assert.NotZero(t, stmt.ColonStart)
}

func TestParseCatchClauseType(t *testing.T) {
	root := mustParse(t, "try {} catch (e: unknown) {}")
	stmt := firstChild(t, root)
	assert.Equal(t, ast.KindTryStatement, stmt.Kind)
	var catchClause *ast.Node
	stmt.Children(func(n *ast.Node) {
		if n.Kind == ast.KindBlock && n.Name != nil {
			catchClause = n
		}
	})
	require.NotNil(t, catchClause)
	require.NotNil(t, catchClause.Type)
	assert.NotZero(t, catchClause.ColonStart)
}

func TestParseTaggedTemplateWithSubstitution(t *testing.T) {
	root := mustParse(t, "tag`a${b as string}c`")
	stmt := firstChild(t, root)
	expr := stmt.Expression
	require.NotNil(t, expr)
	assert.Equal(t, ast.KindTaggedTemplateExpression, expr.Kind)
	require.Len(t, expr.Elements, 1)
}

func TestParseAsyncArrowWithParenParams(t *testing.T) {
	root := mustParse(t, "let f = async (x) => x")
	stmt := firstChild(t, root)
	require.Len(t, stmt.Elements, 1)
	arrow := stmt.Elements[0].Initializer
	require.NotNil(t, arrow)
	assert.Equal(t, ast.KindArrowFunction, arrow.Kind)
}

func TestParseAsyncArrowWithParenParamsAndReturnType(t *testing.T) {
	root := mustParse(t, "let f = async (x): number => x")
	stmt := firstChild(t, root)
	arrow := stmt.Elements[0].Initializer
	require.NotNil(t, arrow)
	assert.Equal(t, ast.KindArrowFunction, arrow.Kind)
	assert.NotNil(t, arrow.ReturnType)
}

func TestParseDecoratedClassDeclaration(t *testing.T) {
	root := mustParse(t, "@Component export class Foo {}")
	stmt := firstChild(t, root)
	assert.Equal(t, ast.KindExportDeclaration, stmt.Kind)
	require.NotNil(t, stmt.Expression)
	assert.Len(t, stmt.Expression.Decorators, 1)
}

func TestParseGenericMethodCall(t *testing.T) {
	root := mustParse(t, "foo.bar<T>(1)")
	stmt := firstChild(t, root)
	assert.Equal(t, ast.KindCallExpression, stmt.Expression.Kind)
	assert.NotNil(t, stmt.Expression.TypeArguments)
}

func TestParseInterfaceDeclaration(t *testing.T) {
	root := mustParse(t, "interface Point { x: number; y: number }")
	stmt := firstChild(t, root)
	assert.Equal(t, ast.KindInterfaceDeclaration, stmt.Kind)
}

func TestParseIncompleteSourceErrors(t *testing.T) {
	_, err := Parse(logger.Source{FileName: "<test>", Contents: "let x = {"})
	assert.Error(t, err)
}

func TestParseRegExpLiteral(t *testing.T) {
	root := mustParse(t, "let r = /a\\/b[c/]d/gi")
	stmt := firstChild(t, root)
	require.Len(t, stmt.Elements, 1)
	init := stmt.Elements[0].Initializer
	require.NotNil(t, init)
	assert.Equal(t, ast.KindRegularExpressionLiteral, init.Kind)
	assert.Equal(t, len("let r = /a\\/b[c/]d/gi"), init.End)
}

func TestParseDivisionIsNotRegExp(t *testing.T) {
	root := mustParse(t, "let r = a / b / c")
	stmt := firstChild(t, root)
	init := stmt.Elements[0].Initializer
	require.NotNil(t, init)
	assert.Equal(t, ast.KindBinaryExpression, init.Kind)
}
