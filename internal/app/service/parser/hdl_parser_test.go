package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHDLParser_SimpleModule(t *testing.T) {
	source := "module foo;\nendmodule\n"
	view, err := NewHDLParser().Parse(source, "foo.sv")
	require.NoError(t, err)
	require.True(t, view.HasSyntaxTree())

	root := *view.CSTRoot
	children := root.Children()
	require.Len(t, children, 1)

	name, ok := ModuleName(children[0])
	require.True(t, ok)
	assert.Equal(t, "foo", name.Text)

	_, hasLabel := ModuleEndLabel(children[0])
	assert.False(t, hasLabel)
}

func TestHDLParser_EndLabel(t *testing.T) {
	source := "module bar;\nendmodule : bar\n"
	view, err := NewHDLParser().Parse(source, "bar.sv")
	require.NoError(t, err)
	require.True(t, view.HasSyntaxTree())

	decl := view.CSTRoot.Children()[0]
	label, ok := ModuleEndLabel(decl)
	require.True(t, ok)
	assert.Equal(t, "bar", label.Text)
}

func TestHDLParser_ParameterizedPorts(t *testing.T) {
	source := "module baz #(parameter W = 8) (input logic clk);\nendmodule\n"
	view, err := NewHDLParser().Parse(source, "baz.sv")
	require.NoError(t, err)
	require.True(t, view.HasSyntaxTree())

	name, ok := ModuleName(view.CSTRoot.Children()[0])
	require.True(t, ok)
	assert.Equal(t, "baz", name.Text)
}

func TestHDLParser_UnterminatedModuleReportsParseFailure(t *testing.T) {
	source := "module oops;\n"
	view, err := NewHDLParser().Parse(source, "oops.sv")
	require.NoError(t, err)
	assert.False(t, view.HasSyntaxTree())
	assert.Error(t, view.ParseError)
	assert.NotEmpty(t, view.Tokens)
	assert.NotEmpty(t, view.Lines)
}

func TestLex_EmitsCommentAndStringTokens(t *testing.T) {
	source := "// hello\nmodule m; // trailing\nstring s = \"text\";\nendmodule\n"
	tokens := lex(source)

	var sawComment, sawString bool
	for _, tok := range tokens {
		if tok.Kind == KindComment {
			sawComment = true
		}
		if tok.Kind == KindString {
			sawString = true
			assert.Equal(t, `"text"`, tok.Text)
		}
	}
	assert.True(t, sawComment)
	assert.True(t, sawString)
}

func TestLex_MacroToken(t *testing.T) {
	tokens := lex("`FOO")
	require.Len(t, tokens, 1)
	assert.Equal(t, KindMacroToken, tokens[0].Kind)
	assert.Equal(t, "`FOO", tokens[0].Text)
}
