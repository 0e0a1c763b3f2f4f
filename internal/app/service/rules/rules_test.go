package rules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hdllint/corelint/internal/app/service/parser"
	"github.com/hdllint/corelint/internal/domain/value"
)

func TestModuleFilenameRule_FlagsMismatch(t *testing.T) {
	p := parser.NewHDLParser()
	view, err := p.Parse("module adder(input a, input b);\nendmodule\n", "counter.sv")
	require.NoError(t, err)

	rule := NewModuleFilenameFactory().NewTextStructure()
	require.NoError(t, rule.Configure(""))
	rule.Lint(view, view.Filename)

	status := rule.Report()
	require.Len(t, status.Violations, 1)
	assert.Contains(t, status.Violations[0].Message, "adder")
	assert.Contains(t, status.Violations[0].Message, "counter")
	require.Len(t, status.Violations[0].Fixes, 1)
	assert.Equal(t, "counter", status.Violations[0].Fixes[0].Edits[0].Replacement)
}

func TestModuleFilenameRule_NameMatchesStem(t *testing.T) {
	p := parser.NewHDLParser()
	view, err := p.Parse("module counter(input clk);\nendmodule\n", "counter.sv")
	require.NoError(t, err)

	rule := NewModuleFilenameFactory().NewTextStructure()
	require.NoError(t, rule.Configure(""))
	rule.Lint(view, view.Filename)

	assert.Empty(t, rule.Report().Violations)
}

func TestModuleFilenameRule_DashForUnderscoreOption(t *testing.T) {
	p := parser.NewHDLParser()
	view, err := p.Parse("module my_counter(input clk);\nendmodule\n", "my-counter.sv")
	require.NoError(t, err)

	rule := NewModuleFilenameFactory().NewTextStructure()
	require.NoError(t, rule.Configure("allow-dash-for-underscore"))
	rule.Lint(view, view.Filename)

	assert.Empty(t, rule.Report().Violations)
}

func TestModuleFilenameRule_SkipsWhenParseFailed(t *testing.T) {
	view := &value.TextStructureView{Filename: "broken.sv"}
	rule := NewModuleFilenameFactory().NewTextStructure()
	require.NoError(t, rule.Configure(""))
	rule.Lint(view, view.Filename)

	assert.Empty(t, rule.Report().Violations)
}

func TestLineLengthRule_DefaultLimit(t *testing.T) {
	long := make([]byte, DefaultLineLength+1)
	for i := range long {
		long[i] = 'a'
	}
	view := &value.TextStructureView{
		Lines: []value.Line{{Text: string(long), Offset: 0}},
	}

	rule := NewLineLengthFactory().NewTextStructure()
	require.NoError(t, rule.Configure(""))
	rule.Lint(view, "m.sv")

	require.Len(t, rule.Report().Violations, 1)
}

func TestLineLengthRule_ConfiguredLimitClamped(t *testing.T) {
	rule := NewLineLengthFactory().NewTextStructure()
	require.NoError(t, rule.Configure("length:5"))

	impl := rule.(*lineLengthRule)
	assert.Equal(t, MinimumLineLength, impl.limit)
}

func TestLineLengthRule_ShortLinesPass(t *testing.T) {
	view := &value.TextStructureView{
		Lines: []value.Line{{Text: "module x;", Offset: 0}},
	}
	rule := NewLineLengthFactory().NewTextStructure()
	require.NoError(t, rule.Configure(""))
	rule.Lint(view, "m.sv")

	assert.Empty(t, rule.Report().Violations)
}

func TestMacroStringConcatRule_FlagsTokenPasteInsideString(t *testing.T) {
	source := "`define GREETING \"hello``world\"\n"
	rule := NewMacroStringConcatFactory().NewTokenStream()
	require.NoError(t, rule.Configure(""))

	for _, tok := range lexForTest(source) {
		rule.HandleToken(tok)
	}

	violations := rule.Report().Violations
	require.Len(t, violations, 1)
	assert.Equal(t, strings.Index(source, "``"), violations[0].Anchor.Offset)
}

func TestMacroStringConcatRule_IgnoresTokenPasteOutsideDefine(t *testing.T) {
	source := "x = \"hello``world\";\n"
	rule := NewMacroStringConcatFactory().NewTokenStream()
	require.NoError(t, rule.Configure(""))

	for _, tok := range lexForTest(source) {
		rule.HandleToken(tok)
	}

	assert.Empty(t, rule.Report().Violations)
}

func TestMacroStringConcatRule_IgnoresPlainAdjacentStrings(t *testing.T) {
	source := "`define GREETING \"hello\" \"world\"\n"
	rule := NewMacroStringConcatFactory().NewTokenStream()
	require.NoError(t, rule.Configure(""))

	for _, tok := range lexForTest(source) {
		rule.HandleToken(tok)
	}

	assert.Empty(t, rule.Report().Violations)
}

func TestMacroStringConcatRule_ResetsAtNextLine(t *testing.T) {
	source := "`define A \"hello\"\n\"world``moon\"\n"
	rule := NewMacroStringConcatFactory().NewTokenStream()
	require.NoError(t, rule.Configure(""))

	for _, tok := range lexForTest(source) {
		rule.HandleToken(tok)
	}

	assert.Empty(t, rule.Report().Violations)
}

func TestEmptyModuleBodyRule_FlagsEmptyBody(t *testing.T) {
	p := parser.NewHDLParser()
	view, err := p.Parse("module stub;\nendmodule\n", "stub.sv")
	require.NoError(t, err)

	rule := NewEmptyModuleBodyFactory().NewSyntaxTree()
	require.NoError(t, rule.Configure(""))
	view.CSTRoot.Walk(func(node value.CSTNode, ancestors []value.NonterminalTag) {
		rule.HandleNode(node, ancestors)
	})

	status := rule.Report()
	require.Len(t, status.Violations, 1)
	assert.Contains(t, status.Violations[0].Message, "stub")
}

func TestEmptyModuleBodyRule_IgnoresNonEmptyBody(t *testing.T) {
	p := parser.NewHDLParser()
	view, err := p.Parse("module counter;\nlogic clk;\nendmodule\n", "counter.sv")
	require.NoError(t, err)

	rule := NewEmptyModuleBodyFactory().NewSyntaxTree()
	require.NoError(t, rule.Configure(""))
	view.CSTRoot.Walk(func(node value.CSTNode, ancestors []value.NonterminalTag) {
		rule.HandleNode(node, ancestors)
	})

	assert.Empty(t, rule.Report().Violations)
}

func lexForTest(source string) []value.Token {
	view, err := parser.NewHDLParser().Parse(source, "m.sv")
	if err != nil {
		panic(err)
	}
	return view.Tokens
}
