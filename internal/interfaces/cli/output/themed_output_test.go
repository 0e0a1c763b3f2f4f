package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hdllint/corelint/internal/domain/value"
)

func sampleView() *value.TextStructureView {
	src := "module m;\nendmodule\n"
	return &value.TextStructureView{
		Source: src,
		Lines: []value.Line{
			{Text: "module m;", Offset: 0},
			{Text: "endmodule", Offset: 10},
		},
	}
}

func TestDiagnosticsFromReport_ResolvesLineAndColumn(t *testing.T) {
	view := sampleView()
	report := value.NewLintReport("m.sv", []value.LintRuleStatus{
		{
			Descriptor: value.LintRuleDescriptor{Name: "module-filename"},
			Violations: []value.LintViolation{
				value.NewViolation(value.AnchorAt(7), "module name does not match filename"),
			},
		},
	})

	diags := DiagnosticsFromReport(report, view)
	require.Len(t, diags, 1)
	assert.Equal(t, 1, diags[0].Line)
	assert.Equal(t, 8, diags[0].Column)
	assert.Equal(t, "module-filename", diags[0].Rule)
}

func TestPrintText_NoColors(t *testing.T) {
	var buf bytes.Buffer
	out := NewThemedOutput().WithWriter(&buf).WithColors(false)

	out.PrintText([]Diagnostic{{Rule: "line-length", Severity: value.SeverityWarning, File: "a.sv", Line: 3, Column: 101, Message: "line too long"}})

	got := buf.String()
	assert.Contains(t, got, "a.sv:3:101")
	assert.Contains(t, got, "line too long")
	assert.Contains(t, got, "[line-length]")
}

func TestPrintJSON_SortsByLocation(t *testing.T) {
	var buf bytes.Buffer
	out := NewThemedOutput().WithWriter(&buf).WithColors(false)

	err := out.PrintJSON([]Diagnostic{
		{File: "b.sv", Line: 2, Column: 1, Message: "second"},
		{File: "a.sv", Line: 1, Column: 1, Message: "first"},
	})
	require.NoError(t, err)

	firstIdx := strings.Index(buf.String(), "first")
	secondIdx := strings.Index(buf.String(), "second")
	assert.Less(t, firstIdx, secondIdx)
}
