package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLintReport_OrdersAndDedupes(t *testing.T) {
	statuses := []LintRuleStatus{
		{
			Descriptor: LintRuleDescriptor{Name: "rule-a"},
			Violations: []LintViolation{
				NewViolation(AnchorAt(10), "dup"),
				NewViolation(AnchorAt(10), "dup"),
			},
		},
		{
			Descriptor: LintRuleDescriptor{Name: "rule-b"},
			Violations: []LintViolation{
				NewViolation(AnchorAt(0), "first"),
			},
		},
	}

	report := NewLintReport("m.sv", statuses)
	require.Len(t, report.Violations, 2)
	assert.Equal(t, "first", report.Violations[0].Message)
	assert.Equal(t, "dup", report.Violations[1].Message)
}

func TestBuildFixPlan_DropsConflicting(t *testing.T) {
	posStart := func(offset int) Position { return Position{Offset: offset} }

	fixA := NewAutoFix("rename a", TextEdit{Range: Range{Start: posStart(0), End: posStart(5)}, Replacement: "xxxxx"})
	fixB := NewAutoFix("rename b", TextEdit{Range: Range{Start: posStart(3), End: posStart(8)}, Replacement: "yyyyy"})

	violations := []LintViolation{
		NewViolation(AnchorAt(0), "a").WithFix(fixA),
		NewViolation(AnchorAt(3), "b").WithFix(fixB),
	}

	plan := BuildFixPlan("m.sv", violations)
	require.Len(t, plan.Accepted, 1)
	require.Len(t, plan.Dropped, 1)
	assert.Equal(t, "rename a", plan.Accepted[0].Description)
	assert.Equal(t, "rename b", plan.Dropped[0].Description)
}

func TestFixPlan_Apply(t *testing.T) {
	pos := func(offset int) Position { return Position{Offset: offset} }
	fix := NewAutoFix("greet", TextEdit{Range: Range{Start: pos(0), End: pos(5)}, Replacement: "howdy"})
	plan := FixPlan{Filename: "m.sv", Accepted: []AutoFix{fix}}

	out, err := plan.Apply("hello world")
	require.NoError(t, err)
	assert.Equal(t, "howdy world", out)
}
