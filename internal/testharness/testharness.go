// Package testharness gives rule implementations the same kind of
// fixture-driven test entry points verible's
// common/analysis/linter-test-utils.h gives its checkers: a test case is
// the source text plus the byte offsets a rule is expected to anchor a
// violation at, and a single call runs the whole pipeline (parse,
// register, configure, lint) and diffs the actual anchors against the
// expected ones.
package testharness

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hdllint/corelint/internal/app/service"
	"github.com/hdllint/corelint/internal/app/service/parser"
	"github.com/hdllint/corelint/internal/domain/entity"
	"github.com/hdllint/corelint/internal/domain/value"
)

// LintTestCase is one fixture: Code is the complete source text, and
// Expected holds the byte offsets at which the rule under test must
// anchor exactly one violation, no more and no fewer.
type LintTestCase struct {
	Code     string
	Expected []int
}

// mark is the segment type NewLintTestCase recognizes as "the next
// literal segment should be flagged here", mirroring verible's
// {kToken, "text"} pairs without needing a token-kind argument — this
// harness only ever checks anchor offsets, not token identity.
type mark struct{}

// Violation is the marker value passed to NewLintTestCase.
var Violation = mark{}

// NewLintTestCase concatenates segments (strings and the Violation
// marker) into one source string. Each Violation marker records the
// byte offset of the literal segment immediately following it as an
// expected anchor.
func NewLintTestCase(segments ...interface{}) LintTestCase {
	var b strings.Builder
	var expected []int
	for _, seg := range segments {
		switch v := seg.(type) {
		case string:
			b.WriteString(v)
		case mark:
			expected = append(expected, b.Len())
		default:
			panic(fmt.Sprintf("testharness: unsupported segment type %T", seg))
		}
	}
	return LintTestCase{Code: b.String(), Expected: expected}
}

// AutoFixInOut is one before/after fixture for RunApplyFixCases.
type AutoFixInOut struct {
	Input    string
	Expected string
}

// RunLintTestCases runs every case through factory's rule, unconfigured,
// and asserts its violation anchors match exactly.
func RunLintTestCases(t *testing.T, factory entity.Factory, filename string, cases []LintTestCase) {
	t.Helper()
	RunConfiguredLintTestCases(t, factory, "", filename, cases)
}

// RunConfiguredLintTestCases is RunLintTestCases with an explicit raw
// configuration string applied to the rule before linting.
func RunConfiguredLintTestCases(t *testing.T, factory entity.Factory, config, filename string, cases []LintTestCase) {
	t.Helper()
	for i, tc := range cases {
		t.Run(fmt.Sprintf("case_%d", i), func(t *testing.T) {
			report := lintOne(t, factory, config, filename, tc.Code)

			got := make([]int, 0, len(report.Violations))
			for _, v := range report.Violations {
				got = append(got, v.Anchor.Offset)
			}
			assert.Equal(t, tc.Expected, got, "violation anchors for %q", tc.Code)
		})
	}
}

// RunApplyFixCases runs every case's Input through factory's rule,
// builds the fix plan, applies it, and asserts the result equals
// Expected.
func RunApplyFixCases(t *testing.T, factory entity.Factory, config, filename string, cases []AutoFixInOut) {
	t.Helper()
	for i, tc := range cases {
		t.Run(fmt.Sprintf("case_%d", i), func(t *testing.T) {
			report := lintOne(t, factory, config, filename, tc.Input)

			registry := service.NewRegistry()
			require.NoError(t, registry.Register(factory))
			agg := service.NewAggregator(registry)
			plan := agg.BuildFixPlan(report)

			fixed, err := plan.Apply(tc.Input)
			require.NoError(t, err)
			assert.Equal(t, tc.Expected, fixed)
		})
	}
}

// lintOne registers and enables exactly one rule (even one that ships
// disabled by default), parses source, and runs the full four-tier
// pipeline over it. With only one rule registered, the other three tiers
// contribute nothing, so report.Violations is exactly that rule's
// output, sorted and deduped.
func lintOne(t *testing.T, factory entity.Factory, config, filename, source string) value.LintReport {
	t.Helper()

	registry := service.NewRegistry()
	require.NoError(t, registry.Register(factory))
	require.NoError(t, registry.SetEnabled(factory.Descriptor().Name, true))
	if config != "" {
		require.NoError(t, registry.Configure(factory.Descriptor().Name, config))
	}

	view, err := parser.NewHDLParser().Parse(source, filename)
	require.NoError(t, err)

	agg := service.NewAggregator(registry)
	return agg.LintDocument(view)
}
