package service

import "github.com/hdllint/corelint/internal/domain/value"

// Aggregator runs all four rule tiers over one document and merges their
// results into a single LintReport and, on request, a FixPlan (spec
// §4.7), producing a deterministic sort/conflict-detect/apply
// FixPlan from the ordering and fix rules spec §3 and §4.7 define.
type Aggregator struct {
	registry *Registry
}

// NewAggregator builds an Aggregator bound to registry. The same
// registry, and therefore the same rule set and registration order, is
// reused across every document the aggregator lints.
func NewAggregator(registry *Registry) *Aggregator {
	return &Aggregator{registry: registry}
}

// LintDocument runs the line, token-stream, syntax-tree and
// text-structure tiers over view, in that order, and merges their
// statuses into one LintReport. A parser collaborator's ParseFailure
// (view.CSTRoot == nil) only skips the syntax-tree pass; the other three
// tiers still run over whatever the view does carry (spec §7).
func (a *Aggregator) LintDocument(view *value.TextStructureView) value.LintReport {
	var statuses []value.LintRuleStatus

	statuses = append(statuses, NewLineLinter(a.registry.EnabledForTier(value.TierLine)).Lint(view.Lines)...)
	statuses = append(statuses, NewTokenStreamLinter(a.registry.EnabledForTier(value.TierTokenStream)).Lint(view.Tokens)...)
	statuses = append(statuses, NewSyntaxTreeLinter(a.registry.EnabledForTier(value.TierSyntaxTree)).Lint(view.CSTRoot)...)
	statuses = append(statuses, NewTextStructureLinter(a.registry.EnabledForTier(value.TierTextStructure)).Lint(view)...)

	return value.NewLintReport(view.Filename, statuses)
}

// BuildFixPlan derives a conflict-resolved FixPlan from a report. Fixes
// are considered in tier-then-registration order (each status's
// violations in turn), so of two overlapping fixes the earlier rule's
// wins (spec §4.7). A report without statuses falls back to its merged
// violation list.
func (a *Aggregator) BuildFixPlan(report value.LintReport) value.FixPlan {
	violations := report.Violations
	if len(report.Statuses) > 0 {
		violations = value.AllViolations(report.Statuses)
	}
	return value.BuildFixPlan(report.Filename, violations)
}
