package service

import "github.com/hdllint/corelint/internal/domain/value"

// LineLinter drives every enabled LineLintRule over one document's
// physical lines, in ascending order, one fresh rule instance per line
// linter per document (spec §4.2).
type LineLinter struct {
	bindings []RuleBinding
}

// NewLineLinter builds a LineLinter from the line-tier bindings a
// Registry produced via EnabledForTier(value.TierLine).
func NewLineLinter(bindings []RuleBinding) *LineLinter {
	return &LineLinter{bindings: bindings}
}

// Lint runs every bound rule over lines and returns one LintRuleStatus
// per rule, in the bindings' registration order.
func (l *LineLinter) Lint(lines []value.Line) []value.LintRuleStatus {
	statuses := make([]value.LintRuleStatus, 0, len(l.bindings))
	for _, binding := range l.bindings {
		rule := binding.Factory.NewLine()
		descriptor := rule.Descriptor()

		if err := rule.Configure(binding.Config); err != nil {
			statuses = append(statuses, value.LintRuleStatus{
				Descriptor:       descriptor,
				ConfigurationErr: err,
			})
			continue
		}

		for i, line := range lines {
			rule.HandleLine(line.Text, i)
		}

		status := rule.Report()
		status.ConfigEcho = echoConfig(descriptor, binding.Config)
		statuses = append(statuses, status)
	}
	return statuses
}
