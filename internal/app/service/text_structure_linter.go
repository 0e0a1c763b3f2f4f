package service

import "github.com/hdllint/corelint/internal/domain/value"

// TextStructureLinter invokes every enabled TextStructureLintRule exactly
// once per document, handing it the whole parsed TextStructureView
// (spec §4.5). This is the only tier that can see lines, tokens and the
// CST at once, for rules whose judgment crosses those boundaries — such
// as comparing a module name against its filename.
type TextStructureLinter struct {
	bindings []RuleBinding
}

// NewTextStructureLinter builds a TextStructureLinter from the
// text-structure tier bindings a Registry produced via
// EnabledForTier(value.TierTextStructure).
func NewTextStructureLinter(bindings []RuleBinding) *TextStructureLinter {
	return &TextStructureLinter{bindings: bindings}
}

// Lint runs every bound rule over textStructure and returns one
// LintRuleStatus per rule, in the bindings' registration order.
func (l *TextStructureLinter) Lint(textStructure *value.TextStructureView) []value.LintRuleStatus {
	statuses := make([]value.LintRuleStatus, 0, len(l.bindings))
	for _, binding := range l.bindings {
		rule := binding.Factory.NewTextStructure()
		descriptor := rule.Descriptor()

		if err := rule.Configure(binding.Config); err != nil {
			statuses = append(statuses, value.LintRuleStatus{
				Descriptor:       descriptor,
				ConfigurationErr: err,
			})
			continue
		}

		rule.Lint(textStructure, textStructure.Filename)

		status := rule.Report()
		status.ConfigEcho = echoConfig(descriptor, binding.Config)
		statuses = append(statuses, status)
	}
	return statuses
}
