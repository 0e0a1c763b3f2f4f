package service

import "github.com/hdllint/corelint/internal/domain/value"

// TokenStreamLinter drives every enabled TokenStreamLintRule over one
// document's token sequence, in stream order, one fresh rule instance
// per rule per document (spec §4.3).
type TokenStreamLinter struct {
	bindings []RuleBinding
}

// NewTokenStreamLinter builds a TokenStreamLinter from the token-stream
// tier bindings a Registry produced via EnabledForTier(value.TierTokenStream).
func NewTokenStreamLinter(bindings []RuleBinding) *TokenStreamLinter {
	return &TokenStreamLinter{bindings: bindings}
}

// Lint runs every bound rule over tokens and returns one LintRuleStatus
// per rule, in the bindings' registration order.
func (l *TokenStreamLinter) Lint(tokens []value.Token) []value.LintRuleStatus {
	statuses := make([]value.LintRuleStatus, 0, len(l.bindings))
	for _, binding := range l.bindings {
		rule := binding.Factory.NewTokenStream()
		descriptor := rule.Descriptor()

		if err := rule.Configure(binding.Config); err != nil {
			statuses = append(statuses, value.LintRuleStatus{
				Descriptor:       descriptor,
				ConfigurationErr: err,
			})
			continue
		}

		for _, tok := range tokens {
			rule.HandleToken(tok)
		}

		status := rule.Report()
		status.ConfigEcho = echoConfig(descriptor, binding.Config)
		statuses = append(statuses, status)
	}
	return statuses
}
