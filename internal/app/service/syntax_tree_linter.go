package service

import (
	"github.com/hdllint/corelint/internal/domain/entity"
	"github.com/hdllint/corelint/internal/domain/value"
)

// SyntaxTreeLinter drives every enabled SyntaxTreeLintRule over one
// document's CST in a single depth-first pre-order traversal: each
// visited node is dispatched to every rule in registration order before
// the traversal moves to the next node (spec §4.4). Registration order
// also breaks ties among violations anchored at the same offset, which
// NewLintReport derives from the order statuses are handed to it.
type SyntaxTreeLinter struct {
	bindings []RuleBinding
}

// NewSyntaxTreeLinter builds a SyntaxTreeLinter from the syntax-tree tier
// bindings a Registry produced via EnabledForTier(value.TierSyntaxTree).
func NewSyntaxTreeLinter(bindings []RuleBinding) *SyntaxTreeLinter {
	return &SyntaxTreeLinter{bindings: bindings}
}

// Lint walks root once and returns one LintRuleStatus per rule, in the
// bindings' registration order. If root is nil — the parser collaborator
// reported a ParseFailure (spec §7) — every rule reports with no
// violations, since the syntax-tree tier has nothing to run over.
func (l *SyntaxTreeLinter) Lint(root *value.CSTNode) []value.LintRuleStatus {
	type instance struct {
		rule       entity.SyntaxTreeLintRule
		descriptor value.LintRuleDescriptor
		failed     error
		binding    RuleBinding
	}

	instances := make([]instance, 0, len(l.bindings))
	for _, binding := range l.bindings {
		rule := binding.Factory.NewSyntaxTree()
		descriptor := rule.Descriptor()
		var failed error
		if err := rule.Configure(binding.Config); err != nil {
			failed = err
		}
		instances = append(instances, instance{rule: rule, descriptor: descriptor, failed: failed, binding: binding})
	}

	if root != nil {
		root.Walk(func(node value.CSTNode, ancestors []value.NonterminalTag) {
			for _, inst := range instances {
				if inst.failed != nil {
					continue
				}
				inst.rule.HandleNode(node, ancestors)
			}
		})
	}

	statuses := make([]value.LintRuleStatus, 0, len(instances))
	for _, inst := range instances {
		if inst.failed != nil {
			statuses = append(statuses, value.LintRuleStatus{
				Descriptor:       inst.descriptor,
				ConfigurationErr: inst.failed,
			})
			continue
		}
		status := inst.rule.Report()
		status.ConfigEcho = echoConfig(inst.descriptor, inst.binding.Config)
		statuses = append(statuses, status)
	}
	return statuses
}
