package rules

import (
	"fmt"

	"github.com/hdllint/corelint/internal/app/service/parser"
	"github.com/hdllint/corelint/internal/domain/entity"
	"github.com/hdllint/corelint/internal/domain/value"
)

// EmptyModuleBodyDescriptor is the static descriptor for the
// empty-module-body rule: a syntax-tree rule that walks the CST looking
// for a kModuleDeclaration whose kModuleBody slot has no children at
// all — a module stub left behind with nothing between its header and
// `endmodule`.
func EmptyModuleBodyDescriptor() value.LintRuleDescriptor {
	return value.LintRuleDescriptor{
		Name:           "empty-module-body",
		Summary:        "flags modules with nothing between the header and endmodule",
		Description:    "Flags a module declaration whose body contains no ports, declarations, or statements, usually a stub left over from scaffolding.",
		Tier:           value.TierSyntaxTree,
		// Off by default: a freshly scaffolded module is a normal,
		// unremarkable state to commit (e.g. while stubbing out a
		// hierarchy before filling in leaf modules), so this is an
		// opt-in style check rather than one every project wants on
		// unconditionally.
		DefaultEnabled: false,
	}
}

// NewEmptyModuleBodyFactory builds the entity.Factory the registry registers.
func NewEmptyModuleBodyFactory() entity.Factory {
	return entity.NewSyntaxTreeRuleFactory(EmptyModuleBodyDescriptor(), func() entity.SyntaxTreeLintRule {
		return &emptyModuleBodyRule{}
	})
}

type emptyModuleBodyRule struct {
	violations []value.LintViolation
}

func (r *emptyModuleBodyRule) Descriptor() value.LintRuleDescriptor {
	return EmptyModuleBodyDescriptor()
}

func (r *emptyModuleBodyRule) Configure(config string) error {
	_, err := value.ParseRuleConfig("empty-module-body", config, EmptyModuleBodyDescriptor().Schema)
	return err
}

// HandleNode only looks at kModuleDeclaration branches; contextPath is
// unused here since a declaration's emptiness is a property of its own
// immediate kModuleBody child, not of where the declaration sits in the
// tree.
func (r *emptyModuleBodyRule) HandleNode(node value.CSTNode, contextPath []value.NonterminalTag) {
	if !node.IsBranch() || node.Tag() != parser.TagModuleDeclaration {
		return
	}
	nameToken, ok := parser.ModuleName(node)
	if !ok {
		return
	}
	for _, child := range node.Children() {
		if !child.IsBranch() || child.Tag() != parser.TagModuleBody {
			continue
		}
		if len(child.Children()) == 0 {
			r.violations = append(r.violations, value.NewViolation(
				value.AnchorToken(nameToken),
				fmt.Sprintf("module %q has an empty body", nameToken.Text),
			))
		}
		return
	}
}

func (r *emptyModuleBodyRule) Report() value.LintRuleStatus {
	return value.LintRuleStatus{Descriptor: r.Descriptor(), Violations: r.violations}
}
