package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hdllint/corelint/internal/domain/entity"
	"github.com/hdllint/corelint/internal/domain/value"
)

var (
	tagRoot  = registerStubTag(901, "stubRoot")
	tagLeft  = registerStubTag(902, "stubLeft")
	tagRight = registerStubTag(903, "stubRight")
)

func registerStubTag(id int, name string) value.NonterminalTag {
	tag := value.NonterminalTag(id)
	value.RegisterNonterminalTagName(tag, name)
	return tag
}

// recordingRule appends one entry per HandleNode call, letting a test
// assert both visitation order and the context_path each node saw.
type recordingRule struct {
	descriptor value.LintRuleDescriptor
	visits     []string
}

func (r *recordingRule) Descriptor() value.LintRuleDescriptor { return r.descriptor }
func (r *recordingRule) Configure(string) error               { return nil }
func (r *recordingRule) HandleNode(node value.CSTNode, ancestors []value.NonterminalTag) {
	label := "leaf:" + node.Token().Text
	if node.IsBranch() {
		label = "branch:" + node.Tag().String()
	}
	path := make([]value.NonterminalTag, len(ancestors))
	copy(path, ancestors)
	r.visits = append(r.visits, fmt.Sprintf("%s path=%v", label, path))
}
func (r *recordingRule) Report() value.LintRuleStatus {
	return value.LintRuleStatus{Descriptor: r.descriptor}
}

func recordingFactory(name string) (entity.Factory, *recordingRule) {
	rule := &recordingRule{descriptor: value.LintRuleDescriptor{Name: name, Tier: value.TierSyntaxTree, DefaultEnabled: true}}
	return entity.NewSyntaxTreeRuleFactory(rule.descriptor, func() entity.SyntaxTreeLintRule { return rule }), rule
}

// TestSyntaxTreeLinter_DepthFirstPreOrder builds a small tree by hand —
// root(left(leafA), right, leafB) — and asserts HandleNode is invoked in
// depth-first pre-order with the correct ancestor context_path at each
// node (spec §4.4): a branch is visited before its children, and each
// child sees its own chain of ancestors, not its siblings'.
func TestSyntaxTreeLinter_DepthFirstPreOrder(t *testing.T) {
	leafA := value.NewLeaf(value.NewToken(0, value.Range{}, "a"))
	leafB := value.NewLeaf(value.NewToken(0, value.Range{}, "b"))
	left := value.NewBranch(tagLeft, leafA)
	right := value.NewBranch(tagRight)
	root := value.NewBranch(tagRoot, left, right, leafB)

	registry := NewRegistry()
	factory, rule := recordingFactory("recorder")
	require.NoError(t, registry.Register(factory))

	linter := NewSyntaxTreeLinter(registry.EnabledForTier(value.TierSyntaxTree))
	linter.Lint(&root)

	require.Equal(t, []string{
		"branch:stubRoot path=[]",
		"branch:stubLeft path=[stubRoot]",
		"leaf:a path=[stubRoot stubLeft]",
		"branch:stubRight path=[stubRoot]",
		"leaf:b path=[stubRoot]",
	}, rule.visits)
}

// anchoredStubRule reports a single violation at a fixed offset, letting
// a test pin two rules' findings to the same anchor.
type anchoredStubRule struct {
	descriptor value.LintRuleDescriptor
	offset     int
	message    string
}

func (r *anchoredStubRule) Descriptor() value.LintRuleDescriptor            { return r.descriptor }
func (r *anchoredStubRule) Configure(string) error                         { return nil }
func (r *anchoredStubRule) HandleNode(value.CSTNode, []value.NonterminalTag) {}
func (r *anchoredStubRule) Report() value.LintRuleStatus {
	return value.LintRuleStatus{
		Descriptor: r.descriptor,
		Violations: []value.LintViolation{value.NewViolation(value.AnchorAt(r.offset), r.message)},
	}
}

func anchoredStubFactory(name string, offset int, message string) entity.Factory {
	descriptor := value.LintRuleDescriptor{Name: name, Tier: value.TierSyntaxTree, DefaultEnabled: true}
	rule := &anchoredStubRule{descriptor: descriptor, offset: offset, message: message}
	return entity.NewSyntaxTreeRuleFactory(descriptor, func() entity.SyntaxTreeLintRule { return rule })
}

// TestSyntaxTreeLinter_TieBreaksEqualAnchorsByRegistrationIndex covers
// spec §4.4's tie-break rule: when two syntax-tree rules each anchor a
// violation at the same offset, NewLintReport orders them by the rules'
// registration index, not by name or any other incidental ordering.
func TestSyntaxTreeLinter_TieBreaksEqualAnchorsByRegistrationIndex(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(anchoredStubFactory("zzz-second", 5, "from zzz-second")))
	require.NoError(t, registry.Register(anchoredStubFactory("aaa-first", 5, "from aaa-first")))

	root := value.NewBranch(tagRoot)
	linter := NewSyntaxTreeLinter(registry.EnabledForTier(value.TierSyntaxTree))
	statuses := linter.Lint(&root)

	report := value.NewLintReport("m.sv", statuses)
	require.Len(t, report.Violations, 2)
	assert.Equal(t, "from zzz-second", report.Violations[0].Message)
	assert.Equal(t, "from aaa-first", report.Violations[1].Message)
}
