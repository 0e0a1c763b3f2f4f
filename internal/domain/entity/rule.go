// Package entity defines the four disjoint rule capabilities (spec §4.1)
// and the factory type the registry uses to hand each one to the linter
// tier that owns it (spec §9 Design Notes: "Represent each tier as a
// separate abstract capability; the linter for that tier owns a sequence
// of rule instances of that capability").
package entity

import "github.com/hdllint/corelint/internal/domain/value"

// Described is embedded by all four rule-tier interfaces: every rule
// provides its static descriptor, accepts one configuration string, and
// reports its status exactly once before being discarded (spec §3
// Lifecycles, §4.1).
type Described interface {
	// Descriptor returns this rule's process-wide metadata. Every
	// instance of a rule type returns the same value; it is conceptually
	// static even though Go has no per-type static dispatch.
	Descriptor() value.LintRuleDescriptor

	// Configure parses a single configuration string against the
	// descriptor's schema. Called at most once, before any Handle* call.
	Configure(config string) error

	// Report finalises the rule and returns its status. Called exactly
	// once, after all input has been delivered. The rule is spent
	// afterward and must not receive further calls.
	Report() value.LintRuleStatus
}

// LineLintRule is fed physical lines one at a time, in ascending order,
// with no look-ahead beyond its own state (spec §4.1, §4.2).
type LineLintRule interface {
	Described
	HandleLine(lineText string, lineIndex int)
}

// TokenStreamLintRule is fed tokens one at a time in stream order. It may
// not mutate the stream, and may keep a small state machine across
// tokens (spec §4.1, §4.3).
type TokenStreamLintRule interface {
	Described
	HandleToken(token value.Token)
}

// SyntaxTreeLintRule is invoked once per visited CST node in depth-first
// pre-order. contextPath is a borrowed view of ancestor branch tags from
// root to the node's parent, valid only during the call — a rule that
// wants to remember it must copy (spec §4.1, §4.4).
type SyntaxTreeLintRule interface {
	Described
	HandleNode(node value.CSTNode, contextPath []value.NonterminalTag)
}

// TextStructureLintRule is invoked exactly once per document with the
// whole parsed artifact, for rules that must cross the line/token/tree
// boundary (spec §4.1, §4.5).
type TextStructureLintRule interface {
	Described
	Lint(textStructure *value.TextStructureView, filename string)
}

// Factory constructs one tier-tagged rule from its descriptor. Exactly
// one of the New* fields is non-nil, matching Tier; the four
// NewXxxFactory constructors below enforce that invariant so the
// registry never has to guess which field to call.
type Factory struct {
	descriptor value.LintRuleDescriptor
	tier       value.Tier

	newLine          func() LineLintRule
	newTokenStream   func() TokenStreamLintRule
	newSyntaxTree    func() SyntaxTreeLintRule
	newTextStructure func() TextStructureLintRule
}

// Descriptor returns the static descriptor this factory was built with.
func (f Factory) Descriptor() value.LintRuleDescriptor { return f.descriptor }

// Tier returns which of the four dispatch disciplines this factory's
// rule implements.
func (f Factory) Tier() value.Tier { return f.tier }

// NewLine constructs a fresh instance. Only valid when Tier() == TierLine
// — callers dispatch on Tier() first, exactly as the registry does.
func (f Factory) NewLine() LineLintRule { return f.newLine() }

// NewTokenStream constructs a fresh instance; valid only if Tier() == TierTokenStream.
func (f Factory) NewTokenStream() TokenStreamLintRule { return f.newTokenStream() }

// NewSyntaxTree constructs a fresh instance; valid only if Tier() == TierSyntaxTree.
func (f Factory) NewSyntaxTree() SyntaxTreeLintRule { return f.newSyntaxTree() }

// NewTextStructure constructs a fresh instance; valid only if Tier() == TierTextStructure.
func (f Factory) NewTextStructure() TextStructureLintRule { return f.newTextStructure() }

// NewLineRuleFactory binds a LineLintRule constructor to its descriptor.
func NewLineRuleFactory(descriptor value.LintRuleDescriptor, ctor func() LineLintRule) Factory {
	return Factory{descriptor: descriptor, tier: value.TierLine, newLine: ctor}
}

// NewTokenStreamRuleFactory binds a TokenStreamLintRule constructor to its descriptor.
func NewTokenStreamRuleFactory(descriptor value.LintRuleDescriptor, ctor func() TokenStreamLintRule) Factory {
	return Factory{descriptor: descriptor, tier: value.TierTokenStream, newTokenStream: ctor}
}

// NewSyntaxTreeRuleFactory binds a SyntaxTreeLintRule constructor to its descriptor.
func NewSyntaxTreeRuleFactory(descriptor value.LintRuleDescriptor, ctor func() SyntaxTreeLintRule) Factory {
	return Factory{descriptor: descriptor, tier: value.TierSyntaxTree, newSyntaxTree: ctor}
}

// NewTextStructureRuleFactory binds a TextStructureLintRule constructor to its descriptor.
func NewTextStructureRuleFactory(descriptor value.LintRuleDescriptor, ctor func() TextStructureLintRule) Factory {
	return Factory{descriptor: descriptor, tier: value.TierTextStructure, newTextStructure: ctor}
}
