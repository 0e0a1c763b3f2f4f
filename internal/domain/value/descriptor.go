package value

// Tier identifies which of the four dispatch disciplines a rule
// implements (spec §4.1, GLOSSARY).
type Tier int

const (
	TierLine Tier = iota
	TierTokenStream
	TierSyntaxTree
	TierTextStructure
)

// String implements fmt.Stringer.
func (t Tier) String() string {
	switch t {
	case TierLine:
		return "line"
	case TierTokenStream:
		return "token-stream"
	case TierSyntaxTree:
		return "syntax-tree"
	case TierTextStructure:
		return "text-structure"
	default:
		return "unknown-tier"
	}
}

// LintRuleDescriptor is the process-wide, immutable metadata for one rule
// (spec §3). Every instance of a rule returns the same descriptor value
// across every document; the bundled rules build it in one function per
// rule (e.g. rules.LineLengthDescriptor).
type LintRuleDescriptor struct {
	Name           string
	Summary        string
	Description    string
	Tier           Tier
	DefaultEnabled bool
	Schema         []OptionSchema
}

// LintRuleStatus is one rule's complete report for one document: its
// descriptor, its violations (sorted and deduplicated by NewLintReport),
// and the configuration that produced them (spec §3).
type LintRuleStatus struct {
	Descriptor       LintRuleDescriptor
	Violations       []LintViolation
	ConfigEcho       string
	ConfigurationErr error // set instead of Violations if Configure failed
}

// HasViolations reports whether the status carries any findings.
func (s LintRuleStatus) HasViolations() bool { return len(s.Violations) > 0 }
