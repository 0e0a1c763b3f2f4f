package value

import (
	"fmt"
	"sort"
)

// Severity is the importance of a LintViolation.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

// String implements fmt.Stringer.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// TextEdit is a single textual edit: replace the bytes in Range with
// Replacement (spec §3 AutoFix).
type TextEdit struct {
	Range       Range
	Replacement string
	Description string
}

// AutoFix is a set of textual edits that together remediate one
// violation. An AutoFix is atomic: Apply succeeds only if every edit
// applies cleanly and none overlap; otherwise nothing is applied.
type AutoFix struct {
	Description string
	Edits       []TextEdit
}

// NewAutoFix builds an AutoFix from the given edits, sorted ascending by
// start offset. It does not itself reject overlaps — Validate does.
func NewAutoFix(description string, edits ...TextEdit) AutoFix {
	sorted := make([]TextEdit, len(edits))
	copy(sorted, edits)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Range.Start.Offset < sorted[j].Range.Start.Offset
	})
	return AutoFix{Description: description, Edits: sorted}
}

// Validate checks the AutoFix invariant from spec §3: edits within one
// AutoFix are non-overlapping and ascending by offset.
func (f AutoFix) Validate() error {
	for i := 1; i < len(f.Edits); i++ {
		prev, cur := f.Edits[i-1], f.Edits[i]
		if prev.Range.End.Offset > cur.Range.Start.Offset {
			return fmt.Errorf("autofix %q: edits overlap at offsets %d and %d",
				f.Description, prev.Range.End.Offset, cur.Range.Start.Offset)
		}
	}
	return nil
}

// Apply applies every edit in the fix to source and returns the result.
// Apply is atomic: if any edit's range falls outside source or edits
// overlap, no partial result is returned.
func (f AutoFix) Apply(source string) (string, error) {
	if err := f.Validate(); err != nil {
		return "", err
	}
	var out []byte
	cursor := 0
	for _, edit := range f.Edits {
		start, end := edit.Range.Start.Offset, edit.Range.End.Offset
		if start < cursor || end > len(source) || start > end {
			return "", fmt.Errorf("autofix %q: edit range [%d,%d) invalid for source of length %d",
				f.Description, start, end, len(source))
		}
		out = append(out, source[cursor:start]...)
		out = append(out, edit.Replacement...)
		cursor = end
	}
	out = append(out, source[cursor:]...)
	return string(out), nil
}

// Anchor locates a LintViolation either at a raw byte offset or at a
// token's start. Rules may anchor a violation anywhere in the source, not
// only at the node currently being visited (spec §4.4).
type Anchor struct {
	Offset int
}

// AnchorAt builds an Anchor from a raw byte offset.
func AnchorAt(offset int) Anchor { return Anchor{Offset: offset} }

// AnchorToken builds an Anchor at a token's start offset.
func AnchorToken(tok Token) Anchor { return Anchor{Offset: tok.Range.Start.Offset} }

// String implements fmt.Stringer for debugging and report keying.
func (a Anchor) String() string { return fmt.Sprintf("@%d", a.Offset) }

// LintViolation is a single finding produced by a rule (spec §3).
// Violations are totally ordered by (Anchor.Offset, Message); equal
// anchor+message pairs are duplicates.
type LintViolation struct {
	Anchor   Anchor
	Message  string
	Severity Severity
	Fixes    []AutoFix
}

// NewViolation constructs a LintViolation with default severity Error.
func NewViolation(anchor Anchor, message string) LintViolation {
	return LintViolation{Anchor: anchor, Message: message, Severity: SeverityError}
}

// WithSeverity returns a copy of the violation with the given severity.
func (v LintViolation) WithSeverity(s Severity) LintViolation {
	v.Severity = s
	return v
}

// WithFix returns a copy of the violation with an additional AutoFix
// alternative appended. Multiple alternatives are allowed; only the first
// is ever applied by the aggregator (spec §3).
func (v LintViolation) WithFix(fix AutoFix) LintViolation {
	fixes := make([]AutoFix, len(v.Fixes), len(v.Fixes)+1)
	copy(fixes, v.Fixes)
	v.Fixes = append(fixes, fix)
	return v
}

// HasFix reports whether the violation carries at least one AutoFix.
func (v LintViolation) HasFix() bool { return len(v.Fixes) > 0 }

// IsValidFor reports the anchor-validity invariant from spec §8.6: every
// violation's anchor must fall within [0, sourceLength].
func (v LintViolation) IsValidFor(sourceLength int) bool {
	return v.Anchor.Offset >= 0 && v.Anchor.Offset <= sourceLength
}

// Less implements the total order from spec §3: ascending anchor offset,
// ties broken by message.
func (v LintViolation) Less(other LintViolation) bool {
	if v.Anchor.Offset != other.Anchor.Offset {
		return v.Anchor.Offset < other.Anchor.Offset
	}
	return v.Message < other.Message
}

// SortAndDedupe sorts violations per spec §3's total order and removes
// entries with equal (anchor, message). tieBreak, when non-nil, is
// consulted before falling back to message order — NewLintReport uses it
// to break ties by the order statuses arrived in, i.e. tier then
// registration index (spec §4.4).
func SortAndDedupe(violations []LintViolation, tieBreak func(a, b LintViolation) int) []LintViolation {
	if len(violations) == 0 {
		return nil
	}
	sorted := make([]LintViolation, len(violations))
	copy(sorted, violations)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Anchor.Offset != b.Anchor.Offset {
			return a.Anchor.Offset < b.Anchor.Offset
		}
		if tieBreak != nil {
			if c := tieBreak(a, b); c != 0 {
				return c < 0
			}
		}
		return a.Message < b.Message
	})

	out := sorted[:0:0]
	for i, v := range sorted {
		if i > 0 {
			p := sorted[i-1]
			if p.Anchor.Offset == v.Anchor.Offset && p.Message == v.Message {
				continue
			}
		}
		out = append(out, v)
	}
	return out
}
