package rules

import (
	"fmt"

	"github.com/hdllint/corelint/internal/domain/entity"
	"github.com/hdllint/corelint/internal/domain/value"
)

// Line-length bounds, grounded in verible's
// verilog/analysis/checkers/line-length-rule.h
// (kDefaultLineLength/kMinimumLineLength/kMaximumLineLength).
const (
	DefaultLineLength = 100
	MinimumLineLength = 40
	MaximumLineLength = 1000
)

// LineLengthDescriptor is the static descriptor for the line-length rule.
func LineLengthDescriptor() value.LintRuleDescriptor {
	return value.LintRuleDescriptor{
		Name:           "line-length",
		Summary:        "lines must not exceed a configured length",
		Description:    "Flags any line longer than the configured limit (default 100, clamped to [40, 1000]).",
		Tier:           value.TierTextStructure,
		DefaultEnabled: true,
		Schema: []value.OptionSchema{
			{Name: "length", Type: value.OptionInt, Default: DefaultLineLength,
				Help: fmt.Sprintf("maximum line length, clamped to [%d, %d]", MinimumLineLength, MaximumLineLength)},
		},
	}
}

// NewLineLengthFactory builds the entity.Factory the registry registers.
func NewLineLengthFactory() entity.Factory {
	return entity.NewTextStructureRuleFactory(LineLengthDescriptor(), func() entity.TextStructureLintRule {
		return &lineLengthRule{limit: DefaultLineLength}
	})
}

type lineLengthRule struct {
	limit      int
	violations []value.LintViolation
}

func (r *lineLengthRule) Descriptor() value.LintRuleDescriptor { return LineLengthDescriptor() }

func (r *lineLengthRule) Configure(config string) error {
	parsed, err := value.ParseRuleConfig("line-length", config, LineLengthDescriptor().Schema)
	if err != nil {
		return err
	}
	limit := parsed.Int("length")
	switch {
	case limit < MinimumLineLength:
		limit = MinimumLineLength
	case limit > MaximumLineLength:
		limit = MaximumLineLength
	}
	r.limit = limit
	return nil
}

func (r *lineLengthRule) Lint(textStructure *value.TextStructureView, filename string) {
	for _, line := range textStructure.Lines {
		if len(line.Text) <= r.limit {
			continue
		}
		offset := line.Offset + r.limit
		r.violations = append(r.violations, value.NewViolation(
			value.AnchorAt(offset),
			fmt.Sprintf("line length %d exceeds the limit of %d characters", len(line.Text), r.limit),
		))
	}
}

func (r *lineLengthRule) Report() value.LintRuleStatus {
	return value.LintRuleStatus{Descriptor: r.Descriptor(), Violations: r.violations}
}
