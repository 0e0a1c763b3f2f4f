package rules

import (
	"strings"

	"github.com/hdllint/corelint/internal/app/service/parser"
	"github.com/hdllint/corelint/internal/domain/entity"
	"github.com/hdllint/corelint/internal/domain/value"
)

// MacroStringConcatDescriptor is the static descriptor for the
// macro-string-concat rule, grounded in verible's
// verilog/analysis/checkers/macro-string-concatenation-rule.h: a
// two-state machine (kNormal / kInsideDefineBody) that checks `define
// bodies for accidental use of the `` token-paste operator inside a
// plain string literal, where it has no preprocessor meaning and is
// almost always a typo for something else.
func MacroStringConcatDescriptor() value.LintRuleDescriptor {
	return value.LintRuleDescriptor{
		Name:           "macro-string-concat",
		Summary:        "no `` token-paste inside a string literal in a `define body",
		Description:    "Flags a `` token-paste pair appearing inside a plain string literal within a `define macro body, on the same physical line as the directive.",
		Tier:           value.TierTokenStream,
		DefaultEnabled: true,
	}
}

// NewMacroStringConcatFactory builds the entity.Factory the registry registers.
func NewMacroStringConcatFactory() entity.Factory {
	return entity.NewTokenStreamRuleFactory(MacroStringConcatDescriptor(), func() entity.TokenStreamLintRule {
		return &macroStringConcatRule{}
	})
}

type macroConcatState int

const (
	macroStateNormal macroConcatState = iota
	macroStateInsideDefineBody
)

type macroStringConcatRule struct {
	state      macroConcatState
	defineLine int
	violations []value.LintViolation
}

func (r *macroStringConcatRule) Descriptor() value.LintRuleDescriptor {
	return MacroStringConcatDescriptor()
}

func (r *macroStringConcatRule) Configure(config string) error {
	_, err := value.ParseRuleConfig("macro-string-concat", config, MacroStringConcatDescriptor().Schema)
	return err
}

func (r *macroStringConcatRule) HandleToken(tok value.Token) {
	isDefine := tok.Kind == parser.KindMacroToken && tok.Text == "`define"

	switch r.state {
	case macroStateNormal:
		if isDefine {
			r.enterDefineBody(tok)
		}

	case macroStateInsideDefineBody:
		if tok.Range.Start.Line != r.defineLine {
			r.state = macroStateNormal
			if isDefine {
				r.enterDefineBody(tok)
			}
			return
		}

		if isStringToken(tok) {
			if idx := strings.Index(tok.Text, "``"); idx >= 0 {
				r.violations = append(r.violations, value.NewViolation(
					value.AnchorAt(tok.Range.Start.Offset+idx),
					"token-paste `` inside a plain string literal has no effect here; remove it or leave the define body",
				))
			}
		}
	}
}

func (r *macroStringConcatRule) enterDefineBody(tok value.Token) {
	r.state = macroStateInsideDefineBody
	r.defineLine = tok.Range.Start.Line
}

func isStringToken(tok value.Token) bool {
	return tok.Kind == parser.KindString
}

func (r *macroStringConcatRule) Report() value.LintRuleStatus {
	return value.LintRuleStatus{Descriptor: r.Descriptor(), Violations: r.violations}
}
