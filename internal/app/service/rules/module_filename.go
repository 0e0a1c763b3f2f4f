// Package rules holds the three reference rules spec §8's test table
// demands concrete instances of (module-filename, line-length,
// macro-string-concat), plus empty-module-body, a default-disabled
// syntax-tree rule. They are fixtures for the test harness and the
// CLI's bundled example configuration, not a rule catalogue — the core
// registry never imports this package on its own (spec §1 draws the
// line at "individual rule bodies are an external concern"; the first
// three exist because the spec's own scenarios A-F need something real
// to run).
package rules

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hdllint/corelint/internal/app/service/parser"
	"github.com/hdllint/corelint/internal/domain/entity"
	"github.com/hdllint/corelint/internal/domain/value"
)

// ModuleFilenameDescriptor is the static descriptor for the
// module-filename rule, grounded in verible's
// verilog/analysis/checkers/module-filename-rule_test.cc. It is a
// text-structure rule rather than a syntax-tree rule: its judgment
// compares the CST against the document's filename, which only the
// text-structure tier receives alongside the tree (spec §4.5).
func ModuleFilenameDescriptor() value.LintRuleDescriptor {
	return value.LintRuleDescriptor{
		Name:           "module-filename",
		Summary:        "module name must match its filename",
		Description:    "Flags a module declaration whose name does not match the stem of the file it lives in, and offers to rename the module to match.",
		Tier:           value.TierTextStructure,
		DefaultEnabled: true,
		Schema: []value.OptionSchema{
			{Name: "allow-dash-for-underscore", Type: value.OptionBool, Default: false,
				Help: "treat a dash in the filename as equivalent to an underscore in the module name"},
		},
	}
}

// NewModuleFilenameFactory builds the entity.Factory the registry registers.
func NewModuleFilenameFactory() entity.Factory {
	return entity.NewTextStructureRuleFactory(ModuleFilenameDescriptor(), func() entity.TextStructureLintRule {
		return &moduleFilenameRule{}
	})
}

type moduleFilenameRule struct {
	allowDashForUnderscore bool
	violations             []value.LintViolation
}

func (r *moduleFilenameRule) Descriptor() value.LintRuleDescriptor { return ModuleFilenameDescriptor() }

func (r *moduleFilenameRule) Configure(config string) error {
	parsed, err := value.ParseRuleConfig("module-filename", config, ModuleFilenameDescriptor().Schema)
	if err != nil {
		return err
	}
	r.allowDashForUnderscore = parsed.Bool("allow-dash-for-underscore")
	return nil
}

// moduleDecl is one module declaration's name token plus (if present)
// its `endmodule : label` end label, collected during the CST walk so
// the "does any module already match" check in Lint can run before any
// violation is committed.
type moduleDecl struct {
	nameToken value.Token
	endLabel  value.Token
	hasEnd    bool
}

func (r *moduleFilenameRule) Lint(textStructure *value.TextStructureView, filename string) {
	if textStructure == nil || !textStructure.HasSyntaxTree() {
		return
	}
	stem := filenameStem(filename)
	if stem == "" {
		return
	}

	var decls []moduleDecl
	textStructure.CSTRoot.Walk(func(node value.CSTNode, ancestors []value.NonterminalTag) {
		if !node.IsBranch() || node.Tag() != parser.TagModuleDeclaration {
			return
		}
		nameToken, ok := parser.ModuleName(node)
		if !ok {
			return
		}
		decl := moduleDecl{nameToken: nameToken}
		if endLabel, ok := parser.ModuleEndLabel(node); ok {
			decl.endLabel = endLabel
			decl.hasEnd = true
		}
		decls = append(decls, decl)
	})

	// If any module in the file already matches the filename stem, the
	// file as a whole is clean: verible's own rule reports nothing as
	// long as one top-level module satisfies the filename, even when
	// other modules in the same file do not.
	for _, decl := range decls {
		if r.namesMatch(decl.nameToken.Text, stem) {
			return
		}
	}

	for _, decl := range decls {
		nameToken := decl.nameToken
		violation := value.NewViolation(
			value.AnchorToken(nameToken),
			fmt.Sprintf("module name %q does not match filename stem %q", nameToken.Text, stem),
		)

		fix := value.NewAutoFix(
			fmt.Sprintf("rename module %q to %q", nameToken.Text, stem),
			value.TextEdit{Range: nameToken.Range, Replacement: stem},
		)
		if decl.hasEnd {
			fix.Edits = append(fix.Edits, value.TextEdit{Range: decl.endLabel.Range, Replacement: stem})
		}
		violation = violation.WithFix(fix)

		r.violations = append(r.violations, violation)
	}
}

func (r *moduleFilenameRule) namesMatch(moduleName, stem string) bool {
	if moduleName == stem {
		return true
	}
	if r.allowDashForUnderscore {
		return moduleName == strings.ReplaceAll(stem, "-", "_")
	}
	return false
}

func (r *moduleFilenameRule) Report() value.LintRuleStatus {
	return value.LintRuleStatus{Descriptor: r.Descriptor(), Violations: r.violations}
}

// filenameStem strips the directory and the final extension from
// filename. "rtl/file_with_dashes.sv" -> "file_with_dashes"; a
// multi-dot name like "foo.bar.sv" -> "foo.bar", matching the
// expectation that only the build-system-recognized suffix is stripped.
func filenameStem(filename string) string {
	if filename == "" {
		return ""
	}
	base := filepath.Base(filename)
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext)
}
