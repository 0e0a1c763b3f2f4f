// Package hdllint is the public facade over the linting core: it wires
// the bundled reference rules into a Registry, builds a Driver around
// the built-in HDL parser, and exposes the small set of entry points an
// external caller (a build tool, a CI step, another Go program) needs
// without reaching into internal/.
package hdllint

import (
	"context"
	"fmt"

	"github.com/hdllint/corelint/internal/app/service"
	"github.com/hdllint/corelint/internal/app/service/parser"
	"github.com/hdllint/corelint/internal/app/service/rules"
	"github.com/hdllint/corelint/internal/domain/entity"
	"github.com/hdllint/corelint/internal/domain/value"
)

// Version is this module's release version.
const Version = "0.1.0"

// GetVersion returns Version, for callers that prefer a function to a
// constant (mirrors the convention most of this module's CLI output
// already follows).
func GetVersion() string { return Version }

// DefaultRuleFactories returns the rule set this module ships out of the
// box. It deliberately is not the Registry's own concern — spec §1 draws
// the registry/core boundary below individual rule bodies — so this
// facade, not the core, is what chooses which rules a default install
// actually runs.
func DefaultRuleFactories() []entity.Factory {
	return []entity.Factory{
		rules.NewModuleFilenameFactory(),
		rules.NewLineLengthFactory(),
		rules.NewMacroStringConcatFactory(),
		rules.NewEmptyModuleBodyFactory(),
	}
}

// LintOptions configures one linting run.
type LintOptions struct {
	// Files to read and lint. Mutually additive with Sources: both may be
	// supplied in the same call.
	Files []string

	// Sources lints in-memory content under synthetic filenames, keyed by
	// the filename to report violations against.
	Sources map[string]string

	// RuleConfig maps a rule name to its raw `option:value;...`
	// configuration string (spec §4.6).
	RuleConfig map[string]string

	// DisabledRules names rules to turn off; every other bundled rule
	// keeps its descriptor's default enabled state.
	DisabledRules []string

	// EnabledRules names rules to turn on regardless of their
	// descriptor's default — e.g. empty-module-body, which ships
	// disabled by default. Applied after DisabledRules, so a name
	// listed in both ends up enabled.
	EnabledRules []string

	// Concurrency bounds how many files LintFiles processes at once.
	// Zero selects the Driver's default of 1.
	Concurrency int
}

// LintResult collects every linted document's report.
type LintResult struct {
	Reports         map[string]value.LintReport
	TotalFiles      int
	TotalViolations int
}

// NewRegistry builds a Registry from DefaultRuleFactories, applying
// opts.DisabledRules and opts.RuleConfig. Exported so a caller that wants
// the Aggregator or Driver directly (rather than going through Lint) can
// still start from the bundled rule set.
func NewRegistry(opts LintOptions) (*service.Registry, error) {
	registry := service.NewRegistry()
	for _, factory := range DefaultRuleFactories() {
		if err := registry.Register(factory); err != nil {
			return nil, fmt.Errorf("register %s: %w", factory.Descriptor().Name, err)
		}
	}
	for _, name := range opts.DisabledRules {
		if err := registry.SetEnabled(name, false); err != nil {
			return nil, fmt.Errorf("disable %s: %w", name, err)
		}
	}
	for _, name := range opts.EnabledRules {
		if err := registry.SetEnabled(name, true); err != nil {
			return nil, fmt.Errorf("enable %s: %w", name, err)
		}
	}
	for name, config := range opts.RuleConfig {
		if err := registry.Configure(name, config); err != nil {
			return nil, fmt.Errorf("configure %s: %w", name, err)
		}
	}
	return registry, nil
}

// Lint runs the full pipeline over every file and in-memory source named
// by opts.
func Lint(ctx context.Context, opts LintOptions) (*LintResult, error) {
	registry, err := NewRegistry(opts)
	if err != nil {
		return nil, err
	}

	concurrency := opts.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}
	driver := service.NewDriver(service.NewAggregator(registry), parser.NewHDLParser(), concurrency)

	reports := make(map[string]value.LintReport, len(opts.Files)+len(opts.Sources))

	if len(opts.Files) > 0 {
		fileReports, err := driver.LintFiles(ctx, opts.Files)
		if err != nil {
			return nil, fmt.Errorf("lint files: %w", err)
		}
		for name, report := range fileReports {
			reports[name] = report
		}
	}

	for filename, source := range opts.Sources {
		report, err := driver.LintSource(source, filename)
		if err != nil {
			return nil, fmt.Errorf("lint %s: %w", filename, err)
		}
		reports[filename] = report
	}

	result := &LintResult{Reports: reports, TotalFiles: len(reports)}
	for _, report := range reports {
		result.TotalViolations += len(report.Violations)
	}
	return result, nil
}

// LintSource is a convenience wrapper for linting a single in-memory
// document.
func LintSource(ctx context.Context, source, filename string, opts LintOptions) (value.LintReport, error) {
	opts.Sources = map[string]string{filename: source}
	opts.Files = nil
	result, err := Lint(ctx, opts)
	if err != nil {
		return value.LintReport{}, err
	}
	return result.Reports[filename], nil
}

// LintFile is a convenience wrapper for linting a single file on disk.
func LintFile(ctx context.Context, filename string, opts LintOptions) (value.LintReport, error) {
	opts.Files = []string{filename}
	opts.Sources = nil
	result, err := Lint(ctx, opts)
	if err != nil {
		return value.LintReport{}, err
	}
	return result.Reports[filename], nil
}

// FixOptions configures Fix; it wraps the core's service.FixOptions and
// adds the LintOptions needed to re-derive each file's fix plan.
type FixOptions struct {
	LintOptions
	Engine *service.FixOptions // nil selects service.NewFixOptions()'s defaults
}

// Fix lints every file named by opts, derives each one's fix plan, and
// applies it, with the same backup/validate/rollback safety the core's
// FixEngine gives the CLI's fix command.
func Fix(ctx context.Context, opts FixOptions) (*service.FixResult, error) {
	registry, err := NewRegistry(opts.LintOptions)
	if err != nil {
		return nil, err
	}
	aggregator := service.NewAggregator(registry)

	driver := service.NewDriver(aggregator, parser.NewHDLParser(), opts.Concurrency)
	reports, err := driver.LintFiles(ctx, opts.Files)
	if err != nil {
		return nil, fmt.Errorf("lint files: %w", err)
	}

	engine := service.NewFixEngine(aggregator, opts.Engine)
	return engine.FixFiles(ctx, reports)
}
