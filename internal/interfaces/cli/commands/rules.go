package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hdllint/corelint/internal/domain/value"
	"github.com/hdllint/corelint/pkg/hdllint"
)

// NewRulesCommand creates the rules command for rule management and information.
func NewRulesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Rule management and information",
		Long:  `Display information about available linting rules and their configuration schemas.`,
	}

	cmd.AddCommand(newRulesListCommand(), newRulesInfoCommand())
	return cmd
}

func newRulesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all bundled rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listRules()
		},
	}
}

func newRulesInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info <rule-name>",
		Short: "Show detailed information about a specific rule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return showRuleInfo(args[0])
		},
	}
}

func listRules() error {
	registry, err := hdllint.NewRegistry(hdllint.LintOptions{})
	if err != nil {
		return fmt.Errorf("build registry: %w", err)
	}

	descriptors := registry.Descriptors()
	sort.Slice(descriptors, func(i, j int) bool { return descriptors[i].Name < descriptors[j].Name })

	fmt.Printf("Available rules (%d total):\n\n", len(descriptors))
	for _, d := range descriptors {
		status := "enabled"
		if !registry.IsEnabled(d.Name) {
			status = "disabled"
		}
		fmt.Printf("  %-24s [%s, %s]\n", d.Name, d.Tier, status)
		fmt.Printf("    %s\n\n", d.Summary)
	}
	return nil
}

func showRuleInfo(name string) error {
	registry, err := hdllint.NewRegistry(hdllint.LintOptions{})
	if err != nil {
		return fmt.Errorf("build registry: %w", err)
	}

	var found *value.LintRuleDescriptor
	for _, d := range registry.Descriptors() {
		if strings.EqualFold(d.Name, name) {
			d := d
			found = &d
			break
		}
	}
	if found == nil {
		return fmt.Errorf("rule %q not found", name)
	}

	fmt.Printf("Rule: %s\n", found.Name)
	fmt.Printf("Tier: %s\n", found.Tier)
	fmt.Printf("Default enabled: %v\n", found.DefaultEnabled)
	fmt.Printf("\n%s\n", found.Description)

	if len(found.Schema) > 0 {
		fmt.Println("\nConfiguration options:")
		for _, opt := range found.Schema {
			fmt.Printf("  %-28s default=%-8v %s\n", opt.Name, opt.Default, opt.Help)
		}
	}
	return nil
}
