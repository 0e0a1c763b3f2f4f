package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hdllint/corelint/pkg/hdllint"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Display version information for hdllint.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("hdllint version %s\n", hdllint.GetVersion())
			fmt.Printf("  commit: %s\n", commit)
			fmt.Printf("  built: %s\n", date)
		},
	}
}
