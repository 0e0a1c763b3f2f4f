package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/hdllint/corelint/internal/interfaces/cli/output"
	"github.com/hdllint/corelint/pkg/hdllint"
)

// NewWatchCommand creates the interactive violation browser: a small
// bubbletea program that lets a user page through one lint run's
// diagnostics in a terminal.
func NewWatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [files...]",
		Short: "Browse lint violations interactively",
		Args:  cobra.ArbitraryArgs,
		RunE:  runWatch,
	}
	cmd.Flags().StringSlice("ignore", nil, "Ignore files matching these patterns")
	cmd.Flags().Bool("dot", false, "Include hidden files and directories")
	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	ignore, _ := cmd.Flags().GetStringSlice("ignore")
	includeDot, _ := cmd.Flags().GetBool("dot")

	files, err := collectFiles(args, ignore, includeDot)
	if err != nil {
		return fmt.Errorf("collect files: %w", err)
	}
	if len(files) == 0 {
		fmt.Println("no HDL files found")
		return nil
	}

	result, err := hdllint.Lint(ctx, hdllint.LintOptions{Files: files})
	if err != nil {
		return fmt.Errorf("lint: %w", err)
	}
	diags, err := renderDiagnostics(ctx, result, files)
	if err != nil {
		return err
	}

	model := newWatchModel(diags)
	program := tea.NewProgram(model)
	_, err = program.Run()
	return err
}

var (
	watchTitleStyle    = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	watchSelectedStyle = lipgloss.NewStyle().Background(lipgloss.Color("237")).Bold(true)
	watchHelpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// watchModel is a minimal bubbletea list model: arrow keys move the
// cursor, 'q'/esc/ctrl+c quit. It intentionally carries no fix-apply
// key binding — the parser's output is a point-in-time snapshot, and
// the core's own single-document model (spec §5) has nothing that
// lets a TUI safely re-lint mid-browse.
type watchModel struct {
	diags  []output.Diagnostic
	cursor int
}

func newWatchModel(diags []output.Diagnostic) watchModel {
	return watchModel{diags: diags}
}

func (m watchModel) Init() tea.Cmd { return nil }

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.diags)-1 {
				m.cursor++
			}
		}
	}
	return m, nil
}

func (m watchModel) View() string {
	if len(m.diags) == 0 {
		return "no violations found — press q to quit\n"
	}

	var b []byte
	b = append(b, watchTitleStyle.Render(fmt.Sprintf("%d violation(s)", len(m.diags)))...)
	b = append(b, '\n', '\n')

	for i, d := range m.diags {
		line := fmt.Sprintf("%s:%d:%d  %s  [%s]", d.File, d.Line, d.Column, d.Message, d.Rule)
		if i == m.cursor {
			line = watchSelectedStyle.Render(line)
		}
		b = append(b, []byte(line)...)
		b = append(b, '\n')
	}

	b = append(b, '\n')
	b = append(b, watchHelpStyle.Render("↑/↓ move · q quit")...)
	b = append(b, '\n')
	return string(b)
}
