package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newShellCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive pile group editor with live preview and totals",
		Long: `Open the interactive editor: a table of pile groups with running
totals. Press a to add a group, e to edit the selected one, d to delete
it, esc to cancel a form and q to quit. Metrics below the form update as
you type.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd.Context(), app)
		},
	}
}

func runShell(ctx context.Context, app *App) error {
	p := tea.NewProgram(newShellModel(ctx, app), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
