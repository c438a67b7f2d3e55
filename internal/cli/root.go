package cli

import (
	"github.com/alexanderramin/tubepile/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Groups service.PileGroupService
	Import service.ImportService

	// IsInteractive reports whether stdin is a terminal; a bare invocation
	// opens the shell only when it returns true.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "tubepile" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "tubepile",
		Short:         "Tubular steel pile weight and paint-area calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runShell(cmd.Context(), app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newCalcCmd(),
		newGroupCmd(app),
		newShellCmd(app),
	)

	return root
}
