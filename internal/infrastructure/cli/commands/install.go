package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/falmaashani/jarvisctl/internal/app"
)

// NewInstallCommand creates the shell alias installation command.
func NewInstallCommand(container *app.Container) *cobra.Command {
	var shellFlag string
	var force bool

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install the 'jarvis' shell alias",
		Long: `Add the 'jarvis' alias to your shell RC file (~/.zshrc or ~/.bashrc).

Example:
  jarvisctl install              # Auto-detect shell
  jarvisctl install --shell zsh  # Install for zsh`,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := container.ShellIntegrator.Install(shellFlag, force)
			if err != nil {
				return err
			}
			if result.RCUpdated {
				fmt.Fprintf(cmd.OutOrStdout(), "Alias added to %s\n", result.RCFile)
				fmt.Fprintf(cmd.OutOrStdout(), "To activate, run:\n  source %s\n", result.RCFile)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Alias already present in %s\n", result.RCFile)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&shellFlag, "shell", "", "Shell type (zsh, bash). Auto-detected if not specified")
	cmd.Flags().BoolVar(&force, "force", false, "Re-append the alias even if present")

	return cmd
}
