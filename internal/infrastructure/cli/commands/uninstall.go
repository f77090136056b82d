package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/falmaashani/jarvisctl/internal/app"
)

// NewUninstallCommand creates the shell alias removal command.
func NewUninstallCommand(container *app.Container) *cobra.Command {
	var shellFlag string

	cmd := &cobra.Command{
		Use:   "uninstall",
		Short: "Remove the 'jarvis' shell alias",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := container.ShellIntegrator.Uninstall(shellFlag)
			if err != nil {
				return err
			}
			if result.RCUpdated {
				fmt.Fprintf(cmd.OutOrStdout(), "Alias removed from %s\n", result.RCFile)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "No alias found in %s\n", result.RCFile)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&shellFlag, "shell", "", "Shell type (zsh, bash). Auto-detected if not specified")

	return cmd
}
