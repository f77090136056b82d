package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/falmaashani/jarvisctl/internal/app"
	"github.com/falmaashani/jarvisctl/internal/application/setup"
	"github.com/falmaashani/jarvisctl/internal/domain"
)

// NewSetupCommand creates the setup command.
func NewSetupCommand(container *app.Container) *cobra.Command {
	var (
		skipPackages bool
		shellName    string
	)

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Provision the host: packages, runtime sandbox, config, directories",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetup(cmd, cmd.OutOrStdout(), container, setup.Options{
				SkipPackages: skipPackages,
				Shell:        shellName,
			})
		},
	}

	cmd.Flags().BoolVar(&skipPackages, "skip-packages", false, "Do not install OS packages")
	cmd.Flags().StringVar(&shellName, "shell", "", "Also install the shell alias (bash, zsh or auto)")
	return cmd
}

func runSetup(cmd *cobra.Command, out io.Writer, container *app.Container, opts setup.Options) error {
	if container.SetupService == nil {
		return fmt.Errorf("setup service unavailable")
	}

	report, err := container.SetupService.Run(cmd.Context(), opts)
	displaySetupReport(out, report)
	if err != nil {
		return fmt.Errorf("setup completed with errors: %w", err)
	}
	if !report.Succeeded() {
		return fmt.Errorf("setup finished with failed actions")
	}
	return nil
}

func displaySetupReport(out io.Writer, report domain.SetupReport) {
	for _, action := range report.Actions {
		fmt.Fprintf(out, "[%s] %s - %s\n",
			strings.ToUpper(string(action.Status)),
			action.Name,
			action.Detail)
	}
	if report.Succeeded() {
		fmt.Fprintln(out, "Setup complete.")
	} else {
		fmt.Fprintln(out, "Setup finished with failures.")
	}
}
