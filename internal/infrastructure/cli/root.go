package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/falmaashani/jarvisctl/internal/app"
	"github.com/falmaashani/jarvisctl/internal/infrastructure/cli/commands"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, err
	}
	container.AudioCheckService.Confirmer = NewPrompter(nil, nil)
	container.AudioCheckService.Out = os.Stdout

	root := &cobra.Command{
		Use:   "jarvisctl",
		Short: "JARVIS voice assistant host setup and diagnostics",
		Long: "jarvisctl provisions a host for the JARVIS voice assistant and\n" +
			"verifies its audio capabilities end to end.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(commands.NewAudioTestCommand(container))
	root.AddCommand(commands.NewDoctorCommand(container))
	root.AddCommand(commands.NewSetupCommand(container))
	root.AddCommand(commands.NewConfigCommand(container))
	root.AddCommand(commands.NewHistoryCommand(container))
	root.AddCommand(commands.NewInstallCommand(container))
	root.AddCommand(commands.NewUninstallCommand(container))
	root.AddCommand(commands.NewVersionCommand())
	return root, nil
}
