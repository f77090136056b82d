package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/falmaashani/jarvisctl/internal/app"
	"github.com/falmaashani/jarvisctl/internal/domain"
)

// ErrNotReady signals that the host failed the readiness gate. main
// maps it to exit status 1 without printing a wrapped error chain.
var ErrNotReady = errors.New("audio capability check failed")

// NewAudioTestCommand creates the audiotest command.
func NewAudioTestCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "audiotest",
		Short: "Run the interactive audio capability diagnostics",
		Long: "Probes the microphone, speakers, audio service, mixer levels and\n" +
			"text-to-speech engines, then reports overall voice readiness.\n" +
			"Several probes ask you to confirm what you hear.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAudioDiagnostics(cmd, cmd.OutOrStdout(), container)
		},
	}
}

func runAudioDiagnostics(cmd *cobra.Command, out io.Writer, container *app.Container) error {
	svc := container.AudioCheckService
	if svc == nil {
		return fmt.Errorf("audio check service unavailable")
	}
	if svc.Confirmer == nil || !svc.Confirmer.Enabled() {
		return fmt.Errorf("audiotest needs an interactive terminal; run 'jarvisctl doctor' for scripted checks")
	}

	report, err := svc.Run(cmd.Context())
	if err != nil {
		// Interruption and config failures produce no partial report.
		return err
	}

	displayRunReport(out, report)
	if !report.OverallPass() {
		return ErrNotReady
	}
	return nil
}

// displayRunReport prints the diagnostic report: system metadata, one
// line per probe, remediation hints for failures, the overall verdict.
func displayRunReport(out io.Writer, report domain.RunReport) {
	fmt.Fprintln(out, "Audio diagnostic report")
	fmt.Fprintf(out, "System:  %s\n", report.OSDescription)
	fmt.Fprintf(out, "Backend: %s\n", report.Backend)
	fmt.Fprintf(out, "Time:    %s\n", report.Timestamp.Format(domain.TimestampFormat))
	fmt.Fprintln(out)

	for _, result := range report.Results {
		fmt.Fprintf(out, "[%s] %s - %s\n", verdict(result.Passed), result.Name, result.Detail)
		if !result.Passed && result.Remediation != "" {
			fmt.Fprintf(out, "       fix: %s\n", result.Remediation)
		}
	}

	fmt.Fprintln(out)
	if report.OverallPass() {
		fmt.Fprintln(out, "System ready: microphone and speaker are working.")
	} else {
		fmt.Fprintln(out, "System NOT ready: fix the failures above and re-run.")
	}
}

func verdict(passed bool) string {
	if passed {
		return "PASS"
	}
	return "FAIL"
}
