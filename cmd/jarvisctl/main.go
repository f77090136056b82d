package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/falmaashani/jarvisctl/internal/application/audiocheck"
	"github.com/falmaashani/jarvisctl/internal/infrastructure/cli"
	"github.com/falmaashani/jarvisctl/internal/infrastructure/cli/commands"
)

// Exit statuses: 0 ready, 1 not ready or error, 130 operator interrupt.
const exitInterrupted = 130

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := cli.Options{Verbose: isVerbose()}

	root, err := cli.NewRootCmd(ctx, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	if err := root.ExecuteContext(ctx); err != nil {
		stop()
		switch {
		case errors.Is(err, audiocheck.ErrInterrupted):
			fmt.Fprintln(os.Stderr, "Interrupted.")
			os.Exit(exitInterrupted)
		case errors.Is(err, commands.ErrNotReady):
			os.Exit(1)
		default:
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
	}
}

func isVerbose() bool {
	return strings.EqualFold(os.Getenv("JARVIS_DEBUG"), "1") || strings.EqualFold(os.Getenv("JARVIS_DEBUG"), "true")
}
