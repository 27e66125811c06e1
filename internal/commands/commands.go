// Package commands holds the subcommands of the expect command line.
package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/buildpacks/expect/compat"
	"github.com/buildpacks/expect/internal/logging"
	"github.com/buildpacks/expect/internal/writer"
)

//go:generate mockgen -package testmocks -destination testmocks/mock_verifier.go github.com/buildpacks/expect/internal/commands Verifier
type Verifier interface {
	Verify(ctx context.Context) (compat.Report, error)
	Members() compat.Table
}

type WriterFactory interface {
	Writer(kind string) (writer.ReportWriter, error)
}

func AddHelpFlag(cmd *cobra.Command, commandName string) {
	cmd.Flags().BoolP("help", "h", false, fmt.Sprintf("Help for '%s'", commandName))
}

func CreateCancellableContext() context.Context {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		<-signals
		cancel()
	}()

	return ctx
}

// LogError logs the error a command returns and silences cobra's own reporting.
func LogError(logger logging.Logger, f func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cmd.SilenceErrors = true
		cmd.SilenceUsage = true
		err := f(cmd, args)
		if err != nil {
			logger.Error(err.Error())
			return err
		}
		return nil
	}
}

func addOutputFlag(cmd *cobra.Command, output *string) {
	cmd.Flags().StringVarP(output, "output", "o", "", "Output format: human, json or yaml (defaults to the configured output)")
}

func outputOrDefault(flag, configured string) string {
	if flag != "" {
		return flag
	}
	return configured
}
