package commands

import (
	"github.com/dustin/go-humanize/english"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/buildpacks/expect/internal/config"
	"github.com/buildpacks/expect/internal/logging"
	"github.com/buildpacks/expect/internal/style"
)

// Compat verifies the facade against the legacy helper and the builder packages. It
// fails when any member fails.
func Compat(logger logging.Logger, cfg *config.Config, verifier Verifier, factory WriterFactory) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "compat",
		Args:  cobra.NoArgs,
		Short: "Verify the facade exposes every member of the legacy assertion helper",
		RunE: LogError(logger, func(cmd *cobra.Command, args []string) error {
			kind := outputOrDefault(output, cfg.Output)
			w, err := factory.Writer(kind)
			if err != nil {
				return err
			}

			logger.Debug(style.Step("Verifying facade"))
			report, err := verifier.Verify(cmd.Context())
			if err != nil {
				return errors.Wrap(err, "verifying compatibility")
			}

			if err := w.PrintReport(logger, report); err != nil {
				return errors.Wrap(err, "printing report")
			}

			if !report.OK() {
				if isHumanReadable(kind) && !logger.IsVerbose() {
					logger.Info(style.Tip("Tip: ") + "run with --verbose to also list the members that passed")
				}
				return errors.Errorf("%s failed verification", english.Plural(report.Failed, "member", ""))
			}
			return nil
		}),
	}

	addOutputFlag(cmd, &output)
	AddHelpFlag(cmd, "compat")
	return cmd
}

func isHumanReadable(kind string) bool {
	switch kind {
	case "", "human", "human-readable":
		return true
	}
	return false
}
