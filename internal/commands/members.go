package commands

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/buildpacks/expect/internal/config"
	"github.com/buildpacks/expect/internal/logging"
)

// Members lists the facade member table.
func Members(logger logging.Logger, cfg *config.Config, verifier Verifier, factory WriterFactory) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "members",
		Args:  cobra.NoArgs,
		Short: "List the members of the facade",
		RunE: LogError(logger, func(cmd *cobra.Command, args []string) error {
			w, err := factory.Writer(outputOrDefault(output, cfg.Output))
			if err != nil {
				return err
			}

			return errors.Wrap(w.PrintMembers(logger, verifier.Members()), "printing members")
		}),
	}

	addOutputFlag(cmd, &output)
	AddHelpFlag(cmd, "members")
	return cmd
}
