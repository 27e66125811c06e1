package cmd

import (
	"context"
	"os"

	"github.com/heroku/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/buildpacks/expect"
	"github.com/buildpacks/expect/compat"
	"github.com/buildpacks/expect/internal/commands"
	"github.com/buildpacks/expect/internal/config"
	"github.com/buildpacks/expect/internal/logging"
	"github.com/buildpacks/expect/internal/writer"
)

// Version is set at build time.
var Version = "0.0.0"

// ConfigurableLogger defines behavior required by the ExpectCommand
type ConfigurableLogger interface {
	logging.Logger
	WantTime(f bool)
	WantQuiet(f bool)
	WantVerbose(f bool)
}

// IsTerminal reports whether color output is worthwhile. Tests replace it.
var IsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

type facade struct{}

func (facade) Verify(ctx context.Context) (compat.Report, error) {
	return expect.Verify(ctx)
}

func (facade) Members() compat.Table {
	return expect.Members()
}

// NewExpectCommand generates the expect command, verifying the package facade.
func NewExpectCommand(logger ConfigurableLogger) *cobra.Command {
	return NewExpectCommandWithVerifier(logger, facade{})
}

// NewExpectCommandWithVerifier generates the expect command around verifier.
func NewExpectCommandWithVerifier(logger ConfigurableLogger, verifier commands.Verifier) *cobra.Command {
	cobra.EnableCommandSorting = false
	cfg := config.Default()

	rootCmd := &cobra.Command{
		Use:   "expect",
		Short: "Inspect and verify the expect assertion facade",
		PersistentPreRunE: commands.LogError(logger, func(cmd *cobra.Command, args []string) error {
			fs := cmd.Flags()

			path, _ := fs.GetString("config")
			read, err := initConfig(path)
			if err != nil {
				return err
			}
			cfg = read
			cfg.ApplyFormat()

			noColor := cfg.NoColor || !IsTerminal()
			if fs.Changed("no-color") {
				noColor, _ = fs.GetBool("no-color")
			}
			color.Disable(noColor)

			verbose := cfg.Verbose
			if fs.Changed("verbose") {
				verbose, _ = fs.GetBool("verbose")
			}
			logger.WantVerbose(verbose)

			if flag, err := fs.GetBool("quiet"); err == nil {
				logger.WantQuiet(flag)
			}
			if flag, err := fs.GetBool("timestamps"); err == nil {
				logger.WantTime(flag)
			}
			return nil
		}),
	}

	rootCmd.PersistentFlags().Bool("no-color", false, "Disable color output")
	rootCmd.PersistentFlags().Bool("timestamps", false, "Enable timestamps in output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Show less output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Show more output")
	rootCmd.PersistentFlags().String("config", "", "Path to the configuration file (defaults to $EXPECT_HOME/config.toml)")
	commands.AddHelpFlag(rootCmd, "expect")

	factory := writer.NewFactory()
	rootCmd.AddCommand(commands.Compat(logger, &cfg, verifier, factory))
	rootCmd.AddCommand(commands.Members(logger, &cfg, verifier, factory))
	rootCmd.AddCommand(commands.Version(logger, Version))

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate(`{{.Version}}{{"\n"}}`)
	rootCmd.SetOut(logger.Writer())
	rootCmd.SetErr(logger.Writer())

	return rootCmd
}

func initConfig(path string) (config.Config, error) {
	if path == "" {
		var err error
		path, err = config.DefaultConfigPath()
		if err != nil {
			return config.Config{}, errors.Wrap(err, "getting config path")
		}
	}

	cfg, err := config.Read(path)
	if err != nil {
		return config.Config{}, errors.Wrap(err, "reading expect config")
	}
	return cfg, nil
}
