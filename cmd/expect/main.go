package main

import (
	"os"

	"github.com/heroku/color"

	"github.com/buildpacks/expect/cmd"
	"github.com/buildpacks/expect/internal/commands"
	"github.com/buildpacks/expect/internal/logging"
)

func main() {
	// create logger with defaults
	logger := logging.NewLogWithWriters(color.Stdout(), color.Stderr())

	rootCmd := cmd.NewExpectCommand(logger)

	ctx := commands.CreateCancellableContext()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
