package cmd

import (
	"context"
	"fmt"

	logger "github.com/PolarWolf314/ghsecrets/internal/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger
)

// RegisterGlobalFlags adds --verbose and --debug to the root command's persistent flags.
func RegisterGlobalFlags(fs *pflag.FlagSet) {
	fs.BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	fs.BoolVarP(&debug, "debug", "d", false, "enable debug output")
}

// InitLogger builds the shared Logger from the global flags. Use it as the
// root command's PersistentPreRun.
func InitLogger(cmd *cobra.Command, args []string) {
	Logger = logger.Logger{
		Verbose: verbose,
		Debug:   debug,
	}
	Logger.Debugf("Initializing %s command with verbose=%t, debug=%t", cmd.Name(), verbose, debug)
}

// AddCommands attaches every subcommand to root.
func AddCommands(root *cobra.Command) {
	root.AddCommand(NewPublishCmd())
	root.AddCommand(NewListCmd())
	root.AddCommand(NewInitCmd())
	root.AddCommand(versionCmd)
}

// Execute runs root and prints any error to the command's standard output,
// like every other line of the report. It returns the process exit code.
func Execute(ctx context.Context, root *cobra.Command) int {
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(root.OutOrStdout(), FormatError(err))
		return 1
	}
	return 0
}

// Helper functions for testing

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	Logger = logger.Logger{}
}
