package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/PolarWolf314/ghsecrets/cmd"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ghsecrets",
	Short: "ghsecrets - Publish local secrets to GitHub repository secrets.",
	Long: `ghsecrets reads secrets from your environment or a .env file, encrypts
each one with the repository's public key and uploads it through the
GitHub REST API.

Usage:
  ghsecrets <command> [flags]

Available Commands:
  publish    Encrypt and upload the configured secrets
  list       Show which configured secrets have a value locally
  init       Write a starter .ghsecrets.toml
  version    Print version information

Run 'ghsecrets help <command>' for more details on a specific command.
`,
	SilenceUsage:     true,
	SilenceErrors:    true,
	PersistentPreRun: cmd.InitLogger,
	Run: func(c *cobra.Command, args []string) {
		figure.NewColorFigure("ghsecrets", "", "green", true).Print()
		fmt.Println()
		fmt.Println("Run 'ghsecrets --help' to see available commands.")
	},
}

func init() {
	cmd.RegisterGlobalFlags(rootCmd.PersistentFlags())
	cmd.AddCommands(rootCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cmd.Execute(ctx, rootCmd)
	stop()
	os.Exit(code)
}
