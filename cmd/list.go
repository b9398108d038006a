package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/PolarWolf314/ghsecrets/internal/configs"
	"github.com/PolarWolf314/ghsecrets/internal/ui"
	"github.com/PolarWolf314/ghsecrets/internal/workflows"

	"github.com/spf13/cobra"
)

// NewListCmd returns the list command.
func NewListCmd() *cobra.Command {
	flags := &configFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show which configured secrets have a value locally",
		Long: `Lists the configured secret names and whether each one is set in the
environment. Values are never printed. No token is needed and GitHub is
not contacted.

Examples:
  ghsecrets list
  ghsecrets list --env-file .env.production`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, flags)
		},
	}

	flags.register(cmd.Flags(), false)
	return cmd
}

func runList(cmd *cobra.Command, flags *configFlags) error {
	Logger.Infof("Starting list command")

	cfg, err := configs.Load(flags.loadOptions(cmd.Flags()))
	if err != nil {
		return err
	}
	logConfig(cmd, cfg)

	result := workflows.List(cmd.Context(), workflows.ListOptions{
		Secrets: cfg.Secrets(os.LookupEnv),
	})

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, formatListHeader(cfg))
	for _, s := range result.Secrets {
		switch s.State {
		case workflows.StateReady:
			fmt.Fprintln(out, ui.SuccessLine("%s %s", s.Name, ui.Muted.Sprintf("%d bytes", s.Length)))
		case workflows.StateEmpty:
			fmt.Fprintln(out, ui.SkipLine("%s: empty", s.Name))
		default:
			fmt.Fprintln(out, ui.SkipLine("%s: not set in environment", s.Name))
		}
	}
	fmt.Fprintf(out, "\n%d/%d secrets ready to publish\n", result.Ready, len(result.Secrets))
	return nil
}

func formatListHeader(cfg *configs.Config) string {
	var b strings.Builder
	b.WriteString("Secrets")
	if cfg.Repo != "" {
		fmt.Fprintf(&b, " for %s", ui.Highlight.Sprint(cfg.Repo))
	}
	fmt.Fprintf(&b, " %s", ui.Muted.Sprint(string(cfg.App)))
	if cfg.ConfigFile != "" {
		fmt.Fprintf(&b, "\n%s", ui.HintLine("Using %s", ui.Path.Sprint(cfg.ConfigFile)))
	}
	return b.String()
}
