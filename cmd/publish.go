package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/PolarWolf314/ghsecrets/internal/configs"
	kerrors "github.com/PolarWolf314/ghsecrets/internal/errors"
	"github.com/PolarWolf314/ghsecrets/internal/github"
	"github.com/PolarWolf314/ghsecrets/internal/ui"
	"github.com/PolarWolf314/ghsecrets/internal/utils"
	"github.com/PolarWolf314/ghsecrets/internal/workflows"

	"github.com/spf13/cobra"
)

type publishFlags struct {
	configFlags

	dryRun      bool
	strict      bool
	tokenStdin  bool
	promptToken bool
}

// NewPublishCmd returns the publish command.
func NewPublishCmd() *cobra.Command {
	flags := &publishFlags{}

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Encrypt secrets from the environment and upload them to GitHub",
		Long: `Reads each configured secret from the environment, seals it with the
repository's public key and uploads it through the GitHub REST API.

Secrets that are unset or empty are skipped. A secret GitHub rejects is
reported and the run continues with the next one; use --strict to exit
non-zero when that happens.

The repository and token come from GITHUB_REPO and GITHUB_TOKEN, which may
be exported or set in a .env file.

Examples:
  # Publish the configured secrets
  ghsecrets publish

  # Publish two secrets to a specific repository
  ghsecrets publish --repo octo-org/hello-world -s API_KEY -s DB_PASSWORD

  # Pipe a token from the GitHub CLI
  gh auth token | ghsecrets publish --token-stdin

  # Show what would be uploaded without calling GitHub
  ghsecrets publish --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPublish(cmd, flags)
		},
	}

	flags.register(cmd.Flags(), true)
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "report what would be uploaded without contacting GitHub")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "exit non-zero if any secret fails to publish")
	cmd.Flags().BoolVar(&flags.tokenStdin, "token-stdin", false, "read the GitHub token from stdin")
	cmd.Flags().BoolVar(&flags.promptToken, "prompt-token", false, "prompt for the GitHub token if it is not set")
	cmd.MarkFlagsMutuallyExclusive("token-stdin", "prompt-token")

	return cmd
}

func runPublish(cmd *cobra.Command, flags *publishFlags) error {
	Logger.Infof("Starting publish command")
	ctx := cmd.Context()

	opts := flags.loadOptions(cmd.Flags())
	if flags.tokenStdin {
		token, err := readTokenInput(cmd)
		if err != nil {
			return wrapf(err, "reading token from stdin")
		}
		opts.Token = token
	}

	cfg, err := configs.Load(opts)
	if err != nil {
		return err
	}
	logConfig(cmd, cfg)

	if cfg.Token == "" && flags.promptToken {
		token, err := utils.PromptHidden("GitHub token: ")
		if err != nil {
			return wrapf(err, "prompting for token")
		}
		cfg.Token = token
	}

	list := cfg.Secrets(os.LookupEnv)

	var api workflows.SecretsAPI
	if !flags.dryRun {
		if err := cfg.Validate(); err != nil {
			return err
		}
		client, err := github.NewClient(cfg.Repo, cfg.Token,
			github.WithBaseURL(cfg.APIURL),
			github.WithTimeout(cfg.Timeout),
			github.WithApp(cfg.App),
		)
		if err != nil {
			return Logger.ErrorfAndReturn("creating GitHub client: %w", err)
		}
		api = client
	}

	target := cfg.Repo
	if target == "" {
		target = "repository"
	}
	spinner, cleanup := startSpinner(fmt.Sprintf("Publishing %s to %s...", utils.Plural(len(list), "secret"), target), cmd.OutOrStdout())
	defer cleanup()

	result, err := workflows.Publish(ctx, api, workflows.PublishOptions{
		Secrets:     list,
		DryRun:      flags.dryRun,
		Parallelism: cfg.Parallelism,
	})
	if err != nil {
		spinner.FinalMSG = ui.FailureLine("Publish failed: %v", err)
		return err
	}

	Logger.Infof("Run %s finished: %d set, %d failed, %d skipped",
		result.RunID, result.Summary.Succeeded, result.Summary.Failed, result.Summary.Skipped)
	for _, o := range result.Outcomes {
		Logger.Debugf("run=%s secret=%s status=%s key_id=%s", result.RunID, o.Name, o.Status, o.KeyID)
	}

	spinner.FinalMSG = formatPublishResult(result)

	if flags.strict && result.Summary.Failed > 0 {
		return fmt.Errorf("%w: %d of %d", kerrors.ErrSecretsFailed, result.Summary.Failed, result.Summary.Total)
	}
	return nil
}

// readTokenInput reads the token from the command's input, which is the
// process stdin unless a test replaced it.
func readTokenInput(cmd *cobra.Command) (string, error) {
	in := cmd.InOrStdin()
	if in == os.Stdin {
		return utils.ReadTokenFromStdin()
	}
	return utils.ReadToken(in)
}

func logConfig(cmd *cobra.Command, cfg *configs.Config) {
	if cmd.Flags().Changed("env-file") && len(cfg.EnvFiles) == 0 {
		Logger.WarnfAlways("None of the env files given with --env-file exist")
	}
	if cfg.ConfigFile != "" {
		Logger.Infof("Using config file %s", cfg.ConfigFile)
	}
	for _, f := range cfg.EnvFiles {
		Logger.Infof("Loaded environment from %s", f)
	}
	Logger.Debugf("repo=%s app=%s api=%s timeout=%s parallel=%d secrets=%s",
		cfg.Repo, cfg.App, cfg.APIURL, cfg.Timeout, cfg.Parallelism, utils.FormatNames(cfg.SecretNames))
}

// formatPublishResult renders one line per secret followed by a summary.
func formatPublishResult(result *workflows.PublishResult) string {
	var b strings.Builder
	for _, o := range result.Outcomes {
		b.WriteString(formatOutcome(o))
		b.WriteString("\n")
	}

	verb := "Set"
	if result.DryRun {
		verb = "Would set"
	}
	fmt.Fprintf(&b, "\n%s %d/%d secrets", verb, result.Summary.Succeeded, result.Summary.Total)
	return b.String()
}

func formatOutcome(o workflows.SecretOutcome) string {
	switch o.Status {
	case workflows.OutcomeSet:
		return ui.SuccessLine("Set secret: %s", o.Name)
	case workflows.OutcomeWouldSet:
		return ui.SuccessLine("Would set secret: %s", o.Name)
	case workflows.OutcomeSkipped:
		return ui.SkipLine("Skipping %s: not set in environment", o.Name)
	default:
		if o.StatusCode != 0 && o.Step == workflows.StepFetchKey {
			return ui.FailureLine("Failed to set %s: %s: %d %s", o.Name, o.Step, o.StatusCode, o.Body)
		}
		if o.StatusCode != 0 {
			return ui.FailureLine("Failed to set %s: %d %s", o.Name, o.StatusCode, o.Body)
		}
		return ui.FailureLine("Failed to set %s: %v", o.Name, o.Err)
	}
}
