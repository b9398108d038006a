package configs

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	kerrors "github.com/PolarWolf314/ghsecrets/internal/errors"
	"github.com/PolarWolf314/ghsecrets/internal/github"
	"github.com/PolarWolf314/ghsecrets/internal/secrets"
	"github.com/PolarWolf314/ghsecrets/internal/utils"
)

// Environment variables read at startup.
const (
	EnvRepo   = "GITHUB_REPO"
	EnvToken  = "GITHUB_TOKEN"
	EnvAPIURL = "GITHUB_API_URL"
)

// DefaultSecretNames are published when neither flags nor a config file name any.
var DefaultSecretNames = []string{
	"ANTHROPIC_API_KEY",
	"SLACK_BOT_TOKEN",
	"SLACK_SIGNING_SECRET",
	"SLACK_INBOX_CHANNEL_ID",
	"SLACK_WEEKLY_CHANNEL_ID",
	"SLACK_MONTHLY_CHANNEL_ID",
	"SLACK_USER_ID",
}

var secretNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Config is the resolved configuration for a run.
type Config struct {
	Repo        string
	Token       string
	APIURL      string
	App         github.App
	Timeout     time.Duration
	Parallelism int
	SecretNames []string

	// ConfigFile is the config file that was applied, if any.
	ConfigFile string

	// EnvFiles lists the .env files that were loaded.
	EnvFiles []string
}

// LoadOptions carries command-line overrides. Zero values mean "not set",
// except for the pointer fields where nil means "not set".
type LoadOptions struct {
	ConfigPath  string
	EnvFiles    []string
	Repo        string
	Token       string
	APIURL      string
	App         string
	Timeout     *time.Duration
	Parallelism *int
	SecretNames []string

	// Lookup reads environment variables. Defaults to os.LookupEnv.
	Lookup secrets.Lookup
}

// Load builds a Config. Precedence is flags, then environment (after .env
// files are loaded), then the config file, then defaults.
//
// Load does not require a repository or token; call Validate before
// talking to GitHub.
func Load(opts LoadOptions) (*Config, error) {
	lookup := opts.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}

	envFiles := opts.EnvFiles
	if envFiles == nil {
		envFiles = []string{DefaultEnvFile}
	}
	loaded, err := LoadEnvFiles(envFiles)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		APIURL:      github.DefaultBaseURL,
		App:         github.AppActions,
		Timeout:     github.DefaultTimeout,
		Parallelism: 1,
		EnvFiles:    loaded,
	}

	configPath := opts.ConfigPath
	if configPath == "" {
		configPath, err = utils.FindConfigFile(ConfigFileNames)
		if err != nil {
			return nil, err
		}
	}

	app := opts.App
	if configPath != "" {
		file, err := LoadFile(configPath)
		if err != nil {
			return nil, err
		}
		if err := cfg.applyFile(file); err != nil {
			return nil, fmt.Errorf("%s: %w", configPath, err)
		}
		if app == "" {
			app = file.App
		}
		cfg.ConfigFile = configPath
	}

	if v, ok := lookup(EnvRepo); ok {
		cfg.Repo = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvToken); ok {
		cfg.Token = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvAPIURL); ok && strings.TrimSpace(v) != "" {
		cfg.APIURL = strings.TrimSpace(v)
	}

	if opts.Repo != "" {
		cfg.Repo = strings.TrimSpace(opts.Repo)
	}
	if opts.Token != "" {
		cfg.Token = opts.Token
	}
	if opts.APIURL != "" {
		cfg.APIURL = opts.APIURL
	}
	if opts.Timeout != nil {
		cfg.Timeout = *opts.Timeout
	}
	if opts.Parallelism != nil {
		cfg.Parallelism = *opts.Parallelism
	}
	if len(opts.SecretNames) > 0 {
		cfg.SecretNames = opts.SecretNames
	}
	if len(cfg.SecretNames) == 0 {
		cfg.SecretNames = DefaultSecretNames
	}

	if cfg.App, err = github.ParseApp(app); err != nil {
		return nil, err
	}
	if cfg.Parallelism < 1 {
		cfg.Parallelism = 1
	}
	if cfg.Timeout < 0 {
		return nil, fmt.Errorf("timeout must not be negative, got %s", cfg.Timeout)
	}

	names, err := NormalizeSecretNames(cfg.SecretNames)
	if err != nil {
		return nil, err
	}
	cfg.SecretNames = names

	return cfg, nil
}

func (c *Config) applyFile(file *FileConfig) error {
	if len(file.Secrets) > 0 {
		c.SecretNames = file.Secrets
	}
	if file.APIURL != "" {
		c.APIURL = file.APIURL
	}
	if file.Parallel != 0 {
		c.Parallelism = file.Parallel
	}
	if file.Timeout != "" {
		timeout, err := time.ParseDuration(file.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout %q: %w", file.Timeout, err)
		}
		c.Timeout = timeout
	}
	return nil
}

// Validate checks the settings needed to talk to GitHub. A missing
// repository and a missing token are reported together.
func (c *Config) Validate() error {
	var errs []error
	if c.Repo == "" {
		errs = append(errs, kerrors.ErrMissingRepo)
	}
	if c.Token == "" {
		errs = append(errs, kerrors.ErrMissingToken)
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	owner, repo, ok := strings.Cut(c.Repo, "/")
	if !ok || owner == "" || repo == "" || strings.Contains(repo, "/") {
		return fmt.Errorf("%w: %q", kerrors.ErrInvalidRepo, c.Repo)
	}
	if len(c.SecretNames) == 0 {
		return kerrors.ErrNoSecretsConfigured
	}
	return nil
}

// Secrets resolves the configured names through lookup, in order.
func (c *Config) Secrets(lookup secrets.Lookup) []secrets.Secret {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return secrets.FromEnvironment(c.SecretNames, lookup)
}

// NormalizeSecretNames trims and validates names and drops exact duplicates,
// keeping the first occurrence. Names that differ only in case are kept
// because the environment lookup is case-sensitive.
func NormalizeSecretNames(names []string) ([]string, error) {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if err := ValidateSecretName(name); err != nil {
			return nil, err
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	if len(out) == 0 {
		return nil, kerrors.ErrNoSecretsConfigured
	}
	return out, nil
}

// ValidateSecretName applies GitHub's naming rules: letters, digits and
// underscores only, no leading digit, no GITHUB_ prefix.
func ValidateSecretName(name string) error {
	if !secretNamePattern.MatchString(name) {
		return fmt.Errorf("%w: %q may only contain letters, digits and underscores and must not start with a digit", kerrors.ErrInvalidSecretName, name)
	}
	if strings.HasPrefix(strings.ToUpper(name), "GITHUB_") {
		return fmt.Errorf("%w: %q must not start with GITHUB_", kerrors.ErrInvalidSecretName, name)
	}
	return nil
}
