package cmd

import (
	"time"

	"github.com/PolarWolf314/ghsecrets/internal/configs"

	"github.com/spf13/pflag"
)

// configFlags are the flags shared by every command that resolves a Config.
type configFlags struct {
	configPath  string
	envFiles    []string
	repo        string
	apiURL      string
	app         string
	timeout     time.Duration
	parallel    int
	secretNames []string
}

// register adds the shared flags to fs. Transport flags (timeout and
// parallelism) are only registered for commands that talk to GitHub.
func (f *configFlags) register(fs *pflag.FlagSet, transport bool) {
	fs.StringVarP(&f.configPath, "config", "c", "", "path to a .ghsecrets.toml or .ghsecrets.yaml file")
	fs.StringSliceVar(&f.envFiles, "env-file", []string{configs.DefaultEnvFile}, ".env file to load before reading the environment (repeatable)")
	fs.StringVarP(&f.repo, "repo", "r", "", "target repository as owner/name (overrides $"+configs.EnvRepo+")")
	fs.StringSliceVarP(&f.secretNames, "secret", "s", nil, "secret name to publish (repeatable, replaces the configured list)")
	fs.StringVar(&f.app, "app", "", "secret store: actions, dependabot or codespaces (default actions)")

	if transport {
		fs.StringVar(&f.apiURL, "api-url", "", "GitHub API base URL (overrides $"+configs.EnvAPIURL+")")
		fs.DurationVar(&f.timeout, "timeout", 0, "timeout for each HTTP request (default 30s)")
		fs.IntVarP(&f.parallel, "parallel", "p", 1, "number of secrets to publish concurrently")
	}
}

// loadOptions converts the parsed flags into configs.LoadOptions. Flags the
// user did not pass are left unset so lower-precedence sources apply.
func (f *configFlags) loadOptions(fs *pflag.FlagSet) configs.LoadOptions {
	opts := configs.LoadOptions{
		ConfigPath:  f.configPath,
		EnvFiles:    f.envFiles,
		Repo:        f.repo,
		APIURL:      f.apiURL,
		App:         f.app,
		SecretNames: f.secretNames,
	}
	if fs.Changed("timeout") {
		timeout := f.timeout
		opts.Timeout = &timeout
	}
	if fs.Changed("parallel") {
		parallel := f.parallel
		opts.Parallelism = &parallel
	}
	return opts
}
