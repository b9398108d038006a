// Package configs resolves the settings for a ghsecrets run.
//
// Sources, highest precedence first:
//
//  1. Command-line flags (LoadOptions)
//  2. Environment: GITHUB_REPO, GITHUB_TOKEN, GITHUB_API_URL, after any
//     .env files have been loaded with godotenv (never overriding variables
//     that are already set)
//  3. A project config file, .ghsecrets.toml or .ghsecrets.yaml, found by
//     walking up from the working directory or passed with --config
//  4. Defaults: the public GitHub API, the actions secret store, a 30s
//     request timeout, sequential publishing and DefaultSecretNames
//
// The token is only ever taken from the environment, stdin or a terminal
// prompt. Config files cannot carry it.
//
// Secret names are validated eagerly so that a typo aborts the run before
// any request is made.
package configs
