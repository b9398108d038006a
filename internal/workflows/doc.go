// Package workflows provides the high-level operations behind each ghsecrets
// command.
//
// The cmd/ package stays thin: it parses flags, resolves configuration,
// calls a workflow and formats the result. Workflows hold the logic:
//
//   - Publish: fetch key, seal and upload every secret that has a value
//   - List: report which configured secrets have a value locally
//
// Workflows never print. Per-secret failures are returned as data in the
// result (SecretOutcome) rather than as an error, so one rejected secret
// does not stop the others. Errors returned directly are reserved for
// misuse such as a missing client.
//
// All workflow functions accept a context.Context as their first parameter.
package workflows
