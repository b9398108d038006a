// Package logger provides leveled logging for ghsecrets commands.
//
// Verbosity is controlled by the global flags:
//
//   - --verbose: info and warning messages
//   - --debug: everything, including debug details and errors
//
// Without flags only WarnfAlways output is shown; the command's own report
// lines are printed by the cmd package, not the logger.
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Publishing %d secrets to %s", n, repo)
//
// Never pass tokens or secret values to the logger. Log names, lengths and
// key ids instead.
package logger
