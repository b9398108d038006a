package workflows

import (
	"context"

	"github.com/PolarWolf314/ghsecrets/internal/secrets"
)

// ValueState describes whether a configured secret has a value locally.
type ValueState string

const (
	// StateReady means the variable is set and non-empty.
	StateReady ValueState = "ready"
	// StateEmpty means the variable exists but is empty.
	StateEmpty ValueState = "empty"
	// StateUnset means the variable does not exist.
	StateUnset ValueState = "unset"
)

// SecretState pairs a secret name with its local state. Values are never exposed.
type SecretState struct {
	Name  string
	State ValueState

	// Length is the value length in bytes, for spotting truncated values.
	Length int
}

// ListOptions configures the list workflow.
type ListOptions struct {
	Secrets []secrets.Secret
}

// ListResult contains the outcome of a list operation.
type ListResult struct {
	Secrets []SecretState

	// Ready is the number of secrets that publish would upload.
	Ready int
}

// List reports which configured secrets have values, without contacting GitHub.
func List(ctx context.Context, opts ListOptions) *ListResult {
	result := &ListResult{Secrets: make([]SecretState, 0, len(opts.Secrets))}

	for _, s := range opts.Secrets {
		state := SecretState{Name: s.Name, Length: len(s.Value)}
		switch {
		case s.Publishable():
			state.State = StateReady
			result.Ready++
		case s.Set:
			state.State = StateEmpty
		default:
			state.State = StateUnset
		}
		result.Secrets = append(result.Secrets, state)
	}

	return result
}
