package workflows

import (
	"context"
	"errors"
	"fmt"

	"github.com/PolarWolf314/ghsecrets/internal/github"
	"github.com/PolarWolf314/ghsecrets/internal/secrets"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// SecretsAPI is the part of the GitHub client the publish workflow needs.
type SecretsAPI interface {
	PublicKey(ctx context.Context) (*github.PublicKey, error)
	PutSecret(ctx context.Context, name string, secret github.EncryptedSecret) error
}

// OutcomeStatus is the final state of one secret.
type OutcomeStatus string

const (
	// OutcomeSet means GitHub accepted the secret (201 or 204).
	OutcomeSet OutcomeStatus = "set"
	// OutcomeSkipped means the value was empty or unset; nothing was sent.
	OutcomeSkipped OutcomeStatus = "skipped"
	// OutcomeFailed means fetching the key, sealing or uploading failed.
	OutcomeFailed OutcomeStatus = "failed"
	// OutcomeWouldSet is reported instead of OutcomeSet in a dry run.
	OutcomeWouldSet OutcomeStatus = "would-set"
)

// SecretOutcome records what happened to one secret.
type SecretOutcome struct {
	Name   string
	Status OutcomeStatus

	// KeyID is the public key the value was sealed with.
	KeyID string

	// StatusCode and Body are set when GitHub answered with an unexpected status.
	StatusCode int
	Body       string

	// Step is the part of publishing that failed. Empty unless Status is OutcomeFailed.
	Step FailureStep

	// Err is set for failed outcomes.
	Err error
}

// FailureStep names the request or operation a failed secret stopped at.
type FailureStep string

const (
	StepFetchKey FailureStep = "fetching public key"
	StepEncrypt  FailureStep = "encrypting"
	StepUpload   FailureStep = "uploading"
	StepCanceled FailureStep = "canceled"
)

// PublishSummary holds counts of outcomes.
type PublishSummary struct {
	// Total is the number of configured secrets, including skipped ones.
	Total     int
	Succeeded int
	Failed    int
	Skipped   int
}

// PublishOptions configures the publish workflow.
type PublishOptions struct {
	// Secrets are published in this order and reported in this order.
	Secrets []secrets.Secret

	// DryRun reports which secrets would be set without any network call.
	DryRun bool

	// Parallelism is the maximum number of secrets in flight. Values below 1 mean 1.
	Parallelism int
}

// PublishResult contains the outcome of a publish run.
type PublishResult struct {
	// RunID identifies this run in debug logs.
	RunID string

	// Outcomes has one entry per configured secret, in configured order.
	Outcomes []SecretOutcome

	Summary PublishSummary

	DryRun bool
}

// Publish seals and uploads every secret that has a value.
//
// Each secret is handled independently: the public key is fetched, the value
// is sealed against it and the ciphertext is uploaded. A failure at any step
// fails that secret only. Secrets with an empty or unset value are skipped
// without touching the network.
//
// Outcomes are stored by index and counted after every task has finished,
// so the result is the same whatever the parallelism.
func Publish(ctx context.Context, api SecretsAPI, opts PublishOptions) (*PublishResult, error) {
	if api == nil && !opts.DryRun {
		return nil, fmt.Errorf("publish requires a GitHub client")
	}

	result := &PublishResult{
		RunID:    uuid.NewString(),
		Outcomes: make([]SecretOutcome, len(opts.Secrets)),
		DryRun:   opts.DryRun,
	}

	limit := opts.Parallelism
	if limit < 1 {
		limit = 1
	}

	var g errgroup.Group
	g.SetLimit(limit)

	for i, secret := range opts.Secrets {
		if !secret.Publishable() {
			result.Outcomes[i] = SecretOutcome{Name: secret.Name, Status: OutcomeSkipped}
			continue
		}
		if opts.DryRun {
			result.Outcomes[i] = SecretOutcome{Name: secret.Name, Status: OutcomeWouldSet}
			continue
		}

		i, secret := i, secret
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				result.Outcomes[i] = failed(SecretOutcome{Name: secret.Name}, StepCanceled, err)
				return nil
			}
			result.Outcomes[i] = publishOne(ctx, api, secret)
			return nil
		})
	}
	// Tasks record failures in their own slot and never return an error.
	g.Wait()

	result.Summary = summarize(result.Outcomes)
	return result, nil
}

func publishOne(ctx context.Context, api SecretsAPI, secret secrets.Secret) SecretOutcome {
	outcome := SecretOutcome{Name: secret.Name}

	key, err := api.PublicKey(ctx)
	if err != nil {
		return failed(outcome, StepFetchKey, err)
	}
	outcome.KeyID = key.KeyID

	sealed, err := secrets.EncryptSecret(key.Key, secret.Value)
	if err != nil {
		return failed(outcome, StepEncrypt, err)
	}

	err = api.PutSecret(ctx, secret.Name, github.EncryptedSecret{
		EncryptedValue: sealed,
		KeyID:          key.KeyID,
	})
	if err != nil {
		return failed(outcome, StepUpload, err)
	}

	outcome.Status = OutcomeSet
	return outcome
}

func failed(outcome SecretOutcome, step FailureStep, err error) SecretOutcome {
	outcome.Status = OutcomeFailed
	outcome.Step = step
	outcome.Err = err

	var apiErr *github.APIError
	if errors.As(err, &apiErr) {
		outcome.StatusCode = apiErr.StatusCode
		outcome.Body = apiErr.Body
	}
	return outcome
}

func summarize(outcomes []SecretOutcome) PublishSummary {
	summary := PublishSummary{Total: len(outcomes)}
	for _, o := range outcomes {
		switch o.Status {
		case OutcomeSet, OutcomeWouldSet:
			summary.Succeeded++
		case OutcomeFailed:
			summary.Failed++
		case OutcomeSkipped:
			summary.Skipped++
		}
	}
	return summary
}
