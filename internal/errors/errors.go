package errors

import "errors"

// Configuration errors are fatal and are reported before any network call.
var (
	// ErrMissingRepo indicates GITHUB_REPO (or --repo) was not provided.
	ErrMissingRepo = errors.New("GITHUB_REPO must be set")

	// ErrMissingToken indicates GITHUB_TOKEN was not provided.
	ErrMissingToken = errors.New("GITHUB_TOKEN must be set")

	// ErrInvalidRepo indicates the repository is not in owner/name form.
	ErrInvalidRepo = errors.New("repository must be in owner/name form")

	// ErrInvalidSecretName indicates a secret name GitHub would reject.
	ErrInvalidSecretName = errors.New("invalid secret name")

	// ErrNoSecretsConfigured indicates the list of secret names is empty.
	ErrNoSecretsConfigured = errors.New("no secrets configured")

	// ErrInvalidApp indicates an unknown secret store was requested.
	ErrInvalidApp = errors.New("unsupported secret store")

	// ErrUnsupportedConfigFormat indicates a config file with an unknown extension.
	ErrUnsupportedConfigFormat = errors.New("unsupported config file format")
)

// Key errors indicate the repository public key could not be obtained.
var (
	// ErrPublicKeyFetch indicates the public key request failed.
	ErrPublicKeyFetch = errors.New("failed to fetch repository public key")

	// ErrMalformedPublicKey indicates the key response lacked key_id or key.
	ErrMalformedPublicKey = errors.New("public key response is missing key_id or key")
)

// Cryptographic errors indicate failures while sealing or opening a value.
var (
	// ErrInvalidPublicKey indicates the public key is not 32 bytes of base64.
	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrEncryptFailed indicates sealing the secret value failed.
	ErrEncryptFailed = errors.New("failed to encrypt secret")

	// ErrDecryptFailed indicates a sealed box could not be opened.
	ErrDecryptFailed = errors.New("failed to decrypt secret")
)

// Upload and run errors.
var (
	// ErrUploadFailed indicates the secret PUT did not return 201 or 204.
	ErrUploadFailed = errors.New("failed to upload secret")

	// ErrSecretsFailed indicates at least one secret failed in strict mode.
	ErrSecretsFailed = errors.New("one or more secrets failed to publish")
)
