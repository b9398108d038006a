// Package errors provides typed error values for ghsecrets.
//
// Callers classify failures with errors.Is() instead of matching strings.
//
// # Error Categories
//
//   - Configuration errors: missing or invalid settings (ErrMissingRepo,
//     ErrMissingToken, ErrInvalidRepo, ErrInvalidSecretName). These abort the
//     run before any request is sent.
//   - Key errors: the public key could not be fetched or was incomplete
//     (ErrPublicKeyFetch, ErrMalformedPublicKey).
//   - Crypto errors: sealing failed (ErrInvalidPublicKey, ErrEncryptFailed).
//   - Upload errors: GitHub rejected the secret (ErrUploadFailed).
//
// Key, crypto and upload errors fail a single secret; the run carries on
// with the next one.
//
// # Usage
//
//	if errors.Is(err, kerrors.ErrMissingToken) {
//	    // Show a hint about GITHUB_TOKEN
//	}
//
// Wrap with context:
//
//	return fmt.Errorf("%w: %s", errors.ErrInvalidSecretName, name)
package errors
