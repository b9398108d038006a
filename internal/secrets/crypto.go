package secrets

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	kerrors "github.com/PolarWolf314/ghsecrets/internal/errors"

	"golang.org/x/crypto/nacl/box"
)

// KeySize is the length in bytes of a Curve25519 public or private key.
const KeySize = 32

// randReader is the entropy source for ephemeral keys. Tests may replace it.
var randReader io.Reader = rand.Reader

// DecodePublicKey decodes a base64 repository public key.
func DecodePublicKey(encoded string) (*[KeySize]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrInvalidPublicKey, err)
	}
	if len(raw) != KeySize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d bytes", kerrors.ErrInvalidPublicKey, KeySize, len(raw))
	}

	var key [KeySize]byte
	copy(key[:], raw)
	return &key, nil
}

// EncryptSecret seals value for the holder of the private key matching the
// base64 publicKey and returns the ciphertext as base64.
//
// Each call uses a fresh ephemeral keypair, so sealing the same value twice
// produces different ciphertexts.
func EncryptSecret(publicKey, value string) (string, error) {
	recipient, err := DecodePublicKey(publicKey)
	if err != nil {
		return "", err
	}

	sealed, err := box.SealAnonymous(nil, []byte(value), recipient, randReader)
	if err != nil {
		return "", fmt.Errorf("%w: %v", kerrors.ErrEncryptFailed, err)
	}

	return base64.StdEncoding.EncodeToString(sealed), nil
}

// DecryptSecret opens a base64 sealed box with the recipient's keypair.
func DecryptSecret(ciphertext string, publicKey, privateKey *[KeySize]byte) (string, error) {
	sealed, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: %v", kerrors.ErrDecryptFailed, err)
	}

	plaintext, ok := box.OpenAnonymous(nil, sealed, publicKey, privateKey)
	if !ok {
		return "", fmt.Errorf("%w: sealed box could not be opened", kerrors.ErrDecryptFailed)
	}

	return string(plaintext), nil
}

// GenerateKeyPair creates a Curve25519 keypair and returns the public key
// base64 encoded alongside the raw keys.
func GenerateKeyPair() (string, *[KeySize]byte, *[KeySize]byte, error) {
	publicKey, privateKey, err := box.GenerateKey(randReader)
	if err != nil {
		return "", nil, nil, fmt.Errorf("generating keypair: %w", err)
	}
	return base64.StdEncoding.EncodeToString(publicKey[:]), publicKey, privateKey, nil
}
