// Package secrets seals secret values for a GitHub repository.
//
// GitHub publishes a Curve25519 public key per repository (and per secret
// store: actions, dependabot, codespaces). Values are encrypted locally with
// a NaCl sealed box from golang.org/x/crypto/nacl/box:
//
//  1. The base64 public key is decoded and must be exactly 32 bytes
//  2. An ephemeral keypair is generated for every call
//  3. The sealed output (ephemeral public key || box) is base64 encoded
//
// The sender is anonymous and the output is non-deterministic: sealing the
// same value twice yields different ciphertexts. Only the holder of the
// private key can open it, so nothing here can check decryptability against
// a real repository key. DecryptSecret exists for keypairs generated
// locally with GenerateKeyPair.
package secrets
