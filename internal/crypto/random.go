package crypto

import (
	"crypto/rand"
	"errors"
	"io"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

var (
	// ErrRandomGeneration is returned when random number generation fails.
	ErrRandomGeneration = errors.New("failed to generate random bytes")
)

// RandomBytes generates n cryptographically secure random bytes.
// It uses crypto/rand which reads from the system's CSPRNG.
func RandomBytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, nil
	}

	b := make([]byte, n)
	_, err := io.ReadFull(rand.Reader, b)
	if err != nil {
		return nil, ErrRandomGeneration
	}
	return b, nil
}

// RandomSecretKey generates a random 32-byte private scalar/seed for the
// given algorithm. The returned SecretKey should be closed when no longer
// needed to securely erase the key material from memory.
func RandomSecretKey(alg Algorithm) (*SecretKey, error) {
	switch alg {
	case AlgorithmEcdsaSecp256k1Sha256:
		return randomSecp256k1SecretKey()
	case AlgorithmEd25519:
		return randomEd25519SecretKey()
	default:
		return nil, ErrUnknownAlgorithm
	}
}

// randomSecp256k1SecretKey generates a random secp256k1 private scalar,
// rejecting (and retrying) the astronomically unlikely case of a
// zero/overflowing draw.
func randomSecp256k1SecretKey() (*SecretKey, error) {
	key, err := RandomBytes(SecretKeySecp256k1Size)
	if err != nil {
		return nil, err
	}

	var scalar secp256k1.ModNScalar
	overflow := scalar.SetByteSlice(key)
	if overflow || scalar.IsZero() {
		SecureErase(key)
		return randomSecp256k1SecretKey()
	}

	sk := NewSecretKey(key)
	return sk, nil
}

// randomEd25519SecretKey generates a random Ed25519 seed.
func randomEd25519SecretKey() (*SecretKey, error) {
	seed, err := RandomBytes(SecretKeyEd25519Size)
	if err != nil {
		return nil, err
	}
	return NewSecretKey(seed), nil
}

// RandomKeyPair generates a random key pair for the given algorithm. The
// returned private key must be closed by the caller once no longer needed.
func RandomKeyPair(alg Algorithm) (*KeyPair, error) {
	sk, err := RandomSecretKey(alg)
	if err != nil {
		return nil, err
	}
	defer sk.Close()

	priv, err := NewPrivateKey(alg, sk.Data())
	if err != nil {
		return nil, err
	}
	return NewKeyPair(priv)
}
