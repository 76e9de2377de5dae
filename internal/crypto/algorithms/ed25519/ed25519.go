// Package ed25519 implements the Ed25519 signature primitive (§C1) over raw
// bytes, plus public key derivation from a seed: no encoding and no framing
// beyond the algorithm itself.
package ed25519

import (
	"crypto/ed25519"
	"fmt"
)

// ErrInvalidSeed is returned when a seed is not exactly ed25519.SeedSize
// bytes.
var ErrInvalidSeed = fmt.Errorf("ed25519: seed must be %d bytes", ed25519.SeedSize)

// Provider implements the Ed25519 signing/verification primitive.
type Provider struct{}

// NewProvider returns an Ed25519 Provider.
func NewProvider() *Provider {
	return &Provider{}
}

// DeriveKeyPair expands a 32-byte seed into the raw public key bytes
// corresponding to it.
func (p *Provider) DeriveKeyPair(seed []byte) (publicKey []byte, err error) {
	if len(seed) != ed25519.SeedSize {
		return nil, ErrInvalidSeed
	}
	priv := ed25519.NewKeyFromSeed(seed)
	return priv.Public().(ed25519.PublicKey), nil
}

// Sign signs message with the private key expanded from seed, returning the
// raw 64-byte signature.
func (p *Provider) Sign(seed, message []byte) ([]byte, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, ErrInvalidSeed
	}
	priv := ed25519.NewKeyFromSeed(seed)
	return ed25519.Sign(priv, message), nil
}

// Verify reports whether sig is a valid Ed25519 signature over message under
// publicKey.
func (p *Provider) Verify(publicKey, message, sig []byte) bool {
	if len(publicKey) != ed25519.PublicKeySize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(publicKey), message, sig)
}
