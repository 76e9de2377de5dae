// Package secp256k1 implements the ECDSA-secp256k1-SHA256 signature
// primitive (§C1): SHA-256 digest, RFC 6979 deterministic nonce, low-S
// (BIP-62) canonical signatures, DER encoding.
package secp256k1

import (
	"crypto/sha256"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

// ErrInvalidPrivateKey is returned when a scalar is zero or >= curve order.
var ErrInvalidPrivateKey = fmt.Errorf("secp256k1: invalid private key")

// ErrInvalidPublicKey is returned when a public key does not decode to a
// valid curve point.
var ErrInvalidPublicKey = fmt.Errorf("secp256k1: invalid public key")

// ErrInvalidSignature is returned when a DER signature cannot be parsed.
var ErrInvalidSignature = fmt.Errorf("secp256k1: invalid signature")

// Provider implements the ECDSA-secp256k1-SHA256 signing/verification
// primitive.
type Provider struct{}

// NewProvider returns a secp256k1 Provider.
func NewProvider() *Provider {
	return &Provider{}
}

// DerivePublicKey computes the SEC1-compressed public key for a 32-byte
// private scalar.
func (p *Provider) DerivePublicKey(privateScalar []byte) ([]byte, error) {
	priv, err := parsePrivateKey(privateScalar)
	if err != nil {
		return nil, err
	}
	return priv.PubKey().SerializeCompressed(), nil
}

// Sign signs message with privateScalar and returns a low-S, DER-encoded
// ECDSA signature over SHA-256(message).
func (p *Provider) Sign(privateScalar, message []byte) ([]byte, error) {
	priv, err := parsePrivateKey(privateScalar)
	if err != nil {
		return nil, err
	}
	digest := sha256.Sum256(message)
	sig := ecdsa.Sign(priv, digest[:])
	return sig.Serialize(), nil
}

// Verify reports whether der is a valid, low-S ECDSA signature over
// SHA-256(message) under the SEC1-compressed publicKey. Non-canonical
// (high-S) signatures are rejected, per the BIP-62 non-malleability
// invariant.
func (p *Provider) Verify(publicKey, message, der []byte) bool {
	pub, err := secp256k1.ParsePubKey(publicKey)
	if err != nil {
		return false
	}
	sig, err := ecdsa.ParseDERSignature(der)
	if err != nil {
		return false
	}
	s := sig.S()
	if s.IsOverHalfOrder() {
		return false
	}
	digest := sha256.Sum256(message)
	return sig.Verify(digest[:], pub)
}

func parsePrivateKey(scalar []byte) (*secp256k1.PrivateKey, error) {
	if len(scalar) != 32 {
		return nil, ErrInvalidPrivateKey
	}
	var s secp256k1.ModNScalar
	overflow := s.SetByteSlice(scalar)
	if overflow || s.IsZero() {
		return nil, ErrInvalidPrivateKey
	}
	return secp256k1.NewPrivateKey(&s), nil
}
