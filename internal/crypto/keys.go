package crypto

import (
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// PublicKey is an algorithm-tagged public key. The zero value is invalid;
// construct with NewPublicKey.
type PublicKey struct {
	alg   Algorithm
	bytes []byte // 32 bytes (Ed25519) or 33 bytes (secp256k1, SEC1-compressed)
}

// NewPublicKey validates and wraps raw public key bytes for the given
// algorithm. For Ed25519 this enforces the 32-byte length; for secp256k1 it
// additionally requires the bytes to decode to a valid curve point with a
// 0x02/0x03 leading byte, matching the data model's construction invariant.
func NewPublicKey(alg Algorithm, raw []byte) (PublicKey, error) {
	switch alg {
	case AlgorithmEd25519:
		if len(raw) != ed25519PubLen {
			return PublicKey{}, fmt.Errorf("%w: ed25519 public key must be %d bytes, got %d", ErrInvalidInput, ed25519PubLen, len(raw))
		}
	case AlgorithmEcdsaSecp256k1Sha256:
		if len(raw) != secp256k1PubLen {
			return PublicKey{}, fmt.Errorf("%w: secp256k1 public key must be %d bytes, got %d", ErrInvalidInput, secp256k1PubLen, len(raw))
		}
		if raw[0] != 0x02 && raw[0] != 0x03 {
			return PublicKey{}, fmt.Errorf("%w: secp256k1 public key must have a 0x02 or 0x03 prefix", ErrInvalidInput)
		}
		if _, err := secp256k1.ParsePubKey(raw); err != nil {
			return PublicKey{}, fmt.Errorf("%w: invalid secp256k1 point: %v", ErrVerification, err)
		}
	default:
		return PublicKey{}, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, alg)
	}

	cp := make([]byte, len(raw))
	copy(cp, raw)
	return PublicKey{alg: alg, bytes: cp}, nil
}

// Algorithm returns the key's algorithm tag.
func (p PublicKey) Algorithm() Algorithm { return p.alg }

// Bytes returns the canonical encoding of the key.
func (p PublicKey) Bytes() []byte {
	cp := make([]byte, len(p.bytes))
	copy(cp, p.bytes)
	return cp
}

// KeyID derives this key's stable identifier (§C2).
func (p PublicKey) KeyID() string { return KeyID(p.bytes) }

// PrivateKey is an algorithm-tagged private scalar/seed. Ownership is
// caller's; call Close to zero the underlying memory once it's no longer
// needed.
type PrivateKey struct {
	alg Algorithm
	sk  *SecretKey
}

// NewPrivateKey validates and wraps a 32-byte scalar/seed for the given
// algorithm. For secp256k1 the scalar must be non-zero and less than the
// curve order.
func NewPrivateKey(alg Algorithm, raw []byte) (PrivateKey, error) {
	if len(raw) != 32 {
		return PrivateKey{}, fmt.Errorf("%w: private key must be 32 bytes, got %d", ErrInvalidInput, len(raw))
	}

	switch alg {
	case AlgorithmEd25519:
		// Any 32-byte seed is valid for Ed25519.
	case AlgorithmEcdsaSecp256k1Sha256:
		scalar := new(secp256k1.ModNScalar)
		overflow := scalar.SetByteSlice(raw)
		if overflow || scalar.IsZero() {
			return PrivateKey{}, fmt.Errorf("%w: secp256k1 scalar must be non-zero and less than the curve order", ErrInvalidInput)
		}
	default:
		return PrivateKey{}, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, alg)
	}

	return PrivateKey{alg: alg, sk: NewSecretKeyWithCopy(raw)}, nil
}

// Algorithm returns the key's algorithm tag.
func (p PrivateKey) Algorithm() Algorithm { return p.alg }

// Bytes returns a copy of the raw scalar/seed. Returns nil once Close has
// been called.
func (p PrivateKey) Bytes() []byte {
	if p.sk == nil {
		return nil
	}
	return p.sk.Copy()
}

// Close securely erases the underlying key material.
func (p PrivateKey) Close() {
	if p.sk != nil {
		p.sk.Close()
	}
}

// DerivePublicKey computes the public key corresponding to this private key.
func (p PrivateKey) DerivePublicKey() (PublicKey, error) {
	raw := p.Bytes()
	if raw == nil {
		return PublicKey{}, fmt.Errorf("%w: private key is closed", ErrInvalidInput)
	}
	defer SecureErase(raw)

	switch p.alg {
	case AlgorithmEd25519:
		pub, err := ed25519Primitive.DeriveKeyPair(raw)
		if err != nil {
			return PublicKey{}, err
		}
		return NewPublicKey(AlgorithmEd25519, pub)
	case AlgorithmEcdsaSecp256k1Sha256:
		pub, err := secp256k1Primitive.DerivePublicKey(raw)
		if err != nil {
			return PublicKey{}, err
		}
		return NewPublicKey(AlgorithmEcdsaSecp256k1Sha256, pub)
	default:
		return PublicKey{}, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, p.alg)
	}
}

// KeyPair binds a private key to its derived public key and key id, per the
// data model's invariant that KeyPair.KeyID() == PublicKey.KeyID() always.
type KeyPair struct {
	private PrivateKey
	public  PublicKey
	keyID   string
}

// NewKeyPair derives the public key and key id from a private key.
func NewKeyPair(private PrivateKey) (*KeyPair, error) {
	public, err := private.DerivePublicKey()
	if err != nil {
		return nil, err
	}
	return &KeyPair{private: private, public: public, keyID: public.KeyID()}, nil
}

// FromPrivateKeyBytes derives a KeyPair from a 32-byte scalar/seed.
func FromPrivateKeyBytes(alg Algorithm, raw []byte) (*KeyPair, error) {
	priv, err := NewPrivateKey(alg, raw)
	if err != nil {
		return nil, err
	}
	return NewKeyPair(priv)
}

// Private returns the wrapped private key.
func (kp *KeyPair) Private() PrivateKey { return kp.private }

// Public returns the derived public key.
func (kp *KeyPair) Public() PublicKey { return kp.public }

// KeyID returns the stable key identifier, equal to kp.Public().KeyID().
func (kp *KeyPair) KeyID() string { return kp.keyID }

// Algorithm returns the key pair's algorithm tag.
func (kp *KeyPair) Algorithm() Algorithm { return kp.private.alg }

// Close securely erases the private key material.
func (kp *KeyPair) Close() { kp.private.Close() }
