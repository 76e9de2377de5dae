package crypto

import (
	"fmt"
	"math/big"
)

// Signature is an algorithm-tagged signature value: 64 raw bytes for
// Ed25519, or an ASN.1 DER ECDSA signature for secp256k1 (§C3).
type Signature struct {
	alg   Algorithm
	bytes []byte
}

// NewSignature wraps raw signature bytes with their algorithm tag, without
// validating DER structure — use Decode to parse and validate untrusted
// wire bytes.
func NewSignature(alg Algorithm, raw []byte) Signature {
	cp := make([]byte, len(raw))
	copy(cp, raw)
	return Signature{alg: alg, bytes: cp}
}

// Algorithm returns the signature's algorithm tag.
func (s Signature) Algorithm() Algorithm { return s.alg }

// Encode returns the wire byte encoding: 64 raw bytes for Ed25519, DER for
// secp256k1. Ed25519 signatures are copied back unchanged; secp256k1
// signatures are re-encoded through MakeSignatureCanonical, so a high-S
// value wrapped with NewSignature is emitted in its low-S form (Decode
// rejects high-S input outright).
func (s Signature) Encode() ([]byte, error) {
	switch s.alg {
	case AlgorithmEd25519:
		if len(s.bytes) != 64 {
			return nil, fmt.Errorf("%w: ed25519 signature must be 64 bytes, got %d", ErrInvalidInput, len(s.bytes))
		}
		cp := make([]byte, 64)
		copy(cp, s.bytes)
		return cp, nil
	case AlgorithmEcdsaSecp256k1Sha256:
		canon := MakeSignatureCanonical(s.bytes)
		if canon == nil {
			return nil, fmt.Errorf("%w: invalid DER ECDSA signature", ErrInvalidInput)
		}
		return canon, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, s.alg)
	}
}

// Decode parses wire signature bytes for the given algorithm (§C3).
//
// Ed25519 requires exactly 64 bytes. secp256k1 expects DER; on DER decode
// failure, a 64-byte input is accepted as a leniency fallback and
// reinterpreted as raw big-endian r||s (32 bytes each), matching the
// scenario where a peer emitted the non-preferred raw form.
func Decode(alg Algorithm, raw []byte) (Signature, error) {
	switch alg {
	case AlgorithmEd25519:
		if len(raw) != 64 {
			return Signature{}, fmt.Errorf("%w: ed25519 signature must be 64 bytes, got %d", ErrInvalidInput, len(raw))
		}
		return NewSignature(AlgorithmEd25519, raw), nil
	case AlgorithmEcdsaSecp256k1Sha256:
		switch ECDSACanonicality(raw) {
		case CanonicityFullyCanonical:
			return NewSignature(AlgorithmEcdsaSecp256k1Sha256, raw), nil
		case CanonicityCanonical:
			return Signature{}, fmt.Errorf("%w: high-S ECDSA signature rejected", ErrVerification)
		}
		if len(raw) == 64 {
			r := new(big.Int).SetBytes(raw[:32])
			s := new(big.Int).SetBytes(raw[32:])
			der := encodeDERSignature(r, s)
			return Decode(AlgorithmEcdsaSecp256k1Sha256, der)
		}
		return Signature{}, fmt.Errorf("%w: invalid secp256k1 signature encoding", ErrInvalidInput)
	default:
		return Signature{}, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, alg)
	}
}

// Raw returns the underlying signature bytes as stored (DER or raw,
// whichever form the Signature was constructed with).
func (s Signature) Raw() []byte {
	cp := make([]byte, len(s.bytes))
	copy(cp, s.bytes)
	return cp
}

