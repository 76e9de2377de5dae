// Package crypto provides algorithm-agnostic signing/verification primitives
// and key material types for RFC 9421 HTTP message signatures.
package crypto

import "fmt"

// Algorithm identifies which signature scheme a key or signature belongs to.
type Algorithm int

const (
	// AlgorithmUnknown indicates an unrecognized or invalid algorithm.
	AlgorithmUnknown Algorithm = iota
	// AlgorithmEd25519 is EdDSA over Curve25519.
	AlgorithmEd25519
	// AlgorithmEcdsaSecp256k1Sha256 is ECDSA over secp256k1 with SHA-256.
	AlgorithmEcdsaSecp256k1Sha256
)

// Wire identifier strings, as they appear in the `alg` signature parameter.
const (
	wireEd25519     = "ed25519"
	wireSecp256k1   = "ecdsa-secp256k1-sha256"
	ed25519PubLen   = 32
	secp256k1PubLen = 33
)

// ErrUnknownAlgorithm is returned when a wire identifier or key encoding
// does not map to a supported algorithm. It wraps ErrUnsupported so callers
// switching on the shared error taxonomy catch it with errors.Is.
var ErrUnknownAlgorithm = fmt.Errorf("%w: unknown algorithm", ErrUnsupported)

// String returns the RFC 9421 wire identifier for the algorithm.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmEd25519:
		return wireEd25519
	case AlgorithmEcdsaSecp256k1Sha256:
		return wireSecp256k1
	default:
		return "unknown"
	}
}

// AlgorithmFromWire maps the `alg` parameter's string value to an Algorithm.
// Returns AlgorithmUnknown for anything else; callers should treat that as
// Unsupported per the signer/verifier error taxonomy.
func AlgorithmFromWire(s string) Algorithm {
	switch s {
	case wireEd25519:
		return AlgorithmEd25519
	case wireSecp256k1:
		return AlgorithmEcdsaSecp256k1Sha256
	default:
		return AlgorithmUnknown
	}
}

// AlgorithmFromPublicKeyBytes infers the algorithm from the length (and, for
// secp256k1, the leading byte) of an encoded public key: a bare 32-byte
// compressed edwards point for Ed25519, and a 33-byte SEC1-compressed point
// (0x02/0x03 prefix) for secp256k1.
func AlgorithmFromPublicKeyBytes(pub []byte) Algorithm {
	switch len(pub) {
	case ed25519PubLen:
		return AlgorithmEd25519
	case secp256k1PubLen:
		switch pub[0] {
		case 0x02, 0x03:
			return AlgorithmEcdsaSecp256k1Sha256
		}
	}
	return AlgorithmUnknown
}
