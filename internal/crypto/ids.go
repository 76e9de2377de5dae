package crypto

import (
	"crypto/sha256"
	"encoding/hex"
)

// KeyIDSize is the number of hex characters in a derived key id (§C2: 16
// lowercase hex characters, i.e. the first 8 bytes of SHA-256).
const KeyIDSize = 16

// KeyID computes the stable key identifier for an encoded public key:
// hex_lower(SHA-256(publicKeyBytes)[0:8]).
//
// The input must be the canonical encoding for the key's algorithm (32-byte
// compressed edwards point for Ed25519, 33-byte SEC1-compressed point for
// secp256k1) — the same computation applies regardless of algorithm.
func KeyID(publicKeyBytes []byte) string {
	sum := sha256.Sum256(publicKeyBytes)
	return hex.EncodeToString(sum[:8])
}
