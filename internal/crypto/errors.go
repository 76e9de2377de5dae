package crypto

import "errors"

// Error kinds shared across the crypto and rfc9421 packages. Every failure
// is synchronous and non-retryable; callers distinguish kinds with
// errors.Is, not string matching.
var (
	// ErrInvalidInput marks malformed or out-of-range input: wrong-length
	// keys/signatures, unparsable encodings, invalid parameters.
	ErrInvalidInput = errors.New("rfc9421: invalid input")
	// ErrInvalidKeyType marks an algorithm/key-type mismatch, e.g. handing
	// a secp256k1 key to an Ed25519 operation.
	ErrInvalidKeyType = errors.New("rfc9421: invalid key type")
	// ErrVerification marks a cryptographically or semantically failed
	// verification: bad signature, expired window, replayed nonce.
	ErrVerification = errors.New("rfc9421: verification failed")
	// ErrUnsupported marks a recognized but unimplemented request, such as
	// an algorithm identifier this build does not carry.
	ErrUnsupported = errors.New("rfc9421: unsupported")
)
