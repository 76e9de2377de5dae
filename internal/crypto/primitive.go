package crypto

import (
	"fmt"

	edprim "github.com/LeJamon/gorfc9421/internal/crypto/algorithms/ed25519"
	secpprim "github.com/LeJamon/gorfc9421/internal/crypto/algorithms/secp256k1"
)

// The two signature primitives (§C1), shared across every Sign/Verify call
// and across key derivation.
var (
	ed25519Primitive   = edprim.NewProvider()
	secp256k1Primitive = secpprim.NewProvider()
)

// Sign produces a Signature over message under private, dispatching to the
// algorithm-specific primitive.
func Sign(private PrivateKey, message []byte) (Signature, error) {
	raw := private.Bytes()
	if raw == nil {
		return Signature{}, fmt.Errorf("%w: private key is closed", ErrInvalidInput)
	}
	defer SecureErase(raw)

	switch private.Algorithm() {
	case AlgorithmEd25519:
		sig, err := ed25519Primitive.Sign(raw, message)
		if err != nil {
			return Signature{}, err
		}
		return NewSignature(AlgorithmEd25519, sig), nil
	case AlgorithmEcdsaSecp256k1Sha256:
		der, err := secp256k1Primitive.Sign(raw, message)
		if err != nil {
			return Signature{}, err
		}
		return Decode(AlgorithmEcdsaSecp256k1Sha256, der)
	default:
		return Signature{}, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, private.Algorithm())
	}
}

// Verify checks sig over message under public. Algorithm mismatch between
// key and signature is reported as ErrInvalidKeyType, distinct from an
// ordinary verification failure.
func Verify(public PublicKey, message []byte, sig Signature) error {
	if public.Algorithm() != sig.Algorithm() {
		return fmt.Errorf("%w: key algorithm %v does not match signature algorithm %v", ErrInvalidKeyType, public.Algorithm(), sig.Algorithm())
	}

	encoded, err := sig.Encode()
	if err != nil {
		return err
	}

	var ok bool
	switch public.Algorithm() {
	case AlgorithmEd25519:
		ok = ed25519Primitive.Verify(public.Bytes(), message, encoded)
	case AlgorithmEcdsaSecp256k1Sha256:
		ok = secp256k1Primitive.Verify(public.Bytes(), message, encoded)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownAlgorithm, public.Algorithm())
	}
	if !ok {
		return fmt.Errorf("%w: signature does not match", ErrVerification)
	}
	return nil
}
