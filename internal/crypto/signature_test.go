package crypto

import (
	"bytes"
	"errors"
	"math/big"
	"testing"
)

func TestSignatureEd25519RoundTrip(t *testing.T) {
	raw := make([]byte, 64)
	for i := range raw {
		raw[i] = byte(i)
	}

	sig, err := Decode(AlgorithmEd25519, raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	encoded, err := sig.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Equal(encoded, raw) {
		t.Error("Ed25519 round-trip did not preserve bytes")
	}
}

func TestSignatureEd25519RejectsWrongLength(t *testing.T) {
	if _, err := Decode(AlgorithmEd25519, make([]byte, 63)); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSignatureSecp256k1DERRoundTrip(t *testing.T) {
	r := big.NewInt(12345)
	s := big.NewInt(1) // trivially low-S
	der := encodeDERSignature(r, s)

	sig, err := Decode(AlgorithmEcdsaSecp256k1Sha256, der)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	encoded, err := sig.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Equal(encoded, der) {
		t.Error("DER round-trip did not preserve canonical bytes")
	}
}

func TestSignatureSecp256k1RejectsHighS(t *testing.T) {
	r := big.NewInt(12345)
	highS := new(big.Int).Sub(secp256k1Order, big.NewInt(1))
	der := encodeDERSignature(r, highS)

	if _, err := Decode(AlgorithmEcdsaSecp256k1Sha256, der); !errors.Is(err, ErrVerification) {
		t.Errorf("expected ErrVerification for high-S signature, got %v", err)
	}
}

func TestSignatureSecp256k1AcceptsRawFallback(t *testing.T) {
	r := big.NewInt(777)
	s := big.NewInt(888)

	raw := make([]byte, 64)
	rBytes := r.Bytes()
	sBytes := s.Bytes()
	copy(raw[32-len(rBytes):32], rBytes)
	copy(raw[64-len(sBytes):64], sBytes)

	sig, err := Decode(AlgorithmEcdsaSecp256k1Sha256, raw)
	if err != nil {
		t.Fatalf("Decode raw fallback: %v", err)
	}
	if sig.Algorithm() != AlgorithmEcdsaSecp256k1Sha256 {
		t.Error("wrong algorithm tag")
	}
	// The signer always emits DER, never the raw form.
	encoded, err := sig.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if encoded[0] != 0x30 {
		t.Error("Encode should always emit DER, even when decoded from raw bytes")
	}
}
