package rfc9421

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/LeJamon/gorfc9421/internal/crypto"
)

func signedRequest(t *testing.T, kp *crypto.KeyPair, opts SignOptions) (*http.Request, Message) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "https://example.com/foo", nil)
	msg := NewRequestMessage(req)
	signer := NewSigner(kp, []SignatureComponent{Method, Path, Authority})
	if err := signer.Sign(msg, opts); err != nil {
		t.Fatalf("Sign: %v", err)
	}
	return req, msg
}

func TestVerifyRoundTrip(t *testing.T) {
	kp := mustKeyPair(t, crypto.AlgorithmEd25519)
	defer kp.Close()

	now := time.Unix(1618884475, 0)
	_, msg := signedRequest(t, kp, SignOptions{Now: now})

	v := NewVerifier(kp.Public())
	if err := v.Verify(msg, VerifyOptions{Now: now}); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestVerifyRoundTripSecp256k1(t *testing.T) {
	kp := mustKeyPair(t, crypto.AlgorithmEcdsaSecp256k1Sha256)
	defer kp.Close()

	now := time.Unix(1618884475, 0)
	_, msg := signedRequest(t, kp, SignOptions{Now: now})

	v := NewVerifier(kp.Public())
	if err := v.Verify(msg, VerifyOptions{Now: now}); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestVerifyRejectsExpiredSignature(t *testing.T) {
	kp := mustKeyPair(t, crypto.AlgorithmEd25519)
	defer kp.Close()

	signedAt := time.Unix(1618884475, 0)
	_, msg := signedRequest(t, kp, SignOptions{Now: signedAt, ExpiresIn: 10 * time.Second})

	v := NewVerifier(kp.Public())
	err := v.Verify(msg, VerifyOptions{Now: signedAt.Add(time.Hour)})
	if !errors.Is(err, crypto.ErrVerification) || !strings.Contains(err.Error(), "expired") {
		t.Errorf("expected expired-signature verification error, got %v", err)
	}
}

func TestVerifyRejectsClockSkewBeyondBound(t *testing.T) {
	kp := mustKeyPair(t, crypto.AlgorithmEd25519)
	defer kp.Close()

	signedAt := time.Unix(1618884475, 0)
	_, msg := signedRequest(t, kp, SignOptions{Now: signedAt})

	v := NewVerifier(kp.Public())
	// Verifier's clock is far in the past relative to "created".
	err := v.Verify(msg, VerifyOptions{Now: signedAt.Add(-time.Hour), MaxSkew: time.Minute})
	if !errors.Is(err, crypto.ErrVerification) || !strings.Contains(err.Error(), "future") {
		t.Errorf("expected created-in-the-future verification error, got %v", err)
	}
}

func TestVerifyRejectsKeyIDMismatch(t *testing.T) {
	kp := mustKeyPair(t, crypto.AlgorithmEd25519)
	defer kp.Close()

	now := time.Unix(1618884475, 0)
	req, msg := signedRequest(t, kp, SignOptions{Now: now})

	input := req.Header.Get("Signature-Input")
	mutated := strings.Replace(input, `keyid="`+kp.KeyID()+`"`, `keyid="0000000000000000"`, 1)
	req.Header.Set("Signature-Input", mutated)

	v := NewVerifier(kp.Public())
	err := v.Verify(msg, VerifyOptions{Now: now})
	if !errors.Is(err, crypto.ErrVerification) || !strings.Contains(err.Error(), "Key ID mismatch") {
		t.Errorf("expected Key ID mismatch error, got %v", err)
	}
}

func TestVerifyRejectsMissingHeaders(t *testing.T) {
	kp := mustKeyPair(t, crypto.AlgorithmEd25519)
	defer kp.Close()

	req := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
	msg := NewRequestMessage(req)

	v := NewVerifier(kp.Public())
	err := v.Verify(msg, VerifyOptions{})
	if !errors.Is(err, crypto.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for missing headers, got %v", err)
	}
}

func TestVerifyUsesRawBytesNotReserializedParams(t *testing.T) {
	kp := mustKeyPair(t, crypto.AlgorithmEd25519)
	defer kp.Close()

	now := time.Unix(1618884475, 0)
	req, msg := signedRequest(t, kp, SignOptions{Now: now})

	// Append an unrecognized trailing parameter directly to the header
	// bytes, without re-signing. If the verifier reconstructed the params
	// line from its own understood fields instead of reusing Raw verbatim,
	// this addition would silently vanish from the base and verification
	// would still (wrongly) succeed against the original signature's base.
	// Reusing Raw means the base now differs, so verification must fail.
	input := req.Header.Get("Signature-Input")
	req.Header.Set("Signature-Input", input+`;extra="unsigned-addition"`)

	v := NewVerifier(kp.Public())
	if err := v.Verify(msg, VerifyOptions{Now: now}); err == nil {
		t.Error("expected verification to fail once the raw header bytes change")
	}
}

func TestVerifyRejectsNonceReplaySameMessageTwice(t *testing.T) {
	kp := mustKeyPair(t, crypto.AlgorithmEd25519)
	defer kp.Close()

	rg, err := NewReplayGuard(0)
	if err != nil {
		t.Fatalf("NewReplayGuard: %v", err)
	}

	now := time.Unix(1618884475, 0)
	_, msg := signedRequest(t, kp, SignOptions{Now: now, Nonce: "n-1"})

	v := NewVerifier(kp.Public()).WithReplayGuard(rg)
	if err := v.Verify(msg, VerifyOptions{Now: now}); err != nil {
		t.Fatalf("first Verify: %v", err)
	}
	err = v.Verify(msg, VerifyOptions{Now: now})
	if !errors.Is(err, crypto.ErrVerification) || !strings.Contains(err.Error(), "replayed") {
		t.Errorf("expected nonce-replayed error on second verify, got %v", err)
	}
}

func TestVerifyAnyByteMutationBreaksSignature(t *testing.T) {
	kp := mustKeyPair(t, crypto.AlgorithmEd25519)
	defer kp.Close()

	now := time.Unix(1618884475, 0)
	req, msg := signedRequest(t, kp, SignOptions{Now: now})

	sig := req.Header.Get("Signature")
	mutated := strings.Replace(sig, "A", "B", 1)
	if mutated == sig {
		mutated = strings.Replace(sig, "a", "b", 1)
	}
	req.Header.Set("Signature", mutated)

	v := NewVerifier(kp.Public())
	if err := v.Verify(msg, VerifyOptions{Now: now}); err == nil {
		t.Error("expected verification failure after mutating the signature bytes")
	}
}
