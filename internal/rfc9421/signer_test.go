package rfc9421

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/LeJamon/gorfc9421/internal/crypto"
)

func mustKeyPair(t *testing.T, alg crypto.Algorithm) *crypto.KeyPair {
	t.Helper()
	kp, err := crypto.RandomKeyPair(alg)
	if err != nil {
		t.Fatalf("RandomKeyPair: %v", err)
	}
	return kp
}

func TestSignerWritesHeaders(t *testing.T) {
	kp := mustKeyPair(t, crypto.AlgorithmEd25519)
	defer kp.Close()

	req := httptest.NewRequest(http.MethodPost, "https://example.com/foo", nil)
	msg := NewRequestMessage(req)

	signer := NewSigner(kp, []SignatureComponent{Method, Path, Authority})
	now := time.Unix(1618884475, 0)
	if err := signer.Sign(msg, SignOptions{Now: now}); err != nil {
		t.Fatalf("Sign: %v", err)
	}

	input := req.Header.Get("Signature-Input")
	if !strings.HasPrefix(input, "sig1=(\"@method\" \"@path\" \"@authority\")") {
		t.Errorf("Signature-Input = %q", input)
	}
	if !strings.Contains(input, `keyid="`+kp.KeyID()+`"`) {
		t.Errorf("Signature-Input missing keyid: %q", input)
	}
	if !strings.Contains(input, "created=1618884475") {
		t.Errorf("Signature-Input missing created: %q", input)
	}

	sig := req.Header.Get("Signature")
	if !strings.HasPrefix(sig, "sig1=:") || !strings.HasSuffix(sig, ":") {
		t.Errorf("Signature = %q", sig)
	}
}

func TestSignerUsesDirectionDefaults(t *testing.T) {
	kp := mustKeyPair(t, crypto.AlgorithmEd25519)
	defer kp.Close()

	resp := &http.Response{StatusCode: 200, Header: http.Header{"Content-Type": {"application/json"}}}
	msg := NewResponseMessage(resp)

	signer := NewSigner(kp, nil)
	if err := signer.Sign(msg, SignOptions{}); err != nil {
		t.Fatalf("Sign: %v", err)
	}

	input := resp.Header.Get("Signature-Input")
	if !strings.Contains(input, `"@status"`) || !strings.Contains(input, `"content-type"`) {
		t.Errorf("response default components missing from %q", input)
	}
}

func TestSignerFailsWithoutPartialWrites(t *testing.T) {
	kp := mustKeyPair(t, crypto.AlgorithmEd25519)
	defer kp.Close()

	req := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
	msg := NewRequestMessage(req)

	signer := NewSigner(kp, []SignatureComponent{Header("x-absent")})
	if err := signer.Sign(msg, SignOptions{}); err == nil {
		t.Fatal("expected Sign to fail for a missing header component")
	}
	if req.Header.Get("Signature-Input") != "" || req.Header.Get("Signature") != "" {
		t.Error("failed Sign must not write partial headers")
	}
}
