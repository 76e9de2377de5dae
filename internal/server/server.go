// Package server implements the HTTP demo server: a signature-verifying
// /echo endpoint, a /pubkey bootstrap endpoint, and a /health liveness
// probe, structured like the teacher's jsonrpc server (ServeHTTP dispatch
// to a small method table).
package server

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/LeJamon/gorfc9421/internal/crypto"
	"github.com/LeJamon/gorfc9421/internal/rfc9421"
)

// Server is an http.Handler exposing the RFC 9421 demo endpoints. It signs
// outgoing /echo responses with signer and verifies incoming requests
// against verifier.
type Server struct {
	signer   *rfc9421.Signer
	verifier *rfc9421.Verifier
	keyPair  *crypto.KeyPair
	mux      *http.ServeMux
}

// New constructs a Server. keyPair is the server's own identity, used both
// to sign /echo responses and to answer /pubkey.
func New(keyPair *crypto.KeyPair, verifier *rfc9421.Verifier) *Server {
	s := &Server{
		signer:   rfc9421.NewSigner(keyPair, nil),
		verifier: verifier,
		keyPair:  keyPair,
		mux:      http.NewServeMux(),
	}
	s.mux.HandleFunc("/echo", s.handleEcho)
	s.mux.HandleFunc("/pubkey", s.handlePubkey)
	s.mux.HandleFunc("/health", s.handleHealth)
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleEcho verifies the incoming request's signature, echoes the
// canonical values it verified against, and signs the response.
func (s *Server) handleEcho(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	msg := rfc9421.NewRequestMessage(r)
	if err := s.verifier.Verify(msg, rfc9421.VerifyOptions{}); err != nil {
		writeVerificationError(w, err)
		return
	}

	echoed := map[string]string{
		"method":    r.Method,
		"path":      r.URL.Path,
		"authority": r.Host,
	}

	respRecorder := &http.Response{StatusCode: http.StatusOK, Header: http.Header{}}
	respRecorder.Header.Set("Content-Type", "application/json")
	respMsg := rfc9421.NewResponseMessage(respRecorder)

	if err := s.signer.Sign(respMsg, rfc9421.SignOptions{}); err != nil {
		http.Error(w, "failed to sign response", http.StatusInternalServerError)
		return
	}
	for name, values := range respRecorder.Header {
		for _, v := range values {
			w.Header().Add(name, v)
		}
	}

	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(echoed)
}

// handlePubkey returns the server's own public key and key id so a client
// can bootstrap verification of /echo responses.
func (s *Server) handlePubkey(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	pub := s.keyPair.Public()
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"keyid":     pub.KeyID(),
		"algorithm": pub.Algorithm().String(),
		"publickey": hex.EncodeToString(pub.Bytes()),
	})
}

// handleHealth is an unauthenticated liveness probe.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok","service":"rfc9421-demo"}`))
}

// writeVerificationError maps a core error to the HTTP status required by
// §4.13: 400 for InvalidInput/Unsupported, 401 for Verification.
func writeVerificationError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	if errors.Is(err, crypto.ErrVerification) {
		status = http.StatusUnauthorized
	}
	http.Error(w, err.Error(), status)
}
