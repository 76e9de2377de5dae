package rfc9421

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/LeJamon/gorfc9421/internal/crypto"
)

// DefaultMaxSkew is the default clock-skew tolerance for the "created in
// the future" check (§4.7 step 3).
const DefaultMaxSkew = 300 * time.Second

// VerifyState names a point in the verifier's state machine: Init → Parsed
// → Checked → Verified | Failed. Transitions are total and failures are
// terminal — there is no retry. Each Verify call computes its own state
// locally; the Verifier itself holds no per-call mutable state, so one
// Verifier is safe to share across concurrent Verify calls (§5).
type VerifyState int

const (
	StateInit VerifyState = iota
	StateParsed
	StateChecked
	StateVerified
	StateFailed
)

// VerifyOptions customizes a single Verify call.
type VerifyOptions struct {
	// Now overrides the wall clock read for the time-policy check, for
	// deterministic tests; the zero value means time.Now().
	Now time.Time
	// MaxSkew overrides DefaultMaxSkew when non-zero.
	MaxSkew time.Duration
}

// Verifier checks HTTP message signatures against a single bound
// PublicKey (§4.7). Immutable after construction.
type Verifier struct {
	publicKey   crypto.PublicKey
	replayGuard *ReplayGuard
}

// NewVerifier constructs a Verifier bound to publicKey.
func NewVerifier(publicKey crypto.PublicKey) *Verifier {
	return &Verifier{publicKey: publicKey}
}

// WithReplayGuard attaches a replay guard (§C8); nonce-bearing signatures
// are checked against it after the time-policy check. Returns the receiver
// for chaining.
func (v *Verifier) WithReplayGuard(rg *ReplayGuard) *Verifier {
	v.replayGuard = rg
	return v
}

// Verify checks msg's Signature-Input/Signature headers against the bound
// public key, per the step sequence in §4.7. Safe to call concurrently on
// the same Verifier.
func (v *Verifier) Verify(msg Message, opts VerifyOptions) error {
	_, err := v.verifyWithState(msg, opts)
	return err
}

// verifyWithState is Verify plus the terminal state reached: StateVerified
// on success, StateFailed otherwise. Verify is its only caller and discards
// the state.
func (v *Verifier) verifyWithState(msg Message, opts VerifyOptions) (VerifyState, error) {
	inputHeader := msg.GetHeader("Signature-Input")
	if inputHeader == "" {
		return StateFailed, fmt.Errorf("%w: missing Signature-Input header", crypto.ErrInvalidInput)
	}
	sigHeader := msg.GetHeader("Signature")
	if sigHeader == "" {
		return StateFailed, fmt.Errorf("%w: missing Signature header", crypto.ErrInvalidInput)
	}

	parsed, err := ParseSignatureInput(inputHeader, DefaultLabel)
	if err != nil {
		return StateFailed, err
	}
	sigB64, err := ParseSignature(sigHeader, DefaultLabel)
	if err != nil {
		return StateFailed, err
	}

	for _, c := range parsed.Components {
		if !c.ValidFor(msg.Direction()) {
			return StateFailed, fmt.Errorf("%w: component %s is not valid for this message direction", crypto.ErrInvalidInput, c.Identifier())
		}
	}

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	maxSkew := opts.MaxSkew
	if maxSkew == 0 {
		maxSkew = DefaultMaxSkew
	}

	if parsed.Params.Created != nil {
		if time.Unix(*parsed.Params.Created, 0).After(now.Add(maxSkew)) {
			return StateFailed, fmt.Errorf("%w: created in the future", crypto.ErrVerification)
		}
	}
	if parsed.Params.Expires != nil {
		if time.Unix(*parsed.Params.Expires, 0).Before(now) {
			return StateFailed, fmt.Errorf("%w: signature expired", crypto.ErrVerification)
		}
	}

	if parsed.Params.KeyID != nil && *parsed.Params.KeyID != v.publicKey.KeyID() {
		return StateFailed, fmt.Errorf("%w: Key ID mismatch", crypto.ErrVerification)
	}

	if v.replayGuard != nil && parsed.Params.Nonce != nil {
		if v.replayGuard.Seen(v.publicKey.KeyID(), *parsed.Params.Nonce) {
			return StateFailed, fmt.Errorf("%w: nonce replayed", crypto.ErrVerification)
		}
	}

	pairs, err := Canonicalize(msg, parsed.Components)
	if err != nil {
		return StateFailed, err
	}
	base := BuildSignatureBase(pairs, parsed.Raw)

	sigBytes, err := base64.StdEncoding.DecodeString(sigB64)
	if err != nil {
		return StateFailed, fmt.Errorf("%w: invalid base64 in Signature header", crypto.ErrInvalidInput)
	}

	alg := v.publicKey.Algorithm()
	if parsed.Params.Alg != nil {
		declared := crypto.AlgorithmFromWire(*parsed.Params.Alg)
		if declared == crypto.AlgorithmUnknown {
			return StateFailed, fmt.Errorf("%w: unsupported algorithm %q", crypto.ErrUnsupported, *parsed.Params.Alg)
		}
		if declared != alg {
			return StateFailed, fmt.Errorf("%w: declared algorithm does not match verifier key", crypto.ErrInvalidKeyType)
		}
	}

	sig, err := crypto.Decode(alg, sigBytes)
	if err != nil {
		return StateFailed, err
	}

	if err := crypto.Verify(v.publicKey, []byte(base), sig); err != nil {
		return StateFailed, err
	}

	return StateVerified, nil
}
