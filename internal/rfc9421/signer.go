package rfc9421

import (
	"encoding/base64"
	"time"

	"github.com/LeJamon/gorfc9421/internal/crypto"
)

// DefaultExpiresIn is the default validity window (§4.7): created+300s.
const DefaultExpiresIn = 300 * time.Second

// defaultRequestComponents is the signer's default component list for
// requests.
var defaultRequestComponents = []SignatureComponent{Method, Path, Authority}

// defaultResponseComponents is the signer's default component list for
// responses.
var defaultResponseComponents = []SignatureComponent{Status, Header("content-type")}

// SignOptions customizes a single Sign call; the zero value uses the
// Signer's configured defaults.
type SignOptions struct {
	// Components overrides the default component list when non-nil.
	Components []SignatureComponent
	// Nonce, if non-empty, is attached to the signature params and
	// engages the replay guard on verify.
	Nonce string
	// Tag optionally attaches an application-defined tag parameter.
	Tag string
	// Now overrides the wall clock read for created/expires, for
	// deterministic tests; the zero value means time.Now().
	Now time.Time
	// ExpiresIn overrides DefaultExpiresIn when non-zero.
	ExpiresIn time.Duration
}

// Signer signs HTTP messages under a bound KeyPair (§4.7).
type Signer struct {
	keyPair    *crypto.KeyPair
	components []SignatureComponent
}

// NewSigner constructs a Signer bound to keyPair. If components is nil, the
// direction-appropriate default list is used per-call.
func NewSigner(keyPair *crypto.KeyPair, components []SignatureComponent) *Signer {
	return &Signer{keyPair: keyPair, components: components}
}

// Sign signs msg, writing Signature-Input and Signature headers onto it
// under DefaultLabel. On any failure, msg is left untouched (§4.7 failure
// semantics: no partial writes).
func (s *Signer) Sign(msg Message, opts SignOptions) error {
	components := opts.Components
	if components == nil {
		components = s.components
	}
	if components == nil {
		if msg.Direction() == DirectionResponse {
			components = defaultResponseComponents
		} else {
			components = defaultRequestComponents
		}
	}

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	expiresIn := opts.ExpiresIn
	if expiresIn == 0 {
		expiresIn = DefaultExpiresIn
	}

	keyID := s.keyPair.KeyID()
	alg := s.keyPair.Algorithm().String()
	created := now.Unix()
	expires := now.Add(expiresIn).Unix()

	params := SignatureParams{
		KeyID:   &keyID,
		Alg:     &alg,
		Created: &created,
		Expires: &expires,
	}
	if opts.Nonce != "" {
		n := opts.Nonce
		params.Nonce = &n
	}
	if opts.Tag != "" {
		tg := opts.Tag
		params.Tag = &tg
	}

	pairs, err := Canonicalize(msg, components)
	if err != nil {
		return err
	}

	inputLine := SignatureInputLine(DefaultLabel, components, params)
	// Strip the "label=" prefix to get the params-line used inside the
	// signature base, matching what the verifier reconstructs from the
	// parsed header (§4.5).
	paramsLine := inputLine[len(DefaultLabel)+1:]

	base := BuildSignatureBase(pairs, paramsLine)

	sig, err := crypto.Sign(s.keyPair.Private(), []byte(base))
	if err != nil {
		return err
	}
	encoded, err := sig.Encode()
	if err != nil {
		return err
	}

	msg.SetHeader("Signature-Input", inputLine)
	msg.SetHeader("Signature", SignatureLine(DefaultLabel, base64.StdEncoding.EncodeToString(encoded)))
	return nil
}
