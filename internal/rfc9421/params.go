package rfc9421

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/LeJamon/gorfc9421/internal/crypto"
)

// DefaultLabel is the signature label this implementation always reads and
// writes, per the "single interoperable label" non-goal.
const DefaultLabel = "sig1"

// SignatureParams holds the optional fields attached to a Signature-Input
// entry (§3). Fields are pointers so "absent" is distinguishable from a
// legitimate zero value.
type SignatureParams struct {
	KeyID   *string
	Alg     *string
	Created *int64
	Expires *int64
	Nonce   *string
	Tag     *string
}

// Serialize renders the params in the fixed field order keyid; alg;
// created; expires; nonce; tag, semicolon-separated, omitting absent
// fields. String values are double-quoted; integers are bare.
func (p SignatureParams) Serialize() string {
	var parts []string
	if p.KeyID != nil {
		parts = append(parts, fmt.Sprintf(`keyid=%q`, *p.KeyID))
	}
	if p.Alg != nil {
		parts = append(parts, fmt.Sprintf(`alg=%q`, *p.Alg))
	}
	if p.Created != nil {
		parts = append(parts, fmt.Sprintf(`created=%d`, *p.Created))
	}
	if p.Expires != nil {
		parts = append(parts, fmt.Sprintf(`expires=%d`, *p.Expires))
	}
	if p.Nonce != nil {
		parts = append(parts, fmt.Sprintf(`nonce=%q`, *p.Nonce))
	}
	if p.Tag != nil {
		parts = append(parts, fmt.Sprintf(`tag=%q`, *p.Tag))
	}
	return strings.Join(parts, ";")
}

// ParsedSignatureInput is the result of parsing one label's entry out of a
// Signature-Input header value.
type ParsedSignatureInput struct {
	Label      string
	Components []SignatureComponent
	Params     SignatureParams
	// Raw is the exact component-list-plus-params substring as received,
	// reused verbatim when re-assembling the signature base on verify —
	// the verifier must never re-serialize parsed params (§4.7 step 6).
	Raw string
}

// SignatureInputLine builds the full Signature-Input line, "<label>=(<comp1>
// <comp2> ...)[;<params-line>]", for signing.
func SignatureInputLine(label string, components []SignatureComponent, params SignatureParams) string {
	ids := make([]string, len(components))
	for i, c := range components {
		ids[i] = fmt.Sprintf("%q", c.Identifier())
	}
	line := fmt.Sprintf("%s=(%s)", label, strings.Join(ids, " "))
	if p := params.Serialize(); p != "" {
		line += ";" + p
	}
	return line
}

// SignatureLine builds the full Signature header line,
// "<label>=:<base64>:".
func SignatureLine(label, base64Sig string) string {
	return fmt.Sprintf("%s=:%s:", label, base64Sig)
}

// ParseSignatureInput parses a Signature-Input header value and returns the
// entry for label. The header value may contain other labels; only label
// is extracted.
func ParseSignatureInput(value, label string) (*ParsedSignatureInput, error) {
	prefix := label + "="
	idx := strings.Index(value, prefix)
	if idx == -1 {
		return nil, fmt.Errorf("%w: label %q not found in Signature-Input", crypto.ErrInvalidInput, label)
	}
	rest := value[idx+len(prefix):]

	if len(rest) == 0 || rest[0] != '(' {
		return nil, fmt.Errorf("%w: Signature-Input must start with '('", crypto.ErrInvalidInput)
	}
	closeIdx := strings.IndexByte(rest, ')')
	if closeIdx == -1 {
		return nil, fmt.Errorf("%w: unterminated component list in Signature-Input", crypto.ErrInvalidInput)
	}

	inner := rest[1:closeIdx]
	var components []SignatureComponent
	if strings.TrimSpace(inner) != "" {
		for _, tok := range strings.Fields(inner) {
			tok = strings.Trim(tok, `"`)
			comp, err := componentFromIdentifier(tok)
			if err != nil {
				return nil, err
			}
			components = append(components, comp)
		}
	}

	remainder := rest[closeIdx+1:]
	// A following dictionary member, if any, starts at the next comma.
	if comma := strings.IndexByte(remainder, ','); comma != -1 {
		remainder = strings.TrimRight(remainder[:comma], " \t")
	}
	raw := rest[:closeIdx+1]
	params := SignatureParams{}
	if strings.HasPrefix(remainder, ";") {
		raw += remainder
		fields := strings.Split(remainder[1:], ";")
		for _, f := range fields {
			if f == "" {
				continue
			}
			eq := strings.IndexByte(f, '=')
			if eq == -1 {
				continue
			}
			name := f[:eq]
			val := f[eq+1:]
			switch name {
			case "keyid":
				s := strings.Trim(val, `"`)
				params.KeyID = &s
			case "alg":
				s := strings.Trim(val, `"`)
				params.Alg = &s
			case "nonce":
				s := strings.Trim(val, `"`)
				params.Nonce = &s
			case "tag":
				s := strings.Trim(val, `"`)
				params.Tag = &s
			case "created":
				n, err := strconv.ParseInt(val, 10, 64)
				if err != nil {
					return nil, fmt.Errorf("%w: invalid created value %q", crypto.ErrInvalidInput, val)
				}
				params.Created = &n
			case "expires":
				n, err := strconv.ParseInt(val, 10, 64)
				if err != nil {
					return nil, fmt.Errorf("%w: invalid expires value %q", crypto.ErrInvalidInput, val)
				}
				params.Expires = &n
			default:
				// Unknown parameter names are ignored.
			}
		}
	}

	return &ParsedSignatureInput{
		Label:      label,
		Components: components,
		Params:     params,
		Raw:        raw,
	}, nil
}

// ParseSignature parses a Signature header value and returns the
// base64-encoded signature substring for label (still base64, undecoded).
func ParseSignature(value, label string) (string, error) {
	prefix := label + "=:"
	idx := strings.Index(value, prefix)
	if idx == -1 {
		return "", fmt.Errorf("%w: label %q not found in Signature", crypto.ErrInvalidInput, label)
	}
	rest := value[idx+len(prefix):]
	end := strings.IndexByte(rest, ':')
	if end == -1 {
		return "", fmt.Errorf("%w: unterminated byte-sequence in Signature", crypto.ErrInvalidInput)
	}
	return rest[:end], nil
}
