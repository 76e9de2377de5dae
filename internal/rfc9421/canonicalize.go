package rfc9421

import (
	"fmt"
	"strings"

	"github.com/LeJamon/gorfc9421/internal/crypto"
)

// CanonicalPair is one (identifier, value) line contributed by a single
// signature component (§3).
type CanonicalPair struct {
	Identifier string
	Value      string
}

// componentValue extracts the canonical string value of a component from
// msg, per the extraction rules in §4.5.
func componentValue(msg Message, c SignatureComponent) (string, error) {
	if name, ok := c.IsHeader(); ok {
		values := msg.HeaderValues(name)
		if len(values) == 0 {
			return "", fmt.Errorf("%w: Header %s not found", crypto.ErrInvalidInput, name)
		}
		return strings.Join(values, ", "), nil
	}

	switch c {
	case Method:
		return strings.ToUpper(msg.Method()), nil
	case TargetURI:
		return msg.TargetURI(), nil
	case Authority:
		a := msg.Authority()
		if a == "" {
			return "", fmt.Errorf("%w: Missing authority", crypto.ErrInvalidInput)
		}
		return a, nil
	case Scheme:
		s := msg.Scheme()
		if s == "" {
			return "", fmt.Errorf("%w: Missing scheme", crypto.ErrInvalidInput)
		}
		return strings.ToLower(s), nil
	case RequestTarget:
		if msg.HasQuery() {
			return msg.Path() + "?" + msg.RawQuery(), nil
		}
		return msg.Path(), nil
	case Path:
		return msg.Path(), nil
	case Query:
		if msg.HasQuery() {
			return "?" + msg.RawQuery(), nil
		}
		return "?", nil
	case Status:
		return fmt.Sprintf("%d", msg.StatusCode()), nil
	}
	return "", fmt.Errorf("%w: unrecognized component", crypto.ErrUnsupported)
}

// Canonicalize extracts the ordered (identifier, value) pairs for
// components against msg, validating each component's direction legality.
func Canonicalize(msg Message, components []SignatureComponent) ([]CanonicalPair, error) {
	pairs := make([]CanonicalPair, 0, len(components))
	for _, c := range components {
		if !c.ValidFor(msg.Direction()) {
			return nil, fmt.Errorf("%w: component %s is not valid for this message direction", crypto.ErrInvalidInput, c.Identifier())
		}
		value, err := componentValue(msg, c)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, CanonicalPair{Identifier: c.Identifier(), Value: value})
	}
	return pairs, nil
}

// BuildSignatureBase assembles the signature base: one line per pair in the
// form `"<identifier>": <value>`, followed by a final
// `"@signature-params": <paramsLine>` line, joined by LF with no trailing
// newline (§4.5).
func BuildSignatureBase(pairs []CanonicalPair, paramsLine string) string {
	lines := make([]string, 0, len(pairs)+1)
	for _, p := range pairs {
		lines = append(lines, fmt.Sprintf("%q: %s", p.Identifier, p.Value))
	}
	lines = append(lines, fmt.Sprintf("%q: %s", "@signature-params", paramsLine))
	return strings.Join(lines, "\n")
}
