// Package rfc9421 implements the RFC 9421 HTTP Message Signatures
// component model, canonicalizer, parameter codec, and signer/verifier
// state machines (§C4–C7), built on the algorithm-agnostic primitives in
// internal/crypto.
package rfc9421

import (
	"fmt"
	"strings"

	"github.com/LeJamon/gorfc9421/internal/crypto"
)

// Direction distinguishes request-side from response-side canonicalization,
// since some derived components (notably @status) are only legal on one
// side.
type Direction int

const (
	// DirectionRequest marks a message as an HTTP request.
	DirectionRequest Direction = iota
	// DirectionResponse marks a message as an HTTP response.
	DirectionResponse
)

// componentKind tags which variant of SignatureComponent a value holds.
type componentKind int

const (
	componentMethod componentKind = iota
	componentTargetURI
	componentAuthority
	componentScheme
	componentRequestTarget
	componentPath
	componentQuery
	componentStatus
	componentHeader
)

// SignatureComponent is a tagged union over the derived components and
// header fields that may appear in a signature base (§C4).
type SignatureComponent struct {
	kind       componentKind
	headerName string // populated only when kind == componentHeader
}

// Exported constructors for the derived components.
var (
	Method        = SignatureComponent{kind: componentMethod}
	TargetURI     = SignatureComponent{kind: componentTargetURI}
	Authority     = SignatureComponent{kind: componentAuthority}
	Scheme        = SignatureComponent{kind: componentScheme}
	RequestTarget = SignatureComponent{kind: componentRequestTarget}
	Path          = SignatureComponent{kind: componentPath}
	Query         = SignatureComponent{kind: componentQuery}
	Status        = SignatureComponent{kind: componentStatus}
)

// Header returns the component representing an HTTP header field. Name is
// compared case-insensitively and rendered lowercase in the identifier.
func Header(name string) SignatureComponent {
	return SignatureComponent{kind: componentHeader, headerName: strings.ToLower(name)}
}

// Identifier returns the component's canonical wire identifier, e.g.
// "@method" or the lowercased header name.
func (c SignatureComponent) Identifier() string {
	switch c.kind {
	case componentMethod:
		return "@method"
	case componentTargetURI:
		return "@target-uri"
	case componentAuthority:
		return "@authority"
	case componentScheme:
		return "@scheme"
	case componentRequestTarget:
		return "@request-target"
	case componentPath:
		return "@path"
	case componentQuery:
		return "@query"
	case componentStatus:
		return "@status"
	case componentHeader:
		return c.headerName
	default:
		return ""
	}
}

// IsHeader reports whether the component is a Header(name) variant, and if
// so returns the lowercased name.
func (c SignatureComponent) IsHeader() (string, bool) {
	if c.kind == componentHeader {
		return c.headerName, true
	}
	return "", false
}

// ValidFor reports whether the component is legal for the given message
// direction: @status is response-only, every other derived component is
// request-only, headers are valid on both.
func (c SignatureComponent) ValidFor(dir Direction) bool {
	switch c.kind {
	case componentStatus:
		return dir == DirectionResponse
	case componentHeader:
		return true
	default:
		return dir == DirectionRequest
	}
}

// ComponentFromIdentifier maps a wire identifier back to a SignatureComponent,
// per the table in §4.4. Identifiers beginning with "@" that are not in the
// table are Unsupported; anything else becomes Header(token).
func ComponentFromIdentifier(id string) (SignatureComponent, error) {
	return componentFromIdentifier(id)
}

func componentFromIdentifier(id string) (SignatureComponent, error) {
	switch id {
	case "@method":
		return Method, nil
	case "@target-uri":
		return TargetURI, nil
	case "@authority":
		return Authority, nil
	case "@scheme":
		return Scheme, nil
	case "@request-target":
		return RequestTarget, nil
	case "@path":
		return Path, nil
	case "@query":
		return Query, nil
	case "@status":
		return Status, nil
	}
	if strings.HasPrefix(id, "@") {
		return SignatureComponent{}, fmt.Errorf("%w: unknown derived component %q", crypto.ErrUnsupported, id)
	}
	return Header(id), nil
}
