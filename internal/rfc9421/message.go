package rfc9421

import (
	"net/http"
	"net/textproto"
)

// Message is the minimal HTTP message surface the canonicalizer needs,
// satisfied by both *http.Request and *http.Response so the same signing
// and verification code paths serve both directions.
type Message interface {
	// Direction reports whether this message is a request or a response.
	Direction() Direction
	// Method returns the request method as declared on the message; the
	// canonicalizer uppercases it for @method. Empty for responses.
	Method() string
	// TargetURI returns the fully-reconstructed request URI string.
	// Empty for responses.
	TargetURI() string
	// Authority returns the request's host[:port], or "" if absent.
	Authority() string
	// Scheme returns the request scheme, lowercase, or "" if absent.
	Scheme() string
	// Path returns the request's path component, always non-empty for a
	// well-formed request ("/" at minimum).
	Path() string
	// RawQuery returns the request's query string without the leading
	// "?", or "" if absent.
	RawQuery() string
	// HasQuery reports whether a "?" was present at all, distinguishing
	// "no query" from "empty query".
	HasQuery() bool
	// StatusCode returns the response status code. Zero for requests.
	StatusCode() int
	// HeaderValues returns every value of the named header field, in
	// header order, or nil if the field is absent.
	HeaderValues(name string) []string

	// SetHeader replaces the named header's value(s) with a single value.
	SetHeader(name, value string)
	// GetHeader returns the first value of the named header, or "".
	GetHeader(name string) string
}

// requestMessage adapts *http.Request to Message.
type requestMessage struct {
	req *http.Request
}

// NewRequestMessage wraps an *http.Request for signing or verification.
func NewRequestMessage(req *http.Request) Message {
	return &requestMessage{req: req}
}

func (m *requestMessage) Direction() Direction { return DirectionRequest }

func (m *requestMessage) Method() string {
	return m.req.Method
}

func (m *requestMessage) TargetURI() string {
	u := *m.req.URL
	if u.Scheme == "" {
		u.Scheme = "https"
	}
	if u.Host == "" {
		u.Host = m.req.Host
	}
	return u.String()
}

func (m *requestMessage) Authority() string {
	if m.req.URL != nil && m.req.URL.Host != "" {
		return m.req.URL.Host
	}
	return m.req.Host
}

func (m *requestMessage) Scheme() string {
	if m.req.URL == nil {
		return ""
	}
	if m.req.URL.Scheme != "" {
		return m.req.URL.Scheme
	}
	if m.req.TLS != nil {
		return "https"
	}
	return ""
}

func (m *requestMessage) Path() string {
	if m.req.URL == nil || m.req.URL.Path == "" {
		return "/"
	}
	return m.req.URL.Path
}

func (m *requestMessage) RawQuery() string {
	if m.req.URL == nil {
		return ""
	}
	return m.req.URL.RawQuery
}

func (m *requestMessage) HasQuery() bool {
	return m.req.URL != nil && (m.req.URL.RawQuery != "" || m.req.URL.ForceQuery)
}

func (m *requestMessage) StatusCode() int { return 0 }

func (m *requestMessage) HeaderValues(name string) []string {
	return m.req.Header.Values(textproto.CanonicalMIMEHeaderKey(name))
}

func (m *requestMessage) SetHeader(name, value string) {
	m.req.Header.Set(name, value)
}

func (m *requestMessage) GetHeader(name string) string {
	return m.req.Header.Get(name)
}

// responseMessage adapts *http.Response to Message.
type responseMessage struct {
	resp *http.Response
}

// NewResponseMessage wraps an *http.Response for signing or verification.
func NewResponseMessage(resp *http.Response) Message {
	return &responseMessage{resp: resp}
}

func (m *responseMessage) Direction() Direction { return DirectionResponse }
func (m *responseMessage) Method() string       { return "" }
func (m *responseMessage) TargetURI() string    { return "" }
func (m *responseMessage) Authority() string    { return "" }
func (m *responseMessage) Scheme() string       { return "" }
func (m *responseMessage) Path() string         { return "" }
func (m *responseMessage) RawQuery() string     { return "" }
func (m *responseMessage) HasQuery() bool       { return false }
func (m *responseMessage) StatusCode() int      { return m.resp.StatusCode }

func (m *responseMessage) HeaderValues(name string) []string {
	if m.resp.Header == nil {
		return nil
	}
	return m.resp.Header.Values(textproto.CanonicalMIMEHeaderKey(name))
}

func (m *responseMessage) SetHeader(name, value string) {
	if m.resp.Header == nil {
		m.resp.Header = make(http.Header)
	}
	m.resp.Header.Set(name, value)
}

func (m *responseMessage) GetHeader(name string) string {
	if m.resp.Header == nil {
		return ""
	}
	return m.resp.Header.Get(name)
}
