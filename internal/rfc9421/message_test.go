package rfc9421

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequestMessageDerivedComponents(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "https://example.com/foo?a=1&b=2", nil)

	msg := NewRequestMessage(req)
	if msg.Direction() != DirectionRequest {
		t.Error("wrong direction")
	}
	if msg.Method() != http.MethodPost {
		t.Errorf("Method() = %q", msg.Method())
	}
	if msg.Authority() != "example.com" {
		t.Errorf("Authority() = %q", msg.Authority())
	}
	if msg.Scheme() != "https" {
		t.Errorf("Scheme() = %q", msg.Scheme())
	}
	if msg.Path() != "/foo" {
		t.Errorf("Path() = %q", msg.Path())
	}
	if !msg.HasQuery() || msg.RawQuery() != "a=1&b=2" {
		t.Errorf("RawQuery() = %q, HasQuery() = %v", msg.RawQuery(), msg.HasQuery())
	}
	if msg.StatusCode() != 0 {
		t.Error("request StatusCode() must be 0")
	}
}

func TestRequestMessagePathDefaultsToSlash(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
	req.URL.Path = ""
	msg := NewRequestMessage(req)
	if msg.Path() != "/" {
		t.Errorf("Path() = %q, want \"/\"", msg.Path())
	}
}

func TestRequestMessageHeaders(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
	req.Header.Add("X-Multi", "one")
	req.Header.Add("X-Multi", "two")

	msg := NewRequestMessage(req)
	values := msg.HeaderValues("x-multi")
	if len(values) != 2 || values[0] != "one" || values[1] != "two" {
		t.Errorf("HeaderValues = %v", values)
	}

	msg.SetHeader("X-New", "value")
	if msg.GetHeader("x-new") != "value" {
		t.Errorf("GetHeader after SetHeader = %q", msg.GetHeader("x-new"))
	}
}

func TestResponseMessageDerivedComponents(t *testing.T) {
	resp := &http.Response{StatusCode: 201, Header: http.Header{}}
	msg := NewResponseMessage(resp)

	if msg.Direction() != DirectionResponse {
		t.Error("wrong direction")
	}
	if msg.StatusCode() != 201 {
		t.Errorf("StatusCode() = %d", msg.StatusCode())
	}
	if msg.Method() != "" || msg.Path() != "" || msg.Authority() != "" {
		t.Error("response derived request components must be empty")
	}

	msg.SetHeader("Content-Type", "application/json")
	if msg.GetHeader("content-type") != "application/json" {
		t.Errorf("GetHeader = %q", msg.GetHeader("content-type"))
	}
}

func TestResponseMessageNilHeader(t *testing.T) {
	resp := &http.Response{StatusCode: 200}
	msg := NewResponseMessage(resp)
	if msg.GetHeader("anything") != "" {
		t.Error("GetHeader on nil Header must return empty string")
	}
	if msg.HeaderValues("anything") != nil {
		t.Error("HeaderValues on nil Header must return nil")
	}
	msg.SetHeader("X-A", "b")
	if msg.GetHeader("x-a") != "b" {
		t.Error("SetHeader must lazily initialize the header map")
	}
}
