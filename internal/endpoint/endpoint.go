package endpoint

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Spec is the raw shape an endpoint arrives in from the configuration
// loader, before any validation has run.
type Spec struct {
	Name    string
	URL     string
	Method  string
	Headers map[string]string
	Body    string
}

// Endpoint is one configured HTTP check. Immutable after New; Domain is
// derived from the URL's authority and is the aggregation key.
type Endpoint struct {
	Name    string
	URL     string
	Domain  string
	Method  string
	Headers map[string]string
	Body    string
}

// New validates a Spec and builds the Endpoint. Missing name/url or an
// URL without an authority is a construction-time error; nothing network
// related happens here.
func New(s Spec) (Endpoint, error) {
	if strings.TrimSpace(s.Name) == "" {
		return Endpoint{}, fmt.Errorf("endpoint: missing name (url=%q)", s.URL)
	}
	if strings.TrimSpace(s.URL) == "" {
		return Endpoint{}, fmt.Errorf("endpoint %q: missing url", s.Name)
	}
	u, err := url.Parse(s.URL)
	if err != nil {
		return Endpoint{}, fmt.Errorf("endpoint %q: invalid url: %w", s.Name, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return Endpoint{}, fmt.Errorf("endpoint %q: url must be absolute with a host", s.Name)
	}

	method := strings.ToUpper(strings.TrimSpace(s.Method))
	if method == "" {
		method = http.MethodGet
	}

	var headers map[string]string
	if len(s.Headers) > 0 {
		headers = make(map[string]string, len(s.Headers))
		for k, v := range s.Headers {
			headers[k] = v
		}
	}

	return Endpoint{
		Name:    s.Name,
		URL:     s.URL,
		Domain:  u.Host,
		Method:  method,
		Headers: headers,
		Body:    s.Body,
	}, nil
}

// NewList builds every endpoint or fails on the first invalid one, so a
// partially valid configuration never reaches the check loop.
func NewList(specs []Spec) ([]Endpoint, error) {
	out := make([]Endpoint, 0, len(specs))
	for _, s := range specs {
		ep, err := New(s)
		if err != nil {
			return nil, err
		}
		out = append(out, ep)
	}
	return out, nil
}
